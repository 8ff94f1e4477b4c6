// Package view binds the particle simulations to their host: a drawing
// surface, the frame scheduler and the input events. Mount and Teardown
// bracket the lifetime of each animation.
package view

import (
	"freedom-layer/internal/config"
	"freedom-layer/internal/event"
	"freedom-layer/internal/frame"
	"freedom-layer/internal/input"
	"freedom-layer/internal/particle"

	"go.uber.org/zap"
)

// Surface is a canvas the host can resize.
type Surface interface {
	particle.Canvas
	Resize(width, height int) error
}

var fieldEvents = []event.EventType{
	event.PointerMove,
	event.TouchMove,
	event.TouchStart,
	event.TouchEnd,
	event.PointerLeave,
	event.Resize,
}

// FieldView runs the headline field on a full-viewport surface.
type FieldView struct {
	field   *particle.Field
	surface Surface
	sched   frame.Scheduler
	bus     *event.Dispatcher
	pointer *input.PointerCell
	caps    *input.Capabilities
	log     *zap.Logger

	mounted bool
	frameID frame.ID
	frames  uint64
}

func NewFieldView(field *particle.Field, surface Surface, sched frame.Scheduler, bus *event.Dispatcher, pointer *input.PointerCell, caps *input.Capabilities, log *zap.Logger) *FieldView {
	return &FieldView{
		field:   field,
		surface: surface,
		sched:   sched,
		bus:     bus,
		pointer: pointer,
		caps:    caps,
		log:     log,
	}
}

// Mount seeds the field for the surface size, attaches the listeners and
// requests the first frame. Without a usable surface it does nothing and
// reports false: the effect is decorative.
func (v *FieldView) Mount() bool {
	if v.mounted {
		return true
	}
	if v.surface == nil {
		v.log.Debug("field view: no surface, skipping")
		return false
	}
	w, h := v.surface.Size()
	if err := v.field.Reset(w, h); err != nil {
		v.log.Debug("field view: setup failed, skipping", zap.Error(err))
		return false
	}

	for _, t := range fieldEvents {
		v.bus.Subscribe(t, v)
	}
	v.mounted = true
	v.frameID = v.sched.Request(v.frame)
	v.log.Debug("field view mounted", zap.Int("particles", v.field.Len()))
	return true
}

// Teardown detaches every listener and cancels the pending frame.
// Calling it again, or before Mount, is a no-op.
func (v *FieldView) Teardown() {
	if !v.mounted {
		return
	}
	v.mounted = false
	for _, t := range fieldEvents {
		v.bus.Unsubscribe(t, v)
	}
	if v.frameID != 0 {
		v.sched.Cancel(v.frameID)
		v.frameID = 0
	}
	v.log.Debug("field view torn down", zap.Uint64("frames", v.frames))
}

func (v *FieldView) Mounted() bool          { return v.mounted }
func (v *FieldView) Frames() uint64         { return v.frames }
func (v *FieldView) Field() *particle.Field { return v.field }
func (v *FieldView) Surface() Surface       { return v.surface }

func (v *FieldView) frame() {
	v.frameID = 0
	if !v.mounted {
		return
	}
	v.field.Step(v.surface, v.pointer)
	v.frames++
	v.frameID = v.sched.Request(v.frame)
}

// OnEvent implements event.Listener.
func (v *FieldView) OnEvent(e event.Event) {
	switch e.Type {
	case event.PointerMove:
		if p, ok := e.Data.(input.Point); ok {
			v.pointer.Set(p)
		}
	case event.TouchMove:
		if p, ok := e.Data.(input.Point); ok {
			if v.onSurface(p) {
				e.PreventDefault() // не прокручивать страницу
			}
			v.pointer.Set(p)
		}
	case event.TouchStart:
		v.pointer.SetTouching(true)
		if p, ok := e.Data.(input.Point); ok {
			v.pointer.Set(p)
		}
	case event.TouchEnd:
		v.pointer.SetTouching(false)
		v.pointer.Reset()
	case event.PointerLeave:
		if !v.caps.Touch {
			v.pointer.Reset()
		}
	case event.Resize:
		if vp, ok := e.Data.(input.Viewport); ok {
			v.resize(vp)
		}
	}
}

func (v *FieldView) onSurface(p input.Point) bool {
	w, h := v.surface.Size()
	return p.X >= 0 && p.Y >= 0 && p.X < float64(w) && p.Y < float64(h)
}

func (v *FieldView) resize(vp input.Viewport) {
	if err := v.surface.Resize(vp.Width, vp.Height); err != nil {
		v.log.Debug("field view: resize failed", zap.Error(err))
		return
	}
	if err := v.field.Reset(vp.Width, vp.Height); err != nil {
		v.log.Debug("field view: reset failed", zap.Error(err))
	}
}

// Reconfigure applies new tuning with the same full reset as a resize.
func (v *FieldView) Reconfigure(cfg config.FieldConfig) {
	v.field.SetConfig(cfg)
	if !v.mounted {
		return
	}
	w, h := v.surface.Size()
	if err := v.field.Reset(w, h); err != nil {
		v.log.Debug("field view: reset failed", zap.Error(err))
	}
}
