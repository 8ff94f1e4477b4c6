package view

import (
	"freedom-layer/internal/config"
	"freedom-layer/internal/frame"
	"freedom-layer/internal/particle"

	"go.uber.org/zap"
)

// ButtonView runs the call-to-action emitter on its own small surface.
// It has no input; it only needs frames.
type ButtonView struct {
	emitter *particle.Emitter
	surface particle.Canvas
	sched   frame.Scheduler
	log     *zap.Logger

	mounted bool
	frameID frame.ID
}

func NewButtonView(emitter *particle.Emitter, surface particle.Canvas, sched frame.Scheduler, log *zap.Logger) *ButtonView {
	return &ButtonView{
		emitter: emitter,
		surface: surface,
		sched:   sched,
		log:     log,
	}
}

func (v *ButtonView) Mount() bool {
	if v.mounted {
		return true
	}
	if v.surface == nil {
		v.log.Debug("button view: no surface, skipping")
		return false
	}
	v.emitter.Reset()
	v.emitter.Spawn()
	v.mounted = true
	v.frameID = v.sched.Request(v.frame)
	return true
}

func (v *ButtonView) Teardown() {
	if !v.mounted {
		return
	}
	v.mounted = false
	if v.frameID != 0 {
		v.sched.Cancel(v.frameID)
		v.frameID = 0
	}
}

func (v *ButtonView) Mounted() bool              { return v.mounted }
func (v *ButtonView) Emitter() *particle.Emitter { return v.emitter }

func (v *ButtonView) frame() {
	v.frameID = 0
	if !v.mounted {
		return
	}
	v.emitter.Step(v.surface)
	v.frameID = v.sched.Request(v.frame)
}

// Reconfigure swaps the emitter tuning; live sparks keep flying.
func (v *ButtonView) Reconfigure(cfg config.ButtonConfig) {
	v.emitter.SetConfig(cfg)
}
