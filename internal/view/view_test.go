package view

import (
	"errors"
	"image/color"
	"testing"

	"freedom-layer/internal/config"
	"freedom-layer/internal/event"
	"freedom-layer/internal/frame"
	"freedom-layer/internal/input"
	"freedom-layer/internal/particle"
	"freedom-layer/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSurface struct {
	w, h    int
	clears  int
	rects   int
	resizes int
	failing bool
}

func (s *fakeSurface) Size() (int, int)                           { return s.w, s.h }
func (s *fakeSurface) Clear(color.Color)                          { s.clears++; s.rects = 0 }
func (s *fakeSurface) FillRect(_, _, _, _ float64, _ color.Color) { s.rects++ }

func (s *fakeSurface) Resize(w, h int) error {
	if s.failing {
		return errors.New("no context")
	}
	s.w, s.h = w, h
	s.resizes++
	return nil
}

// countingScheduler instruments a Queue so tests can see every request and cancel.
type countingScheduler struct {
	*frame.Queue
	requests, cancels int
}

func (c *countingScheduler) Request(cb frame.Callback) frame.ID {
	c.requests++
	return c.Queue.Request(cb)
}

func (c *countingScheduler) Cancel(id frame.ID) {
	c.cancels++
	c.Queue.Cancel(id)
}

type fieldFixture struct {
	view    *FieldView
	surface *fakeSurface
	sched   *countingScheduler
	bus     *event.Dispatcher
	pointer *input.PointerCell
	caps    *input.Capabilities
}

func newFieldFixture(t *testing.T, w, h int) *fieldFixture {
	t.Helper()
	fx := &fieldFixture{
		surface: &fakeSurface{w: w, h: h},
		sched:   &countingScheduler{Queue: frame.NewQueue()},
		bus:     event.NewDispatcher(),
		pointer: &input.PointerCell{},
		caps:    &input.Capabilities{},
	}
	field := particle.NewField(config.DefaultConfig().Field, utils.NewPRNGService(1), fx.caps, zap.NewNop())
	fx.view = NewFieldView(field, fx.surface, fx.sched, fx.bus, fx.pointer, fx.caps, zap.NewNop())
	return fx
}

func TestFieldViewMountRunsOneStepPerFrame(t *testing.T) {
	fx := newFieldFixture(t, 800, 450)
	require.True(t, fx.view.Mount())
	assert.True(t, fx.view.Mounted())
	assert.Equal(t, 1, fx.sched.Pending())
	assert.Equal(t, len(fieldEvents), fx.bus.ListenerCount())

	for i := 0; i < 5; i++ {
		assert.Equal(t, 1, fx.sched.Tick())
	}
	assert.Equal(t, uint64(5), fx.view.Frames())
	assert.Equal(t, 5, fx.surface.clears)
	assert.Positive(t, fx.surface.rects)
	assert.Equal(t, 1, fx.sched.Pending())

	// повторный Mount ничего не добавляет
	assert.True(t, fx.view.Mount())
	assert.Equal(t, 1, fx.sched.Pending())
	assert.Equal(t, len(fieldEvents), fx.bus.ListenerCount())
}

func TestFieldViewTeardownLeavesNothingBehind(t *testing.T) {
	fx := newFieldFixture(t, 800, 450)
	require.True(t, fx.view.Mount())
	fx.sched.Tick()
	fx.sched.Tick()

	fx.view.Teardown()
	assert.False(t, fx.view.Mounted())
	assert.Zero(t, fx.bus.ListenerCount())
	assert.Zero(t, fx.sched.Pending())
	assert.Equal(t, 1, fx.sched.cancels)

	fx.view.Teardown()
	assert.Equal(t, 1, fx.sched.cancels)
	assert.Equal(t, 0, fx.sched.Tick())
	assert.Equal(t, uint64(2), fx.view.Frames())
}

func TestFieldViewTeardownBeforeMount(t *testing.T) {
	fx := newFieldFixture(t, 800, 450)
	fx.view.Teardown()
	assert.Zero(t, fx.sched.requests)
	assert.Zero(t, fx.sched.cancels)
}

func TestFieldViewWithoutSurfaceIsNoop(t *testing.T) {
	bus := event.NewDispatcher()
	q := frame.NewQueue()
	caps := &input.Capabilities{}
	field := particle.NewField(config.DefaultConfig().Field, utils.NewPRNGService(1), caps, zap.NewNop())
	v := NewFieldView(field, nil, q, bus, &input.PointerCell{}, caps, zap.NewNop())

	assert.False(t, v.Mount())
	assert.Zero(t, bus.ListenerCount())
	assert.Zero(t, q.Pending())
	v.Teardown()
}

func TestFieldViewWithEmptySurfaceIsNoop(t *testing.T) {
	fx := newFieldFixture(t, 0, 0)
	assert.False(t, fx.view.Mount())
	assert.Zero(t, fx.bus.ListenerCount())
	assert.Zero(t, fx.sched.Pending())
}

func TestFieldViewPointerEvents(t *testing.T) {
	fx := newFieldFixture(t, 800, 450)
	require.True(t, fx.view.Mount())

	fx.bus.Dispatch(event.Event{Type: event.PointerMove, Data: input.Point{X: 10, Y: 20}})
	assert.Equal(t, input.Point{X: 10, Y: 20}, fx.pointer.Get())

	fx.bus.Dispatch(event.Event{Type: event.PointerLeave})
	assert.Equal(t, input.Point{}, fx.pointer.Get())

	fx.bus.Dispatch(event.Event{Type: event.TouchStart, Data: input.Point{X: 5, Y: 5}})
	assert.True(t, fx.pointer.Touching())

	prevented := fx.bus.Dispatch(event.Event{Type: event.TouchMove, Data: input.Point{X: 30, Y: 40}})
	assert.True(t, prevented)
	assert.Equal(t, input.Point{X: 30, Y: 40}, fx.pointer.Get())

	fx.bus.Dispatch(event.Event{Type: event.TouchEnd})
	assert.False(t, fx.pointer.Touching())
	assert.Equal(t, input.Point{}, fx.pointer.Get())
}

func TestFieldViewTouchBelowHeroScrollsPage(t *testing.T) {
	fx := newFieldFixture(t, 800, 450)
	require.True(t, fx.view.Mount())

	fx.bus.Dispatch(event.Event{Type: event.TouchStart, Data: input.Point{X: 5, Y: 500}})
	prevented := fx.bus.Dispatch(event.Event{Type: event.TouchMove, Data: input.Point{X: 5, Y: 520}})
	assert.False(t, prevented)
	assert.Equal(t, input.Point{X: 5, Y: 520}, fx.pointer.Get())
}

func TestFieldViewPointerLeaveIgnoredOnTouchDevices(t *testing.T) {
	fx := newFieldFixture(t, 800, 450)
	fx.caps.Touch = true
	require.True(t, fx.view.Mount())

	fx.bus.Dispatch(event.Event{Type: event.PointerMove, Data: input.Point{X: 10, Y: 20}})
	fx.bus.Dispatch(event.Event{Type: event.PointerLeave})
	assert.Equal(t, input.Point{X: 10, Y: 20}, fx.pointer.Get())
}

func TestFieldViewResizeResetsField(t *testing.T) {
	fx := newFieldFixture(t, 1920, 1080)
	require.True(t, fx.view.Mount())
	assert.Equal(t, 7000, fx.view.Field().Target())

	fx.bus.Dispatch(event.Event{Type: event.Resize, Data: input.Viewport{Width: 375, Height: 667}})

	assert.Equal(t, 1, fx.surface.resizes)
	assert.True(t, fx.view.Field().Layout().Mobile)
	assert.Equal(t, 1389, fx.view.Field().Target())
	for _, p := range fx.view.Field().Particles() {
		assert.Less(t, p.BaseX, 375.0)
	}
	// перезапуск на месте: те же подписки и один кадр в очереди
	assert.Equal(t, len(fieldEvents), fx.bus.ListenerCount())
	assert.Equal(t, 1, fx.sched.Pending())
}

func TestFieldViewResizeFailureKeepsRunning(t *testing.T) {
	fx := newFieldFixture(t, 800, 450)
	require.True(t, fx.view.Mount())
	target := fx.view.Field().Target()
	fx.surface.failing = true

	fx.bus.Dispatch(event.Event{Type: event.Resize, Data: input.Viewport{Width: 300, Height: 300}})
	assert.Equal(t, target, fx.view.Field().Target())
	assert.Equal(t, 1, fx.sched.Tick())
}

func TestFieldViewReconfigure(t *testing.T) {
	fx := newFieldFixture(t, 1920, 1080)
	require.True(t, fx.view.Mount())

	cfg := config.DefaultConfig().Field
	cfg.Desktop.BaseParticles = 1000
	fx.view.Reconfigure(cfg)
	assert.Equal(t, 1000, fx.view.Field().Target())
	assert.LessOrEqual(t, fx.view.Field().Len(), 1000)
}

func TestButtonViewLifecycle(t *testing.T) {
	sched := &countingScheduler{Queue: frame.NewQueue()}
	surface := &fakeSurface{w: 100, h: 100}
	cfg := config.DefaultConfig().Button
	v := NewButtonView(particle.NewEmitter(cfg, utils.NewPRNGService(2)), surface, sched, zap.NewNop())

	require.True(t, v.Mount())
	assert.Equal(t, cfg.Batch, v.Emitter().Len())
	assert.Equal(t, 1, sched.Pending())

	for i := 0; i < 10; i++ {
		sched.Tick()
	}
	assert.Equal(t, 10, surface.clears)

	v.Teardown()
	v.Teardown()
	assert.False(t, v.Mounted())
	assert.Zero(t, sched.Pending())
	assert.Equal(t, 1, sched.cancels)
}

func TestButtonViewWithoutSurfaceIsNoop(t *testing.T) {
	q := frame.NewQueue()
	v := NewButtonView(particle.NewEmitter(config.DefaultConfig().Button, utils.NewPRNGService(2)), nil, q, zap.NewNop())
	assert.False(t, v.Mount())
	assert.Zero(t, q.Pending())
}
