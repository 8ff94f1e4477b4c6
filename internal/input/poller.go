package input

import (
	"math"

	"freedom-layer/internal/event"
)

const tapSlop = 10.0 // касание короче этого расстояния считается кликом

// Source is the host's raw input state, read once per Poll.
type Source interface {
	CursorPosition() (x, y int)
	AppendTouchIDs(ids []int) []int
	TouchPosition(id int) (x, y int)
	Wheel() (dx, dy float64)
	IsMouseJustPressed() bool
}

type touchState struct {
	start, last Point
}

// Poller converts polled input state into DOM-like events on the
// dispatcher. Poll must be called once per frame.
type Poller struct {
	src       Source
	bus       *event.Dispatcher
	caps      *Capabilities
	wheelStep float64

	viewport     Viewport
	scroll       float64
	cursor       Point
	cursorInside bool
	touchIDs     []int
	touches      map[int]*touchState
}

func NewPoller(src Source, bus *event.Dispatcher, caps *Capabilities, wheelStep float64) *Poller {
	return &Poller{
		src:       src,
		bus:       bus,
		caps:      caps,
		wheelStep: wheelStep,
		touches:   make(map[int]*touchState),
	}
}

// SetViewport records the window size reported by the host and emits
// Resize when it changed. The first size is taken silently.
func (p *Poller) SetViewport(v Viewport) {
	if v == p.viewport {
		return
	}
	first := p.viewport == (Viewport{})
	p.viewport = v
	if !first {
		p.bus.Dispatch(event.Event{Type: event.Resize, Data: v})
	}
}

func (p *Poller) Viewport() Viewport {
	return p.viewport
}

// SetScroll sets the page offset added to reported positions, so
// listeners receive page coordinates rather than window coordinates.
func (p *Poller) SetScroll(offset float64) {
	p.scroll = offset
}

func (p *Poller) page(x, y int) Point {
	return Point{X: float64(x), Y: float64(y) + p.scroll}
}

func (p *Poller) Poll() {
	p.pollTouches()
	if len(p.touches) == 0 {
		p.pollMouse()
	}
	if _, dy := p.src.Wheel(); dy != 0 {
		p.bus.Dispatch(event.Event{Type: event.Scroll, Data: -dy * p.wheelStep})
	}
}

func (p *Poller) pollTouches() {
	p.touchIDs = p.src.AppendTouchIDs(p.touchIDs[:0])

	seen := make(map[int]struct{}, len(p.touchIDs))
	for _, id := range p.touchIDs {
		seen[id] = struct{}{}
		pos := p.page(p.src.TouchPosition(id))

		st, ok := p.touches[id]
		if !ok {
			p.caps.Touch = true
			p.touches[id] = &touchState{start: pos, last: pos}
			p.bus.Dispatch(event.Event{Type: event.TouchStart, Data: pos})
			continue
		}
		if pos == st.last {
			continue
		}
		dy := pos.Y - st.last.Y
		st.last = pos
		if !p.bus.Dispatch(event.Event{Type: event.TouchMove, Data: pos}) {
			// прокрутка страницы пальцем
			p.bus.Dispatch(event.Event{Type: event.Scroll, Data: -dy})
		}
	}

	for id, st := range p.touches {
		if _, ok := seen[id]; ok {
			continue
		}
		delete(p.touches, id)
		p.bus.Dispatch(event.Event{Type: event.TouchEnd})
		if math.Hypot(st.last.X-st.start.X, st.last.Y-st.start.Y) < tapSlop {
			p.bus.Dispatch(event.Event{Type: event.Click, Data: st.last})
		}
	}
}

func (p *Poller) pollMouse() {
	x, y := p.src.CursorPosition()
	pos := p.page(x, y)
	inside := x >= 0 && y >= 0 && x < p.viewport.Width && y < p.viewport.Height

	switch {
	case inside && (!p.cursorInside || pos != p.cursor):
		p.bus.Dispatch(event.Event{Type: event.PointerMove, Data: pos})
	case !inside && p.cursorInside:
		p.bus.Dispatch(event.Event{Type: event.PointerLeave})
	}
	p.cursor = pos
	p.cursorInside = inside

	if inside && p.src.IsMouseJustPressed() {
		p.bus.Dispatch(event.Event{Type: event.Click, Data: pos})
	}
}
