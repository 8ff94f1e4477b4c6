package view

import (
	"math"

	"freedom-layer/internal/event"
	"freedom-layer/internal/utils"
)

// Scroll is the vertical page scroll. Wheel and drag deltas apply at once;
// ScrollTo glides toward its target. Past the reveal threshold the info
// panel is revealed for good.
type Scroll struct {
	offset    float64
	target    float64
	max       float64
	threshold float64
	ease      float64
	revealed  bool
}

func NewScroll(threshold, ease float64) *Scroll {
	return &Scroll{threshold: threshold, ease: ease}
}

// SetMax sets the scrollable height (content height minus viewport height).
func (s *Scroll) SetMax(max float64) {
	s.max = math.Max(0, max)
	s.offset = utils.Clamp(s.offset, 0, s.max)
	s.target = utils.Clamp(s.target, 0, s.max)
}

// By scrolls immediately by delta pixels.
func (s *Scroll) By(delta float64) {
	s.offset = utils.Clamp(s.offset+delta, 0, s.max)
	s.target = s.offset
	s.checkReveal()
}

// ScrollTo starts a smooth scroll to y.
func (s *Scroll) ScrollTo(y float64) {
	s.target = utils.Clamp(y, 0, s.max)
}

// Reveal shows the info panel regardless of the offset.
func (s *Scroll) Reveal() {
	s.revealed = true
}

// Update advances the smooth scroll by one tick.
func (s *Scroll) Update() {
	if s.offset != s.target {
		s.offset = utils.Lerp(s.offset, s.target, s.ease)
		if math.Abs(s.target-s.offset) < 0.5 {
			s.offset = s.target
		}
	}
	s.checkReveal()
}

func (s *Scroll) checkReveal() {
	if s.offset > s.threshold {
		s.revealed = true
	}
}

func (s *Scroll) Offset() float64 { return s.offset }
func (s *Scroll) Target() float64 { return s.target }
func (s *Scroll) Max() float64    { return s.max }
func (s *Scroll) Revealed() bool  { return s.revealed }

// OnEvent implements event.Listener for event.Scroll.
func (s *Scroll) OnEvent(e event.Event) {
	if e.Type != event.Scroll {
		return
	}
	if delta, ok := e.Data.(float64); ok {
		s.By(delta)
	}
}

// Fade is an opacity transition toward 0 or 1 at a fixed rate per second.
type Fade struct {
	value float64
	speed float64
}

func NewFade(speed float64) *Fade {
	return &Fade{speed: speed}
}

func (f *Fade) Update(dt float64, visible bool) {
	target := 0.0
	if visible {
		target = 1
	}
	f.value = utils.Approach(f.value, target, f.speed*dt)
}

func (f *Fade) Value() float64 { return f.value }
