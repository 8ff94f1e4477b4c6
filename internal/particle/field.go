package particle

import (
	"math"

	"freedom-layer/internal/config"
	"freedom-layer/internal/input"
	"freedom-layer/internal/utils"

	"go.uber.org/zap"
)

// Particle is one dot of the headline.
type Particle struct {
	X, Y         float64
	BaseX, BaseY float64 // точка покоя на маске, не меняется
	Size         float64
	Life         int
}

// Repel pushes p directly away from the pointer. The offset is taken from
// the rest position every frame, so it never accumulates.
func Repel(p *Particle, pointer input.Point, radius, strength float64) {
	dx := pointer.X - p.X
	dy := pointer.Y - p.Y
	distance := math.Hypot(dx, dy)
	force := (radius - distance) / radius
	angle := math.Atan2(dy, dx)
	p.X = p.BaseX - math.Cos(angle)*force*strength
	p.Y = p.BaseY - math.Sin(angle)*force*strength
}

// Settle eases p toward its rest position by the given fraction.
func Settle(p *Particle, ease float64) {
	p.X += (p.BaseX - p.X) * ease
	p.Y += (p.BaseY - p.Y) * ease
}

// Field is the headline particle population and its per-frame physics.
type Field struct {
	cfg    config.FieldConfig
	rng    *utils.PRNGService
	caps   *input.Capabilities
	log    *zap.Logger
	layout Layout
	mask   *Mask

	particles []Particle
}

func NewField(cfg config.FieldConfig, rng *utils.PRNGService, caps *input.Capabilities, log *zap.Logger) *Field {
	return &Field{
		cfg:  cfg,
		rng:  rng,
		caps: caps,
		log:  log,
	}
}

// Reset is the full resize path: recompute the layout, regenerate the mask,
// drop every particle and seed the initial population again.
func (f *Field) Reset(width, height int) error {
	layout, err := ComputeLayout(f.cfg, width, height)
	if err != nil {
		return err
	}
	mask, err := NewTextMask(f.cfg.Text, layout, f.cfg.AlphaThreshold)
	if err != nil {
		return err
	}
	f.layout = layout
	f.mask = mask
	f.particles = f.particles[:0]

	for i := 0; i < layout.Target; i++ {
		if p, ok := f.spawn(); ok {
			f.particles = append(f.particles, p)
		}
	}

	f.log.Debug("field reset",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Bool("mobile", layout.Mobile),
		zap.Float64("font_size", layout.FontSize),
		zap.Int("target", layout.Target),
		zap.Int("seeded", len(f.particles)),
	)
	return nil
}

// SetConfig swaps the tuning; callers follow it with Reset.
func (f *Field) SetConfig(cfg config.FieldConfig) {
	f.cfg = cfg
}

func (f *Field) Layout() Layout             { return f.layout }
func (f *Field) Mask() *Mask                { return f.mask }
func (f *Field) Target() int                { return f.layout.Target }
func (f *Field) Particles() []Particle      { return f.particles }
func (f *Field) Len() int                   { return len(f.particles) }
func (f *Field) Config() config.FieldConfig { return f.cfg }

func (f *Field) spawn() (Particle, bool) {
	pos, ok := SampleValidPosition(f.mask, f.rng, f.cfg.MaxSampleAttempts)
	if !ok {
		return Particle{}, false
	}
	x, y := float64(pos.X), float64(pos.Y)
	return Particle{
		X:     x,
		Y:     y,
		BaseX: x,
		BaseY: y,
		Size:  f.rng.Spread(f.cfg.SizeMin, f.cfg.SizeSpread),
		Life:  f.cfg.LifeMin + f.rng.Intn(f.cfg.LifeSpread),
	}, true
}

// Step advances and paints one frame.
func (f *Field) Step(c Canvas, pointer *input.PointerCell) {
	c.Clear(config.BackgroundColor)

	ptr := pointer.Get()
	active := pointer.Touching() || !f.caps.Touch
	radius := f.layout.Radius

	alive := f.particles[:0]
	for i := range f.particles {
		p := f.particles[i]

		dx := ptr.X - p.X
		dy := ptr.Y - p.Y
		if active && math.Hypot(dx, dy) < radius {
			Repel(&p, ptr, radius, f.cfg.RepelStrength)
		} else {
			Settle(&p, f.cfg.Ease)
		}

		c.FillRect(p.X, p.Y, p.Size, p.Size, config.ParticleColor)

		p.Life--
		if p.Life <= 0 {
			np, ok := f.spawn()
			if !ok {
				continue // популяция уменьшается
			}
			p = np
		}
		alive = append(alive, p)
	}
	f.particles = alive

	f.topUp()
}

// topUp adds particles toward the target, trying at most TopUpBudget
// spawns per frame so an empty mask cannot stall the loop.
func (f *Field) topUp() {
	deficit := f.layout.Target - len(f.particles)
	if deficit <= 0 {
		return
	}
	tries := deficit
	if f.cfg.TopUpBudget > 0 && tries > f.cfg.TopUpBudget {
		tries = f.cfg.TopUpBudget
	}
	for i := 0; i < tries; i++ {
		if p, ok := f.spawn(); ok {
			f.particles = append(f.particles, p)
		}
	}
}
