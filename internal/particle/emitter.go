package particle

import (
	"image/color"
	"math"

	"freedom-layer/internal/config"
	"freedom-layer/internal/utils"
)

// Spark is a particle of the button emitter. It flies in a straight line
// and is dropped when its life runs out.
type Spark struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Alpha  float64
	Life   int
}

// Emitter pulls sparks from a ring toward the centre of a small square canvas.
type Emitter struct {
	cfg    config.ButtonConfig
	rng    *utils.PRNGService
	sparks []Spark
}

func NewEmitter(cfg config.ButtonConfig, rng *utils.PRNGService) *Emitter {
	return &Emitter{cfg: cfg, rng: rng}
}

func (e *Emitter) Sparks() []Spark { return e.sparks }
func (e *Emitter) Len() int        { return len(e.sparks) }

// Reset drops all sparks.
func (e *Emitter) Reset() {
	e.sparks = e.sparks[:0]
}

func (e *Emitter) center() (float64, float64) {
	half := float64(e.cfg.CanvasSize) / 2
	return half, half
}

// Spawn adds one batch of sparks on the ring.
func (e *Emitter) Spawn() {
	cx, cy := e.center()
	for i := 0; i < e.cfg.Batch; i++ {
		angle := e.rng.Angle()
		distance := e.rng.Spread(e.cfg.Radius, e.cfg.Jitter)
		x := cx + math.Cos(angle)*distance
		y := cy + math.Sin(angle)*distance

		e.sparks = append(e.sparks, Spark{
			X:     x,
			Y:     y,
			VX:    (cx - x) * e.cfg.Speed,
			VY:    (cy - y) * e.cfg.Speed,
			Size:  e.rng.Spread(e.cfg.SizeMin, e.cfg.SizeSpread),
			Alpha: e.rng.Spread(e.cfg.AlphaMin, e.cfg.AlphaSpread),
			Life:  e.cfg.LifeMin + e.rng.Intn(e.cfg.LifeSpread),
		})
	}
}

// Step clears the canvas, maybe spawns a batch, then advances and paints
// every live spark.
func (e *Emitter) Step(c Canvas) {
	c.Clear(color.Transparent)

	if e.rng.Chance(e.cfg.SpawnChance) {
		e.Spawn()
	}

	alive := e.sparks[:0]
	for _, s := range e.sparks {
		s.X += s.VX
		s.Y += s.VY
		s.Life--
		if s.Life <= 0 {
			continue
		}
		c.FillRect(s.X, s.Y, s.Size, s.Size, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(s.Alpha * 255)})
		alive = append(alive, s)
	}
	e.sparks = alive
}

// SetConfig swaps the tuning used for future batches.
func (e *Emitter) SetConfig(cfg config.ButtonConfig) {
	e.cfg = cfg
}
