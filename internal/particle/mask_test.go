package particle

import (
	"testing"

	"freedom-layer/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textMask(t *testing.T, w, h int) (*Mask, Layout) {
	t.Helper()
	cfg := config.DefaultConfig().Field
	layout, err := ComputeLayout(cfg, w, h)
	require.NoError(t, err)
	mask, err := NewTextMask(cfg.Text, layout, cfg.AlphaThreshold)
	require.NoError(t, err)
	return mask, layout
}

func TestTextMaskIsNonEmpty(t *testing.T) {
	sizes := [][2]int{{200, 100}, {375, 667}, {768, 400}, {1280, 800}, {1920, 1080}}
	for _, s := range sizes {
		mask, _ := textMask(t, s[0], s[1])
		assert.Equal(t, s[0], mask.Width)
		assert.Equal(t, s[1], mask.Height)
		assert.Positive(t, mask.Count(), "viewport %dx%d", s[0], s[1])
	}
}

func TestTextMaskIsCentred(t *testing.T) {
	mask, layout := textMask(t, 1280, 800)
	left := (float64(mask.Width) - layout.TextWidth) / 2
	right := left + layout.TextWidth

	for y := 0; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			if !mask.Opaque(x, y) {
				continue
			}
			assert.GreaterOrEqual(t, float64(x), left-2)
			assert.LessOrEqual(t, float64(x), right+2)
			assert.InDelta(t, float64(mask.Height)/2, float64(y), layout.FontSize)
		}
	}
}

func TestMaskOpaqueBounds(t *testing.T) {
	m := &Mask{Width: 2, Height: 2, Stride: 2, Alpha: []uint8{0, 255, 128, 129}, Threshold: 128}
	assert.False(t, m.Opaque(0, 0))
	assert.True(t, m.Opaque(1, 0))
	assert.False(t, m.Opaque(0, 1)) // ровно порог не считается
	assert.True(t, m.Opaque(1, 1))
	assert.False(t, m.Opaque(-1, 0))
	assert.False(t, m.Opaque(2, 0))
	assert.Equal(t, 2, m.Count())

	var empty *Mask
	assert.False(t, empty.Opaque(0, 0))
	assert.Zero(t, empty.Count())
}

func TestSampleValidPosition(t *testing.T) {
	m := &Mask{Width: 4, Height: 4, Stride: 4, Alpha: make([]uint8, 16), Threshold: 128}
	m.Alpha[2*4+3] = 255 // (3, 2)

	t.Run("finds the opaque pixel", func(t *testing.T) {
		rng := &seqSource{vals: []int{0, 0, 1, 1, 3, 2}}
		pos, ok := SampleValidPosition(m, rng, 100)
		require.True(t, ok)
		assert.Equal(t, Position{X: 3, Y: 2}, pos)
		assert.Equal(t, 6, rng.i)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		rng := &seqSource{vals: []int{0}}
		_, ok := SampleValidPosition(m, rng, 100)
		assert.False(t, ok)
		assert.Equal(t, 200, rng.i)
	})

	t.Run("empty mask", func(t *testing.T) {
		blank := &Mask{Width: 4, Height: 4, Stride: 4, Alpha: make([]uint8, 16), Threshold: 128}
		_, ok := SampleValidPosition(blank, &seqSource{vals: []int{1, 2, 3}}, 100)
		assert.False(t, ok)
	})

	t.Run("nil mask", func(t *testing.T) {
		_, ok := SampleValidPosition(nil, &seqSource{vals: []int{0}}, 100)
		assert.False(t, ok)
	})
}
