package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointerCell(t *testing.T) {
	var c PointerCell
	assert.Equal(t, Point{}, c.Get())
	assert.False(t, c.Touching())

	c.Set(Point{X: 10, Y: 20})
	assert.Equal(t, Point{X: 10, Y: 20}, c.Get())

	c.SetTouching(true)
	assert.True(t, c.Touching())

	c.Reset()
	assert.Equal(t, Point{}, c.Get())
	assert.True(t, c.Touching(), "reset moves the pointer only")
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint("960, 540.5")
	assert.NoError(t, err)
	assert.Equal(t, Point{X: 960, Y: 540.5}, p)

	for _, bad := range []string{"", "960", "a,1", "1,b"} {
		_, err := ParsePoint(bad)
		assert.Error(t, err, bad)
	}
}
