package site

import (
	"strings"
	"testing"

	"freedom-layer/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tenPx measures every character as 10 pixels wide.
func tenPx(s string) float64 { return float64(10 * len(s)) }

func TestMeasurePanelShowsDescription(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	l := MeasurePanel(c, 1280, tenPx)
	require.NotEmpty(t, l.Intro)
	assert.Equal(t, c.Description, strings.Join(l.Intro, " "))
	assert.Greater(t, l.IntroY, l.HeadlineY)
	for _, line := range l.Intro {
		assert.LessOrEqual(t, tenPx(line), l.ContentWidth)
	}
	assert.Greater(t, l.Cards[0].Top, l.IntroY, "intro sits above the first card")
}

func TestMeasurePanelStacksCards(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	l := MeasurePanel(c, 1280, tenPx)
	assert.Equal(t, float64(config.PanelMaxWidth), l.ContentWidth)
	assert.Equal(t, (1280-float64(config.PanelMaxWidth))/2, l.Left)

	require.Len(t, l.Cards, len(c.Sections))
	for i, card := range l.Cards {
		assert.Equal(t, c.Sections[i].Heading, card.Heading)
		assert.NotEmpty(t, card.Lines)
		if i > 0 {
			prev := l.Cards[i-1]
			assert.Equal(t, prev.Top+prev.Height+config.CardGap, card.Top)
		}
	}
	last := l.Cards[len(l.Cards)-1]
	assert.Equal(t, last.Top+last.Height+config.CardGap, l.FooterY)
	assert.Greater(t, l.Height, l.FooterY)
}

func TestMeasurePanelNarrowViewportIsTaller(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	wide := MeasurePanel(c, 1280, tenPx)
	narrow := MeasurePanel(c, 375, tenPx)
	assert.Equal(t, 375-2*float64(config.PanelPadding), narrow.ContentWidth)
	assert.Greater(t, narrow.Height, wide.Height)
}
