// internal/ui/info_panel.go
package ui

import (
	"image/color"

	"freedom-layer/internal/config"
	"freedom-layer/internal/site"
	"freedom-layer/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const borderStroke = 1

// InfoPanel is the below-the-fold section with the page copy.
type InfoPanel struct {
	content *site.Content
	faces   *Faces
	layout  *site.PanelLayout
}

func NewInfoPanel(content *site.Content, faces *Faces) *InfoPanel {
	return &InfoPanel{content: content, faces: faces}
}

func measureWith(face font.Face) func(string) float64 {
	return func(s string) float64 {
		return float64(font.MeasureString(face, s)) / 64
	}
}

// measure lays the panel out for width; the result is cached per width.
func (p *InfoPanel) measure(width int) *site.PanelLayout {
	if p.layout == nil || p.layout.Width != width {
		p.layout = site.MeasurePanel(p.content, width, measureWith(p.faces.Body))
	}
	return p.layout
}

// Height is the panel height at the given viewport width.
func (p *InfoPanel) Height(width int) float64 {
	return p.measure(width).Height
}

// Draw paints the panel with its top edge at top, faded by alpha.
func (p *InfoPanel) Draw(screen *ebiten.Image, top float64, alpha float64) {
	if alpha <= 0 {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	l := p.measure(width)
	if top >= float64(height) || top+l.Height <= 0 {
		return
	}

	centred := func(s string, face font.Face, y float64, clr color.Color) {
		b := text.BoundString(face, s)
		x := (width - b.Dx()) / 2
		text.Draw(screen, s, face, x, int(top+y), render.WithAlpha(clr, alpha))
	}

	centred(p.content.Headline, p.faces.Title, l.HeadlineY, config.TextLightColor)
	for i, line := range l.Intro {
		centred(line, p.faces.Body, l.IntroY+float64(i*config.LineHeight), config.TextMutedColor)
	}

	for _, c := range l.Cards {
		x, y := float32(l.Left), float32(top+c.Top)
		w, h := float32(l.ContentWidth), float32(c.Height)
		vector.DrawFilledRect(screen, x, y, w, h, render.WithAlpha(config.CardColor, alpha), true)
		vector.StrokeRect(screen, x, y, w, h, borderStroke, render.WithAlpha(config.CardBorderColor, alpha), true)

		tx := int(l.Left) + config.CardPadding
		ty := top + c.Top + config.CardPadding + config.HeadingFontSize
		text.Draw(screen, c.Heading, p.faces.Heading, tx, int(ty), render.WithAlpha(config.TextLightColor, alpha))
		ty += site.HeadingGap
		for _, line := range c.Lines {
			ty += config.LineHeight
			text.Draw(screen, line, p.faces.Body, tx, int(ty), render.WithAlpha(config.TextMutedColor, alpha))
		}
	}

	// Подвал: линия, слоган и ссылка на репозиторий
	fy := float32(top + l.FooterY)
	vector.StrokeLine(screen, float32(l.Left), fy, float32(l.Left+l.ContentWidth), fy, borderStroke, render.WithAlpha(config.CardBorderColor, alpha), true)
	centred(p.content.Tagline, p.faces.Body, l.FooterY+site.FooterGap, config.TextMutedColor)
	centred(p.content.Repository, p.faces.Body, l.FooterY+site.FooterGap+config.LineHeight, config.LinkColor)
}
