package site

import "freedom-layer/internal/config"

const (
	HeadingGap = 12 // между заголовком карточки и текстом
	FooterGap  = 32
)

// Card is one measured section of the info panel.
type Card struct {
	Heading string
	Lines   []string
	Top     float64
	Height  float64
}

// PanelLayout is the info panel measured for one viewport width. Vertical
// positions are relative to the panel top; text positions are baselines.
type PanelLayout struct {
	Width        int
	Left         float64
	ContentWidth float64
	HeadlineY    float64
	Intro        []string // описание страницы под заголовком
	IntroY       float64  // baseline of the first intro line
	Cards        []Card
	FooterY      float64
	Height       float64
}

// MeasurePanel lays the content out for a viewport width. measure returns
// the advance of a string in the body face.
func MeasurePanel(c *Content, width int, measure func(string) float64) *PanelLayout {
	contentWidth := float64(width - 2*config.PanelPadding)
	if contentWidth > config.PanelMaxWidth {
		contentWidth = config.PanelMaxWidth
	}
	if contentWidth < 1 {
		contentWidth = 1
	}
	l := &PanelLayout{
		Width:        width,
		Left:         (float64(width) - contentWidth) / 2,
		ContentWidth: contentWidth,
	}

	y := float64(config.PanelPadding)
	l.HeadlineY = y + config.TitleFontSize
	y = l.HeadlineY

	l.Intro = Wrap(c.Description, contentWidth, measure)
	l.IntroY = y + config.LineHeight
	y += float64(len(l.Intro) * config.LineHeight)
	y += config.CardGap

	bodyWidth := contentWidth - 2*config.CardPadding
	for _, s := range c.Sections {
		lines := Wrap(s.Body, bodyWidth, measure)
		h := 2*config.CardPadding + config.HeadingFontSize + HeadingGap + float64(len(lines)*config.LineHeight)
		l.Cards = append(l.Cards, Card{Heading: s.Heading, Lines: lines, Top: y, Height: h})
		y += h + config.CardGap
	}

	l.FooterY = y
	l.Height = y + FooterGap + 2*config.LineHeight + config.PanelPadding
	return l
}
