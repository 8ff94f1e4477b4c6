package particle

import (
	"fmt"
	"math"
	"sync"

	"freedom-layer/internal/config"
	"freedom-layer/internal/utils"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

var (
	boldOnce sync.Once
	boldFont *opentype.Font
	boldErr  error
)

func loadBold() (*opentype.Font, error) {
	boldOnce.Do(func() {
		boldFont, boldErr = opentype.Parse(gobold.TTF)
		if boldErr != nil {
			boldErr = fmt.Errorf("failed to parse bold font: %w", boldErr)
		}
	})
	return boldFont, boldErr
}

func newFace(size float64) (font.Face, error) {
	f, err := loadBold()
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %.1fpx face: %w", size, err)
	}
	return face, nil
}

func measure(face font.Face, text string) float64 {
	return float64(font.MeasureString(face, text)) / 64
}

// Layout is everything derived from the viewport size.
type Layout struct {
	Width, Height int
	Mobile        bool
	FontSize      float64
	TextWidth     float64
	Radius        float64 // радиус взаимодействия с указателем
	Target        int     // целевое число частиц
}

// Classify reports whether a viewport of the given width uses the mobile profile.
func Classify(cfg config.FieldConfig, width int) bool {
	return width < cfg.MobileBreakpoint
}

// TargetCount scales the profile's base count by the square root of the
// canvas area relative to the reference resolution.
func TargetCount(cfg config.FieldConfig, width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	base := cfg.Profile(Classify(cfg, width)).BaseParticles
	ref := float64(cfg.ReferenceWidth) * float64(cfg.ReferenceHeight)
	return int(math.Floor(float64(base) * math.Sqrt(float64(width)*float64(height)/ref)))
}

// FontSize returns the width-scaled font size clamped to the profile range.
func FontSize(p config.ProfileConfig, width int) float64 {
	return utils.Clamp(p.BaseFontSize+float64(width)*p.FontScale, p.BaseFontSize, p.MaxFontSize)
}

// ComputeLayout classifies the viewport and sizes the headline. On mobile
// the font shrinks further when the text would overflow the allowed share
// of the width; the result is re-clamped so it never leaves the profile range.
func ComputeLayout(cfg config.FieldConfig, width, height int) (Layout, error) {
	if width <= 0 || height <= 0 {
		return Layout{}, fmt.Errorf("invalid viewport %dx%d", width, height)
	}
	mobile := Classify(cfg, width)
	prof := cfg.Profile(mobile)
	size := FontSize(prof, width)

	face, err := newFace(size)
	if err != nil {
		return Layout{}, err
	}
	textWidth := measure(face, cfg.Text)
	face.Close()

	limit := float64(width) * cfg.MaxTextWidthRatio
	if mobile && textWidth > limit {
		size = utils.Clamp(size*limit/textWidth, prof.BaseFontSize, prof.MaxFontSize)
		face, err = newFace(size)
		if err != nil {
			return Layout{}, err
		}
		textWidth = measure(face, cfg.Text)
		face.Close()
	}

	return Layout{
		Width:     width,
		Height:    height,
		Mobile:    mobile,
		FontSize:  size,
		TextWidth: textWidth,
		Radius:    prof.InteractionRadius,
		Target:    TargetCount(cfg, width, height),
	}, nil
}
