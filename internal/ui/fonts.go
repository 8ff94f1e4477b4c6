package ui

import (
	"fmt"

	"freedom-layer/internal/config"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Faces are the font faces of the info panel.
type Faces struct {
	Title   font.Face
	Heading font.Face
	Body    font.Face
}

// LoadFaces parses the embedded Go fonts at the panel sizes.
func LoadFaces() (*Faces, error) {
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}

	faces := &Faces{}
	for _, f := range []struct {
		dst  *font.Face
		src  *opentype.Font
		size float64
	}{
		{&faces.Title, bold, config.TitleFontSize},
		{&faces.Heading, bold, config.HeadingFontSize},
		{&faces.Body, regular, config.BodyFontSize},
	} {
		face, err := opentype.NewFace(f.src, &opentype.FaceOptions{
			Size:    f.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %.0fpx face: %w", f.size, err)
		}
		*f.dst = face
	}
	return faces, nil
}
