package imagepkg

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts holds the parsed typefaces. Parsed fonts are safe to share; faces
// are not, so every composition creates its own.
type Fonts struct {
	bold    *opentype.Font
	regular *opentype.Font
}

func LoadFonts() (*Fonts, error) {
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	return &Fonts{bold: bold, regular: regular}, nil
}

// Bold returns a bold face of the given pixel size.
func (f *Fonts) Bold(size float64) (font.Face, error) {
	return newFace(f.bold, size)
}

// Regular returns a regular face of the given pixel size.
func (f *Fonts) Regular(size float64) (font.Face, error) {
	return newFace(f.regular, size)
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	// 72 DPI makes points equal to pixels
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// MeasureWith measures strings rendered with face.
func MeasureWith(face font.Face) MeasureFunc {
	return func(s string) float64 {
		return float64(font.MeasureString(face, s)) / 64
	}
}
