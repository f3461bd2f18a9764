package theme

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Token selects one of the built-in themes.
type Token string

const (
	Green Token = "green"
	Red   Token = "red"
)

var ErrUnknownTheme = errors.New("unknown theme")

// Spec is an immutable color palette. Only the two values returned by All exist.
type Spec struct {
	Token       Token
	Name        string
	Tagline     string
	Background  color.NRGBA
	AccentLight color.NRGBA
	AccentDark  color.NRGBA
	ChainColor  color.NRGBA
}

var (
	green = Spec{
		Token:       Green,
		Name:        "Thème Vert",
		Tagline:     "Culture & Tradition",
		Background:  color.NRGBA{R: 0x1d, G: 0xa7, B: 0x8f, A: 0xff},
		AccentLight: color.NRGBA{R: 0x2b, G: 0xc9, B: 0xad, A: 0xff},
		AccentDark:  color.NRGBA{R: 0x15, G: 0x90, B: 0x78, A: 0xff},
		ChainColor:  color.NRGBA{R: 0xf4, G: 0xc4, B: 0x30, A: 0xff},
	}
	red = Spec{
		Token:       Red,
		Name:        "Thème Rouge",
		Tagline:     "Identité & Héritage",
		Background:  color.NRGBA{R: 0xcc, G: 0x18, B: 0x37, A: 0xff},
		AccentLight: color.NRGBA{R: 0xe6, G: 0x41, B: 0x5e, A: 0xff},
		AccentDark:  color.NRGBA{R: 0xa8, G: 0x13, B: 0x29, A: 0xff},
		ChainColor:  color.NRGBA{R: 0xf4, G: 0xc4, B: 0x30, A: 0xff},
	}
)

// All returns the built-in themes in display order.
func All() []Spec {
	return []Spec{green, red}
}

// Lookup resolves a token such as "green" or " RED ".
func Lookup(token string) (Spec, error) {
	switch Token(strings.ToLower(strings.TrimSpace(token))) {
	case Green:
		return green, nil
	case Red:
		return red, nil
	}
	return Spec{}, fmt.Errorf("%w: %q", ErrUnknownTheme, token)
}

// Hex formats c as #rrggbb, ignoring alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
