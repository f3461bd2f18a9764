package visual

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	imagepkg "github.com/tcb-studio/vodunvisual/internal/image"
	"github.com/tcb-studio/vodunvisual/internal/theme"
)

const (
	MaxCustomTextRunes = imagepkg.MaxSloganRunes
	// DefaultCustomText prefills the slogan field.
	DefaultCustomText = "Ma culture est ma force"
)

// PhotoLoader fetches and decodes assets.
type PhotoLoader interface {
	LoadAll(ctx context.Context, refs ...imagepkg.AssetRef) ([]imagepkg.DecodedAsset, error)
}

// Composer renders a composition from a decoded photo.
type Composer interface {
	Compose(req imagepkg.Request, photo imagepkg.DecodedAsset) (*imagepkg.EncodedImage, error)
}

// Request is one visual generation as submitted by a user.
type Request struct {
	Photo      imagepkg.AssetRef
	CustomText string
	Theme      string
	Format     imagepkg.Format
}

// Generator runs the pipeline: resolve the theme, load the photo, compose.
type Generator struct {
	loader   PhotoLoader
	composer Composer
	log      zerolog.Logger
}

func NewGenerator(loader PhotoLoader, composer Composer, log zerolog.Logger) *Generator {
	return &Generator{loader: loader, composer: composer, log: log}
}

// Generate produces the encoded visual. The photo is loaded on every call;
// nothing is drawn unless the load succeeded.
func (g *Generator) Generate(ctx context.Context, req Request) (*imagepkg.EncodedImage, error) {
	th, err := theme.Lookup(req.Theme)
	if err != nil {
		return nil, err
	}
	assets, err := g.loader.LoadAll(ctx, req.Photo)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	photo := assets[0]
	g.log.Debug().
		Str("photo", photo.Ref.String()).
		Int("width", photo.Width).
		Int("height", photo.Height).
		Msg("photo loaded")

	return g.composer.Compose(imagepkg.Request{
		Theme:  th,
		Slogan: ClampText(req.CustomText),
		Format: req.Format,
	}, photo)
}

// ClampText trims s and cuts it to MaxCustomTextRunes, the limit of the
// slogan input field.
func ClampText(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= MaxCustomTextRunes {
		return s
	}
	return string([]rune(s)[:MaxCustomTextRunes])
}
