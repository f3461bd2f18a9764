package imagepkg

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"

	"github.com/tcb-studio/vodunvisual/internal/theme"
)

// Request is one composition: a theme, a slogan and the output format.
// The slogan is normalized by Compose, callers may pass raw user text.
type Request struct {
	Theme  theme.Spec
	Slogan string
	Format Format
}

// Compositor renders compositions. It keeps no per-call state and is safe
// for concurrent use; every call owns its own surface.
type Compositor struct {
	static *StaticAssets
	fonts  *Fonts
	log    zerolog.Logger
}

func NewCompositor(static *StaticAssets, log zerolog.Logger) (*Compositor, error) {
	if static == nil {
		return nil, errors.New("static assets are required")
	}
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}
	return &Compositor{static: static, fonts: fonts, log: log}, nil
}

// Compose draws every layer in order onto a fresh CanvasSize square and
// encodes it. Nothing is returned unless encoding succeeded.
func (c *Compositor) Compose(req Request, photo DecodedAsset) (*EncodedImage, error) {
	start := time.Now()
	if photo.Image == nil || photo.Width <= 0 || photo.Height <= 0 {
		return nil, &AssetLoadError{Ref: photo.Ref, Cause: errors.New("photo is not decoded")}
	}
	slogan := NormalizeSlogan(req.Slogan)

	titleFace, err := c.fonts.Bold(titleSize)
	if err != nil {
		return nil, &RenderError{Op: "title face", Cause: err}
	}
	defer titleFace.Close()
	sloganSize := FontSizeFor(slogan)
	sloganFace, err := c.fonts.Bold(sloganSize)
	if err != nil {
		return nil, &RenderError{Op: "slogan face", Cause: err}
	}
	defer sloganFace.Close()
	signatureFace, err := c.fonts.Regular(signatureSize)
	if err != nil {
		return nil, &RenderError{Op: "signature face", Cause: err}
	}
	defer signatureFace.Close()

	layout := LayoutSlogan(slogan, sloganSize, MeasureWith(sloganFace))

	dc, err := newSurface(CanvasSize, CanvasSize)
	if err != nil {
		return nil, err
	}
	th := req.Theme

	scoped(dc, func() { drawBackground(dc, th) })
	scoped(dc, func() { drawAccentGradient(dc, th) })
	scoped(dc, func() { c.drawMotifs(dc) })
	scoped(dc, func() { drawChains(dc, th) })
	scoped(dc, func() { drawPhoto(dc, photo) })
	scoped(dc, func() { drawBorder(dc) })
	scoped(dc, func() { drawCentered(dc, titleFace, white, titleText, titleBaseline) })
	scoped(dc, func() { c.drawLogo(dc) })
	if err := c.drawSlogan(dc, sloganFace, layout); err != nil {
		return nil, err
	}
	scoped(dc, func() { drawSignature(dc, signatureFace) })

	out, err := encode(dc.Image(), req.Format)
	if err != nil {
		return nil, err
	}
	c.log.Debug().
		Str("theme", string(th.Token)).
		Int("slogan_lines", len(layout.Lines)).
		Float64("slogan_size", layout.FontSize).
		Int("bytes", len(out.Data)).
		Dur("took", time.Since(start)).
		Msg("composition rendered")
	return out, nil
}

// scoped runs draw between Push and Pop so no color, dash, font or clip
// setting outlives its layer. gg's Pop keeps the current clip mask, so the
// clip is reset explicitly; layers never nest clipped scopes.
func scoped(dc *gg.Context, draw func()) {
	dc.Push()
	defer func() {
		dc.Pop()
		dc.ResetClip()
	}()
	draw()
}

// newSurface allocates a drawing context, turning allocation panics into
// RenderError.
func newSurface(w, h int) (dc *gg.Context, err error) {
	if w <= 0 || h <= 0 {
		return nil, &RenderError{Op: "allocate surface", Cause: fmt.Errorf("invalid size %dx%d", w, h)}
	}
	defer func() {
		if r := recover(); r != nil {
			dc = nil
			err = &RenderError{Op: "allocate surface", Cause: fmt.Errorf("%v", r)}
		}
	}()
	return gg.NewContext(w, h), nil
}

func drawCentered(dc *gg.Context, face font.Face, col color.Color, s string, baseline float64) {
	dc.SetFontFace(face)
	dc.SetColor(col)
	w := MeasureWith(face)(s)
	dc.DrawString(s, CanvasSize/2-w/2, baseline)
}
