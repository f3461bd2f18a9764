package imagepkg

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/tcb-studio/vodunvisual/internal/theme"
)

const (
	shadowBlur  = 8
	shadowAlpha = 0.7
)

func drawBackground(dc *gg.Context, th theme.Spec) {
	dc.SetColor(th.Background)
	dc.Clear()
}

// drawAccentGradient composites a translucent radial gradient over the
// background.
func drawAccentGradient(dc *gg.Context, th theme.Spec) {
	c := Center()
	grad := gg.NewRadialGradient(c.X, c.Y, 0, c.X, c.Y, gradientRadius)
	grad.AddColorStop(0, withAlpha(th.AccentLight, accentAlpha))
	grad.AddColorStop(1, withAlpha(th.AccentDark, accentAlpha))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, CanvasSize, CanvasSize)
	dc.Fill()
}

func (c *Compositor) drawMotifs(dc *gg.Context) {
	for _, m := range c.static.motifs {
		dc.DrawImageAnchored(m.img, m.x, m.y, 0.5, 0.5)
	}
}

func drawChains(dc *gg.Context, th theme.Spec) {
	dc.SetColor(th.ChainColor)
	for _, s := range chainSegments {
		dc.SetLineWidth(chainWidth)
		dc.SetDash(chainDash, chainGap)
		dc.DrawLine(s.From.X, s.From.Y, s.To.X, s.To.Y)
		dc.Stroke()
		dc.SetDash()
		for _, b := range ChainBeads(s) {
			dc.DrawCircle(b.X, b.Y, beadRadius)
			dc.Fill()
		}
	}
}

// drawPhoto cover-fits the photo into the circle's bounding square and
// clips it to the circle.
func drawPhoto(dc *gg.Context, photo DecodedAsset) {
	c := Center()
	square := coverSquare(photo.Image, 2*photoRadius)
	dc.DrawCircle(c.X, c.Y, photoRadius)
	dc.Clip()
	dc.DrawImage(square, int(c.X-photoRadius), int(c.Y-photoRadius))
}

// coverSquare crops the centered square of img and scales it to side×side.
// The crop happens in source pixels first, so the result never exceeds
// side×side whatever the source aspect ratio.
func coverSquare(img image.Image, side int) *image.NRGBA {
	b := img.Bounds()
	n := min(b.Dx(), b.Dy())
	return imaging.Resize(imaging.CropCenter(img, n, n), side, side, imaging.Lanczos)
}

// drawBorder strokes the photo circle; it runs outside the photo's clip.
func drawBorder(dc *gg.Context) {
	c := Center()
	dc.SetColor(gold)
	dc.SetLineWidth(borderWidth)
	dc.DrawCircle(c.X, c.Y, photoRadius)
	dc.Stroke()
}

func (c *Compositor) drawLogo(dc *gg.Context) {
	r := c.static.logoRect
	dc.DrawImage(c.static.logo, int(r.X), int(r.Y))
}

// drawSlogan draws the footer text over its own blurred shadow. The shadow
// is rendered on a separate surface, so nothing of it reaches later layers.
func (c *Compositor) drawSlogan(dc *gg.Context, face font.Face, l SloganLayout) error {
	if len(l.Lines) == 0 {
		return nil
	}
	sigma := shadowBlur / 2.0
	x0, y0, x1, y1 := l.bounds(math.Ceil(3 * sigma))
	band := image.Rect(x0, y0, x1, y1).Intersect(image.Rect(0, 0, CanvasSize, CanvasSize))
	layer, err := newSurface(band.Dx(), band.Dy())
	if err != nil {
		return err
	}
	layer.SetFontFace(face)
	layer.SetColor(color.NRGBA{A: uint8(math.Round(shadowAlpha * 255))})
	for i, line := range l.Lines {
		layer.DrawString(line, l.X[i]-float64(band.Min.X), l.Baselines[i]-float64(band.Min.Y))
	}
	shadow := imaging.Blur(layer.Image(), sigma)

	scoped(dc, func() {
		dc.DrawImage(shadow, band.Min.X, band.Min.Y)
		dc.SetFontFace(face)
		dc.SetColor(gold)
		for i, line := range l.Lines {
			dc.DrawString(line, l.X[i], l.Baselines[i])
		}
	})
	return nil
}

func drawSignature(dc *gg.Context, face font.Face) {
	col := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(math.Round(signatureOpacity * 255))}
	drawCentered(dc, face, col, signatureText, signatureBaseline)
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
