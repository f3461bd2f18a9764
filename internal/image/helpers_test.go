package imagepkg

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/rs/zerolog"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// splitImage paints the left half of the image a and the right half b.
func splitImage(w, h int, a, b color.NRGBA) *image.NRGBA {
	img := solidImage(w, h, a)
	for y := 0; y < h; y++ {
		for x := w / 2; x < w; x++ {
			img.SetNRGBA(x, y, b)
		}
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func jpegBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func decoded(name string, img image.Image) DecodedAsset {
	b := img.Bounds()
	return DecodedAsset{Ref: DataRef(name, nil), Image: img, Width: b.Dx(), Height: b.Dy()}
}

func testStatic(t *testing.T) *StaticAssets {
	t.Helper()
	logo := decoded("logo", solidImage(520, 200, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}))
	sprite := decoded("sprite", solidImage(64, 64, color.NRGBA{R: 0xfa, G: 0xf0, B: 0xe0, A: 0xff}))
	s, err := NewStaticAssets(logo, &sprite)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func testCompositor(t *testing.T) *Compositor {
	t.Helper()
	c, err := NewCompositor(testStatic(t), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func testLoader() *Loader {
	return NewLoader(LoaderConfig{MaxBytes: 8 << 20}, zerolog.Nop())
}
