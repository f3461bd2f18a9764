package imagepkg

import (
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadStatic(t *testing.T) {
	dir := t.TempDir()
	logo := filepath.Join(dir, "logo.png")
	sprite := filepath.Join(dir, "cowrie.png")
	if err := os.WriteFile(logo, pngBytes(t, solidImage(520, 200, color.NRGBA{A: 0xff})), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(sprite, pngBytes(t, solidImage(32, 48, color.NRGBA{R: 0xff, A: 0xff})), 0o644); err != nil {
		t.Fatal(err)
	}

	spriteRef := FileRef("sprite", sprite)
	s, err := LoadStatic(context.Background(), testLoader(), FileRef("logo", logo), &spriteRef)
	if err != nil {
		t.Fatal(err)
	}
	if s.Logo.Width != 520 || s.Sprite == nil || s.Sprite.Height != 48 {
		t.Fatalf("static = %+v", s)
	}
	if b := s.logo.Bounds(); b.Dx() != logoWidth || b.Dy() != 100 {
		t.Errorf("scaled logo = %v", b)
	}
	if len(s.motifs) != len(motifPlacements) {
		t.Errorf("motifs = %d, want %d", len(s.motifs), len(motifPlacements))
	}
	// the faded sprite never exceeds the motif opacity
	for _, m := range s.motifs {
		for i := 3; i < len(m.img.Pix); i += 4 {
			if m.img.Pix[i] > 77 {
				t.Fatalf("motif alpha %d above 30%%", m.img.Pix[i])
			}
		}
	}
}

func TestLoadStaticWithoutSprite(t *testing.T) {
	logo := DataRef("logo", pngBytes(t, solidImage(100, 50, color.NRGBA{A: 0xff})))
	s, err := LoadStatic(context.Background(), testLoader(), logo, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Sprite != nil || len(s.motifs) != 0 {
		t.Fatalf("static = %+v", s)
	}
}

func TestLoadStaticFailure(t *testing.T) {
	sprite := DataRef("sprite", []byte("nope"))
	_, err := LoadStatic(context.Background(), testLoader(),
		DataRef("logo", pngBytes(t, solidImage(10, 10, color.NRGBA{A: 0xff}))), &sprite)
	var le *AssetLoadError
	if !errors.As(err, &le) || le.Ref.Name != "sprite" {
		t.Fatalf("err = %v", err)
	}
}

func TestNewStaticAssetsRejectsEmptyLogo(t *testing.T) {
	if _, err := NewStaticAssets(DecodedAsset{}, nil); err == nil {
		t.Fatal("empty logo accepted")
	}
}
