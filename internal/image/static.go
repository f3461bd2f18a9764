package imagepkg

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// StaticAssets are the bundled images shared by every composition. They are
// decoded and prepared once; only the user photo is loaded per request.
type StaticAssets struct {
	Logo   DecodedAsset
	Sprite *DecodedAsset

	logo     *image.NRGBA
	logoRect Rect
	motifs   []motif
}

type motif struct {
	img  *image.NRGBA
	x, y int
}

// LoadStatic loads the logo and, when sprite is non-nil, the decorative
// sprite. Any failure is returned; there is no degraded mode.
func LoadStatic(ctx context.Context, loader *Loader, logo AssetRef, sprite *AssetRef) (*StaticAssets, error) {
	refs := []AssetRef{logo}
	if sprite != nil {
		refs = append(refs, *sprite)
	}
	assets, err := loader.LoadAll(ctx, refs...)
	if err != nil {
		return nil, err
	}
	var s *DecodedAsset
	if sprite != nil {
		s = &assets[1]
	}
	return NewStaticAssets(assets[0], s)
}

// NewStaticAssets prepares already decoded assets: the logo is scaled to the
// footer width and the sprite is faded, scaled and rotated for every motif
// placement.
func NewStaticAssets(logo DecodedAsset, sprite *DecodedAsset) (*StaticAssets, error) {
	if logo.Image == nil || logo.Width <= 0 || logo.Height <= 0 {
		return nil, errors.New("logo asset is empty")
	}
	s := &StaticAssets{Logo: logo, Sprite: sprite}
	s.logoRect = FooterLogoRect(logo.Width, logo.Height)
	s.logo = imaging.Resize(logo.Image, int(s.logoRect.W), int(s.logoRect.H), imaging.Lanczos)

	if sprite == nil || sprite.Image == nil {
		s.Sprite = nil
		return s, nil
	}
	faded := imaging.AdjustFunc(sprite.Image, func(c color.NRGBA) color.NRGBA {
		c.A = uint8(math.Round(float64(c.A) * motifOpacity))
		return c
	})
	for _, p := range motifPlacements {
		side := int(math.Round(motifBaseSize * p.Scale))
		m := imaging.Resize(faded, side, side, imaging.Lanczos)
		// imaging rotates counter-clockwise, placements are clockwise on screen
		m = imaging.Rotate(m, -p.Rotation, color.Transparent)
		s.motifs = append(s.motifs, motif{img: m, x: int(math.Round(p.X)), y: int(math.Round(p.Y))})
	}
	return s, nil
}
