package imagepkg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
)

// DefaultMaxPixels caps the decoded size when LoaderConfig.MaxPixels is 0.
const DefaultMaxPixels = 40_000_000

// ErrTooManyPixels is returned when an image header declares more pixels
// than the loader accepts.
var ErrTooManyPixels = errors.New("image dimensions exceed pixel limit")

// LoaderConfig tunes how assets are fetched. MaxBytes bounds the encoded
// size, MaxPixels the decoded one.
type LoaderConfig struct {
	Client    *http.Client
	MaxBytes  int64
	MaxPixels int64
}

// Loader fetches and decodes image assets.
type Loader struct {
	client    *http.Client
	maxBytes  int64
	maxPixels int64
	log       zerolog.Logger
}

func NewLoader(cfg LoaderConfig, log zerolog.Logger) *Loader {
	maxPixels := cfg.MaxPixels
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return &Loader{
		client:    cfg.Client,
		maxBytes:  cfg.MaxBytes,
		maxPixels: maxPixels,
		log:       log,
	}
}

// LoadAll fetches and decodes every ref concurrently. Results follow the
// order of refs. The first failure is returned as soon as it is known; the
// remaining loads are cancelled and finish in the background.
func (l *Loader) LoadAll(ctx context.Context, refs ...AssetRef) ([]DecodedAsset, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	loadCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		idx   int
		asset DecodedAsset
		err   error
	}
	// buffered so stragglers never block after we return
	results := make(chan result, len(refs))
	for i, ref := range refs {
		go func(i int, ref AssetRef) {
			a, err := l.load(loadCtx, ref)
			results <- result{idx: i, asset: a, err: err}
		}(i, ref)
	}

	out := make([]DecodedAsset, len(refs))
	for range refs {
		select {
		case r := <-results:
			if r.err != nil {
				return nil, r.err
			}
			out[r.idx] = r.asset
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return out, nil
}

func (l *Loader) load(ctx context.Context, ref AssetRef) (DecodedAsset, error) {
	start := time.Now()
	b, err := l.fetch(ctx, ref)
	if err != nil {
		return DecodedAsset{}, &AssetLoadError{Ref: ref, Cause: err}
	}
	if err := l.checkDimensions(b); err != nil {
		return DecodedAsset{}, &AssetLoadError{Ref: ref, Cause: err}
	}
	img, err := imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true))
	if err != nil {
		return DecodedAsset{}, &AssetLoadError{Ref: ref, Cause: err}
	}
	size := img.Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return DecodedAsset{}, &AssetLoadError{Ref: ref, Cause: errors.New("image has no pixels")}
	}
	l.log.Debug().
		Str("asset", ref.String()).
		Int("width", size.X).
		Int("height", size.Y).
		Dur("took", time.Since(start)).
		Msg("asset decoded")
	return DecodedAsset{Ref: ref, Image: img, Width: size.X, Height: size.Y}, nil
}

// checkDimensions reads only the image header and rejects images whose
// decoded size would exceed the pixel cap.
func (l *Loader) checkDimensions(b []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.New("image has no pixels")
	}
	if px := int64(cfg.Width) * int64(cfg.Height); px > l.maxPixels {
		return fmt.Errorf("%w: %dx%d", ErrTooManyPixels, cfg.Width, cfg.Height)
	}
	return nil
}
