package imagepkg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// Format is the output encoding of a composition.
type Format int

const (
	PNG Format = iota
	JPEG
)

// jpegQuality mirrors the 0.92 quality factor browsers use for canvas
// exports. PNG output is lossless and ignores it.
const jpegQuality = 92

// FilenamePrefix starts every download name.
const FilenamePrefix = "vodun-days-"

// ParseFormat accepts "", "png", "jpg" and "jpeg".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	}
	return PNG, fmt.Errorf("unsupported output format %q", s)
}

func (f Format) ContentType() string {
	if f == JPEG {
		return "image/jpeg"
	}
	return "image/png"
}

func (f Format) Extension() string {
	if f == JPEG {
		return ".jpg"
	}
	return ".png"
}

// EncodedImage is a finished composition. The caller owns Data.
type EncodedImage struct {
	Data   []byte
	Format Format
	Width  int
	Height int
}

func (e *EncodedImage) ContentType() string { return e.Format.ContentType() }

// DataURI returns the image as a base64 data: URI.
func (e *EncodedImage) DataURI() string {
	return "data:" + e.ContentType() + ";base64," + base64.StdEncoding.EncodeToString(e.Data)
}

// Filename returns the download name for an image produced at t.
func (e *EncodedImage) Filename(t time.Time) string {
	return fmt.Sprintf("%s%d%s", FilenamePrefix, t.UnixMilli(), e.Format.Extension())
}

func encode(img image.Image, f Format) (*EncodedImage, error) {
	var buf bytes.Buffer
	var err error
	switch f {
	case JPEG:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	default:
		err = imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	}
	if err != nil {
		return nil, &RenderError{Op: "encode", Cause: err}
	}
	b := img.Bounds()
	return &EncodedImage{Data: buf.Bytes(), Format: f, Width: b.Dx(), Height: b.Dy()}, nil
}
