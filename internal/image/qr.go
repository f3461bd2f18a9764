package imagepkg

import (
	"fmt"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	minQRSize = 64
	maxQRSize = 1024
)

// QRStyle colors a QR code.
type QRStyle struct {
	Foreground color.Color
	Background color.Color
}

func newQR(text string, style QRStyle) (*qrcode.QRCode, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	if style.Foreground != nil {
		q.ForegroundColor = style.Foreground
	}
	if style.Background != nil {
		q.BackgroundColor = style.Background
	}
	return q, nil
}

// GenerateQRPNG returns PNG bytes of a size×size QR code for text.
func GenerateQRPNG(text string, size int, style QRStyle) ([]byte, error) {
	if size < minQRSize || size > maxQRSize {
		return nil, fmt.Errorf("qr size %d outside [%d, %d]", size, minQRSize, maxQRSize)
	}
	q, err := newQR(text, style)
	if err != nil {
		return nil, err
	}
	return q.PNG(size)
}
