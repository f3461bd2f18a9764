package share

import (
	"errors"
	"fmt"
	"image/color"
	"net/url"
	"strings"

	imagepkg "github.com/tcb-studio/vodunvisual/internal/image"
)

// Caption accompanies every share.
const Caption = "Mon identité. Ma culture. #VodunDays"

// InstagramNotice tells the user how to post on Instagram, which has no web
// share intent.
const InstagramNotice = "Pour partager sur Instagram, veuillez télécharger l'image et la publier depuis votre application mobile"

type Platform string

const (
	WhatsApp  Platform = "whatsapp"
	Facebook  Platform = "facebook"
	Instagram Platform = "instagram"
)

var (
	ErrUnknownPlatform = errors.New("unknown share platform")
	// ErrNoWebIntent is returned for platforms that can only be shared to
	// from their mobile app.
	ErrNoWebIntent = errors.New("platform has no web share intent")
)

func ParsePlatform(s string) (Platform, error) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(s))); p {
	case WhatsApp, Facebook, Instagram:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
}

// IntentURL returns the web share link for p. pageURL is the page shared on
// Facebook.
func IntentURL(p Platform, pageURL string) (string, error) {
	switch p {
	case WhatsApp:
		return "https://wa.me/?text=" + escapeComponent(Caption), nil
	case Facebook:
		if pageURL == "" {
			return "", errors.New("facebook share needs a page url")
		}
		return "https://www.facebook.com/sharer/sharer.php?u=" + escapeComponent(pageURL), nil
	case Instagram:
		return "", ErrNoWebIntent
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, string(p))
}

// QRCode renders the share link of p as a PNG QR code so it can be opened on
// a phone.
func QRCode(p Platform, pageURL string, size int, fg color.Color) ([]byte, error) {
	link, err := IntentURL(p, pageURL)
	if err != nil {
		return nil, err
	}
	return imagepkg.GenerateQRPNG(link, size, imagepkg.QRStyle{Foreground: fg})
}

// escapeComponent escapes s for use inside a query value, with spaces as %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
