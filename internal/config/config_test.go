package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "PORT", "LOGO_PATH", "MAX_PHOTO_BYTES", "MAX_PHOTO_PIXELS", "FETCH_TIMEOUT_SECONDS", "SHARE_PAGE_URL"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "8080" || cfg.AppEnv != "development" || !cfg.Development() {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.LogoPath != "public/vodun-days.png" {
		t.Errorf("LogoPath = %q", cfg.LogoPath)
	}
	if cfg.MaxPhotoBytes != 10<<20 || cfg.FetchTimeout != 12*time.Second {
		t.Errorf("limits = %d, %s", cfg.MaxPhotoBytes, cfg.FetchTimeout)
	}
	if cfg.MaxPhotoPixels != 40_000_000 {
		t.Errorf("MaxPhotoPixels = %d", cfg.MaxPhotoPixels)
	}
	if cfg.HTTPWriteTimeout != 30*time.Second {
		t.Errorf("HTTPWriteTimeout = %s", cfg.HTTPWriteTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("SPRITE_PATH", "")
	t.Setenv("MAX_PHOTO_BYTES", "2048")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "not-a-number")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Development() || cfg.Port != "9000" || cfg.MaxPhotoBytes != 2048 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.SpritePath != "" {
		t.Errorf("an empty SPRITE_PATH disables motifs, got %q", cfg.SpritePath)
	}
	if cfg.FetchTimeout != 12*time.Second {
		t.Errorf("invalid ints fall back to the default, got %s", cfg.FetchTimeout)
	}
}

func TestLoadRejectsNonPositiveLimit(t *testing.T) {
	t.Setenv("MAX_PHOTO_BYTES", "-1")
	if _, err := Load(); err == nil {
		t.Fatal("negative MAX_PHOTO_BYTES accepted")
	}
}

func TestLoadRejectsNonPositivePixelCap(t *testing.T) {
	t.Setenv("MAX_PHOTO_PIXELS", "0")
	if _, err := Load(); err == nil {
		t.Fatal("zero MAX_PHOTO_PIXELS accepted")
	}
}
