package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tcb-studio/vodunvisual/internal/api"
	"github.com/tcb-studio/vodunvisual/internal/config"
	imagepkg "github.com/tcb-studio/vodunvisual/internal/image"
	"github.com/tcb-studio/vodunvisual/internal/logging"
	"github.com/tcb-studio/vodunvisual/internal/visual"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := logging.New(cfg.AppEnv)

	loader := imagepkg.NewLoader(imagepkg.LoaderConfig{
		Client:    &http.Client{Timeout: cfg.FetchTimeout},
		MaxBytes:  cfg.MaxPhotoBytes,
		MaxPixels: cfg.MaxPhotoPixels,
	}, logger)

	// Static assets are loaded once; the service does not start without them.
	var sprite *imagepkg.AssetRef
	if cfg.SpritePath != "" {
		ref := imagepkg.ParseRef("sprite", cfg.SpritePath)
		sprite = &ref
	}
	startCtx, cancel := context.WithTimeout(context.Background(), 2*cfg.FetchTimeout)
	static, err := imagepkg.LoadStatic(startCtx, loader, imagepkg.ParseRef("logo", cfg.LogoPath), sprite)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load static assets")
	}
	compositor, err := imagepkg.NewCompositor(static, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build compositor")
	}
	gen := visual.NewGenerator(loader, compositor, logger)

	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), api.RequestID(), api.AccessLog(logger))
	r.MaxMultipartMemory = cfg.MaxPhotoBytes + 1<<20
	api.RegisterRoutes(r, api.NewHandlers(gen, api.Options{
		MaxPhotoBytes: cfg.MaxPhotoBytes,
		SharePageURL:  cfg.SharePageURL,
	}, logger))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
	}

	go func() {
		logger.Info().Msgf("listening on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
