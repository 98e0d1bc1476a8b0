package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"wallpaper/internal/http/handlers"
	httpapi "wallpaper/internal/http/httpapi"
	"wallpaper/internal/imagegen"
	"wallpaper/internal/infra"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Without a key the server still starts; the generate endpoint reports
	// the configuration error per request.
	app := handlers.NewApp(cfg, logger, nil)
	if !cfg.HasAPIKey() {
		logger.Error().Msg("API_KEY environment variable is not set")
	} else if client, err := imagegen.NewClient(ctx, imagegen.Options{
		APIKey:  cfg.APIKey,
		Model:   cfg.ImagenModel,
		BaseURL: cfg.GeminiBaseURL,
		Logger:  &logger,
	}); err != nil {
		logger.Error().Err(err).Msg("imagen client unavailable")
	} else {
		app.Generator = client
		logger.Info().Str("model", client.Model()).Msg("imagen client ready")
	}

	router := httpapi.NewRouter(app, logger)
	server := infra.NewHTTPServer(cfg, router)

	logger.Info().Msgf("API listening on %s", server.Addr())
	if err := server.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("http server failed")
	}
	logger.Info().Msg("server stopped")
}
