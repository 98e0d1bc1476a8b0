package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"wallpaper/internal/apiclient"
	"wallpaper/internal/domain"
	"wallpaper/internal/infra"
	"wallpaper/internal/session"
	"wallpaper/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	apiURL := flag.String("api", envOr("WALLPAPER_API_URL", apiclient.DefaultBaseURL), "base URL of the wallpaper API")
	outDir := flag.String("out", ".", "directory downloads are written to")
	device := flag.String("device", string(domain.DefaultDevice), "initial device: desktop, tablet or phone")
	logPath := flag.String("log", "wallpaper.log", "log file path")
	flag.Parse()

	initial, ok := domain.ParseDeviceProfile(*device)
	if !ok {
		return fmt.Errorf("unknown device %q", *device)
	}

	logger, closer := infra.NewFileLogger(*logPath, os.Getenv("APP_ENV"))
	defer closer.Close()

	client := apiclient.NewClient(apiclient.Options{BaseURL: *apiURL, Logger: &logger})
	ctrl := session.NewController(client, &logger)
	ctrl.SelectDevice(initial)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	program := tea.NewProgram(ui.NewModel(ctx, ctrl, ui.Options{OutDir: *outDir, Logger: &logger}))
	ctrl.Subscribe(ui.Notifier(program))
	ctrl.Subscribe(func(s session.State) {
		logger.Debug().
			Str("phase", s.Phase().String()).
			Str("device", string(s.Device)).
			Uint64("generation", s.Generation).
			Msg("session state changed")
	})

	logger.Info().Str("api", client.BaseURL()).Msg("wallpaper client started")
	if _, err := program.Run(); err != nil {
		logger.Error().Err(err).Msg("terminal program failed")
		return err
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
