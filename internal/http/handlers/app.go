package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"wallpaper/internal/imagegen"
	"wallpaper/internal/infra"
)

// App carries the dependencies shared by every handler. Generator is nil
// when the server started without an API key.
type App struct {
	Config    *infra.Config
	Logger    zerolog.Logger
	Generator imagegen.Generator
}

func NewApp(cfg *infra.Config, logger zerolog.Logger, gen imagegen.Generator) *App {
	return &App{Config: cfg, Logger: logger, Generator: gen}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, errorResponse{Error: msg})
}
