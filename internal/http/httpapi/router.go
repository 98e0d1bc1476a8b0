package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"wallpaper/internal/http/handlers"
	"wallpaper/internal/middleware"
)

func NewRouter(app *handlers.App, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	var origins []string
	if app.Config != nil {
		origins = app.Config.AllowedOrigins
	}

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(origins),
	)

	// Health
	r.Get("/v1/healthz", app.Health)

	// The handler answers non-POST methods itself so the 405 carries its own body.
	r.HandleFunc("/api/generate", app.Generate)

	return r
}
