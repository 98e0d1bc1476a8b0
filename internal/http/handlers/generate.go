package handlers

import (
	"encoding/json"
	"net/http"

	"wallpaper/internal/domain"
	"wallpaper/internal/middleware"
)

const maxGenerateBody = 1 << 20

type generateRequest struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspectRatio"`
}

type generateResponse struct {
	ImageURL string `json:"imageUrl"`
}

// Generate proxies one image request to the generation service. The
// credential never leaves the server.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte("Method Not Allowed"))
		return
	}

	rid := middleware.RequestIDFromContext(r.Context())

	if a.Generator == nil {
		a.Logger.Error().Str("request_id", rid).Msg("generate: API key is not configured")
		a.error(w, http.StatusInternalServerError, "Server configuration error: API key not found.")
		return
	}

	var req generateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxGenerateBody)).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid JSON request body")
		return
	}
	if req.Prompt == "" || req.AspectRatio == "" {
		a.error(w, http.StatusBadRequest, "Missing prompt or aspectRatio in request body")
		return
	}
	ratio, ok := domain.ParseAspectRatio(req.AspectRatio)
	if !ok {
		a.error(w, http.StatusBadRequest, "Unsupported aspectRatio: "+req.AspectRatio)
		return
	}

	imageURL, err := a.Generator.Generate(r.Context(), req.Prompt, ratio)
	if err != nil {
		a.Logger.Error().
			Err(err).
			Str("request_id", rid).
			Str("aspect_ratio", string(ratio)).
			Msg("generate: image generation failed")
		a.error(w, http.StatusInternalServerError, "Server error: "+domain.Message(err))
		return
	}

	a.Logger.Info().
		Str("request_id", rid).
		Str("aspect_ratio", string(ratio)).
		Int("prompt_len", len(req.Prompt)).
		Msg("generate: image generated")
	a.json(w, http.StatusOK, generateResponse{ImageURL: imageURL})
}
