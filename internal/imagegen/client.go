package imagegen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"wallpaper/internal/domain"
	"wallpaper/internal/infra"
)

const (
	// PromptPrefix is prepended to every user prompt before it is sent upstream.
	PromptPrefix = "A beautiful, high-resolution, ultra-detailed wallpaper of: "
	// DefaultModel is the Imagen model used when none is configured.
	DefaultModel = "imagen-3.0-generate-002"
	// OutputMIMEType is the only encoding requested from the service.
	OutputMIMEType = "image/jpeg"
)

// Generator turns a prompt and aspect ratio into a displayable image reference.
type Generator interface {
	Generate(ctx context.Context, prompt string, ratio domain.AspectRatio) (string, error)
}

// ImageModels is the subset of genai.Models used by the client.
type ImageModels interface {
	GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

// Options controls how the Imagen client is configured.
type Options struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client calls Imagen through the Gemini API. It holds no per-request state
// and is safe for concurrent use.
type Client struct {
	models ImageModels
	model  string
	logger *infra.Logger
}

// NewClient constructs an Imagen client. It fails with domain.ErrConfiguration
// when no API key is supplied.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key not found", domain.ErrConfiguration)
	}

	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if base := strings.TrimSpace(opts.BaseURL); base != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: base}
	}

	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("%w: create genai client: %v", domain.ErrConfiguration, err)
	}

	return NewClientWithModels(gc.Models, opts.Model, opts.Logger), nil
}

// NewClientWithModels wires an existing ImageModels implementation.
func NewClientWithModels(models ImageModels, model string, logger *infra.Logger) *Client {
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		l := zerolog.New(io.Discard)
		logger = &l
	}
	return &Client{models: models, model: model, logger: logger}
}

// Model returns the configured Imagen model identifier.
func (c *Client) Model() string {
	return c.model
}

// BuildPrompt decorates the user prompt with the fixed quality prefix.
func BuildPrompt(prompt string) string {
	return PromptPrefix + prompt
}

// Generate requests exactly one JPEG image and returns it as a data URI.
// No retries are attempted.
func (c *Client) Generate(ctx context.Context, prompt string, ratio domain.AspectRatio) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt is required", domain.ErrValidation)
	}
	if !ratio.Valid() {
		return "", fmt.Errorf("%w: unsupported aspect ratio %q", domain.ErrValidation, string(ratio))
	}

	c.logger.Debug().
		Str("model", c.model).
		Str("aspect_ratio", string(ratio)).
		Msg("imagegen: requesting image")

	resp, err := c.models.GenerateImages(ctx, c.model, BuildPrompt(prompt), &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: OutputMIMEType,
		AspectRatio:    string(ratio),
	})
	if err != nil {
		return "", &domain.ServiceError{Message: upstreamMessage(err), Err: err}
	}

	data := firstImageBytes(resp)
	if len(data) == 0 {
		return "", domain.ErrEmptyResult
	}

	c.logger.Debug().
		Str("model", c.model).
		Str("aspect_ratio", string(ratio)).
		Int("bytes", len(data)).
		Msg("imagegen: image generated")

	return EncodeDataURI(OutputMIMEType, data), nil
}

func firstImageBytes(resp *genai.GenerateImagesResponse) []byte {
	if resp == nil || len(resp.GeneratedImages) == 0 {
		return nil
	}
	first := resp.GeneratedImages[0]
	if first == nil || first.Image == nil {
		return nil
	}
	return first.Image.ImageBytes
}

func upstreamMessage(err error) string {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil && strings.TrimSpace(apiErrPtr.Message) != "" {
		return apiErrPtr.Message
	}
	return err.Error()
}

var _ Generator = (*Client)(nil)
