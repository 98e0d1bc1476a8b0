package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"wallpaper/internal/domain"
	"wallpaper/internal/imagegen"
	"wallpaper/internal/infra"
	"wallpaper/internal/middleware"
)

// DefaultBaseURL is where the proxy listens when run locally.
const DefaultBaseURL = "http://localhost:8080"

const generatePath = "/api/generate"

// InvalidResponseMessage is shown when the proxy answers 200 without an image.
const InvalidResponseMessage = "Invalid response from server."

var ErrInvalidResponse = errors.New("apiclient: invalid response from server")

// Options configures the proxy client.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client calls the proxy endpoint. It never sees the upstream credential.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *infra.Logger
}

type generateRequest struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspectRatio"`
}

type generateResponse struct {
	ImageURL string `json:"imageUrl"`
	Error    string `json:"error"`
}

func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	logger := opts.Logger
	if logger == nil {
		l := zerolog.New(io.Discard)
		logger = &l
	}
	return &Client{baseURL: baseURL, httpClient: httpClient, logger: logger}
}

// BaseURL returns the proxy origin the client posts to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Generate posts one request to the proxy and returns the image reference.
// A non-200 reply becomes an error whose text is the server's message.
func (c *Client) Generate(ctx context.Context, prompt string, ratio domain.AspectRatio) (string, error) {
	body, err := json.Marshal(generateRequest{Prompt: prompt, AspectRatio: string(ratio)})
	if err != nil {
		return "", fmt.Errorf("apiclient: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("apiclient: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if rid := middleware.RequestIDFromContext(ctx); rid != "" {
		req.Header.Set(middleware.RequestIDHeader, rid)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("apiclient: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("apiclient: read response: %w", err)
	}

	var decoded generateResponse
	decodeErr := json.Unmarshal(raw, &decoded)

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Str("aspect_ratio", string(ratio)).
		Str("request_id", resp.Header.Get(middleware.RequestIDHeader)).
		Msg("apiclient: generate response")

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(decoded.Error)
		if decodeErr != nil || msg == "" {
			msg = fmt.Sprintf("Request failed with status %d", resp.StatusCode)
		}
		return "", &domain.ServiceError{
			Message: msg,
			Err:     fmt.Errorf("apiclient: status %d", resp.StatusCode),
		}
	}
	if decodeErr != nil {
		return "", &domain.ServiceError{Message: InvalidResponseMessage, Err: fmt.Errorf("%w: %v", ErrInvalidResponse, decodeErr)}
	}
	if decoded.ImageURL == "" {
		return "", &domain.ServiceError{Message: InvalidResponseMessage, Err: ErrInvalidResponse}
	}
	return decoded.ImageURL, nil
}

var _ imagegen.Generator = (*Client)(nil)
