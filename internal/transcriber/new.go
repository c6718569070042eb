package transcriber

import (
	"net/http"

	"github.com/nguyentantai21042004/lecture-flow/internal/config"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
)

type implClient struct {
	apiKey     string
	url        string
	model      string
	httpClient *http.Client
	logger     logger.Logger
}

// Option configures the Client.
type Option func(*implClient)

// WithHTTPClient sets the HTTP client used for uploads.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *implClient) {
		c.httpClient = httpClient
	}
}

// WithURL overrides the endpoint from config.
func WithURL(url string) Option {
	return func(c *implClient) {
		c.url = url
	}
}

// New creates a transcription Client authenticated with apiKey.
func New(cfg config.TranscriptionConfig, apiKey string, log logger.Logger, opts ...Option) Client {
	c := &implClient{
		apiKey: apiKey,
		url:    cfg.URL,
		model:  cfg.Model,
		logger: log,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}

	return c
}
