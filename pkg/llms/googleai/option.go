package googleai

import (
	"net/http"
)

// Options is a set of options for the Google AI client.
type Options struct {
	APIKey                string
	DefaultModel          string
	DefaultEmbeddingModel string
	DefaultMaxTokens      int
	DefaultTemperature    float64
	HTTPClient            *http.Client
}

// DefaultOptions returns the defaults applied before user options.
func DefaultOptions() Options {
	return Options{
		DefaultModel:          "gemini-2.5-flash",
		DefaultEmbeddingModel: "text-embedding-004",
		DefaultMaxTokens:      2048,
		DefaultTemperature:    0.2,
	}
}

// Option is a function that configures Options.
type Option func(*Options)

// WithAPIKey passes the API key (token) to the client.
func WithAPIKey(apiKey string) Option {
	return func(opts *Options) {
		opts.APIKey = apiKey
	}
}

// WithDefaultModel passes a default content model name to the client. This
// model name is used if not explicitly provided in specific client invocations.
func WithDefaultModel(defaultModel string) Option {
	return func(opts *Options) {
		opts.DefaultModel = defaultModel
	}
}

// WithDefaultEmbeddingModel passes a default embedding model name to the
// client.
func WithDefaultEmbeddingModel(defaultEmbeddingModel string) Option {
	return func(opts *Options) {
		opts.DefaultEmbeddingModel = defaultEmbeddingModel
	}
}

// WithDefaultMaxTokens sets the maximum token count for the model.
func WithDefaultMaxTokens(maxTokens int) Option {
	return func(opts *Options) {
		opts.DefaultMaxTokens = maxTokens
	}
}

// WithDefaultTemperature sets the default sampling temperature for the model.
func WithDefaultTemperature(defaultTemperature float64) Option {
	return func(opts *Options) {
		opts.DefaultTemperature = defaultTemperature
	}
}

// WithHTTPClient uses the provided HTTP client to make requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}
