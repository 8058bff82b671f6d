package openai

// APIType specifies which OpenAI-compatible endpoint the client targets.
type APIType string

const (
	// APITypeOpenAI targets the OpenAI API.
	APITypeOpenAI APIType = "OPENAI"
	// APITypeGroq targets Groq's OpenAI-compatible API.
	APITypeGroq APIType = "GROQ"
)

// GroqBaseURL is the OpenAI-compatible endpoint exposed by Groq.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// Options is a set of options for the client.
type Options struct {
	Token              string
	BaseURL            string
	APIType            APIType
	DefaultModel       string
	DefaultMaxTokens   int
	DefaultTemperature float64
}

// DefaultOptions returns the defaults applied before user options.
func DefaultOptions() Options {
	return Options{
		APIType:            APITypeOpenAI,
		DefaultModel:       "gpt-4o",
		DefaultMaxTokens:   2048,
		DefaultTemperature: 0.2,
	}
}

// Option is a function that configures Options.
type Option func(*Options)

// WithToken passes the API token to the client.
func WithToken(token string) Option {
	return func(opts *Options) {
		opts.Token = token
	}
}

// WithBaseURL overrides the API endpoint the client talks to.
func WithBaseURL(baseURL string) Option {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

// WithAPIType selects the OpenAI-compatible endpoint family. APITypeGroq
// implies GroqBaseURL unless a base URL is set explicitly.
func WithAPIType(apiType APIType) Option {
	return func(opts *Options) {
		opts.APIType = apiType
	}
}

// WithModel passes a default model name to the client. This model name is
// used if not explicitly provided in specific client invocations.
func WithModel(model string) Option {
	return func(opts *Options) {
		opts.DefaultModel = model
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
