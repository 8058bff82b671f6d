package modelloader

import (
	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/configloader"
	"github.com/go-playground/validator/v10"
)

// Defaults applied when a provider entry leaves them unset.
const (
	DefaultTemperature     = 0.2
	DefaultMaxOutputTokens = 2048
)

// Config is the model configuration document.
type Config struct {
	// EmbeddingModel specifies the embedding model to use.
	EmbeddingModel EmbeddingModelConfig `json:"embedding_model" yaml:"embedding_model"`
	// LLM specifies the chat-completion provider entries, keyed by the
	// name selectable at runtime.
	LLM map[string]*ProviderConfig `json:"llm" yaml:"llm" validate:"required,dive,required"`
}

// EmbeddingModelConfig specifies the embedding model.
type EmbeddingModelConfig struct {
	ModelName string `json:"model_name" yaml:"model_name" validate:"required"`
}

// ProviderConfig is one chat-completion provider entry.
type ProviderConfig struct {
	// Provider is the provider tag: google, groq or openai.
	Provider string `json:"provider" yaml:"provider" validate:"required"`
	// ModelName is the model identifier passed to the provider.
	ModelName string `json:"model_name" yaml:"model_name" validate:"required"`
	// Temperature is the sampling temperature, 0.2 when unset.
	Temperature *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	// MaxOutputTokens is the generation token budget, 2048 when unset.
	// Not every provider accepts it.
	MaxOutputTokens *int `json:"max_output_tokens,omitempty" yaml:"max_output_tokens,omitempty"`
}

// GetTemperature returns the configured temperature or the default.
func (c *ProviderConfig) GetTemperature() float64 {
	if c.Temperature == nil {
		return DefaultTemperature
	}
	return *c.Temperature
}

// GetMaxOutputTokens returns the configured token budget or the default.
func (c *ProviderConfig) GetMaxOutputTokens() int {
	if c.MaxOutputTokens == nil {
		return DefaultMaxOutputTokens
	}
	return *c.MaxOutputTokens
}

// LoadConfig from file.
func LoadConfig(file string) (*Config, error) {
	cfg := new(Config)
	err := configloader.UnmarshalAndExpand(file, cfg)
	if err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.WithMessage(err, "invalid model configuration")
	}
	return cfg, nil
}
