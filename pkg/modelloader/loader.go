package modelloader

import (
	"context"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/joho/godotenv"

	"github.com/docportal/docportal/pkg/apikeys"
	"github.com/docportal/docportal/pkg/llms"
	"github.com/docportal/docportal/pkg/llms/googleai"
	"github.com/docportal/docportal/pkg/llms/openai"
)

var logger = xlog.NewPackageLogger("github.com/docportal/docportal", "modelloader")

// Mode selects how the loader prepares the process environment before
// resolving credentials.
type Mode string

const (
	// ModeLocal loads variables from a local .env file before resolving
	// keys. A missing file is ignored.
	ModeLocal Mode = "local"
	// ModeProduction assumes the environment is already populated by the
	// surrounding deployment and skips local file loading.
	ModeProduction Mode = "production"
)

// Environment variables read by NewFromEnv.
const (
	ModeEnv     = "ENV"
	ProviderEnv = "LLM_PROVIDER"
)

// DefaultProvider is the llm block entry used when no override is given.
const DefaultProvider = "openai"

// Provider tags recognized in the llm block.
const (
	ProviderGoogle = "google"
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
)

type options struct {
	mode     Mode
	provider string
	envFile  string
}

// Option configures the Loader.
type Option func(*options)

// WithMode selects local or production environment handling.
func WithMode(mode Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithProvider selects the active entry of the llm block.
func WithProvider(provider string) Option {
	return func(o *options) {
		o.provider = provider
	}
}

// WithEnvFile overrides the path of the .env file loaded in local mode.
func WithEnvFile(path string) Option {
	return func(o *options) {
		o.envFile = path
	}
}

// Loader builds embedding and chat-completion clients from configuration
// and resolved credentials. Clients are constructed fresh on every Load
// call and are not cached.
type Loader struct {
	cfg      *Config
	keys     *apikeys.Manager
	provider string
}

// New creates a Loader from the given configuration file. Credential
// resolution happens here and fails fast.
func New(cfgFile string, opts ...Option) (*Loader, error) {
	o := options{
		mode:     ModeLocal,
		provider: DefaultProvider,
		envFile:  ".env",
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.mode == ModeProduction {
		logger.KV(xlog.INFO, "status", "production_mode")
	} else {
		if err := loadDotEnv(o.envFile); err != nil {
			return nil, errors.WithMessage(err, "failed to load env file")
		}
		logger.KV(xlog.INFO, "status", "local_mode", "env_file", o.envFile)
	}

	keys, err := apikeys.New()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	logger.KV(xlog.INFO, "status", "config_loaded", "providers", providerNames(cfg))

	return &Loader{
		cfg:      cfg,
		keys:     keys,
		provider: o.provider,
	}, nil
}

// NewFromEnv creates a Loader with the mode and active provider taken from
// the ENV and LLM_PROVIDER environment variables.
func NewFromEnv(cfgFile string, opts ...Option) (*Loader, error) {
	if strings.EqualFold(os.Getenv(ModeEnv), string(ModeProduction)) {
		opts = append(opts, WithMode(ModeProduction))
	}
	if provider := os.Getenv(ProviderEnv); provider != "" {
		opts = append(opts, WithProvider(provider))
	}
	return New(cfgFile, opts...)
}

// Constructor seams, overridable in tests. The defaults build real clients.
var (
	NewEmbedder  = CreateEmbedder
	NewChatModel = CreateChatModel
)

// LoadEmbeddings builds the Google embeddings client from the configured
// embedding model and the resolved Google API key.
func (l *Loader) LoadEmbeddings(ctx context.Context) (llms.Embedder, error) {
	modelName := l.cfg.EmbeddingModel.ModelName
	logger.KV(xlog.INFO, "status", "loading_embedding_model", "model", modelName)

	embedder, err := NewEmbedder(ctx, l.keys, modelName)
	if err != nil {
		logger.KV(xlog.ERROR, "reason", "load_embedding_model", "model", modelName, "err", err.Error())
		return nil, errors.WithMessage(err, "failed to load embedding model")
	}
	return embedder, nil
}

// LoadLLM builds the chat client for the active provider entry of the llm
// block.
func (l *Loader) LoadLLM(ctx context.Context) (llms.Model, error) {
	cfg, ok := l.cfg.LLM[l.provider]
	if !ok {
		logger.KV(xlog.ERROR, "reason", "provider_not_found", "provider", l.provider)
		return nil, errors.Errorf("LLM provider %q not found in config", l.provider)
	}

	logger.KV(xlog.INFO, "status", "loading_llm", "provider", cfg.Provider, "model", cfg.ModelName)

	model, err := NewChatModel(ctx, l.keys, cfg)
	if err != nil {
		logger.KV(xlog.ERROR, "reason", "load_llm", "provider", cfg.Provider, "err", err.Error())
		return nil, errors.WithMessage(err, "failed to load LLM")
	}
	return model, nil
}

// CreateEmbedder is the default implementation behind the NewEmbedder seam.
func CreateEmbedder(ctx context.Context, keys *apikeys.Manager, modelName string) (llms.Embedder, error) {
	apiKey, err := keys.Get(apikeys.GoogleKey)
	if err != nil {
		return nil, err
	}
	return googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultEmbeddingModel(modelName),
	)
}

// CreateChatModel is the default implementation behind the NewChatModel
// seam. It dispatches on the provider tag; the branches differ in which
// sampling parameters the provider accepts.
func CreateChatModel(ctx context.Context, keys *apikeys.Manager, cfg *ProviderConfig) (llms.Model, error) {
	switch cfg.Provider {
	case ProviderGoogle:
		apiKey, err := keys.Get(apikeys.GoogleKey)
		if err != nil {
			return nil, err
		}
		return googleai.New(ctx,
			googleai.WithAPIKey(apiKey),
			googleai.WithDefaultModel(cfg.ModelName),
			googleai.WithDefaultTemperature(cfg.GetTemperature()),
			googleai.WithDefaultMaxTokens(cfg.GetMaxOutputTokens()),
		)
	case ProviderGroq:
		apiKey, err := keys.Get(apikeys.GroqKey)
		if err != nil {
			return nil, err
		}
		return openai.New(
			openai.WithAPIType(openai.APITypeGroq),
			openai.WithToken(apiKey),
			openai.WithModel(cfg.ModelName),
			openai.WithDefaultTemperature(cfg.GetTemperature()),
		)
	case ProviderOpenAI:
		apiKey, err := keys.Get(apikeys.OpenAIKey)
		if err != nil {
			return nil, err
		}
		return openai.New(
			openai.WithToken(apiKey),
			openai.WithModel(cfg.ModelName),
			openai.WithDefaultTemperature(cfg.GetTemperature()),
			openai.WithDefaultMaxTokens(cfg.GetMaxOutputTokens()),
		)
	}
	return nil, errors.Errorf("unsupported LLM provider: %s", cfg.Provider)
}

// loadDotEnv loads environment variables from path. Missing files are
// ignored so that .env files remain optional.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func providerNames(cfg *Config) []string {
	names := make([]string, 0, len(cfg.LLM))
	for name := range cfg.LLM {
		names = append(names, name)
	}
	return names
}
