// Package apikeys resolves provider API keys from the process environment.
//
// Deployments that inject one composite secret (for example ECS task
// definitions) set a single API_KEYS variable holding a JSON object; local
// and simpler setups set one variable per provider. The combined secret
// takes precedence, individual variables fill the gaps.
package apikeys

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/docportal/docportal", "apikeys")

// CombinedSecretEnv is the environment variable that may hold all API keys
// as one JSON-encoded object.
const CombinedSecretEnv = "API_KEYS"

// Environment variable names for the individual provider keys.
const (
	GroqKey   = "GROQ_API_KEY"
	GoogleKey = "GOOGLE_API_KEY"
	OpenAIKey = "OPENAI_API_KEY"
)

// RequiredKeys lists the provider credentials that must be resolvable
// at startup.
var RequiredKeys = []string{GroqKey, GoogleKey, OpenAIKey}

var (
	// ErrMissingKeys is returned when one or more required API keys cannot
	// be resolved from either the combined secret or individual variables.
	ErrMissingKeys = errors.New("missing required API keys")
	// ErrKeyNotFound is returned by Get when the requested key is absent or empty.
	ErrKeyNotFound = errors.New("API key not found")
)

// Manager holds the resolved provider API keys for the lifetime of the
// process. Values are kept in memory only and are never logged unmasked.
type Manager struct {
	keys map[string]string
}

// New resolves all required API keys from the environment, or fails with
// ErrMissingKeys naming every key that could not be resolved.
//
// A malformed combined secret is not fatal: it is logged and the resolution
// falls through to the individual variables.
func New() (*Manager, error) {
	m := &Manager{keys: make(map[string]string)}

	if raw := os.Getenv(CombinedSecretEnv); raw != "" {
		parsed := map[string]string{}
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			logger.KV(xlog.WARNING,
				"reason", "parse_combined_secret",
				"env", CombinedSecretEnv,
				"err", err.Error())
		} else {
			for k, v := range parsed {
				m.keys[k] = v
			}
			logger.KV(xlog.INFO, "status", "loaded_combined_secret", "env", CombinedSecretEnv)
		}
	}

	for _, name := range RequiredKeys {
		if m.keys[name] != "" {
			continue
		}
		if val := os.Getenv(name); val != "" {
			m.keys[name] = val
			logger.KV(xlog.INFO, "status", "loaded_env_key", "key", name)
		}
	}

	var missing []string
	for _, name := range RequiredKeys {
		if m.keys[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		logger.KV(xlog.ERROR, "reason", "missing_keys", "keys", missing)
		return nil, errors.WithMessage(ErrMissingKeys, strings.Join(missing, ", "))
	}

	masked := make(map[string]string, len(m.keys))
	for k, v := range m.keys {
		masked[k] = Mask(v)
	}
	logger.KV(xlog.INFO, "status", "api_keys_loaded", "keys", masked)

	return m, nil
}

// Get returns the value for the named key. The constructor guarantees all
// required keys are present; this re-checks in case an unknown name is
// asked for.
func (m *Manager) Get(name string) (string, error) {
	val := m.keys[name]
	if val == "" {
		return "", errors.WithMessage(ErrKeyNotFound, name)
	}
	return val, nil
}

// Mask returns the first 6 characters of a secret followed by an ellipsis,
// safe for logging.
func Mask(v string) string {
	if len(v) > 6 {
		v = v[:6]
	}
	return v + "..."
}
