package modelloader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docportal/docportal/pkg/modelloader"
)

func Test_LoadConfig(t *testing.T) {
	cfg, err := modelloader.LoadConfig("testdata/models.yaml")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "models/text-embedding-004", cfg.EmbeddingModel.ModelName)
	require.Contains(t, cfg.LLM, "openai")
	require.Contains(t, cfg.LLM, "google")
	require.Contains(t, cfg.LLM, "groq")

	// openai sets only the temperature, the token budget defaults.
	oai := cfg.LLM["openai"]
	assert.Equal(t, "openai", oai.Provider)
	assert.Equal(t, "gpt-4o", oai.ModelName)
	assert.InDelta(t, 0.1, oai.GetTemperature(), 0.0001)
	assert.Equal(t, modelloader.DefaultMaxOutputTokens, oai.GetMaxOutputTokens())

	// google sets both.
	google := cfg.LLM["google"]
	assert.InDelta(t, 0.3, google.GetTemperature(), 0.0001)
	assert.Equal(t, 1024, google.GetMaxOutputTokens())

	// groq sets neither.
	groq := cfg.LLM["groq"]
	assert.InDelta(t, modelloader.DefaultTemperature, groq.GetTemperature(), 0.0001)
	assert.Equal(t, modelloader.DefaultMaxOutputTokens, groq.GetMaxOutputTokens())
}

func Test_LoadConfig_Errors(t *testing.T) {
	_, err := modelloader.LoadConfig("testdata/non-existent.yaml")
	require.Error(t, err)

	_, err = modelloader.LoadConfig("testdata/invalid.yaml")
	require.Error(t, err)

	_, err = modelloader.LoadConfig("testdata/missing_model.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid model configuration")
}
