package apikeys_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docportal/docportal/pkg/apikeys"
)

func clearKeys(t *testing.T) {
	t.Setenv(apikeys.CombinedSecretEnv, "")
	for _, name := range apikeys.RequiredKeys {
		t.Setenv(name, "")
	}
}

func Test_New_IndividualVars(t *testing.T) {
	clearKeys(t)
	t.Setenv(apikeys.GroqKey, "groq-abc")
	t.Setenv(apikeys.GoogleKey, "g-google-xyz")
	t.Setenv(apikeys.OpenAIKey, "sk-openai-123")

	m, err := apikeys.New()
	require.NoError(t, err)

	for name, exp := range map[string]string{
		apikeys.GroqKey:   "groq-abc",
		apikeys.GoogleKey: "g-google-xyz",
		apikeys.OpenAIKey: "sk-openai-123",
	} {
		val, err := m.Get(name)
		require.NoError(t, err)
		assert.Equal(t, exp, val)
	}
}

func Test_New_CombinedSecret(t *testing.T) {
	clearKeys(t)
	t.Setenv(apikeys.CombinedSecretEnv, `{"GROQ_API_KEY":"groq-from-blob","GOOGLE_API_KEY":"google-from-blob"}`)
	// The blob wins on overlap, individual variables fill the gaps.
	t.Setenv(apikeys.GroqKey, "groq-individual")
	t.Setenv(apikeys.OpenAIKey, "sk-openai-123")

	m, err := apikeys.New()
	require.NoError(t, err)

	val, err := m.Get(apikeys.GroqKey)
	require.NoError(t, err)
	assert.Equal(t, "groq-from-blob", val)

	val, err = m.Get(apikeys.GoogleKey)
	require.NoError(t, err)
	assert.Equal(t, "google-from-blob", val)

	val, err = m.Get(apikeys.OpenAIKey)
	require.NoError(t, err)
	assert.Equal(t, "sk-openai-123", val)
}

func Test_New_MalformedCombinedSecret(t *testing.T) {
	clearKeys(t)
	t.Setenv(apikeys.GroqKey, "groq-abc")
	t.Setenv(apikeys.GoogleKey, "g-google-xyz")
	t.Setenv(apikeys.OpenAIKey, "sk-openai-123")

	// Invalid JSON falls through to the individual variables.
	t.Setenv(apikeys.CombinedSecretEnv, `{"GROQ_API_KEY": oops`)
	m, err := apikeys.New()
	require.NoError(t, err)
	val, err := m.Get(apikeys.GroqKey)
	require.NoError(t, err)
	assert.Equal(t, "groq-abc", val)

	// Valid JSON that is not an object is treated the same way.
	t.Setenv(apikeys.CombinedSecretEnv, `["GROQ_API_KEY"]`)
	m, err = apikeys.New()
	require.NoError(t, err)
	val, err = m.Get(apikeys.GoogleKey)
	require.NoError(t, err)
	assert.Equal(t, "g-google-xyz", val)
}

func Test_New_MissingKeys(t *testing.T) {
	clearKeys(t)
	t.Setenv(apikeys.GoogleKey, "g-google-xyz")

	_, err := apikeys.New()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apikeys.ErrMissingKeys))
	assert.Contains(t, err.Error(), apikeys.GroqKey)
	assert.Contains(t, err.Error(), apikeys.OpenAIKey)
	assert.NotContains(t, err.Error(), "g-google-xyz")
}

func Test_Get_NotFound(t *testing.T) {
	clearKeys(t)
	t.Setenv(apikeys.GroqKey, "groq-abc")
	t.Setenv(apikeys.GoogleKey, "g-google-xyz")
	t.Setenv(apikeys.OpenAIKey, "sk-openai-123")

	m, err := apikeys.New()
	require.NoError(t, err)

	_, err = m.Get("MISTRAL_API_KEY")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apikeys.ErrKeyNotFound))
	assert.Contains(t, err.Error(), "MISTRAL_API_KEY")
}

func Test_Mask(t *testing.T) {
	assert.Equal(t, "sk-ABC...", apikeys.Mask("sk-ABCDEFGH"))
	assert.Equal(t, "abc...", apikeys.Mask("abc"))
	assert.Equal(t, "...", apikeys.Mask(""))
	assert.NotContains(t, apikeys.Mask("sk-ABCDEFGH"), "DEFGH")
}
