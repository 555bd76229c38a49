package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PARAM_PREFIX", "OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL",
		"GENERATE_TIMEOUT_SECONDS", "MAX_MESSAGE_LENGTH", "ALLOWED_ORIGIN",
		"PORT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	require.Empty(t, cfg.ParamPrefix)
	require.Empty(t, cfg.OpenAIAPIKey)
	require.Empty(t, cfg.OpenAIBaseURL)
	require.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	require.Equal(t, 30*time.Second, cfg.GenerateTimeout)
	require.Equal(t, 2000, cfg.MaxMessageLen)
	require.Equal(t, "https://vocabstream.vercel.app", cfg.AllowedOrigin)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PARAM_PREFIX", "/vocabstream")
	t.Setenv("OPENAI_API_KEY", "sk-local")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("GENERATE_TIMEOUT_SECONDS", "5")
	t.Setenv("MAX_MESSAGE_LENGTH", "500")
	t.Setenv("ALLOWED_ORIGIN", "http://localhost:3000")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	require.Equal(t, "/vocabstream", cfg.ParamPrefix)
	require.Equal(t, "sk-local", cfg.OpenAIAPIKey)
	require.Equal(t, "http://localhost:9999/v1", cfg.OpenAIBaseURL)
	require.Equal(t, "gpt-4o", cfg.OpenAIModel)
	require.Equal(t, 5*time.Second, cfg.GenerateTimeout)
	require.Equal(t, 500, cfg.MaxMessageLen)
	require.Equal(t, "http://localhost:3000", cfg.AllowedOrigin)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_BadIntsFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("GENERATE_TIMEOUT_SECONDS", "soon")
	t.Setenv("MAX_MESSAGE_LENGTH", "lots")

	cfg := Load()
	require.Equal(t, 30*time.Second, cfg.GenerateTimeout)
	require.Equal(t, 2000, cfg.MaxMessageLen)
}
