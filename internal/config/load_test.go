package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Variables that would otherwise leak in from the developer's shell.
	for _, name := range []string{
		"GEMINI_API_KEY", "GEMINI_MODEL", "PORT", "REDIS_URL",
		"QUIZGEN_LLM_GEMINI_API_KEY", "QUIZGEN_CONFIG_FILE",
	} {
		if _, ok := envVars[name]; !ok {
			envVars[name] = ""
		}
	}

	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		// Restore original environment
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when only the API key is provided.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"QUIZGEN_LLM_GEMINI_API_KEY": "test-api-key",
		"QUIZGEN_SERVER_PORT":        "",
		"QUIZGEN_SERVER_LOG_LEVEL":   "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 3000, cfg.Server.Port, "Default server port should be 3000")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.ModelName)
	assert.Equal(t, DefaultKnownModels, cfg.LLM.KnownModels)
	assert.Equal(t, 60*time.Second, cfg.LLM.CallTimeout())
	assert.Equal(t, 3, cfg.Quiz.MinQuestions)
	assert.Equal(t, 20, cfg.Quiz.MaxQuestions)
	assert.Equal(t, 5, cfg.Quiz.DefaultQuestions)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL())
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"QUIZGEN_SERVER_PORT":              "9090",
		"QUIZGEN_SERVER_LOG_LEVEL":         "debug",
		"QUIZGEN_LLM_GEMINI_API_KEY":       "test-api-key",
		"QUIZGEN_LLM_MODEL_NAME":           "gemini-2.0-flash",
		"QUIZGEN_LLM_KNOWN_MODELS":         "gemini-2.0-flash,gemini-2.5-flash",
		"QUIZGEN_LLM_CALL_TIMEOUT_SECONDS": "15",
		"QUIZGEN_QUIZ_MAX_QUESTIONS":       "10",
		"QUIZGEN_CACHE_ENABLED":            "true",
		"QUIZGEN_CACHE_REDIS_URL":          "redis://localhost:6379/0",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.Equal(t, []string{"gemini-2.0-flash", "gemini-2.5-flash"}, cfg.LLM.KnownModels)
	assert.Equal(t, 15*time.Second, cfg.LLM.CallTimeout())
	assert.Equal(t, 10, cfg.Quiz.MaxQuestions)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Cache.RedisURL)
}

// TestLoadAliases verifies the plain variable names used by existing deployments.
func TestLoadAliases(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"GEMINI_API_KEY": "alias-key",
		"GEMINI_MODEL":   "gemini-2.5-flash-lite",
		"PORT":           "4000",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "alias-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.LLM.ModelName)
	assert.Equal(t, 4000, cfg.Server.Port)
}

// TestLoadPrefixedWinsOverAlias verifies precedence between the two names.
func TestLoadPrefixedWinsOverAlias(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"GEMINI_API_KEY":             "alias-key",
		"QUIZGEN_LLM_GEMINI_API_KEY": "prefixed-key",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "prefixed-key", cfg.LLM.GeminiAPIKey)
}

// TestLoadFromConfigFile verifies that a YAML file is read and env still wins.
func TestLoadFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizgen.yaml")
	content := []byte(`
server:
  port: 7070
  log_level: warn
llm:
  gemini_api_key: file-key
  model_name: gemini-2.0-flash
quiz:
  default_questions: 7
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cleanup := setupEnv(t, map[string]string{
		"QUIZGEN_CONFIG_FILE":      path,
		"QUIZGEN_SERVER_LOG_LEVEL": "error",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Server.LogLevel)
	assert.Equal(t, "file-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.Equal(t, 7, cfg.Quiz.DefaultQuestions)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name: "Missing API key",
			envVars: map[string]string{
				"QUIZGEN_SERVER_PORT": "9090",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"QUIZGEN_SERVER_PORT":        "999999",
				"QUIZGEN_LLM_GEMINI_API_KEY": "test-api-key",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"QUIZGEN_SERVER_LOG_LEVEL":   "invalid-level",
				"QUIZGEN_LLM_GEMINI_API_KEY": "test-api-key",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Default outside bounds",
			envVars: map[string]string{
				"QUIZGEN_QUIZ_DEFAULT_QUESTIONS": "25",
				"QUIZGEN_LLM_GEMINI_API_KEY":     "test-api-key",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Zero call timeout",
			envVars: map[string]string{
				"QUIZGEN_LLM_CALL_TIMEOUT_SECONDS": "0",
				"QUIZGEN_LLM_GEMINI_API_KEY":       "test-api-key",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Cache enabled without Redis URL",
			envVars: map[string]string{
				"QUIZGEN_CACHE_ENABLED":      "true",
				"QUIZGEN_LLM_GEMINI_API_KEY": "test-api-key",
			},
			errorSubstring: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), tc.errorSubstring, "Error message should contain expected substring")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
