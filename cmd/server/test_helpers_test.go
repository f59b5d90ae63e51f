package main

import (
	"testing"

	"github.com/phrazzld/quizgen-api/internal/cache"
	"github.com/phrazzld/quizgen-api/internal/config"
	"github.com/phrazzld/quizgen-api/internal/mocks"
	"github.com/phrazzld/quizgen-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

// testConfig returns a valid configuration that needs no external services.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   3000,
			LogLevel:               "debug",
			MaxBodyBytes:           1 << 10,
			ShutdownTimeoutSeconds: 5,
			AllowedOrigins:         []string{"https://quiz.example.com"},
		},
		LLM: config.LLMConfig{
			GeminiAPIKey:       "test-key",
			ModelName:          "gemini-2.5-flash",
			KnownModels:        []string{"gemini-2.0-flash"},
			CallTimeoutSeconds: 5,
		},
		Quiz: config.QuizConfig{
			MinQuestions:     3,
			MaxQuestions:     20,
			DefaultQuestions: 5,
		},
		Cache: config.CacheConfig{
			TTLSeconds: 60,
			KeyPrefix:  "test:",
		},
	}
}

// newTestApplication assembles an application around gateway.
func newTestApplication(t *testing.T, gateway *mocks.MockGateway) *application {
	t.Helper()

	log, _ := logger.NewTestLogger()
	app, err := assembleApplication(testConfig(), log, gateway, cache.NewNoOpCache())
	require.NoError(t, err)
	return app
}
