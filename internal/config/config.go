package config

import (
	"time"

	"github.com/phrazzld/quizgen-api/internal/domain"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Quiz   QuizConfig   `mapstructure:"quiz"   validate:"required"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// MaxBodyBytes caps the size of a request body.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" validate:"gt=0"`
	// ShutdownTimeoutSeconds bounds graceful shutdown after a signal.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
	// AllowedOrigins lists CORS origins; "*" allows any.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	// ModelName is the primary model, always tried first.
	ModelName string `mapstructure:"model_name" validate:"required"`
	// KnownModels are fallback candidates tried in order when a model is overloaded.
	KnownModels []string `mapstructure:"known_models"`
	// CallTimeoutSeconds bounds each outbound model call.
	CallTimeoutSeconds int `mapstructure:"call_timeout_seconds" validate:"gt=0"`
}

// CallTimeout returns the per-call deadline as a duration.
func (c LLMConfig) CallTimeout() time.Duration {
	return time.Duration(c.CallTimeoutSeconds) * time.Second
}

// QuizConfig contains the accepted range of question amounts.
type QuizConfig struct {
	MinQuestions     int `mapstructure:"min_questions"     validate:"gte=1"`
	MaxQuestions     int `mapstructure:"max_questions"     validate:"gtefield=MinQuestions"`
	DefaultQuestions int `mapstructure:"default_questions" validate:"gtefield=MinQuestions,ltefield=MaxQuestions"`
}

// Bounds converts the quiz settings to domain question bounds.
func (c QuizConfig) Bounds() domain.QuestionBounds {
	return domain.QuestionBounds{
		Min:     c.MinQuestions,
		Max:     c.MaxQuestions,
		Default: c.DefaultQuestions,
	}
}

// CacheConfig contains settings for the optional context summary cache.
type CacheConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	RedisURL   string `mapstructure:"redis_url"   validate:"required_if=Enabled true"`
	TTLSeconds int    `mapstructure:"ttl_seconds" validate:"gt=0"`
	KeyPrefix  string `mapstructure:"key_prefix"  validate:"required"`
}

// TTL returns the cache entry lifetime as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}
