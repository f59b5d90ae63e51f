package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "QUIZGEN"

// Default configuration values.
const (
	DefaultPort                   = 3000
	DefaultLogLevel               = "info"
	DefaultModelName              = "gemini-2.5-flash"
	DefaultCallTimeoutSeconds     = 60
	DefaultMaxBodyBytes           = 1 << 20
	DefaultShutdownTimeoutSeconds = 10
	DefaultCacheTTLSeconds        = 24 * 60 * 60
	DefaultCacheKeyPrefix         = "quizgen:context:"
)

// DefaultKnownModels are the fallback candidates used when none are configured.
var DefaultKnownModels = []string{
	"gemini-2.5-flash",
	"gemini-2.5-flash-lite",
	"gemini-2.0-flash",
}

// envAliases binds config keys to the plain variable names used by existing
// deployments, checked after the prefixed name.
var envAliases = map[string][]string{
	"llm.gemini_api_key": {"GEMINI_API_KEY"},
	"llm.model_name":     {"GEMINI_MODEL"},
	"server.port":        {"PORT"},
	"cache.redis_url":    {"REDIS_URL"},
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// A .env file in the working directory is loaded first when present.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path := os.Getenv(EnvPrefix + "_CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, aliases := range envAliases {
		names := append([]string{envName(key)}, aliases...)
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks a Config against its struct tags and cross-field rules.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if err := cfg.Quiz.Bounds().Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.max_body_bytes", DefaultMaxBodyBytes)
	v.SetDefault("server.shutdown_timeout_seconds", DefaultShutdownTimeoutSeconds)
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.known_models", DefaultKnownModels)
	v.SetDefault("llm.call_timeout_seconds", DefaultCallTimeoutSeconds)

	v.SetDefault("quiz.min_questions", 3)
	v.SetDefault("quiz.max_questions", 20)
	v.SetDefault("quiz.default_questions", 5)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl_seconds", DefaultCacheTTLSeconds)
	v.SetDefault("cache.key_prefix", DefaultCacheKeyPrefix)
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
