// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, an optional .env file and an
// optional config.yaml). It provides type-safe access to application settings
// needed by different components while keeping configuration details separate
// from business logic.
//
// Every key can be set with a QUIZGEN_ prefixed environment variable, e.g.
// QUIZGEN_SERVER_PORT or QUIZGEN_LLM_GEMINI_API_KEY. The plain names
// GEMINI_API_KEY, GEMINI_MODEL, PORT and REDIS_URL are accepted as aliases.
package config
