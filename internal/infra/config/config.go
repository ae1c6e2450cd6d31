// Package config provides application-wide configuration loaded from env vars.
// All fields have safe defaults so the binary runs locally without any env
// setup (except an OpenAI key when the openai provider is selected).
package config

import (
	"os"
	"strconv"
)

// Config holds runtime configuration for the chat service.
type Config struct {
	// LLM
	LLMProvider    string  // LLM_PROVIDER — "openai" (default) or "ollama"
	OpenAIBaseURL  string  // OPENAI_BASE_URL — default: "" (public API)
	OpenAIAPIKey   string  // OPENAI_API_KEY
	OpenAIModel    string  // OPENAI_MODEL — default: "gpt-4o-mini"
	OllamaBaseURL  string  // OLLAMA_BASE_URL — default: "http://localhost:11434"
	OllamaModel    string  // OLLAMA_CHAT_MODEL — default: "llama3.2:3b"
	LLMTemperature float32 // LLM_TEMPERATURE — default: 0.7
	LLMMaxTokens   int     // LLM_MAX_TOKENS — default: 400

	// Document service
	DocsBaseURL string // DOCS_API_URL — default: "http://localhost:8000"

	// Auth. When empty, bearer tokens are forwarded opaquely and the document
	// service is the only validator.
	JWTSecret string // JWT_SECRET

	// Storage and policy
	AuditDBPath        string // AUDIT_DB_PATH — default: "legalia.db"
	PromptTemplatePath string // PROMPT_TEMPLATE_PATH — default: "" (builtin preamble)
}

const (
	envKeyLLMProvider        = "LLM_PROVIDER"
	envKeyOpenAIBaseURL      = "OPENAI_BASE_URL"
	envKeyOpenAIAPIKey       = "OPENAI_API_KEY"
	envKeyOpenAIModel        = "OPENAI_MODEL"
	envKeyOllamaBaseURL      = "OLLAMA_BASE_URL"
	envKeyOllamaModel        = "OLLAMA_CHAT_MODEL"
	envKeyLLMTemperature     = "LLM_TEMPERATURE"
	envKeyLLMMaxTokens       = "LLM_MAX_TOKENS"
	envKeyDocsBaseURL        = "DOCS_API_URL"
	envKeyJWTSecret          = "JWT_SECRET"
	envKeyAuditDBPath        = "AUDIT_DB_PATH"
	envKeyPromptTemplatePath = "PROMPT_TEMPLATE_PATH"
)

// Load reads configuration from environment variables, applying defaults for
// missing values.
func Load() Config {
	return Config{
		LLMProvider:        envOr(envKeyLLMProvider, "openai"),
		OpenAIBaseURL:      os.Getenv(envKeyOpenAIBaseURL),
		OpenAIAPIKey:       os.Getenv(envKeyOpenAIAPIKey),
		OpenAIModel:        envOr(envKeyOpenAIModel, "gpt-4o-mini"),
		OllamaBaseURL:      envOr(envKeyOllamaBaseURL, "http://localhost:11434"),
		OllamaModel:        envOr(envKeyOllamaModel, "llama3.2:3b"),
		LLMTemperature:     envFloatOr(envKeyLLMTemperature, 0.7),
		LLMMaxTokens:       envIntOr(envKeyLLMMaxTokens, 400),
		DocsBaseURL:        envOr(envKeyDocsBaseURL, "http://localhost:8000"),
		JWTSecret:          os.Getenv(envKeyJWTSecret),
		AuditDBPath:        envOr(envKeyAuditDBPath, "legalia.db"),
		PromptTemplatePath: os.Getenv(envKeyPromptTemplatePath),
	}
}

// envOr returns the value of the environment variable key, or fallback if not set.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envIntOr parses key as an int, or returns fallback on missing/invalid value.
func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// envFloatOr parses key as a float32, or returns fallback on missing/invalid value.
func envFloatOr(key string, fallback float32) float32 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return fallback
	}
	return float32(f)
}
