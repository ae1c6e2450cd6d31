package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.LLMProvider != "openai" {
		t.Errorf("default provider = %q, want openai", cfg.LLMProvider)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("default model = %q", cfg.OpenAIModel)
	}
	if cfg.DocsBaseURL != "http://localhost:8000" {
		t.Errorf("default docs URL = %q", cfg.DocsBaseURL)
	}
	if cfg.LLMTemperature != 0.7 {
		t.Errorf("default temperature = %v", cfg.LLMTemperature)
	}
	if cfg.LLMMaxTokens != 400 {
		t.Errorf("default max tokens = %d", cfg.LLMMaxTokens)
	}
	if cfg.AuditDBPath != "legalia.db" {
		t.Errorf("default audit path = %q", cfg.AuditDBPath)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("OLLAMA_CHAT_MODEL", "qwen2.5:7b")
	t.Setenv("DOCS_API_URL", "https://docs.example.com")
	t.Setenv("LLM_MAX_TOKENS", "256")
	t.Setenv("LLM_TEMPERATURE", "0.2")

	cfg := Load()
	if cfg.LLMProvider != "ollama" || cfg.OllamaModel != "qwen2.5:7b" {
		t.Errorf("provider overrides not applied: %+v", cfg)
	}
	if cfg.DocsBaseURL != "https://docs.example.com" {
		t.Errorf("docs URL override not applied: %q", cfg.DocsBaseURL)
	}
	if cfg.LLMMaxTokens != 256 || cfg.LLMTemperature != 0.2 {
		t.Errorf("model param overrides not applied: %+v", cfg)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("LLM_MAX_TOKENS", "not-a-number")
	t.Setenv("LLM_TEMPERATURE", "warm")

	cfg := Load()
	if cfg.LLMMaxTokens != 400 || cfg.LLMTemperature != 0.7 {
		t.Errorf("expected defaults for invalid values, got %+v", cfg)
	}
}
