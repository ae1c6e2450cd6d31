// Unit tests for OpenAIProvider.
// Uses httptest.NewServer to mock the OpenAI HTTP API — no real key needed.
package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIProvider_ChatCompletion_Success(t *testing.T) {
	t.Parallel()

	var gotReq openAIChatRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" || r.Method != http.MethodPost {
			http.Error(w, "unexpected path", http.StatusNotFound)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotReq) //nolint:errcheck
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openAIChatResponse{ //nolint:errcheck
			Choices: []openAIChatChoice{{
				Message:      Message{Role: "assistant", Content: "Tienes 5 documentos."},
				FinishReason: "stop",
			}},
			Usage: &Usage{PromptTokens: 120, CompletionTokens: 8, TotalTokens: 128},
		})
	}))
	defer srv.Close()

	p := NewOpenAIProvider(srv.URL, "sk-test", "gpt-4o-mini")
	resp, err := p.ChatCompletion(context.Background(), ChatRequest{
		Messages:    []Message{{Role: "user", Content: "hola"}},
		Temperature: 0.7,
		MaxTokens:   400,
	})
	if err != nil {
		t.Fatalf("ChatCompletion failed: %v", err)
	}
	if resp.Content != "Tienes 5 documentos." {
		t.Errorf("unexpected content: %q", resp.Content)
	}
	if resp.StopReason != "stop" {
		t.Errorf("unexpected stop reason: %q", resp.StopReason)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 128 {
		t.Errorf("usage not passed through: %+v", resp.Usage)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
	if gotReq.Model != "gpt-4o-mini" {
		t.Errorf("expected default model in request, got %q", gotReq.Model)
	}
	if gotReq.MaxTokens != 400 {
		t.Errorf("expected max_tokens 400, got %d", gotReq.MaxTokens)
	}
}

func TestOpenAIProvider_ChatCompletion_EmptyCompletion_UsesPlaceholder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openAIChatResponse{}) //nolint:errcheck
	}))
	defer srv.Close()

	p := NewOpenAIProvider(srv.URL, "sk-test", "gpt-4o-mini")
	resp, err := p.ChatCompletion(context.Background(), ChatRequest{})
	if err != nil {
		t.Fatalf("ChatCompletion failed: %v", err)
	}
	if resp.Content != PlaceholderReply {
		t.Errorf("expected placeholder reply, got %q", resp.Content)
	}
}

func TestOpenAIProvider_ChatCompletion_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewOpenAIProvider(srv.URL, "sk-test", "gpt-4o-mini")
	if _, err := p.ChatCompletion(context.Background(), ChatRequest{}); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestOpenAIProvider_ChatCompletion_ModelOverride(t *testing.T) {
	t.Parallel()

	var gotReq openAIChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq) //nolint:errcheck
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openAIChatResponse{ //nolint:errcheck
			Choices: []openAIChatChoice{{Message: Message{Content: "ok"}}},
		})
	}))
	defer srv.Close()

	p := NewOpenAIProvider(srv.URL, "sk-test", "gpt-4o-mini")
	if _, err := p.ChatCompletion(context.Background(), ChatRequest{Model: "gpt-4o"}); err != nil {
		t.Fatalf("ChatCompletion failed: %v", err)
	}
	if gotReq.Model != "gpt-4o" {
		t.Errorf("expected model override gpt-4o, got %q", gotReq.Model)
	}
}

func TestOpenAIProvider_HealthCheck(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			http.Error(w, "unexpected path", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewOpenAIProvider(srv.URL, "sk-test", "gpt-4o-mini")
	if err := p.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck failed: %v", err)
	}
}

func TestOpenAIProvider_ModelInfo(t *testing.T) {
	t.Parallel()

	p := NewOpenAIProvider("", "sk-test", "gpt-4o-mini")
	meta := p.ModelInfo()
	if meta.ID != "gpt-4o-mini" || meta.Provider != "openai" {
		t.Errorf("unexpected meta: %+v", meta)
	}
}
