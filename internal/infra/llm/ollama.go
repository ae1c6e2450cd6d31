// Ollama adapter — kept for local deployments without an OpenAI key.
// Calls the local Ollama REST API using stdlib net/http.
// Endpoints used:
//   - POST /api/chat — non-streaming chat completion
//   - GET  /api/tags — health check (lists available models)
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// OllamaProvider implements Provider against a running Ollama instance.
type OllamaProvider struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewOllamaProvider creates an OllamaProvider. Same cancellation contract as
// the OpenAI adapter: no client-level timeout, the request context governs.
func NewOllamaProvider(baseURL, model string) *OllamaProvider {
	return &OllamaProvider{
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{},
	}
}

// ─── internal Ollama JSON types ──────────────────────────────────────────────

type ollamaChatRequest struct {
	Model    string         `json:"model"`
	Messages []Message      `json:"messages"`
	Stream   bool           `json:"stream"`
	Options  map[string]any `json:"options,omitempty"`
}

type ollamaChatResponse struct {
	Message         Message `json:"message"`
	DoneReason      string  `json:"done_reason"`
	PromptEvalCount int     `json:"prompt_eval_count"`
	EvalCount       int     `json:"eval_count"`
}

// ─── Provider implementation ─────────────────────────────────────────────────

// ChatCompletion performs a non-streaming chat via POST /api/chat.
func (p *OllamaProvider) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	body, err := json.Marshal(ollamaChatRequest{
		Model:    model,
		Messages: req.Messages,
		Stream:   false,
		Options:  buildChatOptions(req),
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ollama post /api/chat: build request: %w", err)
	}
	httpReq.Header.Set(headerContentType, mimeJSON)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ollama post /api/chat: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ollama post /api/chat: status %d", resp.StatusCode)
	}

	var apiResp ollamaChatResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&apiResp); decodeErr != nil {
		return nil, fmt.Errorf("decode chat response: %w", decodeErr)
	}

	return &ChatResponse{
		Content:    orPlaceholder(apiResp.Message.Content),
		StopReason: apiResp.DoneReason,
		Usage: &Usage{
			PromptTokens:     apiResp.PromptEvalCount,
			CompletionTokens: apiResp.EvalCount,
			TotalTokens:      apiResp.PromptEvalCount + apiResp.EvalCount,
		},
	}, nil
}

// buildChatOptions converts ChatRequest fields into the Ollama options map.
func buildChatOptions(req ChatRequest) map[string]any {
	opts := map[string]any{}
	if req.Temperature != 0 {
		opts["temperature"] = req.Temperature
	}
	if req.MaxTokens != 0 {
		opts["num_predict"] = req.MaxTokens
	}
	if len(opts) == 0 {
		return nil
	}
	return opts
}

// ModelInfo returns static metadata for this provider/model.
func (p *OllamaProvider) ModelInfo() ModelMeta {
	return ModelMeta{ID: p.model, Provider: "ollama"}
}

// HealthCheck calls GET /api/tags — returns nil if Ollama is reachable.
func (p *OllamaProvider) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("ollama healthcheck: build request: %w", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ollama healthcheck: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama healthcheck: status %d", resp.StatusCode)
	}
	return nil
}
