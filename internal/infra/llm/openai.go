// OpenAI chat-completions adapter. Calls the REST API with stdlib net/http.
// Endpoints used:
//   - POST /chat/completions — non-streaming chat completion
//   - GET  /models           — health check
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	mimeJSON            = "application/json"
	headerContentType   = "Content-Type"
	headerAuthorization = "Authorization"

	// DefaultOpenAIBaseURL is the public API endpoint; override for proxies
	// or compatible servers.
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
)

// OpenAIProvider implements Provider against the OpenAI chat-completions API.
type OpenAIProvider struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewOpenAIProvider creates an OpenAIProvider. No client-level timeout is set:
// completions regularly outlive any fixed budget, and cancellation comes from
// the request context instead.
func NewOpenAIProvider(baseURL, apiKey, model string) *OpenAIProvider {
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	return &OpenAIProvider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{},
	}
}

// ─── internal OpenAI JSON types ──────────────────────────────────────────────

type openAIChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type openAIChatChoice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type openAIChatResponse struct {
	Choices []openAIChatChoice `json:"choices"`
	Usage   *Usage             `json:"usage"`
}

// ─── Provider implementation ─────────────────────────────────────────────────

// ChatCompletion performs a non-streaming chat via POST /chat/completions.
func (p *OpenAIProvider) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	body, err := json.Marshal(openAIChatRequest{
		Model:       model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	respBody, postErr := p.doPost(ctx, "/chat/completions", body)
	if postErr != nil {
		return nil, postErr
	}
	defer respBody.Close() //nolint:errcheck

	var apiResp openAIChatResponse
	if decodeErr := json.NewDecoder(respBody).Decode(&apiResp); decodeErr != nil {
		return nil, fmt.Errorf("decode chat response: %w", decodeErr)
	}

	content := ""
	stopReason := ""
	if len(apiResp.Choices) > 0 {
		content = apiResp.Choices[0].Message.Content
		stopReason = apiResp.Choices[0].FinishReason
	}

	return &ChatResponse{
		Content:    orPlaceholder(content),
		StopReason: stopReason,
		Usage:      apiResp.Usage,
	}, nil
}

// ModelInfo returns static metadata for this provider/model.
func (p *OpenAIProvider) ModelInfo() ModelMeta {
	return ModelMeta{ID: p.model, Provider: "openai"}
}

// HealthCheck calls GET /models — returns nil if the API accepts the key.
func (p *OpenAIProvider) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/models", nil)
	if err != nil {
		return fmt.Errorf("openai healthcheck: build request: %w", err)
	}
	req.Header.Set(headerAuthorization, "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("openai healthcheck: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("openai healthcheck: status %d", resp.StatusCode)
	}
	return nil
}

// doPost sends a POST request to baseURL+path and returns the response body.
// Caller is responsible for closing the returned ReadCloser.
func (p *OpenAIProvider) doPost(ctx context.Context, path string, body []byte) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai post %s: build request: %w", path, err)
	}
	req.Header.Set(headerContentType, mimeJSON)
	req.Header.Set(headerAuthorization, "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai post %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close() //nolint:errcheck
		return nil, fmt.Errorf("openai post %s: status %d", path, resp.StatusCode)
	}
	return resp.Body, nil
}
