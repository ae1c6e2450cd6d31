// Package llm defines the model-agnostic completion provider abstraction.
// Adapters (OpenAI, Ollama) implement this interface so the chat pipeline is
// never coupled to a specific vendor.
package llm

import "context"

// Provider is the model-agnostic interface for completion operations.
type Provider interface {
	// ChatCompletion performs a non-streaming chat completion.
	ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error)

	// ModelInfo returns static metadata about the provider/model.
	ModelInfo() ModelMeta

	// HealthCheck returns nil if the provider is reachable and operational.
	HealthCheck(ctx context.Context) error
}
