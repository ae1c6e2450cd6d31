// Shared types between the provider interface and its adapters.
package llm

// Message represents a single turn in a conversation (role + content).
type Message struct {
	Role    string `json:"role"` // "system" | "user" | "assistant"
	Content string `json:"content"`
}

// ChatRequest is the input for a non-streaming chat completion.
type ChatRequest struct {
	// Model overrides the provider default when non-empty.
	Model       string
	Messages    []Message
	Temperature float32
	MaxTokens   int
}

// Usage is the provider-reported token accounting, passed through to the
// client unmodified. Field names follow the OpenAI wire format.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatResponse is the output from a non-streaming chat completion.
type ChatResponse struct {
	Content    string // The assistant message text, never empty (see PlaceholderReply).
	StopReason string // "stop" | "length" | "error"
	Usage      *Usage // nil when the provider reports no accounting.
}

// ModelMeta describes the model / provider identity.
type ModelMeta struct {
	ID       string // e.g. "gpt-4o-mini", "llama3.2:3b"
	Provider string // e.g. "openai", "ollama"
}

// PlaceholderReply is returned when the provider produces an empty completion,
// so the client always has something to render.
const PlaceholderReply = "No pude generar una respuesta."

// orPlaceholder substitutes PlaceholderReply for empty completion content.
func orPlaceholder(content string) string {
	if content == "" {
		return PlaceholderReply
	}
	return content
}
