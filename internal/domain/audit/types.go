// Package audit provides an append-only log of chat requests. Events are
// observability data: writes are best-effort and must never fail the request
// that produced them.
package audit

import "time"

// Outcome represents the result of an audited chat request.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeError   Outcome = "error"
)

// ChatEvent is one audited chat request.
// Immutable — once written it is never modified.
type ChatEvent struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id,omitempty"`
	Outcome          Outcome   `json:"outcome"`
	ErrorClass       string    `json:"error_class,omitempty"` // e.g. "context_unavailable"
	Detail           string    `json:"detail,omitempty"`      // short diagnostic, no payloads
	Model            string    `json:"model,omitempty"`
	Citations        int       `json:"citations"`
	PromptTokens     int       `json:"prompt_tokens"`
	CompletionTokens int       `json:"completion_tokens"`
	TotalTokens      int       `json:"total_tokens"`
	CreatedAt        time.Time `json:"created_at"`
}
