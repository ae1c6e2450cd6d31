package audit

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmonterocr/legalia/pkg/uuid"
)

// Service writes and reads chat audit events.
// All operations are append-only; no updates or deletes are supported.
type Service struct {
	db *sql.DB
}

// NewService creates an audit service on top of an already-migrated database.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Log records one chat event. The ID and CreatedAt fields are assigned here;
// callers only describe what happened.
func (s *Service) Log(ctx context.Context, event ChatEvent) error {
	event.ID = uuid.NewV7().String()
	event.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_audit_events
			(id, user_id, outcome, error_class, detail, model,
			 citations, prompt_tokens, completion_tokens, total_tokens, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.UserID, string(event.Outcome), event.ErrorClass, event.Detail,
		event.Model, event.Citations, event.PromptTokens, event.CompletionTokens,
		event.TotalTokens, event.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// Recent returns up to limit events, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]ChatEvent, error) {
	if limit <= 0 {
		limit = 25
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, outcome, error_class, detail, model,
		       citations, prompt_tokens, completion_tokens, total_tokens, created_at
		FROM chat_audit_events
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var events []ChatEvent
	for rows.Next() {
		var e ChatEvent
		var outcome, createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &outcome, &e.ErrorClass, &e.Detail, &e.Model,
			&e.Citations, &e.PromptTokens, &e.CompletionTokens, &e.TotalTokens, &createdAt); err != nil {
			return nil, err
		}
		e.Outcome = Outcome(outcome)
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		events = append(events, e)
	}
	return events, rows.Err()
}
