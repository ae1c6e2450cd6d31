// Package ctxkeys holds the shared context keys for the API layer.
// Extracted to a leaf package to avoid import cycles between api and api/handlers.
package ctxkeys

import "context"

// Key is the unexported named type for all API context keys.
// A named type avoids collisions with string keys from other packages at
// runtime (context.Value compares both type and value).
type Key string

const (
	// UserID is the context key for the authenticated user, when the bearer
	// token carries locally verifiable claims. May be absent.
	UserID Key = "user_id"

	// BearerToken is the context key for the raw bearer credential. The chat
	// pipeline forwards it verbatim to the document service, which is the
	// real authority on it.
	BearerToken Key = "bearer_token"
)

// WithValue adds a ctxkeys.Key value to the context.
func WithValue(ctx context.Context, key Key, value string) context.Context {
	return context.WithValue(ctx, key, value)
}

// Value reads a ctxkeys.Key string value from the context, or "" if unset.
func Value(ctx context.Context, key Key) string {
	v, _ := ctx.Value(key).(string)
	return v
}
