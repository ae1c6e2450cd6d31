// Bearer-credential middleware.
// Reads Authorization: Bearer <token>, keeps the raw token in context for
// upstream forwarding, and — when a JWT secret is configured — validates the
// token locally and injects the user claim.
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/dmonterocr/legalia/internal/api/ctxkeys"
	pkgauth "github.com/dmonterocr/legalia/pkg/auth"
)

// Auth returns the bearer middleware for /api/v1/* routes.
//
// Flow:
//  1. Read "Authorization: Bearer <token>" header
//  2. Reject if missing or not Bearer scheme → 401
//  3. When secret is non-empty: parse + validate JWT → 401 on invalid/expired,
//     inject ctxkeys.UserID on success
//  4. Always inject ctxkeys.BearerToken (the document service revalidates it)
func Auth(secret []byte, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeUnauthorized(w, "credencial requerida")
				return
			}

			ctx := ctxkeys.WithValue(r.Context(), ctxkeys.BearerToken, token)

			if len(secret) > 0 {
				claims, err := pkgauth.Parse(secret, token)
				if err != nil {
					logger.Debug("token rejected", zap.Error(err))
					writeUnauthorized(w, "credencial inválida o expirada")
					return
				}
				ctx = ctxkeys.WithValue(ctx, ctxkeys.UserID, claims.UserID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken extracts the token from "Authorization: Bearer <token>".
// Returns empty string if the header is missing, wrong scheme, or empty token.
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	// Must start with "Bearer " (case-sensitive per RFC 7235)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

// writeUnauthorized writes a 401 JSON response.
// Uses the same format as writeError in the handlers package.
func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
