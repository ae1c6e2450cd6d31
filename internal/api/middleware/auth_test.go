package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dmonterocr/legalia/internal/api/ctxkeys"
	pkgauth "github.com/dmonterocr/legalia/pkg/auth"
)

func authedHandler(t *testing.T, wantToken, wantUser string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := ctxkeys.Value(r.Context(), ctxkeys.BearerToken); got != wantToken {
			t.Errorf("bearer token in context = %q, want %q", got, wantToken)
		}
		if got := ctxkeys.Value(r.Context(), ctxkeys.UserID); got != wantUser {
			t.Errorf("user id in context = %q, want %q", got, wantUser)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_MissingHeader(t *testing.T) {
	mw := Auth(nil, zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", nil)
	rr := httptest.NewRecorder()

	mw(authedHandler(t, "", "")).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	mw := Auth(nil, zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr := httptest.NewRecorder()

	mw(authedHandler(t, "", "")).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestAuth_OpaqueToken_NoSecret(t *testing.T) {
	// Without a JWT secret the token is forwarded opaquely, no claims parsed.
	mw := Auth(nil, zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", nil)
	req.Header.Set("Authorization", "Bearer opaque-token")
	rr := httptest.NewRecorder()

	mw(authedHandler(t, "opaque-token", "")).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestAuth_ValidJWT(t *testing.T) {
	secret := []byte("s3cret")
	token, err := pkgauth.Generate(secret, "u_42", time.Hour)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	mw := Auth(secret, zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	mw(authedHandler(t, token, "u_42")).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestAuth_InvalidJWT(t *testing.T) {
	mw := Auth([]byte("s3cret"), zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rr := httptest.NewRecorder()

	called := false
	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if called {
		t.Error("next handler must not run for an invalid token")
	}
}

func TestExtractBearerToken(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"Bearer abc":     "abc",
		"Bearer   abc  ": "abc",
		"bearer abc":     "", // scheme is case-sensitive
		"Token abc":      "",
		"Bearer ":        "",
	}
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		if got := extractBearerToken(req); got != want {
			t.Errorf("extractBearerToken(%q) = %q, want %q", header, got, want)
		}
	}
}
