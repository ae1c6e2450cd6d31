// Package auth provides JWT parsing and generation for bearer credentials.
// Leaf package with no domain dependencies. The document service is the
// authority on credentials; this package only extracts claims locally so the
// server can attribute requests without a round trip.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims carried by a workspace bearer token.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Generate creates a signed HS256 token with the given user claim and TTL.
// Used by tests and local tooling; production tokens come from the document
// service's login flow.
func Generate(secret []byte, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT: %w", err)
	}
	return signed, nil
}

// Parse validates tokenString against secret and extracts its claims.
// Returns an error for invalid, expired, or malformed tokens.
func Parse(secret []byte, tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method is HMAC-SHA256 (prevent algorithm substitution attacks)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid JWT claims or signature")
	}
	return claims, nil
}
