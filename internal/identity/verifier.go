// Package identity verifies session tokens issued by the external identity
// provider and resolves them to a user ID.
package identity

import (
	"context"
	"errors"
	"strings"

	"finance-dashboard/internal/config"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrMissingSubject    = errors.New("token has no subject")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// Identity is the authenticated caller.
type Identity struct {
	UserID    string
	Email     string
	SessionID string
}

// Verifier validates a raw bearer token.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// ExtractTokenFromHeader extracts the JWT token from the Authorization header
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidAuthHeader
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

// NewFromConfig picks the JWKS verifier when an issuer URL is configured and
// falls back to the static public key otherwise.
func NewFromConfig(cfg config.AuthConfig) (Verifier, error) {
	if cfg.JWKSIssuerURL != "" {
		return NewJWKSVerifier(cfg.JWKSIssuerURL, cfg.Audience, cfg.JWKSCacheTTL, cfg.ClockSkew)
	}
	if cfg.PublicKey != nil {
		return NewKeyVerifier(cfg.PublicKey, cfg.Issuer, cfg.ClockSkew), nil
	}
	return nil, errors.New("no token verification method configured")
}
