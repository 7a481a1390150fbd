package models

import "github.com/golang-jwt/jwt/v5"

// IdentityClaims are the claims read from identity provider session tokens.
// The subject is the user ID.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Email     string `json:"email,omitempty"`
	SessionID string `json:"sid,omitempty"`
}
