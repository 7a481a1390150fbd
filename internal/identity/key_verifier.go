package identity

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"finance-dashboard/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// KeyVerifier checks RS256 tokens against a single configured public key.
type KeyVerifier struct {
	publicKey *rsa.PublicKey
	issuer    string
	clockSkew time.Duration
}

func NewKeyVerifier(publicKey *rsa.PublicKey, issuer string, clockSkew time.Duration) *KeyVerifier {
	return &KeyVerifier{
		publicKey: publicKey,
		issuer:    issuer,
		clockSkew: clockSkew,
	}
}

func (v *KeyVerifier) Verify(_ context.Context, tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.IdentityClaims{}, v.keyFunc, jwt.WithLeeway(v.clockSkew))
	if err != nil {
		return nil, v.mapTokenError(err)
	}

	claims, ok := token.Claims.(*models.IdentityClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if v.issuer != "" && claims.Issuer != v.issuer {
		return nil, ErrInvalidIssuer
	}

	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}

	return &Identity{
		UserID:    claims.Subject,
		Email:     claims.Email,
		SessionID: claims.SessionID,
	}, nil
}

func (v *KeyVerifier) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return v.publicKey, nil
}

func (v *KeyVerifier) mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpiredToken
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}
