package identity

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	josejwt "github.com/go-jose/go-jose/v4/jwt"
)

// providerClaims carries the non-registered claims we read from the token.
type providerClaims struct {
	Email     string `json:"email"`
	SessionID string `json:"sid"`
}

// Validate implements validator.CustomClaims
func (c *providerClaims) Validate(context.Context) error {
	return nil
}

// JWKSVerifier validates RS256 tokens with keys discovered from the
// issuer's OpenID configuration. Keys are cached for cacheTTL.
type JWKSVerifier struct {
	validator *validator.Validator
}

func NewJWKSVerifier(issuer, audience string, cacheTTL, clockSkew time.Duration) (*JWKSVerifier, error) {
	issuerURL, err := url.Parse(issuer)
	if err != nil {
		return nil, fmt.Errorf("invalid issuer URL: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, cacheTTL)

	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{audience},
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &providerClaims{}
		}),
		validator.WithAllowedClockSkew(clockSkew),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create token validator: %w", err)
	}

	return &JWKSVerifier{validator: jwtValidator}, nil
}

func (v *JWKSVerifier) Verify(ctx context.Context, tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims, err := v.validator.ValidateToken(ctx, tokenString)
	if err != nil {
		if errors.Is(err, josejwt.ErrExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	validated, ok := claims.(*validator.ValidatedClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	if validated.RegisteredClaims.Subject == "" {
		return nil, ErrMissingSubject
	}

	id := &Identity{UserID: validated.RegisteredClaims.Subject}
	if custom, ok := validated.CustomClaims.(*providerClaims); ok {
		id.Email = custom.Email
		id.SessionID = custom.SessionID
	}

	return id, nil
}
