package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/identity"
	"finance-dashboard/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const authTestIssuer = "https://clerk.example.test"

type AuthMiddlewareTestSuite struct {
	suite.Suite
	echo       *echo.Echo
	privateKey *rsa.PrivateKey
	verifier   identity.Verifier
}

func (s *AuthMiddlewareTestSuite) SetupSuite() {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	s.Require().NoError(err)
	s.privateKey = key
	s.verifier = identity.NewKeyVerifier(&key.PublicKey, authTestIssuer, time.Second)
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) sign(subject string, expiresIn time.Duration) string {
	now := time.Now()
	claims := models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    authTestIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
			NotBefore: jwt.NewNumericDate(now.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
		Email:     "jane@example.com",
		SessionID: "sess_123",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	s.Require().NoError(err)
	return signed
}

func (s *AuthMiddlewareTestSuite) run(authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/stats/balance", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "auth-trace")

	s.Require().NoError(RequireAuth(s.verifier)(next)(c))
	return rec
}

func (s *AuthMiddlewareTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func (s *AuthMiddlewareTestSuite) unreachable(c echo.Context) error {
	s.Fail("next handler must not run")
	return nil
}

func (s *AuthMiddlewareTestSuite) TestValidTokenSetsIdentity() {
	token := s.sign("user_2abc", time.Hour)

	rec := s.run("Bearer "+token, func(c echo.Context) error {
		s.Equal("user_2abc", c.Get(handlers.UserIDContextKey))
		s.Equal("jane@example.com", c.Get(UserEmailContextKey))
		s.Equal("sess_123", c.Get(SessionIDContextKey))
		return c.NoContent(http.StatusOK)
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareTestSuite) TestMissingHeader() {
	rec := s.run("", s.unreachable)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthMissingToken), s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestMalformedHeader() {
	rec := s.run("Basic dXNlcjpwYXNz", s.unreachable)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestExpiredToken() {
	token := s.sign("user_2abc", -10*time.Minute)

	rec := s.run("Bearer "+token, s.unreachable)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthExpiredToken), s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestForeignSignature() {
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	s.Require().NoError(err)
	claims := jwt.RegisteredClaims{
		Issuer:    authTestIssuer,
		Subject:   "user_2abc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(other)
	s.Require().NoError(err)

	rec := s.run("Bearer "+token, s.unreachable)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidToken), s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestGarbageToken() {
	rec := s.run("Bearer not-a-jwt", s.unreachable)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidToken), s.errorCode(rec))
}
