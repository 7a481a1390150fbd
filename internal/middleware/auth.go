package middleware

import (
	stderrors "errors"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/identity"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	UserEmailContextKey = "user_email"
	SessionIDContextKey = "session_id"
)

// RequireAuth verifies the identity provider bearer token and stores the
// subject under handlers.UserIDContextKey.
func RequireAuth(verifier identity.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := identity.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			id, err := verifier.Verify(c.Request().Context(), token)
			if err != nil {
				log.Debug().Err(err).
					Str("trace_id", GetTraceID(c)).
					Str("path", c.Request().URL.Path).
					Msg("token rejected")

				if stderrors.Is(err, identity.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidToken)
			}

			c.Set(handlers.UserIDContextKey, id.UserID)
			c.Set(UserEmailContextKey, id.Email)
			c.Set(SessionIDContextKey, id.SessionID)

			return next(c)
		}
	}
}
