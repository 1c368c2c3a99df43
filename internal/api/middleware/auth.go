package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/verihub/company-registry/internal/api/metrics"
	"github.com/verihub/company-registry/internal/core/domain"
	"github.com/verihub/company-registry/internal/core/ports"
)

// CurrentUserKey is the echo context key under which Auth stores the
// resolved identity projection. The value is always a domain.CurrentUser.
const CurrentUserKey = "currentUser"

// Auth is the authorization gate: it resolves the bearer token to the
// caller's identity and attaches it to the request context. Any
// verification failure terminates the request before the handler runs.
func Auth(verifier ports.IdentityVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Idempotent across stacked protected middlewares.
			if _, ok := c.Get(CurrentUserKey).(domain.CurrentUser); ok {
				return next(c)
			}

			user, err := verifier.Verify(c.Request().Context(), c.Request().Header.Get("Authorization"))
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues(failureReason(err)).Inc()
				return err
			}

			c.Set(CurrentUserKey, user)
			return next(c)
		}
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoToken):
		return "no_token"
	case errors.Is(err, domain.ErrTokenRevoked):
		return "revoked"
	case errors.Is(err, domain.ErrUserGone):
		return "user_gone"
	case errors.Is(err, domain.ErrInvalidToken):
		return "invalid_token"
	default:
		return "error"
	}
}
