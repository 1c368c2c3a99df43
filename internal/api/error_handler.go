package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/verihub/company-registry/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors except
// validation failures, which carry their own {errors: [...]} shape.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes. Every
	// unauthenticated variant collapses into one 401 message so a caller
	// cannot distinguish a forged token from a deleted account.
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "not authorized"
	case errors.Is(err, domain.ErrInvalidAssertion):
		return http.StatusUnauthorized, "invalid identity assertion"
	case errors.Is(err, domain.ErrDuplicateAccount):
		return http.StatusBadRequest, "user with this email already exists"
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "user not found, please register first"
	case errors.Is(err, domain.ErrCompanyNotFound):
		return http.StatusNotFound, "company profile not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
