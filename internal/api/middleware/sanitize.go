package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verihub/company-registry/internal/sanitize"
)

// SanitizeJSON strips markup from every string value in a JSON request body
// before validation or binding sees it. Non-object bodies pass through
// unchanged; a body that is not valid JSON is rejected here rather than
// deeper in the stack.
func SanitizeJSON() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Request().Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
			default:
				return next(c)
			}

			payload, err := readPayload(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
			}
			if payload == nil {
				return next(c)
			}

			if err := writePayload(c, sanitize.Strip(payload)); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
			}
			return next(c)
		}
	}
}
