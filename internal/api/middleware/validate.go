package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verihub/company-registry/internal/api/metrics"
	"github.com/verihub/company-registry/internal/validate"
)

// validationErrorResponse is the 400 envelope listing every failing field.
type validationErrorResponse struct {
	Errors []validate.FieldError `json:"errors"`
}

// ValidateBody runs the endpoint's rule set against the request payload and
// rejects the request wholesale when any rule fails. Every rule runs; the
// response lists all failures, not just the first.
func ValidateBody(rules validate.RuleSet) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			payload, err := readPayload(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
			}

			if errs := validate.Run(payload, rules); len(errs) > 0 {
				metrics.ValidationFailuresTotal.WithLabelValues(c.Path()).Inc()
				return c.JSON(http.StatusBadRequest, validationErrorResponse{Errors: errs})
			}
			return next(c)
		}
	}
}
