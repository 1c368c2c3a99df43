package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verihub/company-registry/internal/api/middleware"
	"github.com/verihub/company-registry/internal/core/domain"
)

// currentUser extracts the identity projection attached by the auth gate.
// Its absence means a protected handler was registered without the Auth
// middleware; that is a wiring bug, surfaced as a 401 rather than a panic.
func currentUser(c echo.Context) (domain.CurrentUser, error) {
	cu, ok := c.Get(middleware.CurrentUserKey).(domain.CurrentUser)
	if !ok || cu.ID == 0 {
		return domain.CurrentUser{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return cu, nil
}
