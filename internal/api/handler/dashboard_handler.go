package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verihub/company-registry/internal/core/domain"
)

// DashboardHandler serves the authenticated landing data.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

type dashboardResponse struct {
	Message string             `json:"message"`
	User    domain.CurrentUser `json:"user"`
}

// Get greets the caller with their resolved identity.
func (h *DashboardHandler) Get(c echo.Context) error {
	cu, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{
		Message: "welcome to your dashboard, " + cu.Email,
		User:    cu,
	})
}
