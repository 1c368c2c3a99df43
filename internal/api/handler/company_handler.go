package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/verihub/company-registry/internal/core/domain"
	"github.com/verihub/company-registry/internal/core/ports"
)

// CompanyHandler handles company profile CRUD. Every operation is scoped to
// the authenticated owner taken from the request context.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

type companyRequest struct {
	CompanyName string `json:"company_name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	ZipCode     string `json:"zip_code"`
	LogoURL     string `json:"logo_url,omitempty"`
	BannerURL   string `json:"banner_url,omitempty"`
}

func (r companyRequest) toInput() ports.CompanyInput {
	return ports.CompanyInput{
		CompanyName: r.CompanyName,
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		Country:     r.Country,
		ZipCode:     r.ZipCode,
		LogoURL:     r.LogoURL,
		BannerURL:   r.BannerURL,
	}
}

// Create registers a new company profile owned by the caller.
func (h *CompanyHandler) Create(c echo.Context) error {
	cu, err := currentUser(c)
	if err != nil {
		return err
	}

	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	profile, err := h.service.Create(c.Request().Context(), cu.ID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, profile)
}

// List returns the caller's company profiles, newest first.
func (h *CompanyHandler) List(c echo.Context) error {
	cu, err := currentUser(c)
	if err != nil {
		return err
	}

	profiles, err := h.service.List(c.Request().Context(), cu.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// Update replaces a profile's writable fields. Only the owner's rows match.
func (h *CompanyHandler) Update(c echo.Context) error {
	cu, err := currentUser(c)
	if err != nil {
		return err
	}
	profileID, err := profileParam(c)
	if err != nil {
		return err
	}

	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	profile, err := h.service.Update(c.Request().Context(), cu.ID, profileID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Delete removes one of the caller's profiles.
func (h *CompanyHandler) Delete(c echo.Context) error {
	cu, err := currentUser(c)
	if err != nil {
		return err
	}
	profileID, err := profileParam(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), cu.ID, profileID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "company profile deleted"})
}

func profileParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrCompanyNotFound
	}
	return id, nil
}
