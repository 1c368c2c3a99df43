package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verihub/company-registry/internal/api/metrics"
	"github.com/verihub/company-registry/internal/core/domain"
	"github.com/verihub/company-registry/internal/core/ports"
)

// AuthHandler handles registration, login, logout, and profile updates.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	FirebaseUID  string `json:"firebase_uid"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Gender       string `json:"gender,omitempty"`
	MobileNumber string `json:"mobile_number,omitempty"`
	SignupType   string `json:"signup_type,omitempty"`
}

type loginRequest struct {
	IDToken string `json:"id_token"`
}

type updateProfileRequest struct {
	FullName     string `json:"full_name"`
	MobileNumber string `json:"mobile_number,omitempty"`
}

type userResponse struct {
	ID               int64  `json:"id"`
	Email            string `json:"email"`
	FullName         string `json:"full_name"`
	MobileNumber     string `json:"mobile_number,omitempty"`
	FirebaseUID      string `json:"firebase_uid"`
	IsEmailVerified  bool   `json:"is_email_verified"`
	IsMobileVerified bool   `json:"is_mobile_verified"`
}

type registerResponse struct {
	User userResponse `json:"user"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:               u.ID,
		Email:            u.Email,
		FullName:         u.FullName,
		MobileNumber:     u.MobileNumber,
		FirebaseUID:      u.FirebaseUID,
		IsEmailVerified:  u.IsEmailVerified,
		IsMobileVerified: u.IsMobileVerified,
	}
}

// Register creates a local account for a federated identity. It does not
// log the user in; the client must call Login afterwards.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.authService.Register(c.Request().Context(), ports.CreateUserInput{
		FirebaseUID:  req.FirebaseUID,
		Email:        req.Email,
		FullName:     req.FullName,
		Gender:       req.Gender,
		MobileNumber: req.MobileNumber,
		SignupType:   req.SignupType,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, registerResponse{User: toUserResponse(user)})
}

// Login exchanges a verified federated identity assertion for a session
// token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.Login(c.Request().Context(), req.IDToken)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Message: "login successful",
		Token:   result.Token,
		User:    toUserResponse(result.User),
	})
}

// Logout revokes the presented session token for its remaining lifetime.
func (h *AuthHandler) Logout(c echo.Context) error {
	revoked, err := h.authService.Logout(c.Request().Context(), c.Request().Header.Get("Authorization"))
	if err != nil {
		return err
	}
	if revoked {
		metrics.TokensRevokedTotal.Inc()
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

// UpdateProfile mutates the calling user's own profile fields.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	cu, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), cu.ID, ports.UpdateProfileInput{
		FullName:     req.FullName,
		MobileNumber: req.MobileNumber,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, registerResponse{User: toUserResponse(user)})
}
