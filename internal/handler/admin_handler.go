package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"lostfound/internal/auth"
	"lostfound/internal/errors"
	"lostfound/internal/service"
)

// AdminHandler handles admin endpoints.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// AdminLoginRequest represents admin credentials.
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginResponse carries the admin's public fields and an access token.
type AdminLoginResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

// MeResponse describes the authenticated admin.
type MeResponse struct {
	AdminID   uint      `json:"admin_id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login godoc
// @Summary Admin login
// @Tags admins
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "Admin credentials"
// @Success 200 {object} AdminLoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admins/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req AdminLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := h.adminService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err, "Failed to login")
	}

	return c.JSON(http.StatusOK, AdminLoginResponse{
		ID:      session.Admin.ID,
		Name:    session.Admin.Name,
		Email:   session.Admin.Email,
		IsAdmin: true,
		Token:   session.AccessToken,
	})
}

// Me godoc
// @Summary Describe the authenticated admin
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /admins/me [get]
func (h *AdminHandler) Me(c echo.Context) error {
	claims, err := adminClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MeResponse{
		AdminID:   claims.AdminID,
		Email:     claims.Email,
		IsAdmin:   claims.IsAdmin,
		ExpiresAt: claims.ExpiresAt.Time,
	})
}

// Logout godoc
// @Summary Revoke the current admin token
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admins/logout [post]
func (h *AdminHandler) Logout(c echo.Context) error {
	claims, err := adminClaims(c)
	if err != nil {
		return err
	}
	if err := h.adminService.Logout(c.Request().Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		return respondError(c, err, "Failed to logout")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// adminClaims extracts the claims the JWT middleware stored under "user".
func adminClaims(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, unauthorized("invalid token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok || !claims.IsAdmin || claims.ExpiresAt == nil {
		return nil, unauthorized("invalid token")
	}
	return claims, nil
}

func unauthorized(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
		Error: msg,
		Code:  "UNAUTHORIZED",
	})
}

// RevocationMiddleware rejects tokens that were logged out. It must run after
// the JWT middleware.
func RevocationMiddleware(store auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := adminClaims(c)
			if err != nil {
				return err
			}
			revoked, _ := store.IsRevoked(c.Request().Context(), claims.ID)
			if revoked {
				return unauthorized("token revoked")
			}
			return next(c)
		}
	}
}
