package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lostfound/internal/service"
)

// UserHandler handles owner endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UserLoginRequest identifies a user by email; name and dob are used only
// when the email is new.
type UserLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	DOB   string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} model.Owner
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(c, err, "Failed to fetch users")
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.Owner
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to fetch user")
	}
	return c.JSON(http.StatusOK, user)
}

// Login godoc
// @Summary Log in, registering the email on first use
// @Tags users
// @Accept json
// @Produce json
// @Param request body UserLoginRequest true "User identity"
// @Success 200 {object} model.Owner "existing user"
// @Success 201 {object} model.Owner "new user"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req UserLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, created, err := h.svc.LoginOrRegister(c.Request().Context(), req.Email, req.Name, req.DOB)
	if err != nil {
		return respondError(c, err, "Failed to login/register")
	}
	if created {
		return c.JSON(http.StatusCreated, user)
	}
	return c.JSON(http.StatusOK, user)
}

// GetUserItems godoc
// @Summary List items owned by a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} model.Item
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id}/items [get]
func (h *UserHandler) GetUserItems(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	items, err := h.svc.GetUserItems(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to fetch user items")
	}
	return c.JSON(http.StatusOK, items)
}
