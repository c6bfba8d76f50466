package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emon00007/easysubstech/internal/core/domain"
	"github.com/emon00007/easysubstech/internal/core/ports"
)

// UserHandler handles HTTP requests for user records.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type registerUserRequest struct {
	Email string         `json:"email" validate:"required,email"`
	Name  string         `json:"name"`
	Role  string         `json:"role"`
	Extra map[string]any `json:"extra"`
}

// registerUserResponse mirrors the legacy insert-result shape: on a
// duplicate email, insertedId is null and message explains why.
type registerUserResponse struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

// Register creates a new user unless the email is already registered.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "User details"
// @Success      200   {object}  registerUserResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
		Extra: req.Extra,
	})
	if err != nil {
		return err
	}

	if result.AlreadyExisted {
		return c.JSON(http.StatusOK, registerUserResponse{Message: "User already exists", InsertedID: nil})
	}
	return c.JSON(http.StatusOK, registerUserResponse{InsertedID: &result.InsertedID})
}

// List returns all user records.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ListByRole returns users whose role field matches the path parameter.
//
// @Summary      List users by role
// @Tags         users
// @Produce      json
// @Param        role  path     string  true  "Role value to filter on"
// @Success      200   {array}  domain.User
// @Router       /users/role/{role} [get]
func (h *UserHandler) ListByRole(c echo.Context) error {
	users, err := h.service.ListByRole(c.Request().Context(), c.Param("role"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetByEmail returns the single user registered under the email.
//
// @Summary      Get a user by email
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "Email address"
// @Success      200    {object}  domain.User
// @Failure      404    {object}  errorResponse
// @Router       /users/{email} [get]
func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.service.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}
