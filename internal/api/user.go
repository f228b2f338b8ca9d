package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"climb-feed-service/internal/dto"
)

type UserService interface {
	GetUserByID(ctx context.Context, id int) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, in *dto.UserCreate) (*dto.UserResponse, error)
}

type UserHandler struct {
	userService UserService
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUserByID retrieves a user by ID --> /api/users/:id
func (h *UserHandler) GetUserByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user ID"})
	}

	user, err := h.userService.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch user: " + err.Error()})
	}
	if user == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}
	return c.JSON(http.StatusOK, user)
}

// CreateUser creates a new user --> /api/users
func (h *UserHandler) CreateUser(c echo.Context) error {
	in := dto.UserCreate{}
	if err := bindAndValidate(c, &in); err != nil {
		return invalidPayload(c, err)
	}

	user, err := h.userService.CreateUser(c.Request().Context(), &in)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create user: " + err.Error()})
	}
	return c.JSON(http.StatusOK, user)
}
