package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"climb-feed-service/internal/dto"
)

type GymService interface {
	GetGyms(ctx context.Context) ([]*dto.GymResponse, error)
	CreateGym(ctx context.Context, in *dto.GymCreate) (*dto.GymResponse, error)
}

type GymHandler struct {
	gymService GymService
}

func NewGymHandler(gymService GymService) *GymHandler {
	return &GymHandler{gymService: gymService}
}

// GetGyms lists every gym --> /api/gyms
func (h *GymHandler) GetGyms(c echo.Context) error {
	gyms, err := h.gymService.GetGyms(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch gyms: " + err.Error()})
	}
	return c.JSON(http.StatusOK, gyms)
}

// CreateGym creates a new gym --> /api/gyms
func (h *GymHandler) CreateGym(c echo.Context) error {
	in := dto.GymCreate{}
	if err := bindAndValidate(c, &in); err != nil {
		return invalidPayload(c, err)
	}

	gym, err := h.gymService.CreateGym(c.Request().Context(), &in)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create gym: " + err.Error()})
	}
	return c.JSON(http.StatusOK, gym)
}
