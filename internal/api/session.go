package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"climb-feed-service/internal/dto"
)

type SessionService interface {
	CreateSession(ctx context.Context, in *dto.SessionCreate) (*dto.SessionResponse, error)
	GetTimeline(ctx context.Context) ([]*dto.TimelineSession, error)
}

type SessionHandler struct {
	sessionService SessionService
}

func NewSessionHandler(sessionService SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// GetTimeline returns all sessions, newest first --> /api/timeline
func (h *SessionHandler) GetTimeline(c echo.Context) error {
	timeline, err := h.sessionService.GetTimeline(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch timeline: " + err.Error()})
	}
	return c.JSON(http.StatusOK, timeline)
}

// CreateSession logs a climbing session --> /api/sessions
func (h *SessionHandler) CreateSession(c echo.Context) error {
	in := dto.SessionCreate{}
	if err := bindAndValidate(c, &in); err != nil {
		return invalidPayload(c, err)
	}

	session, err := h.sessionService.CreateSession(c.Request().Context(), &in)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create session: " + err.Error()})
	}
	return c.JSON(http.StatusOK, session)
}
