package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type RootHandler struct {
	serviceName string
	db          Pinger
}

func NewRootHandler(serviceName string, db Pinger) *RootHandler {
	return &RootHandler{serviceName: serviceName, db: db}
}

// Root is the liveness message --> /
func (h *RootHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Climbing Social Media API"})
}

// Health reports database reachability --> /health
func (h *RootHandler) Health(c echo.Context) error {
	status, code := "ok", http.StatusOK
	if err := h.db.PingContext(c.Request().Context()); err != nil {
		status, code = "unavailable", http.StatusServiceUnavailable
	}

	return c.JSON(code, map[string]any{
		"status":  status,
		"service": h.serviceName,
		"time":    time.Now().Format(time.RFC3339),
	})
}
