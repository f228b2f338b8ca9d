package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"climb-feed-service/internal/idempotency"
)

type Handlers struct {
	Root    *RootHandler
	User    *UserHandler
	Gym     *GymHandler
	Session *SessionHandler
}

type RouterConfig struct {
	Logger zerolog.Logger
	// Idempotency is optional; nil disables Idempotency-Key handling.
	Idempotency idempotency.Store
}

func NewRouter(h Handlers, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(RequestLogger(cfg.Logger))
	e.Use(CORS())

	// Routes
	e.GET("/", h.Root.Root)
	e.GET("/health", h.Root.Health)

	g := e.Group("/api")
	if cfg.Idempotency != nil {
		g.Use(Idempotency(cfg.Idempotency))
	}
	g.GET("/timeline", h.Session.GetTimeline)
	g.GET("/gyms", h.Gym.GetGyms)
	g.POST("/gyms", h.Gym.CreateGym)
	g.GET("/users/:id", h.User.GetUserByID)
	g.POST("/users", h.User.CreateUser)
	g.POST("/sessions", h.Session.CreateSession)

	return e
}
