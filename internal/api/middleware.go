package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"climb-feed-service/internal/idempotency"
)

const HeaderIdempotencyKey = "Idempotency-Key"

// RequestLogger writes one zerolog event per request.
func RequestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := logger.Info()
			if v.Error != nil {
				ev = logger.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

// CORS allows any origin, method and header.
func CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch,
			http.MethodPost, http.MethodDelete, http.MethodOptions,
		},
	})
}

// Idempotency rejects a POST whose Idempotency-Key header was already used on the same path.
// Requests without the header pass through. A request that ends in an error status
// releases its key, so a corrected retry with the same key is accepted.
func Idempotency(store idempotency.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			key := req.Header.Get(HeaderIdempotencyKey)
			if key == "" || req.Method != http.MethodPost {
				return next(c)
			}

			scoped := req.URL.Path + ":" + key
			ok, err := store.Claim(req.Context(), scoped)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
			}
			if !ok {
				return c.JSON(http.StatusConflict, map[string]string{"error": "idempotent key already exists"})
			}

			err = next(c)
			if responseStatus(c, err) >= http.StatusBadRequest {
				if relErr := store.Release(req.Context(), scoped); relErr != nil {
					log.Warn().Err(relErr).Str("key", scoped).Msg("failed to release idempotency key")
				}
			}
			return err
		}
	}
}

// responseStatus is the status the client will see, including errors not yet
// rendered by echo's error handler.
func responseStatus(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
