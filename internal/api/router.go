// Package api assembles the Echo router for the price alert service.
package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/donaldgifford/price-alert-api/internal/api/handlers"
	"github.com/donaldgifford/price-alert-api/internal/api/middleware"
	"github.com/donaldgifford/price-alert-api/internal/config"
	"github.com/donaldgifford/price-alert-api/internal/store"
)

// NewRouter builds the fully wired Echo instance: middleware, system
// endpoints, and the versioned alert API.
func NewRouter(cfg *config.Config, st store.Store, version string, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(log)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst)

	e.Use(
		middleware.Recovery(log),
		middleware.RequestLog(log),
		middleware.Metrics(),
		middleware.RateLimit(limiter, "/api/v1/check-prices"),
		middleware.CSRF(cfg.Security, log),
	)

	healthH := handlers.NewHealthHandler(st)
	tokenH := handlers.NewTokenHandler(cfg.Security, log)

	e.GET("/healthz", healthH.Healthz)
	e.GET("/readyz", healthH.Readyz)
	e.GET("/csrf-token", tokenH.Token)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig("Price Alert API", version)
	humaCfg.DocsPath = "/api/docs"
	hAPI := humaecho.New(e, humaCfg)

	handlers.RegisterAlertRoutes(hAPI, handlers.NewAlertHandler(st))
	handlers.RegisterCheckRoutes(hAPI, handlers.NewCheckHandler(st))

	return e
}

// errorHandler converts errors that escape the Echo layer into the API's
// error envelope. Unknown routes name the method and path; everything
// unexpected stays an opaque 500 with the detail in the server log.
func errorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := "Internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			switch {
			case status == http.StatusNotFound:
				msg = fmt.Sprintf("Route not found: %s %s",
					c.Request().Method, c.Request().URL.Path)
			case status < http.StatusInternalServerError:
				if s, ok := he.Message.(string); ok {
					msg = s
				} else {
					msg = http.StatusText(status)
				}
			}
		}

		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
			)
		}

		if jsonErr := c.JSON(status, map[string]any{
			"success":   false,
			"error":     msg,
			"timestamp": time.Now().UTC(),
		}); jsonErr != nil {
			log.Error("writing error response", "error", jsonErr)
		}
	}
}
