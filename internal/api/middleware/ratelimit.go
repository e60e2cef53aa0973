package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/donaldgifford/price-alert-api/internal/metrics"
)

// RateLimit returns Echo middleware that throttles requests to the given
// paths with a shared token bucket. A sweep walks the whole store, so the
// trigger endpoint is the one place a client can make the service do
// unbounded work; everything else passes through untouched.
func RateLimit(limiter *rate.Limiter, paths ...string) echo.MiddlewareFunc {
	guarded := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		guarded[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := guarded[c.Request().URL.Path]; !ok {
				return next(c)
			}

			if !limiter.Allow() {
				metrics.SweepThrottledTotal.Inc()
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"success":   false,
					"error":     "Too many requests, slow down",
					"timestamp": time.Now().UTC(),
				})
			}

			return next(c)
		}
	}
}
