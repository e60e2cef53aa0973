// Package middleware provides Echo middleware for the price alert API.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/price-alert-api/internal/metrics"
)

// healthGauges maps probe paths to their up/down gauge. Probes and the
// scrape endpoint stay out of the request histogram and counter; a probe
// every few seconds would dominate both, and the gauges already say what
// matters about them.
var healthGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware recording request duration and status.
// The path label uses the registered route pattern, not the raw URL, so
// /api/v1/alerts/user/{userId} stays one series regardless of user.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			if gauge, ok := healthGauges[path]; ok {
				err := next(c)
				if s := c.Response().Status; s >= 200 && s < 300 {
					gauge.Set(1)
				} else {
					gauge.Set(0)
				}
				return err
			}
			if path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			elapsed := time.Since(start).Seconds()

			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)
			metrics.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(elapsed)
			metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()

			return err
		}
	}
}
