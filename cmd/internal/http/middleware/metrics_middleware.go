package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

type MetricsMiddlewareConfig struct {
	Observer RequestObserver
	// Skipper leaves a request out of the metrics, e.g. the scrape itself.
	Skipper func(c echo.Context) bool
}

// NewMetricsMiddleware records every request under its route template, so
// "/companies/123456789" and "/companies/987654321" share one series.
func NewMetricsMiddleware(cfg *MetricsMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Skipper != nil && cfg.Skipper(c) {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}
			cfg.Observer.ObserveRequest(c.Request().Method, route, responseStatus(c, err), time.Since(start))
			return err
		}
	}
}

// responseStatus resolves the status of a request whose error has not been
// written to the client yet.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
