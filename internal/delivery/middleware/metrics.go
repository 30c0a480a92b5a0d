package middleware

import (
	"time"

	"survey/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests that hit no registered route, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// Metrics records request count and latency per route template.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := responseStatus(c, err)

		path := c.Path()
		if path == "" {
			path = unmatchedRoute
		}
		metrics.ObserveHTTPRequest(c.Request().Method, path, status, time.Since(start))

		return err
	}
}

// responseStatus hands err to the central error handler when nothing has been
// written yet, then reports the status the client actually received. The error
// handler skips committed responses, so the error returned upstream is not
// rendered twice.
func responseStatus(c echo.Context, err error) int {
	if err != nil && !c.Response().Committed {
		c.Error(err)
	}

	return c.Response().Status
}
