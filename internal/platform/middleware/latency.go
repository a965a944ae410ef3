package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// Latency delays every request by a fixed duration before the handler runs,
// reproducing the demo's simulated network lag. A zero duration is a no-op.
// The delay respects request cancellation, the handler itself is never
// interrupted once started.
func Latency(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if d <= 0 {
				return next(c)
			}
			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-c.Request().Context().Done():
				return c.Request().Context().Err()
			}
			return next(c)
		}
	}
}
