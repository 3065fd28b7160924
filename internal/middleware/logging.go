package middleware

import (
	"time"

	"github.com/grachmannico95/wallet-import/pkg/logger"
	"github.com/labstack/echo/v4"
)

// Logging writes one line per request. Server errors are logged at error
// level, everything else at info.
func Logging(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			fields := []interface{}{
				"method", req.Method,
				"path", req.URL.Path,
				"route", c.Path(),
				"status", c.Response().Status,
				"bytes_out", c.Response().Size,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", req.RemoteAddr,
			}

			if c.Response().Status >= 500 {
				if err != nil {
					fields = append(fields, "error", err)
				}
				log.Error(req.Context(), "HTTP request", fields...)
			} else {
				log.Info(req.Context(), "HTTP request", fields...)
			}

			return nil
		}
	}
}
