package middleware

import (
	"github.com/google/uuid"
	"github.com/grachmannico95/wallet-import/pkg/logger"
	"github.com/labstack/echo/v4"
)

const (
	TraceIDHeader    = "X-Trace-ID"
	maxTraceIDLength = 128
)

// RequestID carries a trace id through the request. A caller-supplied
// X-Trace-ID (or X-Request-ID) is reused when it looks sane; otherwise a new
// uuid is minted.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = req.Header.Get(echo.HeaderXRequestID)
			}
			if !validTraceID(traceID) {
				traceID = uuid.New().String()
			}

			c.SetRequest(req.WithContext(logger.WithTraceID(req.Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)

			return next(c)
		}
	}
}

// validTraceID accepts printable ASCII up to maxTraceIDLength so ids can be
// logged and echoed back safely.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
