package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	database Pinger
	started  time.Time
}

// NewHealthHandler builds the health check; database may be nil when the
// in-memory backend is used.
func NewHealthHandler(database Pinger) *HealthHandler {
	return &HealthHandler{
		database: database,
		started:  time.Now(),
	}
}

func (h *HealthHandler) Check(c echo.Context) error {
	status := http.StatusOK
	body := map[string]interface{}{
		"status":         "ok",
		"timestamp":      time.Now().Format(time.RFC3339),
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	}

	if h.database != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := h.database.Ping(ctx); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
			body["database"] = "unreachable"
		} else {
			body["database"] = "ok"
		}
	}

	return c.JSON(status, body)
}
