package handler

import (
	"net/http"

	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/grachmannico95/wallet-import/internal/middleware"
	"github.com/grachmannico95/wallet-import/internal/service"
	"github.com/grachmannico95/wallet-import/pkg/logger"
	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	service service.ImportService
	logger  *logger.Logger
}

func NewNotificationHandler(service service.ImportService, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		logger:  log,
	}
}

func (h *NotificationHandler) List(c echo.Context) error {
	items, err := h.service.ListNotifications(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return writeError(c, h.logger, "list notifications", err)
	}
	if items == nil {
		items = []domain.Notification{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": items,
		"total": len(items),
	})
}
