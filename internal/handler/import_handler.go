package handler

import (
	"bytes"
	"net/http"

	"github.com/grachmannico95/wallet-import/internal/importer"
	"github.com/grachmannico95/wallet-import/internal/middleware"
	"github.com/grachmannico95/wallet-import/internal/service"
	"github.com/grachmannico95/wallet-import/pkg/logger"
	"github.com/labstack/echo/v4"
)

type ImportHandler struct {
	service service.ImportService
	logger  *logger.Logger
}

func NewImportHandler(service service.ImportService, log *logger.Logger) *ImportHandler {
	return &ImportHandler{
		service: service,
		logger:  log,
	}
}

type mappingRequest struct {
	Field  string `json:"field"`
	Header string `json:"header"`
}

// Create opens an import session from a multipart "file" upload.
func (h *ImportHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	h.logger.Info(ctx, "Handling import upload")

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "file is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "Failed to open file",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to open file",
		})
	}
	defer src.Close()

	view, err := h.service.CreateSession(ctx, middleware.UserID(c), file.Filename, src)
	if err != nil {
		return writeError(c, h.logger, "create import session", err)
	}

	return c.JSON(http.StatusCreated, view)
}

func (h *ImportHandler) Get(c echo.Context) error {
	view, err := h.service.GetSession(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return writeError(c, h.logger, "get import session", err)
	}

	return c.JSON(http.StatusOK, view)
}

func (h *ImportHandler) SetMapping(c echo.Context) error {
	var req mappingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	field, err := importer.ParseField(req.Field)
	if err != nil {
		return writeError(c, h.logger, "set mapping", err)
	}

	view, err := h.service.SetMapping(c.Request().Context(), middleware.UserID(c), c.Param("id"), field, req.Header)
	if err != nil {
		return writeError(c, h.logger, "set mapping", err)
	}

	return c.JSON(http.StatusOK, view)
}

func (h *ImportHandler) ResetMapping(c echo.Context) error {
	view, err := h.service.ResetMapping(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return writeError(c, h.logger, "reset mapping", err)
	}

	return c.JSON(http.StatusOK, view)
}

// StartRun accepts the import; progress is polled through GetRun.
func (h *ImportHandler) StartRun(c echo.Context) error {
	run, err := h.service.StartRun(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return writeError(c, h.logger, "start import", err)
	}

	return c.JSON(http.StatusAccepted, map[string]interface{}{
		"run_id": run.ID,
		"status": run.Status,
		"total":  run.TotalRows,
	})
}

func (h *ImportHandler) GetRun(c echo.Context) error {
	status, err := h.service.GetRunStatus(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return writeError(c, h.logger, "get import run", err)
	}

	return c.JSON(http.StatusOK, status)
}

func (h *ImportHandler) ExportErrors(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.service.ExportOutcomes(c.Request().Context(), middleware.UserID(c), c.Param("id"), &buf); err != nil {
		return writeError(c, h.logger, "export import report", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="import-report.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *ImportHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteSession(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return writeError(c, h.logger, "delete import session", err)
	}

	return c.NoContent(http.StatusNoContent)
}
