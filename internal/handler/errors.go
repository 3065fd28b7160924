package handler

import (
	"errors"
	"net/http"

	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/grachmannico95/wallet-import/pkg/logger"
	"github.com/labstack/echo/v4"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrRunNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrParse),
		errors.Is(err, domain.ErrUnknownField),
		errors.Is(err, domain.ErrUnknownHeader):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrImportInProgress):
		return http.StatusConflict
	case errors.Is(err, domain.ErrRequiredFieldsUnmapped),
		errors.Is(err, domain.ErrReferencesNotLoaded),
		errors.Is(err, domain.ErrNoFile):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrReferenceLoad):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, log *logger.Logger, action string, err error) error {
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		log.Error(c.Request().Context(), "Failed to "+action,
			"error", err,
		)
		return c.JSON(status, map[string]string{
			"error": "failed to " + action,
		})
	}

	return c.JSON(status, map[string]string{
		"error": err.Error(),
	})
}
