package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/grachmannico95/wallet-import/internal/middleware"
	"github.com/grachmannico95/wallet-import/internal/service"
	"github.com/grachmannico95/wallet-import/internal/storage"
	"github.com/grachmannico95/wallet-import/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerCSV = "Fecha,Descripción,Monto,Categoría,Billetera\n" +
	"2024-07-01,Almuerzo,-12.50,Comida,Efectivo\n" +
	"2024-07-02,Sueldo,1500,Salario,Efectivo\n"

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	log := logger.NewNop()
	backend := storage.NewMemoryBackend()
	backend.AddCategory("local", "Comida", domain.KindExpense)
	backend.AddCategory("local", "Salario", domain.KindIncome)
	backend.AddWallet("local", "Efectivo")
	svc := service.NewImportService(storage.NewMemoryStore(), backend, nil, log)

	imports := NewImportHandler(svc, log)
	notifications := NewNotificationHandler(svc, log)

	e := echo.New()
	api := e.Group("", middleware.Auth(middleware.AuthConfig{DefaultUserID: "local"}))
	api.POST("/imports", imports.Create)
	api.GET("/imports/:id", imports.Get)
	api.PUT("/imports/:id/mapping", imports.SetMapping)
	api.POST("/imports/:id/run", imports.StartRun)
	api.GET("/imports/:id/run", imports.GetRun)
	api.GET("/notifications", notifications.List)
	return e
}

func upload(t *testing.T, e *echo.Echo, name, content string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/imports", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestImportHandler_Create(t *testing.T) {
	e := newTestEcho(t)

	rec := upload(t, e, "movimientos.csv", handlerCSV)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "movimientos.csv", body["file_name"])
	assert.Equal(t, true, body["can_import"])
	assert.EqualValues(t, 2, body["total_rows"])
}

func TestImportHandler_Create_MissingFile(t *testing.T) {
	e := newTestEcho(t)
	req := httptest.NewRequest(http.MethodPost, "/imports", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "file is required")
}

func TestImportHandler_Create_ParseError(t *testing.T) {
	e := newTestEcho(t)

	rec := upload(t, e, "movimientos.csv", "Fecha,Monto\n")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no data rows")
}

func TestImportHandler_SetMapping(t *testing.T) {
	e := newTestEcho(t)
	created := upload(t, e, "movimientos.csv", handlerCSV)
	require.Equal(t, http.StatusCreated, created.Code)
	var view struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &view))

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "unmap wallet", body: `{"field":"wallet","header":""}`, wantStatus: http.StatusOK},
		{name: "unknown field", body: `{"field":"currency","header":"Monto"}`, wantStatus: http.StatusBadRequest},
		{name: "unknown header", body: `{"field":"wallet","header":"Cuenta"}`, wantStatus: http.StatusBadRequest},
		{name: "bad json", body: `{`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/imports/%s/mapping", view.SessionID), strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/imports/%s/run", view.SessionID), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestImportHandler_UnknownSession(t *testing.T) {
	e := newTestEcho(t)

	for _, path := range []string{"/imports/missing", "/imports/missing/run"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestNotificationHandler_Empty(t *testing.T) {
	e := newTestEcho(t)
	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"total":0}`, rec.Body.String())
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrSessionNotFound, http.StatusNotFound},
		{domain.ErrRunNotFound, http.StatusNotFound},
		{fmt.Errorf("line 3: %w", domain.ErrParse), http.StatusBadRequest},
		{domain.ErrUnknownField, http.StatusBadRequest},
		{domain.ErrUnknownHeader, http.StatusBadRequest},
		{domain.ErrImportInProgress, http.StatusConflict},
		{domain.ErrRequiredFieldsUnmapped, http.StatusUnprocessableEntity},
		{domain.ErrReferencesNotLoaded, http.StatusUnprocessableEntity},
		{domain.ErrNoFile, http.StatusUnprocessableEntity},
		{fmt.Errorf("fetch: %w", domain.ErrReferenceLoad), http.StatusBadGateway},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}
