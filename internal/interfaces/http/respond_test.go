package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/domain"
)

// respondWith monta una app mínima cuyo handler responde el error dado.
func respondWith(t *testing.T, err error) (*http.Response, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, reqErr)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	return resp, body
}

func TestRespondError_Mapeos(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"lock timeout es 503 reintentable", domain.ErrLockTimeout, http.StatusServiceUnavailable, "LOCK_TIMEOUT"},
		{"transición inválida es 409", domain.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION"},
		{"not found es 404", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"tenant mismatch es 403", domain.ErrTenantMismatch, http.StatusForbidden, "TENANT_MISMATCH"},
		{"stock insuficiente (sentinela) es 409", domain.ErrInsufficientStock, http.StatusConflict, "INSUFFICIENT_STOCK"},
		{"entrada inválida es 400", domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := respondWith(t, tc.err)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

// El error tipado de stock insuficiente debe llegar con la cantidad disponible,
// incluso envuelto por capas intermedias.
func TestRespondError_StockInsuficienteIncluyeDisponible(t *testing.T) {
	err := fmt.Errorf("completar movimiento: %w", &domain.InsufficientStockError{
		ProductID: "p1", Warehouse: "Principal", Available: 7, Requested: 9,
	})
	resp, body := respondWith(t, err)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	require.NotNil(t, body.Available)
	assert.Equal(t, int64(7), *body.Available)
}

// Un lock timeout envuelto por el runner también debe mapear a 503.
func TestRespondError_LockTimeoutEnvuelto(t *testing.T) {
	resp, body := respondWith(t, fmt.Errorf("completar movimiento: %w", domain.ErrLockTimeout))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "LOCK_TIMEOUT", body.Code)
}
