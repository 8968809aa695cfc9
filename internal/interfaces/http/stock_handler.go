package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/application/usecase"
)

// StockHandler maneja las consultas de stock (protegido, solo lectura).
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar stock por producto y bodega
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        warehouse  query  string  false  "Filtrar por bodega"
// @Success      200  {array}   dto.StockResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválido"})
	}
	out, err := h.uc.List(GetCompanyID(c), c.Query("warehouse"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Alerts devuelve las filas de stock por debajo del mínimo.
func (h *StockHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.uc.Alerts(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// WarehouseSummary devuelve el agregado de productos y cantidades por bodega.
func (h *StockHandler) WarehouseSummary(c *fiber.Ctx) error {
	out, err := h.uc.WarehouseSummary(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
