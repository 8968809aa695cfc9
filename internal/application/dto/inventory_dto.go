package dto

import "time"

// CreateMovementRequest body para POST /api/movements. El movimiento nace en
// estado pending y no afecta el stock hasta completarse.
type CreateMovementRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=in out adjustment transfer"`
	Quantity    int64  `json:"quantity" validate:"min=0"`
	Warehouse   string `json:"warehouse"`
	ToWarehouse string `json:"to_warehouse,omitempty"` // solo transfer
	Reference   string `json:"reference"`
	Notes       string `json:"notes"`
}

// UpdateMovementRequest body para PUT /api/movements/:id. Sobre un movimiento
// completado la edición revierte el efecto anterior y aplica el nuevo en una
// sola transacción. ToWarehouse solo aplica a traslados pendientes.
type UpdateMovementRequest struct {
	Type        *string `json:"type" validate:"omitempty,oneof=in out adjustment"`
	Quantity    *int64  `json:"quantity" validate:"omitempty,min=0"`
	Warehouse   *string `json:"warehouse"`
	ToWarehouse *string `json:"to_warehouse"`
	Reference   *string `json:"reference"`
	Notes       *string `json:"notes"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID             string     `json:"id"`
	CompanyID      string     `json:"company_id"`
	ProductID      string     `json:"product_id"`
	Type           string     `json:"type"`
	Quantity       int64      `json:"quantity"`
	Warehouse      string     `json:"warehouse"`
	ToWarehouse    string     `json:"to_warehouse,omitempty"`
	Reference      string     `json:"reference"`
	Notes          string     `json:"notes"`
	Status         string     `json:"status"`
	QuantityBefore *int64     `json:"quantity_before,omitempty"`
	CreatedBy      string     `json:"created_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// MovementResult movimiento más la cantidad resultante en la bodega afectada
// (la de origen en traslados).
type MovementResult struct {
	Movement    MovementResponse `json:"movement"`
	NewQuantity int64            `json:"new_quantity"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// MovementSummaryResponse conteo de movimientos por tipo.
type MovementSummaryResponse struct {
	In         int64 `json:"in"`
	Out        int64 `json:"out"`
	Adjustment int64 `json:"adjustment"`
	Transfer   int64 `json:"transfer"`
	Total      int64 `json:"total"`
}
