package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	CategoryID  string          `json:"category_id" validate:"required"`
	Name        string          `json:"name" validate:"required,min=1,max=255"`
	UnitMeasure string          `json:"unit_measure"`
	MinStock    int64           `json:"min_stock" validate:"omitempty,min=0"`
	Cost        decimal.Decimal `json:"cost"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Discount    decimal.Decimal `json:"discount"`
	Supplier    string          `json:"supplier"`
	Batch       string          `json:"batch"`
	ExpiresAt   *time.Time      `json:"expires_at"`
	ExtraFields json.RawMessage `json:"extra_fields"`
}

// UpdateProductRequest entrada para actualizar un producto (la cantidad nunca
// se edita por aquí: solo la mueve el motor de movimientos).
type UpdateProductRequest struct {
	CategoryID  *string          `json:"category_id"`
	Name        *string          `json:"name" validate:"omitempty,min=1,max=255"`
	UnitMeasure *string          `json:"unit_measure"`
	MinStock    *int64           `json:"min_stock" validate:"omitempty,min=0"`
	Cost        *decimal.Decimal `json:"cost"`
	SalePrice   *decimal.Decimal `json:"sale_price"`
	Discount    *decimal.Decimal `json:"discount"`
	Supplier    *string          `json:"supplier"`
	Batch       *string          `json:"batch"`
	ExpiresAt   *time.Time       `json:"expires_at"`
	ExtraFields json.RawMessage  `json:"extra_fields"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	CategoryID  string          `json:"category_id"`
	Name        string          `json:"name"`
	UnitMeasure string          `json:"unit_measure"`
	MinStock    int64           `json:"min_stock"`
	Cost        decimal.Decimal `json:"cost"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Discount    decimal.Decimal `json:"discount"`
	Supplier    string          `json:"supplier"`
	Batch       string          `json:"batch"`
	ExpiresAt   *time.Time      `json:"expires_at,omitempty"`
	ExtraFields json.RawMessage `json:"extra_fields,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
