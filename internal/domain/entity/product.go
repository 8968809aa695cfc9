package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario, único por nombre dentro de la empresa.
// No lleva cantidad: el stock se mantiene por bodega en Stock y solo lo muta el motor
// de movimientos. La categoría debe pertenecer a la misma empresa.
type Product struct {
	ID          string
	CompanyID   string
	CategoryID  string
	Name        string
	UnitMeasure string // ej: ml, unidades, caja
	MinStock    int64  // umbral informativo a nivel de producto
	Cost        decimal.Decimal
	SalePrice   decimal.Decimal
	Discount    decimal.Decimal // porcentaje (10.00 = 10%)
	Supplier    string
	Batch       string
	ExpiresAt   *time.Time
	ExtraFields json.RawMessage
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
