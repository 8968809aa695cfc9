package entity

import "time"

// Valores por defecto al crear una fila de stock de forma perezosa
// (primer movimiento completado sobre un par producto-bodega).
const (
	DefaultWarehouse       = "Principal"
	DefaultMinimumQuantity = 10
	DefaultMaximumQuantity = 1000
)

// Stock representa la cantidad actual de un producto en una bodega.
// Única por (empresa, producto, bodega); Quantity nunca es negativa y solo
// la muta el motor de movimientos dentro de una transacción.
type Stock struct {
	ID              string
	CompanyID       string
	ProductID       string
	Warehouse       string
	Quantity        int64
	MinimumQuantity int64 // umbral de alerta de stock bajo
	MaximumQuantity int64 // capacidad de la bodega
	LastUpdated     time.Time
}

// IsLowStock indica si la cantidad está por debajo del mínimo.
func (s *Stock) IsLowStock() bool {
	return s.Quantity < s.MinimumQuantity
}

// IsOverstock indica si la cantidad supera el máximo.
func (s *Stock) IsOverstock() bool {
	return s.Quantity > s.MaximumQuantity
}
