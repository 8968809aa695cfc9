package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn         = "in"         // entrada
	MovementTypeOut        = "out"        // salida
	MovementTypeAdjustment = "adjustment" // ajuste absoluto (fija la cantidad)
	MovementTypeTransfer   = "transfer"   // traslado entre bodegas
)

// Estados del ciclo de vida de un movimiento.
const (
	MovementStatusPending   = "pending"
	MovementStatusCompleted = "completed"
	MovementStatusCancelled = "cancelled"
)

// Movement representa un movimiento de inventario. Se crea en estado pending sin
// efecto sobre el stock; al completarse aplica su efecto una única vez. Un movimiento
// completado nunca se elimina: las correcciones se hacen con un movimiento inverso
// que referencia al original en Reference.
type Movement struct {
	ID          string
	CompanyID   string
	ProductID   string // debe pertenecer a la misma empresa
	Type        string
	Quantity    int64  // > 0 (>= 0 solo para ajustes, que fijan la cantidad)
	Warehouse   string // bodega afectada; origen en transfer
	ToWarehouse string // destino, solo transfer
	Reference   string // factura, OC, o ID del movimiento original en reversiones
	Notes       string
	Status      string
	// QuantityBefore guarda la cantidad previa de la bodega afectada al momento de
	// completar. Necesaria para revertir ajustes (el ajuste no es un delta).
	QuantityBefore *int64
	CreatedBy      string // UserID; vacío si el usuario fue eliminado
	CreatedAt      time.Time
	CompletedAt    *time.Time
}

// ValidType indica si t es un tipo de movimiento conocido.
func ValidType(t string) bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeAdjustment, MovementTypeTransfer:
		return true
	}
	return false
}

// IsPending indica si el movimiento aún no aplicó su efecto.
func (m *Movement) IsPending() bool { return m.Status == MovementStatusPending }

// IsCompleted indica si el movimiento ya aplicó su efecto sobre el stock.
func (m *Movement) IsCompleted() bool { return m.Status == MovementStatusCompleted }
