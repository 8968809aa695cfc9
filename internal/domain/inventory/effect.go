package inventory

import "github.com/tu-usuario/inventario-api/internal/domain/entity"

// Cálculo puro del efecto de un movimiento sobre una cantidad (servicio de dominio).
// La validación de no-negatividad queda a cargo del motor, que conoce la fila bloqueada
// y puede reportar la cantidad disponible; aquí solo se hace aritmética.

// Apply devuelve la cantidad resultante de aplicar el movimiento sobre current.
// Entradas suman, salidas restan y los ajustes fijan la cantidad de forma absoluta.
// Para transfer se aplica por bodega: Apply con out en origen y con in en destino.
func Apply(current int64, movementType string, quantity int64) int64 {
	switch movementType {
	case entity.MovementTypeIn:
		return current + quantity
	case entity.MovementTypeOut:
		return current - quantity
	case entity.MovementTypeAdjustment:
		return quantity
	}
	return current
}

// Revert deshace el efecto de un movimiento ya aplicado. Para ajustes necesita la
// pre-imagen (quantityBefore) capturada al completar, porque un ajuste no es un delta.
func Revert(current int64, movementType string, quantity, quantityBefore int64) int64 {
	switch movementType {
	case entity.MovementTypeIn:
		return current - quantity
	case entity.MovementTypeOut:
		return current + quantity
	case entity.MovementTypeAdjustment:
		return quantityBefore
	}
	return current
}

// ReverseType devuelve el tipo del movimiento inverso: in↔out. Los ajustes se
// revierten con otro ajuste (a la pre-imagen) y los traslados con otro traslado
// (bodegas intercambiadas).
func ReverseType(movementType string) string {
	switch movementType {
	case entity.MovementTypeIn:
		return entity.MovementTypeOut
	case entity.MovementTypeOut:
		return entity.MovementTypeIn
	}
	return movementType
}
