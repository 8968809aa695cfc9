package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrTenantMismatch     = errors.New("el recurso pertenece a otra empresa")
	ErrInvalidTransition  = errors.New("transición de estado inválida")
	ErrLockTimeout        = errors.New("no se pudo obtener el bloqueo de la fila, reintente")
)

// InsufficientStockError lleva la cantidad disponible para que la capa HTTP pueda
// mostrarla al usuario. Unwrap permite errors.Is(err, ErrInsufficientStock).
type InsufficientStockError struct {
	ProductID string
	Warehouse string
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente en %s: disponible %d, solicitado %d (producto %s)",
		e.Warehouse, e.Available, e.Requested, e.ProductID)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
