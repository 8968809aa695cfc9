package repository

import (
	"time"

	"github.com/tu-usuario/inventario-api/internal/domain/entity"
)

// MovementFilter filtros opcionales para listados de movimientos.
type MovementFilter struct {
	ProductID string
	Type      string
	From      *time.Time
	To        *time.Time
}

// MovementRepository define el puerto de persistencia para Movement.
// Los movimientos completados son inmutables salvo por el flujo de edición
// del motor (revertir+aplicar en una sola transacción).
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// GetForUpdate bloquea la fila del movimiento para serializar transiciones
	// de estado concurrentes (completar/cancelar/editar el mismo movimiento).
	GetForUpdate(id string) (*entity.Movement, error)
	Update(movement *entity.Movement) error
	ListByCompany(companyID string, filter MovementFilter, limit, offset int) ([]*entity.Movement, error)
	// CountByType devuelve el número de movimientos por tipo para la empresa.
	CountByType(companyID string) (map[string]int64, error)
}
