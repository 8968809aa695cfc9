package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	domaininv "github.com/tu-usuario/inventario-api/internal/domain/inventory"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// ReverseMovement crea y completa un movimiento inverso a uno completado, en una
// sola transacción: entrada↔salida con la misma cantidad, ajuste de vuelta a la
// pre-imagen guardada, traslado con bodegas intercambiadas. El movimiento original
// no se modifica nunca; la reversión lo referencia por ID en Reference (el libro
// de movimientos solo crece).
func (uc *MovementUseCase) ReverseMovement(ctx context.Context, companyID, userID, movementID string) (*dto.MovementResult, error) {
	var result *dto.MovementResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		// Bloquea el original para que una edición concurrente no cambie el
		// efecto que estamos revirtiendo.
		orig, err := movRepo.GetForUpdate(movementID)
		if err != nil {
			return err
		}
		if orig == nil || orig.CompanyID != companyID {
			return domain.ErrNotFound
		}
		if !orig.IsCompleted() {
			return domain.ErrInvalidTransition
		}

		now := time.Now()
		rev := &entity.Movement{
			ID:        uuid.New().String(),
			CompanyID: orig.CompanyID,
			ProductID: orig.ProductID,
			Type:      domaininv.ReverseType(orig.Type),
			Quantity:  orig.Quantity,
			Warehouse: orig.Warehouse,
			Reference: orig.ID,
			Notes:     "reversión del movimiento " + orig.ID,
			Status:    entity.MovementStatusPending,
			CreatedBy: userID,
			CreatedAt: now,
		}
		switch orig.Type {
		case entity.MovementTypeAdjustment:
			// Otro ajuste que fija la cantidad en la pre-imagen guardada al completar.
			if orig.QuantityBefore == nil {
				return domain.ErrConflict
			}
			rev.Quantity = *orig.QuantityBefore
		case entity.MovementTypeTransfer:
			rev.Warehouse = orig.ToWarehouse
			rev.ToWarehouse = orig.Warehouse
		}

		newQty, before, err := applyEffect(stockRepo, rev, now)
		if err != nil {
			return err
		}
		rev.QuantityBefore = &before
		rev.Status = entity.MovementStatusCompleted
		rev.CompletedAt = &now
		if err := movRepo.Create(rev); err != nil {
			return err
		}
		result = &dto.MovementResult{Movement: *toMovementResponse(rev), NewQuantity: newQty}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
