package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	domaininv "github.com/tu-usuario/inventario-api/internal/domain/inventory"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// UpdateMovement edita un movimiento. Sobre un pending solo cambia campos (sin
// efecto de stock); en un traslado pendiente eso incluye origen y destino. Sobre
// un completed la edición equivale a revertir el efecto anterior y aplicar el
// nuevo contra la misma instantánea bloqueada, en una sola transacción: ningún
// lector concurrente observa el estado a medio aplicar y la no-negatividad se
// valida solo sobre el resultado final de cada bodega. El efecto de un traslado
// completado no se edita; se corrige con ReverseMovement.
func (uc *MovementUseCase) UpdateMovement(ctx context.Context, companyID, movementID string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	var resp *dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		m, err := movRepo.GetForUpdate(movementID)
		if err != nil {
			return err
		}
		if m == nil || m.CompanyID != companyID {
			return domain.ErrNotFound
		}
		if m.Status == entity.MovementStatusCancelled {
			return domain.ErrInvalidTransition
		}

		newType, newQty, newWh, newToWh := m.Type, m.Quantity, m.Warehouse, m.ToWarehouse
		if in.Type != nil {
			newType = *in.Type
		}
		if in.Quantity != nil {
			newQty = *in.Quantity
		}
		if in.Warehouse != nil && *in.Warehouse != "" {
			newWh = *in.Warehouse
		}
		if in.ToWarehouse != nil && *in.ToWarehouse != "" {
			newToWh = *in.ToWarehouse
		}
		// El tipo de un traslado no se cambia. Mientras está pendiente no hay
		// efecto de stock y las bodegas sí son editables; una vez completado,
		// cualquier cambio de efecto pasa por ReverseMovement.
		if m.Type == entity.MovementTypeTransfer {
			if newType != entity.MovementTypeTransfer {
				return domain.ErrInvalidInput
			}
			if m.IsCompleted() && (in.Quantity != nil || in.Warehouse != nil || in.ToWarehouse != nil) {
				return domain.ErrInvalidTransition
			}
			if newToWh == "" || newToWh == newWh {
				return domain.ErrInvalidInput
			}
		} else if newType == entity.MovementTypeTransfer || in.ToWarehouse != nil {
			return domain.ErrInvalidInput
		}
		if err := validateMovementShape(newType, newQty); err != nil {
			return err
		}

		if m.IsCompleted() && (newType != m.Type || newQty != m.Quantity || newWh != m.Warehouse) {
			if err := uc.reapply(stockRepo, m, newType, newQty, newWh); err != nil {
				return err
			}
		}

		m.Type, m.Quantity, m.Warehouse, m.ToWarehouse = newType, newQty, newWh, newToWh
		if in.Reference != nil {
			m.Reference = *in.Reference
		}
		if in.Notes != nil {
			m.Notes = *in.Notes
		}
		if err := movRepo.Update(m); err != nil {
			return err
		}
		resp = toMovementResponse(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// reapply revierte el efecto original de un movimiento completado y aplica el
// nuevo sobre la(s) fila(s) bloqueadas. Un negativo intermedio es admisible
// mientras las bodegas no cambien; lo que se valida es el valor final.
func (uc *MovementUseCase) reapply(stockRepo repository.StockRepository, m *entity.Movement, newType string, newQty int64, newWh string) error {
	now := time.Now()
	var before int64
	if m.QuantityBefore != nil {
		before = *m.QuantityBefore
	}

	if newWh == m.Warehouse {
		stock, err := stockRepo.GetForUpdate(m.CompanyID, m.ProductID, m.Warehouse)
		if err != nil {
			return err
		}
		reverted := domaininv.Revert(stock.Quantity, m.Type, m.Quantity, before)
		final := domaininv.Apply(reverted, newType, newQty)
		if final < 0 {
			return &domain.InsufficientStockError{
				ProductID: m.ProductID,
				Warehouse: m.Warehouse,
				Available: stock.Quantity,
				Requested: newQty,
			}
		}
		stock.Quantity = final
		stock.LastUpdated = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
		m.QuantityBefore = &reverted
		return nil
	}

	// Cambia la bodega: revertir en la original y aplicar en la nueva. Bloqueo en
	// orden determinista por nombre de bodega, igual que en los traslados.
	first, second := m.Warehouse, newWh
	if second < first {
		first, second = second, first
	}
	locked := make(map[string]*entity.Stock, 2)
	for _, wh := range []string{first, second} {
		s, err := stockRepo.GetForUpdate(m.CompanyID, m.ProductID, wh)
		if err != nil {
			return err
		}
		locked[wh] = s
	}
	oldStock, newStock := locked[m.Warehouse], locked[newWh]

	revertedOld := domaininv.Revert(oldStock.Quantity, m.Type, m.Quantity, before)
	if revertedOld < 0 {
		return &domain.InsufficientStockError{
			ProductID: m.ProductID,
			Warehouse: m.Warehouse,
			Available: oldStock.Quantity,
			Requested: m.Quantity,
		}
	}
	newBefore := newStock.Quantity
	finalNew := domaininv.Apply(newBefore, newType, newQty)
	if finalNew < 0 {
		return &domain.InsufficientStockError{
			ProductID: m.ProductID,
			Warehouse: newWh,
			Available: newBefore,
			Requested: newQty,
		}
	}
	oldStock.Quantity = revertedOld
	oldStock.LastUpdated = now
	newStock.Quantity = finalNew
	newStock.LastUpdated = now
	if err := stockRepo.Upsert(oldStock); err != nil {
		return err
	}
	if err := stockRepo.Upsert(newStock); err != nil {
		return err
	}
	m.QuantityBefore = &newBefore
	return nil
}
