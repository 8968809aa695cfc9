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

// MovementUseCase implementa el motor de movimientos de inventario: creación en
// estado pending, completado transaccional con bloqueo de fila (SELECT FOR UPDATE),
// cancelación, edición (revertir+aplicar atómico) y reversión aditiva.
type MovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:     txRunner,
		movementRepo: movementRepo,
		productRepo:  productRepo,
	}
}

// validateMovementShape valida tipo y cantidad. La cantidad debe ser positiva;
// solo los ajustes admiten cero (fijan la cantidad de forma absoluta).
func validateMovementShape(movementType string, quantity int64) error {
	if !entity.ValidType(movementType) {
		return domain.ErrInvalidInput
	}
	if quantity < 0 {
		return domain.ErrInvalidInput
	}
	if quantity == 0 && movementType != entity.MovementTypeAdjustment {
		return domain.ErrInvalidInput
	}
	return nil
}

// CreateMovement registra un movimiento en estado pending. No toma bloqueos ni
// toca el stock: el efecto se aplica recién en CompleteMovement. Valida antes de
// cualquier transacción que el producto exista y pertenezca a la empresa.
func (uc *MovementUseCase) CreateMovement(ctx context.Context, companyID, userID string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validateMovementShape(in.Type, in.Quantity); err != nil {
		return nil, err
	}
	warehouse := in.Warehouse
	if warehouse == "" {
		warehouse = entity.DefaultWarehouse
	}
	if in.Type == entity.MovementTypeTransfer {
		if in.ToWarehouse == "" || in.ToWarehouse == warehouse {
			return nil, domain.ErrInvalidInput
		}
	} else if in.ToWarehouse != "" {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrTenantMismatch
	}

	m := &entity.Movement{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ProductID:   in.ProductID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Warehouse:   warehouse,
		ToWarehouse: in.ToWarehouse,
		Reference:   in.Reference,
		Notes:       in.Notes,
		Status:      entity.MovementStatusPending,
		CreatedBy:   userID,
		CreatedAt:   time.Now(),
	}
	if err := uc.movementRepo.Create(m); err != nil {
		return nil, err
	}
	return toMovementResponse(m), nil
}

// CompleteMovement aplica el efecto de un movimiento pending sobre el stock, en una
// sola transacción: bloquea la fila del movimiento (serializa completar/cancelar
// concurrentes), bloquea la(s) fila(s) de stock, valida no-negatividad y persiste
// movimiento y stock juntos. Un movimiento no-pending se rechaza sin efecto.
func (uc *MovementUseCase) CompleteMovement(ctx context.Context, companyID, movementID string) (*dto.MovementResult, error) {
	var result *dto.MovementResult
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
		if !m.IsPending() {
			return domain.ErrInvalidTransition
		}
		now := time.Now()
		newQty, before, err := applyEffect(stockRepo, m, now)
		if err != nil {
			return err
		}
		m.QuantityBefore = &before
		m.Status = entity.MovementStatusCompleted
		m.CompletedAt = &now
		if err := movRepo.Update(m); err != nil {
			return err
		}
		result = &dto.MovementResult{Movement: *toMovementResponse(m), NewQuantity: newQty}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CancelMovement transiciona pending → cancelled. Nunca toca el stock: un
// movimiento cancelado jamás aplicó ni aplicará efecto alguno.
func (uc *MovementUseCase) CancelMovement(ctx context.Context, companyID, movementID string) (*dto.MovementResponse, error) {
	var resp *dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		_ repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		m, err := movRepo.GetForUpdate(movementID)
		if err != nil {
			return err
		}
		if m == nil || m.CompanyID != companyID {
			return domain.ErrNotFound
		}
		if !m.IsPending() {
			return domain.ErrInvalidTransition
		}
		m.Status = entity.MovementStatusCancelled
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

// applyEffect bloquea la(s) fila(s) de stock afectadas y aplica el efecto del
// movimiento. Devuelve la cantidad resultante y la pre-imagen de la bodega
// afectada (la de origen en traslados). Cualquier resultado negativo aborta
// con InsufficientStockError sin modificar nada.
func applyEffect(stockRepo repository.StockRepository, m *entity.Movement, now time.Time) (newQty, before int64, err error) {
	if m.Type == entity.MovementTypeTransfer {
		return applyTransfer(stockRepo, m, now)
	}
	stock, err := stockRepo.GetForUpdate(m.CompanyID, m.ProductID, m.Warehouse)
	if err != nil {
		return 0, 0, err
	}
	before = stock.Quantity
	newQty = domaininv.Apply(before, m.Type, m.Quantity)
	if newQty < 0 {
		return 0, 0, &domain.InsufficientStockError{
			ProductID: m.ProductID,
			Warehouse: m.Warehouse,
			Available: before,
			Requested: m.Quantity,
		}
	}
	stock.Quantity = newQty
	stock.LastUpdated = now
	if err := stockRepo.Upsert(stock); err != nil {
		return 0, 0, err
	}
	return newQty, before, nil
}

// applyTransfer resta en la bodega origen y suma en la destino dentro de la misma
// transacción. Las filas se bloquean en orden determinista por nombre de bodega
// para evitar deadlocks entre traslados cruzados.
func applyTransfer(stockRepo repository.StockRepository, m *entity.Movement, now time.Time) (newQty, before int64, err error) {
	locked := make(map[string]*entity.Stock, 2)
	first, second := m.Warehouse, m.ToWarehouse
	if second < first {
		first, second = second, first
	}
	for _, wh := range []string{first, second} {
		s, err := stockRepo.GetForUpdate(m.CompanyID, m.ProductID, wh)
		if err != nil {
			return 0, 0, err
		}
		locked[wh] = s
	}
	origin, dest := locked[m.Warehouse], locked[m.ToWarehouse]
	before = origin.Quantity
	if origin.Quantity < m.Quantity {
		return 0, 0, &domain.InsufficientStockError{
			ProductID: m.ProductID,
			Warehouse: m.Warehouse,
			Available: origin.Quantity,
			Requested: m.Quantity,
		}
	}
	origin.Quantity -= m.Quantity
	dest.Quantity += m.Quantity
	origin.LastUpdated = now
	dest.LastUpdated = now
	if err := stockRepo.Upsert(origin); err != nil {
		return 0, 0, err
	}
	if err := stockRepo.Upsert(dest); err != nil {
		return 0, 0, err
	}
	return origin.Quantity, before, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:             m.ID,
		CompanyID:      m.CompanyID,
		ProductID:      m.ProductID,
		Type:           m.Type,
		Quantity:       m.Quantity,
		Warehouse:      m.Warehouse,
		ToWarehouse:    m.ToWarehouse,
		Reference:      m.Reference,
		Notes:          m.Notes,
		Status:         m.Status,
		QuantityBefore: m.QuantityBefore,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
		CompletedAt:    m.CompletedAt,
	}
}
