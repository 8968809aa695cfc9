package inventory

import (
	"context"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// GetMovement devuelve un movimiento de la empresa. Cross-tenant responde
// not found, igual que un ID inexistente.
func (uc *MovementUseCase) GetMovement(ctx context.Context, companyID, movementID string) (*dto.MovementResponse, error) {
	m, err := uc.movementRepo.GetByID(movementID)
	if err != nil {
		return nil, err
	}
	if m == nil || m.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return toMovementResponse(m), nil
}

// ListMovements lista movimientos de la empresa con filtros opcionales
// (producto, tipo, rango de fechas). Es el historial de auditoría.
func (uc *MovementUseCase) ListMovements(ctx context.Context, companyID string, filter repository.MovementFilter, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	movements, err := uc.movementRepo.ListByCompany(companyID, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Summary devuelve el conteo de movimientos por tipo para la empresa.
func (uc *MovementUseCase) Summary(ctx context.Context, companyID string) (*dto.MovementSummaryResponse, error) {
	counts, err := uc.movementRepo.CountByType(companyID)
	if err != nil {
		return nil, err
	}
	resp := &dto.MovementSummaryResponse{
		In:         counts[entity.MovementTypeIn],
		Out:        counts[entity.MovementTypeOut],
		Adjustment: counts[entity.MovementTypeAdjustment],
		Transfer:   counts[entity.MovementTypeTransfer],
	}
	resp.Total = resp.In + resp.Out + resp.Adjustment + resp.Transfer
	return resp, nil
}
