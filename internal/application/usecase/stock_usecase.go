package usecase

import (
	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// StockUseCase consultas de solo lectura sobre el stock: listados, alertas de
// stock bajo y resumen por bodega. Nunca escribe; el stock solo lo muta el
// motor de movimientos.
type StockUseCase struct {
	stockRepo  repository.StockRepository
	reportRepo repository.ReportRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stockRepo repository.StockRepository, reportRepo repository.ReportRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, reportRepo: reportRepo}
}

// List lista filas de stock de la empresa, opcionalmente filtradas por bodega.
func (uc *StockUseCase) List(companyID, warehouse string, page dto.PageRequest) ([]dto.StockResponse, error) {
	page.DefaultPage()
	stocks, err := uc.stockRepo.ListByCompany(companyID, warehouse, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, *toStockResponse(s))
	}
	return out, nil
}

// Alerts devuelve las filas con cantidad por debajo del mínimo.
func (uc *StockUseCase) Alerts(companyID string) (*dto.StockAlertsResponse, error) {
	stocks, err := uc.stockRepo.ListLowStock(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, *toStockResponse(s))
	}
	return &dto.StockAlertsResponse{TotalAlerts: len(out), Stocks: out}, nil
}

// WarehouseSummary devuelve productos distintos y unidades totales por bodega.
func (uc *StockUseCase) WarehouseSummary(companyID string) ([]dto.WarehouseSummaryResponse, error) {
	summaries, err := uc.reportRepo.ListWarehouseSummary(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, dto.WarehouseSummaryResponse{
			Warehouse:     s.Warehouse,
			TotalProducts: s.TotalProducts,
			TotalQuantity: s.TotalQuantity,
		})
	}
	return out, nil
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	return &dto.StockResponse{
		ProductID:       s.ProductID,
		Warehouse:       s.Warehouse,
		Quantity:        s.Quantity,
		MinimumQuantity: s.MinimumQuantity,
		MaximumQuantity: s.MaximumQuantity,
		IsLowStock:      s.IsLowStock(),
		IsOverstock:     s.IsOverstock(),
		LastUpdated:     s.LastUpdated,
	}
}
