package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura sobre el stock.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// ListWarehouseSummary agrega productos y cantidades por bodega para la empresa.
func (r *ReportRepo) ListWarehouseSummary(companyID string) ([]*repository.WarehouseSummary, error) {
	query := `
		SELECT warehouse, COUNT(DISTINCT product_id), COALESCE(SUM(quantity), 0)
		FROM stock WHERE company_id = $1
		GROUP BY warehouse
		ORDER BY warehouse`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("warehouse summary: %w", err)
	}
	defer rows.Close()
	var list []*repository.WarehouseSummary
	for rows.Next() {
		var s repository.WarehouseSummary
		if err := rows.Scan(&s.Warehouse, &s.TotalProducts, &s.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
