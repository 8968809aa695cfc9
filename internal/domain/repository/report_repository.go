package repository

// WarehouseSummary agregado de stock por bodega (solo lectura).
type WarehouseSummary struct {
	Warehouse     string
	TotalProducts int64
	TotalQuantity int64
}

// ReportRepository define consultas de solo lectura sobre el libro de stock.
// No expone escrituras: los reportes leen datos ya consistentes.
type ReportRepository interface {
	ListWarehouseSummary(companyID string) ([]*WarehouseSummary, error)
}
