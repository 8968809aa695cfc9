package dto

import "time"

// StockResponse salida de una fila de stock.
type StockResponse struct {
	ProductID       string    `json:"product_id"`
	Warehouse       string    `json:"warehouse"`
	Quantity        int64     `json:"quantity"`
	MinimumQuantity int64     `json:"minimum_quantity"`
	MaximumQuantity int64     `json:"maximum_quantity"`
	IsLowStock      bool      `json:"is_low_stock"`
	IsOverstock     bool      `json:"is_overstock"`
	LastUpdated     time.Time `json:"last_updated"`
}

// StockAlertsResponse filas por debajo del mínimo.
type StockAlertsResponse struct {
	TotalAlerts int             `json:"total_alerts"`
	Stocks      []StockResponse `json:"stocks"`
}

// WarehouseSummaryResponse agregado de stock por bodega.
type WarehouseSummaryResponse struct {
	Warehouse     string `json:"warehouse"`
	TotalProducts int64  `json:"total_products"`
	TotalQuantity int64  `json:"total_quantity"`
}
