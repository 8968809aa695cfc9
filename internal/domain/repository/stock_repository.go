package repository

import "github.com/tu-usuario/inventario-api/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar stock por empresa,
// producto y bodega. Las escrituras ocurren siempre dentro de transacciones.
type StockRepository interface {
	// Get devuelve la fila de stock; si no existe, una fila virtual en cero con
	// los umbrales por defecto (la fila real se crea al primer Upsert).
	Get(companyID, productID, warehouse string) (*entity.Stock, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE) hasta
	// el commit/rollback de la transacción en curso. Si el par no tiene fila
	// todavía, la materializa en cero antes de bloquear: un lock sobre una fila
	// real, nunca sobre una fila virtual.
	GetForUpdate(companyID, productID, warehouse string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	ListByCompany(companyID, warehouse string, limit, offset int) ([]*entity.Stock, error)
	// ListLowStock devuelve las filas con quantity < minimum_quantity.
	ListLowStock(companyID string) ([]*entity.Stock, error)
}
