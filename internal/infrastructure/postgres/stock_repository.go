package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = "id, company_id, product_id, warehouse, quantity, minimum_quantity, maximum_quantity, last_updated"

// defaultStock fila virtual para pares (producto, bodega) sin fila real todavía:
// cantidad cero y umbrales por defecto. La fila se materializa al primer Upsert.
func defaultStock(companyID, productID, warehouse string) *entity.Stock {
	return &entity.Stock{
		CompanyID:       companyID,
		ProductID:       productID,
		Warehouse:       warehouse,
		Quantity:        0,
		MinimumQuantity: entity.DefaultMinimumQuantity,
		MaximumQuantity: entity.DefaultMaximumQuantity,
	}
}

// Get obtiene el stock actual de un producto en una bodega.
func (r *StockRepo) Get(companyID, productID, warehouse string) (*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock WHERE company_id = $1 AND product_id = $2 AND warehouse = $3`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, companyID, productID, warehouse).Scan(
		&s.ID, &s.CompanyID, &s.ProductID, &s.Warehouse,
		&s.Quantity, &s.MinimumQuantity, &s.MaximumQuantity, &s.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return defaultStock(companyID, productID, warehouse), nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE) hasta el
// fin de la transacción en curso. FOR UPDATE no bloquea filas inexistentes, así
// que primero materializa la fila en cero (ON CONFLICT DO NOTHING): dos primeras
// completaciones concurrentes sobre el mismo par producto-bodega serializan
// sobre un bloqueo real en vez de pisarse la actualización.
func (r *StockRepo) GetForUpdate(companyID, productID, warehouse string) (*entity.Stock, error) {
	ensure := `
		INSERT INTO stock (id, company_id, product_id, warehouse, quantity, minimum_quantity, maximum_quantity, last_updated)
		VALUES ($1, $2, $3, $4, 0, $5, $6, now())
		ON CONFLICT (company_id, product_id, warehouse) DO NOTHING`
	_, err := r.q.Exec(context.Background(), ensure,
		uuid.New().String(), companyID, productID, warehouse,
		int64(entity.DefaultMinimumQuantity), int64(entity.DefaultMaximumQuantity),
	)
	if err != nil {
		return nil, fmt.Errorf("ensure stock row: %w", err)
	}

	query := `
		SELECT ` + stockColumns + `
		FROM stock WHERE company_id = $1 AND product_id = $2 AND warehouse = $3
		FOR UPDATE`
	var s entity.Stock
	err = r.q.QueryRow(context.Background(), query, companyID, productID, warehouse).Scan(
		&s.ID, &s.CompanyID, &s.ProductID, &s.Warehouse,
		&s.Quantity, &s.MinimumQuantity, &s.MaximumQuantity, &s.LastUpdated,
	)
	if err != nil {
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la fila de stock (por empresa, producto y bodega).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	if stock.ID == "" {
		stock.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock (id, company_id, product_id, warehouse, quantity, minimum_quantity, maximum_quantity, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (company_id, product_id, warehouse)
		DO UPDATE SET quantity = EXCLUDED.quantity,
			minimum_quantity = EXCLUDED.minimum_quantity,
			maximum_quantity = EXCLUDED.maximum_quantity,
			last_updated = now()`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.CompanyID, stock.ProductID, stock.Warehouse,
		stock.Quantity, stock.MinimumQuantity, stock.MaximumQuantity,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByCompany lista filas de stock de la empresa, opcionalmente por bodega.
func (r *StockRepo) ListByCompany(companyID, warehouse string, limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock WHERE company_id = $1`
	args := []any{companyID}
	pos := 2
	if warehouse != "" {
		query += fmt.Sprintf(" AND warehouse = $%d", pos)
		args = append(args, warehouse)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY warehouse, product_id LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	return scanStocks(rows)
}

// ListLowStock devuelve las filas con cantidad por debajo del mínimo.
func (r *StockRepo) ListLowStock(companyID string) ([]*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock WHERE company_id = $1 AND quantity < minimum_quantity
		ORDER BY warehouse, product_id`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return scanStocks(rows)
}

func scanStocks(rows pgx.Rows) ([]*entity.Stock, error) {
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.ProductID, &s.Warehouse,
			&s.Quantity, &s.MinimumQuantity, &s.MaximumQuantity, &s.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
