package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-api/internal/domain/entity"
)

// scriptedQuerier registra el SQL emitido y responde QueryRow con una fila fija.
type scriptedQuerier struct {
	execSQL  []string
	querySQL []string
	row      scriptedRow
}

func (q *scriptedQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.execSQL = append(q.execSQL, sql)
	return pgconn.CommandTag{}, nil
}

func (q *scriptedQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.querySQL = append(q.querySQL, sql)
	return nil, nil
}

func (q *scriptedQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.querySQL = append(q.querySQL, sql)
	return &q.row
}

type scriptedRow struct {
	stock entity.Stock
	err   error
}

func (r *scriptedRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.stock.ID
	*dest[1].(*string) = r.stock.CompanyID
	*dest[2].(*string) = r.stock.ProductID
	*dest[3].(*string) = r.stock.Warehouse
	*dest[4].(*int64) = r.stock.Quantity
	*dest[5].(*int64) = r.stock.MinimumQuantity
	*dest[6].(*int64) = r.stock.MaximumQuantity
	*dest[7].(*time.Time) = r.stock.LastUpdated
	return nil
}

// FOR UPDATE no bloquea filas inexistentes: la primera completación concurrente
// sobre un par (producto, bodega) sin fila debe serializar sobre una fila real.
// GetForUpdate tiene que materializarla (INSERT ... ON CONFLICT DO NOTHING)
// antes del SELECT ... FOR UPDATE.
func TestGetForUpdate_MaterializaLaFilaAntesDeBloquear(t *testing.T) {
	q := &scriptedQuerier{row: scriptedRow{stock: entity.Stock{
		ID: "stock-1", CompanyID: "c1", ProductID: "p1", Warehouse: "Principal",
		Quantity: 0, MinimumQuantity: 10, MaximumQuantity: 1000,
	}}}
	repo := NewStockRepository(q)

	s, err := repo.GetForUpdate("c1", "p1", "Principal")
	require.NoError(t, err)

	require.Len(t, q.execSQL, 1, "debe emitir exactamente un INSERT de materialización")
	assert.Contains(t, q.execSQL[0], "INSERT INTO stock")
	assert.Contains(t, q.execSQL[0], "ON CONFLICT (company_id, product_id, warehouse) DO NOTHING")

	require.Len(t, q.querySQL, 1)
	assert.True(t, strings.Contains(q.querySQL[0], "FOR UPDATE"),
		"la lectura posterior debe bloquear la fila")

	assert.Equal(t, "stock-1", s.ID)
	assert.Equal(t, int64(0), s.Quantity)
}

// Tras materializar, una fila ausente ya no es un caso normal: se propaga el
// error en vez de devolver una fila virtual sin bloqueo.
func TestGetForUpdate_SinFila_PropagaElError(t *testing.T) {
	q := &scriptedQuerier{row: scriptedRow{err: pgx.ErrNoRows}}
	repo := NewStockRepository(q)

	_, err := repo.GetForUpdate("c1", "p1", "Principal")
	assert.Error(t, err)
}

// Get (sin bloqueo) conserva la fila virtual en cero para pares sin movimientos.
func TestGet_SinFila_DevuelveFilaVirtual(t *testing.T) {
	q := &scriptedQuerier{row: scriptedRow{err: pgx.ErrNoRows}}
	repo := NewStockRepository(q)

	s, err := repo.Get("c1", "p1", "Principal")
	require.NoError(t, err)
	assert.Empty(t, q.execSQL, "una lectura simple no debe escribir nada")
	assert.Equal(t, int64(0), s.Quantity)
	assert.Equal(t, int64(entity.DefaultMinimumQuantity), s.MinimumQuantity)
	assert.Equal(t, int64(entity.DefaultMaximumQuantity), s.MaximumQuantity)
}
