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

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = "id, company_id, product_id, type, quantity, warehouse, to_warehouse, reference, notes, status, quantity_before, created_by, created_at, completed_at"

// Create persiste un movimiento.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	createdBy := (*string)(nil)
	if movement.CreatedBy != "" {
		createdBy = &movement.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.CompanyID, movement.ProductID, movement.Type,
		movement.Quantity, movement.Warehouse, movement.ToWarehouse,
		movement.Reference, movement.Notes, movement.Status,
		movement.QuantityBefore, createdBy, movement.CreatedAt, movement.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	return r.getOne(query, id)
}

// GetForUpdate obtiene un movimiento bloqueando su fila (SELECT FOR UPDATE):
// serializa completar/cancelar/editar concurrentes sobre el mismo movimiento.
func (r *MovementRepo) GetForUpdate(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

func (r *MovementRepo) getOne(query, id string) (*entity.Movement, error) {
	var m entity.Movement
	var createdBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.CompanyID, &m.ProductID, &m.Type, &m.Quantity,
		&m.Warehouse, &m.ToWarehouse, &m.Reference, &m.Notes, &m.Status,
		&m.QuantityBefore, &createdBy, &m.CreatedAt, &m.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	if createdBy != nil {
		m.CreatedBy = *createdBy
	}
	return &m, nil
}

// Update persiste los campos mutables de un movimiento.
func (r *MovementRepo) Update(movement *entity.Movement) error {
	query := `
		UPDATE movements
		SET type = $2, quantity = $3, warehouse = $4, to_warehouse = $5,
			reference = $6, notes = $7, status = $8, quantity_before = $9, completed_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Type, movement.Quantity, movement.Warehouse,
		movement.ToWarehouse, movement.Reference, movement.Notes, movement.Status,
		movement.QuantityBefore, movement.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	return nil
}

// ListByCompany lista movimientos de la empresa con filtros opcionales,
// del más reciente al más antiguo.
func (r *MovementRepo) ListByCompany(companyID string, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE company_id = $1`
	args := []any{companyID}
	pos := 2
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var createdBy *string
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.ProductID, &m.Type, &m.Quantity,
			&m.Warehouse, &m.ToWarehouse, &m.Reference, &m.Notes, &m.Status,
			&m.QuantityBefore, &createdBy, &m.CreatedAt, &m.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByType cuenta movimientos por tipo para la empresa.
func (r *MovementRepo) CountByType(companyID string) (map[string]int64, error) {
	query := `SELECT type, COUNT(*) FROM movements WHERE company_id = $1 GROUP BY type`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("count movements: %w", err)
	}
	defer rows.Close()
	counts := make(map[string]int64)
	for rows.Next() {
		var movementType string
		var count int64
		if err := rows.Scan(&movementType, &count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[movementType] = count
	}
	return counts, rows.Err()
}
