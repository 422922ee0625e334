package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
	"github.com/jhoicas/Bioterio-api/internal/domain/repository"
)

var _ repository.SupplyMovementRepository = (*SupplyMovementRepo)(nil)

// SupplyMovementRepo bitácora de movimientos de insumos sobre PostgreSQL.
type SupplyMovementRepo struct {
	q Querier
}

func NewSupplyMovementRepository(q Querier) *SupplyMovementRepo {
	return &SupplyMovementRepo{q: q}
}

const supplyMovementColumns = `id, supply_id, type, quantity, reason, date, created_by`

func scanSupplyMovement(row pgx.Row) (*entity.SupplyMovement, error) {
	var m entity.SupplyMovement
	err := row.Scan(&m.ID, &m.SupplyID, &m.Type, &m.Quantity, &m.Reason, &m.Date, &m.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *SupplyMovementRepo) Create(ctx context.Context, m *entity.SupplyMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO supply_movements (` + supplyMovementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.SupplyID, m.Type, m.Quantity, m.Reason, m.Date, m.CreatedBy)
	if err != nil {
		return fmt.Errorf("insert supply movement: %w", err)
	}
	return nil
}

func (r *SupplyMovementRepo) GetByID(ctx context.Context, id string) (*entity.SupplyMovement, error) {
	m, err := scanSupplyMovement(r.q.QueryRow(ctx,
		`SELECT `+supplyMovementColumns+` FROM supply_movements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supply movement: %w", err)
	}
	return m, nil
}

func (r *SupplyMovementRepo) List(ctx context.Context, f repository.SupplyMovementFilter) ([]*entity.SupplyMovement, error) {
	query := `SELECT ` + supplyMovementColumns + ` FROM supply_movements WHERE 1=1`
	args := []any{}
	pos := 1
	if f.SupplyID != "" {
		query += fmt.Sprintf(" AND supply_id = $%d", pos)
		args = append(args, f.SupplyID)
		pos++
	}
	if f.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *f.From)
		pos++
	}
	if f.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *f.To)
		pos++
	}
	if f.ReasonContains != "" {
		query += fmt.Sprintf(" AND reason ILIKE $%d", pos)
		args = append(args, "%"+f.ReasonContains+"%")
		pos++
	}
	query += " ORDER BY date DESC, id DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list supply movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplyMovement
	for rows.Next() {
		m, err := scanSupplyMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supply movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
