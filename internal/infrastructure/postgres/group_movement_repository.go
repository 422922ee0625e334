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

var _ repository.GroupMovementRepository = (*GroupMovementRepo)(nil)

// GroupMovementRepo bitácora de movimientos de grupos sobre PostgreSQL.
// Solo inserta y lee: la tabla no admite UPDATE ni DELETE.
type GroupMovementRepo struct {
	q Querier
}

func NewGroupMovementRepository(q Querier) *GroupMovementRepo {
	return &GroupMovementRepo{q: q}
}

const groupMovementColumns = `id, group_id, category, reason, males, females, protocol_id, destination_cage_id, note, date, created_by`

func scanGroupMovement(row pgx.Row) (*entity.GroupMovement, error) {
	var m entity.GroupMovement
	err := row.Scan(
		&m.ID, &m.GroupID, &m.Category, &m.Reason, &m.Males, &m.Females,
		&m.ProtocolID, &m.DestinationCageID, &m.Note, &m.Date, &m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *GroupMovementRepo) Create(ctx context.Context, m *entity.GroupMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO group_movements (` + groupMovementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.GroupID, m.Category, m.Reason, m.Males, m.Females,
		m.ProtocolID, m.DestinationCageID, m.Note, m.Date, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert group movement: %w", err)
	}
	return nil
}

func (r *GroupMovementRepo) GetByID(ctx context.Context, id string) (*entity.GroupMovement, error) {
	m, err := scanGroupMovement(r.q.QueryRow(ctx,
		`SELECT `+groupMovementColumns+` FROM group_movements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get group movement: %w", err)
	}
	return m, nil
}

// List devuelve el historial del más reciente al más antiguo, con filtros
// conjuntivos de grupo, rango de fechas y substring del motivo.
func (r *GroupMovementRepo) List(ctx context.Context, f repository.GroupMovementFilter) ([]*entity.GroupMovement, error) {
	query := `SELECT ` + groupMovementColumns + ` FROM group_movements WHERE 1=1`
	args := []any{}
	pos := 1
	if f.GroupID != "" {
		query += fmt.Sprintf(" AND group_id = $%d", pos)
		args = append(args, f.GroupID)
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
		return nil, fmt.Errorf("list group movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.GroupMovement
	for rows.Next() {
		m, err := scanGroupMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan group movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
