package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bioterio-api/internal/domain"
	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
	"github.com/jhoicas/Bioterio-api/internal/domain/repository"
)

var _ repository.SupplyRepository = (*SupplyRepo)(nil)

// SupplyRepo implementación de SupplyRepository sobre PostgreSQL.
type SupplyRepo struct {
	q Querier
}

func NewSupplyRepository(q Querier) *SupplyRepo {
	return &SupplyRepo{q: q}
}

const supplyColumns = `id, name, category_id, unit, current_stock, min_stock, unit_price, active, created_at, updated_at`

func scanSupply(row pgx.Row) (*entity.Supply, error) {
	var s entity.Supply
	err := row.Scan(
		&s.ID, &s.Name, &s.CategoryID, &s.Unit,
		&s.CurrentStock, &s.MinStock, &s.UnitPrice,
		&s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplyRepo) Create(ctx context.Context, s *entity.Supply) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	query := `
		INSERT INTO supplies (` + supplyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.CategoryID, s.Unit,
		s.CurrentStock, s.MinStock, s.UnitPrice, s.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supply: %w", err)
	}
	return nil
}

func (r *SupplyRepo) GetByID(ctx context.Context, id string) (*entity.Supply, error) {
	s, err := scanSupply(r.q.QueryRow(ctx,
		`SELECT `+supplyColumns+` FROM supplies WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supply: %w", err)
	}
	return s, nil
}

// GetForUpdate bloquea la fila del insumo hasta el fin de la transacción.
func (r *SupplyRepo) GetForUpdate(ctx context.Context, id string) (*entity.Supply, error) {
	s, err := scanSupply(r.q.QueryRow(ctx,
		`SELECT `+supplyColumns+` FROM supplies WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supply for update: %w", err)
	}
	return s, nil
}

// UpdateStock persiste únicamente el stock actual; lo invoca el aplicador
// con la fila ya bloqueada.
func (r *SupplyRepo) UpdateStock(ctx context.Context, s *entity.Supply) error {
	query := `UPDATE supplies SET current_stock = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(ctx, query, s.ID, s.CurrentStock)
	if err != nil {
		return fmt.Errorf("update supply stock: %w", err)
	}
	return nil
}

func (r *SupplyRepo) Update(ctx context.Context, s *entity.Supply) error {
	query := `
		UPDATE supplies SET name = $2, category_id = $3, unit = $4, min_stock = $5,
		       unit_price = $6, active = $7, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.CategoryID, s.Unit, s.MinStock, s.UnitPrice, s.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supply: %w", err)
	}
	return nil
}

func (r *SupplyRepo) List(ctx context.Context, f repository.SupplyFilter) ([]*entity.Supply, error) {
	query := `SELECT ` + supplyColumns + ` FROM supplies WHERE 1=1`
	args := []any{}
	pos := 1
	if f.NameContains != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", pos)
		args = append(args, "%"+f.NameContains+"%")
		pos++
	}
	if f.OnlyBelowMin {
		query += " AND current_stock < min_stock"
	}
	if f.OnlyActive {
		query += " AND active"
	}
	query += " ORDER BY name"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list supplies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supply
	for rows.Next() {
		s, err := scanSupply(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supply: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *SupplyRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM supplies WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProtected
		}
		return fmt.Errorf("delete supply: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.SupplyCategoryRepository = (*SupplyCategoryRepo)(nil)

// SupplyCategoryRepo catálogo de categorías de insumos.
type SupplyCategoryRepo struct {
	q Querier
}

func NewSupplyCategoryRepository(q Querier) *SupplyCategoryRepo {
	return &SupplyCategoryRepo{q: q}
}

func (r *SupplyCategoryRepo) Create(ctx context.Context, c *entity.SupplyCategory) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `INSERT INTO supply_categories (id, name, description, created_at) VALUES ($1, $2, $3, now())`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supply category: %w", err)
	}
	return nil
}

func (r *SupplyCategoryRepo) GetByID(ctx context.Context, id string) (*entity.SupplyCategory, error) {
	var c entity.SupplyCategory
	err := r.q.QueryRow(ctx,
		`SELECT id, name, description, created_at FROM supply_categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supply category: %w", err)
	}
	return &c, nil
}

func (r *SupplyCategoryRepo) List(ctx context.Context) ([]*entity.SupplyCategory, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, description, created_at FROM supply_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list supply categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplyCategory
	for rows.Next() {
		var c entity.SupplyCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supply category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
