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

var (
	_ repository.SpeciesRepository = (*SpeciesRepo)(nil)
	_ repository.StrainRepository  = (*StrainRepo)(nil)
	_ repository.CageRepository    = (*CageRepo)(nil)
)

// SpeciesRepo catálogo de especies sobre PostgreSQL.
type SpeciesRepo struct {
	q Querier
}

func NewSpeciesRepository(q Querier) *SpeciesRepo {
	return &SpeciesRepo{q: q}
}

func (r *SpeciesRepo) Create(ctx context.Context, s *entity.Species) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	query := `INSERT INTO species (id, name, description, created_at) VALUES ($1, $2, $3, now())`
	_, err := r.q.Exec(ctx, query, s.ID, s.Name, s.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert species: %w", err)
	}
	return nil
}

func (r *SpeciesRepo) GetByID(ctx context.Context, id string) (*entity.Species, error) {
	var s entity.Species
	err := r.q.QueryRow(ctx,
		`SELECT id, name, description, created_at FROM species WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get species: %w", err)
	}
	return &s, nil
}

func (r *SpeciesRepo) List(ctx context.Context) ([]*entity.Species, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, description, created_at FROM species ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list species: %w", err)
	}
	defer rows.Close()
	var list []*entity.Species
	for rows.Next() {
		var s entity.Species
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan species: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// StrainRepo catálogo de cepas por especie.
type StrainRepo struct {
	q Querier
}

func NewStrainRepository(q Querier) *StrainRepo {
	return &StrainRepo{q: q}
}

func (r *StrainRepo) Create(ctx context.Context, s *entity.Strain) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	query := `INSERT INTO strains (id, species_id, name, description, created_at) VALUES ($1, $2, $3, $4, now())`
	_, err := r.q.Exec(ctx, query, s.ID, s.SpeciesID, s.Name, s.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert strain: %w", err)
	}
	return nil
}

func (r *StrainRepo) GetByID(ctx context.Context, id string) (*entity.Strain, error) {
	var s entity.Strain
	err := r.q.QueryRow(ctx,
		`SELECT id, species_id, name, description, created_at FROM strains WHERE id = $1`, id).
		Scan(&s.ID, &s.SpeciesID, &s.Name, &s.Description, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get strain: %w", err)
	}
	return &s, nil
}

func (r *StrainRepo) ListBySpecies(ctx context.Context, speciesID string) ([]*entity.Strain, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, species_id, name, description, created_at FROM strains WHERE species_id = $1 ORDER BY name`,
		speciesID)
	if err != nil {
		return nil, fmt.Errorf("list strains: %w", err)
	}
	defer rows.Close()
	var list []*entity.Strain
	for rows.Next() {
		var s entity.Strain
		if err := rows.Scan(&s.ID, &s.SpeciesID, &s.Name, &s.Description, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan strain: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CageRepo catálogo de jaulas.
type CageRepo struct {
	q Querier
}

func NewCageRepository(q Querier) *CageRepo {
	return &CageRepo{q: q}
}

func (r *CageRepo) Create(ctx context.Context, c *entity.Cage) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `INSERT INTO cages (id, name, location, capacity, created_at) VALUES ($1, $2, $3, $4, now())`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Location, c.Capacity)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cage: %w", err)
	}
	return nil
}

func (r *CageRepo) GetByID(ctx context.Context, id string) (*entity.Cage, error) {
	var c entity.Cage
	err := r.q.QueryRow(ctx,
		`SELECT id, name, location, capacity, created_at FROM cages WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Location, &c.Capacity, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cage: %w", err)
	}
	return &c, nil
}

func (r *CageRepo) List(ctx context.Context) ([]*entity.Cage, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, location, capacity, created_at FROM cages ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list cages: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cage
	for rows.Next() {
		var c entity.Cage
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Capacity, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cage: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
