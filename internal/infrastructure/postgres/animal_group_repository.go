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

var _ repository.AnimalGroupRepository = (*AnimalGroupRepo)(nil)

// AnimalGroupRepo implementación de AnimalGroupRepository sobre PostgreSQL
// (usable con pool o tx).
type AnimalGroupRepo struct {
	q Querier
}

// NewAnimalGroupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnimalGroupRepository(q Querier) *AnimalGroupRepo {
	return &AnimalGroupRepo{q: q}
}

const groupColumns = `id, species_id, strain_id, cage_id, males, females, min_males, min_females, active, created_at, updated_at`

func scanGroup(row pgx.Row) (*entity.AnimalGroup, error) {
	var g entity.AnimalGroup
	err := row.Scan(
		&g.ID, &g.SpeciesID, &g.StrainID, &g.CageID,
		&g.Males, &g.Females, &g.MinMales, &g.MinFemales,
		&g.Active, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Create persiste un nuevo grupo. La identidad (especie, cepa, jaula) es
// única entre activos e inactivos por igual: un duplicado → ErrDuplicate.
func (r *AnimalGroupRepo) Create(ctx context.Context, g *entity.AnimalGroup) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	query := `
		INSERT INTO animal_groups (` + groupColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())`
	_, err := r.q.Exec(ctx, query,
		g.ID, g.SpeciesID, g.StrainID, g.CageID,
		g.Males, g.Females, g.MinMales, g.MinFemales, g.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert animal group: %w", err)
	}
	return nil
}

// GetByID obtiene un grupo por ID sin bloquear.
func (r *AnimalGroupRepo) GetByID(ctx context.Context, id string) (*entity.AnimalGroup, error) {
	g, err := scanGroup(r.q.QueryRow(ctx,
		`SELECT `+groupColumns+` FROM animal_groups WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get animal group: %w", err)
	}
	return g, nil
}

// GetForUpdate obtiene el grupo y bloquea la fila (SELECT FOR UPDATE) hasta
// el fin de la transacción. Serializa movimientos concurrentes.
func (r *AnimalGroupRepo) GetForUpdate(ctx context.Context, id string) (*entity.AnimalGroup, error) {
	g, err := scanGroup(r.q.QueryRow(ctx,
		`SELECT `+groupColumns+` FROM animal_groups WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get animal group for update: %w", err)
	}
	return g, nil
}

// FindByKey busca por identidad (especie, cepa, jaula) sin bloquear.
func (r *AnimalGroupRepo) FindByKey(ctx context.Context, speciesID string, strainID *string, cageID string) (*entity.AnimalGroup, error) {
	query := `
		SELECT ` + groupColumns + ` FROM animal_groups
		WHERE species_id = $1 AND strain_id IS NOT DISTINCT FROM $2 AND cage_id = $3`
	g, err := scanGroup(r.q.QueryRow(ctx, query, speciesID, strainID, cageID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find animal group by key: %w", err)
	}
	return g, nil
}

// FindOrCreateForUpdate busca o crea el grupo destino de un traslado y lo
// devuelve bloqueado. El INSERT ... ON CONFLICT DO NOTHING evita la carrera
// de duplicado entre dos traslados concurrentes hacia la misma jaula; un
// grupo nuevo arranca con saldos y mínimos en cero.
func (r *AnimalGroupRepo) FindOrCreateForUpdate(ctx context.Context, speciesID string, strainID *string, cageID string) (*entity.AnimalGroup, bool, error) {
	insert := `
		INSERT INTO animal_groups (` + groupColumns + `)
		VALUES ($1, $2, $3, $4, 0, 0, 0, 0, true, now(), now())
		ON CONFLICT (species_id, strain_id, cage_id) DO NOTHING`
	tag, err := r.q.Exec(ctx, insert, uuid.New().String(), speciesID, strainID, cageID)
	if err != nil {
		return nil, false, fmt.Errorf("find-or-create animal group: %w", err)
	}
	created := tag.RowsAffected() == 1

	query := `
		SELECT ` + groupColumns + ` FROM animal_groups
		WHERE species_id = $1 AND strain_id IS NOT DISTINCT FROM $2 AND cage_id = $3
		FOR UPDATE`
	g, err := scanGroup(r.q.QueryRow(ctx, query, speciesID, strainID, cageID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("lock animal group: %w", err)
	}
	return g, created, nil
}

// UpdateCounts persiste únicamente los saldos machos/hembras. Solo lo
// invoca el aplicador con la fila ya bloqueada.
func (r *AnimalGroupRepo) UpdateCounts(ctx context.Context, g *entity.AnimalGroup) error {
	query := `
		UPDATE animal_groups SET males = $2, females = $3, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, g.ID, g.Males, g.Females)
	if err != nil {
		return fmt.Errorf("update animal group counts: %w", err)
	}
	return nil
}

// Update actualiza mínimos y bandera de actividad.
func (r *AnimalGroupRepo) Update(ctx context.Context, g *entity.AnimalGroup) error {
	query := `
		UPDATE animal_groups SET min_males = $2, min_females = $3, active = $4, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, g.ID, g.MinMales, g.MinFemales, g.Active)
	if err != nil {
		return fmt.Errorf("update animal group: %w", err)
	}
	return nil
}

// List lista grupos con filtros conjuntivos: especie/jaula por substring y
// alertas de mínimos (comparación estrictamente menor).
func (r *AnimalGroupRepo) List(ctx context.Context, f repository.GroupFilter) ([]*entity.AnimalGroup, error) {
	query := `
		SELECT g.id, g.species_id, g.strain_id, g.cage_id, g.males, g.females,
		       g.min_males, g.min_females, g.active, g.created_at, g.updated_at
		FROM animal_groups g
		JOIN species s ON s.id = g.species_id
		JOIN cages c ON c.id = g.cage_id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if f.SpeciesName != "" {
		query += fmt.Sprintf(" AND s.name ILIKE $%d", pos)
		args = append(args, "%"+f.SpeciesName+"%")
		pos++
	}
	if f.CageName != "" {
		query += fmt.Sprintf(" AND c.name ILIKE $%d", pos)
		args = append(args, "%"+f.CageName+"%")
		pos++
	}
	switch f.Alert {
	case "low_m":
		query += " AND g.males < g.min_males"
	case "low_f":
		query += " AND g.females < g.min_females"
	case "low_any":
		query += " AND (g.males < g.min_males OR g.females < g.min_females)"
	}
	if f.OnlyActive {
		query += " AND g.active"
	}
	query += " ORDER BY s.name, c.name"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list animal groups: %w", err)
	}
	defer rows.Close()
	var list []*entity.AnimalGroup
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan animal group: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

// Delete elimina un grupo. Con movimientos asociados la FK lo impide y se
// devuelve ErrProtected: la bitácora nunca pierde su referencia.
func (r *AnimalGroupRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM animal_groups WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProtected
		}
		return fmt.Errorf("delete animal group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
