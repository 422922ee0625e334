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

var _ repository.ProtocolRepository = (*ProtocolRepo)(nil)

// ProtocolRepo implementación de ProtocolRepository sobre PostgreSQL. Las
// filas de animales solicitados viven en protocol_animals y se reescriben
// completas en cada Update del borrador.
type ProtocolRepo struct {
	q Querier
}

func NewProtocolRepository(q Querier) *ProtocolRepo {
	return &ProtocolRepo{q: q}
}

const protocolColumns = `id, title, state, researcher_name, researcher_dept, researcher_phone, researcher_email,
	justification, justification_3r, euthanasia_method, final_destination,
	group_count, per_group_count, total_count, rejection_note, created_by, created_at, updated_at`

func (r *ProtocolRepo) Create(ctx context.Context, p *entity.Protocol) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO protocols (` + protocolColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, now(), now())`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Title, p.State,
		p.ResearcherName, p.ResearcherDept, p.ResearcherPhone, p.ResearcherEmail,
		p.Justification, p.Justification3R, p.EuthanasiaMethod, p.FinalDestination,
		p.GroupCount, p.PerGroupCount, p.TotalCount, p.RejectionNote, p.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert protocol: %w", err)
	}
	return r.replaceAnimals(ctx, p)
}

func (r *ProtocolRepo) GetByID(ctx context.Context, id string) (*entity.Protocol, error) {
	var p entity.Protocol
	err := r.q.QueryRow(ctx,
		`SELECT `+protocolColumns+` FROM protocols WHERE id = $1`, id).
		Scan(
			&p.ID, &p.Title, &p.State,
			&p.ResearcherName, &p.ResearcherDept, &p.ResearcherPhone, &p.ResearcherEmail,
			&p.Justification, &p.Justification3R, &p.EuthanasiaMethod, &p.FinalDestination,
			&p.GroupCount, &p.PerGroupCount, &p.TotalCount, &p.RejectionNote,
			&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get protocol: %w", err)
	}
	animals, err := r.loadAnimals(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Animals = animals
	return &p, nil
}

func (r *ProtocolRepo) Update(ctx context.Context, p *entity.Protocol) error {
	query := `
		UPDATE protocols SET title = $2, researcher_name = $3, researcher_dept = $4,
		       researcher_phone = $5, researcher_email = $6, justification = $7,
		       justification_3r = $8, euthanasia_method = $9, final_destination = $10,
		       group_count = $11, per_group_count = $12, total_count = $13, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Title,
		p.ResearcherName, p.ResearcherDept, p.ResearcherPhone, p.ResearcherEmail,
		p.Justification, p.Justification3R, p.EuthanasiaMethod, p.FinalDestination,
		p.GroupCount, p.PerGroupCount, p.TotalCount,
	)
	if err != nil {
		return fmt.Errorf("update protocol: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM protocol_animals WHERE protocol_id = $1`, p.ID); err != nil {
		return fmt.Errorf("clear protocol animals: %w", err)
	}
	return r.replaceAnimals(ctx, p)
}

func (r *ProtocolRepo) UpdateState(ctx context.Context, id, state, rejectionNote string) error {
	query := `UPDATE protocols SET state = $2, rejection_note = $3, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, state, rejectionNote)
	if err != nil {
		return fmt.Errorf("update protocol state: %w", err)
	}
	return nil
}

func (r *ProtocolRepo) List(ctx context.Context, state string, limit, offset int) ([]*entity.Protocol, error) {
	query := `SELECT ` + protocolColumns + ` FROM protocols WHERE 1=1`
	args := []any{}
	pos := 1
	if state != "" {
		query += fmt.Sprintf(" AND state = $%d", pos)
		args = append(args, state)
		pos++
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, limit, offset)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list protocols: %w", err)
	}
	defer rows.Close()
	var list []*entity.Protocol
	for rows.Next() {
		var p entity.Protocol
		err := rows.Scan(
			&p.ID, &p.Title, &p.State,
			&p.ResearcherName, &p.ResearcherDept, &p.ResearcherPhone, &p.ResearcherEmail,
			&p.Justification, &p.Justification3R, &p.EuthanasiaMethod, &p.FinalDestination,
			&p.GroupCount, &p.PerGroupCount, &p.TotalCount, &p.RejectionNote,
			&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan protocol: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProtocolRepo) replaceAnimals(ctx context.Context, p *entity.Protocol) error {
	for i := range p.Animals {
		a := &p.Animals[i]
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		a.ProtocolID = p.ID
		query := `
			INSERT INTO protocol_animals (id, protocol_id, species_name, quantity, sex, weight_range, age_range)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`
		_, err := r.q.Exec(ctx, query,
			a.ID, a.ProtocolID, a.SpeciesName, a.Quantity, a.Sex, a.WeightRange, a.AgeRange)
		if err != nil {
			return fmt.Errorf("insert protocol animal: %w", err)
		}
	}
	return nil
}

func (r *ProtocolRepo) loadAnimals(ctx context.Context, protocolID string) ([]entity.ProtocolAnimal, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, protocol_id, species_name, quantity, sex, weight_range, age_range
		FROM protocol_animals WHERE protocol_id = $1 ORDER BY species_name`, protocolID)
	if err != nil {
		return nil, fmt.Errorf("list protocol animals: %w", err)
	}
	defer rows.Close()
	var list []entity.ProtocolAnimal
	for rows.Next() {
		var a entity.ProtocolAnimal
		if err := rows.Scan(&a.ID, &a.ProtocolID, &a.SpeciesName, &a.Quantity, &a.Sex, &a.WeightRange, &a.AgeRange); err != nil {
			return nil, fmt.Errorf("scan protocol animal: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
