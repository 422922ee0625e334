package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
	"github.com/jhoicas/Bioterio-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo proyección de solo lectura para el dashboard y los reportes.
// Agrega sobre la bitácora y los saldos vigentes; nunca muta estado.
type ReportRepo struct {
	q Querier
}

func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GroupAlerts cuenta grupos activos bajo mínimo. Estrictamente menor:
// un grupo exactamente en el mínimo no alerta.
func (r *ReportRepo) GroupAlerts(ctx context.Context) (repository.GroupAlertCounts, error) {
	var c repository.GroupAlertCounts
	err := r.q.QueryRow(ctx, `
		SELECT
			count(*) FILTER (WHERE males < min_males),
			count(*) FILTER (WHERE females < min_females),
			count(*) FILTER (WHERE males < min_males OR females < min_females)
		FROM animal_groups WHERE active`).
		Scan(&c.BelowMales, &c.BelowFemales, &c.BelowAny)
	if err != nil {
		return c, fmt.Errorf("count group alerts: %w", err)
	}
	return c, nil
}

func (r *ReportRepo) SuppliesBelowMin(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM supplies WHERE active AND current_stock < min_stock`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count supplies below min: %w", err)
	}
	return n, nil
}

// SumGroupMovements agrega entradas y salidas por grupo en el rango dado.
// Un traslado cuenta como salida del grupo origen; la entrada al destino
// queda implícita en los saldos, no en la bitácora.
func (r *ReportRepo) SumGroupMovements(ctx context.Context, from, to *time.Time) ([]repository.GroupMovementSum, error) {
	query := `
		SELECT g.id, s.name, c.name,
			coalesce(sum(m.males) FILTER (WHERE m.category = 'INGRESO' OR m.reason = 'AJUSTE_POSITIVO'), 0),
			coalesce(sum(m.females) FILTER (WHERE m.category = 'INGRESO' OR m.reason = 'AJUSTE_POSITIVO'), 0),
			coalesce(sum(m.males) FILTER (WHERE m.category IN ('SALIDA', 'TRASLADO') OR m.reason = 'AJUSTE_NEGATIVO'), 0),
			coalesce(sum(m.females) FILTER (WHERE m.category IN ('SALIDA', 'TRASLADO') OR m.reason = 'AJUSTE_NEGATIVO'), 0)
		FROM group_movements m
		JOIN animal_groups g ON g.id = m.group_id
		JOIN species s ON s.id = g.species_id
		JOIN cages c ON c.id = g.cage_id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if from != nil {
		query += fmt.Sprintf(" AND m.date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND m.date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += " GROUP BY g.id, s.name, c.name ORDER BY s.name, c.name"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sum group movements: %w", err)
	}
	defer rows.Close()
	var list []repository.GroupMovementSum
	for rows.Next() {
		var s repository.GroupMovementSum
		if err := rows.Scan(&s.GroupID, &s.SpeciesName, &s.CageName,
			&s.MalesIn, &s.FemalesIn, &s.MalesOut, &s.FemalesOut); err != nil {
			return nil, fmt.Errorf("scan group movement sum: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *ReportRepo) SumSupplyMovements(ctx context.Context, from, to *time.Time) ([]repository.SupplyMovementSum, error) {
	query := `
		SELECT s.id, s.name,
			coalesce(sum(m.quantity) FILTER (WHERE m.type IN ('ENTRADA', 'AJUSTE')), 0),
			coalesce(sum(m.quantity) FILTER (WHERE m.type = 'SALIDA'), 0)
		FROM supply_movements m
		JOIN supplies s ON s.id = m.supply_id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if from != nil {
		query += fmt.Sprintf(" AND m.date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND m.date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += " GROUP BY s.id, s.name ORDER BY s.name"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sum supply movements: %w", err)
	}
	defer rows.Close()
	var list []repository.SupplyMovementSum
	for rows.Next() {
		var s repository.SupplyMovementSum
		if err := rows.Scan(&s.SupplyID, &s.SupplyName, &s.TotalIn, &s.TotalOut); err != nil {
			return nil, fmt.Errorf("scan supply movement sum: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *ReportRepo) RecentGroupMovements(ctx context.Context, n int) ([]*entity.GroupMovement, error) {
	return NewGroupMovementRepository(r.q).List(ctx, repository.GroupMovementFilter{Limit: n})
}

func (r *ReportRepo) RecentSupplyMovements(ctx context.Context, n int) ([]*entity.SupplyMovement, error) {
	return NewSupplyMovementRepository(r.q).List(ctx, repository.SupplyMovementFilter{Limit: n})
}
