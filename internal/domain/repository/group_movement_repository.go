package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
)

// GroupMovementFilter filtros opcionales y conjuntivos para el historial.
type GroupMovementFilter struct {
	GroupID        string
	From, To       *time.Time
	ReasonContains string // substring sobre el motivo, case-insensitive
	Limit          int
	Offset         int
}

// GroupMovementRepository bitácora append-only de movimientos de grupos.
// Create solo lo invoca el aplicador dentro de su transacción; no existen
// operaciones de actualización ni borrado.
type GroupMovementRepository interface {
	Create(ctx context.Context, m *entity.GroupMovement) error
	GetByID(ctx context.Context, id string) (*entity.GroupMovement, error)
	// List devuelve movimientos ordenados del más reciente al más antiguo.
	List(ctx context.Context, f GroupMovementFilter) ([]*entity.GroupMovement, error)
}
