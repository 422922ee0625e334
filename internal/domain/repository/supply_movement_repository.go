package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
)

// SupplyMovementFilter filtros opcionales y conjuntivos para el historial.
type SupplyMovementFilter struct {
	SupplyID       string
	From, To       *time.Time
	ReasonContains string
	Limit          int
	Offset         int
}

// SupplyMovementRepository bitácora append-only de movimientos de insumos.
type SupplyMovementRepository interface {
	Create(ctx context.Context, m *entity.SupplyMovement) error
	GetByID(ctx context.Context, id string) (*entity.SupplyMovement, error)
	List(ctx context.Context, f SupplyMovementFilter) ([]*entity.SupplyMovement, error)
}
