package repository

import (
	"context"

	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
)

// SupplyFilter filtros conjuntivos para listar insumos.
type SupplyFilter struct {
	NameContains string
	OnlyBelowMin bool
	OnlyActive   bool
	Limit        int
	Offset       int
}

// SupplyRepository puerto de persistencia para insumos. El stock solo se
// actualiza dentro de la transacción del aplicador de movimientos.
type SupplyRepository interface {
	Create(ctx context.Context, s *entity.Supply) error
	GetByID(ctx context.Context, id string) (*entity.Supply, error)
	// GetForUpdate bloquea la fila del insumo (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Supply, error)
	// UpdateStock persiste únicamente el stock actual.
	UpdateStock(ctx context.Context, s *entity.Supply) error
	Update(ctx context.Context, s *entity.Supply) error
	List(ctx context.Context, f SupplyFilter) ([]*entity.Supply, error)
	// Delete falla con ErrProtected si existen movimientos asociados.
	Delete(ctx context.Context, id string) error
}

// SupplyCategoryRepository catálogo de categorías de insumos.
type SupplyCategoryRepository interface {
	Create(ctx context.Context, c *entity.SupplyCategory) error
	GetByID(ctx context.Context, id string) (*entity.SupplyCategory, error)
	List(ctx context.Context) ([]*entity.SupplyCategory, error)
}
