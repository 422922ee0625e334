package repository

import (
	"context"

	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
)

// GroupFilter filtros conjuntivos para listar grupos.
type GroupFilter struct {
	SpeciesName string // substring, case-insensitive
	CageName    string // substring, case-insensitive
	Alert       string // "low_m" | "low_f" | "low_any" | ""
	OnlyActive  bool
	Limit       int
	Offset      int
}

// AnimalGroupRepository puerto de persistencia para grupos animales.
// Los saldos solo se actualizan dentro de la transacción del aplicador.
type AnimalGroupRepository interface {
	Create(ctx context.Context, g *entity.AnimalGroup) error
	GetByID(ctx context.Context, id string) (*entity.AnimalGroup, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) hasta el fin de la
	// transacción; serializa movimientos concurrentes sobre el mismo grupo.
	GetForUpdate(ctx context.Context, id string) (*entity.AnimalGroup, error)
	// FindByKey busca por la identidad (especie, cepa, jaula) sin bloquear.
	FindByKey(ctx context.Context, speciesID string, strainID *string, cageID string) (*entity.AnimalGroup, error)
	// FindOrCreateForUpdate busca o crea el grupo destino de un traslado,
	// bajo bloqueo exclusivo para evitar carreras de duplicado.
	FindOrCreateForUpdate(ctx context.Context, speciesID string, strainID *string, cageID string) (*entity.AnimalGroup, bool, error)
	// UpdateCounts persiste únicamente los saldos machos/hembras.
	UpdateCounts(ctx context.Context, g *entity.AnimalGroup) error
	Update(ctx context.Context, g *entity.AnimalGroup) error
	List(ctx context.Context, f GroupFilter) ([]*entity.AnimalGroup, error)
	// Delete falla con ErrProtected si existen movimientos asociados.
	Delete(ctx context.Context, id string) error
}
