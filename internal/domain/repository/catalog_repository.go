package repository

import (
	"context"

	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
)

// SpeciesRepository catálogo de especies.
type SpeciesRepository interface {
	Create(ctx context.Context, s *entity.Species) error
	GetByID(ctx context.Context, id string) (*entity.Species, error)
	List(ctx context.Context) ([]*entity.Species, error)
}

// StrainRepository catálogo de cepas por especie.
type StrainRepository interface {
	Create(ctx context.Context, s *entity.Strain) error
	GetByID(ctx context.Context, id string) (*entity.Strain, error)
	ListBySpecies(ctx context.Context, speciesID string) ([]*entity.Strain, error)
}

// CageRepository catálogo de jaulas.
type CageRepository interface {
	Create(ctx context.Context, c *entity.Cage) error
	GetByID(ctx context.Context, id string) (*entity.Cage, error)
	List(ctx context.Context) ([]*entity.Cage, error)
}
