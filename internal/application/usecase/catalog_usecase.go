package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Bioterio-api/internal/application/dto"
	"github.com/jhoicas/Bioterio-api/internal/domain"
	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
	"github.com/jhoicas/Bioterio-api/internal/domain/repository"
)

// CatalogUseCase altas y listados de los catálogos auxiliares: especies,
// cepas y jaulas.
type CatalogUseCase struct {
	species repository.SpeciesRepository
	strains repository.StrainRepository
	cages   repository.CageRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	species repository.SpeciesRepository,
	strains repository.StrainRepository,
	cages repository.CageRepository,
) *CatalogUseCase {
	return &CatalogUseCase{species: species, strains: strains, cages: cages}
}

// CreateSpecies crea una especie (nombre único).
func (uc *CatalogUseCase) CreateSpecies(ctx context.Context, in dto.CreateSpeciesRequest) (*entity.Species, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Species{Name: name, Description: in.Description}
	if err := uc.species.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ListSpecies lista las especies ordenadas por nombre.
func (uc *CatalogUseCase) ListSpecies(ctx context.Context) ([]*entity.Species, error) {
	return uc.species.List(ctx)
}

// CreateStrain crea una cepa de una especie (única por especie).
func (uc *CatalogUseCase) CreateStrain(ctx context.Context, speciesID string, in dto.CreateStrainRequest) (*entity.Strain, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	sp, err := uc.species.GetByID(ctx, speciesID)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, domain.ErrNotFound
	}
	s := &entity.Strain{SpeciesID: speciesID, Name: name, Description: in.Description}
	if err := uc.strains.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ListStrains lista las cepas de una especie.
func (uc *CatalogUseCase) ListStrains(ctx context.Context, speciesID string) ([]*entity.Strain, error) {
	return uc.strains.ListBySpecies(ctx, speciesID)
}

// CreateCage crea una jaula (nombre único).
func (uc *CatalogUseCase) CreateCage(ctx context.Context, in dto.CreateCageRequest) (*entity.Cage, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Capacity < 0 {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Cage{Name: name, Location: in.Location, Capacity: in.Capacity}
	if err := uc.cages.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCages lista las jaulas ordenadas por nombre.
func (uc *CatalogUseCase) ListCages(ctx context.Context) ([]*entity.Cage, error) {
	return uc.cages.List(ctx)
}
