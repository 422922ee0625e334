package usecase

import (
	"context"

	"github.com/jhoicas/Bioterio-api/internal/application/dto"
	"github.com/jhoicas/Bioterio-api/internal/domain"
	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
	"github.com/jhoicas/Bioterio-api/internal/domain/repository"
)

// GroupUseCase CRUD de grupos animales. Los saldos quedan fuera: solo los
// muta el motor de movimientos.
type GroupUseCase struct {
	groups  repository.AnimalGroupRepository
	species repository.SpeciesRepository
	strains repository.StrainRepository
	cages   repository.CageRepository
}

// NewGroupUseCase construye el caso de uso.
func NewGroupUseCase(
	groups repository.AnimalGroupRepository,
	species repository.SpeciesRepository,
	strains repository.StrainRepository,
	cages repository.CageRepository,
) *GroupUseCase {
	return &GroupUseCase{groups: groups, species: species, strains: strains, cages: cages}
}

// Create crea un grupo. La identidad (especie, cepa, jaula) es única entre
// activos e inactivos por igual; un duplicado devuelve ErrDuplicate.
func (uc *GroupUseCase) Create(ctx context.Context, in dto.CreateGroupRequest) (*entity.AnimalGroup, error) {
	if in.SpeciesID == "" || in.CageID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Males < 0 || in.Females < 0 || in.MinMales < 0 || in.MinFemales < 0 {
		return nil, domain.ErrInvalidInput
	}
	sp, err := uc.species.GetByID(ctx, in.SpeciesID)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, domain.ErrNotFound
	}
	if in.StrainID != nil {
		st, err := uc.strains.GetByID(ctx, *in.StrainID)
		if err != nil {
			return nil, err
		}
		if st == nil || st.SpeciesID != in.SpeciesID {
			return nil, domain.ErrNotFound
		}
	}
	cage, err := uc.cages.GetByID(ctx, in.CageID)
	if err != nil {
		return nil, err
	}
	if cage == nil {
		return nil, domain.ErrNotFound
	}

	g := &entity.AnimalGroup{
		SpeciesID:  in.SpeciesID,
		StrainID:   in.StrainID,
		CageID:     in.CageID,
		Males:      in.Males,
		Females:    in.Females,
		MinMales:   in.MinMales,
		MinFemales: in.MinFemales,
		Active:     true,
	}
	if err := uc.groups.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Update actualiza mínimos y bandera de actividad.
func (uc *GroupUseCase) Update(ctx context.Context, id string, in dto.UpdateGroupRequest) (*entity.AnimalGroup, error) {
	if in.MinMales < 0 || in.MinFemales < 0 {
		return nil, domain.ErrInvalidInput
	}
	g, err := uc.groups.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	g.MinMales = in.MinMales
	g.MinFemales = in.MinFemales
	g.Active = in.Active
	if err := uc.groups.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// GetByID devuelve un grupo o ErrNotFound.
func (uc *GroupUseCase) GetByID(ctx context.Context, id string) (*entity.AnimalGroup, error) {
	g, err := uc.groups.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	return g, nil
}

// List lista grupos con filtros conjuntivos y totales agregados.
func (uc *GroupUseCase) List(ctx context.Context, f repository.GroupFilter) (*dto.GroupListResponse, error) {
	groups, err := uc.groups.List(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := &dto.GroupListResponse{Groups: make([]dto.GroupResponse, 0, len(groups))}
	for _, g := range groups {
		resp.Groups = append(resp.Groups, ToGroupResponse(g))
		resp.TotalMales += g.Males
		resp.TotalFemales += g.Females
	}
	resp.Total = resp.TotalMales + resp.TotalFemales
	return resp, nil
}

// Delete elimina un grupo sin movimientos; con movimientos devuelve
// ErrProtected (el historial nunca se pierde).
func (uc *GroupUseCase) Delete(ctx context.Context, id string) error {
	return uc.groups.Delete(ctx, id)
}

// ToGroupResponse convierte la entidad al DTO de respuesta.
func ToGroupResponse(g *entity.AnimalGroup) dto.GroupResponse {
	return dto.GroupResponse{
		ID:         g.ID,
		SpeciesID:  g.SpeciesID,
		StrainID:   g.StrainID,
		CageID:     g.CageID,
		Males:      g.Males,
		Females:    g.Females,
		Total:      g.Total(),
		MinMales:   g.MinMales,
		MinFemales: g.MinFemales,
		Active:     g.Active,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}
