package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bioterio-api/internal/application/dto"
	"github.com/jhoicas/Bioterio-api/internal/domain"
	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
	"github.com/jhoicas/Bioterio-api/internal/domain/repository"
)

// SupplyUseCase CRUD de insumos y sus categorías. El stock actual queda
// fuera: solo lo mutan los movimientos.
type SupplyUseCase struct {
	supplies   repository.SupplyRepository
	categories repository.SupplyCategoryRepository
}

// NewSupplyUseCase construye el caso de uso.
func NewSupplyUseCase(supplies repository.SupplyRepository, categories repository.SupplyCategoryRepository) *SupplyUseCase {
	return &SupplyUseCase{supplies: supplies, categories: categories}
}

// Create crea un insumo con stock inicial en cero.
func (uc *SupplyUseCase) Create(ctx context.Context, in dto.CreateSupplyRequest) (*entity.Supply, error) {
	name := strings.TrimSpace(in.Name)
	unit := entity.SupplyUnit(in.Unit)
	if name == "" || in.CategoryID == "" || !unit.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock.IsNegative() || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}

	s := &entity.Supply{
		Name:         name,
		CategoryID:   in.CategoryID,
		Unit:         unit,
		CurrentStock: decimal.Zero,
		MinStock:     in.MinStock.Round(3),
		UnitPrice:    in.UnitPrice.Round(2),
		Active:       true,
	}
	if err := uc.supplies.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Update actualiza los atributos editables de un insumo.
func (uc *SupplyUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplyRequest) (*entity.Supply, error) {
	unit := entity.SupplyUnit(in.Unit)
	if strings.TrimSpace(in.Name) == "" || !unit.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock.IsNegative() || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.supplies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Name = strings.TrimSpace(in.Name)
	s.Unit = unit
	s.MinStock = in.MinStock.Round(3)
	s.UnitPrice = in.UnitPrice.Round(2)
	s.Active = in.Active
	if err := uc.supplies.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetByID devuelve un insumo o ErrNotFound.
func (uc *SupplyUseCase) GetByID(ctx context.Context, id string) (*entity.Supply, error) {
	s, err := uc.supplies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// List lista insumos con filtros conjuntivos.
func (uc *SupplyUseCase) List(ctx context.Context, f repository.SupplyFilter) ([]dto.SupplyResponse, error) {
	supplies, err := uc.supplies.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplyResponse, 0, len(supplies))
	for _, s := range supplies {
		out = append(out, ToSupplyResponse(s))
	}
	return out, nil
}

// Delete elimina un insumo sin movimientos; con movimientos devuelve ErrProtected.
func (uc *SupplyUseCase) Delete(ctx context.Context, id string) error {
	return uc.supplies.Delete(ctx, id)
}

// CreateCategory crea una categoría de insumos.
func (uc *SupplyUseCase) CreateCategory(ctx context.Context, in dto.CreateSupplyCategoryRequest) (*entity.SupplyCategory, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.SupplyCategory{Name: strings.TrimSpace(in.Name), Description: in.Description}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCategories lista las categorías de insumos.
func (uc *SupplyUseCase) ListCategories(ctx context.Context) ([]*entity.SupplyCategory, error) {
	return uc.categories.List(ctx)
}

// ToSupplyResponse convierte la entidad al DTO de respuesta.
func ToSupplyResponse(s *entity.Supply) dto.SupplyResponse {
	return dto.SupplyResponse{
		ID:           s.ID,
		Name:         s.Name,
		CategoryID:   s.CategoryID,
		Unit:         string(s.Unit),
		CurrentStock: s.CurrentStock,
		MinStock:     s.MinStock,
		UnitPrice:    s.UnitPrice,
		Active:       s.Active,
		BelowMin:     s.BelowMin(),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
