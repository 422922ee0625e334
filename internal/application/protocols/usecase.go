package protocols

import (
	"context"
	"strings"

	"github.com/jhoicas/Bioterio-api/internal/domain"
	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
	"github.com/jhoicas/Bioterio-api/internal/domain/repository"
)

// ProtocolUseCase flujo de aprobación de protocolos de investigación:
// borrador → enviado → aprobado/rechazado. Quién puede aprobar es decisión
// de la capa de borde (RBAC); aquí solo se cuidan las transiciones.
type ProtocolUseCase struct {
	repo repository.ProtocolRepository
}

// NewProtocolUseCase construye el caso de uso.
func NewProtocolUseCase(repo repository.ProtocolRepository) *ProtocolUseCase {
	return &ProtocolUseCase{repo: repo}
}

// CreateDraft crea un protocolo en estado borrador.
func (uc *ProtocolUseCase) CreateDraft(ctx context.Context, p *entity.Protocol) (*entity.Protocol, error) {
	if strings.TrimSpace(p.ResearcherName) == "" || strings.TrimSpace(p.Justification) == "" {
		return nil, domain.ErrInvalidInput
	}
	p.State = entity.ProtocolDraft
	p.TotalCount = p.GroupCount * p.PerGroupCount
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateDraft actualiza un protocolo; solo se permite en estado borrador.
func (uc *ProtocolUseCase) UpdateDraft(ctx context.Context, p *entity.Protocol) error {
	current, err := uc.repo.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	if current.State != entity.ProtocolDraft {
		return domain.ErrInvalidState
	}
	p.State = entity.ProtocolDraft
	p.TotalCount = p.GroupCount * p.PerGroupCount
	return uc.repo.Update(ctx, p)
}

// Submit envía un borrador a revisión.
func (uc *ProtocolUseCase) Submit(ctx context.Context, id string) error {
	return uc.transition(ctx, id, entity.ProtocolSent, "")
}

// Approve aprueba un protocolo enviado.
func (uc *ProtocolUseCase) Approve(ctx context.Context, id string) error {
	return uc.transition(ctx, id, entity.ProtocolApproved, "")
}

// Reject rechaza un protocolo enviado; la observación es obligatoria.
func (uc *ProtocolUseCase) Reject(ctx context.Context, id, note string) error {
	if strings.TrimSpace(note) == "" {
		return domain.ErrInvalidInput
	}
	return uc.transition(ctx, id, entity.ProtocolRejected, note)
}

func (uc *ProtocolUseCase) transition(ctx context.Context, id, to, note string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if !p.CanTransition(to) {
		return domain.ErrInvalidState
	}
	return uc.repo.UpdateState(ctx, id, to, note)
}

// GetByID devuelve un protocolo o ErrNotFound.
func (uc *ProtocolUseCase) GetByID(ctx context.Context, id string) (*entity.Protocol, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// List lista protocolos, opcionalmente filtrados por estado.
func (uc *ProtocolUseCase) List(ctx context.Context, state string, limit, offset int) ([]*entity.Protocol, error) {
	return uc.repo.List(ctx, state, limit, offset)
}

// IsApproved predicado que consume el motor de movimientos (frontera del
// flujo de protocolos): false si el protocolo no existe o no está aprobado.
func (uc *ProtocolUseCase) IsApproved(ctx context.Context, id string) (bool, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return p != nil && p.IsApproved(), nil
}
