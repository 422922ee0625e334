package repository

import (
	"context"

	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
)

// ProtocolRepository puerto de persistencia para protocolos de investigación.
type ProtocolRepository interface {
	Create(ctx context.Context, p *entity.Protocol) error
	GetByID(ctx context.Context, id string) (*entity.Protocol, error)
	// Update solo aplica sobre borradores; el caso de uso lo garantiza.
	Update(ctx context.Context, p *entity.Protocol) error
	UpdateState(ctx context.Context, id, state, rejectionNote string) error
	List(ctx context.Context, state string, limit, offset int) ([]*entity.Protocol, error)
}
