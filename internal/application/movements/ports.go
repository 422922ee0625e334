package movements

import (
	"context"

	"github.com/jhoicas/Bioterio-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización de saldos y
// la inserción del movimiento sean una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		groups repository.AnimalGroupRepository,
		movs repository.GroupMovementRepository,
	) error) error

	RunSupply(ctx context.Context, fn func(
		supplies repository.SupplyRepository,
		movs repository.SupplyMovementRepository,
	) error) error
}
