package movements

import (
	"context"
	"time"

	"github.com/jhoicas/Bioterio-api/internal/domain"
	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
	"github.com/jhoicas/Bioterio-api/internal/domain/repository"
)

// RegisterGroupMovementUseCase registra movimientos de grupos animales de
// forma transaccional (INGRESO, SALIDA, AJUSTE, TRASLADO) con bloqueo de
// fila (SELECT FOR UPDATE) y Commit/Rollback. El saldo y el movimiento se
// persisten como una sola unidad: nunca existe un movimiento sin su efecto.
type RegisterGroupMovementUseCase struct {
	tx        TxRunner
	groups    repository.AnimalGroupRepository
	cages     repository.CageRepository
	protocols repository.ProtocolRepository
}

// NewRegisterGroupMovementUseCase construye el caso de uso.
func NewRegisterGroupMovementUseCase(
	tx TxRunner,
	groups repository.AnimalGroupRepository,
	cages repository.CageRepository,
	protocols repository.ProtocolRepository,
) *RegisterGroupMovementUseCase {
	return &RegisterGroupMovementUseCase{tx: tx, groups: groups, cages: cages, protocols: protocols}
}

// GroupMovementInput entrada para registrar un movimiento de grupo.
// ProtocolID solo aplica con motivo PROTOCOLO; DestinationCageID solo con
// categoría TRASLADO.
type GroupMovementInput struct {
	GroupID           string
	Category          entity.MovementCategory
	Reason            entity.MovementReason
	Males             int
	Females           int
	ProtocolID        *string
	DestinationCageID *string
	Note              string
	UserID            string
}

// Register valida el movimiento, abre la transacción, re-valida contra el
// estado bloqueado y aplica el efecto según la categoría. Devuelve
// domain.ValidationErrors con todas las violaciones, o errores de
// integridad referencial (ErrNotFound) cuando un recurso no existe.
func (uc *RegisterGroupMovementUseCase) Register(ctx context.Context, in GroupMovementInput) (*entity.GroupMovement, error) {
	group, err := uc.groups.GetByID(ctx, in.GroupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, domain.ErrNotFound
	}

	// Integridad referencial: el protocolo y la jaula destino deben existir.
	// Su pertinencia (requerido/prohibido) la decide el validador.
	var protocol *entity.Protocol
	if in.ProtocolID != nil {
		protocol, err = uc.protocols.GetByID(ctx, *in.ProtocolID)
		if err != nil {
			return nil, err
		}
		if protocol == nil {
			return nil, domain.ErrNotFound
		}
	}
	if in.DestinationCageID != nil {
		cage, err := uc.cages.GetByID(ctx, *in.DestinationCageID)
		if err != nil {
			return nil, err
		}
		if cage == nil {
			return nil, domain.ErrNotFound
		}
	}

	createdBy := (*string)(nil)
	if in.UserID != "" {
		createdBy = &in.UserID
	}
	mov := &entity.GroupMovement{
		GroupID:           in.GroupID,
		Category:          in.Category,
		Reason:            in.Reason,
		Males:             in.Males,
		Females:           in.Females,
		ProtocolID:        in.ProtocolID,
		DestinationCageID: in.DestinationCageID,
		Note:              in.Note,
		Date:              time.Now(),
		CreatedBy:         createdBy,
	}

	// Validación previa sin bloqueo: rechaza temprano sin abrir transacción.
	if errs := ValidateGroupMovement(mov, group, protocol); len(errs) > 0 {
		return nil, errs
	}

	err = uc.tx.Run(ctx, func(
		groups repository.AnimalGroupRepository,
		movs repository.GroupMovementRepository,
	) error {
		if mov.Category == entity.CategoryTransfer {
			return uc.applyTransfer(ctx, groups, movs, group, mov, protocol)
		}

		locked, err := groups.GetForUpdate(ctx, mov.GroupID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		// Re-validar contra el estado recién bloqueado: la lectura previa
		// puede haber quedado obsoleta por un movimiento concurrente.
		if errs := ValidateGroupMovement(mov, locked, protocol); len(errs) > 0 {
			return errs
		}

		if mov.Subtracts() {
			locked.Males -= mov.Males
			locked.Females -= mov.Females
		} else {
			locked.Males += mov.Males
			locked.Females += mov.Females
		}
		if err := groups.UpdateCounts(ctx, locked); err != nil {
			return err
		}
		return movs.Create(ctx, mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// applyTransfer resta del grupo origen y suma al grupo destino en la misma
// transacción. El destino se busca o crea por (especie, cepa, jaula destino)
// bajo bloqueo; un destino nuevo arranca con saldos en cero.
//
// Los bloqueos se toman en orden ascendente de ID de grupo para que dos
// traslados concurrentes en direcciones opuestas no se interbloqueen.
func (uc *RegisterGroupMovementUseCase) applyTransfer(
	ctx context.Context,
	groups repository.AnimalGroupRepository,
	movs repository.GroupMovementRepository,
	group *entity.AnimalGroup,
	mov *entity.GroupMovement,
	protocol *entity.Protocol,
) error {
	destCageID := *mov.DestinationCageID

	// La identidad (especie, cepa, jaula) de un grupo es inmutable, por lo
	// que la lectura previa sin bloqueo sirve para resolver el destino.
	peek, err := groups.FindByKey(ctx, group.SpeciesID, group.StrainID, destCageID)
	if err != nil {
		return err
	}

	var source, dest *entity.AnimalGroup
	if peek != nil && peek.ID < group.ID {
		dest, err = groups.GetForUpdate(ctx, peek.ID)
		if err != nil {
			return err
		}
		source, err = groups.GetForUpdate(ctx, group.ID)
		if err != nil {
			return err
		}
		if source == nil {
			return domain.ErrNotFound
		}
	} else {
		source, err = groups.GetForUpdate(ctx, group.ID)
		if err != nil {
			return err
		}
		if source == nil {
			return domain.ErrNotFound
		}
		dest, _, err = groups.FindOrCreateForUpdate(ctx, group.SpeciesID, group.StrainID, destCageID)
		if err != nil {
			return err
		}
	}
	if dest == nil {
		// El destino visto antes del bloqueo desapareció en la carrera.
		return domain.ErrConflict
	}

	if errs := ValidateGroupMovement(mov, source, protocol); len(errs) > 0 {
		return errs
	}

	source.Males -= mov.Males
	source.Females -= mov.Females
	dest.Males += mov.Males
	dest.Females += mov.Females

	if err := groups.UpdateCounts(ctx, source); err != nil {
		return err
	}
	if err := groups.UpdateCounts(ctx, dest); err != nil {
		return err
	}
	return movs.Create(ctx, mov)
}
