package movements_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bioterio-api/internal/application/movements"
	"github.com/jhoicas/Bioterio-api/internal/domain"
	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
)

type fixture struct {
	groups    *fakeGroupRepo
	movs      *fakeGroupMovRepo
	cages     *fakeCageRepo
	protocols *fakeProtocolRepo
	uc        *movements.RegisterGroupMovementUseCase
}

func newFixture(groups ...*entity.AnimalGroup) *fixture {
	f := &fixture{
		groups:    newFakeGroupRepo(groups...),
		movs:      &fakeGroupMovRepo{},
		cages:     newFakeCageRepo("jaula-a", "jaula-b", "jaula-c"),
		protocols: newFakeProtocolRepo(),
	}
	tx := &fakeTxRunner{groups: f.groups, groupMovs: f.movs}
	f.uc = movements.NewRegisterGroupMovementUseCase(tx, f.groups, f.cages, f.protocols)
	return f
}

func TestRegister_SalidaDescuentaYRegistra(t *testing.T) {
	f := newFixture(&entity.AnimalGroup{
		ID: "g1", SpeciesID: "sp1", CageID: "jaula-a",
		Males: 10, Females: 8, Active: true,
	})

	antes := time.Now()
	mov, err := f.uc.Register(context.Background(), movements.GroupMovementInput{
		GroupID: "g1", Category: entity.CategoryOutflow, Reason: entity.ReasonSale,
		Males: 3, Females: 1, Note: "venta lote 7", UserID: "u1",
	})
	require.NoError(t, err)

	g, _ := f.groups.GetByID(context.Background(), "g1")
	assert.Equal(t, 7, g.Males)
	assert.Equal(t, 7, g.Females)

	require.Len(t, f.movs.movs, 1, "exactamente un registro en la bitácora")
	assert.Equal(t, mov.ID, f.movs.movs[0].ID)
	assert.False(t, mov.Date.Before(antes), "la fecha la asigna el servidor")
	require.NotNil(t, mov.CreatedBy)
	assert.Equal(t, "u1", *mov.CreatedBy)
}

// Quedar exactamente en el mínimo no dispara alerta (comparación estricta).
func TestRegister_SalidaHastaElMinimo_NoAlerta(t *testing.T) {
	f := newFixture(&entity.AnimalGroup{
		ID: "g1", SpeciesID: "sp1", CageID: "jaula-a",
		Males: 5, Females: 5, MinMales: 2, MinFemales: 2, Active: true,
	})

	_, err := f.uc.Register(context.Background(), movements.GroupMovementInput{
		GroupID: "g1", Category: entity.CategoryOutflow, Reason: entity.ReasonEuthanasia,
		Males: 3, Females: 2,
	})
	require.NoError(t, err)

	g, _ := f.groups.GetByID(context.Background(), "g1")
	assert.Equal(t, 2, g.Males)
	assert.Equal(t, 3, g.Females)
	assert.False(t, g.BelowMinMales(), "2 machos con mínimo 2 no alerta")
	assert.False(t, g.BelowMinFemales())
}

// Un rechazo no deja rastro: ni saldos tocados ni fila en la bitácora.
func TestRegister_RechazoEsAtomico(t *testing.T) {
	f := newFixture(&entity.AnimalGroup{
		ID: "g1", SpeciesID: "sp1", CageID: "jaula-a",
		Males: 2, Females: 2, Active: true,
	})

	_, err := f.uc.Register(context.Background(), movements.GroupMovementInput{
		GroupID: "g1", Category: entity.CategoryOutflow, Reason: entity.ReasonSale,
		Males: 5, Females: 0,
	})
	require.Error(t, err)

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has(domain.CodeInsufficientStock))

	g, _ := f.groups.GetByID(context.Background(), "g1")
	assert.Equal(t, 2, g.Males, "el saldo no cambia ante un rechazo")
	assert.Empty(t, f.movs.movs, "la bitácora no registra movimientos rechazados")
}

func TestRegister_GrupoInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Register(context.Background(), movements.GroupMovementInput{
		GroupID: "nope", Category: entity.CategoryIntake, Reason: entity.ReasonBirth, Males: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_TrasladoADestinoNuevo(t *testing.T) {
	f := newFixture(&entity.AnimalGroup{
		ID: "g1", SpeciesID: "sp1", StrainID: str("st1"), CageID: "jaula-a",
		Males: 6, Females: 4, MinMales: 1, MinFemales: 1, Active: true,
	})

	mov, err := f.uc.Register(context.Background(), movements.GroupMovementInput{
		GroupID: "g1", Category: entity.CategoryTransfer, Reason: entity.ReasonTransfer,
		Males: 2, Females: 1, DestinationCageID: str("jaula-b"),
	})
	require.NoError(t, err)

	origen, _ := f.groups.GetByID(context.Background(), "g1")
	assert.Equal(t, 4, origen.Males)
	assert.Equal(t, 3, origen.Females)

	destino, _ := f.groups.FindByKey(context.Background(), "sp1", str("st1"), "jaula-b")
	require.NotNil(t, destino, "el grupo destino se crea si no existe")
	assert.Equal(t, 2, destino.Males)
	assert.Equal(t, 1, destino.Females)
	assert.Equal(t, 0, destino.MinMales, "un destino nuevo arranca con mínimos en cero")
	assert.Equal(t, 0, destino.MinFemales)
	assert.True(t, destino.Active)

	// Un único registro, sobre el grupo origen, con la jaula destino
	require.Len(t, f.movs.movs, 1)
	reg := f.movs.movs[0]
	assert.Equal(t, "g1", reg.GroupID)
	require.NotNil(t, reg.DestinationCageID)
	assert.Equal(t, "jaula-b", *reg.DestinationCageID)
	assert.Equal(t, mov.ID, reg.ID)

	// Conservación: el total global no cambia con un traslado
	assert.Equal(t, 10, origen.Total()+destino.Total())
}

func TestRegister_TrasladoADestinoExistente(t *testing.T) {
	f := newFixture(
		&entity.AnimalGroup{ID: "g1", SpeciesID: "sp1", CageID: "jaula-a", Males: 5, Females: 5, Active: true},
		&entity.AnimalGroup{ID: "g2", SpeciesID: "sp1", CageID: "jaula-b", Males: 1, Females: 0, Active: true},
	)

	_, err := f.uc.Register(context.Background(), movements.GroupMovementInput{
		GroupID: "g1", Category: entity.CategoryTransfer, Reason: entity.ReasonTransfer,
		Males: 2, Females: 3, DestinationCageID: str("jaula-b"),
	})
	require.NoError(t, err)

	origen, _ := f.groups.GetByID(context.Background(), "g1")
	destino, _ := f.groups.GetByID(context.Background(), "g2")
	assert.Equal(t, 3, origen.Males)
	assert.Equal(t, 2, origen.Females)
	assert.Equal(t, 3, destino.Males)
	assert.Equal(t, 3, destino.Females)
}

func TestRegister_TrasladoAMismaJaula(t *testing.T) {
	f := newFixture(&entity.AnimalGroup{
		ID: "g1", SpeciesID: "sp1", CageID: "jaula-a", Males: 5, Females: 5, Active: true,
	})

	_, err := f.uc.Register(context.Background(), movements.GroupMovementInput{
		GroupID: "g1", Category: entity.CategoryTransfer, Reason: entity.ReasonTransfer,
		Males: 1, DestinationCageID: str("jaula-a"),
	})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has(domain.CodeSameCage))
}

func TestRegister_TrasladoAJaulaInexistente(t *testing.T) {
	f := newFixture(&entity.AnimalGroup{
		ID: "g1", SpeciesID: "sp1", CageID: "jaula-a", Males: 5, Females: 5, Active: true,
	})

	_, err := f.uc.Register(context.Background(), movements.GroupMovementInput{
		GroupID: "g1", Category: entity.CategoryTransfer, Reason: entity.ReasonTransfer,
		Males: 1, DestinationCageID: str("jaula-fantasma"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_MotivoProtocolo(t *testing.T) {
	f := newFixture(&entity.AnimalGroup{
		ID: "g1", SpeciesID: "sp1", CageID: "jaula-a", Males: 5, Females: 5, Active: true,
	})
	f.protocols.protocols["p-env"] = &entity.Protocol{ID: "p-env", State: entity.ProtocolSent}
	f.protocols.protocols["p-apr"] = &entity.Protocol{ID: "p-apr", State: entity.ProtocolApproved}

	// Referencia a protocolo inexistente → integridad referencial
	_, err := f.uc.Register(context.Background(), movements.GroupMovementInput{
		GroupID: "g1", Category: entity.CategoryOutflow, Reason: entity.ReasonProtocol,
		Males: 1, ProtocolID: str("p-nope"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Sin referencia → PROTOCOL_REQUIRED
	_, err = f.uc.Register(context.Background(), movements.GroupMovementInput{
		GroupID: "g1", Category: entity.CategoryOutflow, Reason: entity.ReasonProtocol,
		Males: 1,
	})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has(domain.CodeProtocolRequired))

	// Protocolo no aprobado → PROTOCOL_NOT_APPROVED
	_, err = f.uc.Register(context.Background(), movements.GroupMovementInput{
		GroupID: "g1", Category: entity.CategoryOutflow, Reason: entity.ReasonProtocol,
		Males: 1, ProtocolID: str("p-env"),
	})
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has(domain.CodeProtocolNotApproved))

	// Protocolo aprobado → se aplica
	_, err = f.uc.Register(context.Background(), movements.GroupMovementInput{
		GroupID: "g1", Category: entity.CategoryOutflow, Reason: entity.ReasonProtocol,
		Males: 1, ProtocolID: str("p-apr"),
	})
	require.NoError(t, err)
	g, _ := f.groups.GetByID(context.Background(), "g1")
	assert.Equal(t, 4, g.Males)
}

func TestRegister_AjustePositivoYNegativo(t *testing.T) {
	f := newFixture(&entity.AnimalGroup{
		ID: "g1", SpeciesID: "sp1", CageID: "jaula-a", Males: 5, Females: 5, Active: true,
	})

	_, err := f.uc.Register(context.Background(), movements.GroupMovementInput{
		GroupID: "g1", Category: entity.CategoryAdjustment, Reason: entity.ReasonAdjustPositive,
		Males: 2,
	})
	require.NoError(t, err)

	_, err = f.uc.Register(context.Background(), movements.GroupMovementInput{
		GroupID: "g1", Category: entity.CategoryAdjustment, Reason: entity.ReasonAdjustNegative,
		Females: 4,
	})
	require.NoError(t, err)

	g, _ := f.groups.GetByID(context.Background(), "g1")
	assert.Equal(t, 7, g.Males)
	assert.Equal(t, 1, g.Females)
	assert.Len(t, f.movs.movs, 2)
}
