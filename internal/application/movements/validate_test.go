package movements_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bioterio-api/internal/application/movements"
	"github.com/jhoicas/Bioterio-api/internal/domain"
	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
)

func str(s string) *string { return &s }

func grupoBase() *entity.AnimalGroup {
	return &entity.AnimalGroup{
		ID:        "g1",
		SpeciesID: "sp1",
		CageID:    "jaula-a",
		Males:     10,
		Females:   8,
		Active:    true,
	}
}

func TestValidate_IngresoValido_SinErrores(t *testing.T) {
	mov := &entity.GroupMovement{
		GroupID: "g1", Category: entity.CategoryIntake, Reason: entity.ReasonBirth,
		Males: 3, Females: 2,
	}
	errs := movements.ValidateGroupMovement(mov, grupoBase(), nil)
	assert.Empty(t, errs)
}

func TestValidate_CantidadesNegativasYVacias(t *testing.T) {
	mov := &entity.GroupMovement{
		GroupID: "g1", Category: entity.CategoryIntake, Reason: entity.ReasonBirth,
		Males: -1, Females: 0,
	}
	errs := movements.ValidateGroupMovement(mov, grupoBase(), nil)
	assert.True(t, errs.Has(domain.CodeNegativeQty), "machos negativos")

	mov = &entity.GroupMovement{
		GroupID: "g1", Category: entity.CategoryIntake, Reason: entity.ReasonBirth,
	}
	errs = movements.ValidateGroupMovement(mov, grupoBase(), nil)
	assert.True(t, errs.Has(domain.CodeEmptyMovement), "movimiento sin cantidades")
}

func TestValidate_MotivoDebeCorresponderACategoria(t *testing.T) {
	// VENTA es motivo de SALIDA, no de INGRESO
	mov := &entity.GroupMovement{
		GroupID: "g1", Category: entity.CategoryIntake, Reason: entity.ReasonSale,
		Males: 1,
	}
	errs := movements.ValidateGroupMovement(mov, grupoBase(), nil)
	assert.True(t, errs.Has(domain.CodeReasonMismatch))

	mov.Category = entity.MovementCategory("REGALO")
	errs = movements.ValidateGroupMovement(mov, grupoBase(), nil)
	assert.True(t, errs.Has(domain.CodeInvalidCategory))

	mov.Category = entity.CategoryOutflow
	mov.Reason = entity.MovementReason("ROBO")
	errs = movements.ValidateGroupMovement(mov, grupoBase(), nil)
	assert.True(t, errs.Has(domain.CodeInvalidReason))
}

func TestValidate_ProtocoloRequeridoSoloConMotivoProtocolo(t *testing.T) {
	// Motivo PROTOCOLO sin referencia → PROTOCOL_REQUIRED
	mov := &entity.GroupMovement{
		GroupID: "g1", Category: entity.CategoryOutflow, Reason: entity.ReasonProtocol,
		Males: 1,
	}
	errs := movements.ValidateGroupMovement(mov, grupoBase(), nil)
	assert.True(t, errs.Has(domain.CodeProtocolRequired))

	// Protocolo referenciado pero no aprobado → PROTOCOL_NOT_APPROVED
	mov.ProtocolID = str("p1")
	enviado := &entity.Protocol{ID: "p1", State: entity.ProtocolSent}
	errs = movements.ValidateGroupMovement(mov, grupoBase(), enviado)
	assert.True(t, errs.Has(domain.CodeProtocolNotApproved))

	// Protocolo aprobado → sin errores
	aprobado := &entity.Protocol{ID: "p1", State: entity.ProtocolApproved}
	errs = movements.ValidateGroupMovement(mov, grupoBase(), aprobado)
	assert.Empty(t, errs)

	// Protocolo en un motivo que no lo admite → PROTOCOL_NOT_ALLOWED
	mov.Reason = entity.ReasonSale
	errs = movements.ValidateGroupMovement(mov, grupoBase(), aprobado)
	assert.True(t, errs.Has(domain.CodeProtocolNotAllowed))
}

func TestValidate_JaulaDestinoSoloEnTraslados(t *testing.T) {
	mov := &entity.GroupMovement{
		GroupID: "g1", Category: entity.CategoryTransfer, Reason: entity.ReasonTransfer,
		Males: 2,
	}
	errs := movements.ValidateGroupMovement(mov, grupoBase(), nil)
	assert.True(t, errs.Has(domain.CodeDestRequired), "traslado sin destino")

	mov.DestinationCageID = str("jaula-a") // misma jaula origen
	errs = movements.ValidateGroupMovement(mov, grupoBase(), nil)
	assert.True(t, errs.Has(domain.CodeSameCage))

	mov.DestinationCageID = str("jaula-b")
	errs = movements.ValidateGroupMovement(mov, grupoBase(), nil)
	assert.Empty(t, errs)

	salida := &entity.GroupMovement{
		GroupID: "g1", Category: entity.CategoryOutflow, Reason: entity.ReasonSale,
		Males: 1, DestinationCageID: str("jaula-b"),
	}
	errs = movements.ValidateGroupMovement(salida, grupoBase(), nil)
	assert.True(t, errs.Has(domain.CodeDestNotAllowed), "solo traslados llevan destino")
}

func TestValidate_SuficienciaPorCampo(t *testing.T) {
	mov := &entity.GroupMovement{
		GroupID: "g1", Category: entity.CategoryOutflow, Reason: entity.ReasonSale,
		Males: 11, Females: 9, // grupo tiene 10 y 8
	}
	errs := movements.ValidateGroupMovement(mov, grupoBase(), nil)
	require.Len(t, errs, 2, "una violación por cada campo insuficiente")
	assert.True(t, errs.Has(domain.CodeInsufficientStock))
	assert.True(t, errs.HasField("cantidad_machos"))
	assert.True(t, errs.HasField("cantidad_hembras"))

	// Un ingreso nunca exige suficiencia
	ingreso := &entity.GroupMovement{
		GroupID: "g1", Category: entity.CategoryIntake, Reason: entity.ReasonPurchase,
		Males: 1000,
	}
	assert.Empty(t, movements.ValidateGroupMovement(ingreso, grupoBase(), nil))
}

// Se acumulan todas las violaciones a la vez, en orden determinista: validar
// dos veces el mismo movimiento inválido produce exactamente el mismo
// conjunto (rechazo idempotente).
func TestValidate_AcumulaTodasLasViolaciones_Idempotente(t *testing.T) {
	mov := &entity.GroupMovement{
		GroupID:  "g1",
		Category: entity.CategoryOutflow,
		Reason:   entity.ReasonBirth, // motivo de INGRESO
		Males:    -1,
		Females:  -2,
	}
	primera := movements.ValidateGroupMovement(mov, grupoBase(), nil)
	segunda := movements.ValidateGroupMovement(mov, grupoBase(), nil)

	require.Len(t, primera, 3, "dos cantidades negativas más el motivo cruzado")
	assert.True(t, primera.Has(domain.CodeNegativeQty))
	assert.True(t, primera.Has(domain.CodeReasonMismatch))
	assert.Equal(t, primera, segunda, "mismo movimiento, mismo conjunto de errores")
}
