package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
)

// La tabla categoría → motivos es cerrada: ni categorías ni motivos fuera
// de ella, y cada motivo pertenece a exactamente una categoría.
func TestMovementCategory_TablaCerrada(t *testing.T) {
	casos := map[entity.MovementCategory][]entity.MovementReason{
		entity.CategoryIntake:     {entity.ReasonBirth, entity.ReasonPurchase},
		entity.CategoryOutflow:    {entity.ReasonSale, entity.ReasonEuthanasia, entity.ReasonDeath, entity.ReasonProtocol},
		entity.CategoryAdjustment: {entity.ReasonAdjustPositive, entity.ReasonAdjustNegative},
		entity.CategoryTransfer:   {entity.ReasonTransfer},
	}

	for cat, expected := range casos {
		assert.True(t, cat.Valid(), "la categoría %s debe ser válida", cat)
		assert.ElementsMatch(t, expected, cat.Reasons(), "motivos de %s", cat)
		for _, r := range expected {
			assert.True(t, cat.Allows(r), "%s debe permitir %s", cat, r)
		}
	}

	assert.False(t, entity.MovementCategory("VENTA").Valid(), "un motivo no es categoría")
	assert.False(t, entity.MovementCategory("").Valid())
	assert.False(t, entity.CategoryIntake.Allows(entity.ReasonSale),
		"VENTA no corresponde a INGRESO")
	assert.False(t, entity.ValidReason(entity.MovementReason("ROBO")),
		"motivo fuera de la tabla")
}

func TestGroupMovement_Subtracts(t *testing.T) {
	casos := []struct {
		categoria entity.MovementCategory
		motivo    entity.MovementReason
		resta     bool
	}{
		{entity.CategoryIntake, entity.ReasonBirth, false},
		{entity.CategoryIntake, entity.ReasonPurchase, false},
		{entity.CategoryOutflow, entity.ReasonSale, true},
		{entity.CategoryOutflow, entity.ReasonEuthanasia, true},
		{entity.CategoryTransfer, entity.ReasonTransfer, true},
		{entity.CategoryAdjustment, entity.ReasonAdjustPositive, false},
		{entity.CategoryAdjustment, entity.ReasonAdjustNegative, true},
	}
	for _, c := range casos {
		m := &entity.GroupMovement{Category: c.categoria, Reason: c.motivo}
		assert.Equal(t, c.resta, m.Subtracts(), "%s/%s", c.categoria, c.motivo)
	}
}

// La alerta de mínimos es estrictamente menor: quedar exactamente en el
// mínimo no dispara alerta.
func TestAnimalGroup_BelowMin_EstrictamenteMenor(t *testing.T) {
	g := &entity.AnimalGroup{Males: 2, Females: 1, MinMales: 2, MinFemales: 2}

	assert.False(t, g.BelowMinMales(), "2 machos con mínimo 2 no alerta")
	assert.True(t, g.BelowMinFemales(), "1 hembra con mínimo 2 alerta")

	g.Males = 1
	assert.True(t, g.BelowMinMales(), "1 macho con mínimo 2 alerta")
}
