package movements

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bioterio-api/internal/domain"
	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
)

// ValidateSupplyMovement valida un movimiento de insumo contra el estado
// actual. Función pura, acumula todas las violaciones.
// ENTRADA no exige suficiencia; SALIDA exige stock >= cantidad; AJUSTE se
// comporta como suma incondicional (asimetría heredada del diseño actual:
// no existe ajuste negativo para insumos).
func ValidateSupplyMovement(mov *entity.SupplyMovement, supply *entity.Supply) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if mov.Quantity.IsNegative() {
		errs = append(errs, domain.ValidationError{
			Field: "cantidad", Code: domain.CodeNegativeQty,
			Message: "la cantidad debe ser no negativa",
		})
	} else if mov.Quantity.IsZero() {
		errs = append(errs, domain.ValidationError{
			Field: "cantidad", Code: domain.CodeEmptyMovement,
			Message: "la cantidad debe ser positiva",
		})
	}

	if !mov.Type.Valid() {
		errs = append(errs, domain.ValidationError{
			Field: "tipo", Code: domain.CodeInvalidType,
			Message: "tipo de movimiento desconocido",
		})
	}

	if supply != nil && mov.Type == entity.SupplyExit {
		if supply.CurrentStock.LessThan(mov.Quantity) {
			errs = append(errs, domain.ValidationError{
				Field: "cantidad", Code: domain.CodeInsufficientStock,
				Message: "stock insuficiente para realizar la salida",
			})
		}
	}

	// Re-chequeo defensivo del estado resultante
	if supply != nil && mov.Type == entity.SupplyExit && !errs.Has(domain.CodeInsufficientStock) {
		if supply.CurrentStock.Sub(mov.Quantity).LessThan(decimal.Zero) {
			errs = append(errs, domain.ValidationError{
				Field: "cantidad", Code: domain.CodeNegativeResult,
				Message: "el stock quedaría negativo",
			})
		}
	}

	return errs
}
