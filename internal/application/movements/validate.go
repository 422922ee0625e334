package movements

import (
	"github.com/jhoicas/Bioterio-api/internal/domain"
	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
)

// ValidateGroupMovement valida un movimiento de grupo contra el estado actual.
// Función pura: evalúa todas las reglas y acumula todas las violaciones (no
// corta en la primera), de modo que validar dos veces el mismo movimiento
// inválido produce el mismo conjunto de errores.
//
// La UI puede pre-filtrar motivos o limpiar campos por comodidad, pero este
// validador es la fuente de verdad y re-aplica cada regla.
func ValidateGroupMovement(mov *entity.GroupMovement, group *entity.AnimalGroup, protocol *entity.Protocol) domain.ValidationErrors {
	var errs domain.ValidationErrors

	// 1) Cantidades no negativas y al menos una positiva
	if mov.Males < 0 {
		errs = append(errs, domain.ValidationError{
			Field: "cantidad_machos", Code: domain.CodeNegativeQty,
			Message: "la cantidad de machos debe ser no negativa",
		})
	}
	if mov.Females < 0 {
		errs = append(errs, domain.ValidationError{
			Field: "cantidad_hembras", Code: domain.CodeNegativeQty,
			Message: "la cantidad de hembras debe ser no negativa",
		})
	}
	if mov.Males == 0 && mov.Females == 0 {
		errs = append(errs, domain.ValidationError{
			Field: "cantidad_machos", Code: domain.CodeEmptyMovement,
			Message: "debe indicar al menos una cantidad (machos o hembras)",
		})
	}

	// 2) Motivo permitido para la categoría (tabla cerrada)
	if !mov.Category.Valid() {
		errs = append(errs, domain.ValidationError{
			Field: "categoria", Code: domain.CodeInvalidCategory,
			Message: "categoría desconocida",
		})
	} else if !entity.ValidReason(mov.Reason) {
		errs = append(errs, domain.ValidationError{
			Field: "motivo", Code: domain.CodeInvalidReason,
			Message: "motivo desconocido",
		})
	} else if !mov.Category.Allows(mov.Reason) {
		errs = append(errs, domain.ValidationError{
			Field: "motivo", Code: domain.CodeReasonMismatch,
			Message: "el motivo no corresponde a la categoría seleccionada",
		})
	}

	// 3) Protocolo requerido sii motivo = PROTOCOLO, y debe estar aprobado
	if mov.Reason == entity.ReasonProtocol {
		if mov.ProtocolID == nil {
			errs = append(errs, domain.ValidationError{
				Field: "protocolo", Code: domain.CodeProtocolRequired,
				Message: "seleccione un protocolo aprobado para el motivo 'PROTOCOLO'",
			})
		} else if protocol != nil && !protocol.IsApproved() {
			errs = append(errs, domain.ValidationError{
				Field: "protocolo", Code: domain.CodeProtocolNotApproved,
				Message: "el protocolo asociado no está aprobado",
			})
		}
	} else if mov.ProtocolID != nil {
		errs = append(errs, domain.ValidationError{
			Field: "protocolo", Code: domain.CodeProtocolNotAllowed,
			Message: "solo puede asociar un protocolo cuando el motivo es 'PROTOCOLO'",
		})
	}

	// 4) Jaula destino requerida sii categoría = TRASLADO, y distinta del origen
	if mov.Category == entity.CategoryTransfer {
		if mov.DestinationCageID == nil {
			errs = append(errs, domain.ValidationError{
				Field: "jaula_destino", Code: domain.CodeDestRequired,
				Message: "debe seleccionar la jaula destino del traslado",
			})
		} else if group != nil && *mov.DestinationCageID == group.CageID {
			errs = append(errs, domain.ValidationError{
				Field: "jaula_destino", Code: domain.CodeSameCage,
				Message: "la jaula destino debe ser diferente a la jaula origen",
			})
		}
	} else if mov.DestinationCageID != nil {
		errs = append(errs, domain.ValidationError{
			Field: "jaula_destino", Code: domain.CodeDestNotAllowed,
			Message: "solo los traslados llevan jaula destino",
		})
	}

	// 5) Suficiencia por campo para categorías que restan
	if group != nil && mov.Subtracts() {
		if group.Males < mov.Males {
			errs = append(errs, domain.ValidationError{
				Field: "cantidad_machos", Code: domain.CodeInsufficientStock,
				Message: "stock de machos insuficiente para el movimiento",
			})
		}
		if group.Females < mov.Females {
			errs = append(errs, domain.ValidationError{
				Field: "cantidad_hembras", Code: domain.CodeInsufficientStock,
				Message: "stock de hembras insuficiente para el movimiento",
			})
		}
	}

	// 6) Re-chequeo del estado resultante: nunca negativo
	if group != nil {
		postMales, postFemales := group.Males, group.Females
		if mov.Subtracts() {
			postMales -= mov.Males
			postFemales -= mov.Females
		} else {
			postMales += mov.Males
			postFemales += mov.Females
		}
		if postMales < 0 && !errs.Has(domain.CodeInsufficientStock) {
			errs = append(errs, domain.ValidationError{
				Field: "cantidad_machos", Code: domain.CodeNegativeResult,
				Message: "el stock de machos quedaría negativo",
			})
		}
		if postFemales < 0 && !errs.Has(domain.CodeInsufficientStock) {
			errs = append(errs, domain.ValidationError{
				Field: "cantidad_hembras", Code: domain.CodeNegativeResult,
				Message: "el stock de hembras quedaría negativo",
			})
		}
	}

	return errs
}
