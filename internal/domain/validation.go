package domain

import "strings"

// Códigos de error de validación de movimientos. Estables: la UI y los tests
// dependen de ellos, y validar dos veces el mismo movimiento inválido debe
// producir exactamente el mismo conjunto.
const (
	CodeNegativeQty         = "NEGATIVE_QTY"
	CodeEmptyMovement       = "EMPTY_MOVEMENT"
	CodeInvalidCategory     = "INVALID_CATEGORY"
	CodeInvalidReason       = "INVALID_REASON"
	CodeReasonMismatch      = "REASON_MISMATCH"
	CodeProtocolRequired    = "PROTOCOL_REQUIRED"
	CodeProtocolNotAllowed  = "PROTOCOL_NOT_ALLOWED"
	CodeProtocolNotApproved = "PROTOCOL_NOT_APPROVED"
	CodeDestRequired        = "DESTINATION_REQUIRED"
	CodeDestNotAllowed      = "DESTINATION_NOT_ALLOWED"
	CodeSameCage            = "SAME_CAGE"
	CodeInsufficientStock   = "INSUFFICIENT_STOCK"
	CodeNegativeResult      = "NEGATIVE_RESULT"
	CodeInvalidType         = "INVALID_TYPE"
)

// ValidationError una violación puntual, ligada a un campo del movimiento.
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrors conjunto de violaciones. El validador acumula todas las
// reglas incumplidas (no corta en la primera) para que el caller pueda
// mostrarlas juntas.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Message
	}
	return "validación: " + strings.Join(msgs, "; ")
}

// Has indica si el conjunto contiene una violación con el código dado.
func (e ValidationErrors) Has(code string) bool {
	for _, v := range e {
		if v.Code == code {
			return true
		}
	}
	return false
}

// HasField indica si el conjunto contiene una violación sobre el campo dado.
func (e ValidationErrors) HasField(field string) bool {
	for _, v := range e {
		if v.Field == field {
			return true
		}
	}
	return false
}
