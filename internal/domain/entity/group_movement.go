package entity

import "time"

// MovementCategory categoría de un movimiento de grupo animal.
type MovementCategory string

const (
	CategoryIntake     MovementCategory = "INGRESO"
	CategoryOutflow    MovementCategory = "SALIDA"
	CategoryAdjustment MovementCategory = "AJUSTE"
	CategoryTransfer   MovementCategory = "TRASLADO"
)

// MovementReason motivo de un movimiento, restringido por categoría.
type MovementReason string

const (
	ReasonBirth          MovementReason = "NACIMIENTO"
	ReasonPurchase       MovementReason = "COMPRA"
	ReasonSale           MovementReason = "VENTA"
	ReasonEuthanasia     MovementReason = "EUTANASIA"
	ReasonDeath          MovementReason = "MUERTE"
	ReasonProtocol       MovementReason = "PROTOCOLO"
	ReasonAdjustPositive MovementReason = "AJUSTE_POSITIVO"
	ReasonAdjustNegative MovementReason = "AJUSTE_NEGATIVO"
	ReasonTransfer       MovementReason = "TRASLADO"
)

// reasonsByCategory tabla cerrada categoría → motivos permitidos.
var reasonsByCategory = map[MovementCategory][]MovementReason{
	CategoryIntake:     {ReasonBirth, ReasonPurchase},
	CategoryOutflow:    {ReasonSale, ReasonEuthanasia, ReasonDeath, ReasonProtocol},
	CategoryAdjustment: {ReasonAdjustPositive, ReasonAdjustNegative},
	CategoryTransfer:   {ReasonTransfer},
}

// Valid indica si la categoría pertenece al conjunto cerrado.
func (c MovementCategory) Valid() bool {
	_, ok := reasonsByCategory[c]
	return ok
}

// Reasons devuelve los motivos permitidos para la categoría.
func (c MovementCategory) Reasons() []MovementReason {
	return reasonsByCategory[c]
}

// Allows indica si el motivo corresponde a la categoría.
func (c MovementCategory) Allows(r MovementReason) bool {
	for _, allowed := range reasonsByCategory[c] {
		if allowed == r {
			return true
		}
	}
	return false
}

// ValidReason indica si el motivo pertenece a alguna categoría.
func ValidReason(r MovementReason) bool {
	for _, reasons := range reasonsByCategory {
		for _, allowed := range reasons {
			if allowed == r {
				return true
			}
		}
	}
	return false
}

// GroupMovement movimiento sobre un grupo animal. Inmutable una vez aplicado;
// una corrección se registra como un movimiento compensatorio nuevo.
type GroupMovement struct {
	ID                string
	GroupID           string // grupo origen
	Category          MovementCategory
	Reason            MovementReason
	Males             int
	Females           int
	ProtocolID        *string // requerido sii motivo = PROTOCOLO
	DestinationCageID *string // requerido sii categoría = TRASLADO
	Note              string
	Date              time.Time // asignada por el servidor
	CreatedBy         *string   // nulo si el usuario fue eliminado
}

// Total cantidad total afectada por el movimiento.
func (m *GroupMovement) Total() int {
	return m.Males + m.Females
}

// Subtracts indica si el movimiento resta del grupo origen.
func (m *GroupMovement) Subtracts() bool {
	switch m.Category {
	case CategoryOutflow, CategoryTransfer:
		return true
	case CategoryAdjustment:
		return m.Reason == ReasonAdjustNegative
	}
	return false
}
