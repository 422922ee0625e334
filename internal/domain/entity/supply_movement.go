package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de insumo.
type SupplyMovementType string

const (
	SupplyEntry      SupplyMovementType = "ENTRADA"
	SupplyExit       SupplyMovementType = "SALIDA"
	SupplyAdjustment SupplyMovementType = "AJUSTE"
)

// Valid indica si el tipo pertenece al conjunto permitido.
func (t SupplyMovementType) Valid() bool {
	switch t {
	case SupplyEntry, SupplyExit, SupplyAdjustment:
		return true
	}
	return false
}

// SupplyMovement movimiento sobre un insumo. Inmutable una vez aplicado.
// La cantidad es siempre positiva; el tipo determina el signo del efecto.
type SupplyMovement struct {
	ID        string
	SupplyID  string
	Type      SupplyMovementType
	Quantity  decimal.Decimal // > 0, 3 decimales
	Reason    string          // texto libre
	Date      time.Time       // asignada por el servidor
	CreatedBy *string
}
