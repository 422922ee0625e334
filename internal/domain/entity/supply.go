package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplyUnit unidad de medida de un insumo.
type SupplyUnit string

const (
	UnitPiece     SupplyUnit = "unid"
	UnitKilogram  SupplyUnit = "kg"
	UnitGram      SupplyUnit = "g"
	UnitLiter     SupplyUnit = "l"
	UnitMilliliter SupplyUnit = "ml"
)

// Valid indica si la unidad pertenece al conjunto permitido.
func (u SupplyUnit) Valid() bool {
	switch u {
	case UnitPiece, UnitKilogram, UnitGram, UnitLiter, UnitMilliliter:
		return true
	}
	return false
}

// SupplyCategory categoría de insumos (alimento, fármacos, limpieza...).
type SupplyCategory struct {
	ID          string
	Name        string // único
	Description string
	CreatedAt   time.Time
}

// Supply insumo consumible del bioterio. CurrentStock usa 3 decimales,
// UnitPrice 2; ambos nunca negativos.
type Supply struct {
	ID           string
	Name         string // único
	CategoryID   string
	Unit         SupplyUnit
	CurrentStock decimal.Decimal
	MinStock     decimal.Decimal
	UnitPrice    decimal.Decimal
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BelowMin stock actual bajo el mínimo (estrictamente menor).
func (s *Supply) BelowMin() bool {
	return s.CurrentStock.LessThan(s.MinStock)
}
