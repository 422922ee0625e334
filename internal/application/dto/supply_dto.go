package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplyRequest body para POST /api/supplies.
type CreateSupplyRequest struct {
	Name       string          `json:"name"`
	CategoryID string          `json:"category_id"`
	Unit       string          `json:"unit"`
	MinStock   decimal.Decimal `json:"min_stock"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// UpdateSupplyRequest body para PUT /api/supplies/:id. El stock actual no se
// edita por aquí: solo lo mutan los movimientos.
type UpdateSupplyRequest struct {
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	MinStock  decimal.Decimal `json:"min_stock"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Active    bool            `json:"active"`
}

// SupplyResponse representación de un insumo.
type SupplyResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CategoryID   string          `json:"category_id"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinStock     decimal.Decimal `json:"min_stock"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Active       bool            `json:"active"`
	BelowMin     bool            `json:"below_min"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RegisterSupplyMovementRequest body para POST /api/supplies/:id/movements.
type RegisterSupplyMovementRequest struct {
	Type     string          `json:"type"`
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason,omitempty"`
}

// SupplyMovementResponse representación de un movimiento de insumo.
type SupplyMovementResponse struct {
	ID        string          `json:"id"`
	SupplyID  string          `json:"supply_id"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason,omitempty"`
	Date      time.Time       `json:"date"`
	CreatedBy *string         `json:"created_by,omitempty"`
}

// CreateSupplyCategoryRequest body para POST /api/supply-categories.
type CreateSupplyCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
