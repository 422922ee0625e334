package dto

import "github.com/shopspring/decimal"

// DashboardResponse KPIs de la página principal: grupos e insumos bajo
// mínimo y los últimos movimientos de cada ledger.
type DashboardResponse struct {
	GroupsBelowMinMales   int `json:"groups_below_min_males"`
	GroupsBelowMinFemales int `json:"groups_below_min_females"`
	GroupsBelowMinAny     int `json:"groups_below_min_any"`
	SuppliesBelowMin      int `json:"supplies_below_min"`

	RecentGroupMovements  []GroupMovementResponse  `json:"recent_group_movements"`
	RecentSupplyMovements []SupplyMovementResponse `json:"recent_supply_movements"`
}

// GroupMovementSumDTO agregado de movimientos por grupo en un rango.
type GroupMovementSumDTO struct {
	GroupID     string `json:"group_id"`
	SpeciesName string `json:"species_name"`
	CageName    string `json:"cage_name"`
	MalesIn     int    `json:"males_in"`
	FemalesIn   int    `json:"females_in"`
	MalesOut    int    `json:"males_out"`
	FemalesOut  int    `json:"females_out"`
	NetMales    int    `json:"net_males"`
	NetFemales  int    `json:"net_females"`
}

// SupplyMovementSumDTO agregado de movimientos por insumo en un rango.
type SupplyMovementSumDTO struct {
	SupplyID   string          `json:"supply_id"`
	SupplyName string          `json:"supply_name"`
	TotalIn    decimal.Decimal `json:"total_in"`
	TotalOut   decimal.Decimal `json:"total_out"`
	Net        decimal.Decimal `json:"net"`
}
