package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
)

// GroupAlertCounts cantidad de grupos bajo mínimo, por campo y combinado.
// La comparación es estrictamente menor: igualar el mínimo no alerta.
type GroupAlertCounts struct {
	BelowMales   int
	BelowFemales int
	BelowAny     int
}

// GroupMovementSum agregado de movimientos por grupo en un rango de fechas.
type GroupMovementSum struct {
	GroupID     string
	SpeciesName string
	CageName    string
	MalesIn     int
	FemalesIn   int
	MalesOut    int
	FemalesOut  int
}

// SupplyMovementSum agregado de movimientos por insumo en un rango de fechas.
type SupplyMovementSum struct {
	SupplyID   string
	SupplyName string
	TotalIn    decimal.Decimal
	TotalOut   decimal.Decimal
}

// ReportRepository proyección de solo lectura sobre la bitácora y los saldos
// para el dashboard y los reportes. Nunca muta estado.
type ReportRepository interface {
	GroupAlerts(ctx context.Context) (GroupAlertCounts, error)
	SuppliesBelowMin(ctx context.Context) (int, error)
	SumGroupMovements(ctx context.Context, from, to *time.Time) ([]GroupMovementSum, error)
	SumSupplyMovements(ctx context.Context, from, to *time.Time) ([]SupplyMovementSum, error)
	RecentGroupMovements(ctx context.Context, n int) ([]*entity.GroupMovement, error)
	RecentSupplyMovements(ctx context.Context, n int) ([]*entity.SupplyMovement, error)
}
