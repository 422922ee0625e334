package reports

import (
	"context"
	"time"

	"github.com/jhoicas/Bioterio-api/internal/application/dto"
	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
	"github.com/jhoicas/Bioterio-api/internal/domain/repository"
)

// Cantidad de movimientos recientes que muestra el dashboard.
const recentMovements = 5

// ReportUseCase agregaciones de solo lectura sobre la bitácora: KPIs del
// dashboard, sumas por entidad en un rango e historiales filtrados.
type ReportUseCase struct {
	reports    repository.ReportRepository
	groupMovs  repository.GroupMovementRepository
	supplyMovs repository.SupplyMovementRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	reports repository.ReportRepository,
	groupMovs repository.GroupMovementRepository,
	supplyMovs repository.SupplyMovementRepository,
) *ReportUseCase {
	return &ReportUseCase{reports: reports, groupMovs: groupMovs, supplyMovs: supplyMovs}
}

// Dashboard arma los KPIs de la página principal: grupos bajo mínimo por
// sexo (comparación estricta), insumos bajo mínimo y últimos movimientos.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	alerts, err := uc.reports.GroupAlerts(ctx)
	if err != nil {
		return nil, err
	}
	suppliesBelow, err := uc.reports.SuppliesBelowMin(ctx)
	if err != nil {
		return nil, err
	}
	recentGroups, err := uc.reports.RecentGroupMovements(ctx, recentMovements)
	if err != nil {
		return nil, err
	}
	recentSupplies, err := uc.reports.RecentSupplyMovements(ctx, recentMovements)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		GroupsBelowMinMales:   alerts.BelowMales,
		GroupsBelowMinFemales: alerts.BelowFemales,
		GroupsBelowMinAny:     alerts.BelowAny,
		SuppliesBelowMin:      suppliesBelow,
		RecentGroupMovements:  make([]dto.GroupMovementResponse, 0, len(recentGroups)),
		RecentSupplyMovements: make([]dto.SupplyMovementResponse, 0, len(recentSupplies)),
	}
	for _, m := range recentGroups {
		resp.RecentGroupMovements = append(resp.RecentGroupMovements, ToGroupMovementResponse(m))
	}
	for _, m := range recentSupplies {
		resp.RecentSupplyMovements = append(resp.RecentSupplyMovements, ToSupplyMovementResponse(m))
	}
	return resp, nil
}

// GroupHistory historial de movimientos de grupos, más reciente primero.
// Todos los filtros son opcionales y se combinan con AND.
func (uc *ReportUseCase) GroupHistory(ctx context.Context, f repository.GroupMovementFilter) ([]dto.GroupMovementResponse, error) {
	movs, err := uc.groupMovs.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GroupMovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, ToGroupMovementResponse(m))
	}
	return out, nil
}

// SupplyHistory historial de movimientos de insumos, más reciente primero.
func (uc *ReportUseCase) SupplyHistory(ctx context.Context, f repository.SupplyMovementFilter) ([]dto.SupplyMovementResponse, error) {
	movs, err := uc.supplyMovs.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplyMovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, ToSupplyMovementResponse(m))
	}
	return out, nil
}

// GroupSums suma de cantidades por grupo en un rango de fechas.
func (uc *ReportUseCase) GroupSums(ctx context.Context, from, to *time.Time) ([]dto.GroupMovementSumDTO, error) {
	sums, err := uc.reports.SumGroupMovements(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GroupMovementSumDTO, 0, len(sums))
	for _, s := range sums {
		out = append(out, dto.GroupMovementSumDTO{
			GroupID:     s.GroupID,
			SpeciesName: s.SpeciesName,
			CageName:    s.CageName,
			MalesIn:     s.MalesIn,
			FemalesIn:   s.FemalesIn,
			MalesOut:    s.MalesOut,
			FemalesOut:  s.FemalesOut,
			NetMales:    s.MalesIn - s.MalesOut,
			NetFemales:  s.FemalesIn - s.FemalesOut,
		})
	}
	return out, nil
}

// SupplySums suma de cantidades por insumo en un rango de fechas.
func (uc *ReportUseCase) SupplySums(ctx context.Context, from, to *time.Time) ([]dto.SupplyMovementSumDTO, error) {
	sums, err := uc.reports.SumSupplyMovements(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplyMovementSumDTO, 0, len(sums))
	for _, s := range sums {
		out = append(out, dto.SupplyMovementSumDTO{
			SupplyID:   s.SupplyID,
			SupplyName: s.SupplyName,
			TotalIn:    s.TotalIn,
			TotalOut:   s.TotalOut,
			Net:        s.TotalIn.Sub(s.TotalOut),
		})
	}
	return out, nil
}

// ToGroupMovementResponse convierte la entidad al DTO de respuesta.
func ToGroupMovementResponse(m *entity.GroupMovement) dto.GroupMovementResponse {
	return dto.GroupMovementResponse{
		ID:                m.ID,
		GroupID:           m.GroupID,
		Category:          string(m.Category),
		Reason:            string(m.Reason),
		Males:             m.Males,
		Females:           m.Females,
		ProtocolID:        m.ProtocolID,
		DestinationCageID: m.DestinationCageID,
		Note:              m.Note,
		Date:              m.Date,
		CreatedBy:         m.CreatedBy,
	}
}

// ToSupplyMovementResponse convierte la entidad al DTO de respuesta.
func ToSupplyMovementResponse(m *entity.SupplyMovement) dto.SupplyMovementResponse {
	return dto.SupplyMovementResponse{
		ID:        m.ID,
		SupplyID:  m.SupplyID,
		Type:      string(m.Type),
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		Date:      m.Date,
		CreatedBy: m.CreatedBy,
	}
}
