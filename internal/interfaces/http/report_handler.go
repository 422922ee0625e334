package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bioterio-api/internal/application/dto"
	"github.com/jhoicas/Bioterio-api/internal/application/reports"
)

// ReportHandler maneja el dashboard y los reportes agregados (protegido).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard godoc
// @Summary      KPIs del dashboard
// @Description  Grupos e insumos bajo mínimo (comparación estricta) y los
//
//	últimos movimientos de cada bitácora.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// GroupSums godoc
// @Summary      Sumas de movimientos de grupos por rango de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Fecha desde (RFC 3339)"
// @Param        to    query  string  false  "Fecha hasta (RFC 3339)"
// @Success      200  {array}   dto.GroupMovementSumDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/group-movements [get]
func (h *ReportHandler) GroupSums(c *fiber.Ctx) error {
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, usar RFC 3339"})
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, usar RFC 3339"})
	}
	out, err := h.uc.GroupSums(c.Context(), from, to)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// SupplySums godoc
// @Summary      Sumas de movimientos de insumos por rango de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Fecha desde (RFC 3339)"
// @Param        to    query  string  false  "Fecha hasta (RFC 3339)"
// @Success      200  {array}   dto.SupplyMovementSumDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/supply-movements [get]
func (h *ReportHandler) SupplySums(c *fiber.Ctx) error {
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, usar RFC 3339"})
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, usar RFC 3339"})
	}
	out, err := h.uc.SupplySums(c.Context(), from, to)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
