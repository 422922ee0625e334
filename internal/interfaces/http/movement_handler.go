package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bioterio-api/internal/application/dto"
	"github.com/jhoicas/Bioterio-api/internal/application/movements"
	"github.com/jhoicas/Bioterio-api/internal/application/reports"
	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
	"github.com/jhoicas/Bioterio-api/internal/domain/repository"
)

// MovementHandler maneja el registro y el historial de movimientos de
// grupos animales (protegido).
type MovementHandler struct {
	register *movements.RegisterGroupMovementUseCase
	reports  *reports.ReportUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(register *movements.RegisterGroupMovementUseCase, reports *reports.ReportUseCase) *MovementHandler {
	return &MovementHandler{register: register, reports: reports}
}

// Register godoc
// @Summary      Registrar movimiento de grupo animal
// @Description  INGRESO, SALIDA, AJUSTE o TRASLADO. La fecha la asigna el
//
//	servidor; un rechazo devuelve todas las violaciones a la vez.
//
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del grupo origen"
// @Param        body  body  dto.RegisterGroupMovementRequest  true  "category, reason, males, females, protocol_id (PROTOCOLO), destination_cage_id (TRASLADO)"
// @Success      201   {object}  dto.GroupMovementResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/groups/{id}/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterGroupMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.register.Register(c.Context(), movements.GroupMovementInput{
		GroupID:           c.Params("id"),
		Category:          entity.MovementCategory(in.Category),
		Reason:            entity.MovementReason(in.Reason),
		Males:             in.Males,
		Females:           in.Females,
		ProtocolID:        in.ProtocolID,
		DestinationCageID: in.DestinationCageID,
		Note:              in.Note,
		UserID:            GetUserID(c),
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reports.ToGroupMovementResponse(mov))
}

// History godoc
// @Summary      Historial de movimientos de un grupo
// @Description  Del más reciente al más antiguo. Filtros opcionales de
//
//	rango de fechas (RFC 3339) y substring del motivo, combinados con AND.
//
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del grupo"
// @Param        from    query  string  false  "Fecha desde (RFC 3339)"
// @Param        to      query  string  false  "Fecha hasta (RFC 3339)"
// @Param        reason  query  string  false  "Substring del motivo"
// @Success      200  {array}   dto.GroupMovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/groups/{id}/movements [get]
func (h *MovementHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	f := repository.GroupMovementFilter{
		GroupID:        c.Params("id"),
		ReasonContains: c.Query("reason"),
		Limit:          page.Limit,
		Offset:         page.Offset,
	}
	var err error
	if f.From, err = parseTimeQuery(c, "from"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, usar RFC 3339"})
	}
	if f.To, err = parseTimeQuery(c, "to"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, usar RFC 3339"})
	}
	out, err := h.reports.GroupHistory(c.Context(), f)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// parseTimeQuery lee un parámetro de fecha opcional en RFC 3339.
func parseTimeQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
