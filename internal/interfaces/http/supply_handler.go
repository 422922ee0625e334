package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bioterio-api/internal/application/dto"
	"github.com/jhoicas/Bioterio-api/internal/application/movements"
	"github.com/jhoicas/Bioterio-api/internal/application/reports"
	"github.com/jhoicas/Bioterio-api/internal/application/usecase"
	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
	"github.com/jhoicas/Bioterio-api/internal/domain/repository"
)

// SupplyHandler maneja el CRUD de insumos, sus categorías y sus movimientos
// (protegido).
type SupplyHandler struct {
	uc       *usecase.SupplyUseCase
	register *movements.RegisterSupplyMovementUseCase
	reports  *reports.ReportUseCase
}

// NewSupplyHandler construye el handler.
func NewSupplyHandler(
	uc *usecase.SupplyUseCase,
	register *movements.RegisterSupplyMovementUseCase,
	reports *reports.ReportUseCase,
) *SupplyHandler {
	return &SupplyHandler{uc: uc, register: register, reports: reports}
}

// Create godoc
// @Summary      Crear insumo
// @Description  El stock inicial es cero; se alimenta con movimientos ENTRADA.
// @Tags         supplies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplyRequest  true  "name, category_id, unit, min_stock, unit_price"
// @Success      201   {object}  dto.SupplyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/supplies [post]
func (h *SupplyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToSupplyResponse(s))
}

// List godoc
// @Summary      Listar insumos
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Param        name       query  string  false  "Substring del nombre"
// @Param        below_min  query  bool    false  "Solo insumos bajo mínimo"
// @Param        active     query  bool    false  "Solo insumos activos"
// @Success      200  {array}  dto.SupplyResponse
// @Router       /api/supplies [get]
func (h *SupplyHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	f := repository.SupplyFilter{
		NameContains: c.Query("name"),
		OnlyBelowMin: c.QueryBool("below_min"),
		OnlyActive:   c.QueryBool("active"),
		Limit:        page.Limit,
		Offset:       page.Offset,
	}
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener insumo
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del insumo"
// @Success      200  {object}  dto.SupplyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/supplies/{id} [get]
func (h *SupplyHandler) GetByID(c *fiber.Ctx) error {
	s, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(usecase.ToSupplyResponse(s))
}

// Update godoc
// @Summary      Actualizar insumo
// @Description  El stock actual no se edita por aquí: solo lo mutan los movimientos.
// @Tags         supplies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del insumo"
// @Param        body  body  dto.UpdateSupplyRequest  true  "name, unit, min_stock, unit_price, active"
// @Success      200   {object}  dto.SupplyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/supplies/{id} [put]
func (h *SupplyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(usecase.ToSupplyResponse(s))
}

// Delete godoc
// @Summary      Eliminar insumo sin movimientos
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del insumo"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/supplies/{id} [delete]
func (h *SupplyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de insumo
// @Description  ENTRADA suma, SALIDA resta con chequeo de suficiencia,
//
//	AJUSTE corrige el stock. La cantidad admite 3 decimales.
//
// @Tags         supplies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del insumo"
// @Param        body  body  dto.RegisterSupplyMovementRequest  true  "type, quantity, reason"
// @Success      201   {object}  dto.SupplyMovementResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/supplies/{id}/movements [post]
func (h *SupplyHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterSupplyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.register.Register(c.Context(), movements.SupplyMovementInput{
		SupplyID: c.Params("id"),
		Type:     entity.SupplyMovementType(in.Type),
		Quantity: in.Quantity,
		Reason:   in.Reason,
		UserID:   GetUserID(c),
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reports.ToSupplyMovementResponse(mov))
}

// MovementHistory godoc
// @Summary      Historial de movimientos de un insumo
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del insumo"
// @Param        from    query  string  false  "Fecha desde (RFC 3339)"
// @Param        to      query  string  false  "Fecha hasta (RFC 3339)"
// @Param        reason  query  string  false  "Substring del motivo"
// @Success      200  {array}   dto.SupplyMovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/supplies/{id}/movements [get]
func (h *SupplyHandler) MovementHistory(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	f := repository.SupplyMovementFilter{
		SupplyID:       c.Params("id"),
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
	out, err := h.reports.SupplyHistory(c.Context(), f)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// CreateCategory godoc
// @Summary      Crear categoría de insumos
// @Tags         supplies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplyCategoryRequest  true  "name, description"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/supply-categories [post]
func (h *SupplyHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateSupplyCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cat, err := h.uc.CreateCategory(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": cat.ID, "name": cat.Name})
}

// ListCategories godoc
// @Summary      Listar categorías de insumos
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  map[string]string
// @Router       /api/supply-categories [get]
func (h *SupplyHandler) ListCategories(c *fiber.Ctx) error {
	cats, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	out := make([]fiber.Map, 0, len(cats))
	for _, cat := range cats {
		out = append(out, fiber.Map{"id": cat.ID, "name": cat.Name, "description": cat.Description})
	}
	return c.JSON(out)
}
