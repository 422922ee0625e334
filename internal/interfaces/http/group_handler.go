package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bioterio-api/internal/application/dto"
	"github.com/jhoicas/Bioterio-api/internal/application/usecase"
	"github.com/jhoicas/Bioterio-api/internal/domain/repository"
)

// GroupHandler maneja el CRUD de grupos animales (protegido). Los saldos no
// se editan por aquí: solo los muta el motor de movimientos.
type GroupHandler struct {
	uc *usecase.GroupUseCase
}

// NewGroupHandler construye el handler.
func NewGroupHandler(uc *usecase.GroupUseCase) *GroupHandler {
	return &GroupHandler{uc: uc}
}

// Create godoc
// @Summary      Crear grupo animal
// @Tags         groups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGroupRequest  true  "species_id, strain_id opcional, cage_id, saldos y mínimos iniciales"
// @Success      201   {object}  dto.GroupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/groups [post]
func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	g, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToGroupResponse(g))
}

// List godoc
// @Summary      Listar grupos animales
// @Tags         groups
// @Security     Bearer
// @Produce      json
// @Param        species  query  string  false  "Substring del nombre de la especie"
// @Param        cage     query  string  false  "Substring del nombre de la jaula"
// @Param        alert    query  string  false  "low_m | low_f | low_any"
// @Param        active   query  bool    false  "Solo grupos activos"
// @Success      200  {object}  dto.GroupListResponse
// @Router       /api/groups [get]
func (h *GroupHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	f := repository.GroupFilter{
		SpeciesName: c.Query("species"),
		CageName:    c.Query("cage"),
		Alert:       c.Query("alert"),
		OnlyActive:  c.QueryBool("active"),
		Limit:       page.Limit,
		Offset:      page.Offset,
	}
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener grupo animal
// @Tags         groups
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del grupo"
// @Success      200  {object}  dto.GroupResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/groups/{id} [get]
func (h *GroupHandler) GetByID(c *fiber.Ctx) error {
	g, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(usecase.ToGroupResponse(g))
}

// Update godoc
// @Summary      Actualizar mínimos y actividad de un grupo
// @Tags         groups
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del grupo"
// @Param        body  body  dto.UpdateGroupRequest  true  "min_males, min_females, active"
// @Success      200   {object}  dto.GroupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/groups/{id} [put]
func (h *GroupHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	g, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(usecase.ToGroupResponse(g))
}

// Delete godoc
// @Summary      Eliminar grupo animal sin movimientos
// @Tags         groups
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del grupo"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/groups/{id} [delete]
func (h *GroupHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
