package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bioterio-api/internal/application/dto"
	"github.com/jhoicas/Bioterio-api/internal/application/protocols"
	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
)

// ProtocolHandler maneja el flujo de protocolos de investigación (protegido).
type ProtocolHandler struct {
	uc *protocols.ProtocolUseCase
}

// NewProtocolHandler construye el handler.
func NewProtocolHandler(uc *protocols.ProtocolUseCase) *ProtocolHandler {
	return &ProtocolHandler{uc: uc}
}

// Create godoc
// @Summary      Crear protocolo (borrador)
// @Tags         protocols
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProtocolRequest  true  "título, investigador, justificación, animales solicitados"
// @Success      201   {object}  dto.ProtocolResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/protocols [post]
func (h *ProtocolHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProtocolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p, err := h.uc.CreateDraft(c.Context(), protocolFromRequest(in, GetUserID(c)))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProtocolResponse(p))
}

// Update godoc
// @Summary      Actualizar protocolo en borrador
// @Tags         protocols
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del protocolo"
// @Param        body  body  dto.CreateProtocolRequest  true  "campos del borrador"
// @Success      200   {object}  dto.ProtocolResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/protocols/{id} [put]
func (h *ProtocolHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateProtocolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p := protocolFromRequest(in, GetUserID(c))
	p.ID = c.Params("id")
	if err := h.uc.UpdateDraft(c.Context(), p); err != nil {
		return errorJSON(c, err)
	}
	updated, err := h.uc.GetByID(c.Context(), p.ID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(toProtocolResponse(updated))
}

// Submit godoc
// @Summary      Enviar protocolo a revisión
// @Tags         protocols
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del protocolo"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/protocols/{id}/submit [post]
func (h *ProtocolHandler) Submit(c *fiber.Ctx) error {
	if err := h.uc.Submit(c.Context(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "protocolo enviado a revisión"})
}

// Approve godoc
// @Summary      Aprobar protocolo enviado
// @Tags         protocols
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del protocolo"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/protocols/{id}/approve [post]
func (h *ProtocolHandler) Approve(c *fiber.Ctx) error {
	if err := h.uc.Approve(c.Context(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "protocolo aprobado"})
}

// Reject godoc
// @Summary      Rechazar protocolo enviado
// @Tags         protocols
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del protocolo"
// @Param        body  body  dto.RejectProtocolRequest  true  "note (observación obligatoria)"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/protocols/{id}/reject [post]
func (h *ProtocolHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectProtocolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Reject(c.Context(), c.Params("id"), in.Note); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "protocolo rechazado"})
}

// GetByID godoc
// @Summary      Obtener protocolo
// @Tags         protocols
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del protocolo"
// @Success      200  {object}  dto.ProtocolResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/protocols/{id} [get]
func (h *ProtocolHandler) GetByID(c *fiber.Ctx) error {
	p, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(toProtocolResponse(p))
}

// List godoc
// @Summary      Listar protocolos
// @Tags         protocols
// @Security     Bearer
// @Produce      json
// @Param        state  query  string  false  "borrador | enviado | aprobado | rechazado"
// @Success      200  {array}  dto.ProtocolResponse
// @Router       /api/protocols [get]
func (h *ProtocolHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	list, err := h.uc.List(c.Context(), c.Query("state"), page.Limit, page.Offset)
	if err != nil {
		return errorJSON(c, err)
	}
	out := make([]dto.ProtocolResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProtocolResponse(p))
	}
	return c.JSON(out)
}

func protocolFromRequest(in dto.CreateProtocolRequest, userID string) *entity.Protocol {
	p := &entity.Protocol{
		Title:            in.Title,
		ResearcherName:   in.ResearcherName,
		ResearcherDept:   in.ResearcherDept,
		ResearcherPhone:  in.ResearcherPhone,
		ResearcherEmail:  in.ResearcherEmail,
		Justification:    in.Justification,
		Justification3R:  in.Justification3R,
		EuthanasiaMethod: in.EuthanasiaMethod,
		FinalDestination: in.FinalDestination,
		GroupCount:       in.GroupCount,
		PerGroupCount:    in.PerGroupCount,
		CreatedBy:        userID,
	}
	for _, a := range in.Animals {
		p.Animals = append(p.Animals, entity.ProtocolAnimal{
			SpeciesName: a.SpeciesName,
			Quantity:    a.Quantity,
			Sex:         a.Sex,
			WeightRange: a.WeightRange,
			AgeRange:    a.AgeRange,
		})
	}
	return p
}

func toProtocolResponse(p *entity.Protocol) dto.ProtocolResponse {
	out := dto.ProtocolResponse{
		ID:               p.ID,
		Title:            p.Title,
		State:            p.State,
		ResearcherName:   p.ResearcherName,
		ResearcherEmail:  p.ResearcherEmail,
		Justification:    p.Justification,
		Justification3R:  p.Justification3R,
		EuthanasiaMethod: p.EuthanasiaMethod,
		GroupCount:       p.GroupCount,
		PerGroupCount:    p.PerGroupCount,
		TotalCount:       p.TotalCount,
		RejectionNote:    p.RejectionNote,
		CreatedBy:        p.CreatedBy,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	for _, a := range p.Animals {
		out.Animals = append(out.Animals, dto.ProtocolAnimalDTO{
			SpeciesName: a.SpeciesName,
			Quantity:    a.Quantity,
			Sex:         a.Sex,
			WeightRange: a.WeightRange,
			AgeRange:    a.AgeRange,
		})
	}
	return out
}
