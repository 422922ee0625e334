package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bioterio-api/internal/application/dto"
	"github.com/jhoicas/Bioterio-api/internal/application/usecase"
)

// CatalogHandler maneja los catálogos auxiliares: especies, cepas y jaulas
// (protegido).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateSpecies godoc
// @Summary      Crear especie
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSpeciesRequest  true  "name, description"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/species [post]
func (h *CatalogHandler) CreateSpecies(c *fiber.Ctx) error {
	var in dto.CreateSpeciesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.CreateSpecies(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": s.ID, "name": s.Name})
}

// ListSpecies godoc
// @Summary      Listar especies
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  map[string]string
// @Router       /api/species [get]
func (h *CatalogHandler) ListSpecies(c *fiber.Ctx) error {
	list, err := h.uc.ListSpecies(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	out := make([]fiber.Map, 0, len(list))
	for _, s := range list {
		out = append(out, fiber.Map{"id": s.ID, "name": s.Name, "description": s.Description})
	}
	return c.JSON(out)
}

// CreateStrain godoc
// @Summary      Crear cepa de una especie
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la especie"
// @Param        body  body  dto.CreateStrainRequest  true  "name, description"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/species/{id}/strains [post]
func (h *CatalogHandler) CreateStrain(c *fiber.Ctx) error {
	var in dto.CreateStrainRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.CreateStrain(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": s.ID, "name": s.Name})
}

// ListStrains godoc
// @Summary      Listar cepas de una especie
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la especie"
// @Success      200  {array}  map[string]string
// @Router       /api/species/{id}/strains [get]
func (h *CatalogHandler) ListStrains(c *fiber.Ctx) error {
	list, err := h.uc.ListStrains(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	out := make([]fiber.Map, 0, len(list))
	for _, s := range list {
		out = append(out, fiber.Map{"id": s.ID, "species_id": s.SpeciesID, "name": s.Name})
	}
	return c.JSON(out)
}

// CreateCage godoc
// @Summary      Crear jaula
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCageRequest  true  "name, location, capacity"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cages [post]
func (h *CatalogHandler) CreateCage(c *fiber.Ctx) error {
	var in dto.CreateCageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cage, err := h.uc.CreateCage(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": cage.ID, "name": cage.Name})
}

// ListCages godoc
// @Summary      Listar jaulas
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  map[string]string
// @Router       /api/cages [get]
func (h *CatalogHandler) ListCages(c *fiber.Ctx) error {
	list, err := h.uc.ListCages(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	out := make([]fiber.Map, 0, len(list))
	for _, cage := range list {
		out = append(out, fiber.Map{"id": cage.ID, "name": cage.Name, "location": cage.Location, "capacity": cage.Capacity})
	}
	return c.JSON(out)
}
