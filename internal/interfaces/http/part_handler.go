package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/application/usecase"
)

// PartHandler maneja las peticiones HTTP para Part.
type PartHandler struct {
	uc *usecase.PartUseCase
}

// NewPartHandler construye el handler.
func NewPartHandler(uc *usecase.PartUseCase) *PartHandler {
	return &PartHandler{uc: uc}
}

// List godoc
// @Summary  Listar repuestos
// @Tags     parts
// @Produce  json
// @Success  200  {object}  dto.Envelope{data=[]dto.PartResponse}
// @Router   /api/parts [get]
func (h *PartHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID godoc
// @Summary  Obtener repuesto por ID
// @Tags     parts
// @Produce  json
// @Param    id  path  int  true  "ID del repuesto"
// @Success  200  {object}  dto.Envelope{data=dto.PartResponse}
// @Failure  404  {object}  dto.Envelope
// @Router   /api/parts/{id} [get]
func (h *PartHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondBadRequest(c, "id de repuesto inválido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "repuesto no encontrado")
	}
	return c.JSON(dto.OK(out))
}

// Search godoc
// @Summary  Buscar repuestos (filtrado y paginado)
// @Tags     parts
// @Accept   json
// @Produce  json
// @Param    body  body  dto.SearchPartsRequest  true  "Filtros de búsqueda"
// @Success  200  {object}  dto.Envelope{data=dto.PaginatedPartsResponse}
// @Failure  400  {object}  dto.Envelope
// @Router   /api/parts/search [post]
func (h *PartHandler) Search(c *fiber.Ctx) error {
	var in dto.SearchPartsRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Search(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// LowStock godoc
// @Summary  Repuestos en stock bajo (stock <= mínimo)
// @Tags     parts
// @Produce  json
// @Success  200  {object}  dto.Envelope{data=[]dto.PartResponse}
// @Router   /api/parts/low-stock [get]
func (h *PartHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Create godoc
// @Summary  Crear repuesto (siembra transacción IN si initialStock > 0)
// @Tags     parts
// @Accept   json
// @Produce  json
// @Param    body  body  dto.AddPartRequest  true  "Datos del repuesto"
// @Success  201  {object}  dto.Envelope{data=dto.PartResponse}
// @Failure  400  {object}  dto.Envelope
// @Router   /api/parts [post]
func (h *PartHandler) Create(c *fiber.Ctx) error {
	var in dto.AddPartRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Update godoc
// @Summary  Actualizar repuesto (parcial; nunca el stock)
// @Tags     parts
// @Accept   json
// @Produce  json
// @Param    id    path  int                    true  "ID del repuesto"
// @Param    body  body  dto.UpdatePartRequest  true  "Campos a actualizar"
// @Success  200  {object}  dto.Envelope{data=dto.PartResponse}
// @Failure  404  {object}  dto.Envelope
// @Router   /api/parts/{id} [put]
func (h *PartHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondBadRequest(c, "id de repuesto inválido")
	}
	var in dto.UpdatePartRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "repuesto no encontrado")
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary  Eliminar repuesto
// @Tags     parts
// @Produce  json
// @Param    id  path  int  true  "ID del repuesto"
// @Success  200  {object}  dto.Envelope{data=bool}
// @Failure  404  {object}  dto.Envelope
// @Router   /api/parts/{id} [delete]
func (h *PartHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondBadRequest(c, "id de repuesto inválido")
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	if !deleted {
		return respondNotFound(c, "repuesto no encontrado")
	}
	return c.JSON(dto.OK(true))
}
