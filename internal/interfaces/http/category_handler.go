package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary  Listar categorías
// @Tags     categories
// @Produce  json
// @Success  200  {object}  dto.Envelope{data=[]dto.CategoryResponse}
// @Router   /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID godoc
// @Summary  Obtener categoría por ID
// @Tags     categories
// @Produce  json
// @Param    id  path  int  true  "ID de la categoría"
// @Success  200  {object}  dto.Envelope{data=dto.CategoryResponse}
// @Failure  404  {object}  dto.Envelope
// @Router   /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondBadRequest(c, "id de categoría inválido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "categoría no encontrada")
	}
	return c.JSON(dto.OK(out))
}

// Create godoc
// @Summary  Crear categoría
// @Tags     categories
// @Accept   json
// @Produce  json
// @Param    body  body  dto.CategoryRequest  true  "Datos de la categoría"
// @Success  201  {object}  dto.Envelope{data=dto.CategoryResponse}
// @Failure  400  {object}  dto.Envelope
// @Router   /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Update godoc
// @Summary  Actualizar categoría
// @Tags     categories
// @Accept   json
// @Produce  json
// @Param    id    path  int                  true  "ID de la categoría"
// @Param    body  body  dto.CategoryRequest  true  "Datos a actualizar"
// @Success  200  {object}  dto.Envelope{data=dto.CategoryResponse}
// @Failure  404  {object}  dto.Envelope
// @Router   /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondBadRequest(c, "id de categoría inválido")
	}
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "categoría no encontrada")
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary  Eliminar categoría
// @Tags     categories
// @Produce  json
// @Param    id  path  int  true  "ID de la categoría"
// @Success  200  {object}  dto.Envelope{data=bool}
// @Failure  404  {object}  dto.Envelope
// @Router   /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondBadRequest(c, "id de categoría inválido")
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	if !deleted {
		return respondNotFound(c, "categoría no encontrada")
	}
	return c.JSON(dto.OK(true))
}
