package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/application/usecase"
)

// StatsHandler maneja las peticiones HTTP de estadísticas agregadas.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Inventory godoc
// @Summary  Dashboard global del inventario
// @Tags     stats
// @Produce  json
// @Success  200  {object}  dto.Envelope{data=dto.InventoryStatsResponse}
// @Router   /api/stats/inventory [get]
func (h *StatsHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.InventoryStats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Categories godoc
// @Summary  Agregados por categoría
// @Tags     stats
// @Produce  json
// @Success  200  {object}  dto.Envelope{data=[]dto.CategoryStatsResponse}
// @Router   /api/stats/categories [get]
func (h *StatsHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.CategoryStats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
