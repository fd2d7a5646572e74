package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/domain"
)

// parseID lee un parámetro de ruta como entero; error si no es numérico.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

// respondError mapea errores a códigos de estado:
//
//	validación de dominio (entrada inválida, duplicado, repuesto o categoría
//	referenciada inexistente, stock insuficiente) -> 400
//	cualquier otra cosa -> 500 con mensaje genérico y log del error real
func respondError(c *fiber.Ctx, err error) error {
	if _, ok := domain.IsInsufficientStock(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrPartNotFound),
		errors.Is(err, domain.ErrCategoryNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error no esperado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("error interno del servidor"))
}

// respondNotFound 404 para un ID válido sin fila correspondiente.
func respondNotFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.Fail(msg))
}

// respondBadRequest 400 para cuerpos o parámetros mal formados.
func respondBadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(msg))
}
