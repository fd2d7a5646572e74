package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/application/inventory"
	"github.com/jhoicas/repuestos-api/internal/application/usecase"
)

const defaultFastMovingLimit = 10

// TransactionHandler maneja las peticiones HTTP para Transaction. La creación
// delega en el motor de inventario (mutación de stock transaccional).
type TransactionHandler struct {
	uc     *usecase.TransactionUseCase
	create *inventory.CreateTransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *usecase.TransactionUseCase, create *inventory.CreateTransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc, create: create}
}

// List godoc
// @Summary  Listar transacciones
// @Tags     transactions
// @Produce  json
// @Success  200  {object}  dto.Envelope{data=[]dto.TransactionResponse}
// @Router   /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID godoc
// @Summary  Obtener transacción por ID
// @Tags     transactions
// @Produce  json
// @Param    id  path  int  true  "ID de la transacción"
// @Success  200  {object}  dto.Envelope{data=dto.TransactionResponse}
// @Failure  404  {object}  dto.Envelope
// @Router   /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondBadRequest(c, "id de transacción inválido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "transacción no encontrada")
	}
	return c.JSON(dto.OK(out))
}

// ListByPart godoc
// @Summary  Transacciones de un repuesto
// @Tags     transactions
// @Produce  json
// @Param    partId  path  int  true  "ID del repuesto"
// @Success  200  {object}  dto.Envelope{data=[]dto.TransactionResponse}
// @Router   /api/transactions/part/{partId} [get]
func (h *TransactionHandler) ListByPart(c *fiber.Ctx) error {
	partID, err := parseID(c, "partId")
	if err != nil {
		return respondBadRequest(c, "id de repuesto inválido")
	}
	out, err := h.uc.ListByPart(partID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// FastMoving godoc
// @Summary  Ranking de repuestos por salidas (OUT)
// @Tags     transactions
// @Produce  json
// @Param    limit  query  int  false  "Máximo de entradas"  default(10)
// @Success  200  {object}  dto.Envelope{data=[]dto.FastMovingPartResponse}
// @Router   /api/transactions/fast-moving [get]
func (h *TransactionHandler) FastMoving(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultFastMovingLimit)
	if limit <= 0 {
		limit = defaultFastMovingLimit
	}
	out, err := h.uc.FastMoving(limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Create godoc
// @Summary  Registrar movimiento de stock (IN/OUT/ADJUSTMENT)
// @Tags     transactions
// @Accept   json
// @Produce  json
// @Param    body  body  dto.CreateTransactionRequest  true  "Movimiento"
// @Success  201  {object}  dto.Envelope{data=dto.TransactionResponse}
// @Failure  400  {object}  dto.Envelope  "repuesto inexistente o stock insuficiente"
// @Router   /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	out, err := h.create.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// UpdatePayment godoc
// @Summary  Actualizar solo los campos de pago de una transacción
// @Tags     transactions
// @Accept   json
// @Produce  json
// @Param    id    path  int                      true  "ID de la transacción"
// @Param    body  body  dto.PaymentUpdateRequest  true  "Pago"
// @Success  200  {object}  dto.Envelope{data=dto.TransactionResponse}
// @Failure  404  {object}  dto.Envelope
// @Router   /api/transactions/{id}/payment [put]
func (h *TransactionHandler) UpdatePayment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondBadRequest(c, "id de transacción inválido")
	}
	var in dto.PaymentUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdatePayment(id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "transacción no encontrada")
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary  Eliminar transacción (no revierte el stock)
// @Tags     transactions
// @Produce  json
// @Param    id  path  int  true  "ID de la transacción"
// @Success  200  {object}  dto.Envelope{data=bool}
// @Failure  404  {object}  dto.Envelope
// @Router   /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondBadRequest(c, "id de transacción inválido")
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	if !deleted {
		return respondNotFound(c, "transacción no encontrada")
	}
	return c.JSON(dto.OK(true))
}
