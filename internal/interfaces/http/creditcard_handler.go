package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/credit-service/internal/application/creditcard"
	"github.com/jhoicas/credit-service/internal/application/dto"
)

// CreditCardHandler maneja las peticiones HTTP de tarjetas de crédito.
type CreditCardHandler struct {
	uc *creditcard.UseCase
}

// NewCreditCardHandler construye el handler.
func NewCreditCardHandler(uc *creditcard.UseCase) *CreditCardHandler {
	return &CreditCardHandler{uc: uc}
}

// Create POST /api/credit-cards
func (h *CreditCardHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCreditCardRequest
	if err := c.BodyParser(&in); err != nil {
		return respond(c, fiber.StatusBadRequest, "cuerpo inválido", nil)
	}
	created, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusCreated, "tarjeta de crédito creada exitosamente", created)
}

// GetAll GET /api/credit-cards
func (h *CreditCardHandler) GetAll(c *fiber.Ctx) error {
	cards, err := h.uc.GetAll(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if len(cards) == 0 {
		return respond(c, fiber.StatusNotFound, "no hay tarjetas registradas", cards)
	}
	return respond(c, fiber.StatusOK, "tarjetas recuperadas exitosamente", cards)
}

// GetByID GET /api/credit-cards/:creditCardId
func (h *CreditCardHandler) GetByID(c *fiber.Ctx) error {
	found, err := h.uc.GetByID(c.Context(), c.Params("creditCardId"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "detalle de la tarjeta recuperado", found)
}

// GetByCustomerID GET /api/credit-cards/customer/:customerId
func (h *CreditCardHandler) GetByCustomerID(c *fiber.Ctx) error {
	cards, err := h.uc.GetByCustomerID(c.Context(), c.Params("customerId"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "tarjetas del cliente recuperadas", cards)
}

// Update PUT /api/credit-cards/:creditCardId
func (h *CreditCardHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCreditCardRequest
	if err := c.BodyParser(&in); err != nil {
		return respond(c, fiber.StatusBadRequest, "cuerpo inválido", nil)
	}
	updated, err := h.uc.Update(c.Context(), c.Params("creditCardId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "tarjeta actualizada exitosamente", updated)
}

// Delete DELETE /api/credit-cards/:creditCardId
// Si era la última tarjeta del cliente también revierte la cascada VIP/PYM.
func (h *CreditCardHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("creditCardId")); err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "tarjeta eliminada exitosamente", nil)
}
