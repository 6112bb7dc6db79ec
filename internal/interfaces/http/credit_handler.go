package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/credit-service/internal/application/credit"
	"github.com/jhoicas/credit-service/internal/application/dto"
)

// CreditHandler maneja las peticiones HTTP de líneas de crédito.
type CreditHandler struct {
	uc *credit.UseCase
}

// NewCreditHandler construye el handler.
func NewCreditHandler(uc *credit.UseCase) *CreditHandler {
	return &CreditHandler{uc: uc}
}

// Create POST /api/credits
func (h *CreditHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCreditRequest
	if err := c.BodyParser(&in); err != nil {
		return respond(c, fiber.StatusBadRequest, "cuerpo inválido", nil)
	}
	created, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusCreated, "crédito creado exitosamente", created)
}

// GetAll GET /api/credits
func (h *CreditHandler) GetAll(c *fiber.Ctx) error {
	credits, err := h.uc.GetAll(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if len(credits) == 0 {
		return respond(c, fiber.StatusNotFound, "no hay créditos registrados", credits)
	}
	return respond(c, fiber.StatusOK, "créditos recuperados exitosamente", credits)
}

// GetByID GET /api/credits/:creditId
func (h *CreditHandler) GetByID(c *fiber.Ctx) error {
	found, err := h.uc.GetByID(c.Context(), c.Params("creditId"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "detalle del crédito recuperado", found)
}

// GetByCustomerID GET /api/credits/customer/:customerId
func (h *CreditHandler) GetByCustomerID(c *fiber.Ctx) error {
	credits, err := h.uc.GetByCustomerID(c.Context(), c.Params("customerId"))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "créditos del cliente recuperados", credits)
}

// Update PUT /api/credits/:creditId
func (h *CreditHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCreditRequest
	if err := c.BodyParser(&in); err != nil {
		return respond(c, fiber.StatusBadRequest, "cuerpo inválido", nil)
	}
	updated, err := h.uc.Update(c.Context(), c.Params("creditId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "crédito actualizado exitosamente", updated)
}

// Delete DELETE /api/credits/:creditId
func (h *CreditHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("creditId")); err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "crédito eliminado exitosamente", nil)
}
