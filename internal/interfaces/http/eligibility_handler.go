package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/credit-service/internal/application/eligibility"
)

// EligibilityHandler expone las consultas de elegibilidad de clientes.
// Ante un fallo interno responde con la opción pesimista: se asume que el
// cliente sí tiene deuda (o que no es elegible) para no abrir productos
// a ciegas.
type EligibilityHandler struct {
	svc *eligibility.Service
}

// NewEligibilityHandler construye el handler.
func NewEligibilityHandler(svc *eligibility.Service) *EligibilityHandler {
	return &EligibilityHandler{svc: svc}
}

// HasOverdueDebt GET /api/customer-eligibility/has-overdue-debt/:customerId
func (h *EligibilityHandler) HasOverdueDebt(c *fiber.Ctx) error {
	hasDebt, err := h.svc.HasOverdueDebt(c.Context(), c.Params("customerId"))
	if err != nil {
		return respond(c, fiber.StatusInternalServerError,
			"error verificando la deuda del cliente, se asume deuda vencida", true)
	}
	if hasDebt {
		return respond(c, fiber.StatusOK, "el cliente tiene deuda vencida", true)
	}
	return respond(c, fiber.StatusOK, "el cliente no tiene deuda vencida", false)
}

// IsEligible GET /api/customer-eligibility/is-eligible/:customerId
func (h *EligibilityHandler) IsEligible(c *fiber.Ctx) error {
	eligible, err := h.svc.IsEligibleForNewProduct(c.Context(), c.Params("customerId"))
	if err != nil {
		return respond(c, fiber.StatusInternalServerError,
			"error verificando la elegibilidad del cliente, se asume no elegible", false)
	}
	if eligible {
		return respond(c, fiber.StatusOK, "el cliente es elegible para nuevos productos", true)
	}
	return respond(c, fiber.StatusOK, "el cliente no es elegible por deuda vencida", false)
}
