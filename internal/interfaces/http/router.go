package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/credit-service/internal/application/credit"
	"github.com/jhoicas/credit-service/internal/application/creditcard"
	"github.com/jhoicas/credit-service/internal/application/eligibility"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreditUC      *credit.UseCase
	CreditCardUC  *creditcard.UseCase
	EligibilitySv *eligibility.Service
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Créditos
	credits := api.Group("/credits")
	creditHandler := NewCreditHandler(deps.CreditUC)
	credits.Post("/", creditHandler.Create)
	credits.Get("/", creditHandler.GetAll)
	credits.Get("/customer/:customerId", creditHandler.GetByCustomerID)
	credits.Get("/:creditId", creditHandler.GetByID)
	credits.Put("/:creditId", creditHandler.Update)
	credits.Delete("/:creditId", creditHandler.Delete)

	// Tarjetas de crédito
	cards := api.Group("/credit-cards")
	cardHandler := NewCreditCardHandler(deps.CreditCardUC)
	cards.Post("/", cardHandler.Create)
	cards.Get("/", cardHandler.GetAll)
	cards.Get("/customer/:customerId", cardHandler.GetByCustomerID)
	cards.Get("/:creditCardId", cardHandler.GetByID)
	cards.Put("/:creditCardId", cardHandler.Update)
	cards.Delete("/:creditCardId", cardHandler.Delete)

	// Elegibilidad
	eligibilityGroup := api.Group("/customer-eligibility")
	eligibilityHandler := NewEligibilityHandler(deps.EligibilitySv)
	eligibilityGroup.Get("/has-overdue-debt/:customerId", eligibilityHandler.HasOverdueDebt)
	eligibilityGroup.Get("/is-eligible/:customerId", eligibilityHandler.IsEligible)
}
