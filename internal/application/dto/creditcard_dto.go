package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/credit-service/internal/domain/entity"
)

// CreateCreditCardRequest petición de creación de una tarjeta de crédito.
type CreateCreditCardRequest struct {
	CustomerID     string                `json:"customerId"`
	CardType       entity.CreditCardType `json:"cardType"`
	CreditLimit    decimal.Decimal       `json:"creditLimit"`
	MinimumPayment decimal.Decimal       `json:"minimumPayment"`
	CutoffDate     *time.Time            `json:"cutoffDate,omitempty"`
	PaymentDueDate *time.Time            `json:"paymentDueDate,omitempty"`
}

// UpdateCreditCardRequest petición de actualización de una tarjeta.
type UpdateCreditCardRequest struct {
	CreditLimit      decimal.Decimal `json:"creditLimit"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	Status           string          `json:"status"`
}
