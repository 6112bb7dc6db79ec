package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/credit-service/internal/domain/entity"
)

// CreateCreditRequest petición de creación de una línea de crédito.
type CreateCreditRequest struct {
	CustomerID   string            `json:"customerId"`
	CreditType   entity.CreditType `json:"creditType"`
	Amount       decimal.Decimal   `json:"amount"`
	InterestRate decimal.Decimal   `json:"interestRate"`
}

// UpdateCreditRequest petición de actualización. Amount, InterestRate y
// RemainingBalance se reemplazan siempre; los campos puntero solo cuando vienen.
type UpdateCreditRequest struct {
	Amount           decimal.Decimal       `json:"amount"`
	InterestRate     decimal.Decimal       `json:"interestRate"`
	RemainingBalance decimal.Decimal       `json:"remainingBalance"`
	PaymentStatus    *entity.PaymentStatus `json:"paymentStatus,omitempty"`
	CreditStatus     *entity.CreditStatus  `json:"creditStatus,omitempty"`
	NextPaymentDate  *time.Time            `json:"nextPaymentDate,omitempty"`
	MinimumPayment   *decimal.Decimal      `json:"minimumPayment,omitempty"`
}
