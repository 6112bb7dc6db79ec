package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditType tipo de línea de crédito; debe coincidir con el tipo del cliente.
type CreditType string

const (
	CreditTypePersonal CreditType = "PERSONAL"
	CreditTypeBusiness CreditType = "BUSINESS"
)

// CreditStatus estado del crédito.
type CreditStatus string

const (
	CreditStatusActive    CreditStatus = "ACTIVE"
	CreditStatusDefaulted CreditStatus = "DEFAULTED"
	CreditStatusFinished  CreditStatus = "FINISHED"
)

// PaymentStatus estado de pago, compartido por créditos y tarjetas.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusOverdue PaymentStatus = "OVERDUE"
)

// Credit línea de crédito. Propiedad exclusiva de este servicio.
//
// Invariantes: amount > 0; remainingBalance se inicializa igual a amount;
// minimumPayment = 10% de amount al crear; un cliente PERSONAL tiene a lo
// sumo un crédito con creditStatus distinto de FINISHED.
type Credit struct {
	ID               string          `json:"id"`
	CustomerID       string          `json:"customerId"`
	CreditType       CreditType      `json:"creditType"`
	Amount           decimal.Decimal `json:"amount"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	InterestRate     decimal.Decimal `json:"interestRate"`
	MinimumPayment   decimal.Decimal `json:"minimumPayment"`
	PaymentStatus    PaymentStatus   `json:"paymentStatus"`
	CreditStatus     CreditStatus    `json:"creditStatus"`
	NextPaymentDate  *time.Time      `json:"nextPaymentDate,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	ModifiedAt       time.Time       `json:"modifiedAt"`
}
