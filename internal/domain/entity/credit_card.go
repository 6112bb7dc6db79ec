package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditCardType tipo de tarjeta; debe coincidir con el tipo del cliente dueño.
type CreditCardType string

const (
	CardTypePersonal CreditCardType = "PERSONAL_CREDIT_CARD"
	CardTypeBusiness CreditCardType = "BUSINESS_CREDIT_CARD"
)

// Estados de la tarjeta, manejados como string plano en el contrato JSON.
const (
	CardStatusActive  = "ACTIVE"
	CardStatusBlocked = "BLOCKED"
)

// CreditCard tarjeta de crédito. Propiedad exclusiva de este servicio.
type CreditCard struct {
	ID               string          `json:"id"`
	CustomerID       string          `json:"customerId"`
	CardType         CreditCardType  `json:"cardType"`
	CreditLimit      decimal.Decimal `json:"creditLimit"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	Status           string          `json:"status"`
	PaymentStatus    PaymentStatus   `json:"paymentStatus"`
	MinimumPayment   decimal.Decimal `json:"minimumPayment"`
	CutoffDate       *time.Time      `json:"cutoffDate,omitempty"`
	PaymentDueDate   *time.Time      `json:"paymentDueDate,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	ModifiedAt       *time.Time      `json:"modifiedAt,omitempty"`
}
