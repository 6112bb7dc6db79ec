package entity

import "github.com/shopspring/decimal"

// AccountType tipo de cuenta según el servicio Account.
type AccountType string

const (
	AccountTypeSavings  AccountType = "SAVINGS"
	AccountTypeChecking AccountType = "CHECKING"
)

// Account cuenta bancaria propiedad del servicio Account remoto.
// Nunca se persiste localmente; solo se referencia por id en las cascadas VIP/PYM.
type Account struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId"`
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	VipPym      bool            `json:"vipPym"`
}
