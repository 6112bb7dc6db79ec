package ports

import (
	"context"

	"github.com/jhoicas/credit-service/internal/domain/entity"
)

// CustomerClient puerto de salida hacia el servicio Customer remoto.
// Toda implementación debe ser idempotente-safe: el caller puede reintentar
// reemitiendo la misma petición lógica.
//
//go:generate mockgen -destination=mocks/mock_clients.go -source=clients.go
type CustomerClient interface {
	// GetCustomerByID devuelve el cliente o domain.ErrNotFound si el servicio
	// responde 404. Fallos de red, 5xx o breaker abierto devuelven
	// domain.ErrCustomerServiceUnavailable (envuelto).
	GetCustomerByID(ctx context.Context, customerID string) (*entity.Customer, error)
	// UpdateVipPymStatus marca o desmarca el estado VIP/PYM del cliente.
	UpdateVipPymStatus(ctx context.Context, customerID string, isVipPym bool) (*entity.Customer, error)
}

// AccountClient puerto de salida hacia el servicio Account remoto.
type AccountClient interface {
	// GetAccountsByCustomer devuelve las cuentas del cliente. Un 404 del
	// upstream se traduce a slice vacío, no a error.
	GetAccountsByCustomer(ctx context.Context, customerID string) ([]entity.Account, error)
	// UpdateVipPymStatus marca o desmarca una cuenta como VIP o PYM.
	// kind es "VIP" (personal/ahorros) o "PYM" (empresarial/corriente).
	UpdateVipPymStatus(ctx context.Context, accountID string, isVipPym bool, kind string) (*entity.Account, error)
}
