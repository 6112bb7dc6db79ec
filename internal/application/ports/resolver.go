package ports

import (
	"context"

	"github.com/jhoicas/credit-service/internal/domain/entity"
)

// CustomerResolver resolución de clientes con fallback cache → servicio remoto.
// Devuelve (nil, nil) cuando el cliente no se puede resolver; los orquestadores
// lo tratan como fallo de validación.
//
//go:generate mockgen -destination=mocks/mock_resolver.go -source=resolver.go
type CustomerResolver interface {
	Resolve(ctx context.Context, customerID string) (*entity.Customer, error)
}

// EligibilityChecker consulta de deuda vencida previa a la creación de productos.
type EligibilityChecker interface {
	HasOverdueDebt(ctx context.Context, customerID string) (bool, error)
}
