package ports

import (
	"context"

	"github.com/jhoicas/credit-service/internal/domain/entity"
)

// CustomerCache puerto del cache de clientes (cache-aside, sin TTL).
// GetCustomer devuelve (nil, nil) en miss; un error de lectura lo trata el
// resolver como miss, nunca como fallo de resolución.
//
//go:generate mockgen -destination=mocks/mock_cache.go -source=cache.go CustomerCache
type CustomerCache interface {
	GetCustomer(ctx context.Context, customerID string) (*entity.Customer, error)
	SaveCustomer(ctx context.Context, customerID string, customer *entity.Customer) error
}
