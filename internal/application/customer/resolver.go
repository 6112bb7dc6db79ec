package customer

import (
	"context"

	"github.com/jhoicas/credit-service/internal/application/ports"
	"github.com/jhoicas/credit-service/internal/domain/entity"
	"github.com/jhoicas/credit-service/pkg/logger"
)

// Resolver resuelve clientes con política cache-aside: primero el cache local,
// en miss (o error de cache) el servicio Customer remoto, con write-through
// best-effort de vuelta al cache.
type Resolver struct {
	cache  ports.CustomerCache
	client ports.CustomerClient
	log    *logger.Logger
}

// NewResolver construye el resolver.
func NewResolver(cache ports.CustomerCache, client ports.CustomerClient, log *logger.Logger) *Resolver {
	return &Resolver{cache: cache, client: client, log: log.Component("customerResolver")}
}

// Resolve devuelve el cliente o (nil, nil) cuando no se puede resolver.
// Los callers deben tratar el nil como fallo de validación, nunca como crash:
// si el cache y el servicio remoto fallan, la resolución queda vacía.
func (r *Resolver) Resolve(ctx context.Context, customerID string) (*entity.Customer, error) {
	if customerID == "" {
		return nil, nil
	}

	cached, err := r.cache.GetCustomer(ctx, customerID)
	if err != nil {
		// Cualquier fallo de cache (conectividad, deserialización, timeout de
		// lectura) se degrada a miss; la fuente de verdad sigue disponible.
		r.log.Warn().Err(err).Str("customerId", customerID).Msg("error leyendo cache, tratado como miss")
	}
	if cached != nil {
		r.log.Debug().Str("customerId", customerID).Msg("cliente encontrado en cache")
		return cached, nil
	}

	r.log.Info().Str("customerId", customerID).Msg("cliente no está en cache, consultando servicio Customer")
	return r.fetchFromService(ctx, customerID)
}

// fetchFromService consulta el servicio remoto y hace write-through al cache.
// Un fallo del remoto (no encontrado, 5xx, breaker abierto) produce (nil, nil).
func (r *Resolver) fetchFromService(ctx context.Context, customerID string) (*entity.Customer, error) {
	cust, err := r.client.GetCustomerByID(ctx, customerID)
	if err != nil || cust == nil {
		if err != nil {
			r.log.Error().Err(err).Str("customerId", customerID).Msg("no se pudo obtener el cliente del servicio remoto")
		}
		return nil, nil
	}

	// Write-through best-effort: el fallo se registra, no se propaga.
	if err := r.cache.SaveCustomer(ctx, customerID, cust); err != nil {
		r.log.Warn().Err(err).Str("customerId", customerID).Msg("no se pudo guardar el cliente en cache")
	}
	return cust, nil
}
