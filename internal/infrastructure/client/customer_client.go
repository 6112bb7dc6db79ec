package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jhoicas/credit-service/internal/application/ports"
	"github.com/jhoicas/credit-service/internal/domain"
	"github.com/jhoicas/credit-service/internal/domain/entity"
	"github.com/jhoicas/credit-service/pkg/config"
	"github.com/jhoicas/credit-service/pkg/logger"
)

var _ ports.CustomerClient = (*CustomerClient)(nil)

// CustomerClient cliente HTTP del servicio Customer, protegido por el breaker
// "customerService". Todas las llamadas son idempotentes y reintentar es
// seguro.
type CustomerClient struct {
	rest    restCaller
	baseURL string
	log     *logger.Logger
}

// NewCustomerClient construye el cliente con su propio breaker.
func NewCustomerClient(cfg config.ClientsConfig, breakerCfg config.BreakerConfig, log *logger.Logger) *CustomerClient {
	l := log.Component("customerClient")
	return &CustomerClient{
		rest: restCaller{
			httpClient: &http.Client{Timeout: cfg.RequestTimeout},
			breaker:    newBreaker(CustomerBreakerName, breakerCfg, l),
			log:        l,
		},
		baseURL: strings.TrimRight(cfg.CustomerServiceBaseURL, "/"),
		log:     l,
	}
}

// GetCustomerByID consulta GET /{customerId}. 404 → domain.ErrNotFound;
// 5xx, timeout o breaker abierto → domain.ErrCustomerServiceUnavailable.
func (c *CustomerClient) GetCustomerByID(ctx context.Context, customerID string) (*entity.Customer, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(customerID)
	body, err := c.rest.call(ctx, http.MethodGet, endpoint)
	if err != nil {
		return nil, c.mapError(err, "no se pudo obtener el cliente "+customerID)
	}

	cust, err := decodeData[*entity.Customer](body)
	if err != nil {
		return nil, err
	}
	if cust == nil {
		return nil, domain.ErrNotFound
	}
	return cust, nil
}

// UpdateVipPymStatus ejecuta PUT /{customerId}/vip-pym/status?isVipPym=bool.
func (c *CustomerClient) UpdateVipPymStatus(ctx context.Context, customerID string, isVipPym bool) (*entity.Customer, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(customerID) + "/vip-pym/status?isVipPym=" + strconv.FormatBool(isVipPym)
	body, err := c.rest.call(ctx, http.MethodPut, endpoint)
	if err != nil {
		return nil, c.mapError(err, "no se pudo actualizar el estado VIP/PYM del cliente "+customerID)
	}
	return decodeData[*entity.Customer](body)
}

// mapError traduce los fallos del transporte a errores de dominio. Los 4xx
// distintos de 404 se propagan como errores de cliente sin disfrazar.
func (c *CustomerClient) mapError(err error, reason string) error {
	switch {
	case errors.Is(err, errNotFound):
		return domain.ErrNotFound
	case isClientFault(err):
		return fmt.Errorf("servicio Customer: %w", err)
	default:
		if isBreakerOpen(err) {
			c.log.Error().Err(err).Msg("fallback disparado: breaker customerService abierto")
		}
		return fmt.Errorf("%w: %s: %v", domain.ErrCustomerServiceUnavailable, reason, err)
	}
}
