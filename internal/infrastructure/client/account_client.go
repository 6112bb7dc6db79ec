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

var _ ports.AccountClient = (*AccountClient)(nil)

// AccountClient cliente HTTP del servicio Account, protegido por el breaker
// "accountService".
type AccountClient struct {
	rest    restCaller
	baseURL string
	log     *logger.Logger
}

// NewAccountClient construye el cliente con su propio breaker.
func NewAccountClient(cfg config.ClientsConfig, breakerCfg config.BreakerConfig, log *logger.Logger) *AccountClient {
	l := log.Component("accountClient")
	return &AccountClient{
		rest: restCaller{
			httpClient: &http.Client{Timeout: cfg.RequestTimeout},
			breaker:    newBreaker(AccountBreakerName, breakerCfg, l),
			log:        l,
		},
		baseURL: strings.TrimRight(cfg.AccountServiceBaseURL, "/"),
		log:     l,
	}
}

// GetAccountsByCustomer consulta GET /customer/{customerId}. Un 404 del
// upstream significa "sin cuentas" y devuelve slice vacío, no error.
func (c *AccountClient) GetAccountsByCustomer(ctx context.Context, customerID string) ([]entity.Account, error) {
	endpoint := c.baseURL + "/customer/" + url.PathEscape(customerID)
	body, err := c.rest.call(ctx, http.MethodGet, endpoint)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return []entity.Account{}, nil
		}
		return nil, c.mapError(err, "no se pudieron obtener las cuentas del cliente "+customerID)
	}

	accounts, err := decodeData[[]entity.Account](body)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []entity.Account{}
	}
	return accounts, nil
}

// UpdateVipPymStatus ejecuta PUT /{accountId}/vip-pym/status?isVipPym=bool&type=VIP|PYM.
func (c *AccountClient) UpdateVipPymStatus(ctx context.Context, accountID string, isVipPym bool, kind string) (*entity.Account, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(accountID) + "/vip-pym/status?isVipPym=" +
		strconv.FormatBool(isVipPym) + "&type=" + url.QueryEscape(kind)
	body, err := c.rest.call(ctx, http.MethodPut, endpoint)
	if err != nil {
		return nil, c.mapError(err, "no se pudo actualizar el estado VIP/PYM de la cuenta "+accountID)
	}
	return decodeData[*entity.Account](body)
}

func (c *AccountClient) mapError(err error, reason string) error {
	switch {
	case errors.Is(err, errNotFound):
		return domain.ErrNotFound
	case isClientFault(err):
		return fmt.Errorf("servicio Account: %w", err)
	default:
		if isBreakerOpen(err) {
			c.log.Error().Err(err).Msg("fallback disparado: breaker accountService abierto")
		}
		return fmt.Errorf("%w: %s: %v", domain.ErrAccountServiceUnavailable, reason, err)
	}
}
