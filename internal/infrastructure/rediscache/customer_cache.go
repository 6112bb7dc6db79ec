package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/credit-service/internal/application/ports"
	"github.com/jhoicas/credit-service/internal/domain"
	"github.com/jhoicas/credit-service/internal/domain/entity"
	"github.com/jhoicas/credit-service/pkg/config"
	"github.com/jhoicas/credit-service/pkg/logger"
)

var _ ports.CustomerCache = (*CustomerCache)(nil)

const (
	// customerKeyPrefix sin espacio después de los dos puntos.
	customerKeyPrefix = "Customer:"
	// readTimeout cota fija de lectura; excederla se trata como miss.
	readTimeout = 5 * time.Second
)

// CustomerCache adaptador Redis del cache de clientes. Cache-aside sin TTL:
// el resolver decide cuándo refrescar desde la fuente de verdad.
type CustomerCache struct {
	rdb *redis.Client
	log *logger.Logger
}

// New construye el adaptador.
func New(cfg config.RedisConfig, log *logger.Logger) *CustomerCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &CustomerCache{rdb: rdb, log: log.Component("customerCache")}
}

// Ping verifica la conexión; usado solo al arrancar.
func (c *CustomerCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close cierra la conexión con Redis.
func (c *CustomerCache) Close() error {
	return c.rdb.Close()
}

// GetCustomer devuelve (nil, nil) en miss. Un valor corrupto también cuenta
// como miss (se registra); los errores de conectividad o timeout se devuelven
// para que el resolver los degrade.
func (c *CustomerCache) GetCustomer(ctx context.Context, customerID string) (*entity.Customer, error) {
	if customerID == "" {
		return nil, domain.ErrInvalidInput
	}
	key := customerKeyPrefix + customerID

	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer cache %s: %w", key, err)
	}

	var cust entity.Customer
	if err := json.Unmarshal([]byte(val), &cust); err != nil {
		c.log.Error().Err(err).Str("key", key).Msg("valor de cache corrupto, tratado como miss")
		return nil, nil
	}
	return &cust, nil
}

// SaveCustomer serializa el snapshot y lo guarda sin expiración.
func (c *CustomerCache) SaveCustomer(ctx context.Context, customerID string, customer *entity.Customer) error {
	if customerID == "" {
		return domain.ErrInvalidInput
	}
	key := customerKeyPrefix + customerID

	payload, err := json.Marshal(customer)
	if err != nil {
		return fmt.Errorf("serializar cliente %s: %w", customerID, err)
	}
	if err := c.rdb.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("guardar cache %s: %w", key, err)
	}
	c.log.Debug().Str("key", key).Msg("cliente guardado en cache")
	return nil
}
