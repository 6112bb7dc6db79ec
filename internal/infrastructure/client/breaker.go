package client

import (
	"errors"
	"fmt"

	"github.com/sony/gobreaker/v2"

	"github.com/jhoicas/credit-service/pkg/config"
	"github.com/jhoicas/credit-service/pkg/logger"
)

// Nombres de los dos breakers, uno por servicio remoto. Cada breaker es
// estado mutable compartido a nivel de proceso: todas las peticiones a un
// mismo upstream pasan por la misma máquina CLOSED → OPEN → HALF_OPEN.
const (
	CustomerBreakerName = "customerService"
	AccountBreakerName  = "accountService"
)

// errNotFound marca un 404 del upstream; el caller decide si es vacío
// (cuentas) o ErrNotFound de dominio (cliente).
var errNotFound = errors.New("upstream respondió 404")

// clientError un 4xx del upstream distinto de 404. Se propaga al caller y no
// cuenta como fallo para el breaker.
type clientError struct {
	status int
}

func (e *clientError) Error() string {
	return fmt.Sprintf("error de cliente del upstream: %d", e.status)
}

// isClientFault distingue los errores que son culpa de la petición (4xx) de
// los fallos del upstream (5xx, red, timeout) que sí deben abrir el breaker.
func isClientFault(err error) bool {
	var ce *clientError
	return errors.Is(err, errNotFound) || errors.As(err, &ce)
}

// newBreaker construye un circuit breaker nombrado sobre el cuerpo de la
// respuesta HTTP. Abre cuando la tasa de fallos de la ventana supera
// FailureRatio (con al menos MinRequests llamadas); tras OpenTimeout pasa a
// HALF_OPEN y admite HalfOpenMaxCalls llamadas de prueba.
func newBreaker(name string, cfg config.BreakerConfig, log *logger.Logger) *gobreaker.CircuitBreaker[[]byte] {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.HalfOpenMaxCalls,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isClientFault(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("transición de estado del circuit breaker")
		},
	}

	cb := gobreaker.NewCircuitBreaker[[]byte](settings)
	log.Info().Str("breaker", name).Str("state", cb.State().String()).Msg("circuit breaker inicializado")
	return cb
}

// isBreakerOpen true cuando la llamada falló rápido por breaker abierto o por
// exceso de llamadas de prueba en HALF_OPEN.
func isBreakerOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
