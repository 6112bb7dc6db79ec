package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sony/gobreaker/v2"

	"github.com/jhoicas/credit-service/pkg/logger"
)

// baseResponse envoltura {status, message, data} que devuelven los servicios
// Customer y Account.
type baseResponse[T any] struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// restCaller plumbing HTTP compartido por los dos clientes: arma la petición,
// la ejecuta dentro del breaker y clasifica el estado de la respuesta.
type restCaller struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
	log        *logger.Logger
}

// call ejecuta method url dentro del breaker y devuelve el cuerpo crudo.
// 404 → errNotFound; otros 4xx → *clientError; 5xx y fallos de transporte →
// error que cuenta para la ventana de fallos del breaker.
func (rc *restCaller) call(ctx context.Context, method, url string) ([]byte, error) {
	rc.log.Info().Str("method", method).Str("url", url).Msg("enviando petición al servicio remoto")

	body, err := rc.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, method, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := rc.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, errNotFound
		case resp.StatusCode >= 400 && resp.StatusCode < 500:
			return nil, &clientError{status: resp.StatusCode}
		case resp.StatusCode >= 500:
			return nil, fmt.Errorf("error del servidor upstream: %d", resp.StatusCode)
		}
		return payload, nil
	})
	if err != nil {
		rc.log.Error().Err(err).Str("url", url).Msg("petición al servicio remoto fallida")
		return nil, err
	}
	return body, nil
}

// decodeData extrae data de la envoltura baseResponse.
func decodeData[T any](body []byte) (T, error) {
	var wrapped baseResponse[T]
	if err := json.Unmarshal(body, &wrapped); err != nil {
		var zero T
		return zero, fmt.Errorf("decodificar respuesta del upstream: %w", err)
	}
	return wrapped.Data, nil
}
