package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/credit-service/internal/application/ports"
	"github.com/jhoicas/credit-service/internal/domain/entity"
	"github.com/jhoicas/credit-service/pkg/config"
	"github.com/jhoicas/credit-service/pkg/logger"
)

// Tópicos de eventos de ciclo de vida.
const (
	TopicCreditCreated     = "credit-created"
	TopicCreditUpdated     = "credit-updated"
	TopicCreditCardCreated = "creditcard-created"
	TopicCreditCardUpdated = "creditcard-updated"
)

var (
	_ ports.CreditEventPublisher     = (*Producer)(nil)
	_ ports.CreditCardEventPublisher = (*Producer)(nil)
)

// Producer publica los eventos de ciclo de vida en Kafka. La publicación es
// fire-and-forget en goroutine propia: el resultado se registra en el log y
// nunca bloquea ni hace fallar la operación que disparó el evento. La entrega
// es at-least-once.
type Producer struct {
	writer  *kafka.Writer
	timeout time.Duration
	log     *logger.Logger
}

// NewProducer construye el productor; el tópico se fija por mensaje.
func NewProducer(cfg config.KafkaConfig, log *logger.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: writer, timeout: cfg.WriteTimeout, log: log.Component("eventProducer")}
}

// Close cierra el writer subyacente.
func (p *Producer) Close() error {
	return p.writer.Close()
}

// PublishCreditCreated publica el crédito recién creado en "credit-created".
func (p *Producer) PublishCreditCreated(credit *entity.Credit) {
	p.publish(TopicCreditCreated, credit.ID, credit)
}

// PublishCreditUpdated publica el crédito actualizado en "credit-updated".
func (p *Producer) PublishCreditUpdated(credit *entity.Credit) {
	p.publish(TopicCreditUpdated, credit.ID, credit)
}

// PublishCreditCardCreated publica la tarjeta creada en "creditcard-created".
func (p *Producer) PublishCreditCardCreated(card *entity.CreditCard) {
	p.publish(TopicCreditCardCreated, card.ID, card)
}

// PublishCreditCardUpdated publica la tarjeta actualizada en "creditcard-updated".
func (p *Producer) PublishCreditCardUpdated(card *entity.CreditCard) {
	p.publish(TopicCreditCardUpdated, card.ID, card)
}

func (p *Producer) publish(topic, key string, payload any) {
	value, err := json.Marshal(payload)
	if err != nil {
		p.log.Error().Err(err).Str("topic", topic).Str("key", key).Msg("no se pudo serializar el evento")
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()

		err := p.writer.WriteMessages(ctx, kafka.Message{
			Topic: topic,
			Key:   []byte(key),
			Value: value,
		})
		if err != nil {
			p.log.Error().Err(err).Str("topic", topic).Str("key", key).Msg("fallo enviando el evento")
			return
		}
		p.log.Info().Str("topic", topic).Str("key", key).Msg("evento enviado")
	}()
}
