package ports

import "github.com/jhoicas/credit-service/internal/domain/entity"

// Productores de eventos de ciclo de vida. La publicación es fire-and-forget:
// el fallo se registra en el log y nunca bloquea ni hace fallar la operación
// que lo disparó; la entrega es at-least-once.
//
//go:generate mockgen -destination=mocks/mock_events.go -source=events.go

// CreditEventPublisher publica eventos de créditos.
type CreditEventPublisher interface {
	PublishCreditCreated(credit *entity.Credit)
	PublishCreditUpdated(credit *entity.Credit)
}

// CreditCardEventPublisher publica eventos de tarjetas.
type CreditCardEventPublisher interface {
	PublishCreditCardCreated(card *entity.CreditCard)
	PublishCreditCardUpdated(card *entity.CreditCard)
}
