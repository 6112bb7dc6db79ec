package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/credit-service/internal/domain/entity"
	"github.com/jhoicas/credit-service/internal/domain/repository"
	"github.com/jhoicas/credit-service/pkg/logger"
)

// Umbrales de escalamiento del estado tras el vencimiento.
const (
	creditDefaultAfter = 90 * 24 * time.Hour // crédito OVERDUE pasa a DEFAULTED
	cardBlockAfter     = 60 * 24 * time.Hour // tarjeta OVERDUE pasa a BLOCKED
)

// batchTimeout cota de la corrida completa del job.
const batchTimeout = 5 * time.Minute

// PaymentDueScheduler job diario que avanza las máquinas de estado de pago.
// Corre en su propio hilo de ejecución, concurrente con el tráfico de
// peticiones y sin locks: el último write gana en la capa de almacenamiento.
// Cada registro se persiste individualmente; el fallo de uno no aborta el lote.
type PaymentDueScheduler struct {
	credits repository.CreditRepository
	cards   repository.CreditCardRepository
	cron    *cron.Cron
	spec    string
	log     *logger.Logger
	now     func() time.Time
}

// New construye el scheduler. spec usa formato cron de 6 campos (con segundos),
// por ejemplo "10 14 1 * * *" para la corrida diaria a la 01:14:10.
func New(credits repository.CreditRepository, cards repository.CreditCardRepository, spec string, log *logger.Logger) *PaymentDueScheduler {
	return &PaymentDueScheduler{
		credits: credits,
		cards:   cards,
		cron:    cron.New(cron.WithSeconds()),
		spec:    spec,
		log:     log.Component("paymentDueScheduler"),
		now:     time.Now,
	}
}

// Start registra y arranca el job cron.
func (s *PaymentDueScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.CheckOverduePayments); err != nil {
		return fmt.Errorf("registrar cron %q: %w", s.spec, err)
	}
	s.cron.Start()
	s.log.Info().Str("cron", s.spec).Msg("scheduler de vencimientos iniciado")
	return nil
}

// Stop detiene el cron y espera a que termine la corrida en curso.
func (s *PaymentDueScheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("scheduler de vencimientos detenido")
}

// CheckOverduePayments corrida completa: créditos y después tarjetas.
func (s *PaymentDueScheduler) CheckOverduePayments() {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	now := s.now()
	s.log.Info().Time("now", now).Msg("iniciando verificación diaria de pagos vencidos")
	s.updateOverdueCredits(ctx, now)
	s.updateOverdueCreditCards(ctx, now)
	s.log.Info().Msg("verificación diaria de pagos vencidos completada")
}

// updateOverdueCredits marca OVERDUE los créditos ACTIVE+PENDING con fecha de
// pago vencida; pasados 90 días además los marca DEFAULTED.
func (s *PaymentDueScheduler) updateOverdueCredits(ctx context.Context, now time.Time) {
	credits, err := s.credits.GetAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("no se pudieron listar los créditos")
		return
	}

	for _, credit := range credits {
		if credit.CreditStatus != entity.CreditStatusActive ||
			credit.PaymentStatus != entity.PaymentStatusPending ||
			credit.NextPaymentDate == nil ||
			!credit.NextPaymentDate.Before(now) {
			continue
		}

		credit.PaymentStatus = entity.PaymentStatusOverdue
		credit.ModifiedAt = now

		late := now.Sub(*credit.NextPaymentDate)
		if late > creditDefaultAfter {
			s.log.Warn().Str("creditId", credit.ID).Dur("late", late).
				Msg("crédito severamente vencido, marcado como DEFAULTED")
			credit.CreditStatus = entity.CreditStatusDefaulted
		}

		if err := s.credits.Save(ctx, credit); err != nil {
			s.log.Error().Err(err).Str("creditId", credit.ID).Msg("no se pudo persistir el crédito vencido")
			continue
		}
		s.log.Info().Str("creditId", credit.ID).Msg("crédito actualizado a OVERDUE")
	}
}

// updateOverdueCreditCards marca OVERDUE las tarjetas ACTIVE+PENDING con fecha
// límite de pago vencida; pasados 60 días además las bloquea.
func (s *PaymentDueScheduler) updateOverdueCreditCards(ctx context.Context, now time.Time) {
	cards, err := s.cards.GetAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("no se pudieron listar las tarjetas")
		return
	}

	for _, card := range cards {
		if card.Status != entity.CardStatusActive ||
			card.PaymentStatus != entity.PaymentStatusPending ||
			card.PaymentDueDate == nil ||
			!card.PaymentDueDate.Before(now) {
			continue
		}

		card.PaymentStatus = entity.PaymentStatusOverdue
		modified := now
		card.ModifiedAt = &modified

		late := now.Sub(*card.PaymentDueDate)
		if late > cardBlockAfter {
			s.log.Warn().Str("creditCardId", card.ID).Dur("late", late).
				Msg("tarjeta severamente vencida, bloqueada")
			card.Status = entity.CardStatusBlocked
		}

		if err := s.cards.Save(ctx, card); err != nil {
			s.log.Error().Err(err).Str("creditCardId", card.ID).Msg("no se pudo persistir la tarjeta vencida")
			continue
		}
		s.log.Info().Str("creditCardId", card.ID).Msg("tarjeta actualizada a OVERDUE")
	}
}

// WithClock reemplaza el reloj del scheduler; solo para tests.
func (s *PaymentDueScheduler) WithClock(now func() time.Time) *PaymentDueScheduler {
	s.now = now
	return s
}
