package eligibility

import (
	"context"
	"sync"

	"github.com/jhoicas/credit-service/internal/domain/entity"
	"github.com/jhoicas/credit-service/internal/domain/repository"
	"github.com/jhoicas/credit-service/pkg/logger"
)

// Service motor de elegibilidad: decide si un cliente tiene algún producto
// vencido. Las dos colecciones se revisan en paralelo y el resultado es el OR
// lógico; una colección vacía cuenta como "sin deuda".
type Service struct {
	credits repository.CreditRepository
	cards   repository.CreditCardRepository
	log     *logger.Logger
}

// NewService construye el motor de elegibilidad.
func NewService(credits repository.CreditRepository, cards repository.CreditCardRepository, log *logger.Logger) *Service {
	return &Service{credits: credits, cards: cards, log: log.Component("eligibility")}
}

// HasOverdueDebt devuelve true si el cliente tiene al menos un crédito
// ACTIVE+OVERDUE o una tarjeta ACTIVE+OVERDUE.
func (s *Service) HasOverdueDebt(ctx context.Context, customerID string) (bool, error) {
	s.log.Info().Str("customerId", customerID).Msg("verificando deuda vencida del cliente")

	var (
		wg          sync.WaitGroup
		creditDebt  bool
		cardDebt    bool
		creditErr   error
		cardErr     error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		creditDebt, creditErr = s.hasOverdueCredit(ctx, customerID)
	}()
	go func() {
		defer wg.Done()
		cardDebt, cardErr = s.hasOverdueCreditCard(ctx, customerID)
	}()
	wg.Wait()

	if creditErr != nil {
		return false, creditErr
	}
	if cardErr != nil {
		return false, cardErr
	}

	hasDebt := creditDebt || cardDebt
	s.log.Info().Str("customerId", customerID).Bool("hasOverdueDebt", hasDebt).Msg("verificación de deuda completada")
	return hasDebt, nil
}

// IsEligibleForNewProduct es la negación de HasOverdueDebt.
func (s *Service) IsEligibleForNewProduct(ctx context.Context, customerID string) (bool, error) {
	hasDebt, err := s.HasOverdueDebt(ctx, customerID)
	if err != nil {
		return false, err
	}
	return !hasDebt, nil
}

func (s *Service) hasOverdueCredit(ctx context.Context, customerID string) (bool, error) {
	credits, err := s.credits.GetByCustomerID(ctx, customerID)
	if err != nil {
		return false, err
	}
	for _, c := range credits {
		if c.CreditStatus == entity.CreditStatusActive && c.PaymentStatus == entity.PaymentStatusOverdue {
			s.log.Info().Str("customerId", customerID).Str("creditId", c.ID).Msg("el cliente tiene créditos vencidos")
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) hasOverdueCreditCard(ctx context.Context, customerID string) (bool, error) {
	cards, err := s.cards.GetByCustomerID(ctx, customerID)
	if err != nil {
		return false, err
	}
	for _, card := range cards {
		if card.Status == entity.CardStatusActive && card.PaymentStatus == entity.PaymentStatusOverdue {
			s.log.Info().Str("customerId", customerID).Str("creditCardId", card.ID).Msg("el cliente tiene tarjetas vencidas")
			return true, nil
		}
	}
	return false, nil
}
