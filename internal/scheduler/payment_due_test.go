package scheduler_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/credit-service/internal/domain/entity"
	mock_repository "github.com/jhoicas/credit-service/internal/domain/repository/mocks"
	"github.com/jhoicas/credit-service/internal/scheduler"
	"github.com/jhoicas/credit-service/pkg/logger"
)

var now = time.Date(2025, 6, 15, 1, 14, 10, 0, time.UTC)

func daysAgo(d int) *time.Time {
	t := now.AddDate(0, 0, -d)
	return &t
}

func newScheduler(t *testing.T) (*scheduler.PaymentDueScheduler, *mock_repository.MockCreditRepository, *mock_repository.MockCreditCardRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	credits := mock_repository.NewMockCreditRepository(ctrl)
	cards := mock_repository.NewMockCreditCardRepository(ctrl)
	s := scheduler.New(credits, cards, "10 14 1 * * *", logger.Nop()).
		WithClock(func() time.Time { return now })
	return s, credits, cards
}

func TestCheckOverduePayments_Credits(t *testing.T) {
	t.Run("vencido hace poco: OVERDUE pero sigue ACTIVE", func(t *testing.T) {
		s, credits, cards := newScheduler(t)
		credits.EXPECT().GetAll(gomock.Any()).Return([]*entity.Credit{{
			ID:              "cr-1",
			CreditStatus:    entity.CreditStatusActive,
			PaymentStatus:   entity.PaymentStatusPending,
			NextPaymentDate: daysAgo(10),
		}}, nil)
		credits.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, c *entity.Credit) error {
				assert.Equal(t, entity.PaymentStatusOverdue, c.PaymentStatus)
				assert.Equal(t, entity.CreditStatusActive, c.CreditStatus)
				assert.Equal(t, now, c.ModifiedAt)
				return nil
			})
		cards.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

		s.CheckOverduePayments()
	})

	t.Run("vencido hace más de 90 días: OVERDUE y DEFAULTED", func(t *testing.T) {
		s, credits, cards := newScheduler(t)
		credits.EXPECT().GetAll(gomock.Any()).Return([]*entity.Credit{{
			ID:              "cr-2",
			CreditStatus:    entity.CreditStatusActive,
			PaymentStatus:   entity.PaymentStatusPending,
			NextPaymentDate: daysAgo(95),
		}}, nil)
		credits.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, c *entity.Credit) error {
				assert.Equal(t, entity.PaymentStatusOverdue, c.PaymentStatus)
				assert.Equal(t, entity.CreditStatusDefaulted, c.CreditStatus)
				return nil
			})
		cards.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

		s.CheckOverduePayments()
	})

	t.Run("pagados, futuros o sin fecha no se tocan", func(t *testing.T) {
		s, credits, cards := newScheduler(t)
		future := now.AddDate(0, 0, 5)
		credits.EXPECT().GetAll(gomock.Any()).Return([]*entity.Credit{
			{ID: "cr-3", CreditStatus: entity.CreditStatusActive, PaymentStatus: entity.PaymentStatusPaid, NextPaymentDate: daysAgo(10)},
			{ID: "cr-4", CreditStatus: entity.CreditStatusActive, PaymentStatus: entity.PaymentStatusPending, NextPaymentDate: &future},
			{ID: "cr-5", CreditStatus: entity.CreditStatusActive, PaymentStatus: entity.PaymentStatusPending},
			{ID: "cr-6", CreditStatus: entity.CreditStatusFinished, PaymentStatus: entity.PaymentStatusPending, NextPaymentDate: daysAgo(10)},
		}, nil)
		cards.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
		// sin llamadas a Save

		s.CheckOverduePayments()
	})

	t.Run("un fallo de persistencia no aborta el lote", func(t *testing.T) {
		s, credits, cards := newScheduler(t)
		credits.EXPECT().GetAll(gomock.Any()).Return([]*entity.Credit{
			{ID: "cr-7", CreditStatus: entity.CreditStatusActive, PaymentStatus: entity.PaymentStatusPending, NextPaymentDate: daysAgo(5)},
			{ID: "cr-8", CreditStatus: entity.CreditStatusActive, PaymentStatus: entity.PaymentStatusPending, NextPaymentDate: daysAgo(5)},
		}, nil)
		gomock.InOrder(
			credits.EXPECT().Save(gomock.Any(), gomock.Any()).Return(assert.AnError),
			credits.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
		)
		cards.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

		s.CheckOverduePayments()
	})
}

func TestCheckOverduePayments_CreditCards(t *testing.T) {
	t.Run("vencida hace poco: OVERDUE pero sigue ACTIVE", func(t *testing.T) {
		s, credits, cards := newScheduler(t)
		credits.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
		cards.EXPECT().GetAll(gomock.Any()).Return([]*entity.CreditCard{{
			ID:             "card-1",
			Status:         entity.CardStatusActive,
			PaymentStatus:  entity.PaymentStatusPending,
			PaymentDueDate: daysAgo(10),
		}}, nil)
		cards.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, c *entity.CreditCard) error {
				assert.Equal(t, entity.PaymentStatusOverdue, c.PaymentStatus)
				assert.Equal(t, entity.CardStatusActive, c.Status)
				require.NotNil(t, c.ModifiedAt)
				assert.Equal(t, now, *c.ModifiedAt)
				return nil
			})

		s.CheckOverduePayments()
	})

	t.Run("vencida hace más de 60 días: OVERDUE y BLOCKED", func(t *testing.T) {
		s, credits, cards := newScheduler(t)
		credits.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
		cards.EXPECT().GetAll(gomock.Any()).Return([]*entity.CreditCard{{
			ID:             "card-2",
			Status:         entity.CardStatusActive,
			PaymentStatus:  entity.PaymentStatusPending,
			PaymentDueDate: daysAgo(65),
		}}, nil)
		cards.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, c *entity.CreditCard) error {
				assert.Equal(t, entity.PaymentStatusOverdue, c.PaymentStatus)
				assert.Equal(t, entity.CardStatusBlocked, c.Status)
				return nil
			})

		s.CheckOverduePayments()
	})

	t.Run("bloqueadas o al día no se tocan", func(t *testing.T) {
		s, credits, cards := newScheduler(t)
		credits.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
		cards.EXPECT().GetAll(gomock.Any()).Return([]*entity.CreditCard{
			{ID: "card-3", Status: entity.CardStatusBlocked, PaymentStatus: entity.PaymentStatusPending, PaymentDueDate: daysAgo(10)},
			{ID: "card-4", Status: entity.CardStatusActive, PaymentStatus: entity.PaymentStatusPaid, PaymentDueDate: daysAgo(10)},
			{ID: "card-5", Status: entity.CardStatusActive, PaymentStatus: entity.PaymentStatusPending},
		}, nil)

		s.CheckOverduePayments()
	})
}
