package eligibility_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/credit-service/internal/application/eligibility"
	"github.com/jhoicas/credit-service/internal/domain/entity"
	mock_repository "github.com/jhoicas/credit-service/internal/domain/repository/mocks"
	"github.com/jhoicas/credit-service/pkg/logger"
)

func overdueCredit() *entity.Credit {
	return &entity.Credit{
		ID:            "cr-1",
		CustomerID:    "c-1",
		CreditStatus:  entity.CreditStatusActive,
		PaymentStatus: entity.PaymentStatusOverdue,
	}
}

func overdueCard() *entity.CreditCard {
	return &entity.CreditCard{
		ID:            "card-1",
		CustomerID:    "c-1",
		Status:        entity.CardStatusActive,
		PaymentStatus: entity.PaymentStatusOverdue,
	}
}

func TestService_HasOverdueDebt(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		credits []*entity.Credit
		cards   []*entity.CreditCard
		want    bool
	}{
		{
			name: "sin productos no hay deuda",
			want: false,
		},
		{
			name:    "crédito vencido cuenta como deuda",
			credits: []*entity.Credit{overdueCredit()},
			want:    true,
		},
		{
			name:  "tarjeta vencida cuenta como deuda",
			cards: []*entity.CreditCard{overdueCard()},
			want:  true,
		},
		{
			name:    "ambos vencidos también es deuda",
			credits: []*entity.Credit{overdueCredit()},
			cards:   []*entity.CreditCard{overdueCard()},
			want:    true,
		},
		{
			name: "crédito vencido pero FINISHED no cuenta",
			credits: []*entity.Credit{{
				ID:            "cr-2",
				CreditStatus:  entity.CreditStatusFinished,
				PaymentStatus: entity.PaymentStatusOverdue,
			}},
			want: false,
		},
		{
			name: "tarjeta vencida pero bloqueada no cuenta",
			cards: []*entity.CreditCard{{
				ID:            "card-2",
				Status:        entity.CardStatusBlocked,
				PaymentStatus: entity.PaymentStatusOverdue,
			}},
			want: false,
		},
		{
			name: "productos al día no cuentan",
			credits: []*entity.Credit{{
				ID:            "cr-3",
				CreditStatus:  entity.CreditStatusActive,
				PaymentStatus: entity.PaymentStatusPending,
			}},
			cards: []*entity.CreditCard{{
				ID:            "card-3",
				Status:        entity.CardStatusActive,
				PaymentStatus: entity.PaymentStatusPaid,
			}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			credits := mock_repository.NewMockCreditRepository(ctrl)
			cards := mock_repository.NewMockCreditCardRepository(ctrl)
			credits.EXPECT().GetByCustomerID(gomock.Any(), "c-1").Return(tt.credits, nil)
			cards.EXPECT().GetByCustomerID(gomock.Any(), "c-1").Return(tt.cards, nil)

			svc := eligibility.NewService(credits, cards, logger.Nop())
			got, err := svc.HasOverdueDebt(ctx, "c-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_HasOverdueDebt_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credits := mock_repository.NewMockCreditRepository(ctrl)
	cards := mock_repository.NewMockCreditCardRepository(ctrl)
	credits.EXPECT().GetByCustomerID(gomock.Any(), "c-1").Return(nil, errors.New("db caída"))
	cards.EXPECT().GetByCustomerID(gomock.Any(), "c-1").Return(nil, nil)

	svc := eligibility.NewService(credits, cards, logger.Nop())
	_, err := svc.HasOverdueDebt(context.Background(), "c-1")
	assert.Error(t, err)
}

func TestService_IsEligibleForNewProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credits := mock_repository.NewMockCreditRepository(ctrl)
	cards := mock_repository.NewMockCreditCardRepository(ctrl)
	credits.EXPECT().GetByCustomerID(gomock.Any(), "c-1").Return([]*entity.Credit{overdueCredit()}, nil)
	cards.EXPECT().GetByCustomerID(gomock.Any(), "c-1").Return(nil, nil)

	svc := eligibility.NewService(credits, cards, logger.Nop())
	eligible, err := svc.IsEligibleForNewProduct(context.Background(), "c-1")
	require.NoError(t, err)
	assert.False(t, eligible, "con deuda vencida el cliente no es elegible")
}
