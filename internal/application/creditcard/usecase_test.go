package creditcard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/credit-service/internal/application/creditcard"
	"github.com/jhoicas/credit-service/internal/application/dto"
	mock_ports "github.com/jhoicas/credit-service/internal/application/ports/mocks"
	"github.com/jhoicas/credit-service/internal/domain"
	"github.com/jhoicas/credit-service/internal/domain/entity"
	mock_repository "github.com/jhoicas/credit-service/internal/domain/repository/mocks"
	"github.com/jhoicas/credit-service/pkg/logger"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type cardMocks struct {
	repo     *mock_repository.MockCreditCardRepository
	resolver *mock_ports.MockCustomerResolver
	accounts *mock_ports.MockAccountClient
	customer *mock_ports.MockCustomerClient
	events   *mock_ports.MockCreditCardEventPublisher
}

func newCardUseCase(t *testing.T) (*creditcard.UseCase, cardMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := cardMocks{
		repo:     mock_repository.NewMockCreditCardRepository(ctrl),
		resolver: mock_ports.NewMockCustomerResolver(ctrl),
		accounts: mock_ports.NewMockAccountClient(ctrl),
		customer: mock_ports.NewMockCustomerClient(ctrl),
		events:   mock_ports.NewMockCreditCardEventPublisher(ctrl),
	}
	uc := creditcard.NewUseCase(m.repo, m.resolver, m.accounts, m.customer, m.events, logger.Nop()).
		WithClock(func() time.Time { return fixedNow })
	return uc, m
}

func personalCustomer() *entity.Customer {
	return &entity.Customer{ID: "c-1", CustomerType: entity.CustomerTypePersonal}
}

func businessCustomer() *entity.Customer {
	return &entity.Customer{ID: "c-2", CustomerType: entity.CustomerTypeBusiness}
}

func TestUseCase_Create_VipCascade(t *testing.T) {
	ctx := context.Background()
	limit := decimal.NewFromInt(5000)
	req := dto.CreateCreditCardRequest{
		CustomerID:  "c-1",
		CardType:    entity.CardTypePersonal,
		CreditLimit: limit,
	}

	t.Run("personal con cuenta de ahorros: marca la primera cuenta y al cliente", func(t *testing.T) {
		uc, m := newCardUseCase(t)
		m.resolver.EXPECT().Resolve(gomock.Any(), "c-1").Return(personalCustomer(), nil)
		m.accounts.EXPECT().GetAccountsByCustomer(gomock.Any(), "c-1").Return([]entity.Account{
			{ID: "a-1", AccountType: entity.AccountTypeChecking},
			{ID: "a-2", AccountType: entity.AccountTypeSavings},
			{ID: "a-3", AccountType: entity.AccountTypeSavings},
		}, nil)
		// solo la primera cuenta de ahorros, no la segunda
		m.accounts.EXPECT().UpdateVipPymStatus(gomock.Any(), "a-2", true, "VIP").Return(&entity.Account{ID: "a-2"}, nil)
		m.customer.EXPECT().UpdateVipPymStatus(gomock.Any(), "c-1", true).Return(personalCustomer(), nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.events.EXPECT().PublishCreditCardCreated(gomock.Any())

		got, err := uc.Create(ctx, req)
		require.NoError(t, err)
		assert.True(t, got.AvailableBalance.Equal(limit), "el saldo disponible inicia igual al límite")
		assert.Equal(t, entity.CardStatusActive, got.Status)
		assert.Equal(t, entity.PaymentStatusPending, got.PaymentStatus)
		assert.Equal(t, fixedNow, got.CreatedAt)
		assert.Nil(t, got.ModifiedAt)
	})

	t.Run("personal sin cuenta de ahorros: la cascada se omite en silencio", func(t *testing.T) {
		uc, m := newCardUseCase(t)
		m.resolver.EXPECT().Resolve(gomock.Any(), "c-1").Return(personalCustomer(), nil)
		m.accounts.EXPECT().GetAccountsByCustomer(gomock.Any(), "c-1").Return([]entity.Account{
			{ID: "a-1", AccountType: entity.AccountTypeChecking},
		}, nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.events.EXPECT().PublishCreditCardCreated(gomock.Any())

		_, err := uc.Create(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("fallo marcando la cuenta aborta la creación", func(t *testing.T) {
		uc, m := newCardUseCase(t)
		m.resolver.EXPECT().Resolve(gomock.Any(), "c-1").Return(personalCustomer(), nil)
		m.accounts.EXPECT().GetAccountsByCustomer(gomock.Any(), "c-1").Return([]entity.Account{
			{ID: "a-2", AccountType: entity.AccountTypeSavings},
		}, nil)
		m.accounts.EXPECT().UpdateVipPymStatus(gomock.Any(), "a-2", true, "VIP").
			Return(nil, errors.New("account service caído"))

		_, err := uc.Create(ctx, req)
		assert.Error(t, err)
	})

	t.Run("fallo consultando cuentas aborta la creación", func(t *testing.T) {
		uc, m := newCardUseCase(t)
		m.resolver.EXPECT().Resolve(gomock.Any(), "c-1").Return(personalCustomer(), nil)
		m.accounts.EXPECT().GetAccountsByCustomer(gomock.Any(), "c-1").
			Return(nil, domain.ErrAccountServiceUnavailable)

		_, err := uc.Create(ctx, req)
		assert.ErrorIs(t, err, domain.ErrAccountServiceUnavailable)
	})
}

func TestUseCase_Create_PymCascade(t *testing.T) {
	ctx := context.Background()
	req := dto.CreateCreditCardRequest{
		CustomerID:  "c-2",
		CardType:    entity.CardTypeBusiness,
		CreditLimit: decimal.NewFromInt(20000),
	}

	t.Run("empresarial: todas las cuentas corrientes y después el cliente", func(t *testing.T) {
		uc, m := newCardUseCase(t)
		m.resolver.EXPECT().Resolve(gomock.Any(), "c-2").Return(businessCustomer(), nil)
		m.accounts.EXPECT().GetAccountsByCustomer(gomock.Any(), "c-2").Return([]entity.Account{
			{ID: "a-1", AccountType: entity.AccountTypeChecking},
			{ID: "a-2", AccountType: entity.AccountTypeSavings},
			{ID: "a-3", AccountType: entity.AccountTypeChecking},
		}, nil)
		m.accounts.EXPECT().UpdateVipPymStatus(gomock.Any(), "a-1", true, "PYM").Return(&entity.Account{ID: "a-1"}, nil)
		m.accounts.EXPECT().UpdateVipPymStatus(gomock.Any(), "a-3", true, "PYM").Return(&entity.Account{ID: "a-3"}, nil)
		m.customer.EXPECT().UpdateVipPymStatus(gomock.Any(), "c-2", true).Return(businessCustomer(), nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.events.EXPECT().PublishCreditCardCreated(gomock.Any())

		_, err := uc.Create(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("fallo parcial en las cuentas: el cliente no se marca", func(t *testing.T) {
		uc, m := newCardUseCase(t)
		m.resolver.EXPECT().Resolve(gomock.Any(), "c-2").Return(businessCustomer(), nil)
		m.accounts.EXPECT().GetAccountsByCustomer(gomock.Any(), "c-2").Return([]entity.Account{
			{ID: "a-1", AccountType: entity.AccountTypeChecking},
			{ID: "a-3", AccountType: entity.AccountTypeChecking},
		}, nil)
		m.accounts.EXPECT().UpdateVipPymStatus(gomock.Any(), "a-1", true, "PYM").Return(&entity.Account{ID: "a-1"}, nil)
		m.accounts.EXPECT().UpdateVipPymStatus(gomock.Any(), "a-3", true, "PYM").
			Return(nil, errors.New("timeout"))
		// customer.UpdateVipPymStatus no se llama

		_, err := uc.Create(ctx, req)
		assert.Error(t, err)
	})
}

func TestUseCase_Create_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("entradas inválidas", func(t *testing.T) {
		uc, _ := newCardUseCase(t)
		_, err := uc.Create(ctx, dto.CreateCreditCardRequest{CustomerID: "", CreditLimit: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = uc.Create(ctx, dto.CreateCreditCardRequest{CustomerID: "c-1", CreditLimit: decimal.Zero})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("cliente irresoluble", func(t *testing.T) {
		uc, m := newCardUseCase(t)
		m.resolver.EXPECT().Resolve(gomock.Any(), "c-9").Return(nil, nil)

		_, err := uc.Create(ctx, dto.CreateCreditCardRequest{
			CustomerID: "c-9", CardType: entity.CardTypePersonal, CreditLimit: decimal.NewFromInt(100),
		})
		assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	})

	t.Run("incompatibilidad de tipos", func(t *testing.T) {
		uc, m := newCardUseCase(t)
		m.resolver.EXPECT().Resolve(gomock.Any(), "c-1").Return(personalCustomer(), nil)

		_, err := uc.Create(ctx, dto.CreateCreditCardRequest{
			CustomerID: "c-1", CardType: entity.CardTypeBusiness, CreditLimit: decimal.NewFromInt(100),
		})
		assert.ErrorIs(t, err, domain.ErrTypeMismatch)
	})
}

func TestUseCase_Delete_Reversal(t *testing.T) {
	ctx := context.Background()
	card := &entity.CreditCard{ID: "card-1", CustomerID: "c-1", CardType: entity.CardTypePersonal}

	t.Run("última tarjeta: desmarca cuentas de ahorro y cliente", func(t *testing.T) {
		uc, m := newCardUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(card, nil)
		m.resolver.EXPECT().Resolve(gomock.Any(), "c-1").Return(personalCustomer(), nil)
		m.repo.EXPECT().Delete(gomock.Any(), "card-1").Return(nil)
		m.repo.EXPECT().GetByCustomerID(gomock.Any(), "c-1").Return(nil, nil)
		m.accounts.EXPECT().GetAccountsByCustomer(gomock.Any(), "c-1").Return([]entity.Account{
			{ID: "a-1", AccountType: entity.AccountTypeSavings},
			{ID: "a-2", AccountType: entity.AccountTypeChecking},
		}, nil)
		m.accounts.EXPECT().UpdateVipPymStatus(gomock.Any(), "a-1", false, "VIP").Return(&entity.Account{ID: "a-1"}, nil)
		m.customer.EXPECT().UpdateVipPymStatus(gomock.Any(), "c-1", false).Return(personalCustomer(), nil)

		assert.NoError(t, uc.Delete(ctx, "card-1"))
	})

	t.Run("quedan tarjetas: sin reversa", func(t *testing.T) {
		uc, m := newCardUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(card, nil)
		m.resolver.EXPECT().Resolve(gomock.Any(), "c-1").Return(personalCustomer(), nil)
		m.repo.EXPECT().Delete(gomock.Any(), "card-1").Return(nil)
		m.repo.EXPECT().GetByCustomerID(gomock.Any(), "c-1").Return([]*entity.CreditCard{
			{ID: "card-2", CustomerID: "c-1"},
		}, nil)
		// ni accounts ni customer reciben llamadas

		assert.NoError(t, uc.Delete(ctx, "card-1"))
	})

	t.Run("fallo desmarcando una cuenta: el cliente conserva la marca", func(t *testing.T) {
		uc, m := newCardUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(card, nil)
		m.resolver.EXPECT().Resolve(gomock.Any(), "c-1").Return(personalCustomer(), nil)
		m.repo.EXPECT().Delete(gomock.Any(), "card-1").Return(nil)
		m.repo.EXPECT().GetByCustomerID(gomock.Any(), "c-1").Return(nil, nil)
		m.accounts.EXPECT().GetAccountsByCustomer(gomock.Any(), "c-1").Return([]entity.Account{
			{ID: "a-1", AccountType: entity.AccountTypeSavings},
		}, nil)
		m.accounts.EXPECT().UpdateVipPymStatus(gomock.Any(), "a-1", false, "VIP").
			Return(nil, errors.New("timeout"))
		// customer.UpdateVipPymStatus no se llama

		assert.Error(t, uc.Delete(ctx, "card-1"))
	})

	t.Run("dueño irresoluble: el borrado no procede", func(t *testing.T) {
		uc, m := newCardUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(card, nil)
		m.resolver.EXPECT().Resolve(gomock.Any(), "c-1").Return(nil, nil)

		assert.ErrorIs(t, uc.Delete(ctx, "card-1"), domain.ErrCustomerNotFound)
	})

	t.Run("tarjeta inexistente", func(t *testing.T) {
		uc, m := newCardUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "card-x").Return(nil, nil)

		assert.ErrorIs(t, uc.Delete(ctx, "card-x"), domain.ErrNotFound)
	})
}

func TestUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("reemplaza límite, saldo y estado", func(t *testing.T) {
		uc, m := newCardUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "card-1").Return(&entity.CreditCard{
			ID: "card-1", CustomerID: "c-1", Status: entity.CardStatusActive,
		}, nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.events.EXPECT().PublishCreditCardUpdated(gomock.Any())

		got, err := uc.Update(ctx, "card-1", dto.UpdateCreditCardRequest{
			CreditLimit:      decimal.NewFromInt(8000),
			AvailableBalance: decimal.NewFromInt(7500),
			Status:           entity.CardStatusBlocked,
		})
		require.NoError(t, err)
		assert.True(t, got.CreditLimit.Equal(decimal.NewFromInt(8000)))
		assert.Equal(t, entity.CardStatusBlocked, got.Status)
		require.NotNil(t, got.ModifiedAt)
		assert.Equal(t, fixedNow, *got.ModifiedAt)
	})

	t.Run("inexistente", func(t *testing.T) {
		uc, m := newCardUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "card-x").Return(nil, nil)

		_, err := uc.Update(ctx, "card-x", dto.UpdateCreditCardRequest{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUseCase_GetByCustomerID_Empty(t *testing.T) {
	uc, m := newCardUseCase(t)
	m.repo.EXPECT().GetByCustomerID(gomock.Any(), "c-1").Return(nil, nil)

	_, err := uc.GetByCustomerID(context.Background(), "c-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
