package repository

import (
	"context"

	"github.com/jhoicas/credit-service/internal/domain/entity"
)

// CreditCardRepository define el puerto de persistencia para CreditCard.
// GetByID devuelve (nil, nil) cuando la tarjeta no existe.
//
//go:generate mockgen -destination=mocks/mock_creditcard_repository.go -source=creditcard_repository.go CreditCardRepository
type CreditCardRepository interface {
	Save(ctx context.Context, card *entity.CreditCard) error
	GetByID(ctx context.Context, id string) (*entity.CreditCard, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]*entity.CreditCard, error)
	GetAll(ctx context.Context) ([]*entity.CreditCard, error)
	Delete(ctx context.Context, id string) error
}
