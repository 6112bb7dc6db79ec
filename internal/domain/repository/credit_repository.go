package repository

import (
	"context"

	"github.com/jhoicas/credit-service/internal/domain/entity"
)

// CreditRepository define el puerto de persistencia para Credit.
// GetByID devuelve (nil, nil) cuando el crédito no existe.
//
//go:generate mockgen -destination=mocks/mock_credit_repository.go -source=credit_repository.go CreditRepository
type CreditRepository interface {
	Save(ctx context.Context, credit *entity.Credit) error
	GetByID(ctx context.Context, id string) (*entity.Credit, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]*entity.Credit, error)
	GetAll(ctx context.Context) ([]*entity.Credit, error)
	Delete(ctx context.Context, id string) error
}
