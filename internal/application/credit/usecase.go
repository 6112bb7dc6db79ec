package credit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/credit-service/internal/application/dto"
	"github.com/jhoicas/credit-service/internal/application/ports"
	"github.com/jhoicas/credit-service/internal/domain"
	"github.com/jhoicas/credit-service/internal/domain/entity"
	"github.com/jhoicas/credit-service/internal/domain/repository"
	"github.com/jhoicas/credit-service/pkg/logger"
)

// minimumPaymentRate el pago mínimo inicial es el 10% del monto.
var minimumPaymentRate = decimal.NewFromFloat(0.10)

// UseCase orquestador del ciclo de vida de líneas de crédito.
//
// La creación encadena: verificación de deuda vencida → resolución del cliente
// → regla de compatibilidad de tipos → regla "un crédito activo por cliente
// personal" → persistencia → evento best-effort. La verificación de duplicado
// y el guardado final no comparten transacción; la unicidad real la garantiza
// el índice parcial de la capa de almacenamiento.
type UseCase struct {
	repo        repository.CreditRepository
	resolver    ports.CustomerResolver
	eligibility ports.EligibilityChecker
	events      ports.CreditEventPublisher
	log         *logger.Logger
	now         func() time.Time
}

// NewUseCase construye el orquestador de créditos.
func NewUseCase(
	repo repository.CreditRepository,
	resolver ports.CustomerResolver,
	eligibility ports.EligibilityChecker,
	events ports.CreditEventPublisher,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		repo:        repo,
		resolver:    resolver,
		eligibility: eligibility,
		events:      events,
		log:         log.Component("creditService"),
		now:         time.Now,
	}
}

// Create crea una línea de crédito aplicando las reglas de negocio.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateCreditRequest) (*entity.Credit, error) {
	if in.CustomerID == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	hasDebt, err := uc.eligibility.HasOverdueDebt(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if hasDebt {
		return nil, domain.ErrOverdueDebt
	}

	cust, err := uc.resolver.Resolve(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if cust == nil {
		return nil, domain.ErrCustomerNotFound
	}

	if typeMismatch(cust.CustomerType, in.CreditType) {
		return nil, domain.ErrTypeMismatch
	}

	if cust.CustomerType == entity.CustomerTypePersonal {
		existing, err := uc.repo.GetByCustomerID(ctx, in.CustomerID)
		if err != nil {
			return nil, err
		}
		for _, c := range existing {
			if c.CreditStatus != entity.CreditStatusFinished {
				return nil, domain.ErrOnlyOneCredit
			}
		}
	}

	now := uc.now()
	nextPayment := now.AddDate(0, 0, 30)
	credit := &entity.Credit{
		ID:               uuid.New().String(),
		CustomerID:       in.CustomerID,
		CreditType:       in.CreditType,
		Amount:           in.Amount,
		RemainingBalance: in.Amount,
		InterestRate:     in.InterestRate,
		MinimumPayment:   in.Amount.Mul(minimumPaymentRate),
		PaymentStatus:    entity.PaymentStatusPending,
		CreditStatus:     entity.CreditStatusActive,
		NextPaymentDate:  &nextPayment,
		CreatedAt:        now,
		ModifiedAt:       now,
	}

	if err := uc.repo.Save(ctx, credit); err != nil {
		return nil, err
	}
	uc.log.Info().Str("creditId", credit.ID).Str("customerId", credit.CustomerID).Msg("crédito creado")
	uc.events.PublishCreditCreated(credit)
	return credit, nil
}

// GetAll devuelve todos los créditos.
func (uc *UseCase) GetAll(ctx context.Context) ([]*entity.Credit, error) {
	return uc.repo.GetAll(ctx)
}

// GetByID devuelve el crédito o domain.ErrNotFound.
func (uc *UseCase) GetByID(ctx context.Context, creditID string) (*entity.Credit, error) {
	credit, err := uc.repo.GetByID(ctx, creditID)
	if err != nil {
		return nil, err
	}
	if credit == nil {
		return nil, domain.ErrNotFound
	}
	return credit, nil
}

// GetByCustomerID devuelve los créditos del cliente; si no tiene ninguno es
// un error reportado, no un éxito vacío.
func (uc *UseCase) GetByCustomerID(ctx context.Context, customerID string) ([]*entity.Credit, error) {
	credits, err := uc.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(credits) == 0 {
		return nil, domain.ErrNotFound
	}
	return credits, nil
}

// Update reemplaza monto, tasa y saldo restante; los campos opcionales solo
// cuando el caller los envía. Publica el evento "credit-updated" al terminar.
func (uc *UseCase) Update(ctx context.Context, creditID string, in dto.UpdateCreditRequest) (*entity.Credit, error) {
	credit, err := uc.repo.GetByID(ctx, creditID)
	if err != nil {
		return nil, err
	}
	if credit == nil {
		return nil, domain.ErrNotFound
	}

	credit.Amount = in.Amount
	credit.InterestRate = in.InterestRate
	credit.RemainingBalance = in.RemainingBalance
	credit.ModifiedAt = uc.now()
	if in.PaymentStatus != nil {
		credit.PaymentStatus = *in.PaymentStatus
	}
	if in.CreditStatus != nil {
		credit.CreditStatus = *in.CreditStatus
	}
	if in.NextPaymentDate != nil {
		credit.NextPaymentDate = in.NextPaymentDate
	}
	if in.MinimumPayment != nil {
		credit.MinimumPayment = *in.MinimumPayment
	}

	if err := uc.repo.Save(ctx, credit); err != nil {
		return nil, err
	}
	uc.events.PublishCreditUpdated(credit)
	return credit, nil
}

// Delete elimina el crédito; requiere que exista. Sin cascada.
func (uc *UseCase) Delete(ctx context.Context, creditID string) error {
	credit, err := uc.repo.GetByID(ctx, creditID)
	if err != nil {
		return err
	}
	if credit == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, creditID)
}

// WithClock reemplaza el reloj del orquestador; solo para tests.
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// typeMismatch las combinaciones PERSONAL×BUSINESS están prohibidas en ambas direcciones.
func typeMismatch(customerType entity.CustomerType, creditType entity.CreditType) bool {
	return (customerType == entity.CustomerTypePersonal && creditType == entity.CreditTypeBusiness) ||
		(customerType == entity.CustomerTypeBusiness && creditType == entity.CreditTypePersonal)
}
