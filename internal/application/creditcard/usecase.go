package creditcard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/credit-service/internal/application/dto"
	"github.com/jhoicas/credit-service/internal/application/ports"
	"github.com/jhoicas/credit-service/internal/domain"
	"github.com/jhoicas/credit-service/internal/domain/entity"
	"github.com/jhoicas/credit-service/internal/domain/repository"
	"github.com/jhoicas/credit-service/pkg/logger"
)

// Tipos de marca VIP/PYM que entiende el servicio Account.
const (
	vipKind = "VIP" // cliente personal con cuenta de ahorros
	pymKind = "PYM" // cliente empresarial con cuentas corrientes
)

// UseCase orquestador del ciclo de vida de tarjetas de crédito, incluida la
// cascada VIP/PYM sobre el servicio Account y su reversa al borrar la última
// tarjeta del cliente.
//
// Orden invariante de la cascada en ambas direcciones: primero las cuentas,
// al final el cliente. Las actualizaciones por cuenta no dependen entre sí y
// se emiten en paralelo; un fallo parcial deja cuentas actualizadas y otras
// no (ventana de inconsistencia aceptada) y se reporta al caller.
type UseCase struct {
	repo     repository.CreditCardRepository
	resolver ports.CustomerResolver
	accounts ports.AccountClient
	customer ports.CustomerClient
	events   ports.CreditCardEventPublisher
	log      *logger.Logger
	now      func() time.Time
}

// NewUseCase construye el orquestador de tarjetas.
func NewUseCase(
	repo repository.CreditCardRepository,
	resolver ports.CustomerResolver,
	accounts ports.AccountClient,
	customer ports.CustomerClient,
	events ports.CreditCardEventPublisher,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		repo:     repo,
		resolver: resolver,
		accounts: accounts,
		customer: customer,
		events:   events,
		log:      log.Component("creditCardService"),
		now:      time.Now,
	}
}

// Create crea una tarjeta. Si el cliente tiene cuentas compatibles dispara la
// cascada VIP/PYM antes de persistir; si no tiene, la cascada se omite en
// silencio (no es un error).
func (uc *UseCase) Create(ctx context.Context, in dto.CreateCreditCardRequest) (*entity.CreditCard, error) {
	if in.CustomerID == "" || !in.CreditLimit.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	cust, err := uc.resolver.Resolve(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if cust == nil {
		return nil, domain.ErrCustomerNotFound
	}

	if cardTypeMismatch(cust.CustomerType, in.CardType) {
		return nil, domain.ErrTypeMismatch
	}

	// Un fallo del servicio Account aquí aborta la creación: la cascada es
	// parte del camino de mutación y no se ignora en silencio.
	accounts, err := uc.accounts.GetAccountsByCustomer(ctx, cust.ID)
	if err != nil {
		return nil, err
	}

	if err := uc.applyVipPymCascade(ctx, cust, accounts); err != nil {
		return nil, err
	}

	card := &entity.CreditCard{
		ID:               uuid.New().String(),
		CustomerID:       in.CustomerID,
		CardType:         in.CardType,
		CreditLimit:      in.CreditLimit,
		AvailableBalance: in.CreditLimit,
		Status:           entity.CardStatusActive,
		PaymentStatus:    entity.PaymentStatusPending,
		MinimumPayment:   in.MinimumPayment,
		CutoffDate:       in.CutoffDate,
		PaymentDueDate:   in.PaymentDueDate,
		CreatedAt:        uc.now(),
	}

	if err := uc.repo.Save(ctx, card); err != nil {
		return nil, err
	}
	uc.log.Info().Str("creditCardId", card.ID).Str("customerId", card.CustomerID).Msg("tarjeta de crédito creada")
	uc.events.PublishCreditCardCreated(card)
	return card, nil
}

// applyVipPymCascade marca cuentas y cliente como VIP (personal, primera
// cuenta de ahorros) o PYM (empresarial, todas las cuentas corrientes).
// Sin cuentas compatibles no hace nada.
func (uc *UseCase) applyVipPymCascade(ctx context.Context, cust *entity.Customer, accounts []entity.Account) error {
	switch cust.CustomerType {
	case entity.CustomerTypePersonal:
		savings := firstOfType(accounts, entity.AccountTypeSavings)
		if savings == nil {
			return nil
		}
		if _, err := uc.accounts.UpdateVipPymStatus(ctx, savings.ID, true, vipKind); err != nil {
			uc.log.Error().Err(err).Str("accountId", savings.ID).Msg("no se pudo marcar la cuenta como VIP")
			return err
		}
		if _, err := uc.customer.UpdateVipPymStatus(ctx, cust.ID, true); err != nil {
			uc.log.Error().Err(err).Str("customerId", cust.ID).Msg("no se pudo marcar el cliente como VIP")
			return err
		}
		uc.log.Info().Str("customerId", cust.ID).Str("accountId", savings.ID).Msg("cascada VIP aplicada")

	case entity.CustomerTypeBusiness:
		checking := allOfType(accounts, entity.AccountTypeChecking)
		if len(checking) == 0 {
			return nil
		}
		if err := uc.updateAccountsConcurrently(ctx, checking, true, pymKind); err != nil {
			return err
		}
		if _, err := uc.customer.UpdateVipPymStatus(ctx, cust.ID, true); err != nil {
			uc.log.Error().Err(err).Str("customerId", cust.ID).Msg("no se pudo marcar el cliente como PYM")
			return err
		}
		uc.log.Info().Str("customerId", cust.ID).Int("accounts", len(checking)).Msg("cascada PYM aplicada")
	}
	return nil
}

// Delete elimina la tarjeta y, si era la última del cliente, revierte la
// cascada VIP/PYM: cuentas primero, cliente al final. Si quedan tarjetas no
// hay reversa.
func (uc *UseCase) Delete(ctx context.Context, cardID string) error {
	card, err := uc.repo.GetByID(ctx, cardID)
	if err != nil {
		return err
	}
	if card == nil {
		return domain.ErrNotFound
	}

	// El tipo del dueño decide qué cuentas desmarcar en la reversa; sin
	// cliente resuelto no se puede borrar de forma consistente.
	cust, err := uc.resolver.Resolve(ctx, card.CustomerID)
	if err != nil {
		return err
	}
	if cust == nil {
		return domain.ErrCustomerNotFound
	}

	if err := uc.repo.Delete(ctx, cardID); err != nil {
		return err
	}

	remaining, err := uc.repo.GetByCustomerID(ctx, card.CustomerID)
	if err != nil {
		return err
	}
	if len(remaining) > 0 {
		uc.log.Info().Str("customerId", card.CustomerID).Int("remaining", len(remaining)).
			Msg("el cliente conserva otras tarjetas, sin reversa VIP/PYM")
		return nil
	}

	return uc.reverseVipPymCascade(ctx, cust)
}

// reverseVipPymCascade desmarca las cuentas compatibles y después al cliente.
// Un fallo parcial en las cuentas se registra y se reporta; el cliente solo se
// desmarca cuando todas sus cuentas quedaron desmarcadas.
func (uc *UseCase) reverseVipPymCascade(ctx context.Context, cust *entity.Customer) error {
	accounts, err := uc.accounts.GetAccountsByCustomer(ctx, cust.ID)
	if err != nil {
		return err
	}

	var targets []entity.Account
	kind := vipKind
	switch cust.CustomerType {
	case entity.CustomerTypePersonal:
		targets = allOfType(accounts, entity.AccountTypeSavings)
	case entity.CustomerTypeBusiness:
		targets = allOfType(accounts, entity.AccountTypeChecking)
		kind = pymKind
	}

	if err := uc.updateAccountsConcurrently(ctx, targets, false, kind); err != nil {
		uc.log.Error().Err(err).Str("customerId", cust.ID).
			Msg("reversa parcial: algunas cuentas no se pudieron desmarcar, el cliente conserva la marca")
		return err
	}

	if _, err := uc.customer.UpdateVipPymStatus(ctx, cust.ID, false); err != nil {
		uc.log.Error().Err(err).Str("customerId", cust.ID).Msg("no se pudo desmarcar al cliente")
		return err
	}
	uc.log.Info().Str("customerId", cust.ID).Msg("reversa VIP/PYM completada")
	return nil
}

// updateAccountsConcurrently emite las actualizaciones por cuenta en paralelo
// (no dependen entre sí) y junta los errores de las que fallaron.
func (uc *UseCase) updateAccountsConcurrently(ctx context.Context, accounts []entity.Account, isVipPym bool, kind string) error {
	if len(accounts) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	errs := make([]error, len(accounts))
	for i, acc := range accounts {
		wg.Add(1)
		go func(i int, accountID string) {
			defer wg.Done()
			if _, err := uc.accounts.UpdateVipPymStatus(ctx, accountID, isVipPym, kind); err != nil {
				uc.log.Error().Err(err).Str("accountId", accountID).Bool("isVipPym", isVipPym).
					Str("kind", kind).Msg("fallo actualizando estado VIP/PYM de la cuenta")
				errs[i] = err
			}
		}(i, acc.ID)
	}
	wg.Wait()
	return errors.Join(errs...)
}

// GetAll devuelve todas las tarjetas.
func (uc *UseCase) GetAll(ctx context.Context) ([]*entity.CreditCard, error) {
	return uc.repo.GetAll(ctx)
}

// GetByID devuelve la tarjeta o domain.ErrNotFound.
func (uc *UseCase) GetByID(ctx context.Context, cardID string) (*entity.CreditCard, error) {
	card, err := uc.repo.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, domain.ErrNotFound
	}
	return card, nil
}

// GetByCustomerID devuelve las tarjetas del cliente; sin tarjetas es un error
// reportado, no un éxito vacío.
func (uc *UseCase) GetByCustomerID(ctx context.Context, customerID string) ([]*entity.CreditCard, error) {
	cards, err := uc.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, domain.ErrNotFound
	}
	return cards, nil
}

// Update reemplaza límite, saldo disponible y estado; publica "creditcard-updated".
func (uc *UseCase) Update(ctx context.Context, cardID string, in dto.UpdateCreditCardRequest) (*entity.CreditCard, error) {
	card, err := uc.repo.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	card.CreditLimit = in.CreditLimit
	card.AvailableBalance = in.AvailableBalance
	card.Status = in.Status
	card.ModifiedAt = &now

	if err := uc.repo.Save(ctx, card); err != nil {
		return nil, err
	}
	uc.events.PublishCreditCardUpdated(card)
	return card, nil
}

// WithClock reemplaza el reloj del orquestador; solo para tests.
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

func cardTypeMismatch(customerType entity.CustomerType, cardType entity.CreditCardType) bool {
	return (customerType == entity.CustomerTypePersonal && cardType == entity.CardTypeBusiness) ||
		(customerType == entity.CustomerTypeBusiness && cardType == entity.CardTypePersonal)
}

func firstOfType(accounts []entity.Account, t entity.AccountType) *entity.Account {
	for i := range accounts {
		if accounts[i].AccountType == t {
			return &accounts[i]
		}
	}
	return nil
}

func allOfType(accounts []entity.Account, t entity.AccountType) []entity.Account {
	var out []entity.Account
	for _, acc := range accounts {
		if acc.AccountType == t {
			out = append(out, acc)
		}
	}
	return out
}
