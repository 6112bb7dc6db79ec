package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/credit-service/internal/domain"
	"github.com/jhoicas/credit-service/internal/domain/entity"
	"github.com/jhoicas/credit-service/internal/domain/repository"
)

var _ repository.CreditCardRepository = (*CreditCardRepo)(nil)

// CreditCardRepo implementación de CreditCardRepository (usable con pool o tx).
type CreditCardRepo struct {
	q Querier
}

// NewCreditCardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCreditCardRepository(q Querier) *CreditCardRepo {
	return &CreditCardRepo{q: q}
}

const cardColumns = `id, customer_id, card_type, credit_limit, available_balance, status,
		payment_status, minimum_payment, cutoff_date, payment_due_date, created_at, modified_at`

// Save persiste la tarjeta (upsert por id).
func (r *CreditCardRepo) Save(ctx context.Context, card *entity.CreditCard) error {
	query := `
		INSERT INTO credit_cards (` + cardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			credit_limit = EXCLUDED.credit_limit,
			available_balance = EXCLUDED.available_balance,
			status = EXCLUDED.status,
			payment_status = EXCLUDED.payment_status,
			minimum_payment = EXCLUDED.minimum_payment,
			cutoff_date = EXCLUDED.cutoff_date,
			payment_due_date = EXCLUDED.payment_due_date,
			modified_at = EXCLUDED.modified_at`
	_, err := r.q.Exec(ctx, query,
		card.ID, card.CustomerID, card.CardType, card.CreditLimit, card.AvailableBalance, card.Status,
		card.PaymentStatus, card.MinimumPayment, card.CutoffDate, card.PaymentDueDate,
		card.CreatedAt, card.ModifiedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("guardar tarjeta: %w", err)
	}
	return nil
}

// GetByID obtiene una tarjeta por id; (nil, nil) si no existe.
func (r *CreditCardRepo) GetByID(ctx context.Context, id string) (*entity.CreditCard, error) {
	query := `SELECT ` + cardColumns + ` FROM credit_cards WHERE id = $1`
	card, err := scanCard(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener tarjeta: %w", err)
	}
	return card, nil
}

// GetByCustomerID lista las tarjetas de un cliente.
func (r *CreditCardRepo) GetByCustomerID(ctx context.Context, customerID string) ([]*entity.CreditCard, error) {
	query := `SELECT ` + cardColumns + ` FROM credit_cards WHERE customer_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("listar tarjetas del cliente: %w", err)
	}
	defer rows.Close()
	return collectCards(rows)
}

// GetAll lista todas las tarjetas (usado por el scheduler).
func (r *CreditCardRepo) GetAll(ctx context.Context) ([]*entity.CreditCard, error) {
	query := `SELECT ` + cardColumns + ` FROM credit_cards ORDER BY created_at`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar tarjetas: %w", err)
	}
	defer rows.Close()
	return collectCards(rows)
}

// Delete elimina una tarjeta por id.
func (r *CreditCardRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM credit_cards WHERE id = $1`, id); err != nil {
		return fmt.Errorf("eliminar tarjeta: %w", err)
	}
	return nil
}

func scanCard(row pgx.Row) (*entity.CreditCard, error) {
	var c entity.CreditCard
	err := row.Scan(
		&c.ID, &c.CustomerID, &c.CardType, &c.CreditLimit, &c.AvailableBalance, &c.Status,
		&c.PaymentStatus, &c.MinimumPayment, &c.CutoffDate, &c.PaymentDueDate, &c.CreatedAt, &c.ModifiedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCards(rows pgx.Rows) ([]*entity.CreditCard, error) {
	var list []*entity.CreditCard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tarjeta: %w", err)
		}
		list = append(list, card)
	}
	return list, rows.Err()
}
