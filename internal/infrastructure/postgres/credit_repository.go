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

var _ repository.CreditRepository = (*CreditRepo)(nil)

// CreditRepo implementación de CreditRepository (usable con pool o tx).
//
// El índice parcial uq_credits_personal_active hace cumplir en la base el
// invariante "un crédito no FINISHED por cliente personal"; la violación se
// traduce a domain.ErrDuplicate.
type CreditRepo struct {
	q Querier
}

// NewCreditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCreditRepository(q Querier) *CreditRepo {
	return &CreditRepo{q: q}
}

const creditColumns = `id, customer_id, credit_type, amount, remaining_balance, interest_rate,
		minimum_payment, payment_status, credit_status, next_payment_date, created_at, modified_at`

// Save persiste el crédito (upsert por id).
func (r *CreditRepo) Save(ctx context.Context, credit *entity.Credit) error {
	query := `
		INSERT INTO credits (` + creditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			amount = EXCLUDED.amount,
			remaining_balance = EXCLUDED.remaining_balance,
			interest_rate = EXCLUDED.interest_rate,
			minimum_payment = EXCLUDED.minimum_payment,
			payment_status = EXCLUDED.payment_status,
			credit_status = EXCLUDED.credit_status,
			next_payment_date = EXCLUDED.next_payment_date,
			modified_at = EXCLUDED.modified_at`
	_, err := r.q.Exec(ctx, query,
		credit.ID, credit.CustomerID, credit.CreditType, credit.Amount, credit.RemainingBalance,
		credit.InterestRate, credit.MinimumPayment, credit.PaymentStatus, credit.CreditStatus,
		credit.NextPaymentDate, credit.CreatedAt, credit.ModifiedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("guardar crédito: %w", err)
	}
	return nil
}

// GetByID obtiene un crédito por id; (nil, nil) si no existe.
func (r *CreditRepo) GetByID(ctx context.Context, id string) (*entity.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE id = $1`
	c, err := scanCredit(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener crédito: %w", err)
	}
	return c, nil
}

// GetByCustomerID lista los créditos de un cliente.
func (r *CreditRepo) GetByCustomerID(ctx context.Context, customerID string) ([]*entity.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE customer_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("listar créditos del cliente: %w", err)
	}
	defer rows.Close()
	return collectCredits(rows)
}

// GetAll lista todos los créditos (usado por el scheduler).
func (r *CreditRepo) GetAll(ctx context.Context) ([]*entity.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits ORDER BY created_at`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar créditos: %w", err)
	}
	defer rows.Close()
	return collectCredits(rows)
}

// Delete elimina un crédito por id.
func (r *CreditRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM credits WHERE id = $1`, id); err != nil {
		return fmt.Errorf("eliminar crédito: %w", err)
	}
	return nil
}

func scanCredit(row pgx.Row) (*entity.Credit, error) {
	var c entity.Credit
	err := row.Scan(
		&c.ID, &c.CustomerID, &c.CreditType, &c.Amount, &c.RemainingBalance, &c.InterestRate,
		&c.MinimumPayment, &c.PaymentStatus, &c.CreditStatus, &c.NextPaymentDate, &c.CreatedAt, &c.ModifiedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCredits(rows pgx.Rows) ([]*entity.Credit, error) {
	var list []*entity.Credit
	for rows.Next() {
		c, err := scanCredit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan crédito: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
