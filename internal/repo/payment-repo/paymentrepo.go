package paymentrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/taskhive/paycore/internal/domain"
	"github.com/taskhive/paycore/internal/pg"
)

const paymentColumns = `id, external_order_id, application_id, payer_account_id, receiver_account_id, amount, status, created_at, updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
        INSERT INTO payments (id, external_order_id, application_id, payer_account_id, receiver_account_id, amount, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query,
		payment.ID, payment.ExternalOrderID, payment.ApplicationID,
		payment.PayerAccountID, payment.ReceiverAccountID, payment.Amount, payment.Status,
	)
	if err := row.Scan(&payment.CreatedAt, &payment.UpdatedAt); err != nil {
		zap.L().Error("failed to create payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) GetByID(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, paymentID))
}

// GetForUpdate reads the payment under a row lock so that concurrent
// transitions (approve vs cancel) serialize on the same row.
func (r *Repository) GetForUpdate(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRow(ctx, query, paymentID))
}

func (r *Repository) GetByExternalOrderIDForUpdate(ctx context.Context, externalOrderID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE external_order_id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRow(ctx, query, externalOrderID))
}

func (r *Repository) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status domain.PaymentStatus) error {
	query := `
        UPDATE payments
        SET status = $1, updated_at = now()
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, status, paymentID)
	if err != nil {
		zap.L().Error("failed to update payment status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Payment, error) {
	var payment domain.Payment
	err := row.Scan(&payment.ID, &payment.ExternalOrderID, &payment.ApplicationID,
		&payment.PayerAccountID, &payment.ReceiverAccountID, &payment.Amount,
		&payment.Status, &payment.CreatedAt, &payment.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to scan payment", zap.Error(err))
		return nil, err
	}
	return &payment, nil
}
