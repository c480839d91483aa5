package withdrawalrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/taskhive/paycore/internal/domain"
	"github.com/taskhive/paycore/internal/pg"
)

const withdrawalColumns = `id, account_id, amount, bank_details, status, created_at, updated_at`

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

func (r *Repository) Create(ctx context.Context, request *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
        INSERT INTO withdrawal_requests (id, account_id, amount, bank_details, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query,
		request.ID, request.AccountID, request.Amount, request.BankDetails, request.Status,
	)
	if err := row.Scan(&request.CreatedAt, &request.UpdatedAt); err != nil {
		zap.L().Error("failed to create withdrawal request", zap.Error(err))
		return nil, err
	}
	return request, nil
}

func (r *Repository) GetForUpdate(ctx context.Context, requestID uuid.UUID) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1 FOR UPDATE`
	row := r.db.QueryRow(ctx, query, requestID)

	var request domain.WithdrawalRequest
	err := row.Scan(&request.ID, &request.AccountID, &request.Amount, &request.BankDetails,
		&request.Status, &request.CreatedAt, &request.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to scan withdrawal request", zap.Error(err))
		return nil, err
	}
	return &request, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, requestID uuid.UUID, status domain.WithdrawalStatus) error {
	query := `
        UPDATE withdrawal_requests
        SET status = $1, updated_at = now()
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, status, requestID)
	if err != nil {
		zap.L().Error("failed to update withdrawal status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) ListByAccountID(ctx context.Context, accountID int64) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT ` + withdrawalColumns + `
        FROM withdrawal_requests
        WHERE account_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to list withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.WithdrawalRequest
	for rows.Next() {
		var request domain.WithdrawalRequest
		err := rows.Scan(&request.ID, &request.AccountID, &request.Amount, &request.BankDetails,
			&request.Status, &request.CreatedAt, &request.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan withdrawal request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}
