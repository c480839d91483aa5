package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/taskhive/paycore/internal/domain"
	"github.com/taskhive/paycore/internal/pg"
)

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

func (r *Repository) GetByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
        SELECT id, user_id, kind, balance, created_at
        FROM accounts
        WHERE id = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, accountID))
}

func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Account, error) {
	query := `
        SELECT id, user_id, kind, balance, created_at
        FROM accounts
        WHERE user_id = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) GetSystemAccount(ctx context.Context, kind domain.AccountKind) (*domain.Account, error) {
	query := `
        SELECT id, user_id, kind, balance, created_at
        FROM accounts
        WHERE kind = $1 AND user_id IS NULL
    `
	return r.scanOne(r.db.QueryRow(ctx, query, kind))
}

// GetForUpdate reads the account under a row lock. Callers must be inside a
// unit-of-work; the lock serializes concurrent balance mutations.
func (r *Repository) GetForUpdate(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
        SELECT id, user_id, kind, balance, created_at
        FROM accounts
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanOne(r.db.QueryRow(ctx, query, accountID))
}

func (r *Repository) Create(ctx context.Context, userID int64) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (user_id, kind, balance)
        VALUES ($1, 'user', 0)
        RETURNING id, user_id, kind, balance, created_at
    `
	account, err := r.scanOne(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, accountID int64, balance decimal.Decimal) error {
	query := `
        UPDATE accounts
        SET balance = $1
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, balance, accountID)
	if err != nil {
		zap.L().Error("failed to update account balance", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(&account.ID, &account.UserID, &account.Kind, &account.Balance, &account.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to scan account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}
