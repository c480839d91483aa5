package transactionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

// Append writes one immutable ledger entry. Entries are only created inside
// a wallet unit-of-work, atomically with the balance update.
func (r *Repository) Append(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (account_id, type, amount, balance_before, balance_after, reference_id, external_order_id)
        VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''))
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query,
		txn.AccountID, txn.Type, txn.Amount, txn.BalanceBefore, txn.BalanceAfter,
		txn.ReferenceID, txn.ExternalOrderID,
	)
	if err := row.Scan(&txn.ID, &txn.CreatedAt); err != nil {
		zap.L().Error("failed to append transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

// FindByExternalOrderID looks up an already-applied effect by its
// idempotency key.
func (r *Repository) FindByExternalOrderID(ctx context.Context, accountID int64, externalOrderID string, txnType domain.TransactionType) (*domain.Transaction, error) {
	query := `
        SELECT id, account_id, type, amount, balance_before, balance_after,
               COALESCE(reference_id, ''), COALESCE(external_order_id, ''), created_at
        FROM transactions
        WHERE account_id = $1 AND external_order_id = $2 AND type = $3
    `
	row := r.db.QueryRow(ctx, query, accountID, externalOrderID, txnType)

	var txn domain.Transaction
	err := row.Scan(&txn.ID, &txn.AccountID, &txn.Type, &txn.Amount, &txn.BalanceBefore,
		&txn.BalanceAfter, &txn.ReferenceID, &txn.ExternalOrderID, &txn.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find transaction by external order id", zap.Error(err))
		return nil, err
	}
	return &txn, nil
}

func (r *Repository) ListByAccountID(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	query := `
        SELECT id, account_id, type, amount, balance_before, balance_after,
               COALESCE(reference_id, ''), COALESCE(external_order_id, ''), created_at
        FROM transactions
        WHERE account_id = $1
        ORDER BY created_at DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(&txn.ID, &txn.AccountID, &txn.Type, &txn.Amount, &txn.BalanceBefore,
			&txn.BalanceAfter, &txn.ReferenceID, &txn.ExternalOrderID, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}
