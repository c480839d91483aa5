package walletservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/taskhive/paycore/internal/domain"
	"github.com/taskhive/paycore/internal/pg"
)

type AccountRepo interface {
	GetByID(ctx context.Context, accountID int64) (*domain.Account, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Account, error)
	GetSystemAccount(ctx context.Context, kind domain.AccountKind) (*domain.Account, error)
	GetForUpdate(ctx context.Context, accountID int64) (*domain.Account, error)
	Create(ctx context.Context, userID int64) (*domain.Account, error)
	UpdateBalance(ctx context.Context, accountID int64, balance decimal.Decimal) error
}

type TransactionRepo interface {
	Append(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	FindByExternalOrderID(ctx context.Context, accountID int64, externalOrderID string, txnType domain.TransactionType) (*domain.Transaction, error)
	ListByAccountID(ctx context.Context, accountID int64) ([]domain.Transaction, error)
}

type WithdrawalRepo interface {
	Create(ctx context.Context, request *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	GetForUpdate(ctx context.Context, requestID uuid.UUID) (*domain.WithdrawalRequest, error)
	UpdateStatus(ctx context.Context, requestID uuid.UUID, status domain.WithdrawalStatus) error
	ListByAccountID(ctx context.Context, accountID int64) ([]domain.WithdrawalRequest, error)
}

var (
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrAccountNotFound        = errors.New("account not found")
	ErrSameAccount            = errors.New("transfer to the same account")
	ErrWithdrawalNotFound     = errors.New("withdrawal request not found")
	ErrInvalidWithdrawalState = errors.New("invalid withdrawal state")
)

// Service is the wallet ledger engine. Every mutating operation runs as one
// unit-of-work: lock the account rows, check funds, append ledger entries
// and write the new balances atomically.
type Service struct {
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	withdrawalRepo  WithdrawalRepo
	txManager       pg.TXManager
}

func New(accountRepo AccountRepo, transactionRepo TransactionRepo, withdrawalRepo WithdrawalRepo, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		withdrawalRepo:  withdrawalRepo,
		txManager:       txManager,
	}
}

func (s *Service) GetBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return decimal.Zero, err
	}
	if account == nil {
		return decimal.Zero, ErrAccountNotFound
	}
	return account.Balance, nil
}

func (s *Service) ListTransactions(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	return s.transactionRepo.ListByAccountID(ctx, accountID)
}

// Deposit credits the account and appends a DEPOSIT entry. When
// externalOrderID is set the operation is idempotent on it: a repeated
// gateway delivery finds the existing entry and succeeds without
// reapplying.
func (s *Service) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal, externalOrderID, referenceID string) (*domain.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	var created *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if externalOrderID != "" {
			existing, err := s.transactionRepo.FindByExternalOrderID(ctx, accountID, externalOrderID, domain.TransactionDeposit)
			if err != nil {
				return err
			}
			if existing != nil {
				zap.L().Info("duplicate deposit suppressed",
					zap.Int64("accountID", accountID),
					zap.String("externalOrderID", externalOrderID),
				)
				created = existing
				return nil
			}
		}

		account, err := s.accountRepo.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		newBalance := account.Balance.Add(amount)
		created, err = s.transactionRepo.Append(ctx, &domain.Transaction{
			AccountID:       accountID,
			Type:            domain.TransactionDeposit,
			Amount:          amount,
			BalanceBefore:   account.Balance,
			BalanceAfter:    newBalance,
			ReferenceID:     referenceID,
			ExternalOrderID: externalOrderID,
		})
		if err != nil {
			return err
		}
		return s.accountRepo.UpdateBalance(ctx, accountID, newBalance)
	})
	if err != nil && externalOrderID != "" && pg.IsUniqueViolation(err) {
		// lost the race against a concurrent delivery of the same order
		existing, ferr := s.transactionRepo.FindByExternalOrderID(ctx, accountID, externalOrderID, domain.TransactionDeposit)
		if ferr == nil && existing != nil {
			return existing, nil
		}
	}
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Withdraw debits the account and appends a WITHDRAW entry. Fails with
// ErrInsufficientFunds when the locked balance does not cover the amount;
// nothing is written in that case.
func (s *Service) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal, referenceID string) (*domain.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	var created *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}
		if account.Balance.LessThan(amount) {
			return ErrInsufficientFunds
		}

		newBalance := account.Balance.Sub(amount)
		created, err = s.transactionRepo.Append(ctx, &domain.Transaction{
			AccountID:     accountID,
			Type:          domain.TransactionWithdraw,
			Amount:        amount.Neg(),
			BalanceBefore: account.Balance,
			BalanceAfter:  newBalance,
			ReferenceID:   referenceID,
		})
		if err != nil {
			return err
		}
		return s.accountRepo.UpdateBalance(ctx, accountID, newBalance)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Transfer moves amount between two accounts in one unit-of-work, appending
// a PAYMENT_SENT entry on the sender and a PAYMENT_RECEIVED entry on the
// receiver.
func (s *Service) Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal, referenceID string) error {
	return s.moveFunds(ctx, fromAccountID, toAccountID, amount,
		domain.TransactionPaymentSent, domain.TransactionPaymentReceived, referenceID)
}

// Refund returns escrowed funds to an account; the receiving side gets a
// REFUND entry so the reversal is visible as such in its history.
func (s *Service) Refund(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal, referenceID string) error {
	return s.moveFunds(ctx, fromAccountID, toAccountID, amount,
		domain.TransactionRefund, domain.TransactionRefund, referenceID)
}

// CollectFee moves the platform fee into the fee account as a FEE entry.
func (s *Service) CollectFee(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal, referenceID string) error {
	return s.moveFunds(ctx, fromAccountID, toAccountID, amount,
		domain.TransactionPaymentSent, domain.TransactionFee, referenceID)
}

func (s *Service) moveFunds(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal, debitType, creditType domain.TransactionType, referenceID string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if fromAccountID == toAccountID {
		return ErrSameAccount
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		// lock both rows in ascending id order to avoid deadlock cycles
		firstID, secondID := fromAccountID, toAccountID
		if secondID < firstID {
			firstID, secondID = secondID, firstID
		}
		first, err := s.accountRepo.GetForUpdate(ctx, firstID)
		if err != nil {
			return err
		}
		second, err := s.accountRepo.GetForUpdate(ctx, secondID)
		if err != nil {
			return err
		}
		if first == nil || second == nil {
			return ErrAccountNotFound
		}

		from, to := first, second
		if from.ID != fromAccountID {
			from, to = second, first
		}
		if from.Balance.LessThan(amount) {
			return ErrInsufficientFunds
		}

		fromAfter := from.Balance.Sub(amount)
		toAfter := to.Balance.Add(amount)

		if _, err := s.transactionRepo.Append(ctx, &domain.Transaction{
			AccountID:     from.ID,
			Type:          debitType,
			Amount:        amount.Neg(),
			BalanceBefore: from.Balance,
			BalanceAfter:  fromAfter,
			ReferenceID:   referenceID,
		}); err != nil {
			return err
		}
		if _, err := s.transactionRepo.Append(ctx, &domain.Transaction{
			AccountID:     to.ID,
			Type:          creditType,
			Amount:        amount,
			BalanceBefore: to.Balance,
			BalanceAfter:  toAfter,
			ReferenceID:   referenceID,
		}); err != nil {
			return err
		}

		if err := s.accountRepo.UpdateBalance(ctx, from.ID, fromAfter); err != nil {
			return err
		}
		return s.accountRepo.UpdateBalance(ctx, to.ID, toAfter)
	})
}
