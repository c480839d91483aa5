package walletservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/taskhive/paycore/internal/domain"
)

// RequestWithdrawal creates a PENDING payout request. The balance is
// validated but not debited; the ledger moves only on completion.
func (s *Service) RequestWithdrawal(ctx context.Context, accountID int64, amount decimal.Decimal, bankDetails string) (*domain.WithdrawalRequest, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	var request *domain.WithdrawalRequest
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

		request, err = s.withdrawalRepo.Create(ctx, &domain.WithdrawalRequest{
			ID:          uuid.New(),
			AccountID:   accountID,
			Amount:      amount,
			BankDetails: bankDetails,
			Status:      domain.WithdrawalStatusPending,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// CompleteWithdrawal debits the ledger and marks the request COMPLETED in
// one unit-of-work. If the account can no longer cover the amount the
// request is marked FAILED and ErrInsufficientFunds is returned.
func (s *Service) CompleteWithdrawal(ctx context.Context, requestID uuid.UUID) (*domain.WithdrawalRequest, error) {
	var request *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		request, err = s.withdrawalRepo.GetForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if request == nil {
			return ErrWithdrawalNotFound
		}
		if request.Status != domain.WithdrawalStatusPending && request.Status != domain.WithdrawalStatusProcessing {
			return ErrInvalidWithdrawalState
		}

		if _, err := s.Withdraw(ctx, request.AccountID, request.Amount, request.ID.String()); err != nil {
			return err
		}
		request.Status = domain.WithdrawalStatusCompleted
		return s.withdrawalRepo.UpdateStatus(ctx, requestID, domain.WithdrawalStatusCompleted)
	})
	if errors.Is(err, ErrInsufficientFunds) {
		if uerr := s.withdrawalRepo.UpdateStatus(ctx, requestID, domain.WithdrawalStatusFailed); uerr != nil {
			zap.L().Error("failed to mark withdrawal as failed", zap.Error(uerr))
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return request, nil
}

// CancelWithdrawal cancels a request that has not been paid out yet.
func (s *Service) CancelWithdrawal(ctx context.Context, requestID uuid.UUID) (*domain.WithdrawalRequest, error) {
	var request *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		request, err = s.withdrawalRepo.GetForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if request == nil {
			return ErrWithdrawalNotFound
		}
		if request.Status != domain.WithdrawalStatusPending {
			return ErrInvalidWithdrawalState
		}
		request.Status = domain.WithdrawalStatusCancelled
		return s.withdrawalRepo.UpdateStatus(ctx, requestID, domain.WithdrawalStatusCancelled)
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (s *Service) ListWithdrawals(ctx context.Context, accountID int64) ([]domain.WithdrawalRequest, error) {
	return s.withdrawalRepo.ListByAccountID(ctx, accountID)
}
