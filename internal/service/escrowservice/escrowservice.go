package escrowservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/taskhive/paycore/internal/domain"
	"github.com/taskhive/paycore/internal/pg"
)

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	GetByID(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error)
	GetForUpdate(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error)
	GetByExternalOrderIDForUpdate(ctx context.Context, externalOrderID string) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, paymentID uuid.UUID, status domain.PaymentStatus) error
}

type EscrowRepo interface {
	Create(ctx context.Context, release *domain.EscrowRelease) (*domain.EscrowRelease, error)
	GetByPaymentID(ctx context.Context, paymentID uuid.UUID) (*domain.EscrowRelease, error)
	GetForUpdate(ctx context.Context, paymentID uuid.UUID) (*domain.EscrowRelease, error)
	Update(ctx context.Context, release *domain.EscrowRelease) error
	FindDueForAutoRelease(ctx context.Context, now time.Time, limit uint32) ([]domain.EscrowRelease, error)
}

// Wallet is the slice of the wallet engine the escrow machine drives.
type Wallet interface {
	Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal, referenceID string) error
	Refund(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal, referenceID string) error
	CollectFee(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal, referenceID string) error
}

var (
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrInvalidStateTransition = errors.New("invalid state transition")
)

// feeRate is the 5% platform cut, exact decimal.
var feeRate = decimal.New(5, -2)

// PlatformFee computes the platform cut from the original payment amount,
// rounded half-up to 2 places. It is never recomputed from mutated
// balances.
func PlatformFee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(feeRate).Round(2)
}

// Service drives a payment through PENDING → HELD_IN_ESCROW →
// {DISPUTED, RELEASED} with CANCELLED reachable from early states. Funds
// live in the platform escrow account between funding and release, so every
// transition is an ordinary ledger movement.
type Service struct {
	paymentRepo      PaymentRepo
	escrowRepo       EscrowRepo
	wallet           Wallet
	txManager        pg.TXManager
	escrowAccountID  int64
	feeAccountID     int64
	autoReleaseAfter time.Duration
}

func New(paymentRepo PaymentRepo, escrowRepo EscrowRepo, wallet Wallet, txManager pg.TXManager, escrowAccountID, feeAccountID int64, autoReleaseAfter time.Duration) *Service {
	return &Service{
		paymentRepo:      paymentRepo,
		escrowRepo:       escrowRepo,
		wallet:           wallet,
		txManager:        txManager,
		escrowAccountID:  escrowAccountID,
		feeAccountID:     feeAccountID,
		autoReleaseAfter: autoReleaseAfter,
	}
}

type FundEscrowParams struct {
	ApplicationID     string
	PayerAccountID    int64
	ReceiverAccountID int64
	Amount            decimal.Decimal
}

// FundEscrow debits the client into the platform escrow account and creates
// the payment (HELD_IN_ESCROW) with its pending release record, all in one
// unit-of-work. An insufficient client balance rolls everything back.
func (s *Service) FundEscrow(ctx context.Context, params FundEscrowParams) (*domain.Payment, error) {
	payment := &domain.Payment{
		ID:                uuid.New(),
		ExternalOrderID:   uuid.NewString(),
		ApplicationID:     params.ApplicationID,
		PayerAccountID:    params.PayerAccountID,
		ReceiverAccountID: params.ReceiverAccountID,
		Amount:            params.Amount,
		Status:            domain.PaymentStatusHeldInEscrow,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.paymentRepo.Create(ctx, payment); err != nil {
			return err
		}
		if err := s.wallet.Transfer(ctx, params.PayerAccountID, s.escrowAccountID, params.Amount, payment.ID.String()); err != nil {
			return err
		}
		_, err := s.escrowRepo.Create(ctx, s.newRelease(payment.ID))
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("escrow funded",
		zap.String("paymentID", payment.ID.String()),
		zap.String("amount", payment.Amount.StringFixed(2)),
	)
	return payment, nil
}

func (s *Service) newRelease(paymentID uuid.UUID) *domain.EscrowRelease {
	release := &domain.EscrowRelease{
		PaymentID:     paymentID,
		ReleaseStatus: domain.ReleaseStatusPending,
	}
	if s.autoReleaseAfter > 0 {
		due := time.Now().Add(s.autoReleaseAfter)
		release.AutoReleaseDate = &due
	}
	return release
}

// RequestRelease records the freelancer's completion claim. No funds move.
// Repeated requests are no-ops once the flag is set.
func (s *Service) RequestRelease(ctx context.Context, paymentID uuid.UUID) (*domain.EscrowRelease, error) {
	var release *domain.EscrowRelease
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		_, rel, err := s.lockHeldPayment(ctx, paymentID)
		if err != nil {
			return err
		}
		release = rel
		if release.FreelancerRequest {
			return nil
		}
		release.FreelancerRequest = true
		return s.escrowRepo.Update(ctx, release)
	})
	if err != nil {
		return nil, err
	}
	return release, nil
}

// ApproveRelease is the client's approval: requires a prior freelancer
// request, transfers amount minus the platform fee to the freelancer and
// the fee to the platform account, and marks the release RELEASED. The
// transfers and the state write share one unit-of-work.
func (s *Service) ApproveRelease(ctx context.Context, paymentID uuid.UUID) (*domain.EscrowRelease, error) {
	return s.release(ctx, paymentID, true)
}

// AutoRelease performs the same release on behalf of a client who let the
// auto-release date pass without responding.
func (s *Service) AutoRelease(ctx context.Context, paymentID uuid.UUID) (*domain.EscrowRelease, error) {
	return s.release(ctx, paymentID, false)
}

func (s *Service) release(ctx context.Context, paymentID uuid.UUID, byClient bool) (*domain.EscrowRelease, error) {
	var release *domain.EscrowRelease
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		payment, rel, err := s.lockHeldPayment(ctx, paymentID)
		if err != nil {
			return err
		}
		if !rel.FreelancerRequest {
			return ErrInvalidStateTransition
		}

		fee := PlatformFee(payment.Amount)
		payout := payment.Amount.Sub(fee)
		ref := payment.ID.String()

		if err := s.wallet.Transfer(ctx, s.escrowAccountID, payment.ReceiverAccountID, payout, ref); err != nil {
			return err
		}
		if fee.IsPositive() {
			if err := s.wallet.CollectFee(ctx, s.escrowAccountID, s.feeAccountID, fee, ref); err != nil {
				return err
			}
		}

		rel.ClientApproval = byClient
		rel.ReleaseStatus = domain.ReleaseStatusReleased
		if err := s.escrowRepo.Update(ctx, rel); err != nil {
			return err
		}
		release = rel
		return s.paymentRepo.UpdateStatus(ctx, payment.ID, domain.PaymentStatusCompleted)
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("escrow released",
		zap.String("paymentID", paymentID.String()),
		zap.Bool("byClient", byClient),
	)
	return release, nil
}

// Dispute freezes the funds in escrow pending manual resolution.
func (s *Service) Dispute(ctx context.Context, paymentID uuid.UUID) (*domain.EscrowRelease, error) {
	var release *domain.EscrowRelease
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		_, rel, err := s.lockHeldPayment(ctx, paymentID)
		if err != nil {
			return err
		}
		release = rel
		release.ReleaseStatus = domain.ReleaseStatusDisputed
		return s.escrowRepo.Update(ctx, release)
	})
	if err != nil {
		return nil, err
	}
	return release, nil
}

// CancelEscrow refunds the full escrowed amount back to the client and
// marks the payment CANCELLED. Only payments still in PENDING or
// HELD_IN_ESCROW with an undisputed, unreleased escrow record qualify.
func (s *Service) CancelEscrow(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error) {
	var payment *domain.Payment
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		payment, err = s.paymentRepo.GetForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment == nil {
			return ErrPaymentNotFound
		}
		if payment.Status != domain.PaymentStatusPending && payment.Status != domain.PaymentStatusHeldInEscrow {
			return ErrInvalidStateTransition
		}

		release, err := s.escrowRepo.GetForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if release != nil && release.ReleaseStatus != domain.ReleaseStatusPending {
			return ErrInvalidStateTransition
		}

		if payment.Status == domain.PaymentStatusHeldInEscrow {
			if err := s.wallet.Refund(ctx, s.escrowAccountID, payment.PayerAccountID, payment.Amount, payment.ID.String()); err != nil {
				return err
			}
		}
		payment.Status = domain.PaymentStatusCancelled
		return s.paymentRepo.UpdateStatus(ctx, paymentID, domain.PaymentStatusCancelled)
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("escrow cancelled", zap.String("paymentID", paymentID.String()))
	return payment, nil
}

// lockHeldPayment locks the payment and its release record and verifies
// the pair is still in the releasable state. Approve, cancel and dispute
// all serialize on the same payment row.
func (s *Service) lockHeldPayment(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, *domain.EscrowRelease, error) {
	payment, err := s.paymentRepo.GetForUpdate(ctx, paymentID)
	if err != nil {
		return nil, nil, err
	}
	if payment == nil {
		return nil, nil, ErrPaymentNotFound
	}
	if payment.Status != domain.PaymentStatusHeldInEscrow {
		return nil, nil, ErrInvalidStateTransition
	}

	release, err := s.escrowRepo.GetForUpdate(ctx, paymentID)
	if err != nil {
		return nil, nil, err
	}
	if release == nil || release.ReleaseStatus != domain.ReleaseStatusPending {
		return nil, nil, ErrInvalidStateTransition
	}
	return payment, release, nil
}
