package webhookservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/taskhive/paycore/internal/domain"
	"github.com/taskhive/paycore/internal/dto"
	"github.com/taskhive/paycore/internal/gateway"
	"github.com/taskhive/paycore/internal/pg"
)

// WalletDepositMarker in custom_2 distinguishes a wallet top-up from a
// project payment; custom_1 then carries the target account id.
const WalletDepositMarker = "WALLET_DEPOSIT"

type Verifier interface {
	VerifyNotification(merchantID, orderID, amount, currency, statusCode, providedSignature string) bool
}

type Wallet interface {
	Deposit(ctx context.Context, accountID int64, amount decimal.Decimal, externalOrderID, referenceID string) (*domain.Transaction, error)
}

type PaymentRepo interface {
	GetByExternalOrderIDForUpdate(ctx context.Context, externalOrderID string) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, paymentID uuid.UUID, status domain.PaymentStatus) error
}

type EscrowRepo interface {
	GetByPaymentID(ctx context.Context, paymentID uuid.UUID) (*domain.EscrowRelease, error)
	Create(ctx context.Context, release *domain.EscrowRelease) (*domain.EscrowRelease, error)
}

var (
	ErrSignatureMismatch = errors.New("signature mismatch")
	ErrUnknownOrder      = errors.New("unknown order")
)

// Service consumes gateway notifications. Delivery is at-least-once and may
// be duplicated or out of order; every money-moving effect is keyed by the
// gateway order id and applied at most once.
type Service struct {
	gateway          Verifier
	wallet           Wallet
	paymentRepo      PaymentRepo
	escrowRepo       EscrowRepo
	txManager        pg.TXManager
	autoReleaseAfter time.Duration
}

func New(verifier Verifier, wallet Wallet, paymentRepo PaymentRepo, escrowRepo EscrowRepo, txManager pg.TXManager, autoReleaseAfter time.Duration) *Service {
	return &Service{
		gateway:          verifier,
		wallet:           wallet,
		paymentRepo:      paymentRepo,
		escrowRepo:       escrowRepo,
		txManager:        txManager,
		autoReleaseAfter: autoReleaseAfter,
	}
}

// HandleNotification verifies the notification and applies its effect.
// A failed verification returns ErrSignatureMismatch before any state is
// read or written.
func (s *Service) HandleNotification(ctx context.Context, n dto.GatewayNotification) error {
	if !s.gateway.VerifyNotification(n.MerchantID, n.OrderID, n.Amount, n.Currency, n.StatusCode, n.Signature) {
		zap.L().Warn("rejected gateway notification with bad signature",
			zap.String("orderID", n.OrderID),
			zap.String("merchantID", n.MerchantID),
		)
		return ErrSignatureMismatch
	}

	code, err := strconv.Atoi(n.StatusCode)
	if err != nil {
		return fmt.Errorf("malformed status code %q: %w", n.StatusCode, err)
	}
	status := gateway.MapStatusCode(code)

	if n.Custom2 == WalletDepositMarker {
		return s.applyWalletDeposit(ctx, n, status)
	}
	return s.applyPaymentUpdate(ctx, n, status)
}

func (s *Service) applyWalletDeposit(ctx context.Context, n dto.GatewayNotification, status domain.PaymentStatus) error {
	if status != domain.PaymentStatusCompleted {
		zap.L().Info("wallet top-up not completed, nothing to apply",
			zap.String("orderID", n.OrderID),
			zap.String("status", string(status)),
		)
		return nil
	}

	accountID, err := strconv.ParseInt(n.Custom1, 10, 64)
	if err != nil {
		return fmt.Errorf("malformed account id %q: %w", n.Custom1, err)
	}
	amount, err := decimal.NewFromString(n.Amount)
	if err != nil {
		return fmt.Errorf("malformed amount %q: %w", n.Amount, err)
	}

	// idempotent on the gateway order id: a retry finds the existing
	// DEPOSIT entry and succeeds without crediting again
	_, err = s.wallet.Deposit(ctx, accountID, amount, n.OrderID, n.PaymentID)
	return err
}

func (s *Service) applyPaymentUpdate(ctx context.Context, n dto.GatewayNotification, status domain.PaymentStatus) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		payment, err := s.paymentRepo.GetByExternalOrderIDForUpdate(ctx, n.OrderID)
		if err != nil {
			return err
		}
		if payment == nil {
			zap.L().Warn("notification for unknown order", zap.String("orderID", n.OrderID))
			return ErrUnknownOrder
		}

		if status == domain.PaymentStatusCompleted {
			// a completed collection means the funds are now resident in
			// escrow; duplicates and late retries are no-op successes.
			// This records gateway-confirmed status only. The matching
			// payer-to-escrow ledger transfer happens in FundEscrow, so a
			// payment row created outside FundEscrow holds no ledger funds
			// and its release would draw on other escrowed balances.
			if payment.Status == domain.PaymentStatusHeldInEscrow || payment.Status.Terminal() {
				return nil
			}
			if err := s.paymentRepo.UpdateStatus(ctx, payment.ID, domain.PaymentStatusHeldInEscrow); err != nil {
				return err
			}
			return s.ensureRelease(ctx, payment.ID)
		}

		// never regress an established or terminal payment on a late,
		// out-of-order notification
		if payment.Status == domain.PaymentStatusHeldInEscrow || payment.Status.Terminal() {
			return nil
		}
		return s.paymentRepo.UpdateStatus(ctx, payment.ID, status)
	})
}

func (s *Service) ensureRelease(ctx context.Context, paymentID uuid.UUID) error {
	release, err := s.escrowRepo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return err
	}
	if release != nil {
		return nil
	}
	newRelease := &domain.EscrowRelease{
		PaymentID:     paymentID,
		ReleaseStatus: domain.ReleaseStatusPending,
	}
	if s.autoReleaseAfter > 0 {
		due := time.Now().Add(s.autoReleaseAfter)
		newRelease.AutoReleaseDate = &due
	}
	_, err = s.escrowRepo.Create(ctx, newRelease)
	return err
}
