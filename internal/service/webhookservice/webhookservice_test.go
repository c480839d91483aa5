package webhookservice

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/taskhive/paycore/internal/domain"
	"github.com/taskhive/paycore/internal/dto"
	"github.com/taskhive/paycore/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockVerifier, *MockWallet, *MockPaymentRepo, *MockEscrowRepo) {
	ctrl := gomock.NewController(t)
	verifier := NewMockVerifier(ctrl)
	wallet := NewMockWallet(ctrl)
	paymentRepo := NewMockPaymentRepo(ctrl)
	escrowRepo := NewMockEscrowRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(verifier, wallet, paymentRepo, escrowRepo, txManager, 14*24*time.Hour)
	return service, verifier, wallet, paymentRepo, escrowRepo
}

func notification(orderID, statusCode, custom1, custom2 string) dto.GatewayNotification {
	return dto.GatewayNotification{
		MerchantID: "1211149",
		OrderID:    orderID,
		PaymentID:  "gw-320025",
		Amount:     "1000.00",
		Currency:   "LKR",
		StatusCode: statusCode,
		Signature:  "SIG",
		Custom1:    custom1,
		Custom2:    custom2,
	}
}

func TestHandleNotificationSignature(t *testing.T) {
	service, verifier, _, _, _ := NewMock(t)

	n := notification("order-1", "2", "42", WalletDepositMarker)
	verifier.EXPECT().
		VerifyNotification(n.MerchantID, n.OrderID, n.Amount, n.Currency, n.StatusCode, n.Signature).
		Return(false)

	// no repo or wallet expectations: a bad signature must not touch state
	err := service.HandleNotification(context.Background(), n)
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestHandleNotificationMalformedStatusCode(t *testing.T) {
	service, verifier, _, _, _ := NewMock(t)

	n := notification("order-1", "two", "42", WalletDepositMarker)
	verifier.EXPECT().
		VerifyNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true)

	err := service.HandleNotification(context.Background(), n)
	assert.Error(t, err)
}

func TestHandleWalletDeposit(t *testing.T) {
	tests := []struct {
		name          string
		n             dto.GatewayNotification
		prepareMock   func(verifier *MockVerifier, wallet *MockWallet)
		expectedError bool
	}{
		{
			name: "Completed top-up credits the wallet keyed by order id",
			n:    notification("order-1", "2", "42", WalletDepositMarker),
			prepareMock: func(verifier *MockVerifier, wallet *MockWallet) {
				verifier.EXPECT().
					VerifyNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true)
				wallet.EXPECT().
					Deposit(gomock.Any(), int64(42), gomock.Any(), "order-1", "gw-320025").
					DoAndReturn(func(_ context.Context, _ int64, amount decimal.Decimal, _, _ string) (*domain.Transaction, error) {
						assert.True(t, amount.Equal(decimal.RequireFromString("1000.00")))
						return &domain.Transaction{ID: 1}, nil
					})
			},
		},
		{
			name: "Failed top-up applies nothing",
			n:    notification("order-1", "-2", "42", WalletDepositMarker),
			prepareMock: func(verifier *MockVerifier, _ *MockWallet) {
				verifier.EXPECT().
					VerifyNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true)
			},
		},
		{
			name: "Malformed account id",
			n:    notification("order-1", "2", "not-a-number", WalletDepositMarker),
			prepareMock: func(verifier *MockVerifier, _ *MockWallet) {
				verifier.EXPECT().
					VerifyNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, verifier, wallet, _, _ := NewMock(t)
			tt.prepareMock(verifier, wallet)

			err := service.HandleNotification(context.Background(), tt.n)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHandlePaymentUpdate(t *testing.T) {
	paymentID := uuid.New()
	tests := []struct {
		name          string
		n             dto.GatewayNotification
		prepareMock   func(verifier *MockVerifier, paymentRepo *MockPaymentRepo, escrowRepo *MockEscrowRepo)
		expectedError error
	}{
		{
			name: "Completed collection holds the payment in escrow",
			n:    notification("order-1", "2", "", ""),
			prepareMock: func(verifier *MockVerifier, paymentRepo *MockPaymentRepo, escrowRepo *MockEscrowRepo) {
				verifier.EXPECT().
					VerifyNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true)
				paymentRepo.EXPECT().GetByExternalOrderIDForUpdate(gomock.Any(), "order-1").Return(&domain.Payment{
					ID:     paymentID,
					Status: domain.PaymentStatusProcessing,
				}, nil)
				paymentRepo.EXPECT().UpdateStatus(gomock.Any(), paymentID, domain.PaymentStatusHeldInEscrow).Return(nil)
				escrowRepo.EXPECT().GetByPaymentID(gomock.Any(), paymentID).Return(nil, nil)
				escrowRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, release *domain.EscrowRelease) (*domain.EscrowRelease, error) {
						assert.Equal(t, domain.ReleaseStatusPending, release.ReleaseStatus)
						return release, nil
					})
			},
		},
		{
			name: "Duplicate completed delivery is a no-op success",
			n:    notification("order-1", "2", "", ""),
			prepareMock: func(verifier *MockVerifier, paymentRepo *MockPaymentRepo, _ *MockEscrowRepo) {
				verifier.EXPECT().
					VerifyNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true)
				paymentRepo.EXPECT().GetByExternalOrderIDForUpdate(gomock.Any(), "order-1").Return(&domain.Payment{
					ID:     paymentID,
					Status: domain.PaymentStatusHeldInEscrow,
				}, nil)
			},
		},
		{
			name: "Late cancellation never regresses a held payment",
			n:    notification("order-1", "-1", "", ""),
			prepareMock: func(verifier *MockVerifier, paymentRepo *MockPaymentRepo, _ *MockEscrowRepo) {
				verifier.EXPECT().
					VerifyNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true)
				paymentRepo.EXPECT().GetByExternalOrderIDForUpdate(gomock.Any(), "order-1").Return(&domain.Payment{
					ID:     paymentID,
					Status: domain.PaymentStatusHeldInEscrow,
				}, nil)
			},
		},
		{
			name: "Pending payment tracks a cancellation",
			n:    notification("order-1", "-1", "", ""),
			prepareMock: func(verifier *MockVerifier, paymentRepo *MockPaymentRepo, _ *MockEscrowRepo) {
				verifier.EXPECT().
					VerifyNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true)
				paymentRepo.EXPECT().GetByExternalOrderIDForUpdate(gomock.Any(), "order-1").Return(&domain.Payment{
					ID:     paymentID,
					Status: domain.PaymentStatusPending,
				}, nil)
				paymentRepo.EXPECT().UpdateStatus(gomock.Any(), paymentID, domain.PaymentStatusCancelled).Return(nil)
			},
		},
		{
			name: "Unknown order",
			n:    notification("order-unknown", "2", "", ""),
			prepareMock: func(verifier *MockVerifier, paymentRepo *MockPaymentRepo, _ *MockEscrowRepo) {
				verifier.EXPECT().
					VerifyNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true)
				paymentRepo.EXPECT().GetByExternalOrderIDForUpdate(gomock.Any(), "order-unknown").Return(nil, nil)
			},
			expectedError: ErrUnknownOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, verifier, _, paymentRepo, escrowRepo := NewMock(t)
			tt.prepareMock(verifier, paymentRepo, escrowRepo)

			err := service.HandleNotification(context.Background(), tt.n)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
