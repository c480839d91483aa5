package escrowservice

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/taskhive/paycore/internal/domain"
	"github.com/taskhive/paycore/internal/pg"
)

const (
	escrowAccountID = int64(100)
	feeAccountID    = int64(101)
)

func NewMock(t *testing.T) (*Service, *MockPaymentRepo, *MockEscrowRepo, *MockWallet) {
	ctrl := gomock.NewController(t)
	paymentRepo := NewMockPaymentRepo(ctrl)
	escrowRepo := NewMockEscrowRepo(ctrl)
	wallet := NewMockWallet(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(paymentRepo, escrowRepo, wallet, txManager, escrowAccountID, feeAccountID, 14*24*time.Hour)
	return service, paymentRepo, escrowRepo, wallet
}

func TestPlatformFee(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		expectedFee string
	}{
		{name: "Whole amount", amount: "3000", expectedFee: "150"},
		{name: "Fraction rounds half up", amount: "100.10", expectedFee: "5.01"},
		{name: "Small amount", amount: "0.10", expectedFee: "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			assert.NoError(t, err)
			expected, err := decimal.NewFromString(tt.expectedFee)
			assert.NoError(t, err)
			assert.True(t, expected.Equal(PlatformFee(amount)), "fee for %s", tt.amount)
		})
	}
}

func TestFundEscrow(t *testing.T) {
	params := FundEscrowParams{
		ApplicationID:     "app-1",
		PayerAccountID:    1,
		ReceiverAccountID: 2,
		Amount:            decimal.NewFromInt(3000),
	}
	tests := []struct {
		name          string
		prepareMock   func(paymentRepo *MockPaymentRepo, escrowRepo *MockEscrowRepo, wallet *MockWallet)
		expectedError error
	}{
		{
			name: "Creates held payment with pending release",
			prepareMock: func(paymentRepo *MockPaymentRepo, escrowRepo *MockEscrowRepo, wallet *MockWallet) {
				paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
						assert.Equal(t, domain.PaymentStatusHeldInEscrow, payment.Status)
						assert.Equal(t, "app-1", payment.ApplicationID)
						return payment, nil
					})
				wallet.EXPECT().
					Transfer(gomock.Any(), int64(1), escrowAccountID, params.Amount, gomock.Any()).
					Return(nil)
				escrowRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, release *domain.EscrowRelease) (*domain.EscrowRelease, error) {
						assert.Equal(t, domain.ReleaseStatusPending, release.ReleaseStatus)
						assert.False(t, release.FreelancerRequest)
						assert.NotNil(t, release.AutoReleaseDate)
						return release, nil
					})
			},
		},
		{
			name: "Insufficient client balance rolls back",
			prepareMock: func(paymentRepo *MockPaymentRepo, _ *MockEscrowRepo, wallet *MockWallet) {
				paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
						return payment, nil
					})
				wallet.EXPECT().
					Transfer(gomock.Any(), int64(1), escrowAccountID, params.Amount, gomock.Any()).
					Return(errInsufficient)
			},
			expectedError: errInsufficient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, paymentRepo, escrowRepo, wallet := NewMock(t)
			tt.prepareMock(paymentRepo, escrowRepo, wallet)

			payment, err := service.FundEscrow(context.Background(), params)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.PaymentStatusHeldInEscrow, payment.Status)
			}
		})
	}
}

var errInsufficient = assert.AnError

func heldPayment(paymentID uuid.UUID, amount int64) *domain.Payment {
	return &domain.Payment{
		ID:                paymentID,
		PayerAccountID:    1,
		ReceiverAccountID: 2,
		Amount:            decimal.NewFromInt(amount),
		Status:            domain.PaymentStatusHeldInEscrow,
	}
}

func TestRequestRelease(t *testing.T) {
	paymentID := uuid.New()
	tests := []struct {
		name          string
		prepareMock   func(paymentRepo *MockPaymentRepo, escrowRepo *MockEscrowRepo)
		expectedError error
	}{
		{
			name: "Sets the freelancer flag",
			prepareMock: func(paymentRepo *MockPaymentRepo, escrowRepo *MockEscrowRepo) {
				paymentRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(heldPayment(paymentID, 3000), nil)
				escrowRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(&domain.EscrowRelease{
					PaymentID:     paymentID,
					ReleaseStatus: domain.ReleaseStatusPending,
				}, nil)
				escrowRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, release *domain.EscrowRelease) error {
						assert.True(t, release.FreelancerRequest)
						return nil
					})
			},
		},
		{
			name: "Repeated request is a no-op",
			prepareMock: func(paymentRepo *MockPaymentRepo, escrowRepo *MockEscrowRepo) {
				paymentRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(heldPayment(paymentID, 3000), nil)
				escrowRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(&domain.EscrowRelease{
					PaymentID:         paymentID,
					ReleaseStatus:     domain.ReleaseStatusPending,
					FreelancerRequest: true,
				}, nil)
			},
		},
		{
			name: "Unknown payment",
			prepareMock: func(paymentRepo *MockPaymentRepo, _ *MockEscrowRepo) {
				paymentRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(nil, nil)
			},
			expectedError: ErrPaymentNotFound,
		},
		{
			name: "Payment not held in escrow",
			prepareMock: func(paymentRepo *MockPaymentRepo, _ *MockEscrowRepo) {
				payment := heldPayment(paymentID, 3000)
				payment.Status = domain.PaymentStatusCompleted
				paymentRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(payment, nil)
			},
			expectedError: ErrInvalidStateTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, paymentRepo, escrowRepo, _ := NewMock(t)
			tt.prepareMock(paymentRepo, escrowRepo)

			release, err := service.RequestRelease(context.Background(), paymentID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, release.FreelancerRequest)
			}
		})
	}
}

func TestApproveRelease(t *testing.T) {
	paymentID := uuid.New()
	tests := []struct {
		name          string
		prepareMock   func(paymentRepo *MockPaymentRepo, escrowRepo *MockEscrowRepo, wallet *MockWallet)
		expectedError error
	}{
		{
			name: "Splits payout and fee",
			prepareMock: func(paymentRepo *MockPaymentRepo, escrowRepo *MockEscrowRepo, wallet *MockWallet) {
				paymentRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(heldPayment(paymentID, 3000), nil)
				escrowRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(&domain.EscrowRelease{
					PaymentID:         paymentID,
					ReleaseStatus:     domain.ReleaseStatusPending,
					FreelancerRequest: true,
				}, nil)
				wallet.EXPECT().
					Transfer(gomock.Any(), escrowAccountID, int64(2), gomock.Any(), paymentID.String()).
					DoAndReturn(func(_ context.Context, _, _ int64, amount decimal.Decimal, _ string) error {
						assert.True(t, amount.Equal(decimal.NewFromInt(2850)))
						return nil
					})
				wallet.EXPECT().
					CollectFee(gomock.Any(), escrowAccountID, feeAccountID, gomock.Any(), paymentID.String()).
					DoAndReturn(func(_ context.Context, _, _ int64, amount decimal.Decimal, _ string) error {
						assert.True(t, amount.Equal(decimal.NewFromInt(150)))
						return nil
					})
				escrowRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, release *domain.EscrowRelease) error {
						assert.Equal(t, domain.ReleaseStatusReleased, release.ReleaseStatus)
						assert.True(t, release.ClientApproval)
						return nil
					})
				paymentRepo.EXPECT().UpdateStatus(gomock.Any(), paymentID, domain.PaymentStatusCompleted).Return(nil)
			},
		},
		{
			name: "Approval before freelancer request",
			prepareMock: func(paymentRepo *MockPaymentRepo, escrowRepo *MockEscrowRepo, _ *MockWallet) {
				paymentRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(heldPayment(paymentID, 3000), nil)
				escrowRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(&domain.EscrowRelease{
					PaymentID:     paymentID,
					ReleaseStatus: domain.ReleaseStatusPending,
				}, nil)
			},
			expectedError: ErrInvalidStateTransition,
		},
		{
			name: "Disputed release cannot be approved",
			prepareMock: func(paymentRepo *MockPaymentRepo, escrowRepo *MockEscrowRepo, _ *MockWallet) {
				paymentRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(heldPayment(paymentID, 3000), nil)
				escrowRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(&domain.EscrowRelease{
					PaymentID:         paymentID,
					ReleaseStatus:     domain.ReleaseStatusDisputed,
					FreelancerRequest: true,
				}, nil)
			},
			expectedError: ErrInvalidStateTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, paymentRepo, escrowRepo, wallet := NewMock(t)
			tt.prepareMock(paymentRepo, escrowRepo, wallet)

			release, err := service.ApproveRelease(context.Background(), paymentID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.ReleaseStatusReleased, release.ReleaseStatus)
			}
		})
	}
}

func TestAutoRelease(t *testing.T) {
	paymentID := uuid.New()
	service, paymentRepo, escrowRepo, wallet := NewMock(t)

	paymentRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(heldPayment(paymentID, 1000), nil)
	escrowRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(&domain.EscrowRelease{
		PaymentID:         paymentID,
		ReleaseStatus:     domain.ReleaseStatusPending,
		FreelancerRequest: true,
	}, nil)
	wallet.EXPECT().
		Transfer(gomock.Any(), escrowAccountID, int64(2), gomock.Any(), paymentID.String()).
		Return(nil)
	wallet.EXPECT().
		CollectFee(gomock.Any(), escrowAccountID, feeAccountID, gomock.Any(), paymentID.String()).
		Return(nil)
	escrowRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, release *domain.EscrowRelease) error {
			assert.False(t, release.ClientApproval)
			assert.Equal(t, domain.ReleaseStatusReleased, release.ReleaseStatus)
			return nil
		})
	paymentRepo.EXPECT().UpdateStatus(gomock.Any(), paymentID, domain.PaymentStatusCompleted).Return(nil)

	release, err := service.AutoRelease(context.Background(), paymentID)
	assert.NoError(t, err)
	assert.False(t, release.ClientApproval)
}

func TestDispute(t *testing.T) {
	paymentID := uuid.New()
	service, paymentRepo, escrowRepo, _ := NewMock(t)

	paymentRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(heldPayment(paymentID, 1000), nil)
	escrowRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(&domain.EscrowRelease{
		PaymentID:         paymentID,
		ReleaseStatus:     domain.ReleaseStatusPending,
		FreelancerRequest: true,
	}, nil)
	escrowRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, release *domain.EscrowRelease) error {
			assert.Equal(t, domain.ReleaseStatusDisputed, release.ReleaseStatus)
			return nil
		})

	release, err := service.Dispute(context.Background(), paymentID)
	assert.NoError(t, err)
	assert.Equal(t, domain.ReleaseStatusDisputed, release.ReleaseStatus)
}

func TestCancelEscrow(t *testing.T) {
	paymentID := uuid.New()
	tests := []struct {
		name          string
		prepareMock   func(paymentRepo *MockPaymentRepo, escrowRepo *MockEscrowRepo, wallet *MockWallet)
		expectedError error
	}{
		{
			name: "Held payment refunds the client",
			prepareMock: func(paymentRepo *MockPaymentRepo, escrowRepo *MockEscrowRepo, wallet *MockWallet) {
				paymentRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(heldPayment(paymentID, 3000), nil)
				escrowRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(&domain.EscrowRelease{
					PaymentID:     paymentID,
					ReleaseStatus: domain.ReleaseStatusPending,
				}, nil)
				wallet.EXPECT().
					Refund(gomock.Any(), escrowAccountID, int64(1), gomock.Any(), paymentID.String()).
					DoAndReturn(func(_ context.Context, _, _ int64, amount decimal.Decimal, _ string) error {
						assert.True(t, amount.Equal(decimal.NewFromInt(3000)))
						return nil
					})
				paymentRepo.EXPECT().UpdateStatus(gomock.Any(), paymentID, domain.PaymentStatusCancelled).Return(nil)
			},
		},
		{
			name: "Pending payment cancels without refund",
			prepareMock: func(paymentRepo *MockPaymentRepo, escrowRepo *MockEscrowRepo, _ *MockWallet) {
				payment := heldPayment(paymentID, 3000)
				payment.Status = domain.PaymentStatusPending
				paymentRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(payment, nil)
				escrowRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(nil, nil)
				paymentRepo.EXPECT().UpdateStatus(gomock.Any(), paymentID, domain.PaymentStatusCancelled).Return(nil)
			},
		},
		{
			name: "Released payment cannot be cancelled",
			prepareMock: func(paymentRepo *MockPaymentRepo, _ *MockEscrowRepo, _ *MockWallet) {
				payment := heldPayment(paymentID, 3000)
				payment.Status = domain.PaymentStatusCompleted
				paymentRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(payment, nil)
			},
			expectedError: ErrInvalidStateTransition,
		},
		{
			name: "Disputed release blocks cancellation",
			prepareMock: func(paymentRepo *MockPaymentRepo, escrowRepo *MockEscrowRepo, _ *MockWallet) {
				paymentRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(heldPayment(paymentID, 3000), nil)
				escrowRepo.EXPECT().GetForUpdate(gomock.Any(), paymentID).Return(&domain.EscrowRelease{
					PaymentID:     paymentID,
					ReleaseStatus: domain.ReleaseStatusDisputed,
				}, nil)
			},
			expectedError: ErrInvalidStateTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, paymentRepo, escrowRepo, wallet := NewMock(t)
			tt.prepareMock(paymentRepo, escrowRepo, wallet)

			payment, err := service.CancelEscrow(context.Background(), paymentID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.PaymentStatusCancelled, payment.Status)
			}
		})
	}
}
