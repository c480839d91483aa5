package escrow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/taskhive/paycore/internal/domain"
	"github.com/taskhive/paycore/internal/dto"
	"github.com/taskhive/paycore/internal/service/escrowservice"
	"github.com/taskhive/paycore/internal/service/walletservice"
	"github.com/taskhive/paycore/pkg/auth"
)

func NewMock(t *testing.T) (*EscrowHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authContext(accountID int64) context.Context {
	return context.WithValue(context.Background(), auth.AccountIDKey, accountID)
}

func pathRequest(method, path, paymentID string, body string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	rctx := chi.NewRouteContext()
	if paymentID != "" {
		rctx.URLParams.Add("paymentID", paymentID)
	}
	return r.WithContext(context.WithValue(authContext(1), chi.RouteCtxKey, rctx))
}

func TestFundHandler(t *testing.T) {
	handler, service := NewMock(t)
	paymentID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful funding",
			body: `{"application_id":"app-1","receiver_account_id":2,"amount":"3000.00"}`,
			prepareMock: func() {
				service.EXPECT().
					FundEscrow(gomock.Any(), escrowservice.FundEscrowParams{
						ApplicationID:     "app-1",
						PayerAccountID:    1,
						ReceiverAccountID: 2,
						Amount:            decimal.RequireFromString("3000.00"),
					}).
					Return(&domain.Payment{
						ID:                paymentID,
						ApplicationID:     "app-1",
						PayerAccountID:    1,
						ReceiverAccountID: 2,
						Amount:            decimal.RequireFromString("3000.00"),
						Status:            domain.PaymentStatusHeldInEscrow,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{"amount":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Insufficient balance",
			body: `{"application_id":"app-1","receiver_account_id":2,"amount":"3000.00"}`,
			prepareMock: func() {
				service.EXPECT().
					FundEscrow(gomock.Any(), gomock.Any()).
					Return(nil, walletservice.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Invalid amount",
			body: `{"application_id":"app-1","receiver_account_id":2,"amount":"-5"}`,
			prepareMock: func() {
				service.EXPECT().
					FundEscrow(gomock.Any(), gomock.Any()).
					Return(nil, walletservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := pathRequest(http.MethodPost, "/api/escrow", "", tt.body)
			w := httptest.NewRecorder()
			handler.Fund(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.PaymentResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, paymentID.String(), body.ID)
				assert.Equal(t, string(domain.PaymentStatusHeldInEscrow), body.Status)
			}
		})
	}
}

func TestReleaseHandlers(t *testing.T) {
	paymentID := uuid.New()
	release := &domain.EscrowRelease{
		PaymentID:         paymentID,
		ReleaseStatus:     domain.ReleaseStatusReleased,
		FreelancerRequest: true,
		ClientApproval:    true,
	}

	tests := []struct {
		name         string
		paymentID    string
		call         func(h *EscrowHandler, w http.ResponseWriter, r *http.Request)
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name:      "Request release succeeds",
			paymentID: paymentID.String(),
			call:      (*EscrowHandler).RequestRelease,
			prepareMock: func(service *MockService) {
				service.EXPECT().RequestRelease(gomock.Any(), paymentID).Return(&domain.EscrowRelease{
					PaymentID:         paymentID,
					ReleaseStatus:     domain.ReleaseStatusPending,
					FreelancerRequest: true,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Approve succeeds",
			paymentID: paymentID.String(),
			call:      (*EscrowHandler).ApproveRelease,
			prepareMock: func(service *MockService) {
				service.EXPECT().ApproveRelease(gomock.Any(), paymentID).Return(release, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Approve before request conflicts",
			paymentID: paymentID.String(),
			call:      (*EscrowHandler).ApproveRelease,
			prepareMock: func(service *MockService) {
				service.EXPECT().ApproveRelease(gomock.Any(), paymentID).Return(nil, escrowservice.ErrInvalidStateTransition)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:      "Unknown payment",
			paymentID: paymentID.String(),
			call:      (*EscrowHandler).Dispute,
			prepareMock: func(service *MockService) {
				service.EXPECT().Dispute(gomock.Any(), paymentID).Return(nil, escrowservice.ErrPaymentNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Malformed payment id",
			paymentID:    "not-a-uuid",
			call:         (*EscrowHandler).RequestRelease,
			prepareMock:  func(_ *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := pathRequest(http.MethodPost, "/api/escrow/"+tt.paymentID+"/op", tt.paymentID, "")
			w := httptest.NewRecorder()
			tt.call(handler, w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCancelHandler(t *testing.T) {
	handler, service := NewMock(t)
	paymentID := uuid.New()

	service.EXPECT().CancelEscrow(gomock.Any(), paymentID).Return(&domain.Payment{
		ID:     paymentID,
		Status: domain.PaymentStatusCancelled,
	}, nil)

	r := pathRequest(http.MethodPost, "/api/escrow/"+paymentID.String()+"/cancel", paymentID.String(), "")
	w := httptest.NewRecorder()
	handler.Cancel(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.PaymentResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, string(domain.PaymentStatusCancelled), body.Status)
}
