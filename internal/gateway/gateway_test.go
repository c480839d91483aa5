package gateway

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/taskhive/paycore/internal/config"
	"github.com/taskhive/paycore/internal/domain"
)

func newTestAdapter() *Adapter {
	return New(&config.Config{
		MerchantID:     "1211149",
		MerchantSecret: "merchant-secret",
		Currency:       "LKR",
		ReturnURL:      "http://localhost:8080/payment/return",
		CancelURL:      "http://localhost:8080/payment/cancel",
		NotifyURL:      "http://localhost:8080/api/gateway/notify",
	})
}

func notifySignature(a *Adapter, merchantID, orderID, amount, currency, statusCode string) string {
	return md5Upper(merchantID + orderID + amount + currency + statusCode + a.secretDigest)
}

func TestBuildCheckoutRequest(t *testing.T) {
	adapter := newTestAdapter()

	fields := adapter.BuildCheckoutRequest(CheckoutParams{
		OrderID: "order-1",
		Amount:  decimal.NewFromInt(1000),
		Items:   "Wallet top-up",
		Custom1: "42",
		Custom2: "WALLET_DEPOSIT",
		Payer: PayerInfo{
			FirstName: "Saman",
			LastName:  "Perera",
			Email:     "saman@example.com",
		},
	})

	assert.Equal(t, "1211149", fields["merchant_id"])
	assert.Equal(t, "order-1", fields["order_id"])
	assert.Equal(t, "1000.00", fields["amount"], "amount must carry exactly two decimal places")
	assert.Equal(t, "LKR", fields["currency"])
	assert.Equal(t, "42", fields["custom_1"])
	assert.Equal(t, "WALLET_DEPOSIT", fields["custom_2"])
	assert.Equal(t, "http://localhost:8080/api/gateway/notify", fields["notify_url"])

	expectedHash := md5Upper("1211149" + "order-1" + "1000.00" + "LKR" + adapter.secretDigest)
	assert.Equal(t, expectedHash, fields["hash"])
}

func TestBuildCheckoutRequestCurrencyOverride(t *testing.T) {
	adapter := newTestAdapter()

	fields := adapter.BuildCheckoutRequest(CheckoutParams{
		OrderID:  "order-2",
		Amount:   decimal.RequireFromString("99.90"),
		Currency: "USD",
	})

	assert.Equal(t, "USD", fields["currency"])
	assert.Equal(t, "99.90", fields["amount"])
}

func TestVerifyNotification(t *testing.T) {
	adapter := newTestAdapter()
	sig := notifySignature(adapter, "1211149", "order-1", "1000.00", "LKR", "2")

	tests := []struct {
		name       string
		merchantID string
		orderID    string
		amount     string
		currency   string
		statusCode string
		signature  string
		expected   bool
	}{
		{
			name:       "Valid signature accepted",
			merchantID: "1211149", orderID: "order-1", amount: "1000.00", currency: "LKR", statusCode: "2",
			signature: sig,
			expected:  true,
		},
		{
			name:       "Lower-case signature accepted",
			merchantID: "1211149", orderID: "order-1", amount: "1000.00", currency: "LKR", statusCode: "2",
			signature: strings.ToLower(sig),
			expected:  true,
		},
		{
			name:       "Tampered amount rejected",
			merchantID: "1211149", orderID: "order-1", amount: "9000.00", currency: "LKR", statusCode: "2",
			signature: sig,
			expected:  false,
		},
		{
			name:       "Tampered order id rejected",
			merchantID: "1211149", orderID: "order-2", amount: "1000.00", currency: "LKR", statusCode: "2",
			signature: sig,
			expected:  false,
		},
		{
			name:       "Tampered status code rejected",
			merchantID: "1211149", orderID: "order-1", amount: "1000.00", currency: "LKR", statusCode: "-1",
			signature: sig,
			expected:  false,
		},
		{
			name:       "Foreign merchant id rejected",
			merchantID: "9999999", orderID: "order-1", amount: "1000.00", currency: "LKR", statusCode: "2",
			signature: sig,
			expected:  false,
		},
		{
			name:       "Garbage signature rejected",
			merchantID: "1211149", orderID: "order-1", amount: "1000.00", currency: "LKR", statusCode: "2",
			signature: "0123456789ABCDEF0123456789ABCDEF",
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok := adapter.VerifyNotification(tt.merchantID, tt.orderID, tt.amount, tt.currency, tt.statusCode, tt.signature)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestVerifyNotificationSecretMatters(t *testing.T) {
	adapter := newTestAdapter()
	other := New(&config.Config{MerchantID: "1211149", MerchantSecret: "different-secret", Currency: "LKR"})

	sig := notifySignature(other, "1211149", "order-1", "1000.00", "LKR", "2")
	assert.False(t, adapter.VerifyNotification("1211149", "order-1", "1000.00", "LKR", "2", sig))
}

func TestMapStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected domain.PaymentStatus
	}{
		{name: "Success", code: 2, expected: domain.PaymentStatusCompleted},
		{name: "Pending at gateway", code: 0, expected: domain.PaymentStatusProcessing},
		{name: "Cancelled by payer", code: -1, expected: domain.PaymentStatusCancelled},
		{name: "Failed", code: -2, expected: domain.PaymentStatusFailed},
		{name: "Chargeback", code: -3, expected: domain.PaymentStatusFailed},
		{name: "Unknown code stays pending", code: 7, expected: domain.PaymentStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapStatusCode(tt.code))
		})
	}
}
