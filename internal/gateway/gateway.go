// Package gateway translates between internal payment intents and the
// external payment gateway's checkout/notification protocol. All functions
// here are pure: a failed verification never touches the ledger.
package gateway

import (
	"crypto/md5" //nolint:gosec // the gateway protocol mandates MD5
	"encoding/hex"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/taskhive/paycore/internal/config"
	"github.com/taskhive/paycore/internal/domain"
)

type Adapter struct {
	merchantID string
	// HEX_UPPER(MD5(secret)), precomputed once; both signature schemes
	// append it last
	secretDigest string
	currency     string
	returnURL    string
	cancelURL    string
	notifyURL    string
}

func New(cfg *config.Config) *Adapter {
	return &Adapter{
		merchantID:   cfg.MerchantID,
		secretDigest: md5Upper(cfg.MerchantSecret),
		currency:     cfg.Currency,
		returnURL:    cfg.ReturnURL,
		cancelURL:    cfg.CancelURL,
		notifyURL:    cfg.NotifyURL,
	}
}

func (a *Adapter) Currency() string {
	return a.currency
}

type PayerInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	Country   string
}

type CheckoutParams struct {
	OrderID  string
	Amount   decimal.Decimal
	Currency string
	Items    string
	Custom1  string
	Custom2  string
	Payer    PayerInfo
}

// BuildCheckoutRequest produces the form fields the client browser submits
// to the gateway. The signature is the gateway's two-stage MD5 scheme over
// the amount formatted with exactly two decimal places; any deviation makes
// verification fail on the gateway side.
func (a *Adapter) BuildCheckoutRequest(params CheckoutParams) map[string]string {
	currency := params.Currency
	if currency == "" {
		currency = a.currency
	}
	amount := params.Amount.StringFixed(2)
	hash := md5Upper(a.merchantID + params.OrderID + amount + currency + a.secretDigest)

	return map[string]string{
		"merchant_id": a.merchantID,
		"return_url":  a.returnURL,
		"cancel_url":  a.cancelURL,
		"notify_url":  a.notifyURL,
		"order_id":    params.OrderID,
		"items":       params.Items,
		"currency":    currency,
		"amount":      amount,
		"first_name":  params.Payer.FirstName,
		"last_name":   params.Payer.LastName,
		"email":       params.Payer.Email,
		"phone":       params.Payer.Phone,
		"address":     params.Payer.Address,
		"city":        params.Payer.City,
		"country":     params.Payer.Country,
		"custom_1":    params.Custom1,
		"custom_2":    params.Custom2,
		"hash":        hash,
	}
}

// VerifyNotification recomputes the notification signature from the raw
// field values and compares it case-insensitively with the provided one.
// Pure function, no side effects.
func (a *Adapter) VerifyNotification(merchantID, orderID, amount, currency, statusCode, providedSignature string) bool {
	if merchantID != a.merchantID {
		return false
	}
	expected := md5Upper(merchantID + orderID + amount + currency + statusCode + a.secretDigest)
	return strings.EqualFold(expected, providedSignature)
}

// MapStatusCode maps a gateway status code to the internal payment status.
// Unknown codes map to PENDING and are logged, not silently dropped.
func MapStatusCode(code int) domain.PaymentStatus {
	switch code {
	case 2:
		return domain.PaymentStatusCompleted
	case 0:
		return domain.PaymentStatusProcessing
	case -1:
		return domain.PaymentStatusCancelled
	case -2, -3:
		return domain.PaymentStatusFailed
	default:
		zap.L().Warn("unknown gateway status code", zap.Int("statusCode", code))
		return domain.PaymentStatusPending
	}
}

func md5Upper(s string) string {
	sum := md5.Sum([]byte(s)) //nolint:gosec // gateway wire scheme
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
