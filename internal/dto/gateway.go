package dto

// GatewayNotification carries the raw form fields of an inbound gateway
// webhook. Amounts and status codes stay strings until the signature over
// them has been verified.
type GatewayNotification struct {
	MerchantID string
	OrderID    string
	PaymentID  string
	Amount     string
	Currency   string
	StatusCode string
	Signature  string
	Custom1    string
	Custom2    string
}

type NotificationResponseDTO struct {
	Accepted bool `json:"accepted"`
}
