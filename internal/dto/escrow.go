package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type FundEscrowRequestDTO struct {
	ApplicationID     string          `json:"application_id" example:"app-1024"`
	ReceiverAccountID int64           `json:"receiver_account_id" example:"7"`
	Amount            decimal.Decimal `json:"amount" example:"3000.00"`
}

type PaymentResponseDTO struct {
	ID                string          `json:"id" example:"8f14e45f-ceea-4672-95f2-ff3d51f917f4"`
	ExternalOrderID   string          `json:"external_order_id"`
	ApplicationID     string          `json:"application_id" example:"app-1024"`
	PayerAccountID    int64           `json:"payer_account_id" example:"1"`
	ReceiverAccountID int64           `json:"receiver_account_id" example:"7"`
	Amount            decimal.Decimal `json:"amount" example:"3000.00"`
	Status            string          `json:"status" example:"HELD_IN_ESCROW"`
	CreatedAt         time.Time       `json:"created_at" example:"2025-06-09T16:09:57+03:00"`
}

type EscrowReleaseResponseDTO struct {
	PaymentID         string     `json:"payment_id" example:"8f14e45f-ceea-4672-95f2-ff3d51f917f4"`
	ReleaseStatus     string     `json:"release_status" example:"PENDING"`
	FreelancerRequest bool       `json:"freelancer_request" example:"true"`
	ClientApproval    bool       `json:"client_approval" example:"false"`
	AutoReleaseDate   *time.Time `json:"auto_release_date,omitempty"`
}
