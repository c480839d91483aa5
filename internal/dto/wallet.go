package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BalanceResponseDTO struct {
	AccountID int64           `json:"account_id" example:"1"`
	Balance   decimal.Decimal `json:"balance" example:"5000.00"`
}

type DepositCheckoutRequestDTO struct {
	Amount    decimal.Decimal `json:"amount" example:"1000.00"`
	FirstName string          `json:"first_name" example:"Saman"`
	LastName  string          `json:"last_name" example:"Perera"`
	Email     string          `json:"email" example:"saman@example.com"`
	Phone     string          `json:"phone" example:"0771234567"`
	Address   string          `json:"address" example:"No. 1, Galle Road"`
	City      string          `json:"city" example:"Colombo"`
	Country   string          `json:"country" example:"Sri Lanka"`
}

type CheckoutResponseDTO struct {
	OrderID string            `json:"order_id" example:"8f14e45f-ceea-4672-95f2-ff3d51f917f4"`
	Fields  map[string]string `json:"fields"`
}

type TransactionResponseDTO struct {
	ID              int64           `json:"id" example:"42"`
	Type            string          `json:"type" example:"DEPOSIT"`
	Amount          decimal.Decimal `json:"amount" example:"1000.00"`
	BalanceAfter    decimal.Decimal `json:"balance_after" example:"6000.00"`
	ReferenceID     string          `json:"reference_id,omitempty"`
	ExternalOrderID string          `json:"external_order_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at" example:"2025-06-09T16:09:57+03:00"`
}

type WithdrawalRequestDTO struct {
	Amount      decimal.Decimal `json:"amount" example:"2500.00"`
	BankDetails string          `json:"bank_details" example:"BOC 123456789"`
}

type WithdrawalResponseDTO struct {
	ID          string          `json:"id" example:"8f14e45f-ceea-4672-95f2-ff3d51f917f4"`
	Amount      decimal.Decimal `json:"amount" example:"2500.00"`
	BankDetails string          `json:"bank_details" example:"BOC 123456789"`
	Status      string          `json:"status" example:"PENDING"`
	CreatedAt   time.Time       `json:"created_at" example:"2025-06-09T16:09:57+03:00"`
}
