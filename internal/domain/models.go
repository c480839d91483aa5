package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountKind string

const (
	AccountKindUser        AccountKind = "user"
	AccountKindEscrow      AccountKind = "escrow"
	AccountKindPlatformFee AccountKind = "platform_fee"
)

type TransactionType string

const (
	TransactionDeposit         TransactionType = "DEPOSIT"
	TransactionWithdraw        TransactionType = "WITHDRAW"
	TransactionPaymentSent     TransactionType = "PAYMENT_SENT"
	TransactionPaymentReceived TransactionType = "PAYMENT_RECEIVED"
	TransactionRefund          TransactionType = "REFUND"
	TransactionFee             TransactionType = "FEE"
)

type PaymentStatus string

const (
	PaymentStatusPending      PaymentStatus = "PENDING"
	PaymentStatusProcessing   PaymentStatus = "PROCESSING"
	PaymentStatusHeldInEscrow PaymentStatus = "HELD_IN_ESCROW"
	PaymentStatusCompleted    PaymentStatus = "COMPLETED"
	PaymentStatusFailed       PaymentStatus = "FAILED"
	PaymentStatusCancelled    PaymentStatus = "CANCELLED"
)

// Terminal reports whether no further transition may leave the status.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed || s == PaymentStatusCancelled
}

type EscrowReleaseStatus string

const (
	ReleaseStatusPending  EscrowReleaseStatus = "PENDING"
	ReleaseStatusDisputed EscrowReleaseStatus = "DISPUTED"
	ReleaseStatusReleased EscrowReleaseStatus = "RELEASED"
)

type WithdrawalStatus string

const (
	WithdrawalStatusPending    WithdrawalStatus = "PENDING"
	WithdrawalStatusProcessing WithdrawalStatus = "PROCESSING"
	WithdrawalStatusCompleted  WithdrawalStatus = "COMPLETED"
	WithdrawalStatusFailed     WithdrawalStatus = "FAILED"
	WithdrawalStatusCancelled  WithdrawalStatus = "CANCELLED"
)

// Account holds the current balance for one ledger party. System accounts
// (escrow, platform_fee) have no user attached.
type Account struct {
	ID        int64           `db:"id"`
	UserID    *int64          `db:"user_id"`
	Kind      AccountKind     `db:"kind"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
}

// Transaction is an immutable ledger entry. The account balance equals the
// sum of its transaction amounts at all times; entries are never updated
// or deleted after creation.
type Transaction struct {
	ID              int64           `db:"id"`
	AccountID       int64           `db:"account_id"`
	Type            TransactionType `db:"type"`
	Amount          decimal.Decimal `db:"amount"`
	BalanceBefore   decimal.Decimal `db:"balance_before"`
	BalanceAfter    decimal.Decimal `db:"balance_after"`
	ReferenceID     string          `db:"reference_id"`
	ExternalOrderID string          `db:"external_order_id"`
	CreatedAt       time.Time       `db:"created_at"`
}

// Payment is one escrow-bound transfer tied to an accepted application.
type Payment struct {
	ID                uuid.UUID       `db:"id"`
	ExternalOrderID   string          `db:"external_order_id"`
	ApplicationID     string          `db:"application_id"`
	PayerAccountID    int64           `db:"payer_account_id"`
	ReceiverAccountID int64           `db:"receiver_account_id"`
	Amount            decimal.Decimal `db:"amount"`
	Status            PaymentStatus   `db:"status"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

// EscrowRelease tracks the release handshake for a payment held in escrow,
// 1:1 with the payment once escrow is established.
type EscrowRelease struct {
	PaymentID         uuid.UUID           `db:"payment_id"`
	ReleaseStatus     EscrowReleaseStatus `db:"release_status"`
	FreelancerRequest bool                `db:"freelancer_request"`
	ClientApproval    bool                `db:"client_approval"`
	AutoReleaseDate   *time.Time          `db:"auto_release_date"`
	CreatedAt         time.Time           `db:"created_at"`
	UpdatedAt         time.Time           `db:"updated_at"`
}

// WithdrawalRequest is a payout request; the ledger is debited only when
// the request reaches COMPLETED.
type WithdrawalRequest struct {
	ID          uuid.UUID        `db:"id"`
	AccountID   int64            `db:"account_id"`
	Amount      decimal.Decimal  `db:"amount"`
	BankDetails string           `db:"bank_details"`
	Status      WithdrawalStatus `db:"status"`
	CreatedAt   time.Time        `db:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at"`
}
