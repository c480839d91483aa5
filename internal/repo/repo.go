package repo

import (
	"github.com/taskhive/paycore/internal/pg"
	accountrepo "github.com/taskhive/paycore/internal/repo/account-repo"
	escrowrepo "github.com/taskhive/paycore/internal/repo/escrow-repo"
	paymentrepo "github.com/taskhive/paycore/internal/repo/payment-repo"
	transactionrepo "github.com/taskhive/paycore/internal/repo/transaction-repo"
	withdrawalrepo "github.com/taskhive/paycore/internal/repo/withdrawal-repo"
	"github.com/taskhive/paycore/internal/service/escrowservice"
	"github.com/taskhive/paycore/internal/service/walletservice"
)

type Repositories struct {
	AccountRepo     walletservice.AccountRepo
	TransactionRepo walletservice.TransactionRepo
	WithdrawalRepo  walletservice.WithdrawalRepo
	PaymentRepo     escrowservice.PaymentRepo
	EscrowRepo      escrowservice.EscrowRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		AccountRepo:     accountrepo.New(conn, txManager),
		TransactionRepo: transactionrepo.New(conn, txManager),
		WithdrawalRepo:  withdrawalrepo.New(conn, txManager),
		PaymentRepo:     paymentrepo.New(conn, txManager),
		EscrowRepo:      escrowrepo.New(conn, txManager),
	}
}
