package service

import (
	"github.com/taskhive/paycore/internal/config"
	"github.com/taskhive/paycore/internal/gateway"
	escrowhandlers "github.com/taskhive/paycore/internal/handlers/escrow"
	gatewayhandlers "github.com/taskhive/paycore/internal/handlers/gateway"
	wallethandlers "github.com/taskhive/paycore/internal/handlers/wallet"
	"github.com/taskhive/paycore/internal/pg"
	"github.com/taskhive/paycore/internal/repo"
	"github.com/taskhive/paycore/internal/service/escrowservice"
	"github.com/taskhive/paycore/internal/service/walletservice"
	"github.com/taskhive/paycore/internal/service/webhookservice"
)

type Services struct {
	WalletService  *walletservice.Service
	EscrowService  *escrowservice.Service
	WebhookService *webhookservice.Service
	Gateway        *gateway.Adapter
}

var (
	_ wallethandlers.Service  = (*walletservice.Service)(nil)
	_ escrowhandlers.Service  = (*escrowservice.Service)(nil)
	_ gatewayhandlers.Service = (*webhookservice.Service)(nil)
)

// New wires the payment core. The escrow and platform fee system accounts
// are resolved by the caller at startup and injected by id.
func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, escrowAccountID, feeAccountID int64) *Services {
	gatewayAdapter := gateway.New(cfg)
	walletService := walletservice.New(repo.AccountRepo, repo.TransactionRepo, repo.WithdrawalRepo, txManager)
	escrowService := escrowservice.New(repo.PaymentRepo, repo.EscrowRepo, walletService, txManager,
		escrowAccountID, feeAccountID, cfg.AutoReleaseAfter)
	webhookService := webhookservice.New(gatewayAdapter, walletService, repo.PaymentRepo, repo.EscrowRepo,
		txManager, cfg.AutoReleaseAfter)

	return &Services{
		WalletService:  walletService,
		EscrowService:  escrowService,
		WebhookService: webhookService,
		Gateway:        gatewayAdapter,
	}
}
