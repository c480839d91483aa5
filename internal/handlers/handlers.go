package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/taskhive/paycore/docs"
	escrowhandlers "github.com/taskhive/paycore/internal/handlers/escrow"
	gatewayhandlers "github.com/taskhive/paycore/internal/handlers/gateway"
	wallethandlers "github.com/taskhive/paycore/internal/handlers/wallet"
	"github.com/taskhive/paycore/internal/service"
	"github.com/taskhive/paycore/pkg/auth"
)

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	DepositCheckout(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	RequestWithdrawal(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type EscrowHandler interface {
	Fund(w http.ResponseWriter, r *http.Request)
	RequestRelease(w http.ResponseWriter, r *http.Request)
	ApproveRelease(w http.ResponseWriter, r *http.Request)
	Dispute(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type GatewayHandler interface {
	Notify(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WalletHandler  WalletHandler
	EscrowHandler  EscrowHandler
	GatewayHandler GatewayHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		WalletHandler:  wallethandlers.New(s.WalletService, s.Gateway),
		EscrowHandler:  escrowhandlers.New(s.EscrowService),
		GatewayHandler: gatewayhandlers.New(s.WebhookService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	// signed gateway webhook, authenticated by its own signature
	r.Post("/api/gateway/notify", h.GatewayHandler.Notify)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Route("/api/wallet", func(r chi.Router) {
			r.Get("/balance", h.WalletHandler.GetBalance)
			r.Post("/deposit/checkout", h.WalletHandler.DepositCheckout)
			r.Get("/transactions", h.WalletHandler.GetTransactions)
			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/", h.WalletHandler.RequestWithdrawal)
				r.Get("/", h.WalletHandler.GetWithdrawals)
			})
		})
		r.Route("/api/escrow", func(r chi.Router) {
			r.Post("/", h.EscrowHandler.Fund)
			r.Route("/{paymentID}", func(r chi.Router) {
				r.Post("/request-release", h.EscrowHandler.RequestRelease)
				r.Post("/approve", h.EscrowHandler.ApproveRelease)
				r.Post("/dispute", h.EscrowHandler.Dispute)
				r.Post("/cancel", h.EscrowHandler.Cancel)
			})
		})
	})

	return r
}
