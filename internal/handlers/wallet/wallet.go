package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/taskhive/paycore/internal/domain"
	"github.com/taskhive/paycore/internal/dto"
	"github.com/taskhive/paycore/internal/gateway"
	"github.com/taskhive/paycore/internal/service/walletservice"
	"github.com/taskhive/paycore/internal/service/webhookservice"
	"github.com/taskhive/paycore/pkg/auth"
	"github.com/taskhive/paycore/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, accountID int64) (decimal.Decimal, error)
	ListTransactions(ctx context.Context, accountID int64) ([]domain.Transaction, error)
	RequestWithdrawal(ctx context.Context, accountID int64, amount decimal.Decimal, bankDetails string) (*domain.WithdrawalRequest, error)
	ListWithdrawals(ctx context.Context, accountID int64) ([]domain.WithdrawalRequest, error)
}

type Gateway interface {
	BuildCheckoutRequest(params gateway.CheckoutParams) map[string]string
}

type WalletHandler struct {
	walletService Service
	gateway       Gateway
}

func New(walletService Service, gw Gateway) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		gateway:       gw,
	}
}

// GetBalance godoc
//
//	@Summary		Get current wallet balance
//	@Description	Retrieve the ledger balance of the authenticated account.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	balance, err := h.walletService.GetBalance(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		AccountID: accountID,
		Balance:   balance,
	})
}

// DepositCheckout godoc
//
//	@Summary		Start a wallet top-up
//	@Description	Build the signed gateway checkout form for a wallet deposit. The browser submits the returned fields to the gateway; the credit lands via the notification webhook.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositCheckoutRequestDTO	true	"Top-up amount and payer details"
//	@Success		200		{object}	dto.CheckoutResponseDTO			"Signed checkout form fields"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		422		{object}	utils.Response					"Invalid amount"
//	@Router			/api/wallet/deposit/checkout [post]
func (h *WalletHandler) DepositCheckout(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	var req dto.DepositCheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid amount")
		return
	}

	orderID := uuid.NewString()
	fields := h.gateway.BuildCheckoutRequest(gateway.CheckoutParams{
		OrderID: orderID,
		Amount:  req.Amount,
		Items:   "Wallet top-up",
		Custom1: strconv.FormatInt(accountID, 10),
		Custom2: webhookservice.WalletDepositMarker,
		Payer: gateway.PayerInfo{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Address:   req.Address,
			City:      req.City,
			Country:   req.Country,
		},
	})

	utils.RespondWithJSON(w, http.StatusOK, dto.CheckoutResponseDTO{
		OrderID: orderID,
		Fields:  fields,
	})
}

// GetTransactions godoc
//
//	@Summary		Get ledger history
//	@Description	List the authenticated account's ledger entries, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Ledger entries"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	txns, err := h.walletService.ListTransactions(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(txns) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txns))
	for i, txn := range txns {
		response[i] = dto.TransactionResponseDTO{
			ID:              txn.ID,
			Type:            string(txn.Type),
			Amount:          txn.Amount,
			BalanceAfter:    txn.BalanceAfter,
			ReferenceID:     txn.ReferenceID,
			ExternalOrderID: txn.ExternalOrderID,
			CreatedAt:       txn.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// RequestWithdrawal godoc
//
//	@Summary		Request a payout
//	@Description	Create a withdrawal request for the authenticated account. The balance is debited when the payout completes.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal request payload"
//	@Success		201		{object}	dto.WithdrawalResponseDTO	"Created withdrawal request"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		422		{object}	utils.Response				"Invalid amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/withdrawals [post]
func (h *WalletHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.walletService.RequestWithdrawal(r.Context(), accountID, req.Amount, req.BankDetails)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toWithdrawalDTO(request))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawal requests
//	@Description	List the authenticated account's withdrawal requests, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO	"Withdrawal requests"
//	@Success		204	{object}	utils.Response				"No withdrawal requests"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/withdrawals [get]
func (h *WalletHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	requests, err := h.walletService.ListWithdrawals(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}
	if len(requests) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(requests))
	for i, request := range requests {
		response[i] = toWithdrawalDTO(&request)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toWithdrawalDTO(request *domain.WithdrawalRequest) dto.WithdrawalResponseDTO {
	return dto.WithdrawalResponseDTO{
		ID:          request.ID.String(),
		Amount:      request.Amount,
		BankDetails: request.BankDetails,
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
	}
}
