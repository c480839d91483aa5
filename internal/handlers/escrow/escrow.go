package escrow

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taskhive/paycore/internal/domain"
	"github.com/taskhive/paycore/internal/dto"
	"github.com/taskhive/paycore/internal/pg"
	"github.com/taskhive/paycore/internal/service/escrowservice"
	"github.com/taskhive/paycore/internal/service/walletservice"
	"github.com/taskhive/paycore/pkg/auth"
	"github.com/taskhive/paycore/pkg/utils"
)

type Service interface {
	FundEscrow(ctx context.Context, params escrowservice.FundEscrowParams) (*domain.Payment, error)
	RequestRelease(ctx context.Context, paymentID uuid.UUID) (*domain.EscrowRelease, error)
	ApproveRelease(ctx context.Context, paymentID uuid.UUID) (*domain.EscrowRelease, error)
	Dispute(ctx context.Context, paymentID uuid.UUID) (*domain.EscrowRelease, error)
	CancelEscrow(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error)
}

type EscrowHandler struct {
	escrowService Service
}

func New(escrowService Service) *EscrowHandler {
	return &EscrowHandler{
		escrowService: escrowService,
	}
}

// Fund godoc
//
//	@Summary		Fund an escrow payment
//	@Description	Move the agreed amount from the authenticated client into platform escrow and create the payment record.
//	@Tags			Escrow
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.FundEscrowRequestDTO	true	"Application and amount to fund"
//	@Success		201		{object}	dto.PaymentResponseDTO		"Payment held in escrow"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		422		{object}	utils.Response				"Invalid amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/escrow [post]
func (h *EscrowHandler) Fund(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	var req dto.FundEscrowRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payment, err := h.escrowService.FundEscrow(r.Context(), escrowservice.FundEscrowParams{
		ApplicationID:     req.ApplicationID,
		PayerAccountID:    accountID,
		ReceiverAccountID: req.ReceiverAccountID,
		Amount:            req.Amount,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPaymentDTO(payment))
}

// RequestRelease godoc
//
//	@Summary		Request escrow release
//	@Description	Freelancer claims completion; no funds move until the client approves or the auto-release date passes.
//	@Tags			Escrow
//	@Security		BearerAuth
//	@Produce		json
//	@Param			paymentID	path		string						true	"Payment id"
//	@Success		200			{object}	dto.EscrowReleaseResponseDTO	"Release state"
//	@Failure		400			{object}	utils.Response				"Invalid payment id"
//	@Failure		404			{object}	utils.Response				"Payment not found"
//	@Failure		409			{object}	utils.Response				"Invalid state transition"
//	@Router			/api/escrow/{paymentID}/request-release [post]
func (h *EscrowHandler) RequestRelease(w http.ResponseWriter, r *http.Request) {
	paymentID, ok := h.paymentID(w, r)
	if !ok {
		return
	}
	release, err := h.escrowService.RequestRelease(r.Context(), paymentID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReleaseDTO(release))
}

// ApproveRelease godoc
//
//	@Summary		Approve escrow release
//	@Description	Client approves a requested release: the freelancer is credited the amount minus the platform fee and the release becomes terminal.
//	@Tags			Escrow
//	@Security		BearerAuth
//	@Produce		json
//	@Param			paymentID	path		string						true	"Payment id"
//	@Success		200			{object}	dto.EscrowReleaseResponseDTO	"Released"
//	@Failure		400			{object}	utils.Response				"Invalid payment id"
//	@Failure		404			{object}	utils.Response				"Payment not found"
//	@Failure		409			{object}	utils.Response				"Invalid state transition"
//	@Router			/api/escrow/{paymentID}/approve [post]
func (h *EscrowHandler) ApproveRelease(w http.ResponseWriter, r *http.Request) {
	paymentID, ok := h.paymentID(w, r)
	if !ok {
		return
	}
	release, err := h.escrowService.ApproveRelease(r.Context(), paymentID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReleaseDTO(release))
}

// Dispute godoc
//
//	@Summary		Dispute an escrow payment
//	@Description	Freeze the escrowed funds pending manual resolution.
//	@Tags			Escrow
//	@Security		BearerAuth
//	@Produce		json
//	@Param			paymentID	path		string						true	"Payment id"
//	@Success		200			{object}	dto.EscrowReleaseResponseDTO	"Disputed"
//	@Failure		400			{object}	utils.Response				"Invalid payment id"
//	@Failure		404			{object}	utils.Response				"Payment not found"
//	@Failure		409			{object}	utils.Response				"Invalid state transition"
//	@Router			/api/escrow/{paymentID}/dispute [post]
func (h *EscrowHandler) Dispute(w http.ResponseWriter, r *http.Request) {
	paymentID, ok := h.paymentID(w, r)
	if !ok {
		return
	}
	release, err := h.escrowService.Dispute(r.Context(), paymentID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReleaseDTO(release))
}

// Cancel godoc
//
//	@Summary		Cancel an escrow payment
//	@Description	Refund the full escrowed amount to the client and cancel the payment.
//	@Tags			Escrow
//	@Security		BearerAuth
//	@Produce		json
//	@Param			paymentID	path		string					true	"Payment id"
//	@Success		200			{object}	dto.PaymentResponseDTO	"Cancelled"
//	@Failure		400			{object}	utils.Response			"Invalid payment id"
//	@Failure		404			{object}	utils.Response			"Payment not found"
//	@Failure		409			{object}	utils.Response			"Invalid state transition"
//	@Router			/api/escrow/{paymentID}/cancel [post]
func (h *EscrowHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	paymentID, ok := h.paymentID(w, r)
	if !ok {
		return
	}
	payment, err := h.escrowService.CancelEscrow(r.Context(), paymentID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPaymentDTO(payment))
}

func (h *EscrowHandler) paymentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	paymentID, err := uuid.Parse(chi.URLParam(r, "paymentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payment id")
		return uuid.Nil, false
	}
	return paymentID, true
}

func (h *EscrowHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, escrowservice.ErrPaymentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, escrowservice.ErrInvalidStateTransition):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, walletservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, walletservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, pg.ErrStoreConflict):
		utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toPaymentDTO(payment *domain.Payment) dto.PaymentResponseDTO {
	return dto.PaymentResponseDTO{
		ID:                payment.ID.String(),
		ExternalOrderID:   payment.ExternalOrderID,
		ApplicationID:     payment.ApplicationID,
		PayerAccountID:    payment.PayerAccountID,
		ReceiverAccountID: payment.ReceiverAccountID,
		Amount:            payment.Amount,
		Status:            string(payment.Status),
		CreatedAt:         payment.CreatedAt,
	}
}

func toReleaseDTO(release *domain.EscrowRelease) dto.EscrowReleaseResponseDTO {
	return dto.EscrowReleaseResponseDTO{
		PaymentID:         release.PaymentID.String(),
		ReleaseStatus:     string(release.ReleaseStatus),
		FreelancerRequest: release.FreelancerRequest,
		ClientApproval:    release.ClientApproval,
		AutoReleaseDate:   release.AutoReleaseDate,
	}
}
