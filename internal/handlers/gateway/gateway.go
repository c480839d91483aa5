package gateway

import (
	"context"
	"errors"
	"net/http"

	"github.com/taskhive/paycore/internal/dto"
	"github.com/taskhive/paycore/internal/service/webhookservice"
	"github.com/taskhive/paycore/pkg/utils"
)

type Service interface {
	HandleNotification(ctx context.Context, n dto.GatewayNotification) error
}

type GatewayHandler struct {
	webhookService Service
}

func New(webhookService Service) *GatewayHandler {
	return &GatewayHandler{
		webhookService: webhookService,
	}
}

// Notify godoc
//
//	@Summary		Gateway payment notification
//	@Description	Receive the asynchronous, signed payment notification from the gateway. A bad signature is rejected with 400 and causes no state change; duplicates are acknowledged without reapplying.
//	@Tags			Gateway
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			merchant_id			formData	string	true	"Merchant id"
//	@Param			order_id			formData	string	true	"Order id"
//	@Param			payment_id			formData	string	false	"Gateway payment id"
//	@Param			payhere_amount		formData	string	true	"Amount"
//	@Param			payhere_currency	formData	string	true	"Currency"
//	@Param			status_code			formData	string	true	"Gateway status code"
//	@Param			md5sig				formData	string	true	"Notification signature"
//	@Param			custom_1			formData	string	false	"Custom field 1"
//	@Param			custom_2			formData	string	false	"Custom field 2"
//	@Success		200	{object}	dto.NotificationResponseDTO	"Accepted"
//	@Failure		400	{object}	dto.NotificationResponseDTO	"Rejected"
//	@Failure		404	{object}	dto.NotificationResponseDTO	"Unknown order"
//	@Failure		500	{object}	dto.NotificationResponseDTO	"Processing failed, gateway should retry"
//	@Router			/api/gateway/notify [post]
func (h *GatewayHandler) Notify(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, dto.NotificationResponseDTO{Accepted: false})
		return
	}

	n := dto.GatewayNotification{
		MerchantID: r.FormValue("merchant_id"),
		OrderID:    r.FormValue("order_id"),
		PaymentID:  r.FormValue("payment_id"),
		Amount:     r.FormValue("payhere_amount"),
		Currency:   r.FormValue("payhere_currency"),
		StatusCode: r.FormValue("status_code"),
		Signature:  r.FormValue("md5sig"),
		Custom1:    r.FormValue("custom_1"),
		Custom2:    r.FormValue("custom_2"),
	}

	err := h.webhookService.HandleNotification(r.Context(), n)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, dto.NotificationResponseDTO{Accepted: true})
	case errors.Is(err, webhookservice.ErrSignatureMismatch):
		utils.RespondWithJSON(w, http.StatusBadRequest, dto.NotificationResponseDTO{Accepted: false})
	case errors.Is(err, webhookservice.ErrUnknownOrder):
		utils.RespondWithJSON(w, http.StatusNotFound, dto.NotificationResponseDTO{Accepted: false})
	default:
		// let the gateway retry
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.NotificationResponseDTO{Accepted: false})
	}
}
