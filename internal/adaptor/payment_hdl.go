package adaptor

import (
	"encoding/json"
	"net/http"

	"partner-booking/internal/dto/request"
	"partner-booking/internal/dto/response"
	"partner-booking/internal/usecase"
	"partner-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service   usecase.PaymentService
	reconcile usecase.ReconcileService
	log       *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, reconcile usecase.ReconcileService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service:   service,
		reconcile: reconcile,
		log:       log.With(zap.String("handler", "payment")),
	}
}

// Webhook handles POST /api/payments/webhook. The provider retries on
// non-2xx, so only genuinely retryable failures return one.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.HandleWebhook(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "payment webhook")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Reconcile handles POST /api/admin/reconcile (admin). Responds with the
// fixed {ok, processed} shape.
func (h *PaymentHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	processed, err := h.reconcile.ReleaseStale(r.Context(), actor)
	if err != nil {
		handleServiceError(w, h.log, err, "reconcile")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, response.ReconcileResponse{Ok: true, Processed: processed})
}

// GetRefundQueue handles GET /api/admin/payments/refund-queue (admin)
func (h *PaymentHandler) GetRefundQueue(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	payments, err := h.service.GetRefundQueue(r.Context(), actor)
	if err != nil {
		handleServiceError(w, h.log, err, "get refund queue")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}
