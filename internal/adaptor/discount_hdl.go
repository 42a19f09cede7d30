package adaptor

import (
	"encoding/json"
	"net/http"

	"partner-booking/internal/dto/request"
	"partner-booking/internal/usecase"
	"partner-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DiscountHandler struct {
	service usecase.DiscountService
	log     *zap.Logger
}

func NewDiscountHandler(service usecase.DiscountService, log *zap.Logger) *DiscountHandler {
	return &DiscountHandler{
		service: service,
		log:     log.With(zap.String("handler", "discount")),
	}
}

// CreateDiscount handles POST /api/discounts (protected)
func (h *DiscountHandler) CreateDiscount(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	var req request.CreateDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	discount, err := h.service.CreateDiscount(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create discount")
		return
	}

	utils.ResponseCreated(w, "success", discount)
}

// ValidateDiscount handles POST /api/discounts/validate (public)
func (h *DiscountHandler) ValidateDiscount(w http.ResponseWriter, r *http.Request) {
	var req request.ValidateDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.ValidateCode(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "validate discount")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// GetPartnerDiscounts handles GET /api/discounts (protected)
func (h *DiscountHandler) GetPartnerDiscounts(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	discounts, err := h.service.GetPartnerDiscounts(r.Context(), actor, r.URL.Query().Get("partner_id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get partner discounts")
		return
	}

	utils.ResponseSuccess(w, "success", discounts)
}

// DeactivateDiscount handles DELETE /api/discounts/{id} (protected)
func (h *DiscountHandler) DeactivateDiscount(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.service.DeactivateDiscount(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "deactivate discount")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
