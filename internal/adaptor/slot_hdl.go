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

type SlotHandler struct {
	service usecase.SlotService
	log     *zap.Logger
}

func NewSlotHandler(service usecase.SlotService, log *zap.Logger) *SlotHandler {
	return &SlotHandler{
		service: service,
		log:     log.With(zap.String("handler", "slot")),
	}
}

// CreateSlot handles POST /api/slots (protected)
func (h *SlotHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	var req request.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slot, err := h.service.CreateSlot(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create slot")
		return
	}

	utils.ResponseCreated(w, "success", slot)
}

// BatchUpdateStatus handles PATCH /api/slots/status (protected).
// Responds with the fixed {ok, updated} shape.
func (h *SlotHandler) BatchUpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	var req request.BatchSlotStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.BatchUpdateStatus(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "batch update slots")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, result)
}

// GetPartnerSlots handles GET /api/slots (protected)
func (h *SlotHandler) GetPartnerSlots(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	slots, err := h.service.GetPartnerSlots(r.Context(), actor, r.URL.Query().Get("partner_id"), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get partner slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// GetStatusCounts handles GET /api/slots/counts (protected)
func (h *SlotHandler) GetStatusCounts(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	counts, err := h.service.GetStatusCounts(r.Context(), actor, r.URL.Query().Get("partner_id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get slot counts")
		return
	}

	utils.ResponseSuccess(w, "success", counts)
}

// GetPublishedSlots handles GET /api/partners/{partner}/slots (public),
// addressing the partner by id.
func (h *SlotHandler) GetPublishedSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.service.GetPublishedSlots(r.Context(), chi.URLParam(r, "partner"))
	if err != nil {
		handleServiceError(w, h.log, err, "get published slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}
