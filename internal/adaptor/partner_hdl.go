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

type PartnerHandler struct {
	service usecase.PartnerService
	log     *zap.Logger
}

func NewPartnerHandler(service usecase.PartnerService, log *zap.Logger) *PartnerHandler {
	return &PartnerHandler{
		service: service,
		log:     log.With(zap.String("handler", "partner")),
	}
}

// GetPartners handles GET /api/partners (public)
func (h *PartnerHandler) GetPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.service.GetActivePartners(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get partners")
		return
	}

	utils.ResponseSuccess(w, "success", partners)
}

// GetPartnerBySlug handles GET /api/partners/{partner} (public)
func (h *PartnerHandler) GetPartnerBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "partner")

	partner, err := h.service.GetPartnerBySlug(r.Context(), slug)
	if err != nil {
		handleServiceError(w, h.log, err, "get partner by slug")
		return
	}

	utils.ResponseSuccess(w, "success", partner)
}

// CreatePartner handles POST /api/admin/partners (admin)
func (h *PartnerHandler) CreatePartner(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	var req request.CreatePartnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	partner, err := h.service.CreatePartner(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create partner")
		return
	}

	utils.ResponseCreated(w, "success", partner)
}

// UpdatePartner handles PUT /api/admin/partners/{id} (admin)
func (h *PartnerHandler) UpdatePartner(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	var req request.UpdatePartnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	partner, err := h.service.UpdatePartner(r.Context(), actor, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update partner")
		return
	}

	utils.ResponseSuccess(w, "success", partner)
}
