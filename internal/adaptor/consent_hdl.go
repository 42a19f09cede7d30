package adaptor

import (
	"encoding/json"
	"net/http"

	"partner-booking/internal/dto/request"
	"partner-booking/internal/usecase"
	"partner-booking/pkg/utils"

	"go.uber.org/zap"
)

type ConsentHandler struct {
	service usecase.ConsentService
	log     *zap.Logger
}

func NewConsentHandler(service usecase.ConsentService, log *zap.Logger) *ConsentHandler {
	return &ConsentHandler{
		service: service,
		log:     log.With(zap.String("handler", "consent")),
	}
}

// RecordConsent handles POST /api/consent (public)
func (h *ConsentHandler) RecordConsent(w http.ResponseWriter, r *http.Request) {
	var req request.CreateConsentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	record, err := h.service.RecordConsent(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "record consent")
		return
	}

	utils.ResponseCreated(w, "success", record)
}

// GetConsentLog handles GET /api/admin/consent (admin)
func (h *ConsentHandler) GetConsentLog(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	records, err := h.service.GetConsentLog(r.Context(), actor, paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get consent log")
		return
	}

	utils.ResponseSuccess(w, "success", records)
}
