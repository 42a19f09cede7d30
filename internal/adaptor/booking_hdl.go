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

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Quote handles POST /api/pricing/quote (public). Responds with the
// fixed {pricing: {...}} shape.
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req request.PricingQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	quote, err := h.service.Quote(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "pricing quote")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, quote)
}

// CreateBooking handles POST /api/bookings (public)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// InitiatePayment handles POST /api/bookings/{id}/pay (public)
func (h *BookingHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	payment, err := h.service.InitiatePayment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "initiate payment")
		return
	}

	utils.ResponseCreated(w, "success", payment)
}

// GetPaymentStatus handles GET /api/bookings/{id}/payment-status (public)
func (h *BookingHandler) GetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.GetPaymentStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get payment status")
		return
	}

	utils.ResponseSuccess(w, "success", status)
}

// GetPartnerBookings handles GET /api/partner/bookings (protected)
func (h *BookingHandler) GetPartnerBookings(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	bookings, err := h.service.GetPartnerBookings(r.Context(), actor, r.URL.Query().Get("partner_id"), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get partner bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}
