package adaptor

import (
	"net/http"

	"partner-booking/internal/dto/request"
	"partner-booking/internal/usecase"
	"partner-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Partner  *PartnerHandler
	Slot     *SlotHandler
	Booking  *BookingHandler
	Payment  *PaymentHandler
	Discount *DiscountHandler
	Consent  *ConsentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Partner:  NewPartnerHandler(service.Partner, log),
		Slot:     NewSlotHandler(service.Slot, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Payment:  NewPaymentHandler(service.Payment, service.Reconcile, log),
		Discount: NewDiscountHandler(service.Discount, log),
		Consent:  NewConsentHandler(service.Consent, log),
	}
}

// handleServiceError translates the service error taxonomy into HTTP. The
// envelope carries the stable code so clients never parse messages.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, op string) {
	svcErr, ok := usecase.AsServiceError(err)
	if !ok {
		log.Error("Unhandled service error", zap.Error(err), zap.String("operation", op))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	var status int
	switch svcErr.Code {
	case "VALIDATION_FAILED", "DISCOUNT_INVALID":
		status = http.StatusBadRequest
	case "UNAUTHORIZED":
		status = http.StatusUnauthorized
	case "FORBIDDEN":
		status = http.StatusForbidden
	case "NOT_FOUND", "PARTNER_NOT_FOUND_OR_INACTIVE":
		status = http.StatusNotFound
	case "INVALID_PARTNER_PRICING":
		status = http.StatusUnprocessableEntity
	default:
		// Conflicts: SLOT_UNAVAILABLE, SLOT_TIME_MISMATCH,
		// BOOKING_STATE_CONFLICT, LATE_PAYMENT_REFUND_REQUIRED, *_TAKEN.
		status = http.StatusConflict
	}

	utils.ResponseErrorCode(w, status, svcErr.Code, svcErr.Message)
}

// actorFromRequest pulls the authenticated actor out of the request
// context. Zero value means the route is misconfigured, not the client.
func actorFromRequest(w http.ResponseWriter, r *http.Request) (utils.Actor, bool) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return utils.Actor{}, false
	}
	return actor, true
}

// paginationFromQuery reads page/per_page query params with defaults.
func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}
