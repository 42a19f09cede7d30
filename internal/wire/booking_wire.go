package wire

import (
	"partner-booking/internal/adaptor"
	"partner-booking/internal/data/repository"
	"partner-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/pricing/quote - price a party without reserving anything
	r.Post("/api/pricing/quote", bookingHandler.Quote)

	// POST /api/bookings - take the slot, create a PENDING booking
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// POST /api/bookings/{id}/pay - open a deposit attempt
	r.Post("/api/bookings/{id}/pay", bookingHandler.InitiatePayment)

	// GET /api/bookings/{id}/payment-status - polling projection
	r.Get("/api/bookings/{id}/payment-status", bookingHandler.GetPaymentStatus)

	// ==================== PARTNER ROUTES ====================
	r.Route("/api/partner/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Get("/", bookingHandler.GetPartnerBookings)
	})
}
