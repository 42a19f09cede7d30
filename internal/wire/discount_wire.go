package wire

import (
	"partner-booking/internal/adaptor"
	"partner-booking/internal/data/repository"
	"partner-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDiscount(
	r chi.Router,
	discountHandler *adaptor.DiscountHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/discounts", func(r chi.Router) {
		// POST /api/discounts/validate - public check used by the booking form
		r.Post("/validate", discountHandler.ValidateDiscount)

		// ==================== PARTNER ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthSession(repo.Session, repo.User, log))

			r.Post("/", discountHandler.CreateDiscount)
			r.Get("/", discountHandler.GetPartnerDiscounts)
			r.Delete("/{id}", discountHandler.DeactivateDiscount)
		})
	})
}
