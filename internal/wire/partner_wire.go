package wire

import (
	"partner-booking/internal/adaptor"
	"partner-booking/internal/data/repository"
	"partner-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePartner(
	r chi.Router,
	partnerHandler *adaptor.PartnerHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/partners - list active partners
	r.Get("/api/partners", partnerHandler.GetPartners)

	// GET /api/partners/{partner} - partner page data (pricing, fee split).
	// The wildcard is shared with the slot listing route, which addresses
	// partners by id instead of slug.
	r.Get("/api/partners/{partner}", partnerHandler.GetPartnerBySlug)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/partners", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", partnerHandler.CreatePartner)
		r.Put("/{id}", partnerHandler.UpdatePartner)
	})
}
