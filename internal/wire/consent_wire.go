package wire

import (
	"partner-booking/internal/adaptor"
	"partner-booking/internal/data/repository"
	"partner-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireConsent(
	r chi.Router,
	consentHandler *adaptor.ConsentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// POST /api/consent - append a visitor consent decision
	r.Post("/api/consent", consentHandler.RecordConsent)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/consent", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/", consentHandler.GetConsentLog)
	})
}
