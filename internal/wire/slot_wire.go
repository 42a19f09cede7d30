package wire

import (
	"partner-booking/internal/adaptor"
	"partner-booking/internal/data/repository"
	"partner-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSlot(
	r chi.Router,
	slotHandler *adaptor.SlotHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/partners/{partner}/slots - published upcoming slots, cached
	r.Get("/api/partners/{partner}/slots", slotHandler.GetPublishedSlots)

	// ==================== PARTNER ROUTES ====================
	r.Route("/api/slots", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/", slotHandler.CreateSlot)
		r.Patch("/status", slotHandler.BatchUpdateStatus)
		r.Get("/", slotHandler.GetPartnerSlots)
		r.Get("/counts", slotHandler.GetStatusCounts)
	})
}
