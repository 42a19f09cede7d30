package wire

import (
	"partner-booking/internal/adaptor"
	"partner-booking/internal/data/repository"
	"partner-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// POST /api/payments/webhook - provider status callbacks
	r.Post("/api/payments/webhook", paymentHandler.Webhook)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/reconcile", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// POST /api/admin/reconcile - manual stale-booking sweep
		r.Post("/", paymentHandler.Reconcile)
	})

	r.Route("/api/admin/payments", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/payments/refund-queue - late payments awaiting refund
		r.Get("/refund-queue", paymentHandler.GetRefundQueue)
	})
}
