package wire

import (
	"partner-booking/internal/adaptor"
	"partner-booking/internal/data/repository"
	"partner-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// POST /api/auth/login - exchange credentials for a session token
	r.Post("/api/auth/login", authHandler.Login)

	r.Route("/api/auth/logout", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Post("/", authHandler.Logout)
	})

	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))
		r.Post("/", authHandler.CreateUser)
	})
}
