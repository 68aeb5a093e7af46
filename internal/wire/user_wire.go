package wire

import (
	"tech-store/internal/adaptor"
	"tech-store/internal/data/repository"
	"tech-store/pkg/middleware"
	"tech-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures user routes with role-based access control
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Own profile - requires a valid access token
	r.With(middleware.AuthJWT(config.JWT, log)).Get("/api/user/profile", userHandler.GetProfile)

	// Admin user management - requires authentication AND admin role
	r.With(
		middleware.AuthJWT(config.JWT, log),
		middleware.Admin(repo.User, log),
	).Route("/api/admin/users", func(r chi.Router) {
		r.Get("/", userHandler.GetAllUsers)
		r.Post("/", userHandler.CreateAdmin)
		r.Patch("/{id}/deactivate", userHandler.DeactivateUser)
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
