package wire

import (
	"tech-store/internal/adaptor"
	"tech-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// All public. Logout takes the refresh token in the body, revocation
	// works even after the access token expired.
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/logout", authHandler.Logout)
	r.Post("/api/token/refresh", authHandler.RefreshToken)
}
