package wire

import (
	"tech-store/internal/adaptor"
	"tech-store/pkg/middleware"
	"tech-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCustomer(
	r chi.Router,
	customerHandler *adaptor.CustomerHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Customer profile - requires a valid access token
	r.With(middleware.AuthJWT(config.JWT, log)).Route("/api/customer/profile", func(r chi.Router) {
		r.Get("/", customerHandler.GetProfile)
		r.Post("/", customerHandler.CreateProfile)
	})
}
