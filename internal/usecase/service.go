package usecase

import (
	"tech-store/internal/data/repository"
	"tech-store/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Credential CredentialService
	Token      TokenService
	Auth       AuthService
	Customer   CustomerService
	User       UserService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	credential := NewCredentialService(repo.User, config, log)
	token := NewTokenService(repo.Token, repo.User, config, log)

	return &Service{
		Credential: credential,
		Token:      token,
		Auth:       NewAuthService(credential, token, log),
		Customer:   NewCustomerService(repo.Customer, repo.User, log),
		User:       NewUserService(repo.User, log),
	}
}
