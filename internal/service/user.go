package service

import (
	"context"
	"fmt"

	"github.com/eventpass-app/eventpass-api/internal/domain"
	"github.com/eventpass-app/eventpass-api/internal/repository"
)

var ErrAdminNotFound = repository.ErrAdminNotFound

type AdminUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.AdminUser, error)
}

type UserService struct {
	repo AdminUserRepository
}

func NewUserService(repo AdminUserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.AdminUser, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.AdminUser{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}
