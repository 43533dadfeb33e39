package repository

import (
	"context"

	"github.com/eventpass-app/eventpass-api/internal/domain"
	"github.com/eventpass-app/eventpass-api/internal/repository/dao"
)

var (
	ErrAdminEmailExists = dao.ErrAdminEmailExists
	ErrAdminNotFound    = dao.ErrAdminNotFound
)

type AdminUserDAO interface {
	Insert(ctx context.Context, user dao.AdminUser) (dao.AdminUser, error)
	FindByID(ctx context.Context, id uint) (dao.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (dao.AdminUser, error)
}

type AdminUserRepository struct {
	dao AdminUserDAO
}

func NewAdminUserRepository(dao AdminUserDAO) *AdminUserRepository {
	return &AdminUserRepository{
		dao: dao,
	}
}

func (r *AdminUserRepository) domainToDao(u domain.AdminUser) dao.AdminUser {
	return dao.AdminUser{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (r *AdminUserRepository) daoToDomain(u dao.AdminUser) domain.AdminUser {
	return domain.AdminUser{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (r *AdminUserRepository) Create(ctx context.Context, user domain.AdminUser) (domain.AdminUser, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(user))
	if err != nil {
		return domain.AdminUser{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *AdminUserRepository) FindByID(ctx context.Context, id uint) (domain.AdminUser, error) {
	user, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.AdminUser{}, err
	}

	return r.daoToDomain(user), nil
}

func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (domain.AdminUser, error) {
	user, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.AdminUser{}, err
	}

	return r.daoToDomain(user), nil
}
