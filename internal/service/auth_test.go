package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventpass-app/eventpass-api/internal/domain"
	"github.com/eventpass-app/eventpass-api/internal/repository"
)

type fakeAuthRepo struct {
	users  map[string]domain.AdminUser
	nextID uint
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		users:  make(map[string]domain.AdminUser),
		nextID: 1,
	}
}

func (f *fakeAuthRepo) Create(_ context.Context, user domain.AdminUser) (domain.AdminUser, error) {
	if _, ok := f.users[user.Email]; ok {
		return domain.AdminUser{}, repository.ErrAdminEmailExists
	}

	user.ID = f.nextID
	f.nextID++
	f.users[user.Email] = user

	return user, nil
}

func (f *fakeAuthRepo) FindByEmail(_ context.Context, email string) (domain.AdminUser, error) {
	user, ok := f.users[email]
	if !ok {
		return domain.AdminUser{}, repository.ErrAdminNotFound
	}

	return user, nil
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)

	created, err := svc.Signup(ctx, domain.AdminUser{
		Email:    "organizer@example.com",
		Password: "s3cretpass",
		Name:     "Organizer",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, "s3cretpass", repo.users["organizer@example.com"].Password, "password must be stored hashed")

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Signup(ctx, domain.AdminUser{Email: "organizer@example.com", Password: "whatever1"})
		assert.ErrorIs(t, err, ErrAdminEmailExists)
	})

	t.Run("login with correct password", func(t *testing.T) {
		user, err := svc.Login(ctx, "organizer@example.com", "s3cretpass")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "organizer@example.com", "wrongpass1")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("login with unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "s3cretpass")
		assert.ErrorIs(t, err, ErrAdminNotFound)
	})
}
