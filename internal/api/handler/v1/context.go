package v1

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/eventpass-app/eventpass-api/internal/api/handler/v1/response"
	"github.com/eventpass-app/eventpass-api/internal/api/middleware"
	"github.com/eventpass-app/eventpass-api/internal/domain"
)

var errNotAuthenticated = errors.New("not authenticated")

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.AdminUser, error)
}

// getUserFromContext resolves the authenticated admin stored by the JWT
// middleware into a full user record.
func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.AdminUser, *response.Err) {
	userID, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return domain.AdminUser{}, response.ErrUnauthorized(errNotAuthenticated)
	}

	id, ok := userID.(uint)
	if !ok {
		return domain.AdminUser{}, response.ErrUnauthorized(errNotAuthenticated)
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), id)
	if err != nil {
		return domain.AdminUser{}, response.ErrUnauthorized(errNotAuthenticated)
	}

	return user, nil
}
