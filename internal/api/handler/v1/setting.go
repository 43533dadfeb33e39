package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventpass-app/eventpass-api/internal/api/handler/v1/request"
	"github.com/eventpass-app/eventpass-api/internal/api/handler/v1/response"
	"github.com/eventpass-app/eventpass-api/internal/domain"
	"github.com/eventpass-app/eventpass-api/internal/service"
)

type SettingService interface {
	Get(ctx context.Context, key string) (domain.Setting, error)
	List(ctx context.Context) ([]domain.Setting, error)
	Put(ctx context.Context, key, value string) (domain.Setting, error)
}

type SettingHandler struct {
	svc  SettingService
	uSvc UserService
}

func NewSettingHandler(svc SettingService, uSvc UserService) *SettingHandler {
	return &SettingHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleGetSettings godoc
// @Summary      Get settings
// @Description  Returns the setting for ?key=, or all settings without it. Missing keys and an unreachable store degrade to null data.
// @Tags         settings
// @Produce      json
// @Param        key  query     string  false  "Setting key"
// @Success      200  {object}  domain.Setting
// @Failure      500  {object}  response.Err
// @Router       /settings [get]
func (h *SettingHandler) HandleGetSettings(ctx *gin.Context) {
	key := ctx.Query("key")

	if key == "" {
		settings, err := h.svc.List(ctx.Request.Context())
		if err != nil {
			err = fmt.Errorf("v1.HandleGetSettings -> h.svc.List -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
			return
		}

		response.RenderData(ctx, http.StatusOK, settings)
		return
	}

	setting, err := h.svc.Get(ctx.Request.Context(), key)
	if err != nil {
		if errors.Is(err, service.ErrSettingNotFound) {
			response.RenderData(ctx, http.StatusOK, nil)
			return
		}

		err = fmt.Errorf("v1.HandleGetSettings -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, setting)
}

// HandlePutSetting godoc
// @Summary      Upsert a setting
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        input  body  request.PutSettingRequest  true  "Setting"
// @Success      200  {object}  domain.Setting
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /settings [put]
// @Security BearerAuth
func (h *SettingHandler) HandlePutSetting(ctx *gin.Context) {
	if _, respErr := getUserFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.PutSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	setting, err := h.svc.Put(ctx.Request.Context(), req.Key, req.Value)
	if err != nil {
		err = fmt.Errorf("v1.HandlePutSetting -> h.svc.Put -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, setting)
}
