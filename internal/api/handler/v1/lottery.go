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

type LotteryService interface {
	Draw(ctx context.Context, participantIDs []uint, winnerCount int, removeWinners bool) (domain.DrawResult, error)
}

type LotteryHandler struct {
	svc  LotteryService
	uSvc UserService
}

func NewLotteryHandler(svc LotteryService, uSvc UserService) *LotteryHandler {
	return &LotteryHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleDraw godoc
// @Summary      Draw lottery winners
// @Description  Uniformly selects winnerCount winners from the candidate participants, optionally removing them from the registry.
// @Tags         lottery
// @Accept       json
// @Produce      json
// @Param        input  body  request.LotteryDrawRequest  true  "Draw parameters"
// @Success      200  {object}  domain.DrawResult
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/lottery [post]
// @Security BearerAuth
func (h *LotteryHandler) HandleDraw(ctx *gin.Context) {
	if _, respErr := getUserFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.LotteryDrawRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.Draw(ctx.Request.Context(), req.ParticipantIDs, req.WinnerCount, req.RemoveWinners)
	if err != nil {
		if errors.Is(err, service.ErrNoCandidates) || errors.Is(err, service.ErrInvalidWinnerCount) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleDraw -> h.svc.Draw -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, result)
}
