package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventpass-app/eventpass-api/internal/api/handler/v1/request"
	"github.com/eventpass-app/eventpass-api/internal/api/handler/v1/response"
	"github.com/eventpass-app/eventpass-api/internal/service"
)

type ScanHandler struct {
	svc  ParticipantService
	uSvc UserService
}

func NewScanHandler(svc ParticipantService, uSvc UserService) *ScanHandler {
	return &ScanHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleScan godoc
// @Summary      Check a participant in by QR token
// @Description  Applies the pending-to-entered transition. A repeated scan reports already_entered without rewriting the entry timestamp.
// @Tags         qr
// @Accept       json
// @Produce      json
// @Param        input  body  request.ScanRequest  true  "QR token"
// @Success      200  {object}  response.ScanResult
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /qr/scan [post]
// @Security BearerAuth
func (h *ScanHandler) HandleScan(ctx *gin.Context) {
	if _, respErr := getUserFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ScanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, alreadyEntered, err := h.svc.CheckIn(ctx.Request.Context(), req.QRToken)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participant", "qrToken", req.QRToken))
			return
		}

		err = fmt.Errorf("v1.HandleScan -> h.svc.CheckIn -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	message := "Entry confirmed"
	if alreadyEntered {
		message = "Already entered"
	}

	response.RenderData(ctx, http.StatusOK, response.ScanResult{
		Participant:    participant,
		AlreadyEntered: alreadyEntered,
		Message:        message,
	})
}
