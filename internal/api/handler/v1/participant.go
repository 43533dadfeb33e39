package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventpass-app/eventpass-api/internal/api/handler/v1/request"
	"github.com/eventpass-app/eventpass-api/internal/api/handler/v1/response"
	"github.com/eventpass-app/eventpass-api/internal/domain"
	"github.com/eventpass-app/eventpass-api/internal/service"
)

type ParticipantService interface {
	Register(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	ListByEvent(ctx context.Context, eventID uint) ([]domain.Participant, error)
	GetByEntryCode(ctx context.Context, code string) (domain.Participant, error)
	CheckIn(ctx context.Context, qrToken string) (domain.Participant, bool, error)
	Delete(ctx context.Context, id uint) error
}

type ParticipantHandler struct {
	svc  ParticipantService
	uSvc UserService
}

func NewParticipantHandler(svc ParticipantService, uSvc UserService) *ParticipantHandler {
	return &ParticipantHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListParticipants godoc
// @Summary      List participants for an event
// @Description  Returns the event's participants, newest first.
// @Tags         participants
// @Produce      json
// @Param        event_id  query     int  true  "Event ID"
// @Success      200  {array}   domain.Participant
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/participants [get]
// @Security BearerAuth
func (h *ParticipantHandler) HandleListParticipants(ctx *gin.Context) {
	if _, respErr := getUserFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, err := strconv.ParseUint(ctx.Query("event_id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event_id: %w", err)))
		return
	}

	participants, err := h.svc.ListByEvent(ctx.Request.Context(), uint(eventID))
	if err != nil {
		err = fmt.Errorf("v1.HandleListParticipants -> h.svc.ListByEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, participants)
}

// HandleRegisterParticipant godoc
// @Summary      Register a participant
// @Description  Creates a participant with a formatted entry code and a derived QR token.
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        input  body      request.RegisterParticipantRequest  true  "Participant details"
// @Success      201  {object}  domain.Participant
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/participants [post]
// @Security BearerAuth
func (h *ParticipantHandler) HandleRegisterParticipant(ctx *gin.Context) {
	if _, respErr := getUserFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.RegisterParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Register(ctx.Request.Context(), domain.Participant{
		EventID:   req.EventID,
		Name:      req.Name,
		Phone:     req.Phone,
		EntryCode: req.EntryCode,
	})
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", req.EventID))
			return
		}
		if errors.Is(err, service.ErrEntryCodeTaken) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrEntryCodeTaken))
			return
		}

		err = fmt.Errorf("v1.HandleRegisterParticipant -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderData(ctx, http.StatusCreated, created)
}

// HandleDeleteParticipant godoc
// @Summary      Delete a participant
// @Tags         participants
// @Produce      json
// @Param        participantID  path  int  true  "Participant ID"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/participants/{participantID} [delete]
// @Security BearerAuth
func (h *ParticipantHandler) HandleDeleteParticipant(ctx *gin.Context) {
	if _, respErr := getUserFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	participantID, err := strconv.ParseUint(ctx.Param("participantID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid participant ID: %w", err)))
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), uint(participantID)); err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", participantID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteParticipant -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, gin.H{"success": true})
}

// HandleGetParticipantByCode godoc
// @Summary      Get a participant by entry code
// @Description  Returns the participant and their parent event, used to render the personal page.
// @Tags         participants
// @Produce      json
// @Param        entryCode  path  string  true  "Entry code (XXX-XXX-XXX-XXX)"
// @Success      200  {object}  domain.Participant
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/{entryCode} [get]
func (h *ParticipantHandler) HandleGetParticipantByCode(ctx *gin.Context) {
	code := ctx.Param("entryCode")

	participant, err := h.svc.GetByEntryCode(ctx.Request.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participant", "entryCode", code))
			return
		}

		err = fmt.Errorf("v1.HandleGetParticipantByCode -> h.svc.GetByEntryCode -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, participant)
}

// HandleVerifyEntryCode godoc
// @Summary      Verify an entry code
// @Description  Validates the code format before any lookup, then resolves the participant.
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        input  body  request.VerifyEntryCodeRequest  true  "Entry code"
// @Success      200  {object}  domain.Participant
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/verify [post]
func (h *ParticipantHandler) HandleVerifyEntryCode(ctx *gin.Context) {
	var req request.VerifyEntryCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, err := h.svc.GetByEntryCode(ctx.Request.Context(), req.EntryCode)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participant", "entryCode", req.EntryCode))
			return
		}

		err = fmt.Errorf("v1.HandleVerifyEntryCode -> h.svc.GetByEntryCode -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderData(ctx, http.StatusOK, participant)
}
