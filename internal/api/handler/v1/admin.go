package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelimeavi/wordhunt-api/internal/api/handler/v1/request"
	"github.com/kelimeavi/wordhunt-api/internal/api/handler/v1/response"
	"github.com/kelimeavi/wordhunt-api/internal/domain"
	"github.com/kelimeavi/wordhunt-api/internal/service"
)

type AdminEventService interface {
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	UpsertEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	GetSubmissions(ctx context.Context, eventID string) ([]domain.Submission, error)
}

type AdminHandler struct {
	svc AdminEventService
}

func NewAdminHandler(svc AdminEventService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

// HandleUpsertEvent godoc
// @Summary      Create or update an event
// @Description  Creates a new event when no id is given, updates the existing one otherwise. Updating an unknown id is a 404, not a create.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        input  body      request.UpsertEventRequest  true  "Event definition"
// @Success      200  {object}  response.UpsertEventResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/event [post]
// @Security     AdminToken
func (h *AdminHandler) HandleUpsertEvent(ctx *gin.Context) {
	var req request.UpsertEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	req.ApplyDefaults()

	event := domain.Event{
		ID:        req.ID,
		Name:      req.Name,
		Words:     req.Words,
		GridSize:  req.GridSize,
		WinnerCap: req.WinnerCap,
		StartAt:   req.StartAt,
		EndAt:     req.EndAt,
		IsActive:  *req.IsActive,
	}

	upserted, err := h.svc.UpsertEvent(ctx.Request.Context(), event)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrEventNotFound())
		case errors.Is(err, service.ErrWordExceedsGrid):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleUpsertEvent -> h.svc.UpsertEvent -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.UpsertEventResponse{
		OK: true,
		ID: upserted.ID,
	})
}

// HandleGetEvent godoc
// @Summary      Get the raw event row
// @Tags         admin
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200  {object}  domain.Event
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/event/{eventID} [get]
// @Security     AdminToken
func (h *AdminHandler) HandleGetEvent(ctx *gin.Context) {
	event, err := h.svc.GetEvent(ctx.Request.Context(), ctx.Param("eventID"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrEventNotFound())
			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleGetSubmissions godoc
// @Summary      List an event's submissions
// @Description  Returns every stored submission for the event in insertion order, valid or not.
// @Tags         admin
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200  {array}   domain.Submission
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/event/{eventID}/submissions [get]
// @Security     AdminToken
func (h *AdminHandler) HandleGetSubmissions(ctx *gin.Context) {
	subs, err := h.svc.GetSubmissions(ctx.Request.Context(), ctx.Param("eventID"))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetSubmissions -> h.svc.GetSubmissions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, subs)
}
