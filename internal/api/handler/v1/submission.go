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

type SubmissionService interface {
	ResolveEvent(ctx context.Context, eventID string) error
	Submit(ctx context.Context, eventID string, sub domain.Submission) (domain.SubmissionResult, error)
}

type SubmissionHandler struct {
	svc SubmissionService
}

func NewSubmissionHandler(svc SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		svc: svc,
	}
}

// HandleSubmit godoc
// @Summary      Submit a completed game
// @Description  Validates the claimed word set server-side and records the submission. The response tells whether the submitter landed inside the winner quota and at which rank.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        eventID  path      string                 true  "Event ID"
// @Param        input    body      request.SubmitRequest  true  "Submission"
// @Success      200  {object}  response.SubmitResponse
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /api/submit/{eventID} [post]
func (h *SubmissionHandler) HandleSubmit(ctx *gin.Context) {
	// The event is resolved first: a bad payload for a missing or inactive
	// event is a 404, not a 400.
	eventID := ctx.Param("eventID")
	if err := h.svc.ResolveEvent(ctx.Request.Context(), eventID); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrEventNotFound())
			return
		}

		err = fmt.Errorf("v1.HandleSubmit -> h.svc.ResolveEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	var req request.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sub := domain.Submission{
		UserID:     req.UserID,
		UserName:   req.UserName,
		Contact:    req.Contact,
		IP:         ctx.ClientIP(),
		UserAgent:  ctx.Request.UserAgent(),
		DurationMs: *req.DurationMs,
		WordsFound: *req.WordsFound,
	}

	result, err := h.svc.Submit(ctx.Request.Context(), eventID, sub)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrEventNotFound())
		case errors.Is(err, service.ErrEventNotStarted):
			response.RenderErr(ctx, response.ErrEventNotStarted())
		case errors.Is(err, service.ErrEventEnded):
			response.RenderErr(ctx, response.ErrEventEnded())
		default:
			err = fmt.Errorf("v1.HandleSubmit -> h.svc.Submit -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.SubmitResponse{
		OK:       true,
		IsWinner: result.IsWinner,
		Rank:     result.Rank,
	})
}
