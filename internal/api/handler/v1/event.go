package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelimeavi/wordhunt-api/internal/api/handler/v1/response"
	"github.com/kelimeavi/wordhunt-api/internal/domain"
	"github.com/kelimeavi/wordhunt-api/internal/game"
	"github.com/kelimeavi/wordhunt-api/internal/service"
)

type EventService interface {
	GetConfig(ctx context.Context, id string) (domain.Event, error)
	NewGrid(ctx context.Context, id string) (*game.Grid, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleGetConfig godoc
// @Summary      Get public event config
// @Description  Returns the playable configuration of an active event. Inactive and unknown events both read as not found.
// @Tags         events
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200  {object}  response.ConfigResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /api/config/{eventID} [get]
func (h *EventHandler) HandleGetConfig(ctx *gin.Context) {
	event, err := h.svc.GetConfig(ctx.Request.Context(), ctx.Param("eventID"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrEventNotFound())
			return
		}

		err = fmt.Errorf("v1.HandleGetConfig -> h.svc.GetConfig -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ConfigResponse{
		ID:        event.ID,
		Name:      event.Name,
		Words:     event.Words,
		GridSize:  event.GridSize,
		WinnerCap: event.WinnerCap,
		StartAt:   event.StartAt,
		EndAt:     event.EndAt,
	})
}

// HandleGetGrid godoc
// @Summary      Get a fresh letter grid
// @Description  Generates a new grid with the event's words embedded. Every call returns a different layout; grids are not stored.
// @Tags         events
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200  {object}  response.GridResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /api/grid/{eventID} [get]
func (h *EventHandler) HandleGetGrid(ctx *gin.Context) {
	grid, err := h.svc.NewGrid(ctx.Request.Context(), ctx.Param("eventID"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrEventNotFound())
			return
		}

		err = fmt.Errorf("v1.HandleGetGrid -> h.svc.NewGrid -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.GridResponse{Grid: grid.Letters()})
}
