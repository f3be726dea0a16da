package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/app/services"
	"github.com/takeuforward/portal/internal/middleware"
	"github.com/takeuforward/portal/internal/pkg/helpers"
	"github.com/takeuforward/portal/internal/pkg/validation"
)

// EventController handles events
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// ListEvents lists events by date
// @Summary List events
// @Tags events
// @Produce json
// @Param tags query string false "Comma separated tags, any match"
// @Param upcoming query bool false "Only events from now on"
// @Success 200 {array} models.Event
// @Failure 400 {object} dto.ErrorDetail "Malformed query parameter"
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	upcoming, err := helpers.QueryBool(ctx, "upcoming")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filter := dto.EventFilter{
		Tags:     helpers.QueryList(ctx, "tags"),
		Upcoming: upcoming,
	}

	events, err := c.eventService.ListEvents(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}

// CreateEvent announces an event created by the caller
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event"
// @Success 201 {object} models.Event
// @Failure 400 {object} dto.ErrorDetail "Invalid request data"
// @Failure 401 {object} dto.ErrorDetail "Not authenticated"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := validation.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	event, err := c.eventService.CreateEvent(ctx.Request.Context(), middleware.CurrentUserID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, event)
}
