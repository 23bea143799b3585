package handlers

import (
	"net/http"

	"studio-ops-backend/internal/database/models"
	"studio-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EventHandler handles HTTP requests for scheduled events
type EventHandler struct {
	events service.EventStoreInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(events service.EventStoreInterface) *EventHandler {
	return &EventHandler{
		events: events,
	}
}

// ListEvents handles GET /events
// @Summary List scheduled events
// @Description Get events ordered by date, optionally filtered by pipeline stage
// @Tags events
// @Produce json
// @Param stage query string false "Pipeline stage" Enums(pre-production, production, post-production, completed)
// @Success 200 {array} models.ScheduledEvent "Successfully retrieved events"
// @Failure 400 {object} ErrorResponse "Invalid stage"
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	stage := c.Query("stage")
	if stage == "" {
		c.JSON(http.StatusOK, h.events.List())
		return
	}

	events, err := h.events.ListByStage(c.Request.Context(), models.Stage(stage))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetEvent handles GET /events/:id
// @Summary Get a scheduled event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.ScheduledEvent "Successfully retrieved event"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// CreateEvent handles POST /events
// @Summary Schedule an event
// @Description Create an event in pre-production
// @Tags events
// @Accept json
// @Produce json
// @Param event body service.CreateEventRequest true "Event data"
// @Success 201 {object} models.ScheduledEvent "Successfully created event"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.events.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// UpdateEvent handles PUT /events/:id
// @Summary Edit booking details
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body service.UpdateEventRequest true "Event data"
// @Success 200 {object} models.ScheduledEvent "Successfully updated event"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 409 {object} ErrorResponse "Stale version, completed event or crew unavailable on the new date"
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var req service.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.events.UpdateDetails(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}
