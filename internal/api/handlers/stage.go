package handlers

import (
	"context"
	"net/http"

	"studio-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StageHandler handles HTTP requests for pipeline stage transitions
type StageHandler struct {
	stages service.StageServiceInterface
}

// NewStageHandler creates a new stage handler
func NewStageHandler(stages service.StageServiceInterface) *StageHandler {
	return &StageHandler{
		stages: stages,
	}
}

// MoveToProduction handles POST /events/:id/stage/production
// @Summary Move an event to production
// @Description Warnings list roles whose accepted crew is below the required count
// @Tags stages
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param body body VersionRequest true "Event version"
// @Success 200 {object} service.StageResult "Event moved to production"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 409 {object} ErrorResponse "Invalid transition, incomplete crew or stale version"
// @Router /events/{id}/stage/production [post]
func (h *StageHandler) MoveToProduction(c *gin.Context) {
	h.transition(c, h.stages.MoveToProduction)
}

// MoveToPostProduction handles POST /events/:id/stage/post-production
// @Summary Move an event to post-production
// @Tags stages
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param body body VersionRequest true "Event version"
// @Success 200 {object} service.StageResult "Event moved to post-production"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 409 {object} ErrorResponse "Invalid transition or stale version"
// @Router /events/{id}/stage/post-production [post]
func (h *StageHandler) MoveToPostProduction(c *gin.Context) {
	h.transition(c, h.stages.MoveToPostProduction)
}

// CompleteEvent handles POST /events/:id/stage/complete
// @Summary Complete an event
// @Description Every deliverable must be completed first
// @Tags stages
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param body body VersionRequest true "Event version"
// @Success 200 {object} service.StageResult "Event completed"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 409 {object} ErrorResponse "Incomplete deliverables, invalid transition or stale version"
// @Router /events/{id}/stage/complete [post]
func (h *StageHandler) CompleteEvent(c *gin.Context) {
	h.transition(c, h.stages.CompleteEvent)
}

// OverrideStage handles POST /events/:id/stage/override
// @Summary Force an event into a stage
// @Description Administrative correction that skips the transition gates
// @Tags stages
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param body body service.OverrideStageRequest true "Target stage and reason"
// @Success 200 {object} service.StageResult "Stage overridden"
// @Failure 400 {object} ErrorResponse "Invalid stage or missing reason"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 409 {object} ErrorResponse "Stale version"
// @Router /events/{id}/stage/override [post]
func (h *StageHandler) OverrideStage(c *gin.Context) {
	var req service.OverrideStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.stages.OverrideStage(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *StageHandler) transition(c *gin.Context, move func(ctx context.Context, eventID string, baseVersion int64) (*service.StageResult, error)) {
	var req VersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := move(c.Request.Context(), c.Param("id"), req.Version)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
