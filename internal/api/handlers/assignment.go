package handlers

import (
	"net/http"

	"studio-ops-backend/internal/database/models"
	apperrors "studio-ops-backend/internal/errors"
	"studio-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for event crew assignment
type AssignmentHandler struct {
	events      service.EventStoreInterface
	assignments service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(events service.EventStoreInterface, assignments service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{
		events:      events,
		assignments: assignments,
	}
}

// CandidatesResponse lists members who can be assigned to an event in a role
type CandidatesResponse struct {
	Role          models.TeamRole     `json:"role"`
	CanAssignMore bool                `json:"can_assign_more"`
	Candidates    []models.TeamMember `json:"candidates"`
}

// CountsResponse summarizes crew counts for an event
type CountsResponse struct {
	service.AssignmentCounts
	CrewComplete bool `json:"crew_complete"`
}

// ListCandidates handles GET /events/:id/candidates
// @Summary List eligible candidates
// @Description Members with the role who are available on the event date and not yet assigned
// @Tags assignments
// @Produce json
// @Param id path string true "Event ID"
// @Param role query string true "Team role"
// @Success 200 {object} CandidatesResponse "Successfully retrieved candidates"
// @Failure 400 {object} ErrorResponse "Invalid role"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Router /events/{id}/candidates [get]
func (h *AssignmentHandler) ListCandidates(c *gin.Context) {
	role := models.TeamRole(c.Query("role"))
	if !role.IsValid() {
		respondError(c, apperrors.ErrInvalidRole)
		return
	}

	event, err := h.events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CandidatesResponse{
		Role:          role,
		CanAssignMore: h.assignments.CanAssignMore(event, role),
		Candidates:    h.assignments.EligibleCandidates(event, role),
	})
}

// GetCounts handles GET /events/:id/assignments/counts
// @Summary Get crew counts
// @Tags assignments
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} CountsResponse "Successfully computed counts"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Router /events/{id}/assignments/counts [get]
func (h *AssignmentHandler) GetCounts(c *gin.Context) {
	event, err := h.events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	counts := h.assignments.Counts(event)
	c.JSON(http.StatusOK, CountsResponse{
		AssignmentCounts: counts,
		CrewComplete:     counts.CrewComplete(),
	})
}

// Assign handles POST /events/:id/assignments
// @Summary Assign a team member
// @Description Create a pending assignment and notify the member
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param assignment body service.AssignRequest true "Assignment"
// @Success 201 {object} models.ScheduledEvent "Successfully assigned"
// @Failure 400 {object} ErrorResponse "Invalid request or role mismatch"
// @Failure 404 {object} ErrorResponse "Event or team member not found"
// @Failure 409 {object} ErrorResponse "Unavailable, already assigned, quota reached or stale version"
// @Router /events/{id}/assignments [post]
func (h *AssignmentHandler) Assign(c *gin.Context) {
	var req service.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.assignments.Assign(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// UpdateStatus handles PUT /events/:id/assignments/:memberId
// @Summary Accept, decline or revert an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param memberId path string true "Team member ID"
// @Param status body service.UpdateAssignmentStatusRequest true "New status"
// @Success 200 {object} models.ScheduledEvent "Successfully updated assignment"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Event or assignment not found"
// @Failure 409 {object} ErrorResponse "Quota reached or stale version"
// @Router /events/{id}/assignments/{memberId} [put]
func (h *AssignmentHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateAssignmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.assignments.UpdateStatus(c.Request.Context(), c.Param("id"), c.Param("memberId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// Unassign handles DELETE /events/:id/assignments/:memberId
// @Summary Remove an assignment
// @Tags assignments
// @Produce json
// @Param id path string true "Event ID"
// @Param memberId path string true "Team member ID"
// @Param version query int true "Event version"
// @Success 200 {object} models.ScheduledEvent "Successfully removed assignment"
// @Failure 400 {object} ErrorResponse "Missing version"
// @Failure 404 {object} ErrorResponse "Event or assignment not found"
// @Failure 409 {object} ErrorResponse "Stale version"
// @Router /events/{id}/assignments/{memberId} [delete]
func (h *AssignmentHandler) Unassign(c *gin.Context) {
	version, ok := versionQuery(c)
	if !ok {
		return
	}

	event, err := h.assignments.Unassign(c.Request.Context(), c.Param("id"), c.Param("memberId"), version)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}
