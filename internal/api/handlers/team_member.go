package handlers

import (
	"net/http"

	"studio-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamMemberHandler handles HTTP requests for the team directory
type TeamMemberHandler struct {
	directory service.TeamDirectoryInterface
}

// NewTeamMemberHandler creates a new team member handler
func NewTeamMemberHandler(directory service.TeamDirectoryInterface) *TeamMemberHandler {
	return &TeamMemberHandler{
		directory: directory,
	}
}

// ListTeamMembers handles GET /team-members
// @Summary List team members
// @Description Get the whole roster in directory order
// @Tags team-members
// @Produce json
// @Success 200 {array} models.TeamMember "Successfully retrieved team members"
// @Router /team-members [get]
func (h *TeamMemberHandler) ListTeamMembers(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.List())
}

// GetTeamMember handles GET /team-members/:id
// @Summary Get a team member
// @Tags team-members
// @Produce json
// @Param id path string true "Team member ID"
// @Success 200 {object} models.TeamMember "Successfully retrieved team member"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Router /team-members/{id} [get]
func (h *TeamMemberHandler) GetTeamMember(c *gin.Context) {
	member, err := h.directory.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// CreateTeamMember handles POST /team-members
// @Summary Create a team member
// @Description Add a member to the directory. An id is generated when none is given.
// @Tags team-members
// @Accept json
// @Produce json
// @Param member body service.UpsertTeamMemberRequest true "Team member data"
// @Success 201 {object} models.TeamMember "Successfully created team member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /team-members [post]
func (h *TeamMemberHandler) CreateTeamMember(c *gin.Context) {
	var req service.UpsertTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.directory.Upsert(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// UpdateTeamMember handles PUT /team-members/:id
// @Summary Replace a team member
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path string true "Team member ID"
// @Param member body service.UpsertTeamMemberRequest true "Team member data"
// @Success 200 {object} models.TeamMember "Successfully updated team member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Role change for a booked team member"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /team-members/{id} [put]
func (h *TeamMemberHandler) UpdateTeamMember(c *gin.Context) {
	var req service.UpsertTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	req.ID = c.Param("id")

	member, err := h.directory.Upsert(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteTeamMember handles DELETE /team-members/:id
// @Summary Remove a team member
// @Description Members holding an active assignment cannot be removed
// @Tags team-members
// @Param id path string true "Team member ID"
// @Success 204 "Successfully removed team member"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Failure 409 {object} ErrorResponse "Team member has active assignments"
// @Router /team-members/{id} [delete]
func (h *TeamMemberHandler) DeleteTeamMember(c *gin.Context) {
	if err := h.directory.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetAvailability handles PUT /team-members/:id/availability
// @Summary Set availability on a date
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path string true "Team member ID"
// @Param availability body service.SetAvailabilityRequest true "Date and status"
// @Success 200 {object} models.TeamMember "Successfully updated availability"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Router /team-members/{id}/availability [put]
func (h *TeamMemberHandler) SetAvailability(c *gin.Context) {
	var req service.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.directory.SetAvailability(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}
