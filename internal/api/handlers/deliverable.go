package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"studio-ops-backend/internal/database/models"
	"studio-ops-backend/internal/service"
	"studio-ops-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for the form fields around the file part
const multipartOverhead = 1 << 20

// DeliverableHandler handles HTTP requests for event deliverables
type DeliverableHandler struct {
	deliverables   service.DeliverableServiceInterface
	maxUploadBytes int64
}

// NewDeliverableHandler creates a new deliverable handler
func NewDeliverableHandler(deliverables service.DeliverableServiceInterface, maxUploadBytes int64) *DeliverableHandler {
	return &DeliverableHandler{
		deliverables:   deliverables,
		maxUploadBytes: maxUploadBytes,
	}
}

// AddDeliverable handles POST /events/:id/deliverables
// @Summary Add a deliverable
// @Description Create a pending deliverable on a post-production event
// @Tags deliverables
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param deliverable body service.AddDeliverableRequest true "Deliverable"
// @Success 201 {object} models.ScheduledEvent "Successfully added deliverable"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 409 {object} ErrorResponse "Event not in post-production or stale version"
// @Router /events/{id}/deliverables [post]
func (h *DeliverableHandler) AddDeliverable(c *gin.Context) {
	var req service.AddDeliverableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.deliverables.Add(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// UploadDeliverable handles POST /events/:id/deliverables/upload
// @Summary Upload a deliverable file
// @Description Store the file and record it as a new pending deliverable
// @Tags deliverables
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Event ID"
// @Param file formData file true "Deliverable file"
// @Param type formData string true "Deliverable type" Enums(photos, videos, album)
// @Param version formData int true "Event version"
// @Success 201 {object} models.ScheduledEvent "Successfully uploaded deliverable"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 409 {object} ErrorResponse "Event not in post-production or stale version"
// @Failure 413 {object} ErrorResponse "File too large"
// @Router /events/{id}/deliverables/upload [post]
func (h *DeliverableHandler) UploadDeliverable(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)
	}

	header, err := c.FormFile("file")
	if err != nil {
		if isBodyTooLarge(err) {
			respondError(c, storage.ErrFileTooLarge)
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required"})
		return
	}
	if h.maxUploadBytes > 0 && header.Size > h.maxUploadBytes {
		respondError(c, storage.ErrFileTooLarge)
		return
	}

	version, err := strconv.ParseInt(c.PostForm("version"), 10, 64)
	if err != nil || version < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "version is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	event, err := h.deliverables.Upload(c.Request.Context(), c.Param("id"), &service.UploadDeliverableRequest{
		Version:  version,
		Type:     models.DeliverableType(c.PostForm("type")),
		FileName: header.Filename,
		File:     file,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// AssignDeliverable handles PUT /events/:id/deliverables/:deliverableId/assign
// @Summary Assign a deliverable
// @Tags deliverables
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param deliverableId path string true "Deliverable ID"
// @Param assignment body service.AssignDeliverableRequest true "Assignee and delivery date"
// @Success 200 {object} models.ScheduledEvent "Successfully assigned deliverable"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Event, deliverable or team member not found"
// @Failure 409 {object} ErrorResponse "Invalid transition or stale version"
// @Router /events/{id}/deliverables/{deliverableId}/assign [put]
func (h *DeliverableHandler) AssignDeliverable(c *gin.Context) {
	var req service.AssignDeliverableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.deliverables.Assign(c.Request.Context(), c.Param("id"), c.Param("deliverableId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// AdvanceDeliverable handles PUT /events/:id/deliverables/:deliverableId/advance
// @Summary Change a deliverable's status
// @Tags deliverables
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param deliverableId path string true "Deliverable ID"
// @Param status body service.AdvanceDeliverableRequest true "Target status"
// @Success 200 {object} models.ScheduledEvent "Successfully changed status"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Event or deliverable not found"
// @Failure 409 {object} ErrorResponse "Invalid transition or stale version"
// @Router /events/{id}/deliverables/{deliverableId}/advance [put]
func (h *DeliverableHandler) AdvanceDeliverable(c *gin.Context) {
	var req service.AdvanceDeliverableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.deliverables.Advance(c.Request.Context(), c.Param("id"), c.Param("deliverableId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// RequestRevision handles PUT /events/:id/deliverables/:deliverableId/revision
// @Summary Request a revision
// @Tags deliverables
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param deliverableId path string true "Deliverable ID"
// @Param revision body service.RevisionRequest true "Revision notes"
// @Success 200 {object} models.ScheduledEvent "Revision requested"
// @Failure 400 {object} ErrorResponse "Missing notes"
// @Failure 404 {object} ErrorResponse "Event or deliverable not found"
// @Failure 409 {object} ErrorResponse "Deliverable not delivered or stale version"
// @Router /events/{id}/deliverables/{deliverableId}/revision [put]
func (h *DeliverableHandler) RequestRevision(c *gin.Context) {
	var req service.RevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.deliverables.RequestRevision(c.Request.Context(), c.Param("id"), c.Param("deliverableId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// CompleteDeliverable handles PUT /events/:id/deliverables/:deliverableId/complete
// @Summary Mark a delivered deliverable completed
// @Tags deliverables
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param deliverableId path string true "Deliverable ID"
// @Param body body VersionRequest true "Event version"
// @Success 200 {object} models.ScheduledEvent "Deliverable completed"
// @Failure 404 {object} ErrorResponse "Event or deliverable not found"
// @Failure 409 {object} ErrorResponse "Deliverable not delivered or stale version"
// @Router /events/{id}/deliverables/{deliverableId}/complete [put]
func (h *DeliverableHandler) CompleteDeliverable(c *gin.Context) {
	var req VersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.deliverables.Complete(c.Request.Context(), c.Param("id"), c.Param("deliverableId"), req.Version)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// RemoveDeliverable handles DELETE /events/:id/deliverables/:deliverableId
// @Summary Remove a deliverable
// @Tags deliverables
// @Produce json
// @Param id path string true "Event ID"
// @Param deliverableId path string true "Deliverable ID"
// @Param version query int true "Event version"
// @Success 200 {object} models.ScheduledEvent "Deliverable removed"
// @Failure 400 {object} ErrorResponse "Missing version"
// @Failure 404 {object} ErrorResponse "Event or deliverable not found"
// @Failure 409 {object} ErrorResponse "Stale version"
// @Router /events/{id}/deliverables/{deliverableId} [delete]
func (h *DeliverableHandler) RemoveDeliverable(c *gin.Context) {
	version, ok := versionQuery(c)
	if !ok {
		return
	}

	event, err := h.deliverables.Remove(c.Request.Context(), c.Param("id"), c.Param("deliverableId"), version)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
