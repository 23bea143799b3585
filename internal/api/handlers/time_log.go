package handlers

import (
	"net/http"

	"studio-ops-backend/internal/database/models"
	"studio-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TimeLogHandler handles HTTP requests for event work hours
type TimeLogHandler struct {
	events service.EventStoreInterface
	ledger service.TimeLedgerInterface
}

// NewTimeLogHandler creates a new time log handler
func NewTimeLogHandler(events service.EventStoreInterface, ledger service.TimeLedgerInterface) *TimeLogHandler {
	return &TimeLogHandler{
		events: events,
		ledger: ledger,
	}
}

// TimeSummaryResponse reports the hours logged on an event
type TimeSummaryResponse struct {
	EventID    string                `json:"event_id"`
	TotalHours decimal.Decimal       `json:"total_hours" swaggertype:"number"`
	ByMember   []service.MemberHours `json:"by_member"`
	Entries    []models.TimeLogEntry `json:"entries"`
}

// LogTime handles POST /events/:id/time-logs
// @Summary Log hours for a team member
// @Description Hours add to any entry the member already has on the same date
// @Tags time
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param entry body service.LogTimeRequest true "Hours to log"
// @Success 200 {object} models.ScheduledEvent "Hours logged"
// @Failure 400 {object} ErrorResponse "Invalid hours or date"
// @Failure 404 {object} ErrorResponse "Event or team member not found"
// @Failure 409 {object} ErrorResponse "Stale version"
// @Router /events/{id}/time-logs [post]
func (h *TimeLogHandler) LogTime(c *gin.Context) {
	var req service.LogTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.ledger.LogTime(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// LogCrewTime handles POST /events/:id/time-logs/crew
// @Summary Log the same hours for every accepted crew member
// @Tags time
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param entry body service.LogCrewTimeRequest true "Hours to log"
// @Success 200 {object} models.ScheduledEvent "Hours logged"
// @Failure 400 {object} ErrorResponse "Invalid hours or no accepted crew"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 409 {object} ErrorResponse "Stale version"
// @Router /events/{id}/time-logs/crew [post]
func (h *TimeLogHandler) LogCrewTime(c *gin.Context) {
	var req service.LogCrewTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.ledger.LogTimeForAcceptedAssignments(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// GetSummary handles GET /events/:id/time-logs/summary
// @Summary Get logged hours
// @Tags time
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} TimeSummaryResponse "Successfully computed hours"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Router /events/{id}/time-logs/summary [get]
func (h *TimeLogHandler) GetSummary(c *gin.Context) {
	event, err := h.events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	entries := event.TimeTracking
	if entries == nil {
		entries = []models.TimeLogEntry{}
	}

	c.JSON(http.StatusOK, TimeSummaryResponse{
		EventID:    event.ID,
		TotalHours: h.ledger.TotalHours(event),
		ByMember:   h.ledger.HoursByMember(event),
		Entries:    entries,
	})
}
