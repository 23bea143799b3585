package service

import (
	"context"
	"sync"
	"time"

	"studio-ops-backend/internal/database/models"
	apperrors "studio-ops-backend/internal/errors"
	"studio-ops-backend/internal/feed"
	"studio-ops-backend/internal/logger"
	"studio-ops-backend/internal/monitoring"

	"github.com/go-playground/validator/v10"
)

const notifyTimeout = 30 * time.Second

// AssignRequest represents the request to add a team member to an event's crew
type AssignRequest struct {
	Version      int64           `json:"version" validate:"required,min=1"`
	TeamMemberID string          `json:"team_member_id" validate:"required"`
	Role         models.TeamRole `json:"role" validate:"required"`
}

// UpdateAssignmentStatusRequest represents an accept, decline or revert
type UpdateAssignmentStatusRequest struct {
	Version int64                   `json:"version" validate:"required,min=1"`
	Status  models.AssignmentStatus `json:"status" validate:"required"`
}

// AssignmentCounts summarizes an event's crew by role and status
type AssignmentCounts struct {
	RequiredPhotographers int `json:"required_photographers"`
	RequiredVideographers int `json:"required_videographers"`
	AcceptedPhotographers int `json:"accepted_photographers"`
	PendingPhotographers  int `json:"pending_photographers"`
	AcceptedVideographers int `json:"accepted_videographers"`
	PendingVideographers  int `json:"pending_videographers"`
	Accepted              int `json:"accepted"`
	Pending               int `json:"pending"`
	Declined              int `json:"declined"`
	Total                 int `json:"total"`
}

// CrewComplete reports whether accepted photographers and videographers meet the required counts
func (c AssignmentCounts) CrewComplete() bool {
	return c.AcceptedPhotographers >= c.RequiredPhotographers &&
		c.AcceptedVideographers >= c.RequiredVideographers
}

// AssignmentEngine assigns team members to events under quota and availability rules
type AssignmentEngine struct {
	store     *EventStore
	directory *TeamDirectory
	notifier  Notifier
	validator *validator.Validate

	pending sync.WaitGroup
}

// NewAssignmentEngine creates an assignment engine. A nil notifier disables notifications.
func NewAssignmentEngine(store *EventStore, directory *TeamDirectory, notifier Notifier, validator *validator.Validate) *AssignmentEngine {
	return &AssignmentEngine{
		store:     store,
		directory: directory,
		notifier:  notifier,
		validator: validator,
	}
}

// EligibleCandidates lists members with the role who are free on the event date
// and not yet on its crew, in directory order
func (e *AssignmentEngine) EligibleCandidates(event *models.ScheduledEvent, role models.TeamRole) []models.TeamMember {
	candidates := []models.TeamMember{}
	for _, member := range e.directory.List() {
		if member.Role != role {
			continue
		}
		if !member.Availability.IsAvailableOn(event.Date) {
			continue
		}
		if event.AssignmentIndex(member.ID) >= 0 {
			continue
		}
		candidates = append(candidates, member)
	}
	return candidates
}

// Assign adds a pending assignment and notifies the member in the background
func (e *AssignmentEngine) Assign(ctx context.Context, eventID string, req *AssignRequest) (*models.ScheduledEvent, error) {
	if err := validateRequest(e.validator, req); err != nil {
		return nil, err
	}
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	member, err := e.directory.Get(req.TeamMemberID)
	if err != nil {
		monitoring.RecordAssignmentOperation("assign", err)
		return nil, err
	}

	event, err := e.store.Update(ctx, eventID, req.Version, Command{Name: "assign", Action: feed.ActionAssignment}, func(ev *models.ScheduledEvent) error {
		switch {
		case ev.Stage == models.StageCompleted:
			return apperrors.ErrEventCompleted
		case member.Role != req.Role:
			return apperrors.ErrRoleMismatch
		case !member.Availability.IsAvailableOn(ev.Date):
			return apperrors.ErrUnavailable
		case ev.AssignmentIndex(member.ID) >= 0:
			return apperrors.ErrAlreadyAssigned
		case !e.CanAssignMore(ev, req.Role):
			return apperrors.ErrQuotaReached
		}

		ev.Assignments = append(ev.Assignments, models.EventAssignment{
			EventID:      ev.ID,
			TeamMemberID: member.ID,
			Role:         req.Role,
			Status:       models.AssignmentStatusPending,
			AssignedAt:   e.store.now().UTC(),
		})
		return nil
	})
	monitoring.RecordAssignmentOperation("assign", err)
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id":       eventID,
		"team_member_id": member.ID,
		"role":           req.Role,
	}).Info("Team member assigned")

	e.notify(ctx, *member, *event)
	return event, nil
}

// UpdateStatus accepts, declines or reverts an assignment to pending
func (e *AssignmentEngine) UpdateStatus(ctx context.Context, eventID, memberID string, req *UpdateAssignmentStatusRequest) (*models.ScheduledEvent, error) {
	if err := validateRequest(e.validator, req); err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	event, err := e.store.Update(ctx, eventID, req.Version, Command{Name: "update_assignment_status", Action: feed.ActionAssignment}, func(ev *models.ScheduledEvent) error {
		if ev.Stage == models.StageCompleted {
			return apperrors.ErrEventCompleted
		}
		i := ev.AssignmentIndex(memberID)
		if i < 0 {
			return apperrors.ErrAssignmentNotFound
		}

		current := ev.Assignments[i].Status
		if current == req.Status {
			return errUnchanged
		}
		if req.Status == models.AssignmentStatusAccepted && !e.CanAssignMore(ev, e.roleOf(ev.Assignments[i])) {
			return apperrors.ErrQuotaReached
		}

		ev.Assignments[i].Status = req.Status
		return nil
	})
	monitoring.RecordAssignmentOperation("update_status", err)
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id":       eventID,
		"team_member_id": memberID,
		"status":         req.Status,
	}).Info("Assignment status updated")
	return event, nil
}

// Unassign removes the member from the event's crew
func (e *AssignmentEngine) Unassign(ctx context.Context, eventID, memberID string, baseVersion int64) (*models.ScheduledEvent, error) {
	event, err := e.store.Update(ctx, eventID, baseVersion, Command{Name: "unassign", Action: feed.ActionAssignment}, func(ev *models.ScheduledEvent) error {
		if ev.Stage == models.StageCompleted {
			return apperrors.ErrEventCompleted
		}
		i := ev.AssignmentIndex(memberID)
		if i < 0 {
			return apperrors.ErrAssignmentNotFound
		}
		ev.Assignments = append(ev.Assignments[:i], ev.Assignments[i+1:]...)
		return nil
	})
	monitoring.RecordAssignmentOperation("unassign", err)
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id":       eventID,
		"team_member_id": memberID,
	}).Info("Team member unassigned")
	return event, nil
}

// Counts tallies the crew. Roles come from the directory; members no longer
// in it fall back to the role recorded on the assignment.
func (e *AssignmentEngine) Counts(event *models.ScheduledEvent) AssignmentCounts {
	counts := AssignmentCounts{
		RequiredPhotographers: event.PhotographersCount,
		RequiredVideographers: event.VideographersCount,
		Total:                 len(event.Assignments),
	}

	for _, a := range event.Assignments {
		role := e.roleOf(a)
		switch a.Status {
		case models.AssignmentStatusAccepted:
			counts.Accepted++
			switch role {
			case models.TeamRolePhotographer:
				counts.AcceptedPhotographers++
			case models.TeamRoleVideographer:
				counts.AcceptedVideographers++
			}
		case models.AssignmentStatusPending:
			counts.Pending++
			switch role {
			case models.TeamRolePhotographer:
				counts.PendingPhotographers++
			case models.TeamRoleVideographer:
				counts.PendingVideographers++
			}
		case models.AssignmentStatusDeclined:
			counts.Declined++
		}
	}
	return counts
}

// CanAssignMore reports whether the accepted crew for role is below the required count.
// Roles without a quota can always take more.
func (e *AssignmentEngine) CanAssignMore(event *models.ScheduledEvent, role models.TeamRole) bool {
	counts := e.Counts(event)
	switch role {
	case models.TeamRolePhotographer:
		return counts.AcceptedPhotographers < event.PhotographersCount
	case models.TeamRoleVideographer:
		return counts.AcceptedVideographers < event.VideographersCount
	}
	return true
}

// Wait blocks until in-flight notifications finish
func (e *AssignmentEngine) Wait() {
	e.pending.Wait()
}

func (e *AssignmentEngine) roleOf(a models.EventAssignment) models.TeamRole {
	if member, err := e.directory.Get(a.TeamMemberID); err == nil {
		return member.Role
	}
	return a.Role
}

func (e *AssignmentEngine) notify(ctx context.Context, member models.TeamMember, event models.ScheduledEvent) {
	if e.notifier == nil {
		return
	}

	e.pending.Add(1)
	go func() {
		defer e.pending.Done()

		notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		if err := e.notifier.NotifyAssignment(notifyCtx, member, event); err != nil {
			monitoring.CaptureError(notifyCtx, err, map[string]string{
				"event_id":       event.ID,
				"team_member_id": member.ID,
			})
			logger.WithContext(notifyCtx).WithError(err).WithFields(map[string]interface{}{
				"event_id":       event.ID,
				"team_member_id": member.ID,
			}).Warn("Failed to send assignment notification")
		}
	}()
}
