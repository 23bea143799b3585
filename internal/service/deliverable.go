package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"studio-ops-backend/internal/database/models"
	apperrors "studio-ops-backend/internal/errors"
	"studio-ops-backend/internal/feed"
	"studio-ops-backend/internal/logger"
	"studio-ops-backend/internal/monitoring"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// deliverableEdges lists the allowed status changes of a deliverable
var deliverableEdges = map[models.DeliverableStatus][]models.DeliverableStatus{
	models.DeliverableStatusPending:           {models.DeliverableStatusInProgress},
	models.DeliverableStatusInProgress:        {models.DeliverableStatusDelivered},
	models.DeliverableStatusDelivered:         {models.DeliverableStatusCompleted, models.DeliverableStatusRevisionRequested},
	models.DeliverableStatusRevisionRequested: {models.DeliverableStatusInProgress},
}

// CanAdvance reports whether a deliverable may move from one status to another
func CanAdvance(from, to models.DeliverableStatus) bool {
	for _, next := range deliverableEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AdvanceDeliverable moves d along an allowed edge. Completing stamps the completion date.
func AdvanceDeliverable(d models.Deliverable, to models.DeliverableStatus, now time.Time) (models.Deliverable, error) {
	if !to.IsValid() {
		return d, apperrors.ErrInvalidStatus
	}
	if !CanAdvance(d.Status, to) {
		return d, apperrors.NewInvalidTransitionError(string(d.Status), string(to))
	}
	d.Status = to
	if to == models.DeliverableStatusCompleted {
		completed := now
		d.CompletedDate = &completed
	} else {
		d.CompletedDate = nil
	}
	return d, nil
}

// AssignDeliverable sets the assignee and delivery date and puts the work in progress
func AssignDeliverable(d models.Deliverable, memberID, deliveryDate string) (models.Deliverable, error) {
	switch d.Status {
	case models.DeliverableStatusPending, models.DeliverableStatusInProgress, models.DeliverableStatusRevisionRequested:
	default:
		return d, apperrors.NewInvalidTransitionError(string(d.Status), string(models.DeliverableStatusInProgress))
	}
	assignee := memberID
	d.AssignedTo = &assignee
	d.DeliveryDate = deliveryDate
	d.Status = models.DeliverableStatusInProgress
	d.CompletedDate = nil
	return d, nil
}

// RequestDeliverableRevision sends a delivered deliverable back with notes
func RequestDeliverableRevision(d models.Deliverable, notes string) (models.Deliverable, error) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return d, apperrors.NewValidationError("notes", "revision notes are required")
	}
	if d.Status != models.DeliverableStatusDelivered {
		return d, apperrors.NewInvalidTransitionError(string(d.Status), string(models.DeliverableStatusRevisionRequested))
	}
	d.Status = models.DeliverableStatusRevisionRequested
	d.RevisionNotes = notes
	return d, nil
}

// CompleteDeliverable signs off a delivered deliverable
func CompleteDeliverable(d models.Deliverable, now time.Time) (models.Deliverable, error) {
	if d.Status != models.DeliverableStatusDelivered {
		return d, apperrors.NewInvalidTransitionError(string(d.Status), string(models.DeliverableStatusCompleted))
	}
	return AdvanceDeliverable(d, models.DeliverableStatusCompleted, now)
}

// AddDeliverableRequest represents a manually added deliverable
type AddDeliverableRequest struct {
	Version      int64                  `json:"version" validate:"required,min=1"`
	Type         models.DeliverableType `json:"type" validate:"required"`
	DeliveryDate string                 `json:"delivery_date" validate:"omitempty,datetime=2006-01-02"`
}

// UploadDeliverableRequest carries an uploaded file that becomes a new deliverable
type UploadDeliverableRequest struct {
	Version  int64                  `validate:"required,min=1"`
	Type     models.DeliverableType `validate:"required"`
	FileName string                 `validate:"required,max=255"`
	File     io.Reader              `validate:"-"`
}

// AssignDeliverableRequest represents the request to hand a deliverable to a team member
type AssignDeliverableRequest struct {
	Version      int64  `json:"version" validate:"required,min=1"`
	TeamMemberID string `json:"team_member_id" validate:"required"`
	DeliveryDate string `json:"delivery_date" validate:"omitempty,datetime=2006-01-02"`
}

// AdvanceDeliverableRequest represents a deliverable status change
type AdvanceDeliverableRequest struct {
	Version int64                    `json:"version" validate:"required,min=1"`
	Status  models.DeliverableStatus `json:"status" validate:"required"`
}

// RevisionRequest represents a client revision request
type RevisionRequest struct {
	Version int64  `json:"version" validate:"required,min=1"`
	Notes   string `json:"notes" validate:"required,max=2000"`
}

// DeliverableTracker runs deliverable commands on post-production events
type DeliverableTracker struct {
	store     *EventStore
	directory *TeamDirectory
	uploader  FileUploader
	validator *validator.Validate
}

// NewDeliverableTracker creates a deliverable tracker
func NewDeliverableTracker(store *EventStore, directory *TeamDirectory, uploader FileUploader, validator *validator.Validate) *DeliverableTracker {
	return &DeliverableTracker{
		store:     store,
		directory: directory,
		uploader:  uploader,
		validator: validator,
	}
}

// Add appends a pending deliverable without a file
func (t *DeliverableTracker) Add(ctx context.Context, eventID string, req *AddDeliverableRequest) (*models.ScheduledEvent, error) {
	if err := validateRequest(t.validator, req); err != nil {
		return nil, err
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", fmt.Sprintf("unknown deliverable type %q", req.Type))
	}

	return t.store.Update(ctx, eventID, req.Version, Command{Name: "add_deliverable", Action: feed.ActionDeliverable}, func(ev *models.ScheduledEvent) error {
		if ev.Stage != models.StagePostProduction {
			return apperrors.ErrEventNotInPostProduction
		}
		ev.Deliverables = append(ev.Deliverables, t.newDeliverable(req.Type, req.DeliveryDate, nil))
		return nil
	})
}

// Upload stores the file and appends a pending deliverable that references it.
// The stored file is removed again if the event cannot be updated.
func (t *DeliverableTracker) Upload(ctx context.Context, eventID string, req *UploadDeliverableRequest) (*models.ScheduledEvent, error) {
	if err := validateRequest(t.validator, req); err != nil {
		return nil, err
	}
	if req.File == nil {
		return nil, apperrors.NewValidationError("file", "file is required")
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", fmt.Sprintf("unknown deliverable type %q", req.Type))
	}

	// fail before storing anything when the write is bound to be rejected
	event, err := t.store.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Version != req.Version {
		return nil, apperrors.ErrStaleUpdate
	}
	if event.Stage != models.StagePostProduction {
		return nil, apperrors.ErrEventNotInPostProduction
	}

	object, err := t.uploader.Upload(ctx, req.FileName, req.File)
	if err != nil {
		monitoring.CaptureError(ctx, err, map[string]string{"event_id": eventID})
		return nil, fmt.Errorf("failed to store deliverable file: %w", err)
	}

	file := &models.FileReference{
		URL:         object.URL,
		Name:        object.Name,
		Size:        object.Size,
		ContentType: object.ContentType,
	}
	updated, err := t.store.Update(ctx, eventID, req.Version, Command{Name: "upload_deliverable", Action: feed.ActionDeliverable}, func(ev *models.ScheduledEvent) error {
		if ev.Stage != models.StagePostProduction {
			return apperrors.ErrEventNotInPostProduction
		}
		ev.Deliverables = append(ev.Deliverables, t.newDeliverable(req.Type, "", file))
		return nil
	})
	if err != nil {
		if delErr := t.uploader.Delete(ctx, object.Key); delErr != nil {
			logger.WithContext(ctx).WithError(delErr).WithField("key", object.Key).Warn("Failed to remove orphaned upload")
		}
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id": eventID,
		"file":     object.Name,
		"size":     object.Size,
	}).Info("Deliverable uploaded")
	return updated, nil
}

// Assign hands the deliverable to a team member and puts it in progress
func (t *DeliverableTracker) Assign(ctx context.Context, eventID, deliverableID string, req *AssignDeliverableRequest) (*models.ScheduledEvent, error) {
	if err := validateRequest(t.validator, req); err != nil {
		return nil, err
	}
	if _, err := t.directory.Get(req.TeamMemberID); err != nil {
		return nil, err
	}

	return t.apply(ctx, eventID, deliverableID, req.Version, "assign_deliverable", func(d models.Deliverable) (models.Deliverable, error) {
		return AssignDeliverable(d, req.TeamMemberID, req.DeliveryDate)
	})
}

// Advance moves the deliverable to the requested status
func (t *DeliverableTracker) Advance(ctx context.Context, eventID, deliverableID string, req *AdvanceDeliverableRequest) (*models.ScheduledEvent, error) {
	if err := validateRequest(t.validator, req); err != nil {
		return nil, err
	}

	return t.apply(ctx, eventID, deliverableID, req.Version, "advance_deliverable", func(d models.Deliverable) (models.Deliverable, error) {
		return AdvanceDeliverable(d, req.Status, t.store.now().UTC())
	})
}

// RequestRevision sends a delivered deliverable back for rework
func (t *DeliverableTracker) RequestRevision(ctx context.Context, eventID, deliverableID string, req *RevisionRequest) (*models.ScheduledEvent, error) {
	if err := validateRequest(t.validator, req); err != nil {
		return nil, err
	}

	return t.apply(ctx, eventID, deliverableID, req.Version, "request_revision", func(d models.Deliverable) (models.Deliverable, error) {
		return RequestDeliverableRevision(d, req.Notes)
	})
}

// Complete signs off a delivered deliverable
func (t *DeliverableTracker) Complete(ctx context.Context, eventID, deliverableID string, baseVersion int64) (*models.ScheduledEvent, error) {
	return t.apply(ctx, eventID, deliverableID, baseVersion, "complete_deliverable", func(d models.Deliverable) (models.Deliverable, error) {
		return CompleteDeliverable(d, t.store.now().UTC())
	})
}

// Remove drops the deliverable from the event
func (t *DeliverableTracker) Remove(ctx context.Context, eventID, deliverableID string, baseVersion int64) (*models.ScheduledEvent, error) {
	return t.store.Update(ctx, eventID, baseVersion, Command{Name: "remove_deliverable", Action: feed.ActionDeliverable}, func(ev *models.ScheduledEvent) error {
		if ev.Stage != models.StagePostProduction {
			return apperrors.ErrEventNotInPostProduction
		}
		i := ev.DeliverableIndex(deliverableID)
		if i < 0 {
			return apperrors.ErrDeliverableNotFound
		}
		ev.Deliverables = append(ev.Deliverables[:i], ev.Deliverables[i+1:]...)
		return nil
	})
}

func (t *DeliverableTracker) apply(ctx context.Context, eventID, deliverableID string, baseVersion int64, name string, change func(models.Deliverable) (models.Deliverable, error)) (*models.ScheduledEvent, error) {
	var from, to models.DeliverableStatus
	event, err := t.store.Update(ctx, eventID, baseVersion, Command{Name: name, Action: feed.ActionDeliverable}, func(ev *models.ScheduledEvent) error {
		if ev.Stage != models.StagePostProduction {
			return apperrors.ErrEventNotInPostProduction
		}
		i := ev.DeliverableIndex(deliverableID)
		if i < 0 {
			return apperrors.ErrDeliverableNotFound
		}

		updated, err := change(ev.Deliverables[i])
		if err != nil {
			return err
		}
		from, to = ev.Deliverables[i].Status, updated.Status
		ev.Deliverables[i] = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	if from != to {
		monitoring.RecordDeliverableTransition(string(from), string(to))
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id":       eventID,
		"deliverable_id": deliverableID,
		"from":           from,
		"to":             to,
	}).Info("Deliverable updated")
	return event, nil
}

func (t *DeliverableTracker) newDeliverable(kind models.DeliverableType, deliveryDate string, file *models.FileReference) models.Deliverable {
	return models.Deliverable{
		ID:           uuid.NewString(),
		Type:         kind,
		Status:       models.DeliverableStatusPending,
		DeliveryDate: deliveryDate,
		File:         file,
		CreatedAt:    t.store.now().UTC(),
	}
}
