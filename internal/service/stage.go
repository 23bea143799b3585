package service

import (
	"context"
	"fmt"

	"studio-ops-backend/internal/database/models"
	apperrors "studio-ops-backend/internal/errors"
	"studio-ops-backend/internal/feed"
	"studio-ops-backend/internal/logger"
	"studio-ops-backend/internal/monitoring"

	"github.com/go-playground/validator/v10"
)

// OverrideStageRequest represents an administrative stage change
type OverrideStageRequest struct {
	Version int64        `json:"version" validate:"required,min=1"`
	Stage   models.Stage `json:"stage" validate:"required"`
	Reason  string       `json:"reason" validate:"required,max=500"`
}

// StageResult is the event after a transition plus any non-blocking warnings
type StageResult struct {
	Event    *models.ScheduledEvent `json:"event"`
	Warnings []string               `json:"warnings,omitempty"`
}

// StageController moves events through the production pipeline
type StageController struct {
	store           *EventStore
	assignments     *AssignmentEngine
	validator       *validator.Validate
	requireFullCrew bool
}

// NewStageController creates a stage controller. With requireFullCrew an
// incomplete crew blocks the move to production instead of warning.
func NewStageController(store *EventStore, assignments *AssignmentEngine, validator *validator.Validate, requireFullCrew bool) *StageController {
	return &StageController{
		store:           store,
		assignments:     assignments,
		validator:       validator,
		requireFullCrew: requireFullCrew,
	}
}

// MoveToProduction advances a pre-production event, warning when the accepted crew is short
func (c *StageController) MoveToProduction(ctx context.Context, eventID string, baseVersion int64) (*StageResult, error) {
	var warnings []string
	result, err := c.transition(ctx, eventID, baseVersion, models.StagePreProduction, func(ev *models.ScheduledEvent) error {
		counts := c.assignments.Counts(ev)
		if counts.CrewComplete() {
			return nil
		}
		if c.requireFullCrew {
			return apperrors.ErrCrewIncomplete
		}
		warnings = crewWarnings(counts)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(warnings) > 0 {
		result.Warnings = warnings
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"event_id": eventID,
			"warnings": warnings,
		}).Warn("Event moved to production with incomplete crew")
	}
	return result, nil
}

// MoveToPostProduction advances a production event
func (c *StageController) MoveToPostProduction(ctx context.Context, eventID string, baseVersion int64) (*StageResult, error) {
	return c.transition(ctx, eventID, baseVersion, models.StageProduction, nil)
}

// CompleteEvent retires a post-production event once every deliverable is completed
func (c *StageController) CompleteEvent(ctx context.Context, eventID string, baseVersion int64) (*StageResult, error) {
	return c.transition(ctx, eventID, baseVersion, models.StagePostProduction, func(ev *models.ScheduledEvent) error {
		for _, d := range ev.Deliverables {
			if d.Status != models.DeliverableStatusCompleted {
				return apperrors.ErrIncompleteDeliverables
			}
		}
		return nil
	})
}

// OverrideStage sets the stage directly, bypassing the forward-only rules and gates
func (c *StageController) OverrideStage(ctx context.Context, eventID string, req *OverrideStageRequest) (*StageResult, error) {
	if err := validateRequest(c.validator, req); err != nil {
		return nil, err
	}
	if !req.Stage.IsValid() {
		return nil, apperrors.NewValidationError("stage", fmt.Sprintf("unknown stage %q", req.Stage))
	}

	var from models.Stage
	event, err := c.store.Update(ctx, eventID, req.Version, Command{Name: "override_stage", Action: feed.ActionStage}, func(ev *models.ScheduledEvent) error {
		from = ev.Stage
		if ev.Stage == req.Stage {
			return errUnchanged
		}
		ev.Stage = req.Stage
		return nil
	})
	if err != nil {
		return nil, err
	}

	if from != req.Stage {
		monitoring.RecordStageTransition(string(from), string(req.Stage))
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"event_id": eventID,
			"from":     from,
			"to":       req.Stage,
			"reason":   req.Reason,
		}).Warn("Event stage overridden")
	}
	return &StageResult{Event: event}, nil
}

// transition moves an event from one stage to the stage that follows it
func (c *StageController) transition(ctx context.Context, eventID string, baseVersion int64, from models.Stage, gate func(*models.ScheduledEvent) error) (*StageResult, error) {
	to, ok := from.Next()
	if !ok {
		return nil, apperrors.NewInvalidTransitionError(string(from), string(from))
	}

	changed := false
	event, err := c.store.Update(ctx, eventID, baseVersion, Command{Name: "move_to_" + string(to), Action: feed.ActionStage}, func(ev *models.ScheduledEvent) error {
		if ev.Stage == to {
			return errUnchanged
		}
		if ev.Stage != from {
			return apperrors.NewInvalidTransitionError(string(ev.Stage), string(to))
		}
		if gate != nil {
			if err := gate(ev); err != nil {
				return err
			}
		}
		ev.Stage = to
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		monitoring.RecordStageTransition(string(from), string(to))
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"event_id": eventID,
			"from":     from,
			"to":       to,
		}).Info("Event stage changed")
	}
	return &StageResult{Event: event}, nil
}

func crewWarnings(counts AssignmentCounts) []string {
	var warnings []string
	if counts.AcceptedPhotographers < counts.RequiredPhotographers {
		warnings = append(warnings, fmt.Sprintf("accepted photographers %d of %d required",
			counts.AcceptedPhotographers, counts.RequiredPhotographers))
	}
	if counts.AcceptedVideographers < counts.RequiredVideographers {
		warnings = append(warnings, fmt.Sprintf("accepted videographers %d of %d required",
			counts.AcceptedVideographers, counts.RequiredVideographers))
	}
	return warnings
}
