package service

import (
	"context"

	"studio-ops-backend/internal/database/models"
	apperrors "studio-ops-backend/internal/errors"
	"studio-ops-backend/internal/feed"
	"studio-ops-backend/internal/logger"
	"studio-ops-backend/internal/monitoring"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// LogTimeRequest represents hours worked by one team member
type LogTimeRequest struct {
	Version      int64           `json:"version" validate:"required,min=1"`
	TeamMemberID string          `json:"team_member_id" validate:"required"`
	Hours        decimal.Decimal `json:"hours" swaggertype:"number"`
	Date         string          `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// LogCrewTimeRequest represents the same hours logged for every accepted crew member
type LogCrewTimeRequest struct {
	Version int64           `json:"version" validate:"required,min=1"`
	Hours   decimal.Decimal `json:"hours" swaggertype:"number"`
	Date    string          `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// MemberHours is the total a member logged on an event
type MemberHours struct {
	TeamMemberID string          `json:"team_member_id"`
	Name         string          `json:"name,omitempty"`
	Hours        decimal.Decimal `json:"hours" swaggertype:"number"`
}

// TimeLedger records work hours in one bucket per member per day
type TimeLedger struct {
	store     *EventStore
	directory *TeamDirectory
	validator *validator.Validate
}

// NewTimeLedger creates a time ledger
func NewTimeLedger(store *EventStore, directory *TeamDirectory, validator *validator.Validate) *TimeLedger {
	return &TimeLedger{
		store:     store,
		directory: directory,
		validator: validator,
	}
}

// LogTime adds hours to the member's bucket for the date, today when empty
func (l *TimeLedger) LogTime(ctx context.Context, eventID string, req *LogTimeRequest) (*models.ScheduledEvent, error) {
	if err := validateRequest(l.validator, req); err != nil {
		return nil, err
	}
	if !req.Hours.IsPositive() {
		return nil, apperrors.ErrInvalidDuration
	}
	if _, err := l.directory.Get(req.TeamMemberID); err != nil {
		return nil, err
	}

	date := l.dateOrToday(req.Date)
	event, err := l.store.Update(ctx, eventID, req.Version, Command{Name: "log_time", Action: feed.ActionTimeLog}, func(ev *models.ScheduledEvent) error {
		addHours(ev, req.TeamMemberID, date, req.Hours)
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.RecordHoursLogged(req.Hours.InexactFloat64())
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id":       eventID,
		"team_member_id": req.TeamMemberID,
		"date":           date,
		"hours":          req.Hours.String(),
	}).Info("Time logged")
	return event, nil
}

// LogTimeForAcceptedAssignments logs the hours for every accepted crew member in one write
func (l *TimeLedger) LogTimeForAcceptedAssignments(ctx context.Context, eventID string, req *LogCrewTimeRequest) (*models.ScheduledEvent, error) {
	if err := validateRequest(l.validator, req); err != nil {
		return nil, err
	}
	if !req.Hours.IsPositive() {
		return nil, apperrors.ErrInvalidDuration
	}

	date := l.dateOrToday(req.Date)
	crew := 0
	event, err := l.store.Update(ctx, eventID, req.Version, Command{Name: "log_crew_time", Action: feed.ActionTimeLog}, func(ev *models.ScheduledEvent) error {
		for _, a := range ev.Assignments {
			if a.Status != models.AssignmentStatusAccepted {
				continue
			}
			addHours(ev, a.TeamMemberID, date, req.Hours)
			crew++
		}
		if crew == 0 {
			return apperrors.ErrNoAcceptedAssignments
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.RecordHoursLogged(req.Hours.Mul(decimal.NewFromInt(int64(crew))).InexactFloat64())
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id": eventID,
		"crew":     crew,
		"date":     date,
		"hours":    req.Hours.String(),
	}).Info("Crew time logged")
	return event, nil
}

// TotalHours sums every entry on the event
func (l *TimeLedger) TotalHours(event *models.ScheduledEvent) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range event.TimeTracking {
		total = total.Add(entry.HoursLogged)
	}
	return total
}

// HoursByMember totals hours per member in order of first entry
func (l *TimeLedger) HoursByMember(event *models.ScheduledEvent) []MemberHours {
	out := []MemberHours{}
	index := map[string]int{}
	for _, entry := range event.TimeTracking {
		i, ok := index[entry.TeamMemberID]
		if !ok {
			row := MemberHours{TeamMemberID: entry.TeamMemberID, Hours: decimal.Zero}
			if member, err := l.directory.Get(entry.TeamMemberID); err == nil {
				row.Name = member.Name
			}
			out = append(out, row)
			i = len(out) - 1
			index[entry.TeamMemberID] = i
		}
		out[i].Hours = out[i].Hours.Add(entry.HoursLogged)
	}
	return out
}

func (l *TimeLedger) dateOrToday(date string) string {
	if date != "" {
		return date
	}
	return l.store.now().UTC().Format(models.DateLayout)
}

func addHours(event *models.ScheduledEvent, memberID, date string, hours decimal.Decimal) {
	for i := range event.TimeTracking {
		entry := &event.TimeTracking[i]
		if entry.TeamMemberID == memberID && entry.Date == date {
			entry.HoursLogged = entry.HoursLogged.Add(hours)
			return
		}
	}
	event.TimeTracking = append(event.TimeTracking, models.TimeLogEntry{
		TeamMemberID: memberID,
		Date:         date,
		HoursLogged:  hours,
	})
}
