package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventAssignment links a team member to an event.
// (EventID, TeamMemberID) is the natural key.
type EventAssignment struct {
	EventID      string           `json:"event_id"`
	TeamMemberID string           `json:"team_member_id"`
	Role         TeamRole         `json:"role"`
	Status       AssignmentStatus `json:"status"`
	AssignedAt   time.Time        `json:"assigned_at"`
}

// FileReference describes a stored deliverable asset
type FileReference struct {
	URL         string `json:"url"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Deliverable is a unit of client-facing output owned by an event
type Deliverable struct {
	ID            string            `json:"id"`
	Type          DeliverableType   `json:"type"`
	Status        DeliverableStatus `json:"status"`
	AssignedTo    *string           `json:"assigned_to,omitempty"`
	DeliveryDate  string            `json:"delivery_date,omitempty"`
	RevisionNotes string            `json:"revision_notes,omitempty"`
	CompletedDate *time.Time        `json:"completed_date,omitempty"`
	File          *FileReference    `json:"file,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// TimeLogEntry holds the hours a team member logged on one day
type TimeLogEntry struct {
	TeamMemberID string          `json:"team_member_id"`
	Date         string          `json:"date"`
	HoursLogged  decimal.Decimal `json:"hours_logged"`
}

// ScheduledEvent represents a booked shoot moving through the production pipeline.
// Child collections are stored with the row so the event is replaced as a unit.
type ScheduledEvent struct {
	BaseModel
	Name               string            `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Date               string            `json:"date" gorm:"type:varchar(10);not null;index" validate:"required,datetime=2006-01-02"`
	StartTime          string            `json:"start_time" gorm:"type:varchar(5)" validate:"omitempty,datetime=15:04"`
	EndTime            string            `json:"end_time" gorm:"type:varchar(5)" validate:"omitempty,datetime=15:04"`
	Location           string            `json:"location" gorm:"size:300" validate:"max=300"`
	ClientName         string            `json:"client_name" gorm:"size:200" validate:"max=200"`
	ClientPhone        string            `json:"client_phone" gorm:"size:50" validate:"max=50"`
	ClientEmail        string            `json:"client_email" gorm:"size:255" validate:"omitempty,email,max=255"`
	PhotographersCount int               `json:"photographers_count" gorm:"not null;default:0" validate:"min=0,max=50"`
	VideographersCount int               `json:"videographers_count" gorm:"not null;default:0" validate:"min=0,max=50"`
	Stage              Stage             `json:"stage" gorm:"type:varchar(30);not null;default:'pre-production';index"`
	Assignments        []EventAssignment `json:"assignments" gorm:"type:jsonb;serializer:json"`
	Deliverables       []Deliverable     `json:"deliverables" gorm:"type:jsonb;serializer:json"`
	TimeTracking       []TimeLogEntry    `json:"time_tracking" gorm:"type:jsonb;serializer:json"`
	EstimateID         *string           `json:"estimate_id,omitempty" gorm:"type:varchar(64);index"`
	Version            int64             `json:"version" gorm:"not null;default:1"`
}

// TableName returns the table name for ScheduledEvent
func (ScheduledEvent) TableName() string {
	return "scheduled_events"
}

// Clone returns a deep copy so a command can mutate it without touching the original
func (e *ScheduledEvent) Clone() *ScheduledEvent {
	out := *e

	if e.Assignments != nil {
		out.Assignments = make([]EventAssignment, len(e.Assignments))
		copy(out.Assignments, e.Assignments)
	}

	if e.Deliverables != nil {
		out.Deliverables = make([]Deliverable, len(e.Deliverables))
		for i, d := range e.Deliverables {
			out.Deliverables[i] = d.clone()
		}
	}

	if e.TimeTracking != nil {
		out.TimeTracking = make([]TimeLogEntry, len(e.TimeTracking))
		copy(out.TimeTracking, e.TimeTracking)
	}

	if e.EstimateID != nil {
		id := *e.EstimateID
		out.EstimateID = &id
	}

	return &out
}

func (d Deliverable) clone() Deliverable {
	out := d
	if d.AssignedTo != nil {
		v := *d.AssignedTo
		out.AssignedTo = &v
	}
	if d.CompletedDate != nil {
		v := *d.CompletedDate
		out.CompletedDate = &v
	}
	if d.File != nil {
		v := *d.File
		out.File = &v
	}
	return out
}

// AssignmentIndex returns the position of the member's assignment, or -1
func (e *ScheduledEvent) AssignmentIndex(teamMemberID string) int {
	for i := range e.Assignments {
		if e.Assignments[i].TeamMemberID == teamMemberID {
			return i
		}
	}
	return -1
}

// DeliverableIndex returns the position of the deliverable, or -1
func (e *ScheduledEvent) DeliverableIndex(id string) int {
	for i := range e.Deliverables {
		if e.Deliverables[i].ID == id {
			return i
		}
	}
	return -1
}

// HasActiveAssignment reports whether the member holds a non-declined
// assignment on an event that is not completed
func (e *ScheduledEvent) HasActiveAssignment(teamMemberID string) bool {
	if e.Stage == StageCompleted {
		return false
	}
	i := e.AssignmentIndex(teamMemberID)
	return i >= 0 && e.Assignments[i].Status != AssignmentStatusDeclined
}
