package testutils

import (
	"studio-ops-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a photographer available on every date
func (f *TeamMemberFactory) Create() *models.TeamMember {
	return &models.TeamMember{
		BaseModel:    models.BaseModel{ID: uuid.NewString()},
		Name:         "Ana Costa",
		Role:         models.TeamRolePhotographer,
		Email:        "ana.costa@studio.test",
		Phone:        "+351 910 000 000",
		Availability: models.Availability{},
	}
}

// WithRole creates a member working in role
func (f *TeamMemberFactory) WithRole(role models.TeamRole) *models.TeamMember {
	member := f.Create()
	member.Role = role
	return member
}

// Unavailable creates a member marked unavailable on date
func (f *TeamMemberFactory) Unavailable(date string) *models.TeamMember {
	member := f.Create()
	member.Availability[date] = models.AvailabilityUnavailable
	return member
}

// ScheduledEventFactory provides methods to create test ScheduledEvent data
type ScheduledEventFactory struct{}

// NewScheduledEventFactory creates a new ScheduledEventFactory
func NewScheduledEventFactory() *ScheduledEventFactory {
	return &ScheduledEventFactory{}
}

// Create creates a pre-production event needing two photographers and one videographer
func (f *ScheduledEventFactory) Create() *models.ScheduledEvent {
	return &models.ScheduledEvent{
		BaseModel:          models.BaseModel{ID: uuid.NewString()},
		Name:               "Silva wedding",
		Date:               "2024-03-15",
		StartTime:          "14:00",
		EndTime:            "23:00",
		Location:           "Quinta da Regaleira",
		ClientName:         "Marta Silva",
		ClientEmail:        "marta@example.com",
		PhotographersCount: 2,
		VideographersCount: 1,
		Stage:              models.StagePreProduction,
		Assignments:        []models.EventAssignment{},
		Deliverables:       []models.Deliverable{},
		TimeTracking:       []models.TimeLogEntry{},
		Version:            1,
	}
}

// WithStage creates an event in stage
func (f *ScheduledEventFactory) WithStage(stage models.Stage) *models.ScheduledEvent {
	event := f.Create()
	event.Stage = stage
	return event
}

// WithDate creates an event on date
func (f *ScheduledEventFactory) WithDate(date string) *models.ScheduledEvent {
	event := f.Create()
	event.Date = date
	return event
}
