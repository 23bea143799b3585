package service

import (
	"context"
	"io"

	"studio-ops-backend/internal/database/models"
	"studio-ops-backend/internal/feed"
	"studio-ops-backend/internal/storage"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// Notifier tells a team member about a new assignment
type Notifier interface {
	NotifyAssignment(ctx context.Context, member models.TeamMember, event models.ScheduledEvent) error
}

// FileUploader stores a deliverable file and returns its reference
type FileUploader interface {
	Upload(ctx context.Context, name string, r io.Reader) (*storage.Object, error)
	Delete(ctx context.Context, key string) error
}

// ChangePublisher broadcasts event writes to other surfaces
type ChangePublisher interface {
	PublishEventChanged(ctx context.Context, change feed.EventChange) error
}

// TeamDirectoryInterface defines the interface for the team directory
type TeamDirectoryInterface interface {
	List() []models.TeamMember
	Get(id string) (*models.TeamMember, error)
	Upsert(ctx context.Context, req *UpsertTeamMemberRequest) (*models.TeamMember, error)
	Remove(ctx context.Context, id string) error
	SetAvailability(ctx context.Context, id string, req *SetAvailabilityRequest) (*models.TeamMember, error)
}

// EventStoreInterface defines the interface for reading and editing events
type EventStoreInterface interface {
	List() []models.ScheduledEvent
	ListByStage(ctx context.Context, stage models.Stage) ([]models.ScheduledEvent, error)
	Get(ctx context.Context, id string) (*models.ScheduledEvent, error)
	Create(ctx context.Context, req *CreateEventRequest) (*models.ScheduledEvent, error)
	UpdateDetails(ctx context.Context, id string, req *UpdateEventRequest) (*models.ScheduledEvent, error)
}

// AssignmentServiceInterface defines the interface for crew assignment
type AssignmentServiceInterface interface {
	EligibleCandidates(event *models.ScheduledEvent, role models.TeamRole) []models.TeamMember
	Assign(ctx context.Context, eventID string, req *AssignRequest) (*models.ScheduledEvent, error)
	UpdateStatus(ctx context.Context, eventID, memberID string, req *UpdateAssignmentStatusRequest) (*models.ScheduledEvent, error)
	Unassign(ctx context.Context, eventID, memberID string, baseVersion int64) (*models.ScheduledEvent, error)
	Counts(event *models.ScheduledEvent) AssignmentCounts
	CanAssignMore(event *models.ScheduledEvent, role models.TeamRole) bool
}

// StageServiceInterface defines the interface for stage transitions
type StageServiceInterface interface {
	MoveToProduction(ctx context.Context, eventID string, baseVersion int64) (*StageResult, error)
	MoveToPostProduction(ctx context.Context, eventID string, baseVersion int64) (*StageResult, error)
	CompleteEvent(ctx context.Context, eventID string, baseVersion int64) (*StageResult, error)
	OverrideStage(ctx context.Context, eventID string, req *OverrideStageRequest) (*StageResult, error)
}

// DeliverableServiceInterface defines the interface for deliverable tracking
type DeliverableServiceInterface interface {
	Add(ctx context.Context, eventID string, req *AddDeliverableRequest) (*models.ScheduledEvent, error)
	Upload(ctx context.Context, eventID string, req *UploadDeliverableRequest) (*models.ScheduledEvent, error)
	Assign(ctx context.Context, eventID, deliverableID string, req *AssignDeliverableRequest) (*models.ScheduledEvent, error)
	Advance(ctx context.Context, eventID, deliverableID string, req *AdvanceDeliverableRequest) (*models.ScheduledEvent, error)
	RequestRevision(ctx context.Context, eventID, deliverableID string, req *RevisionRequest) (*models.ScheduledEvent, error)
	Complete(ctx context.Context, eventID, deliverableID string, baseVersion int64) (*models.ScheduledEvent, error)
	Remove(ctx context.Context, eventID, deliverableID string, baseVersion int64) (*models.ScheduledEvent, error)
}

// TimeLedgerInterface defines the interface for work hour tracking
type TimeLedgerInterface interface {
	LogTime(ctx context.Context, eventID string, req *LogTimeRequest) (*models.ScheduledEvent, error)
	LogTimeForAcceptedAssignments(ctx context.Context, eventID string, req *LogCrewTimeRequest) (*models.ScheduledEvent, error)
	TotalHours(event *models.ScheduledEvent) decimal.Decimal
	HoursByMember(event *models.ScheduledEvent) []MemberHours
}
