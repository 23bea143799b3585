package repository

import (
	"context"

	"studio-ops-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamMemberRepositoryInterface defines the persistence operations for team members
type TeamMemberRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.TeamMember, error)
	GetByID(ctx context.Context, id string) (*models.TeamMember, error)
	Save(ctx context.Context, member *models.TeamMember) error
	Delete(ctx context.Context, id string) error
}

// ScheduledEventRepositoryInterface defines the persistence operations for scheduled events
type ScheduledEventRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.ScheduledEvent, error)
	GetByStage(ctx context.Context, stage models.Stage) ([]models.ScheduledEvent, error)
	GetByID(ctx context.Context, id string) (*models.ScheduledEvent, error)
	Create(ctx context.Context, event *models.ScheduledEvent) error
	// Update replaces the stored event when its version still equals expectedVersion
	Update(ctx context.Context, event *models.ScheduledEvent, expectedVersion int64) error
}
