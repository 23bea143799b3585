package repository

import (
	"context"
	"errors"

	"studio-ops-backend/internal/database/models"

	"gorm.io/gorm"
)

// ErrVersionConflict is returned by Update when the stored version moved on
var ErrVersionConflict = errors.New("scheduled event version conflict")

// ScheduledEventRepository handles database operations for scheduled events
type ScheduledEventRepository struct {
	db *gorm.DB
}

// NewScheduledEventRepository creates a new scheduled event repository
func NewScheduledEventRepository(db *gorm.DB) *ScheduledEventRepository {
	return &ScheduledEventRepository{db: db}
}

// GetAll retrieves every event ordered by date
func (r *ScheduledEventRepository) GetAll(ctx context.Context) ([]models.ScheduledEvent, error) {
	var events []models.ScheduledEvent
	err := r.db.WithContext(ctx).Order("date ASC, created_at ASC").Find(&events).Error
	return events, err
}

// GetByStage retrieves events in the given stage ordered by date
func (r *ScheduledEventRepository) GetByStage(ctx context.Context, stage models.Stage) ([]models.ScheduledEvent, error) {
	var events []models.ScheduledEvent
	err := r.db.WithContext(ctx).Where("stage = ?", stage).Order("date ASC, created_at ASC").Find(&events).Error
	return events, err
}

// GetByID retrieves an event by ID
func (r *ScheduledEventRepository) GetByID(ctx context.Context, id string) (*models.ScheduledEvent, error) {
	var event models.ScheduledEvent
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts a new event at version 1
func (r *ScheduledEventRepository) Create(ctx context.Context, event *models.ScheduledEvent) error {
	if event.Version == 0 {
		event.Version = 1
	}
	return r.db.WithContext(ctx).Create(event).Error
}

// Update replaces the whole event row if the stored version equals expectedVersion.
// It returns ErrVersionConflict when another writer got there first.
func (r *ScheduledEventRepository) Update(ctx context.Context, event *models.ScheduledEvent, expectedVersion int64) error {
	db := r.db.WithContext(ctx)

	result := db.Model(event).
		Where("version = ?", expectedVersion).
		Select("*").
		Omit("id", "created_at").
		Updates(event)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(&models.ScheduledEvent{}).Where("id = ?", event.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return ErrVersionConflict
}
