package repository

import (
	"context"

	"studio-ops-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamMemberRepository handles database operations for team members
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// GetAll retrieves all team members in directory order
func (r *TeamMemberRepository) GetAll(ctx context.Context) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&members).Error
	return members, err
}

// GetByID retrieves a team member by ID
func (r *TeamMemberRepository) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Save inserts the team member or replaces the stored row with the same ID
func (r *TeamMemberRepository) Save(ctx context.Context, member *models.TeamMember) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(member).Error
}

// Delete removes a team member
func (r *TeamMemberRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
