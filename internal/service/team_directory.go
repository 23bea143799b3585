package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"studio-ops-backend/internal/database/models"
	apperrors "studio-ops-backend/internal/errors"
	"studio-ops-backend/internal/logger"
	"studio-ops-backend/internal/monitoring"
	"studio-ops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentChecker reports whether a team member is still booked somewhere
type AssignmentChecker interface {
	HasActiveAssignments(memberID string) bool
}

// UpsertTeamMemberRequest represents the request to create or replace a team member
type UpsertTeamMemberRequest struct {
	ID           string              `json:"id,omitempty" validate:"max=64"`
	Name         string              `json:"name" validate:"required,max=200"`
	Role         models.TeamRole     `json:"role" validate:"required"`
	Email        string              `json:"email" validate:"omitempty,email,max=255"`
	Phone        string              `json:"phone" validate:"max=50"`
	Availability models.Availability `json:"availability"`
	IsFreelancer bool                `json:"is_freelancer"`
}

// SetAvailabilityRequest represents the request to change a member's status on one date
type SetAvailabilityRequest struct {
	Date   string                    `json:"date" validate:"required,datetime=2006-01-02"`
	Status models.AvailabilityStatus `json:"status" validate:"required"`
}

// TeamDirectory keeps the roster of team members in directory order
type TeamDirectory struct {
	repo      repository.TeamMemberRepositoryInterface
	checker   AssignmentChecker
	validator *validator.Validate

	// writeMu serializes writes so a rollback restores the state it replaced
	writeMu sync.Mutex

	mu      sync.RWMutex
	members map[string]*models.TeamMember
	order   []string
}

// NewTeamDirectory creates an empty directory. checker guards Remove and role changes.
func NewTeamDirectory(repo repository.TeamMemberRepositoryInterface, checker AssignmentChecker, validator *validator.Validate) *TeamDirectory {
	return &TeamDirectory{
		repo:      repo,
		checker:   checker,
		validator: validator,
		members:   make(map[string]*models.TeamMember),
	}
}

// Load replaces the roster with the stored team members
func (d *TeamDirectory) Load(ctx context.Context) error {
	start := time.Now()
	members, err := d.repo.GetAll(ctx)
	monitoring.ObservePersistence("team_member", "load", time.Since(start).Seconds())
	if err != nil {
		return apperrors.NewPersistenceError("load team members", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.members = make(map[string]*models.TeamMember, len(members))
	d.order = make([]string, 0, len(members))
	for i := range members {
		member := members[i]
		if member.Availability == nil {
			member.Availability = models.Availability{}
		}
		d.members[member.ID] = &member
		d.order = append(d.order, member.ID)
	}

	logger.WithContext(ctx).WithField("count", len(members)).Info("Loaded team members")
	return nil
}

// List returns every member in directory order
func (d *TeamDirectory) List() []models.TeamMember {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.TeamMember, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, copyMember(d.members[id]))
	}
	return out
}

// Get returns a copy of the member
func (d *TeamDirectory) Get(id string) (*models.TeamMember, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	member, ok := d.members[id]
	if !ok {
		return nil, apperrors.ErrTeamMemberNotFound
	}
	out := copyMember(member)
	return &out, nil
}

// IsAvailableOn reports whether the member is free on date.
// Members not in the directory have no recorded constraints.
func (d *TeamDirectory) IsAvailableOn(memberID, date string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	member, ok := d.members[memberID]
	if !ok {
		return true
	}
	return member.Availability.IsAvailableOn(date)
}

// Upsert creates the member, or replaces the member with the same ID
func (d *TeamDirectory) Upsert(ctx context.Context, req *UpsertTeamMemberRequest) (*models.TeamMember, error) {
	if err := validateRequest(d.validator, req); err != nil {
		return nil, err
	}
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}
	if err := validateAvailability(req.Availability); err != nil {
		return nil, err
	}

	member := &models.TeamMember{
		BaseModel:    models.BaseModel{ID: req.ID},
		Name:         req.Name,
		Role:         req.Role,
		Email:        req.Email,
		Phone:        req.Phone,
		Availability: compactAvailability(req.Availability),
		IsFreelancer: req.IsFreelancer,
	}
	if member.ID == "" {
		member.ID = uuid.NewString()
	}

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	previous, existed := d.lookup(member.ID)
	if existed {
		// booked crew count against quotas under their current role
		if previous.Role != member.Role && d.checker != nil && d.checker.HasActiveAssignments(member.ID) {
			return nil, apperrors.ErrRoleInUse
		}
		member.CreatedAt = previous.CreatedAt
	}

	if err := d.swapAndSave(ctx, member, previous, "save team member"); err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_member_id": member.ID,
		"role":           member.Role,
		"created":        !existed,
	}).Info("Team member saved")

	out := copyMember(member)
	return &out, nil
}

// SetAvailability records the member's status on one date.
// Setting available clears the entry.
func (d *TeamDirectory) SetAvailability(ctx context.Context, id string, req *SetAvailabilityRequest) (*models.TeamMember, error) {
	if err := validateRequest(d.validator, req); err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	previous, ok := d.lookup(id)
	if !ok {
		return nil, apperrors.ErrTeamMemberNotFound
	}

	member := copyMember(previous)
	if req.Status == models.AvailabilityAvailable {
		delete(member.Availability, req.Date)
	} else {
		member.Availability[req.Date] = req.Status
	}

	if err := d.swapAndSave(ctx, &member, previous, "save team member availability"); err != nil {
		return nil, err
	}

	out := copyMember(&member)
	return &out, nil
}

// Remove deletes a member that holds no active assignment
func (d *TeamDirectory) Remove(ctx context.Context, id string) error {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	previous, ok := d.lookup(id)
	if !ok {
		return apperrors.ErrTeamMemberNotFound
	}
	if d.checker != nil && d.checker.HasActiveAssignments(id) {
		return apperrors.ErrMemberInUse
	}

	position := d.drop(id)

	start := time.Now()
	err := d.repo.Delete(ctx, id)
	monitoring.ObservePersistence("team_member", "delete", time.Since(start).Seconds())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		d.insertAt(previous, position)
		monitoring.CaptureError(ctx, err, map[string]string{"team_member_id": id})
		return apperrors.NewPersistenceError("delete team member", err)
	}

	logger.WithContext(ctx).WithField("team_member_id", id).Info("Team member removed")
	return nil
}

func (d *TeamDirectory) swapAndSave(ctx context.Context, member, previous *models.TeamMember, op string) error {
	d.mu.Lock()
	if previous == nil {
		d.order = append(d.order, member.ID)
	}
	d.members[member.ID] = member
	d.mu.Unlock()

	saved := copyMember(member)
	start := time.Now()
	err := d.repo.Save(ctx, &saved)
	monitoring.ObservePersistence("team_member", "save", time.Since(start).Seconds())
	if err == nil {
		d.mu.Lock()
		member.CreatedAt = saved.CreatedAt
		member.UpdatedAt = saved.UpdatedAt
		d.mu.Unlock()
		return nil
	}

	if previous != nil {
		d.mu.Lock()
		d.members[member.ID] = previous
		d.mu.Unlock()
	} else {
		d.drop(member.ID)
	}
	monitoring.CaptureError(ctx, err, map[string]string{"team_member_id": member.ID})
	return apperrors.NewPersistenceError(op, err)
}

func (d *TeamDirectory) lookup(id string) (*models.TeamMember, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	member, ok := d.members[id]
	return member, ok
}

func (d *TeamDirectory) drop(id string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.members, id)
	for i, held := range d.order {
		if held == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			return i
		}
	}
	return -1
}

func (d *TeamDirectory) insertAt(member *models.TeamMember, position int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.members[member.ID] = member
	if position < 0 || position > len(d.order) {
		d.order = append(d.order, member.ID)
		return
	}
	d.order = append(d.order, "")
	copy(d.order[position+1:], d.order[position:])
	d.order[position] = member.ID
}

func copyMember(member *models.TeamMember) models.TeamMember {
	out := *member
	out.Availability = member.Availability.Clone()
	return out
}

func validateAvailability(availability models.Availability) error {
	for date, status := range availability {
		if !models.ValidDate(date) {
			return apperrors.ErrInvalidDate
		}
		if !status.IsValid() {
			return apperrors.NewValidationError("availability", fmt.Sprintf("invalid status %q for %s", status, date))
		}
	}
	return nil
}

// compactAvailability drops explicit available entries; absence means available
func compactAvailability(availability models.Availability) models.Availability {
	out := models.Availability{}
	for date, status := range availability {
		if status != models.AvailabilityAvailable {
			out[date] = status
		}
	}
	return out
}
