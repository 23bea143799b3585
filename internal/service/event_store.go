package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"studio-ops-backend/internal/database/models"
	apperrors "studio-ops-backend/internal/errors"
	"studio-ops-backend/internal/feed"
	"studio-ops-backend/internal/logger"
	"studio-ops-backend/internal/monitoring"
	"studio-ops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Command names an event store write for logging, metrics and the change feed
type Command struct {
	Name   string
	Action string
}

// errUnchanged is returned by a mutation that leaves the event as it is
var errUnchanged = errors.New("event unchanged")

// CreateEventRequest represents the request to book an event
type CreateEventRequest struct {
	Name               string  `json:"name" validate:"required,max=200"`
	Date               string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime          string  `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime            string  `json:"end_time" validate:"omitempty,datetime=15:04"`
	Location           string  `json:"location" validate:"max=300"`
	ClientName         string  `json:"client_name" validate:"max=200"`
	ClientPhone        string  `json:"client_phone" validate:"max=50"`
	ClientEmail        string  `json:"client_email" validate:"omitempty,email,max=255"`
	PhotographersCount int     `json:"photographers_count" validate:"min=0,max=50"`
	VideographersCount int     `json:"videographers_count" validate:"min=0,max=50"`
	EstimateID         *string `json:"estimate_id,omitempty"`
}

// UpdateEventRequest represents the request to edit an event's booking details
type UpdateEventRequest struct {
	Version            int64  `json:"version" validate:"required,min=1"`
	Name               string `json:"name" validate:"required,max=200"`
	Date               string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime          string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime            string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Location           string `json:"location" validate:"max=300"`
	ClientName         string `json:"client_name" validate:"max=200"`
	ClientPhone        string `json:"client_phone" validate:"max=50"`
	ClientEmail        string `json:"client_email" validate:"omitempty,email,max=255"`
	PhotographersCount int    `json:"photographers_count" validate:"min=0,max=50"`
	VideographersCount int    `json:"videographers_count" validate:"min=0,max=50"`
}

// AvailabilityLookup reports whether a team member is free on a date
type AvailabilityLookup interface {
	IsAvailableOn(memberID, date string) bool
}

// EventStore keeps the working copy of every scheduled event and applies
// writes as versioned whole-event replacements
type EventStore struct {
	repo      repository.ScheduledEventRepositoryInterface
	publisher ChangePublisher
	validator *validator.Validate

	// availability re-checks the booked crew when an event moves to another date
	availability AvailabilityLookup

	mu     sync.RWMutex
	events map[string]*models.ScheduledEvent
	order  []string

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	now func() time.Time
}

// NewEventStore creates an empty event store. A nil publisher disables the change feed.
func NewEventStore(repo repository.ScheduledEventRepositoryInterface, publisher ChangePublisher, validator *validator.Validate) *EventStore {
	if publisher == nil {
		publisher = feed.NopPublisher{}
	}
	return &EventStore{
		repo:      repo,
		publisher: publisher,
		validator: validator,
		events:    make(map[string]*models.ScheduledEvent),
		locks:     make(map[string]*sync.Mutex),
		now:       time.Now,
	}
}

// UseAvailability sets the lookup used to re-check the crew on date changes.
// The team directory depends on the store, so it is attached after construction.
func (s *EventStore) UseAvailability(lookup AvailabilityLookup) {
	s.availability = lookup
}

// Load replaces the working copy with every stored event
func (s *EventStore) Load(ctx context.Context) error {
	start := time.Now()
	events, err := s.repo.GetAll(ctx)
	monitoring.ObservePersistence("event", "load", time.Since(start).Seconds())
	if err != nil {
		return apperrors.NewPersistenceError("load events", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[string]*models.ScheduledEvent, len(events))
	s.order = make([]string, 0, len(events))
	for i := range events {
		event := events[i]
		normalizeEvent(&event)
		s.events[event.ID] = &event
		s.order = append(s.order, event.ID)
	}

	logger.WithContext(ctx).WithField("count", len(events)).Info("Loaded scheduled events")
	return nil
}

// List returns every event ordered by date
func (s *EventStore) List() []models.ScheduledEvent {
	return s.snapshot(func(*models.ScheduledEvent) bool { return true })
}

// ListByStage refreshes events in stage from the store and returns them ordered by date.
// Stored copies only replace the working copy when their version is newer.
func (s *EventStore) ListByStage(ctx context.Context, stage models.Stage) ([]models.ScheduledEvent, error) {
	if !stage.IsValid() {
		return nil, apperrors.NewValidationError("stage", fmt.Sprintf("unknown stage %q", stage))
	}

	start := time.Now()
	stored, err := s.repo.GetByStage(ctx, stage)
	monitoring.ObservePersistence("event", "load_by_stage", time.Since(start).Seconds())
	if err != nil {
		return nil, apperrors.NewPersistenceError("load events by stage", err)
	}
	for i := range stored {
		s.merge(&stored[i])
	}

	return s.snapshot(func(e *models.ScheduledEvent) bool { return e.Stage == stage }), nil
}

// Get returns a copy of the event, loading it from the store when it is not held yet
func (s *EventStore) Get(ctx context.Context, id string) (*models.ScheduledEvent, error) {
	if event, ok := s.lookup(id); ok {
		return event.Clone(), nil
	}
	event, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	return event.Clone(), nil
}

// Create books a new event in pre-production at version 1
func (s *EventStore) Create(ctx context.Context, req *CreateEventRequest) (*models.ScheduledEvent, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	event := &models.ScheduledEvent{
		BaseModel:          models.BaseModel{ID: uuid.NewString()},
		Name:               req.Name,
		Date:               req.Date,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		Location:           req.Location,
		ClientName:         req.ClientName,
		ClientPhone:        req.ClientPhone,
		ClientEmail:        req.ClientEmail,
		PhotographersCount: req.PhotographersCount,
		VideographersCount: req.VideographersCount,
		Stage:              models.StagePreProduction,
		Assignments:        []models.EventAssignment{},
		Deliverables:       []models.Deliverable{},
		TimeTracking:       []models.TimeLogEntry{},
		EstimateID:         req.EstimateID,
		Version:            1,
	}

	start := time.Now()
	err := s.repo.Create(ctx, event)
	monitoring.ObservePersistence("event", "create", time.Since(start).Seconds())
	if err != nil {
		monitoring.RecordEventCommand("create", "persistence_error")
		monitoring.CaptureError(ctx, err, map[string]string{"command": "create"})
		return nil, apperrors.NewPersistenceError("create event", err)
	}

	s.put(event)
	monitoring.RecordEventCommand("create", "ok")
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id": event.ID,
		"date":     event.Date,
	}).Info("Event created")
	s.publish(ctx, event, feed.ActionCreated)

	return event.Clone(), nil
}

// UpdateDetails edits the booking fields of an event that is not completed
func (s *EventStore) UpdateDetails(ctx context.Context, id string, req *UpdateEventRequest) (*models.ScheduledEvent, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	return s.Update(ctx, id, req.Version, Command{Name: "update_details", Action: feed.ActionUpdated}, func(event *models.ScheduledEvent) error {
		if event.Stage == models.StageCompleted {
			return apperrors.ErrEventCompleted
		}

		// lowering a quota below the accepted crew would break the cap
		if acceptedWithRole(event, models.TeamRolePhotographer) > req.PhotographersCount ||
			acceptedWithRole(event, models.TeamRoleVideographer) > req.VideographersCount {
			return apperrors.NewConflictError("quota_below_accepted", "required count is lower than the accepted crew")
		}
		if req.Date != event.Date {
			if err := s.checkCrewAvailable(event, req.Date); err != nil {
				return err
			}
		}

		event.Name = req.Name
		event.Date = req.Date
		event.StartTime = req.StartTime
		event.EndTime = req.EndTime
		event.Location = req.Location
		event.ClientName = req.ClientName
		event.ClientPhone = req.ClientPhone
		event.ClientEmail = req.ClientEmail
		event.PhotographersCount = req.PhotographersCount
		event.VideographersCount = req.VideographersCount
		return nil
	})
}

// checkCrewAvailable rejects a date when any non-declined crew member is booked out on it
func (s *EventStore) checkCrewAvailable(event *models.ScheduledEvent, date string) error {
	if s.availability == nil {
		return nil
	}
	for _, a := range event.Assignments {
		if a.Status == models.AssignmentStatusDeclined {
			continue
		}
		if !s.availability.IsAvailableOn(a.TeamMemberID, date) {
			return fmt.Errorf("team member %s on %s: %w", a.TeamMemberID, date, apperrors.ErrUnavailable)
		}
	}
	return nil
}

// Update runs mutate on a copy of the event and stores the result as the next version.
// The working copy is swapped before the store call and restored if it fails.
func (s *EventStore) Update(ctx context.Context, id string, baseVersion int64, cmd Command, mutate func(*models.ScheduledEvent) error) (*models.ScheduledEvent, error) {
	lock := s.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id": id,
		"command":  cmd.Name,
	})

	current, ok := s.lookup(id)
	if !ok {
		var err error
		if current, err = s.fetch(ctx, id); err != nil {
			monitoring.RecordEventCommand(cmd.Name, "not_found")
			return nil, err
		}
	}

	if current.Version != baseVersion {
		monitoring.RecordEventCommand(cmd.Name, "stale")
		log.WithFields(map[string]interface{}{
			"base_version":    baseVersion,
			"current_version": current.Version,
		}).Info("Rejected stale event update")
		return nil, apperrors.ErrStaleUpdate
	}

	next := current.Clone()
	if err := mutate(next); err != nil {
		if errors.Is(err, errUnchanged) {
			monitoring.RecordEventCommand(cmd.Name, "unchanged")
			return current.Clone(), nil
		}
		monitoring.RecordEventCommand(cmd.Name, "rejected")
		return nil, err
	}
	next.Version = current.Version + 1
	next.UpdatedAt = s.now()

	s.put(next)

	// the store writes timestamps into what it is given, so hand it its own copy
	stored := next.Clone()
	start := time.Now()
	err := s.repo.Update(ctx, stored, current.Version)
	monitoring.ObservePersistence("event", "update", time.Since(start).Seconds())
	if err != nil {
		s.put(current)

		switch {
		case errors.Is(err, repository.ErrVersionConflict):
			monitoring.RecordEventCommand(cmd.Name, "stale")
			log.Warn("Stored event moved on, reloading")
			if _, reloadErr := s.fetch(ctx, id); reloadErr != nil {
				log.WithError(reloadErr).Warn("Failed to reload event")
			}
			return nil, apperrors.ErrStaleUpdate
		case errors.Is(err, gorm.ErrRecordNotFound):
			monitoring.RecordEventCommand(cmd.Name, "not_found")
			s.remove(id)
			return nil, apperrors.ErrEventNotFound
		}

		monitoring.RecordEventCommand(cmd.Name, "persistence_error")
		monitoring.CaptureError(ctx, err, map[string]string{"event_id": id, "command": cmd.Name})
		log.WithError(err).Error("Failed to persist event, rolled back")
		return nil, apperrors.NewPersistenceError("save event", err)
	}

	s.put(stored)
	monitoring.RecordEventCommand(cmd.Name, "ok")
	log.WithField("version", stored.Version).Debug("Event updated")
	s.publish(ctx, stored, cmd.Action)

	return stored.Clone(), nil
}

// HasActiveAssignments reports whether the member holds a non-declined
// assignment on any event that is not completed
func (s *EventStore) HasActiveAssignments(memberID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, event := range s.events {
		if event.HasActiveAssignment(memberID) {
			return true
		}
	}
	return false
}

func (s *EventStore) lookup(id string) (*models.ScheduledEvent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	event, ok := s.events[id]
	return event, ok
}

func (s *EventStore) fetch(ctx context.Context, id string) (*models.ScheduledEvent, error) {
	start := time.Now()
	event, err := s.repo.GetByID(ctx, id)
	monitoring.ObservePersistence("event", "get", time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, apperrors.NewPersistenceError("load event", err)
	}
	normalizeEvent(event)
	s.put(event)
	return event, nil
}

func (s *EventStore) merge(stored *models.ScheduledEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if held, ok := s.events[stored.ID]; ok && held.Version >= stored.Version {
		return
	}
	event := *stored
	normalizeEvent(&event)
	s.putLocked(&event)
}

func (s *EventStore) put(event *models.ScheduledEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putLocked(event)
}

func (s *EventStore) putLocked(event *models.ScheduledEvent) {
	if _, ok := s.events[event.ID]; !ok {
		s.order = append(s.order, event.ID)
	}
	s.events[event.ID] = event
}

func (s *EventStore) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.events, id)
	for i, held := range s.order {
		if held == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *EventStore) snapshot(keep func(*models.ScheduledEvent) bool) []models.ScheduledEvent {
	s.mu.RLock()
	out := make([]models.ScheduledEvent, 0, len(s.order))
	for _, id := range s.order {
		if event := s.events[id]; keep(event) {
			out = append(out, *event.Clone())
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func (s *EventStore) lockFor(id string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

func (s *EventStore) publish(ctx context.Context, event *models.ScheduledEvent, action string) {
	change := feed.EventChange{
		EventID: event.ID,
		Version: event.Version,
		Stage:   string(event.Stage),
		Action:  action,
	}
	if err := s.publisher.PublishEventChanged(ctx, change); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("event_id", event.ID).Warn("Failed to publish event change")
	}
}

// normalizeEvent fills defaults for rows written before a column existed
func normalizeEvent(event *models.ScheduledEvent) {
	if event.Stage == "" {
		event.Stage = models.StagePreProduction
	}
	if event.Version == 0 {
		event.Version = 1
	}
	if event.Assignments == nil {
		event.Assignments = []models.EventAssignment{}
	}
	if event.Deliverables == nil {
		event.Deliverables = []models.Deliverable{}
	}
	if event.TimeTracking == nil {
		event.TimeTracking = []models.TimeLogEntry{}
	}
}

func acceptedWithRole(event *models.ScheduledEvent, role models.TeamRole) int {
	n := 0
	for _, a := range event.Assignments {
		if a.Role == role && a.Status == models.AssignmentStatusAccepted {
			n++
		}
	}
	return n
}
