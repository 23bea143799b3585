package service_test

import (
	"context"

	"studio-ops-backend/internal/database/models"
	"studio-ops-backend/internal/mocks"
	"studio-ops-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const eventDate = "2024-03-15"

// workflowSuite wires every workflow component over mocked repositories
type workflowSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	eventRepo  *mocks.MockScheduledEventRepositoryInterface
	memberRepo *mocks.MockTeamMemberRepositoryInterface
	publisher  *mocks.MockChangePublisher
	notifier   *mocks.MockNotifier
	uploader   *mocks.MockFileUploader
	validator  *validator.Validate

	store        *service.EventStore
	directory    *service.TeamDirectory
	assignments  *service.AssignmentEngine
	stages       *service.StageController
	deliverables *service.DeliverableTracker
	ledger       *service.TimeLedger
}

func (s *workflowSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.eventRepo = mocks.NewMockScheduledEventRepositoryInterface(s.ctrl)
	s.memberRepo = mocks.NewMockTeamMemberRepositoryInterface(s.ctrl)
	s.publisher = mocks.NewMockChangePublisher(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)
	s.uploader = mocks.NewMockFileUploader(s.ctrl)
	s.validator = validator.New()

	s.publisher.EXPECT().PublishEventChanged(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.notifier.EXPECT().NotifyAssignment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.store = service.NewEventStore(s.eventRepo, s.publisher, s.validator)
	s.directory = service.NewTeamDirectory(s.memberRepo, s.store, s.validator)
	s.store.UseAvailability(s.directory)
	s.assignments = service.NewAssignmentEngine(s.store, s.directory, s.notifier, s.validator)
	s.stages = service.NewStageController(s.store, s.assignments, s.validator, false)
	s.deliverables = service.NewDeliverableTracker(s.store, s.directory, s.uploader, s.validator)
	s.ledger = service.NewTimeLedger(s.store, s.directory, s.validator)
}

func (s *workflowSuite) TearDownTest() {
	s.assignments.Wait()
	s.ctrl.Finish()
}

// seed loads members and events into the directory and store
func (s *workflowSuite) seed(members []models.TeamMember, events ...models.ScheduledEvent) {
	s.memberRepo.EXPECT().GetAll(gomock.Any()).Return(members, nil)
	s.eventRepo.EXPECT().GetAll(gomock.Any()).Return(events, nil)
	s.Require().NoError(s.directory.Load(s.ctx))
	s.Require().NoError(s.store.Load(s.ctx))
}

// acceptWrites makes every event update succeed
func (s *workflowSuite) acceptWrites() {
	s.eventRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (s *workflowSuite) get(id string) *models.ScheduledEvent {
	event, err := s.store.Get(s.ctx, id)
	s.Require().NoError(err)
	return event
}

func (s *workflowSuite) assign(eventID, memberID string, role models.TeamRole) *models.ScheduledEvent {
	event := s.get(eventID)
	updated, err := s.assignments.Assign(s.ctx, eventID, &service.AssignRequest{
		Version:      event.Version,
		TeamMemberID: memberID,
		Role:         role,
	})
	s.Require().NoError(err)
	return updated
}

func (s *workflowSuite) setStatus(eventID, memberID string, status models.AssignmentStatus) *models.ScheduledEvent {
	event := s.get(eventID)
	updated, err := s.assignments.UpdateStatus(s.ctx, eventID, memberID, &service.UpdateAssignmentStatusRequest{
		Version: event.Version,
		Status:  status,
	})
	s.Require().NoError(err)
	return updated
}

func newMember(id, name string, role models.TeamRole) models.TeamMember {
	return models.TeamMember{
		BaseModel:    models.BaseModel{ID: id},
		Name:         name,
		Role:         role,
		Email:        id + "@studio.test",
		Availability: models.Availability{},
	}
}

func newEvent(id string, stage models.Stage) models.ScheduledEvent {
	return models.ScheduledEvent{
		BaseModel:          models.BaseModel{ID: id},
		Name:               "Silva wedding",
		Date:               eventDate,
		StartTime:          "14:00",
		EndTime:            "22:00",
		Location:           "Quinta do Lago",
		PhotographersCount: 2,
		VideographersCount: 1,
		Stage:              stage,
		Assignments:        []models.EventAssignment{},
		Deliverables:       []models.Deliverable{},
		TimeTracking:       []models.TimeLogEntry{},
		Version:            1,
	}
}

func defaultCrew() []models.TeamMember {
	return []models.TeamMember{
		newMember("tm-1", "Ana", models.TeamRolePhotographer),
		newMember("tm-2", "Bruno", models.TeamRolePhotographer),
		newMember("tm-3", "Carla", models.TeamRolePhotographer),
		newMember("tm-4", "Duarte", models.TeamRoleVideographer),
		newMember("tm-5", "Eva", models.TeamRoleEditor),
	}
}

func errNotFound() error {
	return gorm.ErrRecordNotFound
}
