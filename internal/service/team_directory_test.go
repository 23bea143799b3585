package service_test

import (
	"errors"
	"testing"

	"studio-ops-backend/internal/database/models"
	apperrors "studio-ops-backend/internal/errors"
	"studio-ops-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamDirectoryTestSuite defines the test suite for TeamDirectory
type TeamDirectoryTestSuite struct {
	workflowSuite
}

func (s *TeamDirectoryTestSuite) TestListKeepsDirectoryOrder() {
	s.seed(defaultCrew())

	members := s.directory.List()
	s.Require().Len(members, 5)
	s.Equal("tm-1", members[0].ID)
	s.Equal("tm-5", members[4].ID)

	_, err := s.directory.Get("tm-404")
	s.ErrorIs(err, apperrors.ErrTeamMemberNotFound)
}

func (s *TeamDirectoryTestSuite) TestUpsertCreatesMember() {
	s.seed(defaultCrew())
	s.memberRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	member, err := s.directory.Upsert(s.ctx, &service.UpsertTeamMemberRequest{
		Name:  "Filipa",
		Role:  models.TeamRoleAlbumDesigner,
		Email: "filipa@studio.test",
		Availability: models.Availability{
			"2024-03-15": models.AvailabilityBusy,
			"2024-03-16": models.AvailabilityAvailable,
		},
		IsFreelancer: true,
	})
	s.Require().NoError(err)
	s.NotEmpty(member.ID)
	s.Equal(models.Availability{"2024-03-15": models.AvailabilityBusy}, member.Availability)

	members := s.directory.List()
	s.Require().Len(members, 6)
	s.Equal(member.ID, members[5].ID)
}

func (s *TeamDirectoryTestSuite) TestUpsertReplacesMember() {
	s.seed(defaultCrew())
	s.memberRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.directory.Upsert(s.ctx, &service.UpsertTeamMemberRequest{
		ID:   "tm-2",
		Name: "Bruno Reis",
		Role: models.TeamRoleVideographer,
	})
	s.Require().NoError(err)

	member, err := s.directory.Get("tm-2")
	s.Require().NoError(err)
	s.Equal("Bruno Reis", member.Name)
	s.Equal(models.TeamRoleVideographer, member.Role)
	s.Len(s.directory.List(), 5)
}

func (s *TeamDirectoryTestSuite) TestUpsertValidation() {
	s.seed(defaultCrew())

	_, err := s.directory.Upsert(s.ctx, &service.UpsertTeamMemberRequest{Name: "X", Role: models.TeamRole("drone_pilot")})
	s.ErrorIs(err, apperrors.ErrInvalidRole)

	_, err = s.directory.Upsert(s.ctx, &service.UpsertTeamMemberRequest{
		Name:         "X",
		Role:         models.TeamRoleEditor,
		Availability: models.Availability{"next friday": models.AvailabilityBusy},
	})
	s.ErrorIs(err, apperrors.ErrInvalidDate)

	_, err = s.directory.Upsert(s.ctx, &service.UpsertTeamMemberRequest{Name: "X", Role: models.TeamRoleEditor, Email: "not-an-email"})
	s.True(apperrors.IsValidation(err))
}

func (s *TeamDirectoryTestSuite) TestUpsertPersistenceFailureRollsBack() {
	s.seed(defaultCrew())
	s.memberRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("connection refused")).Times(2)

	_, err := s.directory.Upsert(s.ctx, &service.UpsertTeamMemberRequest{Name: "Ghost", Role: models.TeamRoleEditor})
	s.True(apperrors.IsPersistence(err))
	s.Len(s.directory.List(), 5)

	_, err = s.directory.Upsert(s.ctx, &service.UpsertTeamMemberRequest{ID: "tm-1", Name: "Renamed", Role: models.TeamRolePhotographer})
	s.True(apperrors.IsPersistence(err))
	member, err := s.directory.Get("tm-1")
	s.Require().NoError(err)
	s.Equal("Ana", member.Name)
}

func (s *TeamDirectoryTestSuite) TestUpsertKeepsRoleOfBookedMember() {
	s.seed(defaultCrew(), newEvent("ev-1", models.StagePreProduction))
	s.acceptWrites()
	for _, id := range []string{"tm-1", "tm-2"} {
		s.assign("ev-1", id, models.TeamRolePhotographer)
		s.setStatus("ev-1", id, models.AssignmentStatusAccepted)
	}
	s.assign("ev-1", "tm-4", models.TeamRoleVideographer)
	s.setStatus("ev-1", "tm-4", models.AssignmentStatusAccepted)

	_, err := s.directory.Upsert(s.ctx, &service.UpsertTeamMemberRequest{
		ID:   "tm-4",
		Name: "Duarte",
		Role: models.TeamRolePhotographer,
	})
	s.ErrorIs(err, apperrors.ErrRoleInUse)

	member, err := s.directory.Get("tm-4")
	s.Require().NoError(err)
	s.Equal(models.TeamRoleVideographer, member.Role)

	counts := s.assignments.Counts(s.get("ev-1"))
	s.Equal(2, counts.AcceptedPhotographers)
	s.Equal(1, counts.AcceptedVideographers)

	// other fields can still change
	s.memberRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	member, err = s.directory.Upsert(s.ctx, &service.UpsertTeamMemberRequest{
		ID:    "tm-4",
		Name:  "Duarte Lopes",
		Role:  models.TeamRoleVideographer,
		Phone: "+351 910 000 000",
	})
	s.Require().NoError(err)
	s.Equal("Duarte Lopes", member.Name)
}

func (s *TeamDirectoryTestSuite) TestUpsertChangesRoleOnceDeclined() {
	s.seed(defaultCrew(), newEvent("ev-1", models.StagePreProduction))
	s.acceptWrites()
	s.assign("ev-1", "tm-3", models.TeamRolePhotographer)
	s.setStatus("ev-1", "tm-3", models.AssignmentStatusDeclined)

	s.memberRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	member, err := s.directory.Upsert(s.ctx, &service.UpsertTeamMemberRequest{
		ID:   "tm-3",
		Name: "Carla",
		Role: models.TeamRoleEditor,
	})
	s.Require().NoError(err)
	s.Equal(models.TeamRoleEditor, member.Role)
}

func (s *TeamDirectoryTestSuite) TestSetAvailability() {
	s.seed(defaultCrew())
	s.memberRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	member, err := s.directory.SetAvailability(s.ctx, "tm-1", &service.SetAvailabilityRequest{
		Date:   eventDate,
		Status: models.AvailabilityUnavailable,
	})
	s.Require().NoError(err)
	s.Equal(models.AvailabilityUnavailable, member.Availability.StatusOn(eventDate))

	member, err = s.directory.SetAvailability(s.ctx, "tm-1", &service.SetAvailabilityRequest{
		Date:   eventDate,
		Status: models.AvailabilityAvailable,
	})
	s.Require().NoError(err)
	s.Empty(member.Availability)

	_, err = s.directory.SetAvailability(s.ctx, "tm-404", &service.SetAvailabilityRequest{Date: eventDate, Status: models.AvailabilityBusy})
	s.ErrorIs(err, apperrors.ErrTeamMemberNotFound)

	_, err = s.directory.SetAvailability(s.ctx, "tm-1", &service.SetAvailabilityRequest{Date: eventDate, Status: "maybe"})
	s.ErrorIs(err, apperrors.ErrInvalidStatus)
}

func (s *TeamDirectoryTestSuite) TestRemoveGuardsActiveAssignments() {
	s.seed(defaultCrew(), newEvent("ev-1", models.StagePreProduction))
	s.acceptWrites()
	s.assign("ev-1", "tm-1", models.TeamRolePhotographer)

	err := s.directory.Remove(s.ctx, "tm-1")
	s.ErrorIs(err, apperrors.ErrMemberInUse)
	_, err = s.directory.Get("tm-1")
	s.NoError(err)

	// declined assignments do not hold the member
	s.setStatus("ev-1", "tm-1", models.AssignmentStatusDeclined)
	s.memberRepo.EXPECT().Delete(gomock.Any(), "tm-1").Return(nil)
	s.NoError(s.directory.Remove(s.ctx, "tm-1"))
	_, err = s.directory.Get("tm-1")
	s.ErrorIs(err, apperrors.ErrTeamMemberNotFound)
}

func (s *TeamDirectoryTestSuite) TestRemoveIgnoresCompletedEvents() {
	done := newEvent("ev-done", models.StageCompleted)
	done.Assignments = []models.EventAssignment{
		{EventID: "ev-done", TeamMemberID: "tm-4", Role: models.TeamRoleVideographer, Status: models.AssignmentStatusAccepted},
	}
	s.seed(defaultCrew(), done)
	s.memberRepo.EXPECT().Delete(gomock.Any(), "tm-4").Return(gorm.ErrRecordNotFound)

	s.NoError(s.directory.Remove(s.ctx, "tm-4"))
	s.Len(s.directory.List(), 4)
}

func (s *TeamDirectoryTestSuite) TestRemovePersistenceFailureRestoresPosition() {
	s.seed(defaultCrew())
	s.memberRepo.EXPECT().Delete(gomock.Any(), "tm-3").Return(errors.New("timeout"))

	err := s.directory.Remove(s.ctx, "tm-3")
	s.True(apperrors.IsPersistence(err))

	members := s.directory.List()
	s.Require().Len(members, 5)
	s.Equal("tm-3", members[2].ID)

	s.ErrorIs(s.directory.Remove(s.ctx, "tm-404"), apperrors.ErrTeamMemberNotFound)
}

func TestTeamDirectoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamDirectoryTestSuite))
}
