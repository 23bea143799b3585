package service_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"studio-ops-backend/internal/database/models"
	apperrors "studio-ops-backend/internal/errors"
	"studio-ops-backend/internal/service"
	"studio-ops-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var allDeliverableStatuses = []models.DeliverableStatus{
	models.DeliverableStatusPending,
	models.DeliverableStatusInProgress,
	models.DeliverableStatusDelivered,
	models.DeliverableStatusRevisionRequested,
	models.DeliverableStatusCompleted,
}

func TestAdvanceDeliverableEdges(t *testing.T) {
	allowed := map[[2]models.DeliverableStatus]bool{
		{models.DeliverableStatusPending, models.DeliverableStatusInProgress}:           true,
		{models.DeliverableStatusInProgress, models.DeliverableStatusDelivered}:         true,
		{models.DeliverableStatusDelivered, models.DeliverableStatusCompleted}:          true,
		{models.DeliverableStatusDelivered, models.DeliverableStatusRevisionRequested}:  true,
		{models.DeliverableStatusRevisionRequested, models.DeliverableStatusInProgress}: true,
	}
	now := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	for _, from := range allDeliverableStatuses {
		for _, to := range allDeliverableStatuses {
			d := models.Deliverable{ID: "d-1", Status: from}
			got, err := service.AdvanceDeliverable(d, to, now)

			if allowed[[2]models.DeliverableStatus{from, to}] {
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, got.Status)
				// completion date is set exactly when completed
				assert.Equal(t, to == models.DeliverableStatusCompleted, got.CompletedDate != nil)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrInvalidTransition, "%s -> %s", from, to)
				assert.Equal(t, from, got.Status)
			}
			assert.Equal(t, allowed[[2]models.DeliverableStatus{from, to}], service.CanAdvance(from, to))
		}
	}

	_, err := service.AdvanceDeliverable(models.Deliverable{Status: models.DeliverableStatusPending}, "shipped", now)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestAssignDeliverable(t *testing.T) {
	for _, from := range []models.DeliverableStatus{
		models.DeliverableStatusPending,
		models.DeliverableStatusInProgress,
		models.DeliverableStatusRevisionRequested,
	} {
		got, err := service.AssignDeliverable(models.Deliverable{Status: from}, "tm-5", "2024-04-20")
		require.NoError(t, err)
		assert.Equal(t, models.DeliverableStatusInProgress, got.Status)
		require.NotNil(t, got.AssignedTo)
		assert.Equal(t, "tm-5", *got.AssignedTo)
		assert.Equal(t, "2024-04-20", got.DeliveryDate)
	}

	for _, from := range []models.DeliverableStatus{models.DeliverableStatusDelivered, models.DeliverableStatusCompleted} {
		_, err := service.AssignDeliverable(models.Deliverable{Status: from}, "tm-5", "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	}
}

func TestRequestRevisionAndComplete(t *testing.T) {
	delivered := models.Deliverable{Status: models.DeliverableStatusDelivered}

	got, err := service.RequestDeliverableRevision(delivered, "  darker grade on the ceremony clips ")
	require.NoError(t, err)
	assert.Equal(t, models.DeliverableStatusRevisionRequested, got.Status)
	assert.Equal(t, "darker grade on the ceremony clips", got.RevisionNotes)

	_, err = service.RequestDeliverableRevision(delivered, "   ")
	assert.True(t, apperrors.IsValidation(err))

	_, err = service.RequestDeliverableRevision(models.Deliverable{Status: models.DeliverableStatusInProgress}, "notes")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	now := time.Now()
	got, err = service.CompleteDeliverable(delivered, now)
	require.NoError(t, err)
	assert.Equal(t, models.DeliverableStatusCompleted, got.Status)
	require.NotNil(t, got.CompletedDate)
	assert.True(t, now.Equal(*got.CompletedDate))

	_, err = service.CompleteDeliverable(models.Deliverable{Status: models.DeliverableStatusPending}, now)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

// DeliverableTrackerTestSuite defines the test suite for DeliverableTracker
type DeliverableTrackerTestSuite struct {
	workflowSuite
}

func (s *DeliverableTrackerTestSuite) TestReworkLoop() {
	s.seed(defaultCrew(), newEvent("ev-1", models.StagePostProduction))
	s.acceptWrites()

	event, err := s.deliverables.Add(s.ctx, "ev-1", &service.AddDeliverableRequest{Version: 1, Type: models.DeliverableTypeAlbum})
	s.Require().NoError(err)
	s.Require().Len(event.Deliverables, 1)
	id := event.Deliverables[0].ID
	s.Equal(models.DeliverableStatusPending, event.Deliverables[0].Status)

	event, err = s.deliverables.Assign(s.ctx, "ev-1", id, &service.AssignDeliverableRequest{
		Version:      event.Version,
		TeamMemberID: "tm-5",
		DeliveryDate: "2024-04-20",
	})
	s.Require().NoError(err)
	s.Equal(models.DeliverableStatusInProgress, event.Deliverables[0].Status)

	event, err = s.deliverables.Advance(s.ctx, "ev-1", id, &service.AdvanceDeliverableRequest{Version: event.Version, Status: models.DeliverableStatusDelivered})
	s.Require().NoError(err)

	event, err = s.deliverables.RequestRevision(s.ctx, "ev-1", id, &service.RevisionRequest{Version: event.Version, Notes: "swap cover photo"})
	s.Require().NoError(err)
	s.Equal(models.DeliverableStatusRevisionRequested, event.Deliverables[0].Status)

	event, err = s.deliverables.Advance(s.ctx, "ev-1", id, &service.AdvanceDeliverableRequest{Version: event.Version, Status: models.DeliverableStatusInProgress})
	s.Require().NoError(err)
	event, err = s.deliverables.Advance(s.ctx, "ev-1", id, &service.AdvanceDeliverableRequest{Version: event.Version, Status: models.DeliverableStatusDelivered})
	s.Require().NoError(err)

	event, err = s.deliverables.Complete(s.ctx, "ev-1", id, event.Version)
	s.Require().NoError(err)
	s.Equal(models.DeliverableStatusCompleted, event.Deliverables[0].Status)
	s.NotNil(event.Deliverables[0].CompletedDate)
	s.Equal("swap cover photo", event.Deliverables[0].RevisionNotes)
}

func (s *DeliverableTrackerTestSuite) TestCommandsRequirePostProduction() {
	event := newEvent("ev-1", models.StageProduction)
	event.Deliverables = []models.Deliverable{{ID: "d-1", Type: models.DeliverableTypePhotos, Status: models.DeliverableStatusPending}}
	s.seed(defaultCrew(), event)

	_, err := s.deliverables.Add(s.ctx, "ev-1", &service.AddDeliverableRequest{Version: 1, Type: models.DeliverableTypePhotos})
	s.ErrorIs(err, apperrors.ErrEventNotInPostProduction)

	_, err = s.deliverables.Advance(s.ctx, "ev-1", "d-1", &service.AdvanceDeliverableRequest{Version: 1, Status: models.DeliverableStatusInProgress})
	s.ErrorIs(err, apperrors.ErrEventNotInPostProduction)

	_, err = s.deliverables.Remove(s.ctx, "ev-1", "d-1", 1)
	s.ErrorIs(err, apperrors.ErrEventNotInPostProduction)
}

func (s *DeliverableTrackerTestSuite) TestInvalidCommands() {
	event := newEvent("ev-1", models.StagePostProduction)
	event.Deliverables = []models.Deliverable{{ID: "d-1", Type: models.DeliverableTypePhotos, Status: models.DeliverableStatusPending}}
	s.seed(defaultCrew(), event)

	_, err := s.deliverables.Advance(s.ctx, "ev-1", "d-1", &service.AdvanceDeliverableRequest{Version: 1, Status: models.DeliverableStatusCompleted})
	s.ErrorIs(err, apperrors.ErrInvalidTransition)

	_, err = s.deliverables.Complete(s.ctx, "ev-1", "d-404", 1)
	s.ErrorIs(err, apperrors.ErrDeliverableNotFound)

	_, err = s.deliverables.Assign(s.ctx, "ev-1", "d-1", &service.AssignDeliverableRequest{Version: 1, TeamMemberID: "tm-404"})
	s.ErrorIs(err, apperrors.ErrTeamMemberNotFound)

	_, err = s.deliverables.Add(s.ctx, "ev-1", &service.AddDeliverableRequest{Version: 1, Type: "slideshow"})
	s.True(apperrors.IsValidation(err))

	s.Equal(models.DeliverableStatusPending, s.get("ev-1").Deliverables[0].Status)
}

func (s *DeliverableTrackerTestSuite) TestRemove() {
	event := newEvent("ev-1", models.StagePostProduction)
	event.Deliverables = []models.Deliverable{
		{ID: "d-1", Type: models.DeliverableTypePhotos, Status: models.DeliverableStatusPending},
		{ID: "d-2", Type: models.DeliverableTypeVideos, Status: models.DeliverableStatusPending},
	}
	s.seed(defaultCrew(), event)
	s.acceptWrites()

	updated, err := s.deliverables.Remove(s.ctx, "ev-1", "d-1", 1)
	s.Require().NoError(err)
	s.Require().Len(updated.Deliverables, 1)
	s.Equal("d-2", updated.Deliverables[0].ID)

	_, err = s.deliverables.Remove(s.ctx, "ev-1", "d-1", updated.Version)
	s.ErrorIs(err, apperrors.ErrDeliverableNotFound)
}

func (s *DeliverableTrackerTestSuite) TestUploadCreatesPendingDeliverable() {
	s.seed(defaultCrew(), newEvent("ev-1", models.StagePostProduction))
	s.acceptWrites()

	body := strings.NewReader("zip bytes")
	s.uploader.EXPECT().Upload(gomock.Any(), "gallery.zip", body).Return(&storage.Object{
		Key:         "k-1-gallery.zip",
		URL:         "/files/k-1-gallery.zip",
		Name:        "gallery.zip",
		Size:        9,
		ContentType: "application/zip",
	}, nil)

	event, err := s.deliverables.Upload(s.ctx, "ev-1", &service.UploadDeliverableRequest{
		Version:  1,
		Type:     models.DeliverableTypePhotos,
		FileName: "gallery.zip",
		File:     body,
	})
	s.Require().NoError(err)
	s.Require().Len(event.Deliverables, 1)

	d := event.Deliverables[0]
	s.Equal(models.DeliverableStatusPending, d.Status)
	s.Equal(models.DeliverableTypePhotos, d.Type)
	s.Require().NotNil(d.File)
	s.Equal("/files/k-1-gallery.zip", d.File.URL)
	s.Equal(int64(9), d.File.Size)
	s.Equal("application/zip", d.File.ContentType)
	s.Nil(d.CompletedDate)
}

func (s *DeliverableTrackerTestSuite) TestUploadRejectedBeforeStoring() {
	s.seed(defaultCrew(), newEvent("ev-1", models.StageProduction), newEvent("ev-2", models.StagePostProduction))

	_, err := s.deliverables.Upload(s.ctx, "ev-1", &service.UploadDeliverableRequest{
		Version: 1, Type: models.DeliverableTypePhotos, FileName: "a.jpg", File: strings.NewReader("x"),
	})
	s.ErrorIs(err, apperrors.ErrEventNotInPostProduction)

	_, err = s.deliverables.Upload(s.ctx, "ev-2", &service.UploadDeliverableRequest{
		Version: 9, Type: models.DeliverableTypePhotos, FileName: "a.jpg", File: strings.NewReader("x"),
	})
	s.ErrorIs(err, apperrors.ErrStaleUpdate)

	_, err = s.deliverables.Upload(s.ctx, "ev-2", &service.UploadDeliverableRequest{
		Version: 1, Type: models.DeliverableTypePhotos, FileName: "a.jpg",
	})
	s.True(apperrors.IsValidation(err))
}

func (s *DeliverableTrackerTestSuite) TestUploadCleansUpWhenSaveFails() {
	s.seed(defaultCrew(), newEvent("ev-1", models.StagePostProduction))
	s.uploader.EXPECT().Upload(gomock.Any(), "a.jpg", gomock.Any()).Return(&storage.Object{Key: "k-a.jpg", Name: "a.jpg"}, nil)
	s.eventRepo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1)).Return(errors.New("db down"))
	s.uploader.EXPECT().Delete(gomock.Any(), "k-a.jpg").Return(nil)

	_, err := s.deliverables.Upload(s.ctx, "ev-1", &service.UploadDeliverableRequest{
		Version: 1, Type: models.DeliverableTypePhotos, FileName: "a.jpg", File: strings.NewReader("x"),
	})
	s.True(apperrors.IsPersistence(err))
	s.Empty(s.get("ev-1").Deliverables)
}

func TestDeliverableTrackerTestSuite(t *testing.T) {
	suite.Run(t, new(DeliverableTrackerTestSuite))
}
