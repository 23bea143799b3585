package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"studio-ops-backend/internal/api/handlers"
	"studio-ops-backend/internal/database/models"
	apperrors "studio-ops-backend/internal/errors"
	"studio-ops-backend/internal/mocks"
	"studio-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AssignmentHandlerTestSuite defines the test suite for AssignmentHandler
type AssignmentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	events      *mocks.MockEventStoreInterface
	assignments *mocks.MockAssignmentServiceInterface
	router      *gin.Engine
}

func (suite *AssignmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.events = mocks.NewMockEventStoreInterface(suite.ctrl)
	suite.assignments = mocks.NewMockAssignmentServiceInterface(suite.ctrl)
	handler := handlers.NewAssignmentHandler(suite.events, suite.assignments)

	suite.router = gin.New()
	suite.router.GET("/events/:id/candidates", handler.ListCandidates)
	suite.router.GET("/events/:id/assignments/counts", handler.GetCounts)
	suite.router.POST("/events/:id/assignments", handler.Assign)
	suite.router.PUT("/events/:id/assignments/:memberId", handler.UpdateStatus)
	suite.router.DELETE("/events/:id/assignments/:memberId", handler.Unassign)
}

func (suite *AssignmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentHandlerTestSuite) TestListCandidates() {
	event := sampleEvent(1)
	suite.events.EXPECT().Get(gomock.Any(), "ev-1").Return(event, nil)
	suite.assignments.EXPECT().CanAssignMore(event, models.TeamRolePhotographer).Return(true)
	suite.assignments.EXPECT().EligibleCandidates(event, models.TeamRolePhotographer).Return([]models.TeamMember{
		{BaseModel: models.BaseModel{ID: "tm-1"}, Name: "Ana", Role: models.TeamRolePhotographer},
	})

	w := serve(suite.router, http.MethodGet, "/events/ev-1/candidates?role=photographer", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got handlers.CandidatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.True(got.CanAssignMore)
	suite.Len(got.Candidates, 1)
	suite.Equal("tm-1", got.Candidates[0].ID)
}

func (suite *AssignmentHandlerTestSuite) TestListCandidates_InvalidRole() {
	w := serve(suite.router, http.MethodGet, "/events/ev-1/candidates?role=pilot", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestGetCounts() {
	event := sampleEvent(2)
	suite.events.EXPECT().Get(gomock.Any(), "ev-1").Return(event, nil)
	suite.assignments.EXPECT().Counts(event).Return(service.AssignmentCounts{
		RequiredPhotographers: 2,
		RequiredVideographers: 1,
		AcceptedPhotographers: 2,
		AcceptedVideographers: 1,
		Accepted:              3,
		Total:                 3,
	})

	w := serve(suite.router, http.MethodGet, "/events/ev-1/assignments/counts", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(true, got["crew_complete"])
	suite.Equal(float64(2), got["accepted_photographers"])
}

func (suite *AssignmentHandlerTestSuite) TestAssign() {
	suite.assignments.EXPECT().
		Assign(gomock.Any(), "ev-1", &service.AssignRequest{Version: 1, TeamMemberID: "tm-1", Role: models.TeamRolePhotographer}).
		Return(sampleEvent(2), nil)

	w := serve(suite.router, http.MethodPost, "/events/ev-1/assignments",
		`{"version":1,"team_member_id":"tm-1","role":"photographer"}`)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal(int64(2), decodeEvent(w).Version)
}

func (suite *AssignmentHandlerTestSuite) TestAssign_Errors() {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"already assigned", apperrors.ErrAlreadyAssigned, http.StatusConflict},
		{"unavailable", apperrors.ErrUnavailable, http.StatusConflict},
		{"quota reached", apperrors.ErrQuotaReached, http.StatusConflict},
		{"role mismatch", apperrors.ErrRoleMismatch, http.StatusBadRequest},
		{"member not found", apperrors.ErrTeamMemberNotFound, http.StatusNotFound},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.assignments.EXPECT().Assign(gomock.Any(), "ev-1", gomock.Any()).Return(nil, tc.err)

			w := serve(suite.router, http.MethodPost, "/events/ev-1/assignments",
				`{"version":1,"team_member_id":"tm-1","role":"photographer"}`)

			suite.Equal(tc.expected, w.Code)
		})
	}
}

func (suite *AssignmentHandlerTestSuite) TestUpdateStatus() {
	suite.assignments.EXPECT().
		UpdateStatus(gomock.Any(), "ev-1", "tm-1", &service.UpdateAssignmentStatusRequest{Version: 2, Status: models.AssignmentStatusAccepted}).
		Return(sampleEvent(3), nil)

	w := serve(suite.router, http.MethodPut, "/events/ev-1/assignments/tm-1", `{"version":2,"status":"accepted"}`)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestUnassign() {
	suite.assignments.EXPECT().Unassign(gomock.Any(), "ev-1", "tm-1", int64(4)).Return(sampleEvent(5), nil)
	w := serve(suite.router, http.MethodDelete, "/events/ev-1/assignments/tm-1?version=4", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = serve(suite.router, http.MethodDelete, "/events/ev-1/assignments/tm-1", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestAssignmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentHandlerTestSuite))
}
