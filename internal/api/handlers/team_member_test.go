package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
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

// TeamMemberHandlerTestSuite defines the test suite for TeamMemberHandler
type TeamMemberHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	directory *mocks.MockTeamDirectoryInterface
	router    *gin.Engine
}

func (suite *TeamMemberHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.directory = mocks.NewMockTeamDirectoryInterface(suite.ctrl)
	handler := handlers.NewTeamMemberHandler(suite.directory)

	suite.router = gin.New()
	suite.router.GET("/team-members", handler.ListTeamMembers)
	suite.router.POST("/team-members", handler.CreateTeamMember)
	suite.router.GET("/team-members/:id", handler.GetTeamMember)
	suite.router.PUT("/team-members/:id", handler.UpdateTeamMember)
	suite.router.DELETE("/team-members/:id", handler.DeleteTeamMember)
	suite.router.PUT("/team-members/:id/availability", handler.SetAvailability)
}

func (suite *TeamMemberHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamMemberHandlerTestSuite) TestListTeamMembers() {
	suite.directory.EXPECT().List().Return([]models.TeamMember{
		{BaseModel: models.BaseModel{ID: "tm-1"}, Name: "Ana", Role: models.TeamRolePhotographer},
		{BaseModel: models.BaseModel{ID: "tm-2"}, Name: "Bruno", Role: models.TeamRoleVideographer},
	})

	w := serve(suite.router, http.MethodGet, "/team-members", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got []models.TeamMember
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got, 2)
	suite.Equal("Ana", got[0].Name)
}

func (suite *TeamMemberHandlerTestSuite) TestGetTeamMember_NotFound() {
	suite.directory.EXPECT().Get("missing").Return(nil, apperrors.ErrTeamMemberNotFound)

	w := serve(suite.router, http.MethodGet, "/team-members/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("team member not found", decodeError(w))
}

func (suite *TeamMemberHandlerTestSuite) TestCreateTeamMember_Success() {
	suite.directory.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.UpsertTeamMemberRequest) (*models.TeamMember, error) {
			suite.Equal("", req.ID)
			suite.Equal("Ana", req.Name)
			suite.Equal(models.TeamRolePhotographer, req.Role)
			suite.Equal(models.AvailabilityBusy, req.Availability.StatusOn("2024-03-15"))
			return &models.TeamMember{BaseModel: models.BaseModel{ID: "generated"}, Name: req.Name, Role: req.Role}, nil
		})

	w := serve(suite.router, http.MethodPost, "/team-members",
		`{"name":"Ana","role":"photographer","availability":{"2024-03-15":"busy"}}`)

	suite.Equal(http.StatusCreated, w.Code)
	var got models.TeamMember
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("generated", got.ID)
}

func (suite *TeamMemberHandlerTestSuite) TestCreateTeamMember_InvalidJSON() {
	w := serve(suite.router, http.MethodPost, "/team-members", `{"name":`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TeamMemberHandlerTestSuite) TestCreateTeamMember_InvalidRole() {
	suite.directory.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidRole)

	w := serve(suite.router, http.MethodPost, "/team-members", `{"name":"Ana","role":"pilot"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(decodeError(w), "invalid role")
}

func (suite *TeamMemberHandlerTestSuite) TestUpdateTeamMember_UsesPathID() {
	suite.directory.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.UpsertTeamMemberRequest) (*models.TeamMember, error) {
			suite.Equal("tm-1", req.ID)
			return &models.TeamMember{BaseModel: models.BaseModel{ID: req.ID}, Name: req.Name, Role: req.Role}, nil
		})

	w := serve(suite.router, http.MethodPut, "/team-members/tm-1", `{"id":"other","name":"Ana","role":"editor"}`)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *TeamMemberHandlerTestSuite) TestUpdateTeamMember_StorageDown() {
	suite.directory.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewPersistenceError("save team member", errors.New("connection reset")))

	w := serve(suite.router, http.MethodPut, "/team-members/tm-1", `{"name":"Ana","role":"editor"}`)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *TeamMemberHandlerTestSuite) TestUpdateTeamMember_RoleInUse() {
	suite.directory.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrRoleInUse)

	w := serve(suite.router, http.MethodPut, "/team-members/tm-4", `{"name":"Duarte","role":"photographer"}`)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal(apperrors.ErrRoleInUse.Message, decodeError(w))
}

func (suite *TeamMemberHandlerTestSuite) TestDeleteTeamMember() {
	suite.directory.EXPECT().Remove(gomock.Any(), "tm-1").Return(nil)
	w := serve(suite.router, http.MethodDelete, "/team-members/tm-1", nil)
	suite.Equal(http.StatusNoContent, w.Code)

	suite.directory.EXPECT().Remove(gomock.Any(), "tm-2").Return(apperrors.ErrMemberInUse)
	w = serve(suite.router, http.MethodDelete, "/team-members/tm-2", nil)
	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal(apperrors.ErrMemberInUse.Message, decodeError(w))
}

func (suite *TeamMemberHandlerTestSuite) TestSetAvailability() {
	suite.directory.EXPECT().
		SetAvailability(gomock.Any(), "tm-1", &service.SetAvailabilityRequest{Date: "2024-03-15", Status: models.AvailabilityUnavailable}).
		Return(&models.TeamMember{
			BaseModel:    models.BaseModel{ID: "tm-1"},
			Availability: models.Availability{"2024-03-15": models.AvailabilityUnavailable},
		}, nil)

	w := serve(suite.router, http.MethodPut, "/team-members/tm-1/availability", `{"date":"2024-03-15","status":"unavailable"}`)

	suite.Equal(http.StatusOK, w.Code)
	var got models.TeamMember
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.False(got.Availability.IsAvailableOn("2024-03-15"))
}

func TestTeamMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberHandlerTestSuite))
}
