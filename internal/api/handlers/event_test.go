package handlers_test

import (
	"context"
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

// EventHandlerTestSuite defines the test suite for EventHandler
type EventHandlerTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	events *mocks.MockEventStoreInterface
	router *gin.Engine
}

func (suite *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.events = mocks.NewMockEventStoreInterface(suite.ctrl)
	handler := handlers.NewEventHandler(suite.events)

	suite.router = gin.New()
	suite.router.GET("/events", handler.ListEvents)
	suite.router.POST("/events", handler.CreateEvent)
	suite.router.GET("/events/:id", handler.GetEvent)
	suite.router.PUT("/events/:id", handler.UpdateEvent)
}

func (suite *EventHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EventHandlerTestSuite) TestListEvents_All() {
	suite.events.EXPECT().List().Return([]models.ScheduledEvent{*sampleEvent(1)})

	w := serve(suite.router, http.MethodGet, "/events", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got []models.ScheduledEvent
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got, 1)
	suite.Equal("ev-1", got[0].ID)
}

func (suite *EventHandlerTestSuite) TestListEvents_ByStage() {
	suite.events.EXPECT().ListByStage(gomock.Any(), models.StageProduction).Return([]models.ScheduledEvent{}, nil)

	w := serve(suite.router, http.MethodGet, "/events?stage=production", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *EventHandlerTestSuite) TestListEvents_InvalidStage() {
	suite.events.EXPECT().ListByStage(gomock.Any(), models.Stage("archived")).
		Return(nil, apperrors.NewValidationError("stage", "invalid stage"))

	w := serve(suite.router, http.MethodGet, "/events?stage=archived", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *EventHandlerTestSuite) TestGetEvent() {
	suite.events.EXPECT().Get(gomock.Any(), "ev-1").Return(sampleEvent(3), nil)
	w := serve(suite.router, http.MethodGet, "/events/ev-1", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(int64(3), decodeEvent(w).Version)

	suite.events.EXPECT().Get(gomock.Any(), "nope").Return(nil, apperrors.ErrEventNotFound)
	w = serve(suite.router, http.MethodGet, "/events/nope", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *EventHandlerTestSuite) TestCreateEvent() {
	suite.events.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.CreateEventRequest) (*models.ScheduledEvent, error) {
			suite.Equal("Silva wedding", req.Name)
			suite.Equal(2, req.PhotographersCount)
			return sampleEvent(1), nil
		})

	w := serve(suite.router, http.MethodPost, "/events",
		`{"name":"Silva wedding","date":"2024-03-15","photographers_count":2,"videographers_count":1}`)

	suite.Equal(http.StatusCreated, w.Code)
	event := decodeEvent(w)
	suite.Equal(models.StagePreProduction, event.Stage)
	suite.Equal(int64(1), event.Version)
}

func (suite *EventHandlerTestSuite) TestUpdateEvent_Stale() {
	suite.events.EXPECT().
		UpdateDetails(gomock.Any(), "ev-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req *service.UpdateEventRequest) (*models.ScheduledEvent, error) {
			suite.Equal(int64(2), req.Version)
			return nil, apperrors.ErrStaleUpdate
		})

	w := serve(suite.router, http.MethodPut, "/events/ev-1", `{"version":2,"name":"Silva wedding","date":"2024-03-16"}`)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal(apperrors.ErrStaleUpdate.Message, decodeError(w))
}

func TestEventHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}
