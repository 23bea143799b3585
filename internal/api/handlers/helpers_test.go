package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"

	"studio-ops-backend/internal/api/handlers"
	"studio-ops-backend/internal/database/models"

	"github.com/gin-gonic/gin"
)

func serve(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, _ := json.Marshal(b)
		reader = bytes.NewBuffer(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(w *httptest.ResponseRecorder) string {
	var resp handlers.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp.Error
}

func decodeEvent(w *httptest.ResponseRecorder) models.ScheduledEvent {
	var event models.ScheduledEvent
	_ = json.Unmarshal(w.Body.Bytes(), &event)
	return event
}

func sampleEvent(version int64) *models.ScheduledEvent {
	return &models.ScheduledEvent{
		BaseModel:          models.BaseModel{ID: "ev-1"},
		Name:               "Silva wedding",
		Date:               "2024-03-15",
		PhotographersCount: 2,
		VideographersCount: 1,
		Stage:              models.StagePreProduction,
		Version:            version,
	}
}
