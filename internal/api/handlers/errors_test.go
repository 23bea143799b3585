package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "studio-ops-backend/internal/errors"
	"studio-ops-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", apperrors.ErrInvalidRole, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("assign: %w", apperrors.ErrRoleMismatch), http.StatusBadRequest},
		{"not found", apperrors.ErrEventNotFound, http.StatusNotFound},
		{"conflict", apperrors.ErrStaleUpdate, http.StatusConflict},
		{"transition", apperrors.NewInvalidTransitionError("pending", "completed"), http.StatusConflict},
		{"persistence", &apperrors.PersistenceError{Op: "update event", Err: errors.New("connection refused")}, http.StatusServiceUnavailable},
		{"file too large", storage.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, statusFor(tc.err))
		})
	}
}

func TestRespondErrorHidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/boom", func(c *gin.Context) {
		respondError(c, errors.New("pq: password authentication failed"))
	})
	router.GET("/missing", func(c *gin.Context) {
		respondError(c, apperrors.ErrEventNotFound)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"event not found"}`, w.Body.String())
}

func TestVersionQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/thing", func(c *gin.Context) {
		version, ok := versionQuery(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"version": version})
	})

	for _, query := range []string{"", "?version=abc", "?version=0"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/thing"+query, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/thing?version=7", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"version":7}`, w.Body.String())
}
