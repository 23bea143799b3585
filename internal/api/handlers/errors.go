package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "studio-ops-backend/internal/errors"
	"studio-ops-backend/internal/logger"
	"studio-ops-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// VersionRequest carries the event version a command was prepared against
type VersionRequest struct {
	Version int64 `json:"version" binding:"required,min=1" example:"3"`
}

// statusFor maps workflow errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsConflict(err):
		return http.StatusConflict
	case apperrors.IsPersistence(err):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("Unhandled request error")
		message = "internal server error"
	}
	_ = c.Error(err)
	c.JSON(status, ErrorResponse{Error: message})
}

// versionQuery reads the base version of commands sent without a body
func versionQuery(c *gin.Context) (int64, bool) {
	version, err := strconv.ParseInt(c.Query("version"), 10, 64)
	if err != nil || version < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "version query parameter is required"})
		return 0, false
	}
	return version, true
}
