package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "event"}
		assert.Equal(t, "event not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "event"}
		err2 := &NotFoundError{Entity: "event"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrEventNotFound, ErrTeamMemberNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrAssignmentNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrDeliverableNotFound)))
		assert.False(t, IsNotFound(ErrAlreadyAssigned))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("errors.Is compares by code", func(t *testing.T) {
		err := &ValidationError{Code: "invalid_duration", Field: "hours", Message: "got -1"}
		assert.True(t, errors.Is(err, ErrInvalidDuration))
		assert.False(t, errors.Is(err, ErrRoleMismatch))
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.True(t, IsValidation(ErrRoleMismatch))
		assert.False(t, IsValidation(ErrEventNotFound))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "team member is already assigned to this event", ErrAlreadyAssigned.Error())
	})

	t.Run("Invalid transition carries states and matches sentinel", func(t *testing.T) {
		err := NewInvalidTransitionError("pending", "completed")
		assert.Contains(t, err.Error(), `"pending"`)
		assert.Contains(t, err.Error(), `"completed"`)
		assert.True(t, errors.Is(err, ErrInvalidTransition))
		assert.False(t, errors.Is(err, ErrStaleUpdate))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrIncompleteDeliverables))
		assert.True(t, IsConflict(fmt.Errorf("complete event: %w", ErrStaleUpdate)))
		assert.False(t, IsConflict(ErrInvalidDuration))
	})
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewPersistenceError("save event", cause)

	assert.Equal(t, "persistence error: save event: connection refused", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsPersistence(err))
	assert.False(t, IsPersistence(cause))
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("missing")
	assert.Equal(t, "missing", err.Error())
	assert.True(t, IsConfiguration(err))
	assert.True(t, IsConfiguration(ErrSMTPConfigMissing))
	assert.False(t, IsConfiguration(ErrEventNotFound))
}
