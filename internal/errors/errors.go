package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error.
// Code is optional; when set on both sides errors.Is compares by code.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for coded ValidationErrors
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	if t.Code == "" {
		return e.Field == t.Field && e.Message == t.Message
	}
	return e.Code == t.Code
}

// ConflictError represents an operation rejected because of the current state
// of the entity: duplicate assignments, invalid transitions, unmet gates.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError by code
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// PersistenceError wraps a failed call to the backing store
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrEventNotFound       = &NotFoundError{Entity: "event"}
	ErrTeamMemberNotFound  = &NotFoundError{Entity: "team member"}
	ErrAssignmentNotFound  = &NotFoundError{Entity: "assignment"}
	ErrDeliverableNotFound = &NotFoundError{Entity: "deliverable"}
)

// Conflict Errors
var (
	ErrAlreadyAssigned          = &ConflictError{Code: "already_assigned", Message: "team member is already assigned to this event"}
	ErrUnavailable              = &ConflictError{Code: "unavailable", Message: "team member is not available on the event date"}
	ErrQuotaReached             = &ConflictError{Code: "quota_reached", Message: "required number of team members for this role is already accepted"}
	ErrEventCompleted           = &ConflictError{Code: "event_completed", Message: "event is completed"}
	ErrInvalidTransition        = &ConflictError{Code: "invalid_transition", Message: "invalid state transition"}
	ErrIncompleteDeliverables   = &ConflictError{Code: "incomplete_deliverables", Message: "all deliverables must be completed before completing the event"}
	ErrCrewIncomplete           = &ConflictError{Code: "crew_incomplete", Message: "accepted crew does not meet the required counts"}
	ErrEventNotInPostProduction = &ConflictError{Code: "not_in_post_production", Message: "event is not in post-production"}
	ErrStaleUpdate              = &ConflictError{Code: "stale_update", Message: "event was modified by another update, reload and retry"}
	ErrMemberInUse              = &ConflictError{Code: "member_in_use", Message: "team member has active assignments"}
	ErrRoleInUse                = &ConflictError{Code: "role_in_use", Message: "team member role cannot change while they have active assignments"}
)

// Validation Errors
var (
	ErrRoleMismatch          = &ValidationError{Code: "role_mismatch", Field: "role", Message: "team member role does not match the requested role"}
	ErrInvalidDuration       = &ValidationError{Code: "invalid_duration", Field: "hours", Message: "hours must be greater than zero"}
	ErrNoAcceptedAssignments = &ValidationError{Code: "no_accepted_assignments", Message: "event has no accepted assignments"}
	ErrInvalidDate           = &ValidationError{Code: "invalid_date", Field: "date", Message: "date must be formatted as YYYY-MM-DD"}
	ErrInvalidStatus         = &ValidationError{Code: "invalid_status", Field: "status", Message: "invalid status"}
	ErrInvalidRole           = &ValidationError{Code: "invalid_role", Field: "role", Message: "invalid role"}
)

// Configuration Errors
var (
	ErrSMTPConfigMissing = &ConfigurationError{Message: "SMTP_FROM is required when SMTP_HOST is set"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistenceErr *PersistenceError
	return errors.As(err, &persistenceErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(code, message string) error {
	return &ConflictError{Code: code, Message: message}
}

// NewInvalidTransitionError reports a rejected from -> to transition.
// It matches ErrInvalidTransition with errors.Is.
func NewInvalidTransitionError(from, to string) error {
	return &ConflictError{
		Code:    ErrInvalidTransition.Code,
		Message: fmt.Sprintf("invalid state transition from %q to %q", from, to),
	}
}

// NewPersistenceError wraps a store failure for the given operation
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
