package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrConfigurationMissing        = errors.New("configuration source not found")
	ErrConfigurationInvalid        = errors.New("configuration value rejected")
	ErrNotFound                    = errors.New("not found")
	ErrEventNotFound               = fmt.Errorf("event %w", ErrNotFound)
	ErrParticipantNotFound         = fmt.Errorf("participant %w", ErrNotFound)
	ErrRegistrationNotFound        = fmt.Errorf("registration %w", ErrNotFound)
	ErrDuplicateRegistration       = errors.New("participant already has an active registration for this event")
	ErrInvalidStatus               = errors.New("unrecognised status value")
	ErrReferenceNotFound           = errors.New("referenced event or participant does not exist")
	ErrEventHasRegistrations       = errors.New("event still has registrations")
	ErrParticipantHasRegistrations = errors.New("participant still has registrations")
	ErrNoGeneratedKey              = errors.New("insert returned no generated key")
)

// ConnectionError reports a driver or network failure while opening a connection.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("database connection: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// PersistenceError reports a failed statement. Op names the repository operation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// FieldError is a single rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries every field rejected by input validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s %s", e.Fields[0].Field, e.Fields[0].Message)
}

// Code maps an error to a stable code used by adapters to pick a user-facing message.
// It returns "" for nil.
func Code(err error) string {
	if err == nil {
		return ""
	}
	var (
		connErr  *ConnectionError
		validErr *ValidationError
	)
	switch {
	case errors.Is(err, ErrConfigurationMissing):
		return "configuration_missing"
	case errors.Is(err, ErrConfigurationInvalid):
		return "configuration_invalid"
	case errors.As(err, &connErr):
		return "connection_failed"
	case errors.Is(err, ErrDuplicateRegistration):
		return "duplicate_registration"
	case errors.Is(err, ErrEventNotFound):
		return "event_not_found"
	case errors.Is(err, ErrParticipantNotFound):
		return "participant_not_found"
	case errors.Is(err, ErrRegistrationNotFound):
		return "registration_not_found"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidStatus):
		return "invalid_status"
	case errors.Is(err, ErrReferenceNotFound):
		return "reference_not_found"
	case errors.Is(err, ErrEventHasRegistrations):
		return "event_has_registrations"
	case errors.Is(err, ErrParticipantHasRegistrations):
		return "participant_has_registrations"
	case errors.As(err, &validErr):
		return "validation_failed"
	default:
		return "persistence_failed"
	}
}
