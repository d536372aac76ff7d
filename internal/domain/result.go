package domain

import "errors"

// Result is the outcome of a mutation addressed by identity.
type Result int

const (
	Success Result = iota
	NotFound
	ValidationFailed
	ConnectionFailed
	PersistenceFailed
)

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case NotFound:
		return "not_found"
	case ValidationFailed:
		return "validation_failed"
	case ConnectionFailed:
		return "connection_failed"
	default:
		return "persistence_failed"
	}
}

// ResultFromRows turns an affected-row count into Success or NotFound.
func ResultFromRows(n int64) Result {
	if n == 0 {
		return NotFound
	}
	return Success
}

// ResultOf classifies a failed mutation. A nil error is a Success.
func ResultOf(err error) Result {
	var (
		connErr  *ConnectionError
		validErr *ValidationError
	)
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrConfigurationMissing), errors.Is(err, ErrConfigurationInvalid), errors.As(err, &connErr):
		return ConnectionFailed
	case errors.Is(err, ErrInvalidStatus), errors.As(err, &validErr):
		return ValidationFailed
	case errors.Is(err, ErrNotFound):
		return NotFound
	default:
		return PersistenceFailed
	}
}
