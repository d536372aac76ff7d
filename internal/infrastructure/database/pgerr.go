package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"academicevents/internal/domain"
)

// SQLSTATE codes this package reacts to.
const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// wrapErr attaches op to err. Configuration, connection and domain errors pass through
// with their type intact; anything else becomes a *domain.PersistenceError.
func wrapErr(op string, err error) error {
	var (
		connErr    *domain.ConnectionError
		persistErr *domain.PersistenceError
	)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrConfigurationMissing),
		errors.Is(err, domain.ErrConfigurationInvalid),
		errors.As(err, &connErr):
		return err
	case errors.Is(err, domain.ErrDuplicateRegistration),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrInvalidStatus):
		return fmt.Errorf("%s: %w", op, err)
	case errors.As(err, &persistErr):
		return err
	}
	return &domain.PersistenceError{Op: op, Err: err}
}

// mutationResult pairs a failed mutation with its classified result.
func mutationResult(op string, err error) (domain.Result, error) {
	err = wrapErr(op, err)
	return domain.ResultOf(err), err
}
