package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
	"academicevents/internal/ports/output"
)

var _ output.RegistrationRepository = (*RegistrationRepository)(nil)

type RegistrationRepository struct {
	db *Provider
}

func NewRegistrationRepository(db *Provider) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Most recent first.
const registrationOrder = ` ORDER BY registration_date DESC, registration_id DESC`

func (r *RegistrationRepository) list(ctx context.Context, op, query string, args ...any) ([]entities.Registration, error) {
	var out []entities.Registration
	err := r.db.With(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		out, err = pgx.CollectRows(rows, collectRegistration)
		return err
	})
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return out, nil
}

func (r *RegistrationRepository) ListAll(ctx context.Context) ([]entities.Registration, error) {
	return r.list(ctx, "list registrations",
		`SELECT `+registrationColumns+` FROM registrations`+registrationOrder)
}

func (r *RegistrationRepository) FindByID(ctx context.Context, id int64) (entities.Registration, bool, error) {
	var (
		reg   entities.Registration
		found bool
	)
	err := r.db.With(ctx, func(q Querier) error {
		var err error
		reg, err = scanRegistration(q.QueryRow(ctx,
			`SELECT `+registrationColumns+` FROM registrations WHERE registration_id = $1`, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		found = err == nil
		return err
	})
	if err != nil {
		return entities.Registration{}, false, wrapErr("get registration by id", err)
	}
	return reg, found, nil
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID int64) ([]entities.Registration, error) {
	return r.list(ctx, "list registrations by event",
		`SELECT `+registrationColumns+` FROM registrations WHERE event_id = $1`+registrationOrder, eventID)
}

func (r *RegistrationRepository) ListByParticipant(ctx context.Context, participantID int64) ([]entities.Registration, error) {
	return r.list(ctx, "list registrations by participant",
		`SELECT `+registrationColumns+` FROM registrations WHERE participant_id = $1`+registrationOrder, participantID)
}

func (r *RegistrationRepository) ListConfirmed(ctx context.Context) ([]entities.Registration, error) {
	return r.list(ctx, "list confirmed registrations",
		`SELECT `+registrationColumns+` FROM registrations WHERE status = $1`+registrationOrder,
		string(domain.StatusConfirmed))
}

// CountConfirmedForEvent counts CONFIRMED registrations only; PENDING ones are ignored.
func (r *RegistrationRepository) CountConfirmedForEvent(ctx context.Context, eventID int64) (int64, error) {
	var count int64
	err := r.db.With(ctx, func(q Querier) error {
		return q.QueryRow(ctx,
			`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status = $2`,
			eventID, string(domain.StatusConfirmed)).Scan(&count)
	})
	if err != nil {
		return 0, wrapErr("count confirmed registrations", err)
	}
	return count, nil
}

// Create registers a participant for an event as PENDING/PENDING.
//
// The participant row is locked for the duration of the transaction so concurrent
// creations for the same participant are serialised; the duplicate check then sees any
// registration committed by the previous holder. A unique violation from the partial
// index on (event_id, participant_id) is reported the same way.
func (r *RegistrationRepository) Create(ctx context.Context, eventID, participantID int64, notes string) (int64, error) {
	var id int64
	err := r.db.InTx(ctx, func(tx pgx.Tx) error {
		if err := lockActivePair(ctx, tx, eventID, participantID, 0); err != nil {
			return err
		}
		err := tx.QueryRow(ctx, `
			INSERT INTO registrations (event_id, participant_id, status, payment_status, notes)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''))
			RETURNING registration_id`,
			eventID, participantID, string(domain.StatusPending), string(domain.PaymentPending), notes,
		).Scan(&id)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return domain.ErrNoGeneratedKey
		case pgCode(err) == uniqueViolation:
			return domain.ErrDuplicateRegistration
		case pgCode(err) == foreignKeyViolation:
			return &domain.PersistenceError{Op: "insert registration", Err: fmt.Errorf("%w: %v", domain.ErrReferenceNotFound, err)}
		}
		return err
	})
	if err != nil {
		return 0, wrapErr("create registration", err)
	}
	return id, nil
}

// lockActivePair locks the participant row and fails with ErrDuplicateRegistration when
// another non-cancelled registration exists for the pair. excludeID skips the registration
// being updated; 0 excludes nothing.
func lockActivePair(ctx context.Context, tx pgx.Tx, eventID, participantID, excludeID int64) error {
	var locked int64
	err := tx.QueryRow(ctx,
		`SELECT participant_id FROM participants WHERE participant_id = $1 FOR UPDATE`,
		participantID).Scan(&locked)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrParticipantNotFound
	}
	if err != nil {
		return fmt.Errorf("lock participant: %w", err)
	}

	var exists bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM registrations
			WHERE event_id = $1 AND participant_id = $2 AND status <> $3 AND registration_id <> $4
		)`, eventID, participantID, string(domain.StatusCancelled), excludeID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check duplicate registration: %w", err)
	}
	if exists {
		return domain.ErrDuplicateRegistration
	}
	return nil
}

// UpdateStatus sets the registration status. Moving to CANCELLED is a plain update;
// any other target is checked against the pair's other active registrations first.
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id int64, status domain.RegistrationStatus) (domain.Result, error) {
	const op = "update registration status"
	if !status.Valid() {
		return domain.ValidationFailed, fmt.Errorf("update registration status %q: %w", status, domain.ErrInvalidStatus)
	}
	if status == domain.StatusCancelled {
		return r.exec(ctx, op,
			`UPDATE registrations SET status = $1 WHERE registration_id = $2`, string(status), id)
	}

	var affected int64
	err := r.db.InTx(ctx, func(tx pgx.Tx) error {
		var eventID, participantID int64
		err := tx.QueryRow(ctx,
			`SELECT event_id, participant_id FROM registrations WHERE registration_id = $1`,
			id).Scan(&eventID, &participantID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := lockActivePair(ctx, tx, eventID, participantID, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx,
			`UPDATE registrations SET status = $1 WHERE registration_id = $2`, string(status), id)
		if pgCode(err) == uniqueViolation {
			return fmt.Errorf("%w: %v", domain.ErrDuplicateRegistration, err)
		}
		affected = tag.RowsAffected()
		return err
	})
	if err != nil {
		return mutationResult(op, err)
	}
	return domain.ResultFromRows(affected), nil
}

func (r *RegistrationRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (domain.Result, error) {
	if !status.Valid() {
		return domain.ValidationFailed, fmt.Errorf("update payment status %q: %w", status, domain.ErrInvalidStatus)
	}
	return r.exec(ctx, "update payment status",
		`UPDATE registrations SET payment_status = $1 WHERE registration_id = $2`, string(status), id)
}

// Cancel marks the registration CANCELLED. Cancelling twice succeeds both times.
func (r *RegistrationRepository) Cancel(ctx context.Context, id int64) (domain.Result, error) {
	return r.UpdateStatus(ctx, id, domain.StatusCancelled)
}

// Delete removes the row, unlike Cancel which keeps it.
func (r *RegistrationRepository) Delete(ctx context.Context, id int64) (domain.Result, error) {
	return r.exec(ctx, "delete registration", `DELETE FROM registrations WHERE registration_id = $1`, id)
}

func (r *RegistrationRepository) exec(ctx context.Context, op, query string, args ...any) (domain.Result, error) {
	var affected int64
	err := r.db.With(ctx, func(q Querier) error {
		tag, err := q.Exec(ctx, query, args...)
		if pgCode(err) == uniqueViolation {
			return fmt.Errorf("%w: %v", domain.ErrDuplicateRegistration, err)
		}
		affected = tag.RowsAffected()
		return err
	})
	if err != nil {
		return mutationResult(op, err)
	}
	return domain.ResultFromRows(affected), nil
}
