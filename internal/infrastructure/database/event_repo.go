package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
	"academicevents/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	db  *Provider
	now func() time.Time
}

func NewEventRepository(db *Provider) *EventRepository {
	return &EventRepository{db: db, now: time.Now}
}

// WithClock replaces the clock used by ListUpcoming.
func (r *EventRepository) WithClock(now func() time.Time) *EventRepository {
	r.now = now
	return r
}

func (r *EventRepository) list(ctx context.Context, op, query string, args ...any) ([]entities.Event, error) {
	var out []entities.Event
	err := r.db.With(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		out, err = pgx.CollectRows(rows, collectEvent)
		return err
	})
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return out, nil
}

func (r *EventRepository) ListAll(ctx context.Context) ([]entities.Event, error) {
	return r.list(ctx, "list events",
		`SELECT `+eventColumns+` FROM events ORDER BY start_date, event_id`)
}

func (r *EventRepository) ListByCategory(ctx context.Context, categoryID int64) ([]entities.Event, error) {
	return r.list(ctx, "list events by category",
		`SELECT `+eventColumns+` FROM events WHERE category_id = $1 ORDER BY start_date, event_id`,
		categoryID)
}

// ListUpcoming returns active events starting strictly after today.
func (r *EventRepository) ListUpcoming(ctx context.Context) ([]entities.Event, error) {
	return r.list(ctx, "list upcoming events",
		`SELECT `+eventColumns+` FROM events
		WHERE status = $1 AND start_date > $2
		ORDER BY start_date, event_id`,
		string(domain.EventActive), dateParam(r.now()))
}

// ListByDateRange returns events whose whole [start, end] span lies within [from, to].
func (r *EventRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.Event, error) {
	return r.list(ctx, "list events by date range",
		`SELECT `+eventColumns+` FROM events
		WHERE start_date >= $1 AND end_date <= $2
		ORDER BY start_date, event_id`,
		dateParam(from), dateParam(to))
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (entities.Event, bool, error) {
	var (
		event entities.Event
		found bool
	)
	err := r.db.With(ctx, func(q Querier) error {
		var err error
		event, err = scanEvent(q.QueryRow(ctx,
			`SELECT `+eventColumns+` FROM events WHERE event_id = $1`, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		found = err == nil
		return err
	})
	if err != nil {
		return entities.Event{}, false, wrapErr("get event by id", err)
	}
	return event, found, nil
}

// Create inserts an ACTIVE event and returns its generated id. Field ranges are the
// caller's responsibility.
func (r *EventRepository) Create(ctx context.Context, f entities.EventFields) (int64, error) {
	var id int64
	err := r.db.With(ctx, func(q Querier) error {
		err := q.QueryRow(ctx, `
			INSERT INTO events (event_name, description, start_date, end_date,
				registration_deadline, max_participants, registration_fee,
				category_id, location_id, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING event_id`,
			f.Name, f.Description, dateParam(f.StartDate), dateParam(f.EndDate),
			optionalDateParam(f.RegistrationDeadline), f.MaxParticipants, f.RegistrationFee,
			f.CategoryID, f.LocationID, string(domain.EventActive),
		).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNoGeneratedKey
		}
		return err
	})
	if err != nil {
		return 0, wrapErr("create event", err)
	}
	return id, nil
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id int64, status domain.EventStatus) (domain.Result, error) {
	if !status.Valid() {
		return domain.ValidationFailed, fmt.Errorf("update event status %q: %w", status, domain.ErrInvalidStatus)
	}
	var affected int64
	err := r.db.With(ctx, func(q Querier) error {
		tag, err := q.Exec(ctx, `UPDATE events SET status = $1 WHERE event_id = $2`, string(status), id)
		affected = tag.RowsAffected()
		return err
	})
	if err != nil {
		return mutationResult("update event status", err)
	}
	return domain.ResultFromRows(affected), nil
}

// Delete removes the event. Registrations are not cascaded; the foreign key blocks the
// delete while any exist.
func (r *EventRepository) Delete(ctx context.Context, id int64) (domain.Result, error) {
	var affected int64
	err := r.db.With(ctx, func(q Querier) error {
		tag, err := q.Exec(ctx, `DELETE FROM events WHERE event_id = $1`, id)
		if pgCode(err) == foreignKeyViolation {
			return &domain.PersistenceError{Op: "delete event", Err: fmt.Errorf("%w: %v", domain.ErrEventHasRegistrations, err)}
		}
		affected = tag.RowsAffected()
		return err
	})
	if err != nil {
		return mutationResult("delete event", err)
	}
	return domain.ResultFromRows(affected), nil
}
