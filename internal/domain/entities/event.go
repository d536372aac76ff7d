package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"academicevents/internal/domain"
)

// Event is an academic event as stored in the events table.
type Event struct {
	ID                   int64
	Name                 string
	Description          string
	StartDate            time.Time
	EndDate              time.Time
	RegistrationDeadline *time.Time // nil = no deadline
	MaxParticipants      int
	RegistrationFee      decimal.Decimal
	CategoryID           int64
	LocationID           int64
	Status               domain.EventStatus
}

// IsUpcoming reports whether the event is active and starts strictly after the day of now.
func (e Event) IsUpcoming(now time.Time) bool {
	return e.Status == domain.EventActive && e.StartDate.After(DateOf(now))
}

// Within reports whether [StartDate, EndDate] lies inside [from, to], bounds included.
func (e Event) Within(from, to time.Time) bool {
	return !e.StartDate.Before(DateOf(from)) && !e.EndDate.After(DateOf(to))
}

// EventFields holds the caller-supplied columns of a new event.
type EventFields struct {
	Name                 string          `validate:"required,max=200"`
	Description          string          `validate:"max=4000"`
	StartDate            time.Time       `validate:"required"`
	EndDate              time.Time       `validate:"required,gtefield=StartDate"`
	RegistrationDeadline *time.Time      `validate:"omitempty"`
	MaxParticipants      int             `validate:"gt=0"`
	RegistrationFee      decimal.Decimal `validate:"nonnegative"`
	CategoryID           int64           `validate:"gt=0"`
	LocationID           int64           `validate:"gt=0"`
}

// DateOf truncates t to midnight UTC of its calendar day. Dates read from DATE columns
// carry no zone, so comparisons are done on the calendar day alone.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
