package entities

import (
	"time"

	"academicevents/internal/domain"
)

// Registration links a participant to an event.
type Registration struct {
	ID            int64
	EventID       int64
	ParticipantID int64
	RegisteredAt  time.Time
	Status        domain.RegistrationStatus
	PaymentStatus domain.PaymentStatus
	Notes         string
}

// Active reports whether the registration counts against the one-per-pair rule.
func (r Registration) Active() bool {
	return r.Status != domain.StatusCancelled
}
