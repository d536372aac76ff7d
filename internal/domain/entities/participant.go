package entities

import "academicevents/internal/domain"

// Participant is a person who can register for events.
type Participant struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Institution string
	Type        domain.ParticipantType
}

func (p Participant) FullName() string {
	return p.FirstName + " " + p.LastName
}

// ParticipantFields holds every writable column; updates replace all of them.
type ParticipantFields struct {
	FirstName   string                 `validate:"required,max=100"`
	LastName    string                 `validate:"required,max=100"`
	Email       string                 `validate:"required,email"`
	Phone       string                 `validate:"max=40"`
	Institution string                 `validate:"max=200"`
	Type        domain.ParticipantType `validate:"required,participant_type"`
}
