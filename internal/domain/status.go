package domain

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	EventActive    EventStatus = "ACTIVE"
	EventCancelled EventStatus = "CANCELLED"
	EventCompleted EventStatus = "COMPLETED"
)

// Valid reports whether s is one of the recognised event states.
func (s EventStatus) Valid() bool {
	switch s {
	case EventActive, EventCancelled, EventCompleted:
		return true
	}
	return false
}

// ParticipantType classifies a participant.
type ParticipantType string

const (
	TypeStudent    ParticipantType = "STUDENT"
	TypeProfessor  ParticipantType = "PROFESSOR"
	TypeResearcher ParticipantType = "RESEARCHER"
	TypeOther      ParticipantType = "OTHER"
)

func (t ParticipantType) Valid() bool {
	switch t {
	case TypeStudent, TypeProfessor, TypeResearcher, TypeOther:
		return true
	}
	return false
}

// RegistrationStatus is the state of a registration.
type RegistrationStatus string

const (
	StatusPending   RegistrationStatus = "PENDING"
	StatusConfirmed RegistrationStatus = "CONFIRMED"
	StatusCancelled RegistrationStatus = "CANCELLED"
)

func (s RegistrationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// PaymentStatus tracks whether a registration fee was collected.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}
