package database

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
)

// Column lists shared by every SELECT. Nullable text columns are coalesced so rows scan
// into plain Go values; the fee is read as text to keep it exact.
const (
	eventColumns = `event_id, event_name, COALESCE(description, ''), start_date, end_date,
		registration_deadline, max_participants, registration_fee::text,
		COALESCE(category_id, 0), COALESCE(location_id, 0), status`

	participantColumns = `participant_id, first_name, last_name, email,
		COALESCE(phone, ''), COALESCE(institution, ''), participant_type`

	registrationColumns = `registration_id, event_id, participant_id, registration_date,
		status, payment_status, COALESCE(notes, '')`
)

type eventRow struct {
	ID                   int64
	Name                 string
	Description          string
	StartDate            time.Time
	EndDate              time.Time
	RegistrationDeadline *time.Time
	MaxParticipants      int64
	RegistrationFee      string
	CategoryID           int64
	LocationID           int64
	Status               string
}

type participantRow struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Institution string
	Type        string
}

type registrationRow struct {
	ID            int64
	EventID       int64
	ParticipantID int64
	RegisteredAt  time.Time
	Status        string
	PaymentStatus string
	Notes         string
}

func scanEvent(row pgx.Row) (entities.Event, error) {
	var r eventRow
	if err := row.Scan(&r.ID, &r.Name, &r.Description, &r.StartDate, &r.EndDate,
		&r.RegistrationDeadline, &r.MaxParticipants, &r.RegistrationFee,
		&r.CategoryID, &r.LocationID, &r.Status); err != nil {
		return entities.Event{}, err
	}
	return eventToDomain(r)
}

func scanParticipant(row pgx.Row) (entities.Participant, error) {
	var r participantRow
	if err := row.Scan(&r.ID, &r.FirstName, &r.LastName, &r.Email,
		&r.Phone, &r.Institution, &r.Type); err != nil {
		return entities.Participant{}, err
	}
	return participantToDomain(r)
}

func scanRegistration(row pgx.Row) (entities.Registration, error) {
	var r registrationRow
	if err := row.Scan(&r.ID, &r.EventID, &r.ParticipantID, &r.RegisteredAt,
		&r.Status, &r.PaymentStatus, &r.Notes); err != nil {
		return entities.Registration{}, err
	}
	return registrationToDomain(r)
}

// Row-to-function adapters for pgx.CollectRows.
func collectEvent(row pgx.CollectableRow) (entities.Event, error)             { return scanEvent(row) }
func collectParticipant(row pgx.CollectableRow) (entities.Participant, error) { return scanParticipant(row) }
func collectRegistration(row pgx.CollectableRow) (entities.Registration, error) {
	return scanRegistration(row)
}

func eventToDomain(r eventRow) (entities.Event, error) {
	fee, err := decimal.NewFromString(r.RegistrationFee)
	if err != nil {
		return entities.Event{}, fmt.Errorf("event %d: registration_fee %q: %w", r.ID, r.RegistrationFee, err)
	}
	if r.Name == "" {
		return entities.Event{}, fmt.Errorf("event %d: empty event_name", r.ID)
	}
	var deadline *time.Time
	if r.RegistrationDeadline != nil {
		d := entities.DateOf(*r.RegistrationDeadline)
		deadline = &d
	}
	return entities.Event{
		ID:                   r.ID,
		Name:                 r.Name,
		Description:          r.Description,
		StartDate:            entities.DateOf(r.StartDate),
		EndDate:              entities.DateOf(r.EndDate),
		RegistrationDeadline: deadline,
		MaxParticipants:      int(r.MaxParticipants),
		RegistrationFee:      fee,
		CategoryID:           r.CategoryID,
		LocationID:           r.LocationID,
		// Rows written before statuses were validated may hold other values; they are kept verbatim.
		Status: domain.EventStatus(r.Status),
	}, nil
}

func participantToDomain(r participantRow) (entities.Participant, error) {
	if r.Email == "" {
		return entities.Participant{}, fmt.Errorf("participant %d: empty email", r.ID)
	}
	return entities.Participant{
		ID:          r.ID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		Institution: r.Institution,
		Type:        domain.ParticipantType(r.Type),
	}, nil
}

func registrationToDomain(r registrationRow) (entities.Registration, error) {
	if r.RegisteredAt.IsZero() {
		return entities.Registration{}, fmt.Errorf("registration %d: missing registration_date", r.ID)
	}
	return entities.Registration{
		ID:            r.ID,
		EventID:       r.EventID,
		ParticipantID: r.ParticipantID,
		RegisteredAt:  r.RegisteredAt,
		Status:        domain.RegistrationStatus(r.Status),
		PaymentStatus: domain.PaymentStatus(r.PaymentStatus),
		Notes:         r.Notes,
	}, nil
}

// dateParam converts a calendar date to the value bound to DATE parameters.
func dateParam(t time.Time) time.Time {
	return entities.DateOf(t)
}

func optionalDateParam(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := entities.DateOf(*t)
	return &d
}
