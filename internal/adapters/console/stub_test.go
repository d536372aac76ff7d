package console

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
)

// keyTranslator renders the message key followed by its template data.
type keyTranslator struct{}

func (keyTranslator) T(_, key string, data map[string]any) string {
	if id, ok := data["ID"]; ok {
		return fmt.Sprint(key, " ", id)
	}
	return key
}

// stubUseCases implements every input port and records what the shell sent.
type stubUseCases struct {
	events        []entities.Event
	createdEvent  *entities.EventFields
	createdPerson *entities.ParticipantFields
	deletedEvents []int64
	registered    [][2]int64
	statusUpdates map[int64]domain.RegistrationStatus
	err           error
	result        domain.Result
}

func newStub() *stubUseCases {
	return &stubUseCases{statusUpdates: make(map[int64]domain.RegistrationStatus)}
}

func (s *stubUseCases) ListEvents(context.Context) ([]entities.Event, error) { return s.events, s.err }
func (s *stubUseCases) ListUpcomingEvents(context.Context) ([]entities.Event, error) {
	return s.events, s.err
}
func (s *stubUseCases) ListEventsByCategory(context.Context, int64) ([]entities.Event, error) {
	return s.events, s.err
}
func (s *stubUseCases) ListEventsByDateRange(context.Context, time.Time, time.Time) ([]entities.Event, error) {
	return s.events, s.err
}
func (s *stubUseCases) GetEvent(context.Context, int64) (*entities.Event, error) {
	return nil, domain.ErrEventNotFound
}
func (s *stubUseCases) CreateEvent(_ context.Context, f entities.EventFields) (int64, error) {
	s.createdEvent = &f
	return 11, s.err
}
func (s *stubUseCases) UpdateEventStatus(context.Context, int64, domain.EventStatus) (domain.Result, error) {
	return s.result, s.err
}
func (s *stubUseCases) DeleteEvent(_ context.Context, id int64) (domain.Result, error) {
	s.deletedEvents = append(s.deletedEvents, id)
	return s.result, s.err
}

func (s *stubUseCases) ListParticipants(context.Context) ([]entities.Participant, error) {
	return nil, s.err
}
func (s *stubUseCases) FindParticipantByEmail(_ context.Context, email string) (*entities.Participant, error) {
	if email == "ada@example.org" {
		return &entities.Participant{ID: 3, FirstName: "Ada", LastName: "Lovelace", Email: email, Type: domain.TypeResearcher}, nil
	}
	return nil, s.err
}
func (s *stubUseCases) ListParticipantsByType(context.Context, domain.ParticipantType) ([]entities.Participant, error) {
	return nil, s.err
}
func (s *stubUseCases) ListParticipantsByInstitution(context.Context, string) ([]entities.Participant, error) {
	return nil, s.err
}
func (s *stubUseCases) CreateParticipant(_ context.Context, f entities.ParticipantFields) (int64, error) {
	s.createdPerson = &f
	return 5, s.err
}
func (s *stubUseCases) UpdateParticipant(context.Context, int64, entities.ParticipantFields) (domain.Result, error) {
	return s.result, s.err
}
func (s *stubUseCases) DeleteParticipant(context.Context, int64) (domain.Result, error) {
	return s.result, s.err
}

func (s *stubUseCases) ListRegistrations(context.Context) ([]entities.Registration, error) {
	return nil, s.err
}
func (s *stubUseCases) ListRegistrationsByEvent(context.Context, int64) ([]entities.Registration, error) {
	return nil, s.err
}
func (s *stubUseCases) ListRegistrationsByParticipant(context.Context, int64) ([]entities.Registration, error) {
	return nil, s.err
}
func (s *stubUseCases) ConfirmedCount(context.Context, int64) (int64, error) { return 0, nil }
func (s *stubUseCases) Register(_ context.Context, eventID, participantID int64, _ string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.registered = append(s.registered, [2]int64{eventID, participantID})
	return 21, nil
}
func (s *stubUseCases) UpdateRegistrationStatus(_ context.Context, id int64, status domain.RegistrationStatus) (domain.Result, error) {
	s.statusUpdates[id] = status
	return s.result, s.err
}
func (s *stubUseCases) UpdatePaymentStatus(context.Context, int64, domain.PaymentStatus) (domain.Result, error) {
	return s.result, s.err
}
func (s *stubUseCases) ConfirmRegistration(ctx context.Context, id int64) (domain.Result, error) {
	return s.UpdateRegistrationStatus(ctx, id, domain.StatusConfirmed)
}
func (s *stubUseCases) MarkRegistrationPaid(context.Context, int64) (domain.Result, error) {
	return s.result, s.err
}
func (s *stubUseCases) CancelRegistration(ctx context.Context, id int64) (domain.Result, error) {
	return s.UpdateRegistrationStatus(ctx, id, domain.StatusCancelled)
}
func (s *stubUseCases) DeleteRegistration(context.Context, int64) (domain.Result, error) {
	return s.result, s.err
}

func (s *stubUseCases) EventSummary(context.Context) (*entities.EventSummary, error) {
	return &entities.EventSummary{
		Total:    2,
		Upcoming: 1,
		ByStatus: []entities.Count{{Key: "ACTIVE", Count: 2}},
		Next:     []entities.EventHeadline{{ID: 1, Name: "Symposium", StartDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)}},
	}, s.err
}
func (s *stubUseCases) ParticipantSummary(context.Context) (*entities.ParticipantSummary, error) {
	return &entities.ParticipantSummary{}, s.err
}
func (s *stubUseCases) RegistrationSummary(context.Context) (*entities.RegistrationSummary, error) {
	return &entities.RegistrationSummary{}, s.err
}
func (s *stubUseCases) Revenue(context.Context) (*entities.RevenueReport, error) {
	return &entities.RevenueReport{TotalPotential: decimal.RequireFromString("100"), TotalPaid: decimal.Zero}, s.err
}
func (s *stubUseCases) Capacity(context.Context) ([]entities.EventCapacity, error) {
	return nil, s.err
}
