package application

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
	"academicevents/internal/ports/input"
	"academicevents/internal/ports/output"
)

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	eventRepo output.EventRepository
	log       zerolog.Logger
}

func NewEventService(eventRepo output.EventRepository, log zerolog.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		log:       log.With().Str("service", "event").Logger(),
	}
}

func (s *EventService) ListEvents(ctx context.Context) ([]entities.Event, error) {
	return s.eventRepo.ListAll(ctx)
}

func (s *EventService) ListUpcomingEvents(ctx context.Context) ([]entities.Event, error) {
	return s.eventRepo.ListUpcoming(ctx)
}

func (s *EventService) ListEventsByCategory(ctx context.Context, categoryID int64) ([]entities.Event, error) {
	return s.eventRepo.ListByCategory(ctx, categoryID)
}

func (s *EventService) ListEventsByDateRange(ctx context.Context, from, to time.Time) ([]entities.Event, error) {
	if to.Before(from) {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{{Field: "To", Message: "must not be before From"}}}
	}
	return s.eventRepo.ListByDateRange(ctx, from, to)
}

func (s *EventService) GetEvent(ctx context.Context, id int64) (*entities.Event, error) {
	event, found, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrEventNotFound
	}
	return &event, nil
}

func (s *EventService) CreateEvent(ctx context.Context, fields entities.EventFields) (int64, error) {
	if err := validateStruct(fields); err != nil {
		return 0, err
	}
	id, err := s.eventRepo.Create(ctx, fields)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int64("event_id", id).Str("name", fields.Name).Msg("event created")
	return id, nil
}

func (s *EventService) UpdateEventStatus(ctx context.Context, id int64, status domain.EventStatus) (domain.Result, error) {
	if !status.Valid() {
		return domain.ValidationFailed, fmt.Errorf("event status %q: %w", status, domain.ErrInvalidStatus)
	}
	res, err := s.eventRepo.UpdateStatus(ctx, id, status)
	if err == nil {
		s.log.Info().Int64("event_id", id).Str("status", string(status)).Stringer("result", res).Msg("event status updated")
	}
	return res, err
}

func (s *EventService) DeleteEvent(ctx context.Context, id int64) (domain.Result, error) {
	res, err := s.eventRepo.Delete(ctx, id)
	if err == nil {
		s.log.Info().Int64("event_id", id).Stringer("result", res).Msg("event deleted")
	}
	return res, err
}
