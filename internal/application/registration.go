package application

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
	"academicevents/internal/ports/input"
	"academicevents/internal/ports/output"
)

var _ input.RegistrationUseCase = (*RegistrationService)(nil)

type RegistrationService struct {
	registrationRepo output.RegistrationRepository
	eventRepo        output.EventRepository
	participantRepo  output.ParticipantRepository
	log              zerolog.Logger
}

func NewRegistrationService(
	registrationRepo output.RegistrationRepository,
	eventRepo output.EventRepository,
	participantRepo output.ParticipantRepository,
	log zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		participantRepo:  participantRepo,
		log:              log.With().Str("service", "registration").Logger(),
	}
}

func (s *RegistrationService) ListRegistrations(ctx context.Context) ([]entities.Registration, error) {
	return s.registrationRepo.ListAll(ctx)
}

func (s *RegistrationService) ListRegistrationsByEvent(ctx context.Context, eventID int64) ([]entities.Registration, error) {
	return s.registrationRepo.ListByEvent(ctx, eventID)
}

func (s *RegistrationService) ListRegistrationsByParticipant(ctx context.Context, participantID int64) ([]entities.Registration, error) {
	return s.registrationRepo.ListByParticipant(ctx, participantID)
}

func (s *RegistrationService) ConfirmedCount(ctx context.Context, eventID int64) (int64, error) {
	return s.registrationRepo.CountConfirmedForEvent(ctx, eventID)
}

// Register creates a PENDING registration after checking both ends exist.
// The one-active-registration rule is enforced by the repository.
func (s *RegistrationService) Register(ctx context.Context, eventID, participantID int64, notes string) (int64, error) {
	if _, found, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return 0, err
	} else if !found {
		return 0, domain.ErrEventNotFound
	}
	if _, found, err := s.participantRepo.FindByID(ctx, participantID); err != nil {
		return 0, err
	} else if !found {
		return 0, domain.ErrParticipantNotFound
	}

	id, err := s.registrationRepo.Create(ctx, eventID, participantID, notes)
	if err != nil {
		s.log.Warn().Err(err).Int64("event_id", eventID).Int64("participant_id", participantID).Msg("registration rejected")
		return 0, err
	}
	s.log.Info().Int64("registration_id", id).Int64("event_id", eventID).Int64("participant_id", participantID).Msg("participant registered")
	return id, nil
}

func (s *RegistrationService) UpdateRegistrationStatus(ctx context.Context, id int64, status domain.RegistrationStatus) (domain.Result, error) {
	if !status.Valid() {
		return domain.ValidationFailed, fmt.Errorf("registration status %q: %w", status, domain.ErrInvalidStatus)
	}
	res, err := s.registrationRepo.UpdateStatus(ctx, id, status)
	s.logMutation(err, id, "status", string(status), res)
	return res, err
}

func (s *RegistrationService) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (domain.Result, error) {
	if !status.Valid() {
		return domain.ValidationFailed, fmt.Errorf("payment status %q: %w", status, domain.ErrInvalidStatus)
	}
	res, err := s.registrationRepo.UpdatePaymentStatus(ctx, id, status)
	s.logMutation(err, id, "payment_status", string(status), res)
	return res, err
}

func (s *RegistrationService) ConfirmRegistration(ctx context.Context, id int64) (domain.Result, error) {
	return s.UpdateRegistrationStatus(ctx, id, domain.StatusConfirmed)
}

func (s *RegistrationService) MarkRegistrationPaid(ctx context.Context, id int64) (domain.Result, error) {
	return s.UpdatePaymentStatus(ctx, id, domain.PaymentPaid)
}

// CancelRegistration is idempotent: cancelling a cancelled registration succeeds.
func (s *RegistrationService) CancelRegistration(ctx context.Context, id int64) (domain.Result, error) {
	res, err := s.registrationRepo.Cancel(ctx, id)
	s.logMutation(err, id, "status", string(domain.StatusCancelled), res)
	return res, err
}

func (s *RegistrationService) DeleteRegistration(ctx context.Context, id int64) (domain.Result, error) {
	res, err := s.registrationRepo.Delete(ctx, id)
	if err == nil {
		s.log.Info().Int64("registration_id", id).Stringer("result", res).Msg("registration deleted")
	}
	return res, err
}

func (s *RegistrationService) logMutation(err error, id int64, field, value string, res domain.Result) {
	if err != nil {
		return
	}
	s.log.Info().Int64("registration_id", id).Str(field, value).Stringer("result", res).Msg("registration updated")
}
