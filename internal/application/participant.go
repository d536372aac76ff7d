package application

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
	"academicevents/internal/ports/input"
	"academicevents/internal/ports/output"
)

var _ input.ParticipantUseCase = (*ParticipantService)(nil)

type ParticipantService struct {
	participantRepo output.ParticipantRepository
	log             zerolog.Logger
}

func NewParticipantService(participantRepo output.ParticipantRepository, log zerolog.Logger) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		log:             log.With().Str("service", "participant").Logger(),
	}
}

func (s *ParticipantService) ListParticipants(ctx context.Context) ([]entities.Participant, error) {
	return s.participantRepo.ListAll(ctx)
}

// FindParticipantByEmail returns nil, nil when nobody uses the address.
func (s *ParticipantService) FindParticipantByEmail(ctx context.Context, email string) (*entities.Participant, error) {
	p, found, err := s.participantRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (s *ParticipantService) ListParticipantsByType(ctx context.Context, participantType domain.ParticipantType) ([]entities.Participant, error) {
	return s.participantRepo.ListByType(ctx, participantType)
}

func (s *ParticipantService) ListParticipantsByInstitution(ctx context.Context, institution string) ([]entities.Participant, error) {
	return s.participantRepo.ListByInstitution(ctx, strings.TrimSpace(institution))
}

func (s *ParticipantService) CreateParticipant(ctx context.Context, fields entities.ParticipantFields) (int64, error) {
	if err := validateStruct(fields); err != nil {
		return 0, err
	}
	id, err := s.participantRepo.Create(ctx, fields)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int64("participant_id", id).Str("email", fields.Email).Msg("participant created")
	return id, nil
}

func (s *ParticipantService) UpdateParticipant(ctx context.Context, id int64, fields entities.ParticipantFields) (domain.Result, error) {
	if err := validateStruct(fields); err != nil {
		return domain.ValidationFailed, err
	}
	res, err := s.participantRepo.Update(ctx, id, fields)
	if err == nil {
		s.log.Info().Int64("participant_id", id).Stringer("result", res).Msg("participant updated")
	}
	return res, err
}

func (s *ParticipantService) DeleteParticipant(ctx context.Context, id int64) (domain.Result, error) {
	res, err := s.participantRepo.Delete(ctx, id)
	if err == nil {
		s.log.Info().Int64("participant_id", id).Stringer("result", res).Msg("participant deleted")
	}
	return res, err
}
