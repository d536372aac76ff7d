package input

import (
	"context"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
)

type ParticipantUseCase interface {
	ListParticipants(ctx context.Context) ([]entities.Participant, error)
	FindParticipantByEmail(ctx context.Context, email string) (*entities.Participant, error)
	ListParticipantsByType(ctx context.Context, participantType domain.ParticipantType) ([]entities.Participant, error)
	ListParticipantsByInstitution(ctx context.Context, institution string) ([]entities.Participant, error)
	CreateParticipant(ctx context.Context, fields entities.ParticipantFields) (int64, error)
	UpdateParticipant(ctx context.Context, id int64, fields entities.ParticipantFields) (domain.Result, error)
	DeleteParticipant(ctx context.Context, id int64) (domain.Result, error)
}
