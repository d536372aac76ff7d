package output

import (
	"context"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
)

type ParticipantRepository interface {
	ListAll(ctx context.Context) ([]entities.Participant, error)
	FindByID(ctx context.Context, id int64) (entities.Participant, bool, error)
	FindByEmail(ctx context.Context, email string) (entities.Participant, bool, error)
	ListByType(ctx context.Context, participantType domain.ParticipantType) ([]entities.Participant, error)
	ListByInstitution(ctx context.Context, institution string) ([]entities.Participant, error)
	Create(ctx context.Context, fields entities.ParticipantFields) (int64, error)
	Update(ctx context.Context, id int64, fields entities.ParticipantFields) (domain.Result, error)
	Delete(ctx context.Context, id int64) (domain.Result, error)
}
