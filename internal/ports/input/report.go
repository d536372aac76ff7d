package input

import (
	"context"

	"academicevents/internal/domain/entities"
)

type ReportUseCase interface {
	EventSummary(ctx context.Context) (*entities.EventSummary, error)
	ParticipantSummary(ctx context.Context) (*entities.ParticipantSummary, error)
	RegistrationSummary(ctx context.Context) (*entities.RegistrationSummary, error)
	Revenue(ctx context.Context) (*entities.RevenueReport, error)
	Capacity(ctx context.Context) ([]entities.EventCapacity, error)
}
