package input

import (
	"context"
	"time"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
)

type EventUseCase interface {
	ListEvents(ctx context.Context) ([]entities.Event, error)
	ListUpcomingEvents(ctx context.Context) ([]entities.Event, error)
	ListEventsByCategory(ctx context.Context, categoryID int64) ([]entities.Event, error)
	ListEventsByDateRange(ctx context.Context, from, to time.Time) ([]entities.Event, error)
	GetEvent(ctx context.Context, id int64) (*entities.Event, error)
	CreateEvent(ctx context.Context, fields entities.EventFields) (int64, error)
	UpdateEventStatus(ctx context.Context, id int64, status domain.EventStatus) (domain.Result, error)
	DeleteEvent(ctx context.Context, id int64) (domain.Result, error)
}
