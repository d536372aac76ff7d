package output

import (
	"context"
	"time"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
)

type EventRepository interface {
	ListAll(ctx context.Context) ([]entities.Event, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]entities.Event, error)
	ListUpcoming(ctx context.Context) ([]entities.Event, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.Event, error)
	FindByID(ctx context.Context, id int64) (entities.Event, bool, error)
	Create(ctx context.Context, fields entities.EventFields) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.EventStatus) (domain.Result, error)
	Delete(ctx context.Context, id int64) (domain.Result, error)
}
