package output

import (
	"context"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
)

type RegistrationRepository interface {
	ListAll(ctx context.Context) ([]entities.Registration, error)
	FindByID(ctx context.Context, id int64) (entities.Registration, bool, error)
	ListByEvent(ctx context.Context, eventID int64) ([]entities.Registration, error)
	ListByParticipant(ctx context.Context, participantID int64) ([]entities.Registration, error)
	ListConfirmed(ctx context.Context) ([]entities.Registration, error)
	CountConfirmedForEvent(ctx context.Context, eventID int64) (int64, error)
	Create(ctx context.Context, eventID, participantID int64, notes string) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RegistrationStatus) (domain.Result, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (domain.Result, error)
	Cancel(ctx context.Context, id int64) (domain.Result, error)
	Delete(ctx context.Context, id int64) (domain.Result, error)
}
