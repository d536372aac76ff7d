package input

import (
	"context"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
)

type RegistrationUseCase interface {
	ListRegistrations(ctx context.Context) ([]entities.Registration, error)
	ListRegistrationsByEvent(ctx context.Context, eventID int64) ([]entities.Registration, error)
	ListRegistrationsByParticipant(ctx context.Context, participantID int64) ([]entities.Registration, error)
	ConfirmedCount(ctx context.Context, eventID int64) (int64, error)
	Register(ctx context.Context, eventID, participantID int64, notes string) (int64, error)
	UpdateRegistrationStatus(ctx context.Context, id int64, status domain.RegistrationStatus) (domain.Result, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (domain.Result, error)
	ConfirmRegistration(ctx context.Context, id int64) (domain.Result, error)
	MarkRegistrationPaid(ctx context.Context, id int64) (domain.Result, error)
	CancelRegistration(ctx context.Context, id int64) (domain.Result, error)
	DeleteRegistration(ctx context.Context, id int64) (domain.Result, error)
}
