package database

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academicevents/internal/domain"
)

var registrationCols = []string{"registration_id", "event_id", "participant_id", "registration_date", "status", "payment_status", "notes"}

func TestRegistrationListAll(t *testing.T) {
	p, mock, _ := newMockProvider(t)
	at := time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM registrations ORDER BY registration_date DESC`).WillReturnRows(
		pgxmock.NewRows(registrationCols).
			AddRow(int64(2), int64(1), int64(3), at.Add(time.Hour), "CONFIRMED", "PAID", "vegetarian").
			AddRow(int64(1), int64(1), int64(4), at, "PENDING", "PENDING", ""))

	list, err := NewRegistrationRepository(p).ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.StatusConfirmed, list[0].Status)
	assert.Equal(t, domain.PaymentPaid, list[0].PaymentStatus)
	assert.Equal(t, "vegetarian", list[0].Notes)
	assert.True(t, list[1].Active())
}

func TestRegistrationFilters(t *testing.T) {
	p, mock, _ := newMockProvider(t)
	mock.ExpectQuery(`WHERE event_id = \$1`).WithArgs(int64(1)).WillReturnRows(pgxmock.NewRows(registrationCols))
	mock.ExpectQuery(`WHERE participant_id = \$1`).WithArgs(int64(3)).WillReturnRows(pgxmock.NewRows(registrationCols))
	mock.ExpectQuery(`WHERE status = \$1`).WithArgs("CONFIRMED").WillReturnRows(pgxmock.NewRows(registrationCols))

	repo := NewRegistrationRepository(p)
	ctx := context.Background()
	_, err := repo.ListByEvent(ctx, 1)
	require.NoError(t, err)
	_, err = repo.ListByParticipant(ctx, 3)
	require.NoError(t, err)
	_, err = repo.ListConfirmed(ctx)
	require.NoError(t, err)
}

func TestRegistrationCountConfirmed(t *testing.T) {
	p, mock, _ := newMockProvider(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM registrations`).WithArgs(int64(1), "CONFIRMED").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(4)))

	n, err := NewRegistrationRepository(p).CountConfirmedForEvent(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func expectLockAndCheck(mock pgxmock.PgxConnIface, participantID int64, exists bool) {
	mock.ExpectBegin()
	expectPairCheck(mock, participantID, 0, exists)
}

func expectPairCheck(mock pgxmock.PgxConnIface, participantID, excludeID int64, exists bool) {
	mock.ExpectQuery(`FOR UPDATE`).WithArgs(participantID).
		WillReturnRows(pgxmock.NewRows([]string{"participant_id"}).AddRow(participantID))
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(int64(1), participantID, "CANCELLED", excludeID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(exists))
}

func TestRegistrationCreate(t *testing.T) {
	p, mock, _ := newMockProvider(t)
	expectLockAndCheck(mock, 3, false)
	mock.ExpectQuery(`INSERT INTO registrations`).
		WithArgs(int64(1), int64(3), "PENDING", "PENDING", "late arrival").
		WillReturnRows(pgxmock.NewRows([]string{"registration_id"}).AddRow(int64(10)))
	mock.ExpectCommit()

	id, err := NewRegistrationRepository(p).Create(context.Background(), 1, 3, "late arrival")
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
}

func TestRegistrationCreateDuplicate(t *testing.T) {
	p, mock, _ := newMockProvider(t)
	expectLockAndCheck(mock, 3, true)
	mock.ExpectRollback()

	_, err := NewRegistrationRepository(p).Create(context.Background(), 1, 3, "")
	require.ErrorIs(t, err, domain.ErrDuplicateRegistration)
	assert.False(t, isPersistenceError(err), "duplicate is distinct from a generic persistence failure")
}

func TestRegistrationCreateUniqueViolationIsDuplicate(t *testing.T) {
	p, mock, _ := newMockProvider(t)
	expectLockAndCheck(mock, 3, false)
	mock.ExpectQuery(`INSERT INTO registrations`).
		WithArgs(anyArgs(5)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "registrations_active_pair_idx"})
	mock.ExpectRollback()

	_, err := NewRegistrationRepository(p).Create(context.Background(), 1, 3, "")
	require.ErrorIs(t, err, domain.ErrDuplicateRegistration)
}

func TestRegistrationCreateUnknownReferences(t *testing.T) {
	p, mock, _ := newMockProvider(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WithArgs(int64(77)).WillReturnRows(pgxmock.NewRows([]string{"participant_id"}))
	mock.ExpectRollback()

	expectLockAndCheck(mock, 3, false)
	mock.ExpectQuery(`INSERT INTO registrations`).WithArgs(anyArgs(5)...).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	repo := NewRegistrationRepository(p)
	_, err := repo.Create(context.Background(), 1, 77, "")
	require.ErrorIs(t, err, domain.ErrParticipantNotFound)

	_, err = repo.Create(context.Background(), 1, 3, "")
	require.ErrorIs(t, err, domain.ErrReferenceNotFound)
	assert.True(t, isPersistenceError(err))
}

func TestRegistrationCancelIsIdempotent(t *testing.T) {
	p, mock, _ := newMockProvider(t)
	for range 2 {
		mock.ExpectExec(`UPDATE registrations SET status`).WithArgs("CANCELLED", int64(5)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	}

	repo := NewRegistrationRepository(p)
	for range 2 {
		res, err := repo.Cancel(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, domain.Success, res)
	}
}

func expectRegistrationPair(mock pgxmock.PgxConnIface, id, participantID int64) {
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT event_id, participant_id FROM registrations`).WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"event_id", "participant_id"}).AddRow(int64(1), participantID))
}

func TestRegistrationReactivateBlockedByActiveRegistration(t *testing.T) {
	p, mock, _ := newMockProvider(t)
	expectRegistrationPair(mock, 5, 3)
	expectPairCheck(mock, 3, 5, true)
	mock.ExpectRollback()

	res, err := NewRegistrationRepository(p).UpdateStatus(context.Background(), 5, domain.StatusPending)
	require.ErrorIs(t, err, domain.ErrDuplicateRegistration)
	assert.Equal(t, domain.PersistenceFailed, res)
	assert.False(t, isPersistenceError(err))
}

func TestRegistrationConfirm(t *testing.T) {
	p, mock, _ := newMockProvider(t)
	expectRegistrationPair(mock, 5, 3)
	expectPairCheck(mock, 3, 5, false)
	mock.ExpectExec(`UPDATE registrations SET status`).WithArgs("CONFIRMED", int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	res, err := NewRegistrationRepository(p).UpdateStatus(context.Background(), 5, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.Success, res)
}

func TestRegistrationConfirmUniqueViolationIsDuplicate(t *testing.T) {
	p, mock, _ := newMockProvider(t)
	expectRegistrationPair(mock, 5, 3)
	expectPairCheck(mock, 3, 5, false)
	mock.ExpectExec(`UPDATE registrations SET status`).WithArgs("CONFIRMED", int64(5)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "registrations_active_pair_idx"})
	mock.ExpectRollback()

	res, err := NewRegistrationRepository(p).UpdateStatus(context.Background(), 5, domain.StatusConfirmed)
	require.ErrorIs(t, err, domain.ErrDuplicateRegistration)
	assert.Equal(t, domain.PersistenceFailed, res)
}

func TestRegistrationConfirmMissing(t *testing.T) {
	p, mock, _ := newMockProvider(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT event_id, participant_id FROM registrations`).WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows([]string{"event_id", "participant_id"}))
	mock.ExpectCommit()

	res, err := NewRegistrationRepository(p).UpdateStatus(context.Background(), 404, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.NotFound, res)
}

func TestRegistrationExecUniqueViolationIsDuplicate(t *testing.T) {
	p, mock, _ := newMockProvider(t)
	mock.ExpectExec(`UPDATE registrations SET payment_status`).WithArgs("PAID", int64(5)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	res, err := NewRegistrationRepository(p).UpdatePaymentStatus(context.Background(), 5, domain.PaymentPaid)
	require.ErrorIs(t, err, domain.ErrDuplicateRegistration)
	assert.False(t, isPersistenceError(err))
	assert.Equal(t, domain.PersistenceFailed, res)
}

func TestRegistrationUpdatePaymentStatus(t *testing.T) {
	p, mock, _ := newMockProvider(t)
	mock.ExpectExec(`UPDATE registrations SET payment_status`).WithArgs("PAID", int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewRegistrationRepository(p)
	res, err := repo.UpdatePaymentStatus(context.Background(), 5, domain.PaymentPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.Success, res)

	res, err = repo.UpdatePaymentStatus(context.Background(), 5, "WAIVED")
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Equal(t, domain.ValidationFailed, res)
}

func TestRegistrationDeleteMissing(t *testing.T) {
	p, mock, _ := newMockProvider(t)
	mock.ExpectExec(`DELETE FROM registrations`).WithArgs(int64(404)).WillReturnResult(pgxmock.NewResult("DELETE", 0))

	res, err := NewRegistrationRepository(p).Delete(context.Background(), 404)
	require.NoError(t, err)
	assert.Equal(t, domain.NotFound, res)
}
