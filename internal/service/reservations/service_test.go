package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RestaurantService/internal/service/reservations/models"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

type mockReservationRepo struct {
	reservation   *domain.Reservation
	reservations  []*domain.Reservation
	getErr        error
	updateErr     error
	deleteErr     error
	updatedID     int64
	updatedStatus domain.ReservationStatus
	deletedID     int64
}

func (m *mockReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.reservation, nil
}

func (m *mockReservationRepo) GetByFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.reservations, nil
}

func (m *mockReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedID = id
	m.updatedStatus = status
	return nil
}

func (m *mockReservationRepo) Delete(_ context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
}

type mockMailer struct {
	confirmedTo string
	cancelledTo string
	err         error
}

func (m *mockMailer) SendReservationConfirmed(to, _, _, _ string, _ int) error {
	if m.err != nil {
		return m.err
	}
	m.confirmedTo = to
	return nil
}

func (m *mockMailer) SendReservationCancelled(to, _, _, _ string) error {
	if m.err != nil {
		return m.err
	}
	m.cancelledTo = to
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Info(string, ...interface{})  {}
func (m *mockLogger) Warn(string, ...interface{})  {}
func (m *mockLogger) Error(string, ...interface{}) {}

func pendingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        5,
		Name:      "Jean Dupont",
		Phone:     "+33 6 12 34 56 78",
		Email:     "jean@example.com",
		PartySize: 4,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Time:      types.TimeString("19:30"),
		Status:    domain.ReservationPending,
	}
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("ConfirmsPending", func(t *testing.T) {
		repo := &mockReservationRepo{reservation: pendingReservation()}
		mailer := &mockMailer{}
		svc := NewService(repo, mailer, &mockLogger{})

		resp, err := svc.UpdateStatus(ctx, 5, "confirmed")
		require.NoError(t, err)

		assert.Equal(t, "confirmed", resp.Status)
		assert.Equal(t, domain.ReservationConfirmed, repo.updatedStatus)
		assert.Equal(t, "jean@example.com", mailer.confirmedTo)
	})

	t.Run("CancelsConfirmed", func(t *testing.T) {
		r := pendingReservation()
		r.Status = domain.ReservationConfirmed
		repo := &mockReservationRepo{reservation: r}
		mailer := &mockMailer{}
		svc := NewService(repo, mailer, &mockLogger{})

		resp, err := svc.UpdateStatus(ctx, 5, "cancelled")
		require.NoError(t, err)

		assert.Equal(t, "cancelled", resp.Status)
		assert.Equal(t, "jean@example.com", mailer.cancelledTo)
	})

	t.Run("RejectsUnknownStatus", func(t *testing.T) {
		svc := NewService(&mockReservationRepo{}, &mockMailer{}, &mockLogger{})

		_, err := svc.UpdateStatus(ctx, 5, "archived")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("RejectsIllegalTransition", func(t *testing.T) {
		r := pendingReservation()
		r.Status = domain.ReservationCancelled
		repo := &mockReservationRepo{reservation: r}
		svc := NewService(repo, &mockMailer{}, &mockLogger{})

		_, err := svc.UpdateStatus(ctx, 5, "confirmed")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := &mockReservationRepo{getErr: reservationRepo.ErrReservationNotFound}
		svc := NewService(repo, &mockMailer{}, &mockLogger{})

		_, err := svc.UpdateStatus(ctx, 99, "confirmed")
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("MailerFailureDoesNotFailUpdate", func(t *testing.T) {
		repo := &mockReservationRepo{reservation: pendingReservation()}
		mailer := &mockMailer{err: errors.New("smtp down")}
		svc := NewService(repo, mailer, &mockLogger{})

		_, err := svc.UpdateStatus(ctx, 5, "confirmed")
		assert.NoError(t, err)
	})

	t.Run("NoEmailNoNotification", func(t *testing.T) {
		r := pendingReservation()
		r.Email = ""
		repo := &mockReservationRepo{reservation: r}
		mailer := &mockMailer{}
		svc := NewService(repo, mailer, &mockLogger{})

		_, err := svc.UpdateStatus(ctx, 5, "confirmed")
		require.NoError(t, err)
		assert.Empty(t, mailer.confirmedTo)
	})
}

func TestService_GetReservations(t *testing.T) {
	ctx := context.Background()

	t.Run("ReturnsList", func(t *testing.T) {
		repo := &mockReservationRepo{reservations: []*domain.Reservation{pendingReservation()}}
		svc := NewService(repo, &mockMailer{}, &mockLogger{})

		resp, err := svc.GetReservations(ctx, &models.GetReservationsRequest{})
		require.NoError(t, err)
		require.Len(t, resp.Reservations, 1)
		assert.Equal(t, "2026-09-15", resp.Reservations[0].Date)
		assert.Equal(t, "19:30", resp.Reservations[0].Time)
	})

	t.Run("RejectsUnknownStatusFilter", func(t *testing.T) {
		svc := NewService(&mockReservationRepo{}, &mockMailer{}, &mockLogger{})

		bad := "archived"
		_, err := svc.GetReservations(ctx, &models.GetReservationsRequest{Status: &bad})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("RepositoryFailure", func(t *testing.T) {
		repo := &mockReservationRepo{getErr: errors.New("db down")}
		svc := NewService(repo, &mockMailer{}, &mockLogger{})

		_, err := svc.GetReservations(ctx, &models.GetReservationsRequest{})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("DeletesReservation", func(t *testing.T) {
		repo := &mockReservationRepo{}
		svc := NewService(repo, &mockMailer{}, &mockLogger{})

		require.NoError(t, svc.Delete(ctx, 5))
		assert.Equal(t, int64(5), repo.deletedID)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := &mockReservationRepo{deleteErr: reservationRepo.ErrReservationNotFound}
		svc := NewService(repo, &mockMailer{}, &mockLogger{})

		err := svc.Delete(ctx, 99)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}
