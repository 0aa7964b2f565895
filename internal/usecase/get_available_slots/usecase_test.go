package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	configRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/limitconfig"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

type mockReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (m *mockReservationRepo) GetByFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.reservations, nil
}

type mockConfigRepo struct {
	config *domain.LimitConfig
	err    error
}

func (m *mockConfigRepo) Read(_ context.Context) (*domain.LimitConfig, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.config, nil
}

type mockLogger struct{}

func (m *mockLogger) Info(string, ...interface{})  {}
func (m *mockLogger) Warn(string, ...interface{})  {}
func (m *mockLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func newTestUseCase(resRepo *mockReservationRepo, cfgRepo *mockConfigRepo) *UseCase {
	uc := NewUseCase(resRepo, cfgRepo, &mockLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func findSlot(t *testing.T, slots []Slot, timeStr string) Slot {
	t.Helper()
	for _, s := range slots {
		if s.Time == timeStr {
			return s
		}
	}
	t.Fatalf("slot %s not found", timeStr)
	return Slot{}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("EmptyDayFullGrid", func(t *testing.T) {
		uc := newTestUseCase(&mockReservationRepo{}, &mockConfigRepo{config: domain.DefaultLimitConfig()})

		resp, err := uc.Execute(ctx, &Request{Date: date})
		require.NoError(t, err)

		assert.Equal(t, "2026-09-15", resp.Date)
		assert.True(t, resp.OnlineEnabled)
		assert.Len(t, resp.Slots, 13)
		for _, s := range resp.Slots {
			assert.Equal(t, domain.SlotCapacity, s.RemainingSeats)
			assert.True(t, s.Available)
		}
	})

	t.Run("RemainingSeatsDecrease", func(t *testing.T) {
		repo := &mockReservationRepo{
			reservations: []*domain.Reservation{
				{Time: types.TimeString("19:30"), PartySize: 10, Status: domain.ReservationPending},
				{Time: types.TimeString("19:30"), PartySize: 5, Status: domain.ReservationConfirmed},
				{Time: types.TimeString("19:30"), PartySize: 8, Status: domain.ReservationCancelled},
			},
		}
		uc := newTestUseCase(repo, &mockConfigRepo{config: domain.DefaultLimitConfig()})

		resp, err := uc.Execute(ctx, &Request{Date: date})
		require.NoError(t, err)

		// отменённая бронь места не занимает
		slot := findSlot(t, resp.Slots, "19:30")
		assert.Equal(t, 25, slot.RemainingSeats)
		assert.True(t, slot.Available)

		other := findSlot(t, resp.Slots, "20:00")
		assert.Equal(t, domain.SlotCapacity, other.RemainingSeats)
	})

	t.Run("FullSlotUnavailable", func(t *testing.T) {
		repo := &mockReservationRepo{
			reservations: []*domain.Reservation{
				{Time: types.TimeString("12:00"), PartySize: 40, Status: domain.ReservationConfirmed},
			},
		}
		uc := newTestUseCase(repo, &mockConfigRepo{config: domain.DefaultLimitConfig()})

		resp, err := uc.Execute(ctx, &Request{Date: date})
		require.NoError(t, err)

		slot := findSlot(t, resp.Slots, "12:00")
		assert.Equal(t, 0, slot.RemainingSeats)
		assert.False(t, slot.Available)
	})

	t.Run("DisabledHourBlocksSlot", func(t *testing.T) {
		cfg := &domain.LimitConfig{
			OnlineEnabled: true,
			DisabledHours: []string{"13:00"},
		}
		uc := newTestUseCase(&mockReservationRepo{}, &mockConfigRepo{config: cfg})

		resp, err := uc.Execute(ctx, &Request{Date: date})
		require.NoError(t, err)

		slot := findSlot(t, resp.Slots, "13:00")
		assert.False(t, slot.Available)
		// остаток сообщается даже для заблокированного слота
		assert.Equal(t, domain.SlotCapacity, slot.RemainingSeats)
	})

	t.Run("DisabledDateBlocksAllSlots", func(t *testing.T) {
		cfg := &domain.LimitConfig{
			OnlineEnabled: true,
			DisabledDates: []string{"2026-09-15"},
		}
		uc := newTestUseCase(&mockReservationRepo{}, &mockConfigRepo{config: cfg})

		resp, err := uc.Execute(ctx, &Request{Date: date})
		require.NoError(t, err)

		for _, s := range resp.Slots {
			assert.False(t, s.Available)
		}
	})

	t.Run("OnlineDisabledBlocksAllSlots", func(t *testing.T) {
		cfg := &domain.LimitConfig{OnlineEnabled: false}
		uc := newTestUseCase(&mockReservationRepo{}, &mockConfigRepo{config: cfg})

		resp, err := uc.Execute(ctx, &Request{Date: date})
		require.NoError(t, err)

		assert.False(t, resp.OnlineEnabled)
		for _, s := range resp.Slots {
			assert.False(t, s.Available)
		}
	})

	t.Run("MissingConfigFallsBackToDefault", func(t *testing.T) {
		uc := newTestUseCase(&mockReservationRepo{}, &mockConfigRepo{err: configRepo.ErrConfigNotFound})

		resp, err := uc.Execute(ctx, &Request{Date: date})
		require.NoError(t, err)
		assert.True(t, resp.OnlineEnabled)
	})

	t.Run("PastDateRejected", func(t *testing.T) {
		uc := newTestUseCase(&mockReservationRepo{}, &mockConfigRepo{config: domain.DefaultLimitConfig()})

		_, err := uc.Execute(ctx, &Request{Date: testNow.AddDate(0, 0, -1)})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("MissingDateRejected", func(t *testing.T) {
		uc := newTestUseCase(&mockReservationRepo{}, &mockConfigRepo{config: domain.DefaultLimitConfig()})

		_, err := uc.Execute(ctx, &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("RepositoryFailure", func(t *testing.T) {
		repo := &mockReservationRepo{err: errors.New("connection refused")}
		uc := newTestUseCase(repo, &mockConfigRepo{config: domain.DefaultLimitConfig()})

		_, err := uc.Execute(ctx, &Request{Date: date})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
