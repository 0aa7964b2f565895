package create_reservation

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
	getErr       error
	createErr    error
	created      *domain.Reservation
}

func (m *mockReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *r
	created.ID = 100
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.created = &created
	return &created, nil
}

func (m *mockReservationRepo) GetByFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	if m.getErr != nil {
		return nil, m.getErr
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

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
	uc := NewUseCase(resRepo, cfgRepo, &mockTxManager{}, &mockLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		Name:      "Jean Dupont",
		Phone:     "+33 6 12 34 56 78",
		Email:     "jean@example.com",
		PartySize: 4,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Time:      types.TimeString("19:30"),
	}
}

// бронь на заданный слот, занимающая seats мест
func activeReservation(t types.TimeString, seats int, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		PartySize: seats,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Time:      t,
		Status:    status,
	}
}

func TestUseCase_Execute_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyName", func(t *testing.T) {
		uc := newTestUseCase(&mockReservationRepo{}, &mockConfigRepo{config: domain.DefaultLimitConfig()})
		req := validRequest()
		req.Name = "   "

		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("EmptyPhone", func(t *testing.T) {
		uc := newTestUseCase(&mockReservationRepo{}, &mockConfigRepo{config: domain.DefaultLimitConfig()})
		req := validRequest()
		req.Phone = ""

		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("PartyTooLarge", func(t *testing.T) {
		uc := newTestUseCase(&mockReservationRepo{}, &mockConfigRepo{config: domain.DefaultLimitConfig()})
		req := validRequest()
		req.PartySize = domain.MaxPartySize + 1

		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrPartyTooLarge)
	})

	t.Run("MaxPartySizeAccepted", func(t *testing.T) {
		repo := &mockReservationRepo{}
		uc := newTestUseCase(repo, &mockConfigRepo{config: domain.DefaultLimitConfig()})
		req := validRequest()
		req.PartySize = domain.MaxPartySize

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, domain.MaxPartySize, resp.PartySize)
	})

	t.Run("TimeOutsideGrid", func(t *testing.T) {
		uc := newTestUseCase(&mockReservationRepo{}, &mockConfigRepo{config: domain.DefaultLimitConfig()})
		req := validRequest()
		req.Time = types.TimeString("15:00")

		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidSlot)
	})

	t.Run("PastDate", func(t *testing.T) {
		uc := newTestUseCase(&mockReservationRepo{}, &mockConfigRepo{config: domain.DefaultLimitConfig()})
		req := validRequest()
		req.Date = testNow.AddDate(0, 0, -1)

		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("TodayAccepted", func(t *testing.T) {
		uc := newTestUseCase(&mockReservationRepo{}, &mockConfigRepo{config: domain.DefaultLimitConfig()})
		req := validRequest()
		req.Date = testNow

		_, err := uc.Execute(ctx, req)
		assert.NoError(t, err)
	})
}

func TestUseCase_Execute_Limits(t *testing.T) {
	ctx := context.Background()

	t.Run("OnlineDisabled", func(t *testing.T) {
		cfg := &domain.LimitConfig{OnlineEnabled: false}
		uc := newTestUseCase(&mockReservationRepo{}, &mockConfigRepo{config: cfg})

		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrOnlineDisabled)
	})

	t.Run("DisabledDate", func(t *testing.T) {
		cfg := &domain.LimitConfig{
			OnlineEnabled: true,
			DisabledDates: []string{"2026-09-15"},
		}
		uc := newTestUseCase(&mockReservationRepo{}, &mockConfigRepo{config: cfg})

		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrDateDisabled)
	})

	t.Run("DisabledHour", func(t *testing.T) {
		cfg := &domain.LimitConfig{
			OnlineEnabled: true,
			DisabledHours: []string{"19:30"},
		}
		uc := newTestUseCase(&mockReservationRepo{}, &mockConfigRepo{config: cfg})

		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrTimeDisabled)
	})

	t.Run("MissingConfigFallsBackToDefault", func(t *testing.T) {
		uc := newTestUseCase(&mockReservationRepo{}, &mockConfigRepo{err: configRepo.ErrConfigNotFound})

		_, err := uc.Execute(ctx, validRequest())
		assert.NoError(t, err)
	})

	t.Run("CorruptConfigFallsBackToDefault", func(t *testing.T) {
		uc := newTestUseCase(&mockReservationRepo{}, &mockConfigRepo{err: configRepo.ErrCorruptConfig})

		_, err := uc.Execute(ctx, validRequest())
		assert.NoError(t, err)
	})
}

func TestUseCase_Execute_Quota(t *testing.T) {
	ctx := context.Background()

	t.Run("SlotFullReportsRemaining", func(t *testing.T) {
		repo := &mockReservationRepo{
			reservations: []*domain.Reservation{
				activeReservation("19:30", 20, domain.ReservationPending),
				activeReservation("19:30", 15, domain.ReservationConfirmed),
			},
		}
		uc := newTestUseCase(repo, &mockConfigRepo{config: domain.DefaultLimitConfig()})
		req := validRequest()
		req.PartySize = 6

		_, err := uc.Execute(ctx, req)
		require.ErrorIs(t, err, ErrSlotFull)

		var slotFull *SlotFullError
		require.ErrorAs(t, err, &slotFull)
		assert.Equal(t, 5, slotFull.Remaining)
	})

	t.Run("ExactFitAccepted", func(t *testing.T) {
		repo := &mockReservationRepo{
			reservations: []*domain.Reservation{
				activeReservation("19:30", 35, domain.ReservationConfirmed),
			},
		}
		uc := newTestUseCase(repo, &mockConfigRepo{config: domain.DefaultLimitConfig()})
		req := validRequest()
		req.PartySize = 5

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.RemainingSeats)
		assert.Equal(t, string(domain.ReservationPending), resp.Status)
	})

	t.Run("CancelledReservationsReleaseSeats", func(t *testing.T) {
		repo := &mockReservationRepo{
			reservations: []*domain.Reservation{
				activeReservation("19:30", 40, domain.ReservationCancelled),
			},
		}
		uc := newTestUseCase(repo, &mockConfigRepo{config: domain.DefaultLimitConfig()})

		resp, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)
		assert.Equal(t, domain.SlotCapacity-4, resp.RemainingSeats)
	})

	t.Run("OtherSlotsDoNotCount", func(t *testing.T) {
		repo := &mockReservationRepo{
			reservations: []*domain.Reservation{
				activeReservation("20:00", 40, domain.ReservationConfirmed),
			},
		}
		uc := newTestUseCase(repo, &mockConfigRepo{config: domain.DefaultLimitConfig()})

		_, err := uc.Execute(ctx, validRequest())
		assert.NoError(t, err)
	})

	t.Run("RepositoryFailure", func(t *testing.T) {
		repo := &mockReservationRepo{getErr: errors.New("connection refused")}
		uc := newTestUseCase(repo, &mockConfigRepo{config: domain.DefaultLimitConfig()})

		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestUseCase_Execute_CreatesPending(t *testing.T) {
	ctx := context.Background()

	repo := &mockReservationRepo{}
	uc := newTestUseCase(repo, &mockConfigRepo{config: domain.DefaultLimitConfig()})

	resp, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.ReservationPending, repo.created.Status)
	assert.Equal(t, "Jean Dupont", repo.created.Name)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, types.TimeString("19:30"), resp.Time)
}
