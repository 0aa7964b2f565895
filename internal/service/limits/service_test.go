package limits

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	configRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/limitconfig"
	"github.com/m04kA/SMC-RestaurantService/internal/service/limits/models"
)

type mockConfigRepo struct {
	config   *domain.LimitConfig
	readErr  error
	writeErr error
	written  *domain.LimitConfig
}

func (m *mockConfigRepo) Read(_ context.Context) (*domain.LimitConfig, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.config, nil
}

func (m *mockConfigRepo) Write(_ context.Context, config *domain.LimitConfig) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.written = config
	return nil
}

type mockTxManager struct{}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *mockTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Info(string, ...interface{})  {}
func (m *mockLogger) Warn(string, ...interface{})  {}
func (m *mockLogger) Error(string, ...interface{}) {}

func boolPtr(v bool) *bool         { return &v }
func listPtr(v []string) *[]string { return &v }

func TestService_GetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("ReturnsStoredConfig", func(t *testing.T) {
		repo := &mockConfigRepo{config: &domain.LimitConfig{
			OnlineEnabled: false,
			DisabledHours: []string{"19:30"},
			DisabledDates: []string{"2026-12-25"},
		}}
		svc := NewService(repo, &mockTxManager{}, &mockLogger{})

		resp, err := svc.GetStatus(ctx)
		require.NoError(t, err)
		assert.False(t, resp.OnlineEnabled)
		assert.Equal(t, []string{"19:30"}, resp.DisabledHours)
	})

	t.Run("MissingConfigFallsBackToDefault", func(t *testing.T) {
		repo := &mockConfigRepo{readErr: configRepo.ErrConfigNotFound}
		svc := NewService(repo, &mockTxManager{}, &mockLogger{})

		resp, err := svc.GetStatus(ctx)
		require.NoError(t, err)
		assert.True(t, resp.OnlineEnabled)
		assert.Empty(t, resp.DisabledHours)
	})

	t.Run("CorruptConfigFallsBackToDefault", func(t *testing.T) {
		repo := &mockConfigRepo{readErr: configRepo.ErrCorruptConfig}
		svc := NewService(repo, &mockTxManager{}, &mockLogger{})

		resp, err := svc.GetStatus(ctx)
		require.NoError(t, err)
		assert.True(t, resp.OnlineEnabled)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyRequestRejected", func(t *testing.T) {
		svc := NewService(&mockConfigRepo{config: domain.DefaultLimitConfig()}, &mockTxManager{}, &mockLogger{})

		_, err := svc.Update(ctx, &models.UpdateLimitsRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("TogglesOnlineOnly", func(t *testing.T) {
		repo := &mockConfigRepo{config: &domain.LimitConfig{
			OnlineEnabled: true,
			DisabledHours: []string{"19:30"},
			DisabledDates: []string{},
		}}
		svc := NewService(repo, &mockTxManager{}, &mockLogger{})

		resp, err := svc.Update(ctx, &models.UpdateLimitsRequest{OnlineEnabled: boolPtr(false)})
		require.NoError(t, err)

		assert.False(t, resp.OnlineEnabled)
		// нетронутые поля сохраняются
		assert.Equal(t, []string{"19:30"}, resp.DisabledHours)
		require.NotNil(t, repo.written)
		assert.False(t, repo.written.OnlineEnabled)
	})

	t.Run("NormalizesHoursAndReportsRejected", func(t *testing.T) {
		repo := &mockConfigRepo{config: domain.DefaultLimitConfig()}
		svc := NewService(repo, &mockTxManager{}, &mockLogger{})

		resp, err := svc.Update(ctx, &models.UpdateLimitsRequest{
			DisabledHours: listPtr([]string{"12:00", "15:00", "12:00"}),
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"12:00"}, resp.DisabledHours)
		assert.Equal(t, []string{"15:00"}, resp.RejectedHours)
	})

	t.Run("NormalizesDatesAndReportsRejected", func(t *testing.T) {
		repo := &mockConfigRepo{config: domain.DefaultLimitConfig()}
		svc := NewService(repo, &mockTxManager{}, &mockLogger{})

		resp, err := svc.Update(ctx, &models.UpdateLimitsRequest{
			DisabledDates: listPtr([]string{"2026-12-25", "garbage"}),
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"2026-12-25"}, resp.DisabledDates)
		assert.Equal(t, []string{"garbage"}, resp.RejectedDates)
	})

	t.Run("EmptyListClearsBlacklist", func(t *testing.T) {
		repo := &mockConfigRepo{config: &domain.LimitConfig{
			OnlineEnabled: true,
			DisabledHours: []string{"19:30"},
			DisabledDates: []string{},
		}}
		svc := NewService(repo, &mockTxManager{}, &mockLogger{})

		resp, err := svc.Update(ctx, &models.UpdateLimitsRequest{
			DisabledHours: listPtr([]string{}),
		})
		require.NoError(t, err)
		assert.Empty(t, resp.DisabledHours)
	})

	t.Run("WriteFailure", func(t *testing.T) {
		repo := &mockConfigRepo{config: domain.DefaultLimitConfig(), writeErr: errors.New("db down")}
		svc := NewService(repo, &mockTxManager{}, &mockLogger{})

		_, err := svc.Update(ctx, &models.UpdateLimitsRequest{OnlineEnabled: boolPtr(false)})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_UpdateRoundTrip(t *testing.T) {
	ctx := context.Background()

	repo := &mockConfigRepo{config: domain.DefaultLimitConfig()}
	svc := NewService(repo, &mockTxManager{}, &mockLogger{})

	resp, err := svc.Update(ctx, &models.UpdateLimitsRequest{
		DisabledHours: listPtr([]string{"19:30", "19:30", "bad"}),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"19:30"}, resp.DisabledHours)
	assert.Equal(t, []string{"bad"}, resp.RejectedHours)

	repo.config = repo.written
	status, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"19:30"}, status.DisabledHours)
}

func TestService_Reset(t *testing.T) {
	ctx := context.Background()

	repo := &mockConfigRepo{config: &domain.LimitConfig{
		OnlineEnabled: false,
		DisabledHours: []string{"19:30"},
		DisabledDates: []string{"2026-12-25"},
	}}
	svc := NewService(repo, &mockTxManager{}, &mockLogger{})

	resp, err := svc.Reset(ctx)
	require.NoError(t, err)

	assert.True(t, resp.OnlineEnabled)
	assert.Empty(t, resp.DisabledHours)
	assert.Empty(t, resp.DisabledDates)
	require.NotNil(t, repo.written)
	assert.True(t, repo.written.OnlineEnabled)
}
