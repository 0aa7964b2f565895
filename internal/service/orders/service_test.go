package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	orderRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/order"
)

type mockOrderRepo struct {
	orders        []*domain.Order
	bySession     *domain.Order
	getErr        error
	updateErr     error
	updatedID     int64
	updatedStatus domain.OrderStatus
	updateCalls   int
}

func (m *mockOrderRepo) GetByUserID(_ context.Context, _ int64) ([]*domain.Order, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.orders, nil
}

func (m *mockOrderRepo) GetBySessionID(_ context.Context, _ string) (*domain.Order, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.bySession, nil
}

func (m *mockOrderRepo) UpdateStatus(_ context.Context, id int64, status domain.OrderStatus) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updateCalls++
	m.updatedID = id
	m.updatedStatus = status
	return nil
}

type mockCartStore struct {
	clearedUser int64
	err         error
}

func (m *mockCartStore) Clear(_ context.Context, userID int64) error {
	if m.err != nil {
		return m.err
	}
	m.clearedUser = userID
	return nil
}

type mockMailer struct {
	sentTo  string
	sentRef string
	err     error
}

func (m *mockMailer) SendOrderPaid(to, reference string, _ float64) error {
	if m.err != nil {
		return m.err
	}
	m.sentTo = to
	m.sentRef = reference
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Info(string, ...interface{})  {}
func (m *mockLogger) Warn(string, ...interface{})  {}
func (m *mockLogger) Error(string, ...interface{}) {}

func pendingOrder() *domain.Order {
	return &domain.Order{
		ID:        7,
		UserID:    42,
		Reference: "ref-123",
		Total:     25.5,
		Status:    domain.OrderPending,
	}
}

func TestService_MarkPaidBySession(t *testing.T) {
	ctx := context.Background()

	t.Run("MarksPendingOrderPaid", func(t *testing.T) {
		repo := &mockOrderRepo{bySession: pendingOrder()}
		carts := &mockCartStore{}
		mailer := &mockMailer{}
		svc := NewService(repo, carts, mailer, &mockLogger{})

		err := svc.MarkPaidBySession(ctx, "cs_test_123", "jean@example.com")
		require.NoError(t, err)

		assert.Equal(t, int64(7), repo.updatedID)
		assert.Equal(t, domain.OrderPaid, repo.updatedStatus)
		assert.Equal(t, int64(42), carts.clearedUser)
		assert.Equal(t, "jean@example.com", mailer.sentTo)
		assert.Equal(t, "ref-123", mailer.sentRef)
	})

	t.Run("IdempotentForPaidOrder", func(t *testing.T) {
		paid := pendingOrder()
		paid.Status = domain.OrderPaid
		repo := &mockOrderRepo{bySession: paid}
		svc := NewService(repo, &mockCartStore{}, &mockMailer{}, &mockLogger{})

		err := svc.MarkPaidBySession(ctx, "cs_test_123", "jean@example.com")
		require.NoError(t, err)
		assert.Equal(t, 0, repo.updateCalls)
	})

	t.Run("UnknownSession", func(t *testing.T) {
		repo := &mockOrderRepo{getErr: orderRepo.ErrOrderNotFound}
		svc := NewService(repo, &mockCartStore{}, &mockMailer{}, &mockLogger{})

		err := svc.MarkPaidBySession(ctx, "cs_unknown", "")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("EmptyEmailSkipsNotification", func(t *testing.T) {
		repo := &mockOrderRepo{bySession: pendingOrder()}
		mailer := &mockMailer{}
		svc := NewService(repo, &mockCartStore{}, mailer, &mockLogger{})

		err := svc.MarkPaidBySession(ctx, "cs_test_123", "")
		require.NoError(t, err)
		assert.Empty(t, mailer.sentTo)
	})

	t.Run("CartClearFailureDoesNotFailPayment", func(t *testing.T) {
		repo := &mockOrderRepo{bySession: pendingOrder()}
		carts := &mockCartStore{err: errors.New("redis down")}
		svc := NewService(repo, carts, &mockMailer{}, &mockLogger{})

		err := svc.MarkPaidBySession(ctx, "cs_test_123", "jean@example.com")
		assert.NoError(t, err)
	})

	t.Run("MailerFailureDoesNotFailPayment", func(t *testing.T) {
		repo := &mockOrderRepo{bySession: pendingOrder()}
		mailer := &mockMailer{err: errors.New("smtp down")}
		svc := NewService(repo, &mockCartStore{}, mailer, &mockLogger{})

		err := svc.MarkPaidBySession(ctx, "cs_test_123", "jean@example.com")
		assert.NoError(t, err)
	})

	t.Run("UpdateFailure", func(t *testing.T) {
		repo := &mockOrderRepo{bySession: pendingOrder(), updateErr: errors.New("db down")}
		svc := NewService(repo, &mockCartStore{}, &mockMailer{}, &mockLogger{})

		err := svc.MarkPaidBySession(ctx, "cs_test_123", "")
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_MarkCancelledBySession(t *testing.T) {
	ctx := context.Background()

	t.Run("CancelsPendingOrder", func(t *testing.T) {
		repo := &mockOrderRepo{bySession: pendingOrder()}
		svc := NewService(repo, &mockCartStore{}, &mockMailer{}, &mockLogger{})

		err := svc.MarkCancelledBySession(ctx, "cs_test_123")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderCancelled, repo.updatedStatus)
	})

	t.Run("PaidOrderIsNotCancelled", func(t *testing.T) {
		paid := pendingOrder()
		paid.Status = domain.OrderPaid
		repo := &mockOrderRepo{bySession: paid}
		svc := NewService(repo, &mockCartStore{}, &mockMailer{}, &mockLogger{})

		err := svc.MarkCancelledBySession(ctx, "cs_test_123")
		require.NoError(t, err)
		assert.Equal(t, 0, repo.updateCalls)
	})

	t.Run("UnknownSession", func(t *testing.T) {
		repo := &mockOrderRepo{getErr: orderRepo.ErrOrderNotFound}
		svc := NewService(repo, &mockCartStore{}, &mockMailer{}, &mockLogger{})

		err := svc.MarkCancelledBySession(ctx, "cs_unknown")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_GetUserOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("ReturnsOrders", func(t *testing.T) {
		repo := &mockOrderRepo{orders: []*domain.Order{pendingOrder()}}
		svc := NewService(repo, &mockCartStore{}, &mockMailer{}, &mockLogger{})

		resp, err := svc.GetUserOrders(ctx, 42)
		require.NoError(t, err)
		require.Len(t, resp.Orders, 1)
		assert.Equal(t, "ref-123", resp.Orders[0].Reference)
	})

	t.Run("RepositoryFailure", func(t *testing.T) {
		repo := &mockOrderRepo{getErr: errors.New("db down")}
		svc := NewService(repo, &mockCartStore{}, &mockMailer{}, &mockLogger{})

		_, err := svc.GetUserOrders(ctx, 42)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
