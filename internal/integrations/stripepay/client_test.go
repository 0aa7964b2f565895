package stripepay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (l *testLogger) Info(string, ...interface{})  {}
func (l *testLogger) Warn(string, ...interface{})  {}
func (l *testLogger) Error(string, ...interface{}) {}

func newTestClient(serverURL string) *Client {
	client := NewClient("sk_test_key", "eur", "https://example.com/ok", "https://example.com/ko", 5*time.Second, &testLogger{})
	client.baseURL = serverURL
	return client
}

func TestClient_CreateCheckoutSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		var gotForm map[string]string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotForm = map[string]string{
				"mode":                r.PostFormValue("mode"),
				"client_reference_id": r.PostFormValue("client_reference_id"),
				"currency":            r.PostFormValue("line_items[0][price_data][currency]"),
				"name":                r.PostFormValue("line_items[0][price_data][product_data][name]"),
				"unit_amount":         r.PostFormValue("line_items[0][price_data][unit_amount]"),
				"quantity":            r.PostFormValue("line_items[0][quantity]"),
			}

			user, _, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "sk_test_key", user)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": "cs_test_123", "url": "https://checkout.stripe.com/pay/cs_test_123"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		session, err := client.CreateCheckoutSession(ctx, "ref-123", []LineItem{
			{Name: "Margherita", UnitAmount: 1250, Quantity: 2},
		})
		require.NoError(t, err)

		assert.Equal(t, "cs_test_123", session.ID)
		assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_123", session.URL)

		assert.Equal(t, "payment", gotForm["mode"])
		assert.Equal(t, "ref-123", gotForm["client_reference_id"])
		assert.Equal(t, "eur", gotForm["currency"])
		assert.Equal(t, "Margherita", gotForm["name"])
		assert.Equal(t, "1250", gotForm["unit_amount"])
		assert.Equal(t, "2", gotForm["quantity"])
	})

	t.Run("APIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "Invalid currency"}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.CreateCheckoutSession(ctx, "ref-123", []LineItem{{Name: "Margherita", UnitAmount: 1000, Quantity: 1}})
		assert.ErrorIs(t, err, ErrSessionNotCreated)
		assert.Contains(t, err.Error(), "Invalid currency")
	})

	t.Run("MalformedErrorBody", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("gateway timeout"))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.CreateCheckoutSession(ctx, "ref-123", []LineItem{{Name: "Margherita", UnitAmount: 1000, Quantity: 1}})
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("SessionWithoutURL", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id": "cs_test_123"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.CreateCheckoutSession(ctx, "ref-123", []LineItem{{Name: "Margherita", UnitAmount: 1000, Quantity: 1}})
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestClient_GetCheckoutSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/checkout/sessions/cs_test_123", r.URL.Path)
			w.Write([]byte(`{"id": "cs_test_123", "url": "https://checkout.stripe.com/pay/cs_test_123", "status": "complete", "payment_status": "paid"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		session, err := client.GetCheckoutSession(ctx, "cs_test_123")
		require.NoError(t, err)

		assert.Equal(t, "complete", session.Status)
		assert.Equal(t, "paid", session.PaymentStatus)
	})

	t.Run("NotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "No such session"}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.GetCheckoutSession(ctx, "cs_unknown")
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}
