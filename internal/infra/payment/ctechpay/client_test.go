package ctechpay

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"licensing/config"
	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/service"
	"licensing/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *metrics.Metrics) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	m := metrics.New(prometheus.NewRegistry())
	client := NewClient(&config.PaymentConfig{
		BaseURL:      server.URL + "/",
		APIToken:     "test-token",
		Registration: "REG-1",
		Timeout:      5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)), m)

	return client, m
}

func TestClient_CreateOrder(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		assert.Equal(t, "order", r.URL.Query().Get("endpoint"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "test-token", r.FormValue("token"))
		assert.Equal(t, "REG-1", r.FormValue("registration"))
		assert.Equal(t, "50", r.FormValue("amount"))
		assert.Equal(t, "true", r.FormValue("merchantAttributes"))
		assert.Equal(t, "https://app.test/paid", r.FormValue("redirectUrl"))
		assert.Empty(t, r.FormValue("cancelText"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"order_reference":"ORD-123","payment_page_URL":"https://pay.test/ORD-123"}`)
	})

	order, err := client.CreateOrder(context.Background(), service.OrderRequest{
		Amount:      decimal.NewFromInt(50),
		RedirectURL: "https://app.test/paid",
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-123", order.Reference)
	assert.Equal(t, "https://pay.test/ORD-123", order.PaymentPageURL)
	assert.InDelta(t, 1, testutil.ToFloat64(m.GatewayRequests.WithLabelValues(opCreateOrder, "ok")), 0)
}

func TestClient_CreateOrder_ProviderError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"message":"registration disabled"}`)
	})

	order, err := client.CreateOrder(context.Background(), service.OrderRequest{Amount: decimal.NewFromInt(50)})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentGateway)
	assert.True(t, domainerrors.IsRetryable(err))
	assert.Contains(t, err.Error(), "registration disabled")
}

func TestClient_CreateOrder_MissingReference(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"payment_page_URL":"https://pay.test"}`)
	})

	_, err := client.CreateOrder(context.Background(), service.OrderRequest{Amount: decimal.NewFromInt(50)})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentGateway)
}

func TestClient_CheckOrder(t *testing.T) {
	tests := []struct {
		name string
		body string
		want entity.PaymentOutcome
	}{
		{name: "purchased", body: `{"status":"PURCHASED"}`, want: entity.PaymentOutcomePaid},
		{name: "lowercase purchased", body: `{"status":"purchased"}`, want: entity.PaymentOutcomePaid},
		{name: "declined", body: `{"status":"DECLINED","message":"card declined"}`, want: entity.PaymentOutcomeFailed},
		{name: "created", body: `{"status":"CREATED"}`, want: entity.PaymentOutcomePending},
		{name: "missing status", body: `{}`, want: entity.PaymentOutcomeUnknown},
		{name: "not json", body: `oops`, want: entity.PaymentOutcomeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/status/", r.URL.Path)
				require.NoError(t, r.ParseMultipartForm(1<<20))
				assert.Equal(t, "ORD-123", r.FormValue("orderRef"))
				_, _ = io.WriteString(w, tt.body)
			})

			result, err := client.CheckOrder(context.Background(), "ORD-123")
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Outcome)
		})
	}
}

func TestClient_CheckOrder_KeepsRawPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status":"PURCHASED","message":"ok","amount":"50"}`)
	})

	result, err := client.CheckOrder(context.Background(), "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Message)
	assert.JSONEq(t, `{"status":"PURCHASED","message":"ok","amount":"50"}`, string(result.Raw))
}

func TestClient_CreateMobilePayment(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mobile/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "1", r.FormValue("airtel"))
		assert.Equal(t, "+265991234567", r.FormValue("phone"))
		assert.Equal(t, "120.5", r.FormValue("amount"))
		_, _ = io.WriteString(w, `{"status":{"success":true,"message":"Prompt sent"},"data":{"transaction":{"id":"TRANS-9"}}}`)
	})

	payment, err := client.CreateMobilePayment(context.Background(), decimal.RequireFromString("120.50"), "0991234567")
	require.NoError(t, err)
	assert.Equal(t, "TRANS-9", payment.TransactionID)
	assert.Equal(t, "Prompt sent", payment.Message)
	assert.InDelta(t, 1, testutil.ToFloat64(m.GatewayRequests.WithLabelValues(opCreateMobile, "ok")), 0)
}

func TestClient_CreateMobilePayment_Rejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status":{"success":false,"message":"insufficient balance"}}`)
	})

	_, err := client.CreateMobilePayment(context.Background(), decimal.NewFromInt(10), "+265991234567")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentGateway)
	assert.Contains(t, err.Error(), "insufficient balance")
}

func TestClient_CreateMobilePayment_InvalidPhoneSkipsProvider(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	})

	_, err := client.CreateMobilePayment(context.Background(), decimal.NewFromInt(10), "12345")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPhoneFormat)
	assert.Zero(t, calls.Load())
}

func TestClient_CheckMobilePayment(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    entity.PaymentOutcome
		receipt string
	}{
		{name: "success", body: `{"transaction_status":"TS","airtel_money_id":"AM-1","message":"done"}`, want: entity.PaymentOutcomePaid, receipt: "AM-1"},
		{name: "nested success", body: `{"data":{"transaction_status":"TS","airtel_money_id":"AM-2"}}`, want: entity.PaymentOutcomePaid, receipt: "AM-2"},
		{name: "failed", body: `{"transaction_status":"TF","message":"timeout"}`, want: entity.PaymentOutcomeFailed},
		{name: "in progress", body: `{"transaction_status":"TIP"}`, want: entity.PaymentOutcomePending},
		{name: "unrecognized", body: `{"transaction_status":"XX"}`, want: entity.PaymentOutcomeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/mobile/status", r.URL.Path)
				assert.Equal(t, "TRANS-9", r.URL.Query().Get("trans_id"))
				_, _ = io.WriteString(w, tt.body)
			})

			result, err := client.CheckMobilePayment(context.Background(), "TRANS-9")
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Outcome)
			assert.Equal(t, tt.receipt, result.ProviderReference)
		})
	}
}

func TestClient_NetworkFailureIsRetryable(t *testing.T) {
	client, _ := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {})
	client.baseURL = "http://127.0.0.1:1"

	_, err := client.CheckMobilePayment(context.Background(), "TRANS-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentGateway)
	assert.True(t, domainerrors.IsRetryable(err))
}
