// Package ctechpay is the CtechPay payment gateway adapter. It speaks the provider's
// multipart form API and normalizes every status payload into service.PaymentResult.
package ctechpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"licensing/config"
	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/service"
	"licensing/internal/errors"
	"licensing/internal/infra/metrics"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
	"go.uber.org/fx"
)

const (
	opCreateOrder   = "create_order"
	opCheckOrder    = "check_order"
	opCreateMobile  = "create_mobile"
	opCheckMobile   = "check_mobile"
	maxResponseSize = 1 << 20

	cardStatusPurchased = "PURCHASED"

	mobileStatusSuccess    = "TS"
	mobileStatusFailed     = "TF"
	mobileStatusInProgress = "TIP"
)

var cardFailureStatuses = map[string]bool{
	"FAILED":    true,
	"DECLINED":  true,
	"CANCELLED": true,
	"CANCELED":  true,
	"EXPIRED":   true,
	"REJECTED":  true,
}

// Client calls the provider with a fixed token and registration id.
type Client struct {
	baseURL      string
	token        string
	registration string
	httpClient   *http.Client
	logger       *slog.Logger
	metrics      *metrics.Metrics
}

// Params holds dependencies for the gateway, injected by Fx
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New builds the gateway from configuration.
func New(params Params) service.PaymentGateway {
	return NewClient(params.Config.Payment, params.Logger, params.Metrics)
}

// NewClient creates a client for the given credentials.
func NewClient(cfg *config.PaymentConfig, logger *slog.Logger, m *metrics.Metrics) *Client {
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		token:        cfg.APIToken,
		registration: cfg.Registration,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		logger:       logger,
		metrics:      m,
	}
}

// CreateOrder starts a hosted card payment.
func (c *Client) CreateOrder(ctx context.Context, req service.OrderRequest) (*service.Order, error) {
	started := time.Now()

	fields := [][2]string{
		{"token", c.token},
		{"registration", c.registration},
		{"amount", req.Amount.String()},
		{"merchantAttributes", "true"},
	}
	if req.RedirectURL != "" {
		fields = append(fields, [2]string{"redirectUrl", req.RedirectURL})
	}
	if req.CancelURL != "" {
		fields = append(fields, [2]string{"cancelUrl", req.CancelURL})
	}
	if req.CancelText != "" {
		fields = append(fields, [2]string{"cancelText", req.CancelText})
	}

	body, err := c.postForm(ctx, c.baseURL+"/?endpoint=order", fields)
	if err != nil {
		c.metrics.ObserveGateway(opCreateOrder, "error", started)

		return nil, errors.Wrap(err, "create card order")
	}

	reference := gjson.GetBytes(body, "order_reference").String()
	if reference == "" {
		c.metrics.ObserveGateway(opCreateOrder, "error", started)

		return nil, gatewayError("order reference missing", body)
	}

	c.metrics.ObserveGateway(opCreateOrder, "ok", started)

	return &service.Order{
		Reference:      reference,
		PaymentPageURL: gjson.GetBytes(body, "payment_page_URL").String(),
	}, nil
}

// CheckOrder polls a card order.
func (c *Client) CheckOrder(ctx context.Context, reference string) (*service.PaymentResult, error) {
	started := time.Now()

	body, err := c.postForm(ctx, c.baseURL+"/status/", [][2]string{
		{"token", c.token},
		{"registration", c.registration},
		{"orderRef", reference},
	})
	if err != nil {
		c.metrics.ObserveGateway(opCheckOrder, "error", started)

		return nil, errors.Wrap(err, "check card order")
	}

	result := normalizeCardStatus(body)
	c.metrics.ObserveGateway(opCheckOrder, string(result.Outcome), started)

	return result, nil
}

// CreateMobilePayment pushes a mobile money prompt to phone.
func (c *Client) CreateMobilePayment(ctx context.Context, amount decimal.Decimal, phone string) (*service.MobilePayment, error) {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return nil, err
	}

	started := time.Now()

	body, err := c.postForm(ctx, c.baseURL+"/mobile/", [][2]string{
		{"airtel", "1"},
		{"token", c.token},
		{"registration", c.registration},
		{"amount", amount.String()},
		{"phone", normalized},
	})
	if err != nil {
		c.metrics.ObserveGateway(opCreateMobile, "error", started)

		return nil, errors.Wrap(err, "create mobile payment")
	}

	message := gjson.GetBytes(body, "status.message").String()
	transactionID := gjson.GetBytes(body, "data.transaction.id").String()
	if !gjson.GetBytes(body, "status.success").Bool() || transactionID == "" {
		c.metrics.ObserveGateway(opCreateMobile, "rejected", started)

		return nil, gatewayError("mobile payment initiation failed", body)
	}

	c.metrics.ObserveGateway(opCreateMobile, "ok", started)

	return &service.MobilePayment{TransactionID: transactionID, Message: message}, nil
}

// CheckMobilePayment polls a mobile money transaction.
func (c *Client) CheckMobilePayment(ctx context.Context, transactionID string) (*service.PaymentResult, error) {
	started := time.Now()

	endpoint := c.baseURL + "/mobile/status?trans_id=" + url.QueryEscape(transactionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	body, err := c.do(req)
	if err != nil {
		c.metrics.ObserveGateway(opCheckMobile, "error", started)

		return nil, errors.Wrap(err, "check mobile payment")
	}

	result := normalizeMobileStatus(body)
	c.metrics.ObserveGateway(opCheckMobile, string(result.Outcome), started)

	return result, nil
}

func (c *Client) postForm(ctx context.Context, endpoint string, fields [][2]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, f := range fields {
		if err := writer.WriteField(f[0], f[1]); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(req.Context(), "[CtechPay] request failed",
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrPaymentGateway.WithDetails("network error"), err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPaymentGateway.WithDetails("unreadable response"), err.Error())
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.WarnContext(req.Context(), "[CtechPay] non-success status",
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)

		return nil, gatewayError(fmt.Sprintf("status %d", resp.StatusCode), body)
	}

	return body, nil
}

func normalizeCardStatus(body []byte) *service.PaymentResult {
	status := strings.ToUpper(strings.TrimSpace(gjson.GetBytes(body, "status").String()))

	outcome := entity.PaymentOutcomeUnknown
	switch {
	case status == cardStatusPurchased:
		outcome = entity.PaymentOutcomePaid
	case cardFailureStatuses[status]:
		outcome = entity.PaymentOutcomeFailed
	case status != "":
		outcome = entity.PaymentOutcomePending
	}

	return &service.PaymentResult{
		Outcome: outcome,
		Message: gjson.GetBytes(body, "message").String(),
		Raw:     raw(body),
	}
}

func normalizeMobileStatus(body []byte) *service.PaymentResult {
	status := firstString(body, "transaction_status", "data.transaction_status")

	outcome := entity.PaymentOutcomeUnknown
	switch strings.ToUpper(status) {
	case mobileStatusSuccess:
		outcome = entity.PaymentOutcomePaid
	case mobileStatusFailed:
		outcome = entity.PaymentOutcomeFailed
	case mobileStatusInProgress:
		outcome = entity.PaymentOutcomePending
	}

	return &service.PaymentResult{
		Outcome:           outcome,
		ProviderReference: firstString(body, "airtel_money_id", "data.airtel_money_id"),
		Message:           firstString(body, "message", "data.message"),
		Raw:               raw(body),
	}
}

func firstString(body []byte, paths ...string) string {
	for _, result := range gjson.GetManyBytes(body, paths...) {
		if s := result.String(); result.Exists() && s != "" && s != "null" {
			return s
		}
	}

	return ""
}

func raw(body []byte) json.RawMessage {
	if !gjson.ValidBytes(body) {
		return nil
	}

	return json.RawMessage(body)
}

func gatewayError(reason string, body []byte) error {
	details := reason
	if msg := firstString(body, "message", "status.message", "error"); msg != "" {
		details = reason + ": " + msg
	}

	return errors.WithStack(domainerrors.ErrPaymentGateway.WithDetails(details))
}
