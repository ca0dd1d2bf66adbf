package email

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"licensing/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.inputs = append(f.inputs, params)

	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, f.err
}

func newTestMailer(t *testing.T, client SESAPI) *Mailer {
	t.Helper()

	m, err := NewMailer(client, "noreply@licensing.test", "https://app.licensing.test", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return m
}

func TestMailer_SendContractExpiry(t *testing.T) {
	client := &fakeSES{}
	mailer := newTestMailer(t, client)

	err := mailer.SendContractExpiry(context.Background(), "owner@example.com", service.ContractExpiryMail{
		Username:     "owner",
		BusinessName: "Chisomo Grocery",
		Expiry:       time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		DaysLeft:     14,
	})
	require.NoError(t, err)
	require.Len(t, client.inputs, 1)

	input := client.inputs[0]
	assert.Equal(t, "noreply@licensing.test", aws.ToString(input.Source))
	assert.Equal(t, []string{"owner@example.com"}, input.Destination.ToAddresses)
	assert.Equal(t, "Contract expiry notice - Chisomo Grocery", aws.ToString(input.Message.Subject.Data))
	assert.Contains(t, aws.ToString(input.Message.Body.Text.Data), "expire in 14 days (15 June 2025)")
	assert.Contains(t, aws.ToString(input.Message.Body.Html.Data), "<strong>Chisomo Grocery</strong>")
}

func TestMailer_RentReminderFormatsMoney(t *testing.T) {
	client := &fakeSES{}
	mailer := newTestMailer(t, client)

	err := mailer.SendRentReminder(context.Background(), "owner@example.com", service.RentReminderMail{
		BusinessName: "Shop",
		Amount:       decimal.NewFromInt(250),
		DueDate:      time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		DaysUntilDue: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Your rent payment of MWK 250.00 for Shop is due on 5 March 2025.", aws.ToString(client.inputs[0].Message.Body.Text.Data))
}

func TestMailer_HTMLEscapesUserInput(t *testing.T) {
	client := &fakeSES{}
	mailer := newTestMailer(t, client)

	require.NoError(t, mailer.SendWelcome(context.Background(), "a@example.com", "<script>x</script>"))

	html := aws.ToString(client.inputs[0].Message.Body.Html.Data)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "https://app.licensing.test")
	assert.Contains(t, aws.ToString(client.inputs[0].Message.Body.Text.Data), "<script>x</script>")
}

func TestMailer_SendError(t *testing.T) {
	client := &fakeSES{err: errors.New("throttled")}
	mailer := newTestMailer(t, client)

	err := mailer.SendTemporaryPassword(context.Background(), "s@example.com", "support1", "Tmp#1234")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}

func TestMailer_LogOnlyWithoutClient(t *testing.T) {
	mailer := newTestMailer(t, nil)

	assert.NoError(t, mailer.SendPasswordReset(context.Background(), "a@example.com", "a", "https://app/reset/abc"))
	assert.NoError(t, mailer.SendRentOverdue(context.Background(), "a@example.com", service.RentOverdueMail{
		BusinessName: "Shop",
		Amount:       decimal.NewFromInt(10),
		DaysOverdue:  3,
	}))
}
