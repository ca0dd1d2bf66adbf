// Package email sends transactional mail through Amazon SES.
package email

import (
	"context"
	"log/slog"

	"licensing/config"
	"licensing/internal/domain/service"
	"licensing/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/fx"
)

const charset = "UTF-8"

// SESAPI is the subset of the SES client used by the mailer.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Mailer renders the embedded templates and hands them to SES, or to the log when
// email is not configured.
type Mailer struct {
	client       SESAPI
	from         string
	dashboardURL string
	templates    map[string]*templateSet
	logger       *slog.Logger
}

// Params holds dependencies for the mailer, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New builds the SES mailer from the default AWS credential chain.
func New(params Params) (service.Mailer, error) {
	var client SESAPI
	from := ""

	if cfg := params.Config.Email; cfg != nil && cfg.From != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(params.Ctx, awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, errors.Wrap(err, "load aws config")
		}
		client = ses.NewFromConfig(awsCfg)
		from = cfg.From
	} else {
		params.Logger.Info("Email not configured, outgoing mail is logged only")
	}

	return NewMailer(client, from, params.Config.Billing.FrontendURL, params.Logger)
}

// NewMailer creates a mailer over client. A nil client logs instead of sending.
func NewMailer(client SESAPI, from, dashboardURL string, logger *slog.Logger) (*Mailer, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	return &Mailer{
		client:       client,
		from:         from,
		dashboardURL: dashboardURL,
		templates:    templates,
		logger:       logger,
	}, nil
}

func (m *Mailer) SendWelcome(ctx context.Context, to, username string) error {
	return m.send(ctx, to, tmplWelcome, map[string]string{
		"Username":     username,
		"DashboardURL": m.dashboardURL,
	})
}

func (m *Mailer) SendPasswordReset(ctx context.Context, to, username, resetLink string) error {
	return m.send(ctx, to, tmplPasswordReset, map[string]string{
		"Username":  username,
		"ResetLink": resetLink,
	})
}

func (m *Mailer) SendTemporaryPassword(ctx context.Context, to, username, password string) error {
	return m.send(ctx, to, tmplTemporaryPassword, map[string]string{
		"Username": username,
		"Password": password,
	})
}

func (m *Mailer) SendContractExpiry(ctx context.Context, to string, mail service.ContractExpiryMail) error {
	return m.send(ctx, to, tmplContractExpiry, mail)
}

func (m *Mailer) SendRentReminder(ctx context.Context, to string, mail service.RentReminderMail) error {
	return m.send(ctx, to, tmplRentReminder, mail)
}

func (m *Mailer) SendRentOverdue(ctx context.Context, to string, mail service.RentOverdueMail) error {
	return m.send(ctx, to, tmplRentOverdue, mail)
}

func (m *Mailer) send(ctx context.Context, to, name string, data any) error {
	set, ok := m.templates[name]
	if !ok {
		return errors.Errorf("email template %s not loaded", name)
	}

	msg, err := set.render(data)
	if err != nil {
		return errors.Wrapf(err, "render %s", name)
	}

	if m.client == nil {
		m.logger.InfoContext(ctx, "[Email] delivery skipped",
			slog.String("to", to),
			slog.String("subject", msg.Subject),
		)

		return nil
	}

	_, err = m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(m.from),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String(charset)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(msg.Text), Charset: aws.String(charset)},
				Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String(charset)},
			},
		},
	})
	if err != nil {
		return errors.Wrapf(err, "ses send %s", name)
	}

	m.logger.DebugContext(ctx, "[Email] sent", slog.String("template", name), slog.String("to", to))

	return nil
}
