package email

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"licensing/internal/errors"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	tmplWelcome           = "welcome.html"
	tmplPasswordReset     = "password_reset.html"
	tmplTemporaryPassword = "temporary_password.html"
	tmplContractExpiry    = "contract_expiry.html"
	tmplRentReminder      = "rent_reminder.html"
	tmplRentOverdue       = "rent_overdue.html"
)

// Each template file defines "subject", "text" and "html". Subject and text go through
// text/template so they are not entity escaped; the html part is rendered by html/template.
type templateSet struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

type rendered struct {
	Subject string
	Text    string
	HTML    string
}

var funcs = map[string]any{
	"date":  func(t time.Time) string { return t.Format("2 January 2006") },
	"money": func(d decimal.Decimal) string { return "MWK " + d.StringFixed(2) },
}

func loadTemplates() (map[string]*templateSet, error) {
	names := []string{tmplWelcome, tmplPasswordReset, tmplTemporaryPassword, tmplContractExpiry, tmplRentReminder, tmplRentOverdue}
	sets := make(map[string]*templateSet, len(names))

	for _, name := range names {
		text, err := texttemplate.New(name).Funcs(funcs).ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, errors.Wrapf(err, "parse text template %s", name)
		}
		html, err := htmltemplate.New(name).Funcs(funcs).ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, errors.Wrapf(err, "parse html template %s", name)
		}
		sets[name] = &templateSet{text: text, html: html}
	}

	return sets, nil
}

func (s *templateSet) render(data any) (*rendered, error) {
	var subject, text, html bytes.Buffer

	if err := s.text.ExecuteTemplate(&subject, "subject", data); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := s.text.ExecuteTemplate(&text, "text", data); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := s.html.ExecuteTemplate(&html, "html", data); err != nil {
		return nil, errors.WithStack(err)
	}

	return &rendered{
		Subject: strings.TrimSpace(subject.String()),
		Text:    strings.TrimSpace(text.String()),
		HTML:    html.String(),
	}, nil
}
