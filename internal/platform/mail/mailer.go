// Package mail sends plain-text notification emails over SMTP.
package mail

import (
	"context"
	"fmt"

	"jobtrack/internal/platform/config"
	"jobtrack/internal/platform/logger"

	gomail "github.com/wneessen/go-mail"
)

// Mailer delivers notification emails. When credentials are not configured
// Send is a logged no-op, so a missing SMTP setup never breaks anything.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.EmailFrom,
	}
}

// Configured reports whether SMTP credentials are present.
func (m *Mailer) Configured() bool {
	return m.user != "" && m.pass != ""
}

// Send composes and delivers a plain-text email. The error return exists for
// logging at the call site only; callers must never propagate it further.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if !m.Configured() {
		logger.Log.Warnw("email credentials not set, skipping email notification", "to", to)
		return nil
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("setting from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	client, err := gomail.NewClient(m.host,
		gomail.WithPort(m.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.user),
		gomail.WithPassword(m.pass),
	)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending email to %s: %w", to, err)
	}

	logger.Log.Infow("email sent", "to", to, "subject", subject)
	return nil
}
