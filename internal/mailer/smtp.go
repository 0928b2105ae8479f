// Package mailer sends the approval broadcast over SMTP. It is a plain
// broadcast: one message, the full recipient list, no templating.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"newsroom/internal/config"
)

type SMTP struct {
	addr   string
	from   string
	auth   smtp.Auth
	logger *slog.Logger
}

func New(cfg config.SMTPConfig, logger *slog.Logger) *SMTP {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTP{
		addr:   cfg.Addr(),
		from:   cfg.From,
		auth:   auth,
		logger: logger.With("component", "mailer"),
	}
}

// Send delivers one message to all recipients in a single SMTP session.
// Recipient addresses go on the envelope; the To header carries them too,
// which is acceptable for a subscriber broadcast.
func (m *SMTP) Send(ctx context.Context, subject, body string, recipients []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	msg.WriteString("From: " + m.from + "\r\n")
	msg.WriteString("To: " + strings.Join(recipients, ", ") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, recipients, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	m.logger.Debug("mail sent", "recipients", len(recipients))
	return nil
}
