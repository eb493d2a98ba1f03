// Package notify delivers found-item messages to owners.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
)

// Notifier sends a message to a recipient.
type Notifier interface {
	Notify(ctx context.Context, recipient, subject, body string) error
}

// LogNotifier records messages in the log instead of sending them.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a notifier that logs through logger, or the default
// slog logger when nil.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

// Notify implements Notifier and always succeeds.
func (n *LogNotifier) Notify(ctx context.Context, recipient, subject, body string) error {
	n.logger.InfoContext(ctx, "notification",
		slog.String("to", recipient),
		slog.String("subject", subject),
		slog.String("body", body),
	)
	return nil
}

// SMTPConfig holds mail server settings.
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

// SMTPNotifier sends plain-text mail through an SMTP relay.
type SMTPNotifier struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPNotifier creates an SMTP notifier.
func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, sendMail: smtp.SendMail}
}

// Notify implements Notifier.
func (n *SMTPNotifier) Notify(ctx context.Context, recipient, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if n.cfg.User != "" {
		auth = smtp.PlainAuth("", n.cfg.User, n.cfg.Password, n.cfg.Host)
	}

	addr := net.JoinHostPort(n.cfg.Host, n.cfg.Port)
	if err := n.sendMail(addr, auth, n.cfg.From, []string{recipient}, buildMessage(n.cfg.From, recipient, subject, body)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// FoundItemMessage builds the subject and body sent when an owner's item is
// marked found.
func FoundItemMessage(itemName string, location *string) (subject, body string) {
	where := "Unknown"
	if location != nil && *location != "" {
		where = *location
	}
	subject = fmt.Sprintf("Your item %q has been found", itemName)
	body = fmt.Sprintf("Good news! Your %s was marked as found.\r\nLocation: %s\r\n", itemName, where)
	return subject, body
}
