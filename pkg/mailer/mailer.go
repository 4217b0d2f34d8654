package mailer

import (
	"context"
	"fmt"
	"time"

	gomail "gopkg.in/mail.v2"
)

const dialTimeout = 10 * time.Second

// Config holds SMTP configuration for sending emails.
type Config struct {
	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	ToEmail    string
}

// Dialer sends composed messages; *gomail.Dialer satisfies it.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Sender delivers plain text messages via SMTP.
type Sender struct {
	cfg    Config
	dialer Dialer
}

// New creates a sender with the given SMTP configuration.
func New(cfg Config) *Sender {
	d := gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	d.Timeout = dialTimeout
	return NewWithDialer(cfg, d)
}

// NewWithDialer creates a sender using a custom dialer.
func NewWithDialer(cfg Config, d Dialer) *Sender {
	return &Sender{cfg: cfg, dialer: d}
}

// BuildMessage composes a UTF-8 plain text email.
func (s *Sender) BuildMessage(subject, text string) *gomail.Message {
	m := gomail.NewMessage(gomail.SetCharset("UTF-8"))
	m.SetHeader("From", s.cfg.FromEmail)
	m.SetHeader("To", s.cfg.ToEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)
	return m
}

// Send delivers subject and text to the configured recipient.
func (s *Sender) Send(ctx context.Context, subject, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.dialer.DialAndSend(s.BuildMessage(subject, text)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", s.cfg.ToEmail, err)
	}
	return nil
}
