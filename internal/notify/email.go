package notify

import (
	"context"

	"express-sms/internal/pickup/repository"
	pkgLog "express-sms/pkg/log"
)

// MailSender abstracts the SMTP sender for mocking.
type MailSender interface {
	Send(ctx context.Context, subject, text string) error
}

type emailNotifier struct {
	mail MailSender
	l    pkgLog.Logger
}

// NewEmail sends each notification as one plain text email.
func NewEmail(mail MailSender, l pkgLog.Logger) repository.Notifier {
	return &emailNotifier{mail: mail, l: l}
}

func (n *emailNotifier) Send(ctx context.Context, opt repository.NotifyOptions) error {
	if err := n.mail.Send(ctx, opt.Title, opt.Body); err != nil {
		n.l.Errorf(ctx, "notify: email failed: %v", err)
		return err
	}
	n.l.Debugf(ctx, "notify: email sent: %s", opt.Title)
	return nil
}
