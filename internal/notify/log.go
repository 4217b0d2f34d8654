package notify

import (
	"context"

	"express-sms/internal/pickup/repository"
	pkgLog "express-sms/pkg/log"
)

type logNotifier struct {
	l pkgLog.Logger
}

// NewLog writes notifications to the log. Used when no channel is configured.
func NewLog(l pkgLog.Logger) repository.Notifier {
	return &logNotifier{l: l}
}

func (n *logNotifier) Send(ctx context.Context, opt repository.NotifyOptions) error {
	n.l.Infof(ctx, "[%s] %s", opt.Title, opt.Body)
	return nil
}
