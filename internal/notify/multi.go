package notify

import (
	"context"

	"express-sms/internal/pickup/repository"
)

type multiNotifier struct {
	channels []repository.Notifier
}

// NewMulti fans one notification out to every channel in order and stops at the first error.
func NewMulti(channels ...repository.Notifier) repository.Notifier {
	if len(channels) == 1 {
		return channels[0]
	}
	return &multiNotifier{channels: channels}
}

func (n *multiNotifier) Send(ctx context.Context, opt repository.NotifyOptions) error {
	for _, ch := range n.channels {
		if err := ch.Send(ctx, opt); err != nil {
			return err
		}
	}
	return nil
}
