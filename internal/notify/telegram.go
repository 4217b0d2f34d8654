package notify

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"express-sms/internal/pickup/repository"
	pkgLog "express-sms/pkg/log"
)

// MessageSender abstracts the Telegram bot for mocking.
type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type telegramNotifier struct {
	bot     MessageSender
	chatID  int64
	limiter *chatLimiter
	l       pkgLog.Logger
}

// NewTelegram sends notifications to one chat, throttled to ratePerMin.
func NewTelegram(bot MessageSender, chatID int64, ratePerMin int, l pkgLog.Logger) repository.Notifier {
	return &telegramNotifier{
		bot:     bot,
		chatID:  chatID,
		limiter: newChatLimiter(ratePerMin),
		l:       l,
	}
}

func (n *telegramNotifier) Send(ctx context.Context, opt repository.NotifyOptions) error {
	if err := n.limiter.Wait(ctx, n.chatID); err != nil {
		return fmt.Errorf("telegram throttle: %w", err)
	}
	if err := n.bot.SendMessage(ctx, n.chatID, formatText(opt)); err != nil {
		n.l.Errorf(ctx, "notify: telegram send to %d failed: %v", n.chatID, err)
		return err
	}
	n.l.Debugf(ctx, "notify: telegram sent to %d", n.chatID)
	return nil
}

func formatText(opt repository.NotifyOptions) string {
	if opt.Title == "" {
		return opt.Body
	}
	return opt.Title + "\n" + opt.Body
}

// chatLimiter keeps one token bucket per chat, dropping idle chats after a while.
type chatLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newChatLimiter(perMin int) *chatLimiter {
	burst := perMin / 10
	if burst < 1 {
		burst = 1
	}
	return &chatLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](100, nil, 10*time.Minute),
		rate:     rate.Limit(float64(perMin) / 60.0),
		burst:    burst,
	}
}

func (cl *chatLimiter) Wait(ctx context.Context, chatID int64) error {
	key := strconv.FormatInt(chatID, 10)
	limiter, ok := cl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(cl.rate, cl.burst)
		cl.limiters.Add(key, limiter)
	}
	return limiter.Wait(ctx)
}
