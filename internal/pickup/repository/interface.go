package repository

import (
	"context"

	"express-sms/internal/model"
)

// MessageSource reads the most recent messages, newest first.
type MessageSource interface {
	ReadRecent(ctx context.Context, limit int) ([]model.Message, error)
}

// ReminderRepository is the reminder/calendar collaborator.
type ReminderRepository interface {
	GetUpcoming(ctx context.Context, daysAhead int) ([]model.Reminder, error)
	CreateReminder(ctx context.Context, opt CreateReminderOptions) (model.Reminder, error)
}

// Notifier delivers a user-facing notification.
type Notifier interface {
	Send(ctx context.Context, opt NotifyOptions) error
}

// KVStore is a durable key-value store whose values are string collections.
// Get reports found=false for an absent key.
type KVStore interface {
	Get(ctx context.Context, key string) (values []string, found bool, err error)
	Set(ctx context.Context, key string, values []string) error
}
