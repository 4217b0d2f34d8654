package pickup

import "errors"

// Domain-specific errors for the pickup package.
var (
	ErrReadMessages   = errors.New("failed to read messages")
	ErrReadReminders  = errors.New("failed to read upcoming reminders")
	ErrLoadCodes      = errors.New("failed to load processed codes")
	ErrPersistCodes   = errors.New("failed to persist processed codes")
	ErrCreateReminder = errors.New("failed to create reminder")
	ErrNotify         = errors.New("failed to send notification")
)
