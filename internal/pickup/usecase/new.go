package usecase

import (
	"express-sms/internal/pickup"
	"express-sms/internal/pickup/repository"
	pkgLog "express-sms/pkg/log"
)

// Matcher extracts a pickup code and location from message text.
type Matcher interface {
	Match(text string) (pickup.Extraction, bool)
}

type implUseCase struct {
	l         pkgLog.Logger
	matcher   Matcher
	messages  repository.MessageSource
	reminders repository.ReminderRepository
	notifier  repository.Notifier
	store     repository.KVStore
}

// New creates a new pickup UseCase instance.
func New(
	l pkgLog.Logger,
	matcher Matcher,
	messages repository.MessageSource,
	reminders repository.ReminderRepository,
	notifier repository.Notifier,
	store repository.KVStore,
) pickup.UseCase {
	return &implUseCase{
		l:         l,
		matcher:   matcher,
		messages:  messages,
		reminders: reminders,
		notifier:  notifier,
		store:     store,
	}
}
