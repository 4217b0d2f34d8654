package usecase

import (
	"context"
	"fmt"

	"express-sms/internal/model"
	"express-sms/internal/pickup"
	"express-sms/internal/pickup/repository"
)

// dispatch creates the reminder, then sends the notification.
func (uc *implUseCase) dispatch(ctx context.Context, ext pickup.Extraction, msg model.Message) error {
	_, err := uc.reminders.CreateReminder(ctx, repository.CreateReminderOptions{
		Title:     pickup.ReminderTitle(ext.Code),
		Notes:     pickup.ReminderNotes(ext.Location, msg.Content()),
		Priority:  pickup.ReminderPriority,
		ListTitle: pickup.ReminderListTitle,
	})
	if err != nil {
		return fmt.Errorf("%w for %s: %w", pickup.ErrCreateReminder, ext.Code, err)
	}

	err = uc.notifier.Send(ctx, repository.NotifyOptions{
		Title: pickup.NotificationTitle,
		Body:  pickup.NotificationBody(ext.Code, ext.Location),
	})
	if err != nil {
		return fmt.Errorf("%w for %s: %w", pickup.ErrNotify, ext.Code, err)
	}
	return nil
}

// commit persists the whole working set under the fixed key.
func (uc *implUseCase) commit(ctx context.Context, st *runState) error {
	if err := uc.store.Set(ctx, pickup.ProcessedCodesKey, st.codes.Keys()); err != nil {
		return fmt.Errorf("%w: %w", pickup.ErrPersistCodes, err)
	}
	return nil
}
