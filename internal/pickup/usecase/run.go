package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"express-sms/internal/model"
	"express-sms/internal/pickup"
	pkgLog "express-sms/pkg/log"
)

// Run reads recent messages once and triages them in source order.
// Any collaborator error aborts the rest of the run; codes committed
// before the failure stay committed.
func (uc *implUseCase) Run(ctx context.Context) (pickup.RunOutput, error) {
	runID := uuid.NewString()
	ctx = pkgLog.WithRunID(ctx, runID)
	st := &runState{out: pickup.RunOutput{RunID: runID}}

	messages, err := uc.messages.ReadRecent(ctx, pickup.MessageFetchLimit)
	if err != nil {
		return st.out, fmt.Errorf("%w: %w", pickup.ErrReadMessages, err)
	}
	if len(messages) == 0 {
		uc.l.Info(ctx, "No messages read")
		return st.out, nil
	}
	st.out.MessagesRead = len(messages)

	st.reminders, err = uc.reminders.GetUpcoming(ctx, pickup.ReminderLookahead)
	if err != nil {
		return st.out, fmt.Errorf("%w: %w", pickup.ErrReadReminders, err)
	}

	if err := uc.loadCodes(ctx, st); err != nil {
		return st.out, err
	}

	for _, msg := range messages {
		if err := uc.processMessage(ctx, st, msg); err != nil {
			return st.out, err
		}
	}

	if st.out.Processed == 0 {
		uc.l.Infof(ctx, "No new pickup code messages found (%d messages read)", st.out.MessagesRead)
	} else {
		uc.l.Infof(ctx, "Processed %d new pickup codes", st.out.Processed)
	}
	return st.out, nil
}

func (uc *implUseCase) loadCodes(ctx context.Context, st *runState) error {
	keys, found, err := uc.store.Get(ctx, pickup.ProcessedCodesKey)
	if err != nil {
		return fmt.Errorf("%w: %w", pickup.ErrLoadCodes, err)
	}
	if !found {
		uc.l.Debugf(ctx, "No processed codes stored under %s yet", pickup.ProcessedCodesKey)
	}

	st.codes = pickup.ParseCodeSet(keys)
	if n := st.codes.Migrated(); n > 0 {
		uc.l.Infof(ctx, "Normalized %d legacy processed-code keys", n)
		for _, rec := range st.codes.Records() {
			if rec.LegacySuffix != "" {
				uc.l.Debugf(ctx, "Legacy key %s|%s stored as %s", rec.Code, rec.LegacySuffix, rec.Code)
			}
		}
	}
	return nil
}

func (uc *implUseCase) processMessage(ctx context.Context, st *runState, msg model.Message) error {
	ext, ok := uc.matcher.Match(msg.Content())
	if !ok {
		return nil
	}
	st.out.Matched++

	switch shouldProcess(ext.Code, st) {
	case decisionCached:
		uc.l.Infof(ctx, "Skipping cached pickup code: %s", ext.Code)
		st.out.SkippedCached++
		return nil

	case decisionExistingReminder:
		uc.l.Infof(ctx, "Skipping pickup code with existing reminder: %s", ext.Code)
		st.out.SkippedReminder++
		if !st.codes.Add(ext.Code) {
			return nil
		}
		st.out.Backfilled++
		st.out.HasNew = true
		return uc.commit(ctx, st)
	}

	if err := uc.dispatch(ctx, ext, msg); err != nil {
		return err
	}
	uc.l.Infof(ctx, "Extracted pickup code: %s (%s) via %s from %s", ext.Code, ext.Location, ext.Rule, senderOf(ext, msg))
	if !msg.ReceivedAt.IsZero() {
		uc.l.Debugf(ctx, "Pickup code %s received at %s", ext.Code, msg.ReceivedAt.Format(time.RFC3339))
	}

	st.codes.Add(ext.Code)
	st.out.HasNew = true
	st.out.Processed++
	st.out.ProcessedCodes = append(st.out.ProcessedCodes, ext.Code)
	return uc.commit(ctx, st)
}

// senderOf prefers the bracketed tag from the message text over the source's sender field.
func senderOf(ext pickup.Extraction, msg model.Message) string {
	if ext.Sender != "" {
		return ext.Sender
	}
	if msg.Sender != "" {
		return msg.Sender
	}
	return "unknown sender"
}
