package usecase

import (
	"express-sms/internal/model"
	"express-sms/internal/pickup"
)

// runState is built fresh for every Run and passed down the call chain.
type runState struct {
	out       pickup.RunOutput
	codes     *pickup.CodeSet
	reminders []model.Reminder
}

// decision is the outcome of the deduplication gate.
type decision int

const (
	decisionNew decision = iota
	decisionCached
	decisionExistingReminder
)

func (d decision) String() string {
	switch d {
	case decisionCached:
		return "cached"
	case decisionExistingReminder:
		return "existing-reminder"
	default:
		return "new"
	}
}
