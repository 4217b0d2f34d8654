package usecase

import (
	"testing"

	"express-sms/internal/model"
	"express-sms/internal/pickup"
)

func TestShouldProcess(t *testing.T) {
	st := &runState{
		codes:     pickup.ParseCodeSet([]string{"1234", "77|东门"}),
		reminders: []model.Reminder{{Title: "取件码: A-9"}, {Title: "买菜"}},
	}

	cases := []struct {
		code string
		want decision
	}{
		{"1234", decisionCached},
		{"77", decisionCached},
		{"A-9", decisionExistingReminder},
		{"5555", decisionNew},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			if got := shouldProcess(tc.code, st); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}

	t.Run("Cache checked before reminders", func(t *testing.T) {
		st := &runState{
			codes:     pickup.ParseCodeSet([]string{"1234"}),
			reminders: []model.Reminder{{Title: "取件码: 1234"}},
		}
		if got := shouldProcess("1234", st); got != decisionCached {
			t.Errorf("expected cached, got %s", got)
		}
	})
}
