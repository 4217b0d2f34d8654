package usecase

import "strings"

// shouldProcess checks the persisted set first, then the upcoming reminder titles.
// Legacy "<code>|<location>" keys were normalized when the set was loaded, so a
// plain membership test covers both key formats.
func shouldProcess(code string, st *runState) decision {
	if st.codes.Contains(code) {
		return decisionCached
	}
	for _, r := range st.reminders {
		if strings.Contains(r.Title, code) {
			return decisionExistingReminder
		}
	}
	return decisionNew
}
