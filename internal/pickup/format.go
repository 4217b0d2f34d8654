package pickup

import "fmt"

// ReminderTitle is the title of the reminder created for code.
func ReminderTitle(code string) string {
	return fmt.Sprintf(reminderTitleFmt, code)
}

// ReminderNotes embeds the location and the raw message text.
func ReminderNotes(location, raw string) string {
	return fmt.Sprintf(reminderNotesFmt, location, raw)
}

// NotificationBody is the user-facing notification text.
func NotificationBody(code, location string) string {
	return fmt.Sprintf(notificationBodyFmt, code, location)
}
