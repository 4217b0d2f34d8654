package repository

// CreateReminderOptions holds the parameters for creating a reminder.
type CreateReminderOptions struct {
	Title     string
	Notes     string
	Priority  int
	ListTitle string
}

// NotifyOptions holds a notification title and body.
type NotifyOptions struct {
	Title string
	Body  string
}
