package model

import "time"

// Reminder is a scheduled reminder item, as seen in the upcoming view.
type Reminder struct {
	ID       string
	Title    string
	Notes    string
	List     string
	Priority int
	DueAt    time.Time
	Link     string
}
