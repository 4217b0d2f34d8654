package model

import "time"

// Message is a single SMS as handed over by the message source.
type Message struct {
	Sender     string    `json:"sender,omitempty" yaml:"sender,omitempty"`
	Text       string    `json:"text,omitempty" yaml:"text,omitempty"`
	Body       string    `json:"body,omitempty" yaml:"body,omitempty"`
	ReceivedAt time.Time `json:"received_at,omitempty" yaml:"received_at,omitempty"`
}

// Content returns Text, falling back to Body when Text is empty.
func (m Message) Content() string {
	if m.Text != "" {
		return m.Text
	}
	return m.Body
}
