package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is one bilingual note sent to the customer about an order.
type Message struct {
	ID        string    `json:"id"`
	Urdu      string    `json:"urdu"`
	English   string    `json:"english"`
	Timestamp time.Time `json:"timestamp"`
}

// AppendMessage returns a new log with the message in front. The existing
// slice is left untouched.
func AppendMessage(existing []Message, urdu, english string, now time.Time) []Message {
	msg := Message{
		ID:        uuid.NewString(),
		Urdu:      urdu,
		English:   english,
		Timestamp: now,
	}
	out := make([]Message, 0, len(existing)+1)
	out = append(out, msg)
	return append(out, existing...)
}
