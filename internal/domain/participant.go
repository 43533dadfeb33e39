package domain

import "time"

// Participant is a registered attendee of an event. EnteredAt is nil until
// the participant's QR token is scanned at the door; HasEntered and EnteredAt
// always change together.
type Participant struct {
	ID         uint       `json:"id"`
	EventID    uint       `json:"event_id"`
	Event      *Event     `json:"event,omitempty"`
	Name       string     `json:"name"`
	Phone      string     `json:"phone"`
	EntryCode  string     `json:"entry_code"`
	QRToken    string     `json:"qr_token"`
	HasEntered bool       `json:"has_entered"`
	EnteredAt  *time.Time `json:"entered_at"`
	CreatedAt  time.Time  `json:"created_at"`
}
