package entity

import "time"

// MessageColumns is the CSV header of the messages table.
var MessageColumns = []string{"message_id", "guest_user_id", "host_user_id", "message_content", "time_message"}

// Message is a note exchanged between a guest and a host. No booking between
// the two is implied.
type Message struct {
	ID          string
	GuestUserID string
	HostUserID  string
	Content     string
	SentAt      time.Time
}

// Values returns the cells of m in MessageColumns order.
func (m Message) Values() []string {
	return []string{m.ID, m.GuestUserID, m.HostUserID, m.Content, formatTimestamp(m.SentAt)}
}
