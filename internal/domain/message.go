package domain

import "time"

// Message is a direct message between two user accounts.
type Message struct {
	ID          int64     `json:"id"`
	Content     string    `json:"content"`
	SentDate    time.Time `json:"sent_date"`
	IsRead      bool      `json:"is_read"`
	SenderID    int64     `json:"sender_id"`
	RecipientID int64     `json:"recipient_id"`
}

// Notification is a per-user event notice, persisted for listing and
// also pushed to the user's notification topic when created.
type Notification struct {
	ID               int64     `json:"id"`
	Message          string    `json:"message"`
	NotificationDate time.Time `json:"notification_date"`
	IsRead           bool      `json:"is_read"`
	RelatedURL       string    `json:"related_url,omitempty"`
	UserID           int64     `json:"user_id"`
}
