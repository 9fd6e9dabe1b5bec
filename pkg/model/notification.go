package model

import "time"

// Notification is a schema leaf: the table exists as part of the
// relational graph but no endpoints operate on it.
type Notification struct {
	ID          int64     `json:"id" db:"id"`
	RecipientID int64     `json:"recipient_id" db:"recipient_id"`
	Message     string    `json:"message" db:"message"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	Status      string    `json:"status" db:"status"`
}
