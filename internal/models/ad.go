package models

import "time"

// AdDB represents an ad record in the database
type AdDB struct {
	ID          int64     `json:"id" db:"id"`                   // Primary key
	Title       string    `json:"title" db:"title"`             // Ad title
	Description string    `json:"description" db:"description"` // Ad body text
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Set by the store at insert time, UTC
	OwnerID     int64     `json:"owner_id" db:"owner_id"`       // User that created the ad
}
