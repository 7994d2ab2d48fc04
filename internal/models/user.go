package models

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64  `json:"id" db:"id"`           // Primary key
	Email        string `json:"email" db:"email"`     // Unique email address
	PasswordHash string `json:"-" db:"password_hash"` // Hashed password, never exposed
}
