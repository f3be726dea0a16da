package models

import "time"

// Mentor is a senior student's mentoring profile, one per user
type Mentor struct {
	ID              string    `json:"id" db:"id"`
	UserID          string    `json:"userId" db:"user_id"`
	Interests       []string  `json:"interests" db:"interests" example:"DSA,Web Development"`
	Availability    *string   `json:"availability" db:"availability" example:"Weekends"`
	ContactWhatsapp *string   `json:"contactWhatsapp" db:"contact_whatsapp"`
	ContactEmail    *string   `json:"contactEmail" db:"contact_email"`
	Rating          int       `json:"rating" db:"rating"`
	IsAvailable     bool      `json:"isAvailable" db:"is_available"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	User            *User     `json:"user,omitempty" db:"-"`
}
