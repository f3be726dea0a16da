package models

import "time"

// Event is a dated happening announced by a user
type Event struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title" example:"IEEE Hackathon"`
	Description *string   `json:"description" db:"description"`
	Organizer   string    `json:"organizer" db:"organizer" example:"SSN IEEE Computer Society"`
	Date        time.Time `json:"date" db:"date"`
	Location    *string   `json:"location" db:"location"`
	Link        *string   `json:"link" db:"link"`
	Tags        []string  `json:"tags" db:"tags" example:"IEEE,hackathon"`
	CreatedBy   string    `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Creator     *User     `json:"creator,omitempty" db:"-"`
}
