package models

import (
	"time"
)

// User defines the user model based on the 'users' table.
// ID is the identity provider's subject, not a generated value.
type User struct {
	ID              string            `json:"id" db:"id" example:"41892011"`
	Email           *string           `json:"email" db:"email" example:"student@ssn.edu.in"`
	FirstName       *string           `json:"firstName" db:"first_name" example:"Priya"`
	LastName        *string           `json:"lastName" db:"last_name" example:"Raman"`
	ProfileImageURL *string           `json:"profileImageUrl" db:"profile_image_url"`
	Year            *int              `json:"year" db:"year" example:"3"`
	Program         *string           `json:"program" db:"program" example:"B.E."`
	Department      *string           `json:"department" db:"department" example:"CSE"`
	Intro           *string           `json:"intro" db:"intro"`
	Skills          []string          `json:"skills" db:"skills"`
	Phone           *string           `json:"phone" db:"phone"`
	Role            RoleType          `json:"role" db:"role" example:"student"`
	Socials         map[string]string `json:"socials" db:"socials"`
	CreatedAt       time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time         `json:"updatedAt" db:"updated_at"`
}
