package dto

// UpsertProfileRequest carries the caller's own profile fields.
// Nil fields are left untouched; role is never accepted from the client.
type UpsertProfileRequest struct {
	Email           *string           `json:"email" validate:"omitempty,email" example:"student@ssn.edu.in"`
	FirstName       *string           `json:"firstName" validate:"omitempty,max=100"`
	LastName        *string           `json:"lastName" validate:"omitempty,max=100"`
	ProfileImageURL *string           `json:"profileImageUrl" validate:"omitempty,url"`
	Year            *int              `json:"year" validate:"omitempty,min=1,max=4" example:"3"`
	Program         *string           `json:"program" validate:"omitempty,max=100"`
	Department      *string           `json:"department" validate:"omitempty,max=100" example:"CSE"`
	Intro           *string           `json:"intro" validate:"omitempty,max=2000"`
	Skills          []string          `json:"skills" validate:"omitempty,dive,notblank"`
	Phone           *string           `json:"phone" validate:"omitempty,max=32"`
	Socials         map[string]string `json:"socials"`
}

// IdentityClaims is the subset of an identity provider token stored on login
type IdentityClaims struct {
	Subject         string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}
