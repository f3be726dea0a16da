package dto

// CreateMentorRequest registers the caller as a mentor
type CreateMentorRequest struct {
	Interests       []string `json:"interests" validate:"omitempty,dive,notblank" example:"DSA,System Design"`
	Availability    *string  `json:"availability" example:"Weekends"`
	ContactWhatsapp *string  `json:"contactWhatsapp"`
	ContactEmail    *string  `json:"contactEmail" validate:"omitempty,email"`
	IsAvailable     *bool    `json:"isAvailable"`
}

// UpdateMentorRequest partially updates the caller's mentor profile
type UpdateMentorRequest struct {
	Interests       []string `json:"interests" validate:"omitempty,dive,notblank"`
	Availability    *string  `json:"availability"`
	ContactWhatsapp *string  `json:"contactWhatsapp"`
	ContactEmail    *string  `json:"contactEmail" validate:"omitempty,email"`
	IsAvailable     *bool    `json:"isAvailable"`
}

// IsEmpty reports an update that changes nothing
func (r UpdateMentorRequest) IsEmpty() bool {
	return r.Interests == nil && r.Availability == nil && r.ContactWhatsapp == nil &&
		r.ContactEmail == nil && r.IsAvailable == nil
}
