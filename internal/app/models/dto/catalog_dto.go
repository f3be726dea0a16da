package dto

type CreateClubRequest struct {
	Name        string  `json:"name" validate:"required,notblank"`
	Category    string  `json:"category" validate:"required,notblank" example:"Technical"`
	Description *string `json:"description"`
	Instagram   *string `json:"instagram"`
	Email       *string `json:"email" validate:"omitempty,email"`
	MeetingTime *string `json:"meetingTime"`
}

// CreateOpportunityRequest takes Deadline as a YYYY-MM-DD date
type CreateOpportunityRequest struct {
	Type        string   `json:"type" validate:"required,notblank" example:"internship"`
	Title       string   `json:"title" validate:"required,notblank"`
	Description *string  `json:"description"`
	Deadline    *string  `json:"deadline" validate:"omitempty,isodate" example:"2025-03-31"`
	Link        *string  `json:"link" validate:"omitempty,url"`
	Contact     *string  `json:"contact"`
	Tags        []string `json:"tags" validate:"omitempty,dive,notblank"`
}

type CreateProjectIfpRequest struct {
	Title     string  `json:"title" validate:"required,notblank"`
	Dept      string  `json:"dept" validate:"required,notblank"`
	Area      string  `json:"area" validate:"required,notblank"`
	Brief     *string `json:"brief"`
	GuideName string  `json:"guideName" validate:"required,notblank"`
	Contact   string  `json:"contact" validate:"required,notblank"`
	Year      *int    `json:"year" validate:"required,min=1900,max=3000" example:"2025"`
	Link      *string `json:"link" validate:"omitempty,url"`
}

type CreateLinkRequest struct {
	Label       string  `json:"label" validate:"required,notblank"`
	URL         string  `json:"url" validate:"required,url"`
	Group       string  `json:"group" validate:"required,notblank" example:"SSN Official"`
	Description *string `json:"description"`
}

type CreateDiscussionRequest struct {
	Label     string   `json:"label" validate:"required,notblank"`
	Platform  string   `json:"platform" validate:"required,oneof=WhatsApp Discord Telegram" example:"Discord"`
	URL       string   `json:"url" validate:"required,url"`
	TopicTags []string `json:"topicTags" validate:"omitempty,dive,notblank"`
}
