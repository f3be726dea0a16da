package dto

import "time"

// CreateNoteRequest describes an uploaded note. The uploader is the caller.
type CreateNoteRequest struct {
	Dept        string  `json:"dept" validate:"required,notblank" example:"CSE"`
	Semester    *int    `json:"semester" validate:"required,min=1,max=12" example:"5"`
	CourseCode  string  `json:"courseCode" validate:"required,notblank" example:"CS6501"`
	Title       string  `json:"title" validate:"required,notblank,max=300"`
	Description *string `json:"description"`
	FileURL     string  `json:"fileUrl" validate:"required,notblank"`
	Pages       *int    `json:"pages" validate:"omitempty,min=0"`
}

// CreateEventRequest describes an event. The creator is the caller.
type CreateEventRequest struct {
	Title       string     `json:"title" validate:"required,notblank,max=300"`
	Description *string    `json:"description"`
	Organizer   string     `json:"organizer" validate:"required,notblank"`
	Date        *time.Time `json:"date" validate:"required" example:"2025-03-14T10:00:00Z"`
	Location    *string    `json:"location"`
	Link        *string    `json:"link" validate:"omitempty,url"`
	Tags        []string   `json:"tags" validate:"omitempty,dive,notblank"`
}

// DownloadResponse acknowledges a download count increment
type DownloadResponse struct {
	Success bool `json:"success" example:"true"`
}
