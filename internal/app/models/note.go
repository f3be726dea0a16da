package models

import "time"

// Note is an uploaded course document
type Note struct {
	ID          string    `json:"id" db:"id"`
	Dept        string    `json:"dept" db:"dept" example:"CSE"`
	Semester    int       `json:"semester" db:"semester" example:"5"`
	CourseCode  string    `json:"courseCode" db:"course_code" example:"CS6501"`
	Title       string    `json:"title" db:"title" example:"Compiler Design Unit 1"`
	Description *string   `json:"description" db:"description"`
	FileURL     string    `json:"fileUrl" db:"file_url"`
	Pages       int       `json:"pages" db:"pages"`
	UploadedBy  string    `json:"uploadedBy" db:"uploaded_by"`
	Downloads   int       `json:"downloads" db:"downloads"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Uploader    *User     `json:"uploader,omitempty" db:"-"`
}
