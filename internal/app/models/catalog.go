package models

import "time"

// Club is a student club listing
type Club struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name" example:"SSN ACM Student Chapter"`
	Category    string    `json:"category" db:"category" example:"ACM"`
	Description *string   `json:"description" db:"description"`
	Instagram   *string   `json:"instagram" db:"instagram"`
	Email       *string   `json:"email" db:"email"`
	MeetingTime *string   `json:"meetingTime" db:"meeting_time"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Opportunity is a job, internship or similar posting.
// Deadline is a calendar date in YYYY-MM-DD form.
type Opportunity struct {
	ID          string    `json:"id" db:"id"`
	Type        string    `json:"type" db:"type" example:"internship"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	Deadline    *string   `json:"deadline" db:"deadline" example:"2025-03-31"`
	Link        *string   `json:"link" db:"link"`
	Contact     *string   `json:"contact" db:"contact"`
	Tags        []string  `json:"tags" db:"tags"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// ProjectIfp is an industry/faculty project listing
type ProjectIfp struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Dept      string    `json:"dept" db:"dept" example:"CSE"`
	Area      string    `json:"area" db:"area" example:"Machine Learning"`
	Brief     *string   `json:"brief" db:"brief"`
	GuideName string    `json:"guideName" db:"guide_name"`
	Contact   string    `json:"contact" db:"contact"`
	Year      int       `json:"year" db:"year" example:"2025"`
	Link      *string   `json:"link" db:"link"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Link is a curated community link
type Link struct {
	ID          string    `json:"id" db:"id"`
	Label       string    `json:"label" db:"label" example:"SSN Official Website"`
	URL         string    `json:"url" db:"url" example:"https://ssn.edu.in/"`
	Group       string    `json:"group" db:"group" example:"SSN Official"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// DiscussionChannel is an external chat group
type DiscussionChannel struct {
	ID        string    `json:"id" db:"id"`
	Label     string    `json:"label" db:"label" example:"GATE Preparation"`
	Platform  Platform  `json:"platform" db:"platform" example:"Telegram"`
	URL       string    `json:"url" db:"url"`
	TopicTags []string  `json:"topicTags" db:"topic_tags"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
