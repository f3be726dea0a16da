package dto

import "time"

// SuccessResponse represents a bare acknowledgement
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status   string    `json:"status" example:"ok"`
	Database string    `json:"database" example:"ok"`
	Time     time.Time `json:"time"`
}
