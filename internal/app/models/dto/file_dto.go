package dto

// FileUploadResponse describes a stored note file
type FileUploadResponse struct {
	URL         string `json:"url" example:"http://localhost:8080/uploads/notes/3f2c.pdf"`
	Key         string `json:"key" example:"notes/3f2c.pdf"`
	FileName    string `json:"fileName" example:"unit1.pdf"`
	Size        int64  `json:"size" example:"1048576"`
	ContentType string `json:"contentType" example:"application/pdf"`
}
