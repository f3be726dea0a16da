package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takeuforward/portal/internal/app/services"
	"github.com/takeuforward/portal/internal/middleware"
	"github.com/takeuforward/portal/internal/pkg/apperrors"
)

// FileController handles note file uploads
type FileController struct {
	fileService services.FileService
}

// NewFileController creates a new FileController
func NewFileController(fileService services.FileService) *FileController {
	return &FileController{fileService: fileService}
}

// UploadFile stores a note document and returns its URL for use as fileUrl
// @Summary Upload a note file
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Document"
// @Success 201 {object} dto.FileUploadResponse
// @Failure 400 {object} dto.ErrorDetail "Missing, oversized or unsupported file"
// @Failure 401 {object} dto.ErrorDetail "Not authenticated"
// @Router /files [post]
func (c *FileController) UploadFile(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			err = apperrors.NewValidationError("no file uploaded", map[string]string{"file": "is required"})
		} else {
			err = apperrors.NewBadRequestError("invalid multipart form")
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.fileService.UploadNoteFile(ctx.Request.Context(), middleware.CurrentUserID(ctx), file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}
