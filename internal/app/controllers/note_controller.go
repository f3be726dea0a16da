package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/app/services"
	"github.com/takeuforward/portal/internal/middleware"
	"github.com/takeuforward/portal/internal/pkg/helpers"
	"github.com/takeuforward/portal/internal/pkg/validation"
)

// NoteController handles course notes
type NoteController struct {
	noteService services.NoteService
}

// NewNoteController creates a new NoteController
func NewNoteController(noteService services.NoteService) *NoteController {
	return &NoteController{noteService: noteService}
}

// ListNotes lists notes, newest first
// @Summary List notes
// @Tags notes
// @Produce json
// @Param dept query string false "Department"
// @Param semester query int false "Semester"
// @Param courseCode query string false "Course code"
// @Param search query string false "Case-insensitive title search"
// @Success 200 {array} models.Note
// @Failure 400 {object} dto.ErrorDetail "Malformed query parameter"
// @Router /notes [get]
func (c *NoteController) ListNotes(ctx *gin.Context) {
	semester, err := helpers.QueryInt(ctx, "semester")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filter := dto.NoteFilter{
		Dept:       helpers.QueryString(ctx, "dept"),
		Semester:   semester,
		CourseCode: helpers.QueryString(ctx, "courseCode"),
		Search:     helpers.QueryString(ctx, "search"),
	}

	notes, err := c.noteService.ListNotes(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notes)
}

// CreateNote stores a note uploaded by the caller
// @Summary Upload a note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNoteRequest true "Note"
// @Success 201 {object} models.Note
// @Failure 400 {object} dto.ErrorDetail "Invalid request data"
// @Failure 401 {object} dto.ErrorDetail "Not authenticated"
// @Router /notes [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	var req dto.CreateNoteRequest
	if err := validation.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	note, err := c.noteService.CreateNote(ctx.Request.Context(), middleware.CurrentUserID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, note)
}

// DownloadNote counts a download
// @Summary Record a note download
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} dto.DownloadResponse
// @Failure 404 {object} dto.ErrorDetail "Note not found"
// @Router /notes/{id}/download [post]
func (c *NoteController) DownloadNote(ctx *gin.Context) {
	if _, err := c.noteService.RecordDownload(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DownloadResponse{Success: true})
}
