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

// MentorController handles mentor listing and mentor profiles
type MentorController struct {
	mentorService services.MentorService
}

// NewMentorController creates a new MentorController
func NewMentorController(mentorService services.MentorService) *MentorController {
	return &MentorController{mentorService: mentorService}
}

// ListMentors lists available mentors
// @Summary List mentors
// @Description Only mentors marked available are returned. category is accepted and ignored.
// @Tags mentors
// @Produce json
// @Param department query string false "Department of the mentor"
// @Param skills query string false "Comma separated interests, any match"
// @Param category query string false "Ignored"
// @Success 200 {array} models.Mentor
// @Router /mentors [get]
func (c *MentorController) ListMentors(ctx *gin.Context) {
	filter := dto.MentorFilter{
		Department: helpers.QueryString(ctx, "department"),
		Skills:     helpers.QueryList(ctx, "skills"),
		Category:   helpers.QueryString(ctx, "category"),
	}

	mentors, err := c.mentorService.ListMentors(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mentors)
}

// CreateMentor registers the caller as a mentor
// @Summary Become a mentor
// @Tags mentors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMentorRequest true "Mentor profile"
// @Success 201 {object} models.Mentor
// @Failure 400 {object} dto.ErrorDetail "Invalid request data"
// @Failure 401 {object} dto.ErrorDetail "Not authenticated"
// @Failure 409 {object} dto.ErrorDetail "Mentor profile already exists"
// @Router /mentors [post]
func (c *MentorController) CreateMentor(ctx *gin.Context) {
	var req dto.CreateMentorRequest
	if err := validation.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	mentor, err := c.mentorService.CreateMentor(ctx.Request.Context(), middleware.CurrentUserID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, mentor)
}

// GetMyMentor returns the caller's mentor profile
// @Summary Get my mentor profile
// @Tags mentors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Mentor
// @Failure 404 {object} dto.ErrorDetail "No mentor profile"
// @Router /mentors/me [get]
func (c *MentorController) GetMyMentor(ctx *gin.Context) {
	mentor, err := c.mentorService.GetMyMentor(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mentor)
}

// UpdateMyMentor partially updates the caller's mentor profile
// @Summary Update my mentor profile
// @Tags mentors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateMentorRequest true "Fields to change"
// @Success 200 {object} models.Mentor
// @Failure 400 {object} dto.ErrorDetail "Invalid request data"
// @Failure 404 {object} dto.ErrorDetail "No mentor profile"
// @Router /mentors/me [put]
func (c *MentorController) UpdateMyMentor(ctx *gin.Context) {
	var req dto.UpdateMentorRequest
	if err := validation.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	mentor, err := c.mentorService.UpdateMyMentor(ctx.Request.Context(), middleware.CurrentUserID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mentor)
}
