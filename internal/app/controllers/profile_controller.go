package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/app/services"
	"github.com/takeuforward/portal/internal/middleware"
	"github.com/takeuforward/portal/internal/pkg/validation"
)

// ProfileController handles the caller's own profile
type ProfileController struct {
	userService services.UserService
}

// NewProfileController creates a new ProfileController
func NewProfileController(userService services.UserService) *ProfileController {
	return &ProfileController{userService: userService}
}

// UpsertProfile creates or merges the caller's profile
// @Summary Update my profile
// @Description Only the supplied fields are written. Role cannot be changed here.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpsertProfileRequest true "Profile fields"
// @Success 200 {object} models.User
// @Failure 400 {object} dto.ErrorDetail "Invalid request data"
// @Failure 401 {object} dto.ErrorDetail "Not authenticated"
// @Failure 409 {object} dto.ErrorDetail "Email already exists"
// @Router /profile [put]
func (c *ProfileController) UpsertProfile(ctx *gin.Context) {
	var req dto.UpsertProfileRequest
	if err := validation.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.UpsertProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}
