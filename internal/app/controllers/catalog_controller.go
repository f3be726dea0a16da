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

// ClubController handles clubs
type ClubController struct {
	clubService services.ClubService
}

// NewClubController creates a new ClubController
func NewClubController(clubService services.ClubService) *ClubController {
	return &ClubController{clubService: clubService}
}

// ListClubs lists clubs by name
// @Summary List clubs
// @Tags clubs
// @Produce json
// @Param category query string false "Club category"
// @Success 200 {array} models.Club
// @Router /clubs [get]
func (c *ClubController) ListClubs(ctx *gin.Context) {
	clubs, err := c.clubService.ListClubs(ctx.Request.Context(), dto.ClubFilter{
		Category: helpers.QueryString(ctx, "category"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, clubs)
}

// CreateClub adds a club
// @Summary Create a club
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClubRequest true "Club"
// @Success 201 {object} models.Club
// @Failure 400 {object} dto.ErrorDetail "Invalid request data"
// @Router /clubs [post]
func (c *ClubController) CreateClub(ctx *gin.Context) {
	var req dto.CreateClubRequest
	if err := validation.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	club, err := c.clubService.CreateClub(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, club)
}

// OpportunityController handles jobs and internships
type OpportunityController struct {
	opportunityService services.OpportunityService
}

// NewOpportunityController creates a new OpportunityController
func NewOpportunityController(opportunityService services.OpportunityService) *OpportunityController {
	return &OpportunityController{opportunityService: opportunityService}
}

// ListOpportunities lists opportunities, newest first
// @Summary List opportunities
// @Tags opportunities
// @Produce json
// @Param type query string false "Opportunity type"
// @Param tags query string false "Comma separated tags, any match"
// @Success 200 {array} models.Opportunity
// @Router /opportunities [get]
func (c *OpportunityController) ListOpportunities(ctx *gin.Context) {
	opps, err := c.opportunityService.ListOpportunities(ctx.Request.Context(), dto.OpportunityFilter{
		Type: helpers.QueryString(ctx, "type"),
		Tags: helpers.QueryList(ctx, "tags"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, opps)
}

// CreateOpportunity adds an opportunity
// @Summary Create an opportunity
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOpportunityRequest true "Opportunity"
// @Success 201 {object} models.Opportunity
// @Failure 400 {object} dto.ErrorDetail "Invalid request data"
// @Router /opportunities [post]
func (c *OpportunityController) CreateOpportunity(ctx *gin.Context) {
	var req dto.CreateOpportunityRequest
	if err := validation.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	opp, err := c.opportunityService.CreateOpportunity(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, opp)
}

// ProjectIfpController handles IFP projects
type ProjectIfpController struct {
	projectService services.ProjectIfpService
}

// NewProjectIfpController creates a new ProjectIfpController
func NewProjectIfpController(projectService services.ProjectIfpService) *ProjectIfpController {
	return &ProjectIfpController{projectService: projectService}
}

// ListProjects lists projects, latest year first
// @Summary List IFP projects
// @Tags projects
// @Produce json
// @Param dept query string false "Department"
// @Param area query string false "Research area"
// @Success 200 {array} models.ProjectIfp
// @Router /projects-ifp [get]
func (c *ProjectIfpController) ListProjects(ctx *gin.Context) {
	projects, err := c.projectService.ListProjects(ctx.Request.Context(), dto.ProjectIfpFilter{
		Dept: helpers.QueryString(ctx, "dept"),
		Area: helpers.QueryString(ctx, "area"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, projects)
}

// CreateProject adds a project
// @Summary Create an IFP project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProjectIfpRequest true "Project"
// @Success 201 {object} models.ProjectIfp
// @Failure 400 {object} dto.ErrorDetail "Invalid request data"
// @Router /projects-ifp [post]
func (c *ProjectIfpController) CreateProject(ctx *gin.Context) {
	var req dto.CreateProjectIfpRequest
	if err := validation.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	project, err := c.projectService.CreateProject(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, project)
}

// LinkController handles community links
type LinkController struct {
	linkService services.LinkService
}

// NewLinkController creates a new LinkController
func NewLinkController(linkService services.LinkService) *LinkController {
	return &LinkController{linkService: linkService}
}

// ListLinks lists links by group then label
// @Summary List community links
// @Tags links
// @Produce json
// @Param group query string false "Link group"
// @Param search query string false "Case-insensitive label search"
// @Success 200 {array} models.Link
// @Router /links [get]
func (c *LinkController) ListLinks(ctx *gin.Context) {
	links, err := c.linkService.ListLinks(ctx.Request.Context(), dto.LinkFilter{
		Group:  helpers.QueryString(ctx, "group"),
		Search: helpers.QueryString(ctx, "search"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, links)
}

// CreateLink adds a link
// @Summary Create a community link
// @Tags links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateLinkRequest true "Link"
// @Success 201 {object} models.Link
// @Failure 400 {object} dto.ErrorDetail "Invalid request data"
// @Router /links [post]
func (c *LinkController) CreateLink(ctx *gin.Context) {
	var req dto.CreateLinkRequest
	if err := validation.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	link, err := c.linkService.CreateLink(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, link)
}

// DiscussionController handles discussion channels
type DiscussionController struct {
	discussionService services.DiscussionService
}

// NewDiscussionController creates a new DiscussionController
func NewDiscussionController(discussionService services.DiscussionService) *DiscussionController {
	return &DiscussionController{discussionService: discussionService}
}

// ListChannels lists discussion channels by label
// @Summary List discussion channels
// @Tags discussions
// @Produce json
// @Param platform query string false "WhatsApp, Discord or Telegram"
// @Param topicTags query string false "Comma separated topics, any match"
// @Success 200 {array} models.DiscussionChannel
// @Router /discussions [get]
func (c *DiscussionController) ListChannels(ctx *gin.Context) {
	channels, err := c.discussionService.ListChannels(ctx.Request.Context(), dto.DiscussionFilter{
		Platform:  helpers.QueryString(ctx, "platform"),
		TopicTags: helpers.QueryList(ctx, "topicTags"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, channels)
}

// CreateChannel adds a discussion channel
// @Summary Create a discussion channel
// @Tags discussions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDiscussionRequest true "Channel"
// @Success 201 {object} models.DiscussionChannel
// @Failure 400 {object} dto.ErrorDetail "Invalid request data"
// @Router /discussions [post]
func (c *DiscussionController) CreateChannel(ctx *gin.Context) {
	var req dto.CreateDiscussionRequest
	if err := validation.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	channel, err := c.discussionService.CreateChannel(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, channel)
}
