package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/takeuforward/portal/internal/app/controllers"
	"github.com/takeuforward/portal/internal/middleware"
	"github.com/takeuforward/portal/internal/pkg/websocket"
)

// Controllers groups every HTTP handler set the router mounts
type Controllers struct {
	Auth        *controllers.AuthController
	Profile     *controllers.ProfileController
	Mentor      *controllers.MentorController
	Note        *controllers.NoteController
	Event       *controllers.EventController
	Club        *controllers.ClubController
	Opportunity *controllers.OpportunityController
	ProjectIfp  *controllers.ProjectIfpController
	Link        *controllers.LinkController
	Discussion  *controllers.DiscussionController
	File        *controllers.FileController
	Health      *controllers.HealthController
	Changes     *websocket.Handler
}

// SetupRouter configures all application routes. Reads are public, writes need a
// session. Successful writes are announced through changes, which may be nil.
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware, changes middleware.ChangePublisher) {
	api := router.Group("/api")
	requireAuth := authMiddleware.RequireAuth()
	created := func(entity string) gin.HandlerFunc {
		return middleware.PublishChange(changes, "created", entity)
	}

	// --- Session routes ---
	api.GET("/login", c.Auth.Login)
	api.GET("/callback", c.Auth.Callback)
	api.GET("/logout", c.Auth.Logout)
	api.GET("/auth/user", requireAuth, c.Auth.GetCurrentUser)
	api.PUT("/profile", requireAuth, middleware.PublishChange(changes, "updated", "auth/user", "mentors"), c.Profile.UpsertProfile)

	api.GET("/health", c.Health.Health)

	mentors := api.Group("/mentors")
	{
		mentors.GET("", c.Mentor.ListMentors)
		mentors.POST("", requireAuth, created("mentors"), c.Mentor.CreateMentor)
		mentors.GET("/me", requireAuth, c.Mentor.GetMyMentor)
		mentors.PUT("/me", requireAuth, middleware.PublishChange(changes, "updated", "mentors"), c.Mentor.UpdateMyMentor)
	}

	notes := api.Group("/notes")
	{
		notes.GET("", c.Note.ListNotes)
		notes.POST("", requireAuth, created("notes"), c.Note.CreateNote)
		notes.POST("/:id/download", middleware.PublishChange(changes, "downloaded", "notes"), c.Note.DownloadNote)
	}

	events := api.Group("/events")
	{
		events.GET("", c.Event.ListEvents)
		events.POST("", requireAuth, created("events"), c.Event.CreateEvent)
	}

	// --- Catalog routes ---
	api.GET("/clubs", c.Club.ListClubs)
	api.POST("/clubs", requireAuth, created("clubs"), c.Club.CreateClub)

	api.GET("/opportunities", c.Opportunity.ListOpportunities)
	api.POST("/opportunities", requireAuth, created("opportunities"), c.Opportunity.CreateOpportunity)

	api.GET("/projects-ifp", c.ProjectIfp.ListProjects)
	api.POST("/projects-ifp", requireAuth, created("projects-ifp"), c.ProjectIfp.CreateProject)

	api.GET("/links", c.Link.ListLinks)
	api.POST("/links", requireAuth, created("links"), c.Link.CreateLink)

	api.GET("/discussions", c.Discussion.ListChannels)
	api.POST("/discussions", requireAuth, created("discussions"), c.Discussion.CreateChannel)

	api.POST("/files", requireAuth, c.File.UploadFile)

	if c.Changes != nil {
		api.GET("/changes", c.Changes.HandleConnection)
	}

	router.NoRoute(middleware.NoRoute)
}
