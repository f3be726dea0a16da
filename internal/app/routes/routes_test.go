package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/takeuforward/portal/internal/app/controllers"
	"github.com/takeuforward/portal/internal/middleware"
	"github.com/takeuforward/portal/internal/pkg/auth"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	jwt := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", TokenTTL: time.Hour, TokenIssuer: "tuf-portal"})

	r := gin.New()
	SetupRouter(r, Controllers{
		Auth:        controllers.NewAuthController(nil, jwt, nil, controllers.SessionSettings{CookieName: "tuf_session"}),
		Profile:     controllers.NewProfileController(nil),
		Mentor:      controllers.NewMentorController(nil),
		Note:        controllers.NewNoteController(nil),
		Event:       controllers.NewEventController(nil),
		Club:        controllers.NewClubController(nil),
		Opportunity: controllers.NewOpportunityController(nil),
		ProjectIfp:  controllers.NewProjectIfpController(nil),
		Link:        controllers.NewLinkController(nil),
		Discussion:  controllers.NewDiscussionController(nil),
		File:        controllers.NewFileController(nil),
		Health:      controllers.NewHealthController(nil),
	}, middleware.NewAuthMiddleware(jwt, "tuf_session"), nil)
	SetupSwagger(r)
	return r
}

func TestRouteTable(t *testing.T) {
	r := newTestRouter()

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /api/auth/user", "GET /api/login", "GET /api/callback", "GET /api/logout", "PUT /api/profile",
		"GET /api/mentors", "POST /api/mentors", "GET /api/mentors/me", "PUT /api/mentors/me",
		"GET /api/notes", "POST /api/notes", "POST /api/notes/:id/download",
		"GET /api/events", "POST /api/events",
		"GET /api/clubs", "POST /api/clubs",
		"GET /api/opportunities", "POST /api/opportunities",
		"GET /api/projects-ifp", "POST /api/projects-ifp",
		"GET /api/links", "POST /api/links",
		"GET /api/discussions", "POST /api/discussions",
		"POST /api/files", "GET /api/health", "GET /swagger/*any",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestWritesRequireSession(t *testing.T) {
	r := newTestRouter()

	for _, target := range []string{"/api/notes", "/api/events", "/api/mentors", "/api/clubs", "/api/files"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, target, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, target)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChangeFeedRouteIsOptional(t *testing.T) {
	r := newTestRouter()
	for _, route := range r.Routes() {
		assert.NotEqual(t, "/api/changes", route.Path)
	}
}
