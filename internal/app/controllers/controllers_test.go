package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takeuforward/portal/internal/app/models"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/middleware"
	"github.com/takeuforward/portal/internal/pkg/apperrors"
	"github.com/takeuforward/portal/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// asUser stands in for RequireAuth
func asUser(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, id)
		c.Next()
	}
}

func do(r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type fakeNoteService struct {
	lastFilter dto.NoteFilter
	listCalls  int
	created    []dto.CreateNoteRequest
	downloads  map[string]int
}

func (f *fakeNoteService) ListNotes(_ context.Context, filter dto.NoteFilter) ([]models.Note, error) {
	f.listCalls++
	f.lastFilter = filter
	return []models.Note{}, nil
}

func (f *fakeNoteService) CreateNote(_ context.Context, actorID string, req dto.CreateNoteRequest) (*models.Note, error) {
	f.created = append(f.created, req)
	return &models.Note{ID: "n1", UploadedBy: actorID, Title: req.Title, Semester: *req.Semester}, nil
}

func (f *fakeNoteService) RecordDownload(_ context.Context, id string) (int, error) {
	n, ok := f.downloads[id]
	if !ok {
		return 0, apperrors.ErrNoteNotFound
	}
	f.downloads[id] = n + 1
	return n + 1, nil
}

func noteRouter(svc *fakeNoteService) *gin.Engine {
	r := gin.New()
	c := NewNoteController(svc)
	r.GET("/api/notes", c.ListNotes)
	r.POST("/api/notes", asUser("u1"), c.CreateNote)
	r.POST("/api/notes/:id/download", c.DownloadNote)
	return r
}

func TestListNotesParsesFilters(t *testing.T) {
	svc := &fakeNoteService{}
	r := noteRouter(svc)

	w := do(r, http.MethodGet, "/api/notes?dept=CSE&semester=5&courseCode=CS6501&search=unit&bogus=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	assert.Equal(t, "CSE", *svc.lastFilter.Dept)
	assert.Equal(t, 5, *svc.lastFilter.Semester)
	assert.Equal(t, "CS6501", *svc.lastFilter.CourseCode)
	assert.Equal(t, "unit", *svc.lastFilter.Search)
}

func TestListNotesRejectsMalformedSemester(t *testing.T) {
	svc := &fakeNoteService{}
	w := do(noteRouter(svc), http.MethodGet, "/api/notes?semester=fifth", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "semester")
	assert.Zero(t, svc.listCalls)
}

func TestCreateNote(t *testing.T) {
	svc := &fakeNoteService{}
	r := noteRouter(svc)

	w := do(r, http.MethodPost, "/api/notes", map[string]any{
		"dept": "CSE", "semester": 5, "courseCode": "CS6501", "title": "Unit 1", "fileUrl": "http://f/1.pdf",
		"uploadedBy": "someone-else",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var note models.Note
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &note))
	assert.Equal(t, "u1", note.UploadedBy)

	w = do(r, http.MethodPost, "/api/notes", map[string]any{"dept": "CSE", "courseCode": "CS6501", "title": "x", "fileUrl": "u"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "semester")

	w = do(r, http.MethodPost, "/api/notes", map[string]any{"dept": "CSE", "semester": "five", "courseCode": "c", "title": "x", "fileUrl": "u"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/notes", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Len(t, svc.created, 1)
}

func TestDownloadNote(t *testing.T) {
	svc := &fakeNoteService{downloads: map[string]int{"n1": 0}}
	r := noteRouter(svc)

	for i := 0; i < 2; i++ {
		w := do(r, http.MethodPost, "/api/notes/n1/download", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	}
	assert.Equal(t, 2, svc.downloads["n1"])

	w := do(r, http.MethodPost, "/api/notes/missing/download", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type fakeEventService struct {
	lastFilter dto.EventFilter
	calls      int
}

func (f *fakeEventService) ListEvents(_ context.Context, filter dto.EventFilter) ([]models.Event, error) {
	f.calls++
	f.lastFilter = filter
	return []models.Event{}, nil
}

func (f *fakeEventService) CreateEvent(_ context.Context, actorID string, req dto.CreateEventRequest) (*models.Event, error) {
	return &models.Event{ID: "e1", Title: req.Title, CreatedBy: actorID, Date: *req.Date, Tags: []string{}}, nil
}

func TestEventsController(t *testing.T) {
	svc := &fakeEventService{}
	r := gin.New()
	c := NewEventController(svc)
	r.GET("/api/events", c.ListEvents)
	r.POST("/api/events", asUser("u1"), c.CreateEvent)

	w := do(r, http.MethodGet, "/api/events?tags=IEEE,%20,hackathon&upcoming=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"IEEE", "hackathon"}, svc.lastFilter.Tags)
	assert.True(t, *svc.lastFilter.Upcoming)

	w = do(r, http.MethodGet, "/api/events?upcoming=soon", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 1, svc.calls)

	w = do(r, http.MethodPost, "/api/events", map[string]any{
		"title": "IEEE Hackathon", "organizer": "IEEE", "date": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/api/events", map[string]any{"title": "No date", "organizer": "IEEE"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type fakeMentorService struct {
	lastFilter dto.MentorFilter
	mine       *models.Mentor
}

func (f *fakeMentorService) ListMentors(_ context.Context, filter dto.MentorFilter) ([]models.Mentor, error) {
	f.lastFilter = filter
	return []models.Mentor{}, nil
}

func (f *fakeMentorService) CreateMentor(_ context.Context, actorID string, _ dto.CreateMentorRequest) (*models.Mentor, error) {
	if f.mine != nil {
		return nil, apperrors.ErrMentorAlreadyExists
	}
	f.mine = &models.Mentor{ID: "m1", UserID: actorID, IsAvailable: true, Interests: []string{}}
	return f.mine, nil
}

func (f *fakeMentorService) GetMyMentor(context.Context, string) (*models.Mentor, error) {
	if f.mine == nil {
		return nil, apperrors.ErrMentorNotFound
	}
	return f.mine, nil
}

func (f *fakeMentorService) UpdateMyMentor(ctx context.Context, actorID string, _ dto.UpdateMentorRequest) (*models.Mentor, error) {
	return f.GetMyMentor(ctx, actorID)
}

func TestMentorController(t *testing.T) {
	svc := &fakeMentorService{}
	r := gin.New()
	c := NewMentorController(svc)
	r.GET("/api/mentors", c.ListMentors)
	r.POST("/api/mentors", asUser("u1"), c.CreateMentor)
	r.GET("/api/mentors/me", asUser("u1"), c.GetMyMentor)
	r.PUT("/api/mentors/me", asUser("u1"), c.UpdateMyMentor)

	w := do(r, http.MethodGet, "/api/mentors?department=CSE&skills=DSA,Web&category=tech", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CSE", *svc.lastFilter.Department)
	assert.Equal(t, []string{"DSA", "Web"}, svc.lastFilter.Skills)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/mentors/me", nil).Code)
	assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/mentors", map[string]any{"interests": []string{"DSA"}}).Code)
	assert.Equal(t, http.StatusConflict, do(r, http.MethodPost, "/api/mentors", map[string]any{}).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPut, "/api/mentors/me", map[string]any{"availability": "Weekends"}).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, "/api/mentors/me", map[string]any{"contactEmail": "nope"}).Code)
}

type fakeDiscussionService struct {
	created int
}

func (f *fakeDiscussionService) ListChannels(context.Context, dto.DiscussionFilter) ([]models.DiscussionChannel, error) {
	return []models.DiscussionChannel{}, nil
}

func (f *fakeDiscussionService) CreateChannel(_ context.Context, req dto.CreateDiscussionRequest) (*models.DiscussionChannel, error) {
	f.created++
	return &models.DiscussionChannel{ID: "d1", Label: req.Label, Platform: models.Platform(req.Platform), URL: req.URL, TopicTags: []string{}}, nil
}

func TestDiscussionPlatformValidation(t *testing.T) {
	svc := &fakeDiscussionService{}
	r := gin.New()
	c := NewDiscussionController(svc)
	r.POST("/api/discussions", asUser("u1"), c.CreateChannel)

	w := do(r, http.MethodPost, "/api/discussions", map[string]any{"label": "GATE", "platform": "Slack", "url": "https://t.me/gate"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "platform")

	w = do(r, http.MethodPost, "/api/discussions", map[string]any{"label": "GATE", "platform": "Telegram", "url": "https://t.me/gate"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, svc.created)
}

type fakeUserService struct {
	users  map[string]*models.User
	synced []dto.IdentityClaims
}

func (f *fakeUserService) GetCurrentUser(_ context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUnauthorized
}

func (f *fakeUserService) UpsertProfile(_ context.Context, id string, req dto.UpsertProfileRequest) (*models.User, error) {
	u := &models.User{ID: id, Department: req.Department, Role: models.RoleStudent}
	f.users[id] = u
	return u, nil
}

func (f *fakeUserService) SyncIdentity(_ context.Context, claims dto.IdentityClaims) (*models.User, error) {
	f.synced = append(f.synced, claims)
	u := &models.User{ID: claims.Subject, Role: models.RoleStudent}
	f.users[u.ID] = u
	return u, nil
}

type fakeProvider struct{}

func (fakeProvider) AuthCodeURL(state string) string {
	return "https://idp.example.com/auth?state=" + url.QueryEscape(state)
}

func (fakeProvider) Exchange(_ context.Context, code string) (*dto.IdentityClaims, error) {
	if code != "good" {
		return nil, apperrors.ErrLoginFailed
	}
	return &dto.IdentityClaims{Subject: "sub-1", Email: "a@ssn.edu.in"}, nil
}

func newAuthTestRouter(users *fakeUserService, provider Authenticator) (*gin.Engine, *auth.JWTService) {
	jwt := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", TokenTTL: time.Hour, TokenIssuer: "tuf-portal"})
	c := NewAuthController(users, jwt, provider, SessionSettings{CookieName: "tuf_session"})
	m := middleware.NewAuthMiddleware(jwt, "tuf_session")

	r := gin.New()
	r.GET("/api/auth/user", m.RequireAuth(), c.GetCurrentUser)
	r.GET("/api/login", c.Login)
	r.GET("/api/callback", c.Callback)
	r.GET("/api/logout", c.Logout)
	r.PUT("/api/profile", m.RequireAuth(), NewProfileController(users).UpsertProfile)
	return r, jwt
}

func TestAuthUserRequiresSession(t *testing.T) {
	users := &fakeUserService{users: map[string]*models.User{}}
	r, jwt := newAuthTestRouter(users, fakeProvider{})

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/auth/user", nil).Code)

	token, _, err := jwt.GenerateToken("u1", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(`{"department":"CSE","role":"admin"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"student"`)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginCallbackFlow(t *testing.T) {
	users := &fakeUserService{users: map[string]*models.User{}}
	r, jwt := newAuthTestRouter(users, fakeProvider{})

	w := do(r, http.MethodGet, "/api/login", nil)
	require.Equal(t, http.StatusFound, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	state := loc.Query().Get("state")
	require.NotEmpty(t, state)

	req := httptest.NewRequest(http.MethodGet, "/api/callback?code=good&state="+url.QueryEscape(state), nil)
	req.AddCookie(&http.Cookie{Name: stateCookieName, Value: state})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var session string
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "tuf_session" {
			session = ck.Value
		}
	}
	require.NotEmpty(t, session)
	claims, err := jwt.ValidateToken(session)
	require.NoError(t, err)
	assert.Equal(t, "sub-1", claims.UserID())
	assert.Len(t, users.synced, 1)

	// state mismatch
	req = httptest.NewRequest(http.MethodGet, "/api/callback?code=good&state=other", nil)
	req.AddCookie(&http.Cookie{Name: stateCookieName, Value: state})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/api/logout", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "tuf_session=;")
}

func TestLoginDisabled(t *testing.T) {
	r, _ := newAuthTestRouter(&fakeUserService{users: map[string]*models.User{}}, nil)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/login", nil).Code)
}

type fakeFileService struct{ calls int }

func (f *fakeFileService) UploadNoteFile(_ context.Context, _ string, file *multipart.FileHeader) (*dto.FileUploadResponse, error) {
	f.calls++
	return &dto.FileUploadResponse{URL: "http://files/" + file.Filename, FileName: file.Filename, Size: file.Size}, nil
}

func TestUploadFile(t *testing.T) {
	svc := &fakeFileService{}
	r := gin.New()
	r.POST("/api/files", asUser("u1"), NewFileController(svc).UploadFile)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "unit1.pdf")
	require.NoError(t, err)
	_, _ = part.Write([]byte("%PDF"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/files", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "http://files/unit1.pdf")

	var empty bytes.Buffer
	mw = multipart.NewWriter(&empty)
	require.NoError(t, mw.Close())
	req = httptest.NewRequest(http.MethodPost, "/api/files", &empty)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 1, svc.calls)
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestHealth(t *testing.T) {
	r := gin.New()
	r.GET("/ok", NewHealthController(fakePinger{}).Health)
	r.GET("/down", NewHealthController(fakePinger{err: errors.New("no route")}).Health)

	w := do(r, http.MethodGet, "/ok", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"ok"`)

	w = do(r, http.MethodGet, "/down", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
