// Package apiclient is a Go consumer of the portal's REST surface. List
// reads go through a Cache keyed by endpoint and filter; writes invalidate
// the entity kinds they touch.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/takeuforward/portal/internal/app/models"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/pkg/logger"
)

const defaultTimeout = 15 * time.Second

// Config holds client settings
type Config struct {
	BaseURL string // server root, e.g. http://localhost:8080
	Token   string // session token sent as a bearer credential
	MaxAge  time.Duration
	Timeout time.Duration // per shared list fetch, defaults to 15s
	HTTP    *http.Client
}

// Client talks to the portal API
type Client struct {
	baseURL string
	token   string
	timeout time.Duration
	http    *http.Client
	cache   *Cache
}

// New creates a Client
func New(cfg Config) *Client {
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/") + "/api",
		token:   cfg.Token,
		timeout: timeout,
		http:    httpClient,
		cache:   NewCache(cfg.MaxAge),
	}
}

// Cache exposes the underlying cache
func (c *Client) Cache() *Cache { return c.cache }

// Invalidate marks every cached result of the given kinds stale
func (c *Client) Invalidate(entities ...Entity) { c.cache.Invalidate(entities...) }

// --- Reads --- //

func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	return getCached[*models.User](ctx, c, EntityUser, nil)
}

func (c *Client) ListMentors(ctx context.Context, f dto.MentorFilter) ([]models.Mentor, error) {
	return getCached[[]models.Mentor](ctx, c, EntityMentors, f.Query())
}

func (c *Client) ListNotes(ctx context.Context, f dto.NoteFilter) ([]models.Note, error) {
	return getCached[[]models.Note](ctx, c, EntityNotes, f.Query())
}

func (c *Client) ListEvents(ctx context.Context, f dto.EventFilter) ([]models.Event, error) {
	return getCached[[]models.Event](ctx, c, EntityEvents, f.Query())
}

func (c *Client) ListClubs(ctx context.Context, f dto.ClubFilter) ([]models.Club, error) {
	return getCached[[]models.Club](ctx, c, EntityClubs, f.Query())
}

func (c *Client) ListOpportunities(ctx context.Context, f dto.OpportunityFilter) ([]models.Opportunity, error) {
	return getCached[[]models.Opportunity](ctx, c, EntityOpportunities, f.Query())
}

func (c *Client) ListProjectsIfp(ctx context.Context, f dto.ProjectIfpFilter) ([]models.ProjectIfp, error) {
	return getCached[[]models.ProjectIfp](ctx, c, EntityProjectsIfp, f.Query())
}

func (c *Client) ListLinks(ctx context.Context, f dto.LinkFilter) ([]models.Link, error) {
	return getCached[[]models.Link](ctx, c, EntityLinks, f.Query())
}

func (c *Client) ListDiscussions(ctx context.Context, f dto.DiscussionFilter) ([]models.DiscussionChannel, error) {
	return getCached[[]models.DiscussionChannel](ctx, c, EntityDiscussions, f.Query())
}

// --- Writes --- //

func (c *Client) UpsertProfile(ctx context.Context, req dto.UpsertProfileRequest) (*models.User, error) {
	var out models.User
	// mentor listings embed the owning user
	if err := c.mutate(ctx, http.MethodPut, "profile", req, &out, EntityUser, EntityMentors); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMentor(ctx context.Context, req dto.CreateMentorRequest) (*models.Mentor, error) {
	var out models.Mentor
	if err := c.mutate(ctx, http.MethodPost, "mentors", req, &out, EntityMentors); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMyMentor(ctx context.Context, req dto.UpdateMentorRequest) (*models.Mentor, error) {
	var out models.Mentor
	if err := c.mutate(ctx, http.MethodPut, "mentors/me", req, &out, EntityMentors); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateNote(ctx context.Context, req dto.CreateNoteRequest) (*models.Note, error) {
	var out models.Note
	if err := c.mutate(ctx, http.MethodPost, "notes", req, &out, EntityNotes); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadNote records a download; cached note lists carry the old count afterwards.
func (c *Client) DownloadNote(ctx context.Context, id string) error {
	var out dto.DownloadResponse
	return c.mutate(ctx, http.MethodPost, "notes/"+url.PathEscape(id)+"/download", nil, &out, EntityNotes)
}

func (c *Client) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error) {
	var out models.Event
	if err := c.mutate(ctx, http.MethodPost, "events", req, &out, EntityEvents); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateClub(ctx context.Context, req dto.CreateClubRequest) (*models.Club, error) {
	var out models.Club
	if err := c.mutate(ctx, http.MethodPost, "clubs", req, &out, EntityClubs); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOpportunity(ctx context.Context, req dto.CreateOpportunityRequest) (*models.Opportunity, error) {
	var out models.Opportunity
	if err := c.mutate(ctx, http.MethodPost, "opportunities", req, &out, EntityOpportunities); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProjectIfp(ctx context.Context, req dto.CreateProjectIfpRequest) (*models.ProjectIfp, error) {
	var out models.ProjectIfp
	if err := c.mutate(ctx, http.MethodPost, "projects-ifp", req, &out, EntityProjectsIfp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateLink(ctx context.Context, req dto.CreateLinkRequest) (*models.Link, error) {
	var out models.Link
	if err := c.mutate(ctx, http.MethodPost, "links", req, &out, EntityLinks); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateDiscussion(ctx context.Context, req dto.CreateDiscussionRequest) (*models.DiscussionChannel, error) {
	var out models.DiscussionChannel
	if err := c.mutate(ctx, http.MethodPost, "discussions", req, &out, EntityDiscussions); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadFile sends a note file as multipart form field "file". Nothing is invalidated.
func (c *Client) UploadFile(ctx context.Context, fileName string, r io.Reader) (*dto.FileUploadResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("read upload %s: %w", fileName, err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "files", nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var out dto.FileUploadResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	return &out, nil
}

// --- Transport --- //

// getCached decodes a cached or freshly fetched body. A stale body is still
// decoded and returned together with its *StaleError.
func getCached[T any](ctx context.Context, c *Client, entity Entity, query url.Values) (T, error) {
	var out T
	key := Key(entity, query)
	body, err := c.cache.Get(ctx, key, func() ([]byte, error) {
		// shared by every caller waiting on key, so no single caller may cancel it
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		req, err := c.newRequest(fetchCtx, http.MethodGet, string(entity), query, nil)
		if err != nil {
			return nil, err
		}
		return c.do(req)
	})
	if body == nil {
		return out, err
	}
	if decodeErr := json.Unmarshal(body, &out); decodeErr != nil {
		return out, fmt.Errorf("decode %s: %w", key, decodeErr)
	}
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Serving stale cached result")
	}
	return out, err
}

func (c *Client) mutate(ctx context.Context, method, path string, in, out interface{}, invalidates ...Entity) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, path, nil, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	respBody, err := c.do(req)
	if err != nil {
		return err
	}
	c.cache.Invalidate(invalidates...)

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// do sends req and returns the body of a 2xx response. Other statuses come
// back as *dto.ErrorDetail wrapped in *StatusError.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", req.URL.Path, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	detail := &dto.ErrorDetail{}
	if err := json.Unmarshal(body, detail); err != nil || detail.Code == "" {
		detail = dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, http.StatusText(resp.StatusCode))
	}
	return nil, &StatusError{StatusCode: resp.StatusCode, Detail: detail}
}
