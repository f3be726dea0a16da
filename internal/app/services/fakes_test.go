package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/takeuforward/portal/internal/app/auth"
	"github.com/takeuforward/portal/internal/app/models"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/app/repositories"
	"github.com/takeuforward/portal/internal/domain"
	"github.com/takeuforward/portal/internal/pkg/apperrors"
	"github.com/takeuforward/portal/internal/pkg/filestorage"
)

type fakeUsers struct {
	mu       sync.Mutex
	users    map[string]*models.User
	upserts  []repositories.UpsertUserParams
	upsertFn func(p repositories.UpsertUserParams) (*models.User, error)
}

func newFakeUsers(ids ...string) *fakeUsers {
	f := &fakeUsers{users: map[string]*models.User{}}
	for _, id := range ids {
		f.users[id] = &models.User{ID: id, Role: models.RoleStudent}
	}
	return f
}

func (f *fakeUsers) GetUserByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) UserExists(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUsers) UpsertUser(_ context.Context, p repositories.UpsertUserParams) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, p)
	if f.upsertFn != nil {
		return f.upsertFn(p)
	}
	u, ok := f.users[p.ID]
	if !ok {
		u = &models.User{ID: p.ID, Role: models.RoleStudent}
		f.users[p.ID] = u
	}
	if p.Email != nil {
		u.Email = p.Email
	}
	if p.FirstName != nil {
		u.FirstName = p.FirstName
	}
	if p.Department != nil {
		u.Department = p.Department
	}
	return u, nil
}

type fakeMentors struct {
	byUser  map[string]*models.Mentor
	created int
}

func newFakeMentors() *fakeMentors {
	return &fakeMentors{byUser: map[string]*models.Mentor{}}
}

func (f *fakeMentors) ListMentors(context.Context, dto.MentorFilter) ([]models.Mentor, error) {
	out := []models.Mentor{}
	for _, m := range f.byUser {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMentors) GetMentorByUserID(_ context.Context, userID string) (*models.Mentor, error) {
	m, ok := f.byUser[userID]
	if !ok {
		return nil, apperrors.ErrMentorNotFound
	}
	return m, nil
}

func (f *fakeMentors) CreateMentor(_ context.Context, m *models.Mentor) (*models.Mentor, error) {
	f.created++
	f.byUser[m.UserID] = m
	return m, nil
}

func (f *fakeMentors) UpdateMentorByUserID(_ context.Context, userID string, p repositories.UpdateMentorParams) (*models.Mentor, error) {
	m, ok := f.byUser[userID]
	if !ok {
		return nil, apperrors.ErrMentorNotFound
	}
	if p.Interests != nil {
		m.Interests = p.Interests
	}
	if p.Availability != nil {
		m.Availability = p.Availability
	}
	if p.IsAvailable != nil {
		m.IsAvailable = *p.IsAvailable
	}
	return m, nil
}

type fakeNotes struct {
	mu      sync.Mutex
	notes   map[string]*models.Note
	creates int
}

func newFakeNotes() *fakeNotes {
	return &fakeNotes{notes: map[string]*models.Note{}}
}

func (f *fakeNotes) ListNotes(context.Context, dto.NoteFilter) ([]models.Note, error) {
	return []models.Note{}, nil
}

func (f *fakeNotes) CreateNote(_ context.Context, n *models.Note) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	f.notes[n.ID] = n
	return n, nil
}

func (f *fakeNotes) IncrementDownloads(_ context.Context, id string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notes[id]
	if !ok {
		return 0, apperrors.ErrNoteNotFound
	}
	n.Downloads++
	return n.Downloads, nil
}

type fakeEvents struct {
	created []*models.Event
}

func (f *fakeEvents) ListEvents(context.Context, dto.EventFilter) ([]models.Event, error) {
	return []models.Event{}, nil
}

func (f *fakeEvents) CreateEvent(_ context.Context, e *models.Event) (*models.Event, error) {
	f.created = append(f.created, e)
	return e, nil
}

type fakeStorage struct {
	saved []filestorage.Upload
	body  string
}

func (f *fakeStorage) Save(_ context.Context, u filestorage.Upload) (*domain.StoredFile, error) {
	b, err := io.ReadAll(u.Body)
	if err != nil {
		return nil, err
	}
	f.body = string(b)
	f.saved = append(f.saved, u)
	return &domain.StoredFile{
		Key: "notes/abc.pdf", URL: "http://files/notes/abc.pdf",
		FileName: u.FileName, Size: int64(len(b)), ContentType: u.ContentType,
	}, nil
}

func (f *fakeStorage) Delete(context.Context, string) error { return nil }

func authzFor(users *fakeUsers) ActorChecker {
	return auth.NewAuthorizationService(users)
}

// multipartFile builds a FileHeader the way gin's FormFile would hand it over
func multipartFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func ptr[T any](v T) *T { return &v }
