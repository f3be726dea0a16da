package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takeuforward/portal/internal/app/models"
	"github.com/takeuforward/portal/internal/app/models/dto"
)

func strPtr(s string) *string { return &s }

type fakeAPI struct {
	notesCalls int32
	failNotes  atomic.Bool
}

func (f *fakeAPI) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/notes", func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&f.notesCalls, 1)
		if f.failNotes.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"SRV_001","message":"An unexpected error occurred","severity":"CRITICAL"}`))
			return
		}
		notes := []models.Note{{ID: "n1", Dept: r.URL.Query().Get("dept"), Downloads: int(n)}}
		_ = json.NewEncoder(w).Encode(notes)
	})
	mux.HandleFunc("POST /api/notes", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		var req dto.CreateNoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Note{ID: "n2", Title: req.Title})
	})
	mux.HandleFunc("POST /api/notes/{id}/download", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"code":"RES_001","message":"Note not found","severity":"ERROR"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	mux.HandleFunc("GET /api/auth/user", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"AUTH_008","message":"Authentication required","severity":"ERROR"}`))
	})
	mux.HandleFunc("POST /api/files", func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.FileUploadResponse{FileName: header.Filename, Size: header.Size})
	})
	return mux
}

func newTestClient(t *testing.T) (*Client, *fakeAPI) {
	api := &fakeAPI{}
	srv := httptest.NewServer(api.handler(t))
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, Token: "tok"}), api
}

func TestListNotesCachesPerFilter(t *testing.T) {
	client, api := newTestClient(t)
	ctx := t.Context()

	cse, err := client.ListNotes(ctx, dto.NoteFilter{Dept: strPtr("CSE")})
	require.NoError(t, err)
	require.Len(t, cse, 1)
	assert.Equal(t, "CSE", cse[0].Dept)

	_, err = client.ListNotes(ctx, dto.NoteFilter{Dept: strPtr("CSE")})
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&api.notesCalls))

	ece, err := client.ListNotes(ctx, dto.NoteFilter{Dept: strPtr("ECE")})
	require.NoError(t, err)
	assert.Equal(t, "ECE", ece[0].Dept)
	assert.Equal(t, int32(2), atomic.LoadInt32(&api.notesCalls))
}

func TestMutationInvalidatesEntity(t *testing.T) {
	client, api := newTestClient(t)
	ctx := t.Context()

	_, err := client.ListNotes(ctx, dto.NoteFilter{})
	require.NoError(t, err)

	note, err := client.CreateNote(ctx, dto.CreateNoteRequest{Title: "Unit 1"})
	require.NoError(t, err)
	assert.Equal(t, "n2", note.ID)

	require.NoError(t, client.DownloadNote(ctx, "n2"))

	notes, err := client.ListNotes(ctx, dto.NoteFilter{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&api.notesCalls))
	assert.Equal(t, 2, notes[0].Downloads)
}

func TestStaleResultOnServerError(t *testing.T) {
	client, api := newTestClient(t)
	ctx := t.Context()

	first, err := client.ListNotes(ctx, dto.NoteFilter{})
	require.NoError(t, err)

	client.Invalidate(EntityNotes)
	api.failNotes.Store(true)

	notes, err := client.ListNotes(ctx, dto.NoteFilter{})
	assert.True(t, IsStale(err))
	assert.Equal(t, first, notes)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Equal(t, dto.ErrorCodeInternalServer, se.Detail.Code)
}

func TestErrorBodiesAreDecoded(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := t.Context()

	_, err := client.CurrentUser(ctx)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, 0, client.Cache().Len())

	err = client.DownloadNote(ctx, "missing")
	assert.True(t, IsNotFound(err))
	var detail *dto.ErrorDetail
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, "Note not found", detail.Message)
}

func TestUploadFile(t *testing.T) {
	client, _ := newTestClient(t)

	resp, err := client.UploadFile(t.Context(), "unit1.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "unit1.pdf", resp.FileName)
	assert.Equal(t, int64(8), resp.Size)
}

func TestSharedFetchSurvivesFirstCallerCancel(t *testing.T) {
	var calls int32
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		arrived <- struct{}{}
		<-release
		_ = json.NewEncoder(w).Encode([]models.Club{{ID: "c1", Name: "Coding Club"}})
	}))
	t.Cleanup(srv.Close)
	client := New(Config{BaseURL: srv.URL})

	ctx, cancel := context.WithCancel(t.Context())
	firstErr := make(chan error, 1)
	go func() {
		_, err := client.ListClubs(ctx, dto.ClubFilter{})
		firstErr <- err
	}()
	<-arrived

	second := make(chan []models.Club, 1)
	go func() {
		clubs, err := client.ListClubs(t.Context(), dto.ClubFilter{})
		assert.NoError(t, err)
		second <- clubs
	}()

	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	clubs := <-second
	require.Len(t, clubs, 1)
	assert.Equal(t, "c1", clubs[0].ID)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
