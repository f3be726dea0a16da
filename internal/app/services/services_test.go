package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takeuforward/portal/internal/app/models"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/app/repositories"
	"github.com/takeuforward/portal/internal/pkg/apperrors"
)

func TestGetCurrentUser(t *testing.T) {
	svc := NewUserService(newFakeUsers("u1"))

	user, err := svc.GetCurrentUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = svc.GetCurrentUser(context.Background(), "ghost")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	_, err = svc.GetCurrentUser(context.Background(), "")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestUpsertProfileMergesSuppliedFields(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users)
	ctx := context.Background()

	_, err := svc.UpsertProfile(ctx, "u1", dto.UpsertProfileRequest{Email: ptr("a@ssn.edu.in"), FirstName: ptr("Priya")})
	require.NoError(t, err)
	user, err := svc.UpsertProfile(ctx, "u1", dto.UpsertProfileRequest{Department: ptr("CSE"), Email: ptr("  ")})
	require.NoError(t, err)

	assert.Len(t, users.users, 1)
	assert.Equal(t, "a@ssn.edu.in", *user.Email)
	assert.Equal(t, "Priya", *user.FirstName)
	assert.Equal(t, "CSE", *user.Department)
	assert.Nil(t, users.upserts[1].Email, "blank email is not written")
}

func TestUpsertProfileDuplicateEmail(t *testing.T) {
	users := newFakeUsers()
	users.upsertFn = func(p repositories.UpsertUserParams) (*models.User, error) { return nil, apperrors.ErrEmailAlreadyExists }
	svc := NewUserService(users)

	_, err := svc.UpsertProfile(context.Background(), "u1", dto.UpsertProfileRequest{Email: ptr("a@b.c")})
	assert.True(t, errors.Is(err, apperrors.ErrEmailAlreadyExists))
}

func TestSyncIdentity(t *testing.T) {
	users := newFakeUsers()
	svc := NewUserService(users)

	user, err := svc.SyncIdentity(context.Background(), dto.IdentityClaims{Subject: "sub-1", Email: "x@ssn.edu.in"})
	require.NoError(t, err)
	assert.Equal(t, "sub-1", user.ID)
	assert.Nil(t, users.upserts[0].FirstName)

	_, err = svc.SyncIdentity(context.Background(), dto.IdentityClaims{})
	assert.True(t, errors.Is(err, apperrors.ErrLoginFailed))
}

func TestCreateMentorDefaultsAndUniqueness(t *testing.T) {
	mentors := newFakeMentors()
	svc := NewMentorService(mentors, authzFor(newFakeUsers("u1")))
	ctx := context.Background()

	m, err := svc.CreateMentor(ctx, "u1", dto.CreateMentorRequest{Interests: []string{"DSA"}})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "u1", m.UserID)
	assert.Equal(t, 0, m.Rating)
	assert.True(t, m.IsAvailable)

	_, err = svc.CreateMentor(ctx, "u1", dto.CreateMentorRequest{})
	assert.True(t, errors.Is(err, apperrors.ErrMentorAlreadyExists))
	assert.Equal(t, 1, mentors.created)
}

func TestCreateMentorRequiresExistingUser(t *testing.T) {
	mentors := newFakeMentors()
	svc := NewMentorService(mentors, authzFor(newFakeUsers()))

	_, err := svc.CreateMentor(context.Background(), "ghost", dto.CreateMentorRequest{})
	assert.True(t, errors.Is(err, apperrors.ErrReferencedUserMissing))

	_, err = svc.CreateMentor(context.Background(), "", dto.CreateMentorRequest{})
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
	assert.Zero(t, mentors.created)
}

func TestUpdateMyMentor(t *testing.T) {
	mentors := newFakeMentors()
	svc := NewMentorService(mentors, authzFor(newFakeUsers("u1")))
	ctx := context.Background()

	_, err := svc.UpdateMyMentor(ctx, "u1", dto.UpdateMentorRequest{Availability: ptr("Weekends")})
	assert.True(t, errors.Is(err, apperrors.ErrMentorNotFound))

	_, err = svc.CreateMentor(ctx, "u1", dto.CreateMentorRequest{Interests: []string{"DSA"}})
	require.NoError(t, err)

	same, err := svc.UpdateMyMentor(ctx, "u1", dto.UpdateMentorRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"DSA"}, same.Interests)

	updated, err := svc.UpdateMyMentor(ctx, "u1", dto.UpdateMentorRequest{IsAvailable: ptr(false), Availability: ptr("Weekends")})
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)
	assert.Equal(t, "Weekends", *updated.Availability)
}

func TestCreateNoteAppliesDefaults(t *testing.T) {
	notes := newFakeNotes()
	svc := NewNoteService(notes, authzFor(newFakeUsers("u1")))

	note, err := svc.CreateNote(context.Background(), "u1", dto.CreateNoteRequest{
		Dept: "CSE", Semester: ptr(5), CourseCode: "CS6501", Title: " Unit 1 ", FileURL: "http://f/1.pdf",
		Description: ptr(""),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, note.ID)
	assert.Equal(t, "u1", note.UploadedBy)
	assert.Equal(t, 0, note.Pages)
	assert.Equal(t, 0, note.Downloads)
	assert.Equal(t, "Unit 1", note.Title)
	assert.Nil(t, note.Description)
}

func TestCreateNoteRejectsUnknownUploader(t *testing.T) {
	notes := newFakeNotes()
	svc := NewNoteService(notes, authzFor(newFakeUsers()))

	_, err := svc.CreateNote(context.Background(), "ghost", dto.CreateNoteRequest{
		Dept: "CSE", Semester: ptr(5), CourseCode: "CS6501", Title: "t", FileURL: "u",
	})
	assert.True(t, errors.Is(err, apperrors.ErrReferencedUserMissing))
	assert.Zero(t, notes.creates)
}

func TestRecordDownloadConcurrent(t *testing.T) {
	notes := newFakeNotes()
	notes.notes["n1"] = &models.Note{ID: "n1", Downloads: 3}
	svc := NewNoteService(notes, authzFor(newFakeUsers()))

	const workers = 25
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RecordDownload(context.Background(), "n1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 3+workers, notes.notes["n1"].Downloads)

	_, err := svc.RecordDownload(context.Background(), "missing")
	assert.True(t, errors.Is(err, apperrors.ErrNoteNotFound))
}

func TestCreateEventDefaultsTags(t *testing.T) {
	events := &fakeEvents{}
	svc := NewEventService(events, authzFor(newFakeUsers("u1")))
	date := time.Date(2030, 1, 2, 10, 0, 0, 0, time.FixedZone("IST", 19800))

	event, err := svc.CreateEvent(context.Background(), "u1", dto.CreateEventRequest{
		Title: "IEEE Hackathon", Organizer: "IEEE", Date: &date,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{}, event.Tags)
	assert.Equal(t, "u1", event.CreatedBy)
	assert.True(t, event.Date.Equal(date))
	assert.Equal(t, time.UTC, event.Date.Location())
}

func TestUploadNoteFile(t *testing.T) {
	storage := &fakeStorage{}
	svc := NewFileService(storage, authzFor(newFakeUsers("u1")), 1<<20)
	ctx := context.Background()

	resp, err := svc.UploadNoteFile(ctx, "u1", multipartFile(t, "unit1.pdf", []byte("%PDF-1.4")))
	require.NoError(t, err)
	assert.Equal(t, "http://files/notes/abc.pdf", resp.URL)
	assert.Equal(t, "application/pdf", resp.ContentType)
	assert.Equal(t, "%PDF-1.4", storage.body)

	_, err = svc.UploadNoteFile(ctx, "u1", multipartFile(t, "run.exe", []byte("MZ")))
	assert.True(t, errors.Is(err, apperrors.ErrUnsupportedFile))

	big := make([]byte, (1<<20)+1)
	_, err = svc.UploadNoteFile(ctx, "u1", multipartFile(t, "big.pdf", big))
	assert.True(t, errors.Is(err, apperrors.ErrFileTooLarge))

	_, err = svc.UploadNoteFile(ctx, "u1", nil)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Len(t, storage.saved, 1)
}
