package repositories

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takeuforward/portal/internal/app/migrations"
	"github.com/takeuforward/portal/internal/app/models"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/pkg/apperrors"
)

// testRepos connects to PORTAL_TEST_DATABASE_URL, migrates and empties every table
func testRepos(t *testing.T) (*Repositories, *pgxpool.Pool) {
	t.Helper()
	url := os.Getenv("PORTAL_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("PORTAL_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.NewMigrator(pool).Up(ctx))
	_, err = pool.Exec(ctx, `TRUNCATE users, mentors, notes, events, clubs, opportunities, projects_ifp, links, discussions_channels CASCADE`)
	require.NoError(t, err)

	return NewRepositories(pool), pool
}

func seedUser(t *testing.T, r *Repositories, id string) *models.User {
	t.Helper()
	u, err := r.UserRepository.UpsertUser(context.Background(), UpsertUserParams{ID: id, Department: strPtr("CSE")})
	require.NoError(t, err)
	return u
}

func newNote(uploader, dept string, semester int, title string) *models.Note {
	return &models.Note{
		ID: uuid.NewString(), Dept: dept, Semester: semester, CourseCode: "CS6501",
		Title: title, FileURL: "https://files.test/" + title + ".pdf", UploadedBy: uploader,
	}
}

func TestIntegration_NotesFilterAndDownloads(t *testing.T) {
	r, _ := testRepos(t)
	ctx := context.Background()
	seedUser(t, r, "u1")

	a, err := r.NoteRepository.CreateNote(ctx, newNote("u1", "CSE", 5, "A"))
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	b, err := r.NoteRepository.CreateNote(ctx, newNote("u1", "CSE", 5, "B"))
	require.NoError(t, err)
	_, err = r.NoteRepository.CreateNote(ctx, newNote("u1", "ECE", 5, "C"))
	require.NoError(t, err)

	notes, err := r.NoteRepository.ListNotes(ctx, dto.NoteFilter{Dept: strPtr("CSE"), Semester: intPtr(5)})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, b.ID, notes[0].ID)
	assert.Equal(t, a.ID, notes[1].ID)
	require.NotNil(t, notes[0].Uploader)
	assert.Equal(t, "u1", notes[0].Uploader.ID)

	for i := 0; i < 2; i++ {
		_, err := r.NoteRepository.IncrementDownloads(ctx, a.ID)
		require.NoError(t, err)
	}
	notes, err = r.NoteRepository.ListNotes(ctx, dto.NoteFilter{Search: strPtr("a")})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, 2, notes[0].Downloads)
}

func TestIntegration_ConcurrentDownloads(t *testing.T) {
	r, _ := testRepos(t)
	ctx := context.Background()
	seedUser(t, r, "u1")
	note, err := r.NoteRepository.CreateNote(ctx, newNote("u1", "CSE", 3, "DS"))
	require.NoError(t, err)

	const n = 40
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.NoteRepository.IncrementDownloads(ctx, note.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := r.NoteRepository.IncrementDownloads(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, n+1, got)
}

func TestIntegration_IncrementUnknownNote(t *testing.T) {
	r, _ := testRepos(t)
	ctx := context.Background()

	_, err := r.NoteRepository.IncrementDownloads(ctx, uuid.NewString())
	assert.True(t, errors.Is(err, apperrors.ErrNoteNotFound))

	_, err = r.NoteRepository.IncrementDownloads(ctx, "not-a-uuid")
	assert.True(t, errors.Is(err, apperrors.ErrNoteNotFound))
}

func TestIntegration_UpsertUserMerges(t *testing.T) {
	r, pool := testRepos(t)
	ctx := context.Background()

	first, err := r.UserRepository.UpsertUser(ctx, UpsertUserParams{ID: "u1", Department: strPtr("CSE"), Email: strPtr("a@ssn.edu.in")})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, first.Role)

	second, err := r.UserRepository.UpsertUser(ctx, UpsertUserParams{ID: "u1", Year: intPtr(3)})
	require.NoError(t, err)
	require.NotNil(t, second.Department)
	assert.Equal(t, "CSE", *second.Department)
	require.NotNil(t, second.Year)
	assert.Equal(t, 3, *second.Year)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))

	var count int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM users WHERE id = 'u1'`).Scan(&count))
	assert.Equal(t, 1, count)

	_, err = r.UserRepository.UpsertUser(ctx, UpsertUserParams{ID: "u2", Email: strPtr("a@ssn.edu.in")})
	assert.True(t, errors.Is(err, apperrors.ErrEmailAlreadyExists))

	_, err = r.UserRepository.GetUserByID(ctx, "missing")
	assert.True(t, errors.Is(err, apperrors.ErrUserNotFound))
}

func TestIntegration_UpcomingIEEEEvents(t *testing.T) {
	r, _ := testRepos(t)
	ctx := context.Background()
	seedUser(t, r, "u1")

	now := time.Now()
	mk := func(title string, at time.Time, tags ...string) *models.Event {
		e, err := r.EventRepository.CreateEvent(ctx, &models.Event{
			ID: uuid.NewString(), Title: title, Organizer: "SSN IEEE", Date: at, Tags: tags, CreatedBy: "u1",
		})
		require.NoError(t, err)
		return e
	}
	mk("past", now.Add(-48*time.Hour), "IEEE")
	later := mk("later", now.Add(72*time.Hour), "IEEE", "hackathon")
	soon := mk("soon", now.Add(24*time.Hour), "IEEE")
	mk("other", now.Add(24*time.Hour), "ACM")

	events, err := r.EventRepository.ListEvents(ctx, dto.EventFilter{Tags: []string{"IEEE"}, Upcoming: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, soon.ID, events[0].ID)
	assert.Equal(t, later.ID, events[1].ID)
	assert.Equal(t, "u1", events[0].Creator.ID)

	all, err := r.EventRepository.ListEvents(ctx, dto.EventFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "past", all[0].Title)
}

func TestIntegration_Mentors(t *testing.T) {
	r, _ := testRepos(t)
	ctx := context.Background()
	seedUser(t, r, "u1")
	seedUser(t, r, "u2")

	_, err := r.MentorRepository.CreateMentor(ctx, &models.Mentor{ID: uuid.NewString(), UserID: "u1", Interests: []string{"DSA"}, IsAvailable: true})
	require.NoError(t, err)
	_, err = r.MentorRepository.CreateMentor(ctx, &models.Mentor{ID: uuid.NewString(), UserID: "u2", Interests: []string{"DSA"}, IsAvailable: false})
	require.NoError(t, err)

	_, err = r.MentorRepository.CreateMentor(ctx, &models.Mentor{ID: uuid.NewString(), UserID: "u1", Interests: []string{}})
	assert.True(t, errors.Is(err, apperrors.ErrMentorAlreadyExists))

	mentors, err := r.MentorRepository.ListMentors(ctx, dto.MentorFilter{Skills: []string{"DSA"}})
	require.NoError(t, err)
	require.Len(t, mentors, 1)
	assert.Equal(t, "u1", mentors[0].UserID)
	assert.Equal(t, "u1", mentors[0].User.ID)

	updated, err := r.MentorRepository.UpdateMentorByUserID(ctx, "u2", UpdateMentorParams{IsAvailable: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.IsAvailable)

	_, err = r.MentorRepository.UpdateMentorByUserID(ctx, "nobody", UpdateMentorParams{IsAvailable: boolPtr(true)})
	assert.True(t, errors.Is(err, apperrors.ErrMentorNotFound))
}

func TestIntegration_Catalog(t *testing.T) {
	r, _ := testRepos(t)
	ctx := context.Background()

	_, err := r.LinkRepository.CreateLink(ctx, &models.Link{ID: uuid.NewString(), Label: "Invente", URL: "https://invente.ssn.edu.in/", Group: "Flagship Events"})
	require.NoError(t, err)
	_, err = r.LinkRepository.CreateLink(ctx, &models.Link{ID: uuid.NewString(), Label: "SSN Official Website", URL: "https://ssn.edu.in/", Group: "SSN Official"})
	require.NoError(t, err)

	links, err := r.LinkRepository.ListLinks(ctx, dto.LinkFilter{})
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "Flagship Events", links[0].Group)

	deadline := "2025-03-31"
	opp, err := r.OpportunityRepository.CreateOpportunity(ctx, &models.Opportunity{ID: uuid.NewString(), Type: "internship", Title: "SDE Intern", Deadline: &deadline, Tags: []string{"go"}})
	require.NoError(t, err)
	require.NotNil(t, opp.Deadline)
	assert.Equal(t, deadline, *opp.Deadline)

	opps, err := r.OpportunityRepository.ListOpportunities(ctx, dto.OpportunityFilter{Tags: []string{"rust"}})
	require.NoError(t, err)
	assert.Empty(t, opps)
	assert.NotNil(t, opps)

	_, err = r.DiscussionRepository.CreateChannel(ctx, &models.DiscussionChannel{ID: uuid.NewString(), Label: "GATE Preparation", Platform: models.PlatformTelegram, URL: "https://t.me/ssn_gate_prep", TopicTags: []string{"gate"}})
	require.NoError(t, err)
	n, err := r.DiscussionRepository.CountChannels(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = r.ClubRepository.CreateClub(ctx, &models.Club{ID: uuid.NewString(), Name: "SSN Coding Club", Category: "Technical"})
	require.NoError(t, err)
	_, err = r.ProjectIfpRepository.CreateProject(ctx, &models.ProjectIfp{ID: uuid.NewString(), Title: "Edge ML", Dept: "CSE", Area: "AI", GuideName: "Dr. K", Contact: "k@ssn.edu.in", Year: 2025})
	require.NoError(t, err)
	projects, err := r.ProjectIfpRepository.ListProjects(ctx, dto.ProjectIfpFilter{Area: strPtr("AI")})
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}
