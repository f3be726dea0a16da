package services

import (
	"context"

	"github.com/takeuforward/portal/internal/app/auth"
	"github.com/takeuforward/portal/internal/app/models"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/app/repositories"
	"github.com/takeuforward/portal/internal/pkg/filestorage"
)

// Store interfaces are the repository methods each service depends on.
// The concrete repositories in package repositories satisfy them.

type UserStore interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UserExists(ctx context.Context, id string) (bool, error)
	UpsertUser(ctx context.Context, p repositories.UpsertUserParams) (*models.User, error)
}

type MentorStore interface {
	ListMentors(ctx context.Context, f dto.MentorFilter) ([]models.Mentor, error)
	GetMentorByUserID(ctx context.Context, userID string) (*models.Mentor, error)
	CreateMentor(ctx context.Context, m *models.Mentor) (*models.Mentor, error)
	UpdateMentorByUserID(ctx context.Context, userID string, p repositories.UpdateMentorParams) (*models.Mentor, error)
}

type NoteStore interface {
	ListNotes(ctx context.Context, f dto.NoteFilter) ([]models.Note, error)
	CreateNote(ctx context.Context, n *models.Note) (*models.Note, error)
	IncrementDownloads(ctx context.Context, id string) (int, error)
}

type EventStore interface {
	ListEvents(ctx context.Context, f dto.EventFilter) ([]models.Event, error)
	CreateEvent(ctx context.Context, e *models.Event) (*models.Event, error)
}

type ClubStore interface {
	ListClubs(ctx context.Context, f dto.ClubFilter) ([]models.Club, error)
	CreateClub(ctx context.Context, c *models.Club) (*models.Club, error)
}

type OpportunityStore interface {
	ListOpportunities(ctx context.Context, f dto.OpportunityFilter) ([]models.Opportunity, error)
	CreateOpportunity(ctx context.Context, o *models.Opportunity) (*models.Opportunity, error)
}

type ProjectIfpStore interface {
	ListProjects(ctx context.Context, f dto.ProjectIfpFilter) ([]models.ProjectIfp, error)
	CreateProject(ctx context.Context, p *models.ProjectIfp) (*models.ProjectIfp, error)
}

type LinkStore interface {
	ListLinks(ctx context.Context, f dto.LinkFilter) ([]models.Link, error)
	CreateLink(ctx context.Context, l *models.Link) (*models.Link, error)
}

type DiscussionStore interface {
	ListChannels(ctx context.Context, f dto.DiscussionFilter) ([]models.DiscussionChannel, error)
	CreateChannel(ctx context.Context, ch *models.DiscussionChannel) (*models.DiscussionChannel, error)
}

// Services holds all service instances
type Services struct {
	UserService        UserService
	MentorService      MentorService
	NoteService        NoteService
	EventService       EventService
	ClubService        ClubService
	OpportunityService OpportunityService
	ProjectIfpService  ProjectIfpService
	LinkService        LinkService
	DiscussionService  DiscussionService
	FileService        FileService
}

// NewServices wires every service onto the repositories and file storage
func NewServices(repos *repositories.Repositories, storage filestorage.FileStorage, maxUploadBytes int64) *Services {
	authz := auth.NewAuthorizationService(repos.UserRepository)

	return &Services{
		UserService:        NewUserService(repos.UserRepository),
		MentorService:      NewMentorService(repos.MentorRepository, authz),
		NoteService:        NewNoteService(repos.NoteRepository, authz),
		EventService:       NewEventService(repos.EventRepository, authz),
		ClubService:        NewClubService(repos.ClubRepository),
		OpportunityService: NewOpportunityService(repos.OpportunityRepository),
		ProjectIfpService:  NewProjectIfpService(repos.ProjectIfpRepository),
		LinkService:        NewLinkService(repos.LinkRepository),
		DiscussionService:  NewDiscussionService(repos.DiscussionRepository),
		FileService:        NewFileService(storage, authz, maxUploadBytes),
	}
}

// ActorChecker confirms the caller names an existing user
type ActorChecker interface {
	EnsureActor(ctx context.Context, actorID string) error
}
