package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/takeuforward/portal/internal/app/models"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/pkg/helpers"
)

// Catalog entities have no owner: any authenticated user may add one.

// ClubService defines the interface for club operations
type ClubService interface {
	ListClubs(ctx context.Context, filter dto.ClubFilter) ([]models.Club, error)
	CreateClub(ctx context.Context, req dto.CreateClubRequest) (*models.Club, error)
}

type clubServiceImpl struct {
	clubRepo ClubStore
}

// NewClubService creates a new club service instance
func NewClubService(clubRepo ClubStore) ClubService {
	return &clubServiceImpl{clubRepo: clubRepo}
}

func (s *clubServiceImpl) ListClubs(ctx context.Context, filter dto.ClubFilter) ([]models.Club, error) {
	clubs, err := s.clubRepo.ListClubs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving clubs: %w", err)
	}
	return clubs, nil
}

func (s *clubServiceImpl) CreateClub(ctx context.Context, req dto.CreateClubRequest) (*models.Club, error) {
	club, err := s.clubRepo.CreateClub(ctx, &models.Club{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Category:    strings.TrimSpace(req.Category),
		Description: helpers.NilIfBlank(req.Description),
		Instagram:   helpers.NilIfBlank(req.Instagram),
		Email:       helpers.NilIfBlank(req.Email),
		MeetingTime: helpers.NilIfBlank(req.MeetingTime),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating club: %w", err)
	}
	return club, nil
}

// OpportunityService defines the interface for opportunity operations
type OpportunityService interface {
	ListOpportunities(ctx context.Context, filter dto.OpportunityFilter) ([]models.Opportunity, error)
	CreateOpportunity(ctx context.Context, req dto.CreateOpportunityRequest) (*models.Opportunity, error)
}

type opportunityServiceImpl struct {
	opportunityRepo OpportunityStore
}

// NewOpportunityService creates a new opportunity service instance
func NewOpportunityService(opportunityRepo OpportunityStore) OpportunityService {
	return &opportunityServiceImpl{opportunityRepo: opportunityRepo}
}

func (s *opportunityServiceImpl) ListOpportunities(ctx context.Context, filter dto.OpportunityFilter) ([]models.Opportunity, error) {
	opps, err := s.opportunityRepo.ListOpportunities(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving opportunities: %w", err)
	}
	return opps, nil
}

func (s *opportunityServiceImpl) CreateOpportunity(ctx context.Context, req dto.CreateOpportunityRequest) (*models.Opportunity, error) {
	opp, err := s.opportunityRepo.CreateOpportunity(ctx, &models.Opportunity{
		ID:          uuid.NewString(),
		Type:        strings.TrimSpace(req.Type),
		Title:       strings.TrimSpace(req.Title),
		Description: helpers.NilIfBlank(req.Description),
		Deadline:    helpers.NilIfBlank(req.Deadline),
		Link:        helpers.NilIfBlank(req.Link),
		Contact:     helpers.NilIfBlank(req.Contact),
		Tags:        helpers.NonNilStrings(req.Tags),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating opportunity: %w", err)
	}
	return opp, nil
}

// ProjectIfpService defines the interface for IFP project operations
type ProjectIfpService interface {
	ListProjects(ctx context.Context, filter dto.ProjectIfpFilter) ([]models.ProjectIfp, error)
	CreateProject(ctx context.Context, req dto.CreateProjectIfpRequest) (*models.ProjectIfp, error)
}

type projectIfpServiceImpl struct {
	projectRepo ProjectIfpStore
}

// NewProjectIfpService creates a new project service instance
func NewProjectIfpService(projectRepo ProjectIfpStore) ProjectIfpService {
	return &projectIfpServiceImpl{projectRepo: projectRepo}
}

func (s *projectIfpServiceImpl) ListProjects(ctx context.Context, filter dto.ProjectIfpFilter) ([]models.ProjectIfp, error) {
	projects, err := s.projectRepo.ListProjects(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving projects: %w", err)
	}
	return projects, nil
}

func (s *projectIfpServiceImpl) CreateProject(ctx context.Context, req dto.CreateProjectIfpRequest) (*models.ProjectIfp, error) {
	year := 0
	if req.Year != nil {
		year = *req.Year
	}
	project, err := s.projectRepo.CreateProject(ctx, &models.ProjectIfp{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(req.Title),
		Dept:      strings.TrimSpace(req.Dept),
		Area:      strings.TrimSpace(req.Area),
		Brief:     helpers.NilIfBlank(req.Brief),
		GuideName: strings.TrimSpace(req.GuideName),
		Contact:   strings.TrimSpace(req.Contact),
		Year:      year,
		Link:      helpers.NilIfBlank(req.Link),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating project: %w", err)
	}
	return project, nil
}

// LinkService defines the interface for community link operations
type LinkService interface {
	ListLinks(ctx context.Context, filter dto.LinkFilter) ([]models.Link, error)
	CreateLink(ctx context.Context, req dto.CreateLinkRequest) (*models.Link, error)
}

type linkServiceImpl struct {
	linkRepo LinkStore
}

// NewLinkService creates a new link service instance
func NewLinkService(linkRepo LinkStore) LinkService {
	return &linkServiceImpl{linkRepo: linkRepo}
}

func (s *linkServiceImpl) ListLinks(ctx context.Context, filter dto.LinkFilter) ([]models.Link, error) {
	links, err := s.linkRepo.ListLinks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving links: %w", err)
	}
	return links, nil
}

func (s *linkServiceImpl) CreateLink(ctx context.Context, req dto.CreateLinkRequest) (*models.Link, error) {
	link, err := s.linkRepo.CreateLink(ctx, &models.Link{
		ID:          uuid.NewString(),
		Label:       strings.TrimSpace(req.Label),
		URL:         strings.TrimSpace(req.URL),
		Group:       strings.TrimSpace(req.Group),
		Description: helpers.NilIfBlank(req.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating link: %w", err)
	}
	return link, nil
}

// DiscussionService defines the interface for discussion channel operations
type DiscussionService interface {
	ListChannels(ctx context.Context, filter dto.DiscussionFilter) ([]models.DiscussionChannel, error)
	CreateChannel(ctx context.Context, req dto.CreateDiscussionRequest) (*models.DiscussionChannel, error)
}

type discussionServiceImpl struct {
	discussionRepo DiscussionStore
}

// NewDiscussionService creates a new discussion service instance
func NewDiscussionService(discussionRepo DiscussionStore) DiscussionService {
	return &discussionServiceImpl{discussionRepo: discussionRepo}
}

func (s *discussionServiceImpl) ListChannels(ctx context.Context, filter dto.DiscussionFilter) ([]models.DiscussionChannel, error) {
	channels, err := s.discussionRepo.ListChannels(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving discussion channels: %w", err)
	}
	return channels, nil
}

func (s *discussionServiceImpl) CreateChannel(ctx context.Context, req dto.CreateDiscussionRequest) (*models.DiscussionChannel, error) {
	channel, err := s.discussionRepo.CreateChannel(ctx, &models.DiscussionChannel{
		ID:        uuid.NewString(),
		Label:     strings.TrimSpace(req.Label),
		Platform:  models.Platform(req.Platform),
		URL:       strings.TrimSpace(req.URL),
		TopicTags: helpers.NonNilStrings(req.TopicTags),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating discussion channel: %w", err)
	}
	return channel, nil
}
