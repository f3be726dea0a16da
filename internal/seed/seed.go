package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/takeuforward/portal/internal/app/models"
	appRepos "github.com/takeuforward/portal/internal/app/repositories"
)

type clubStore interface {
	CountClubs(ctx context.Context) (int64, error)
	CreateClub(ctx context.Context, c *models.Club) (*models.Club, error)
}

type linkStore interface {
	CountLinks(ctx context.Context) (int64, error)
	CreateLink(ctx context.Context, l *models.Link) (*models.Link, error)
}

type channelStore interface {
	CountChannels(ctx context.Context) (int64, error)
	CreateChannel(ctx context.Context, ch *models.DiscussionChannel) (*models.DiscussionChannel, error)
}

// Seeder fills empty catalog tables with the portal's default listings
type Seeder struct {
	clubs    clubStore
	links    linkStore
	channels channelStore
	lgr      zerolog.Logger
}

// NewSeeder creates a Seeder over the catalog repositories
func NewSeeder(repos *appRepos.Repositories, lgr zerolog.Logger) *Seeder {
	return &Seeder{
		clubs:    repos.ClubRepository,
		links:    repos.LinkRepository,
		channels: repos.DiscussionRepository,
		lgr:      lgr,
	}
}

// CreateDefaultData inserts the default clubs, links and discussion channels.
// A table that already holds rows is left alone. Errors are collected so one
// failing table does not stop the others.
func (s *Seeder) CreateDefaultData(ctx context.Context) error {
	s.lgr.Info().Msg("Checking/Creating default data (clubs, links, discussion channels)...")
	var finalErr error

	// --- Clubs --- //
	if n, err := s.clubs.CountClubs(ctx); err != nil {
		finalErr = errors.Join(finalErr, fmt.Errorf("count clubs: %w", err))
	} else if n == 0 {
		for _, c := range defaultClubs {
			c.ID = uuid.NewString()
			if _, err := s.clubs.CreateClub(ctx, &c); err != nil {
				s.lgr.Error().Err(err).Str("club", c.Name).Msg("Error creating default club")
				finalErr = errors.Join(finalErr, err)
			}
		}
		s.lgr.Info().Int("count", len(defaultClubs)).Msg("Default clubs created")
	}

	// --- Links --- //
	if n, err := s.links.CountLinks(ctx); err != nil {
		finalErr = errors.Join(finalErr, fmt.Errorf("count links: %w", err))
	} else if n == 0 {
		for _, l := range defaultLinks {
			l.ID = uuid.NewString()
			if _, err := s.links.CreateLink(ctx, &l); err != nil {
				s.lgr.Error().Err(err).Str("link", l.Label).Msg("Error creating default link")
				finalErr = errors.Join(finalErr, err)
			}
		}
		s.lgr.Info().Int("count", len(defaultLinks)).Msg("Default links created")
	}

	// --- Discussion channels --- //
	if n, err := s.channels.CountChannels(ctx); err != nil {
		finalErr = errors.Join(finalErr, fmt.Errorf("count discussion channels: %w", err))
	} else if n == 0 {
		for _, ch := range defaultChannels {
			ch.ID = uuid.NewString()
			if _, err := s.channels.CreateChannel(ctx, &ch); err != nil {
				s.lgr.Error().Err(err).Str("channel", ch.Label).Msg("Error creating default discussion channel")
				finalErr = errors.Join(finalErr, err)
			}
		}
		s.lgr.Info().Int("count", len(defaultChannels)).Msg("Default discussion channels created")
	}

	return finalErr
}
