package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/takeuforward/portal/internal/app/models"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/db"
)

var discussionColumns = []string{"id", "label", "platform", "url", "COALESCE(topic_tags, '{}') AS topic_tags", "created_at"}

// DiscussionRepository handles database operations for discussion channels
type DiscussionRepository struct {
	DB db.DBTX
}

// NewDiscussionRepository creates a new DiscussionRepository
func NewDiscussionRepository(conn db.DBTX) *DiscussionRepository {
	return &DiscussionRepository{DB: conn}
}

func discussionPredicates(f dto.DiscussionFilter) []squirrel.Sqlizer {
	var preds []squirrel.Sqlizer
	if f.Platform != nil {
		preds = append(preds, squirrel.Eq{"platform": *f.Platform})
	}
	if len(f.TopicTags) > 0 {
		preds = append(preds, overlaps("topic_tags", f.TopicTags))
	}
	return preds
}

func discussionListQuery(f dto.DiscussionFilter) squirrel.SelectBuilder {
	b := psql.Select(discussionColumns...).From("discussions_channels").OrderBy("label ASC", "id ASC")
	return where(b, discussionPredicates(f))
}

// ListChannels returns discussion channels ordered by label
func (r *DiscussionRepository) ListChannels(ctx context.Context, f dto.DiscussionFilter) ([]models.DiscussionChannel, error) {
	return listRows[models.DiscussionChannel](ctx, r.DB, discussionListQuery(f), "discussion channels")
}

// CreateChannel inserts ch and returns the stored row
func (r *DiscussionRepository) CreateChannel(ctx context.Context, ch *models.DiscussionChannel) (*models.DiscussionChannel, error) {
	b := psql.Insert("discussions_channels").
		Columns("id", "label", "platform", "url", "topic_tags").
		Values(ch.ID, ch.Label, string(ch.Platform), ch.URL, ch.TopicTags).
		Suffix("RETURNING " + strings.Join(discussionColumns, ", "))
	return insertRow[models.DiscussionChannel](ctx, r.DB, b, "discussion channel")
}

// CountChannels returns the number of stored discussion channels
func (r *DiscussionRepository) CountChannels(ctx context.Context) (int64, error) {
	return countRows(ctx, r.DB, "discussions_channels")
}
