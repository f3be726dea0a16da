package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/takeuforward/portal/internal/app/models"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/db"
)

// group is a reserved word and stays quoted everywhere
var linkColumns = []string{"id", "label", "url", `"group"`, "description", "created_at"}

// LinkRepository handles database operations for community links
type LinkRepository struct {
	DB db.DBTX
}

// NewLinkRepository creates a new LinkRepository
func NewLinkRepository(conn db.DBTX) *LinkRepository {
	return &LinkRepository{DB: conn}
}

func linkPredicates(f dto.LinkFilter) []squirrel.Sqlizer {
	var preds []squirrel.Sqlizer
	if f.Group != nil {
		preds = append(preds, squirrel.Eq{`"group"`: *f.Group})
	}
	if f.Search != nil {
		preds = append(preds, contains("label", *f.Search))
	}
	return preds
}

func linkListQuery(f dto.LinkFilter) squirrel.SelectBuilder {
	b := psql.Select(linkColumns...).From("links").OrderBy(`"group" ASC`, "label ASC", "id ASC")
	return where(b, linkPredicates(f))
}

// ListLinks returns links ordered by group then label
func (r *LinkRepository) ListLinks(ctx context.Context, f dto.LinkFilter) ([]models.Link, error) {
	return listRows[models.Link](ctx, r.DB, linkListQuery(f), "links")
}

// CreateLink inserts l and returns the stored row
func (r *LinkRepository) CreateLink(ctx context.Context, l *models.Link) (*models.Link, error) {
	b := psql.Insert("links").
		Columns("id", "label", "url", `"group"`, "description").
		Values(l.ID, l.Label, l.URL, l.Group, l.Description).
		Suffix("RETURNING " + strings.Join(linkColumns, ", "))
	return insertRow[models.Link](ctx, r.DB, b, "link")
}

// CountLinks returns the number of stored links
func (r *LinkRepository) CountLinks(ctx context.Context) (int64, error) {
	return countRows(ctx, r.DB, "links")
}
