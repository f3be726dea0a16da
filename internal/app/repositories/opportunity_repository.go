package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/takeuforward/portal/internal/app/models"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/db"
)

var opportunityColumns = []string{
	"id", "type", "title", "description", "deadline::text AS deadline", "link", "contact",
	"COALESCE(tags, '{}') AS tags", "created_at",
}

// OpportunityRepository handles database operations for opportunities
type OpportunityRepository struct {
	DB db.DBTX
}

// NewOpportunityRepository creates a new OpportunityRepository
func NewOpportunityRepository(conn db.DBTX) *OpportunityRepository {
	return &OpportunityRepository{DB: conn}
}

func opportunityPredicates(f dto.OpportunityFilter) []squirrel.Sqlizer {
	var preds []squirrel.Sqlizer
	if f.Type != nil {
		preds = append(preds, squirrel.Eq{"type": *f.Type})
	}
	if len(f.Tags) > 0 {
		preds = append(preds, overlaps("tags", f.Tags))
	}
	return preds
}

func opportunityListQuery(f dto.OpportunityFilter) squirrel.SelectBuilder {
	b := psql.Select(opportunityColumns...).From("opportunities").OrderBy("created_at DESC", "id DESC")
	return where(b, opportunityPredicates(f))
}

// ListOpportunities returns opportunities, newest first
func (r *OpportunityRepository) ListOpportunities(ctx context.Context, f dto.OpportunityFilter) ([]models.Opportunity, error) {
	return listRows[models.Opportunity](ctx, r.DB, opportunityListQuery(f), "opportunities")
}

// CreateOpportunity inserts o and returns the stored row
func (r *OpportunityRepository) CreateOpportunity(ctx context.Context, o *models.Opportunity) (*models.Opportunity, error) {
	b := psql.Insert("opportunities").
		Columns("id", "type", "title", "description", "deadline", "link", "contact", "tags").
		Values(o.ID, o.Type, o.Title, o.Description, o.Deadline, o.Link, o.Contact, o.Tags).
		Suffix("RETURNING " + strings.Join(opportunityColumns, ", "))
	return insertRow[models.Opportunity](ctx, r.DB, b, "opportunity")
}
