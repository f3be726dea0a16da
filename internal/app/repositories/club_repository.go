package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/takeuforward/portal/internal/app/models"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/db"
)

var clubColumns = []string{"id", "name", "category", "description", "instagram", "email", "meeting_time", "created_at"}

// ClubRepository handles database operations for clubs
type ClubRepository struct {
	DB db.DBTX
}

// NewClubRepository creates a new ClubRepository
func NewClubRepository(conn db.DBTX) *ClubRepository {
	return &ClubRepository{DB: conn}
}

func clubPredicates(f dto.ClubFilter) []squirrel.Sqlizer {
	var preds []squirrel.Sqlizer
	if f.Category != nil {
		preds = append(preds, squirrel.Eq{"category": *f.Category})
	}
	return preds
}

func clubListQuery(f dto.ClubFilter) squirrel.SelectBuilder {
	return where(psql.Select(clubColumns...).From("clubs").OrderBy("name ASC", "id ASC"), clubPredicates(f))
}

// ListClubs returns clubs ordered by name
func (r *ClubRepository) ListClubs(ctx context.Context, f dto.ClubFilter) ([]models.Club, error) {
	return listRows[models.Club](ctx, r.DB, clubListQuery(f), "clubs")
}

// CreateClub inserts c and returns the stored row
func (r *ClubRepository) CreateClub(ctx context.Context, c *models.Club) (*models.Club, error) {
	b := psql.Insert("clubs").
		Columns("id", "name", "category", "description", "instagram", "email", "meeting_time").
		Values(c.ID, c.Name, c.Category, c.Description, c.Instagram, c.Email, c.MeetingTime).
		Suffix("RETURNING " + strings.Join(clubColumns, ", "))
	return insertRow[models.Club](ctx, r.DB, b, "club")
}

// CountClubs returns the number of stored clubs
func (r *ClubRepository) CountClubs(ctx context.Context) (int64, error) {
	return countRows(ctx, r.DB, "clubs")
}
