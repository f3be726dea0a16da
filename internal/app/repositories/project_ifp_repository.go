package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/takeuforward/portal/internal/app/models"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/db"
)

var projectIfpColumns = []string{"id", "title", "dept", "area", "brief", "guide_name", "contact", "year", "link", "created_at"}

// ProjectIfpRepository handles database operations for IFP projects
type ProjectIfpRepository struct {
	DB db.DBTX
}

// NewProjectIfpRepository creates a new ProjectIfpRepository
func NewProjectIfpRepository(conn db.DBTX) *ProjectIfpRepository {
	return &ProjectIfpRepository{DB: conn}
}

func projectIfpPredicates(f dto.ProjectIfpFilter) []squirrel.Sqlizer {
	var preds []squirrel.Sqlizer
	if f.Dept != nil {
		preds = append(preds, squirrel.Eq{"dept": *f.Dept})
	}
	if f.Area != nil {
		preds = append(preds, squirrel.Eq{"area": *f.Area})
	}
	return preds
}

func projectIfpListQuery(f dto.ProjectIfpFilter) squirrel.SelectBuilder {
	b := psql.Select(projectIfpColumns...).From("projects_ifp").OrderBy("year DESC", "id ASC")
	return where(b, projectIfpPredicates(f))
}

// ListProjects returns projects, latest year first
func (r *ProjectIfpRepository) ListProjects(ctx context.Context, f dto.ProjectIfpFilter) ([]models.ProjectIfp, error) {
	return listRows[models.ProjectIfp](ctx, r.DB, projectIfpListQuery(f), "projects")
}

// CreateProject inserts p and returns the stored row
func (r *ProjectIfpRepository) CreateProject(ctx context.Context, p *models.ProjectIfp) (*models.ProjectIfp, error) {
	b := psql.Insert("projects_ifp").
		Columns("id", "title", "dept", "area", "brief", "guide_name", "contact", "year", "link").
		Values(p.ID, p.Title, p.Dept, p.Area, p.Brief, p.GuideName, p.Contact, p.Year, p.Link).
		Suffix("RETURNING " + strings.Join(projectIfpColumns, ", "))
	return insertRow[models.ProjectIfp](ctx, r.DB, b, "project")
}
