package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/takeuforward/portal/internal/app/models"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/db"
	"github.com/takeuforward/portal/internal/pkg/apperrors"
	"github.com/takeuforward/portal/internal/pkg/dberrors"
	"github.com/takeuforward/portal/internal/pkg/logger"
)

var noteColumnNames = []string{
	"id", "dept", "semester", "course_code", "title", "description", "file_url",
	"pages", "uploaded_by", "downloads", "created_at",
}

func noteColumns(alias string) []string {
	return qualify(alias, noteColumnNames...)
}

func noteDest(n *models.Note) []any {
	return []any{
		&n.ID, &n.Dept, &n.Semester, &n.CourseCode, &n.Title, &n.Description, &n.FileURL,
		&n.Pages, &n.UploadedBy, &n.Downloads, &n.CreatedAt,
	}
}

// NoteRepository handles database operations for notes
type NoteRepository struct {
	DB db.DBTX
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(conn db.DBTX) *NoteRepository {
	return &NoteRepository{DB: conn}
}

func notePredicates(f dto.NoteFilter) []squirrel.Sqlizer {
	var preds []squirrel.Sqlizer
	if f.Dept != nil {
		preds = append(preds, squirrel.Eq{"n.dept": *f.Dept})
	}
	if f.Semester != nil {
		preds = append(preds, squirrel.Eq{"n.semester": *f.Semester})
	}
	if f.CourseCode != nil {
		preds = append(preds, squirrel.Eq{"n.course_code": *f.CourseCode})
	}
	if f.Search != nil {
		preds = append(preds, contains("n.title", *f.Search))
	}
	return preds
}

func noteListQuery(f dto.NoteFilter) squirrel.SelectBuilder {
	b := psql.Select(append(noteColumns("n"), userColumns("u")...)...).
		From("notes n").
		Join("users u ON u.id = n.uploaded_by").
		OrderBy("n.created_at DESC", "n.id DESC")
	return where(b, notePredicates(f))
}

// ListNotes returns notes with their uploader, newest first
func (r *NoteRepository) ListNotes(ctx context.Context, f dto.NoteFilter) ([]models.Note, error) {
	query, args, err := noteListQuery(f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notes query: %w", err)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list notes query")
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var n models.Note
		uploader, err := scanJoinedUser(rows, noteDest(&n))
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		n.Uploader = uploader
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}

// CreateNote inserts n and returns the stored row
func (r *NoteRepository) CreateNote(ctx context.Context, n *models.Note) (*models.Note, error) {
	query, args, err := psql.Insert("notes").
		Columns("id", "dept", "semester", "course_code", "title", "description", "file_url", "pages", "uploaded_by", "downloads").
		Values(n.ID, n.Dept, n.Semester, n.CourseCode, n.Title, n.Description, n.FileURL, n.Pages, n.UploadedBy, n.Downloads).
		Suffix("RETURNING " + strings.Join(noteColumns(""), ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create note query: %w", err)
	}

	var created models.Note
	if err := r.DB.QueryRow(ctx, query, args...).Scan(noteDest(&created)...); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrReferencedUserMissing
		}
		logger.Error().Err(err).Str("uploadedBy", n.UploadedBy).Msg("Error creating note")
		return nil, fmt.Errorf("create note: %w", err)
	}
	return &created, nil
}

const incrementDownloadsSQL = `UPDATE notes SET downloads = downloads + 1 WHERE id = $1 RETURNING downloads`

// IncrementDownloads bumps the counter in a single statement and returns the new value
func (r *NoteRepository) IncrementDownloads(ctx context.Context, id string) (int, error) {
	var downloads int
	if err := r.DB.QueryRow(ctx, incrementDownloadsSQL, id).Scan(&downloads); err != nil {
		// a malformed uuid can never name a note
		if dberrors.IsNoRows(err) || dberrors.IsInvalidTextRepresentation(err) {
			return 0, apperrors.ErrNoteNotFound
		}
		logger.Error().Err(err).Str("noteID", id).Msg("Error incrementing note downloads")
		return 0, fmt.Errorf("increment downloads for note %s: %w", id, err)
	}
	return downloads, nil
}
