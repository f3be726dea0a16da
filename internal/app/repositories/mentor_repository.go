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

var mentorColumnNames = []string{
	"id", "user_id", "COALESCE({a}interests, '{}') AS interests", "availability",
	"contact_whatsapp", "contact_email", "rating", "is_available", "created_at",
}

func mentorColumns(alias string) []string {
	return qualify(alias, mentorColumnNames...)
}

func mentorDest(m *models.Mentor) []any {
	return []any{
		&m.ID, &m.UserID, &m.Interests, &m.Availability,
		&m.ContactWhatsapp, &m.ContactEmail, &m.Rating, &m.IsAvailable, &m.CreatedAt,
	}
}

// UpdateMentorParams holds the mentor columns to change; nil means unchanged
type UpdateMentorParams struct {
	Interests       []string
	Availability    *string
	ContactWhatsapp *string
	ContactEmail    *string
	IsAvailable     *bool
}

// MentorRepository handles database operations for mentors
type MentorRepository struct {
	DB db.DBTX
}

// NewMentorRepository creates a new MentorRepository
func NewMentorRepository(conn db.DBTX) *MentorRepository {
	return &MentorRepository{DB: conn}
}

// mentorPredicates always hides unavailable mentors
func mentorPredicates(f dto.MentorFilter) []squirrel.Sqlizer {
	preds := []squirrel.Sqlizer{squirrel.Eq{"m.is_available": true}}
	if f.Department != nil {
		preds = append(preds, squirrel.Eq{"u.department": *f.Department})
	}
	if len(f.Skills) > 0 {
		preds = append(preds, overlaps("m.interests", f.Skills))
	}
	return preds
}

func mentorListQuery(f dto.MentorFilter) squirrel.SelectBuilder {
	b := psql.Select(append(mentorColumns("m"), userColumns("u")...)...).
		From("mentors m").
		Join("users u ON u.id = m.user_id").
		OrderBy("m.created_at ASC", "m.id ASC")
	return where(b, mentorPredicates(f))
}

// ListMentors returns available mentors with their user, oldest first
func (r *MentorRepository) ListMentors(ctx context.Context, f dto.MentorFilter) ([]models.Mentor, error) {
	query, args, err := mentorListQuery(f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list mentors query: %w", err)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list mentors query")
		return nil, fmt.Errorf("list mentors: %w", err)
	}
	defer rows.Close()

	mentors := make([]models.Mentor, 0)
	for rows.Next() {
		var m models.Mentor
		user, err := scanJoinedUser(rows, mentorDest(&m))
		if err != nil {
			return nil, fmt.Errorf("scan mentor: %w", err)
		}
		m.User = user
		mentors = append(mentors, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mentors: %w", err)
	}
	return mentors, nil
}

// GetMentorByUserID returns the mentor profile owned by userID
func (r *MentorRepository) GetMentorByUserID(ctx context.Context, userID string) (*models.Mentor, error) {
	query, args, err := psql.Select(mentorColumns("m")...).From("mentors m").
		Where(squirrel.Eq{"m.user_id": userID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get mentor query: %w", err)
	}

	var m models.Mentor
	if err := r.DB.QueryRow(ctx, query, args...).Scan(mentorDest(&m)...); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, fmt.Errorf("get mentor for user %s: %w", userID, err)
	}
	return &m, nil
}

// CreateMentor inserts m and returns the stored row
func (r *MentorRepository) CreateMentor(ctx context.Context, m *models.Mentor) (*models.Mentor, error) {
	query, args, err := psql.Insert("mentors").
		Columns("id", "user_id", "interests", "availability", "contact_whatsapp", "contact_email", "rating", "is_available").
		Values(m.ID, m.UserID, m.Interests, m.Availability, m.ContactWhatsapp, m.ContactEmail, m.Rating, m.IsAvailable).
		Suffix("RETURNING " + strings.Join(mentorColumns(""), ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create mentor query: %w", err)
	}

	var created models.Mentor
	if err := r.DB.QueryRow(ctx, query, args...).Scan(mentorDest(&created)...); err != nil {
		switch {
		case dberrors.IsUniqueViolation(err):
			return nil, apperrors.ErrMentorAlreadyExists
		case dberrors.IsForeignKeyViolation(err):
			return nil, apperrors.ErrReferencedUserMissing
		}
		logger.Error().Err(err).Str("userID", m.UserID).Msg("Error creating mentor")
		return nil, fmt.Errorf("create mentor: %w", err)
	}
	return &created, nil
}

func updateMentorQuery(userID string, p UpdateMentorParams) (string, []any, error) {
	b := psql.Update("mentors")
	if p.Interests != nil {
		b = b.Set("interests", p.Interests)
	}
	if p.Availability != nil {
		b = b.Set("availability", *p.Availability)
	}
	if p.ContactWhatsapp != nil {
		b = b.Set("contact_whatsapp", *p.ContactWhatsapp)
	}
	if p.ContactEmail != nil {
		b = b.Set("contact_email", *p.ContactEmail)
	}
	if p.IsAvailable != nil {
		b = b.Set("is_available", *p.IsAvailable)
	}
	return b.Where(squirrel.Eq{"user_id": userID}).
		Suffix("RETURNING " + strings.Join(mentorColumns(""), ", ")).
		ToSql()
}

// UpdateMentorByUserID applies p to the mentor owned by userID
func (r *MentorRepository) UpdateMentorByUserID(ctx context.Context, userID string, p UpdateMentorParams) (*models.Mentor, error) {
	query, args, err := updateMentorQuery(userID, p)
	if err != nil {
		return nil, fmt.Errorf("build update mentor query: %w", err)
	}

	var m models.Mentor
	if err := r.DB.QueryRow(ctx, query, args...).Scan(mentorDest(&m)...); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrMentorNotFound
		}
		logger.Error().Err(err).Str("userID", userID).Msg("Error updating mentor")
		return nil, fmt.Errorf("update mentor for user %s: %w", userID, err)
	}
	return &m, nil
}
