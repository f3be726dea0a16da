package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/takeuforward/portal/internal/app/models"
	"github.com/takeuforward/portal/internal/db"
	"github.com/takeuforward/portal/internal/pkg/apperrors"
	"github.com/takeuforward/portal/internal/pkg/dberrors"
	"github.com/takeuforward/portal/internal/pkg/logger"
)

var userColumnNames = []string{
	"id", "email", "first_name", "last_name", "profile_image_url", "year", "program",
	"department", "intro", "COALESCE({a}skills, '{}') AS skills", "phone", "role",
	"COALESCE({a}socials, '{}'::jsonb) AS socials", "created_at", "updated_at",
}

// userColumns lists user columns in scanUser order
func userColumns(alias string) []string {
	return qualify(alias, userColumnNames...)
}

// userDest returns scan destinations matching userColumns
func userDest(u *models.User) []any {
	return []any{
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL, &u.Year, &u.Program,
		&u.Department, &u.Intro, &u.Skills, &u.Phone, &u.Role,
		&u.Socials, &u.CreatedAt, &u.UpdatedAt,
	}
}

// UpsertUserParams names the user and the columns to write.
// Nil pointers and nil slices/maps mean "not supplied" and keep the stored value.
type UpsertUserParams struct {
	ID              string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
	Year            *int
	Program         *string
	Department      *string
	Intro           *string
	Skills          []string
	Phone           *string
	Socials         map[string]string
}

// supplied returns the column/value pairs present in p, in a fixed order
func (p UpsertUserParams) supplied() ([]string, []any) {
	var cols []string
	var vals []any
	add := func(col string, v any) {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	if p.Email != nil {
		add("email", *p.Email)
	}
	if p.FirstName != nil {
		add("first_name", *p.FirstName)
	}
	if p.LastName != nil {
		add("last_name", *p.LastName)
	}
	if p.ProfileImageURL != nil {
		add("profile_image_url", *p.ProfileImageURL)
	}
	if p.Year != nil {
		add("year", *p.Year)
	}
	if p.Program != nil {
		add("program", *p.Program)
	}
	if p.Department != nil {
		add("department", *p.Department)
	}
	if p.Intro != nil {
		add("intro", *p.Intro)
	}
	if p.Skills != nil {
		add("skills", p.Skills)
	}
	if p.Phone != nil {
		add("phone", *p.Phone)
	}
	if p.Socials != nil {
		add("socials", p.Socials)
	}
	return cols, vals
}

// UserRepository handles database operations for users
type UserRepository struct {
	DB db.DBTX
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(conn db.DBTX) *UserRepository {
	return &UserRepository{DB: conn}
}

// GetUserByID retrieves a user by id
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query, args, err := psql.Select(userColumns("u")...).From("users u").Where("u.id = ?", id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query: %w", err)
	}

	var user models.User
	if err := r.DB.QueryRow(ctx, query, args...).Scan(userDest(&user)...); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("userID", id).Msg("Error getting user by ID")
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return &user, nil
}

// UserExists reports whether a user row with id exists
func (r *UserRepository) UserExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user %s exists: %w", id, err)
	}
	return exists, nil
}

// upsertUserQuery inserts the user or merges the supplied columns into the existing row
func upsertUserQuery(p UpsertUserParams) (string, []any, error) {
	cols, vals := p.supplied()

	set := make([]string, 0, len(cols)+1)
	for _, c := range cols {
		set = append(set, fmt.Sprintf("%s = EXCLUDED.%s", c, c))
	}
	set = append(set, "updated_at = now()")

	return psql.Insert("users").
		Columns(append([]string{"id"}, cols...)...).
		Values(append([]any{p.ID}, vals...)...).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + strings.Join(set, ", ") +
			" RETURNING " + strings.Join(userColumns(""), ", ")).
		ToSql()
}

// UpsertUser creates the user or updates only the supplied columns of an existing one
func (r *UserRepository) UpsertUser(ctx context.Context, p UpsertUserParams) (*models.User, error) {
	query, args, err := upsertUserQuery(p)
	if err != nil {
		return nil, fmt.Errorf("build upsert user query: %w", err)
	}

	var user models.User
	if err := r.DB.QueryRow(ctx, query, args...).Scan(userDest(&user)...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("userID", p.ID).Msg("Error upserting user")
		return nil, fmt.Errorf("upsert user %s: %w", p.ID, err)
	}
	return &user, nil
}

// scanJoinedUser reads the trailing user columns of a joined row
func scanJoinedUser(row pgx.Row, head []any) (*models.User, error) {
	var user models.User
	if err := row.Scan(append(head, userDest(&user)...)...); err != nil {
		return nil, err
	}
	return &user, nil
}
