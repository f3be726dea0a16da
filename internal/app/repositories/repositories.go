package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/takeuforward/portal/internal/db"
	"github.com/takeuforward/portal/internal/pkg/helpers"
	"github.com/takeuforward/portal/internal/pkg/logger"
)

// psql builds postgres statements with $n placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	MentorRepository      *MentorRepository
	NoteRepository        *NoteRepository
	EventRepository       *EventRepository
	ClubRepository        *ClubRepository
	OpportunityRepository *OpportunityRepository
	ProjectIfpRepository  *ProjectIfpRepository
	LinkRepository        *LinkRepository
	DiscussionRepository  *DiscussionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(conn db.DBTX) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(conn),
		MentorRepository:      NewMentorRepository(conn),
		NoteRepository:        NewNoteRepository(conn),
		EventRepository:       NewEventRepository(conn),
		ClubRepository:        NewClubRepository(conn),
		OpportunityRepository: NewOpportunityRepository(conn),
		ProjectIfpRepository:  NewProjectIfpRepository(conn),
		LinkRepository:        NewLinkRepository(conn),
		DiscussionRepository:  NewDiscussionRepository(conn),
	}
}

// where ANDs every predicate onto the builder; an empty list adds nothing
func where(b squirrel.SelectBuilder, preds []squirrel.Sqlizer) squirrel.SelectBuilder {
	if len(preds) == 0 {
		return b
	}
	return b.Where(squirrel.And(preds))
}

// overlaps matches rows whose array column shares at least one element with values
func overlaps(column string, values []string) squirrel.Sqlizer {
	return squirrel.Expr(column+" && ?", values)
}

// contains is a case-insensitive substring match with LIKE wildcards escaped
func contains(column, term string) squirrel.Sqlizer {
	return squirrel.ILike{column: "%" + helpers.EscapeLike(term) + "%"}
}

// qualify prefixes each column with alias, leaving expressions that already carry one intact
func qualify(alias string, columns ...string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		if alias == "" {
			out[i] = strings.ReplaceAll(c, "{a}", "")
			continue
		}
		if strings.Contains(c, "{a}") {
			out[i] = strings.ReplaceAll(c, "{a}", alias+".")
			continue
		}
		out[i] = alias + "." + c
	}
	return out
}

func countRows(ctx context.Context, conn db.DBTX, table string) (int64, error) {
	query, args, err := psql.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count %s: %w", table, err)
	}
	var n int64
	if err := conn.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// listRows runs b and maps every row onto T by db tag
func listRows[T any](ctx context.Context, conn db.DBTX, b squirrel.SelectBuilder, what string) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s query: %w", what, err)
	}

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("entity", what).Msg("Error executing list query")
		return nil, fmt.Errorf("list %s: %w", what, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("collect %s: %w", what, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// insertRow runs an INSERT ... RETURNING and maps the single row onto T
func insertRow[T any](ctx context.Context, conn db.DBTX, b squirrel.InsertBuilder, what string) (*T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create %s query: %w", what, err)
	}

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("entity", what).Msg("Error executing insert")
		return nil, fmt.Errorf("create %s: %w", what, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		logger.Error().Err(err).Str("entity", what).Msg("Error executing insert")
		return nil, fmt.Errorf("create %s: %w", what, err)
	}
	return item, nil
}
