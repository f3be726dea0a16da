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

var eventColumnNames = []string{
	"id", "title", "description", "organizer", "date", "location", "link",
	"COALESCE({a}tags, '{}') AS tags", "created_by", "created_at",
}

func eventColumns(alias string) []string {
	return qualify(alias, eventColumnNames...)
}

func eventDest(e *models.Event) []any {
	return []any{
		&e.ID, &e.Title, &e.Description, &e.Organizer, &e.Date, &e.Location, &e.Link,
		&e.Tags, &e.CreatedBy, &e.CreatedAt,
	}
}

// EventRepository handles database operations for events
type EventRepository struct {
	DB db.DBTX
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(conn db.DBTX) *EventRepository {
	return &EventRepository{DB: conn}
}

// eventPredicates: upcoming=false is the same as no upcoming filter
func eventPredicates(f dto.EventFilter) []squirrel.Sqlizer {
	var preds []squirrel.Sqlizer
	if len(f.Tags) > 0 {
		preds = append(preds, overlaps("e.tags", f.Tags))
	}
	if f.Upcoming != nil && *f.Upcoming {
		preds = append(preds, squirrel.Expr("e.date >= now()"))
	}
	return preds
}

func eventListQuery(f dto.EventFilter) squirrel.SelectBuilder {
	b := psql.Select(append(eventColumns("e"), userColumns("u")...)...).
		From("events e").
		Join("users u ON u.id = e.created_by").
		OrderBy("e.date ASC", "e.id ASC")
	return where(b, eventPredicates(f))
}

// ListEvents returns events with their creator, soonest first
func (r *EventRepository) ListEvents(ctx context.Context, f dto.EventFilter) ([]models.Event, error) {
	query, args, err := eventListQuery(f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events query: %w", err)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list events query")
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var e models.Event
		creator, err := scanJoinedUser(rows, eventDest(&e))
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Creator = creator
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

// CreateEvent inserts e and returns the stored row
func (r *EventRepository) CreateEvent(ctx context.Context, e *models.Event) (*models.Event, error) {
	query, args, err := psql.Insert("events").
		Columns("id", "title", "description", "organizer", "date", "location", "link", "tags", "created_by").
		Values(e.ID, e.Title, e.Description, e.Organizer, e.Date, e.Location, e.Link, e.Tags, e.CreatedBy).
		Suffix("RETURNING " + strings.Join(eventColumns(""), ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create event query: %w", err)
	}

	var created models.Event
	if err := r.DB.QueryRow(ctx, query, args...).Scan(eventDest(&created)...); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrReferencedUserMissing
		}
		logger.Error().Err(err).Str("createdBy", e.CreatedBy).Msg("Error creating event")
		return nil, fmt.Errorf("create event: %w", err)
	}
	return &created, nil
}
