// AngelaMos | 2026
// repository.go

package calendar

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/c-jay69/hydraseo/internal/core"
)

const maxEventsPerQuery = 100

type Repository interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context, params ListEventsParams) ([]Event, error)
	DeleteByOwner(ctx context.Context, id, userID uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, event *Event) error {
	query := `
		INSERT INTO calendar_events (
			id, user_id, article_id, title, event_type, scheduled_at, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &event.CreatedAt, query,
		event.ID, event.UserID, event.ArticleID, event.Title,
		event.EventType, event.ScheduledAt, event.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert calendar event: %w", err)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListEventsParams,
) ([]Event, error) {
	conditions := []string{"user_id = $1"}
	args := []any{params.UserID}

	if params.StartDate != nil {
		args = append(args, *params.StartDate)
		conditions = append(conditions,
			fmt.Sprintf("scheduled_at >= $%d", len(args)))
	}

	if params.EndDate != nil {
		args = append(args, *params.EndDate)
		conditions = append(conditions,
			fmt.Sprintf("scheduled_at <= $%d", len(args)))
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, article_id, title, event_type,
		       scheduled_at, notes, created_at
		FROM calendar_events
		WHERE %s
		ORDER BY scheduled_at ASC
		LIMIT %d`,
		strings.Join(conditions, " AND "), maxEventsPerQuery)

	var events []Event
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}

	return events, nil
}

func (r *repository) DeleteByOwner(
	ctx context.Context,
	id, userID uuid.UUID,
) error {
	query := `DELETE FROM calendar_events WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete calendar event: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete calendar event rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete calendar event: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM calendar_events WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("delete calendar events for user: %w", err)
	}

	return nil
}
