// AngelaMos | 2026
// dto.go

package calendar

import (
	"time"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Title       string     `json:"title"        validate:"required,max=500"`
	EventType   string     `json:"event_type"   validate:"required,max=50"`
	ScheduledAt time.Time  `json:"scheduled_at" validate:"required"`
	ArticleID   *uuid.UUID `json:"article_id"`
	Notes       string     `json:"notes"        validate:"max=2000"`
}

type ListEventsParams struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}
