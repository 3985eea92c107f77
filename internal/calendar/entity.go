// AngelaMos | 2026
// entity.go

package calendar

import (
	"time"

	"github.com/google/uuid"
)

// Common event types. The field is a free-form tag, so clients may
// send values beyond these.
const (
	EventTypePublish  = "publish"
	EventTypeReview   = "review"
	EventTypeDeadline = "deadline"
)

type Event struct {
	ID          uuid.UUID  `db:"id"           json:"id"`
	UserID      uuid.UUID  `db:"user_id"      json:"user_id"`
	ArticleID   *uuid.UUID `db:"article_id"   json:"article_id,omitempty"`
	Title       string     `db:"title"        json:"title"`
	EventType   string     `db:"event_type"   json:"event_type"`
	ScheduledAt time.Time  `db:"scheduled_at" json:"scheduled_at"`
	Notes       string     `db:"notes"        json:"notes"`
	CreatedAt   time.Time  `db:"created_at"   json:"created_at"`
}
