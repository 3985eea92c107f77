// AngelaMos | 2026
// entity.go

package article

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft      = "draft"
	StatusGenerating = "generating"
	StatusPublished  = "published"
	StatusScheduled  = "scheduled"
	StatusArchived   = "archived"
)

var validStatuses = map[string]struct{}{
	StatusDraft:      {},
	StatusGenerating: {},
	StatusPublished:  {},
	StatusScheduled:  {},
	StatusArchived:   {},
}

func ValidStatus(status string) bool {
	_, ok := validStatuses[status]
	return ok
}

// Keywords is a []string stored as a JSONB column.
type Keywords []string

func (k Keywords) Value() (driver.Value, error) {
	if k == nil {
		k = Keywords{}
	}
	return json.Marshal(k)
}

func (k *Keywords) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*k = Keywords{}
		return nil
	case []byte:
		return json.Unmarshal(v, k)
	case string:
		return json.Unmarshal([]byte(v), k)
	default:
		return fmt.Errorf("keywords: unsupported scan type %T", src)
	}
}

type Article struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	UserID          uuid.UUID  `db:"user_id" json:"user_id"`
	Title           string     `db:"title" json:"title"`
	Content         string     `db:"content" json:"content"`
	MetaTitle       string     `db:"meta_title" json:"meta_title"`
	MetaDescription string     `db:"meta_description" json:"meta_description"`
	Keywords        Keywords   `db:"keywords" json:"keywords"`
	Status          string     `db:"status" json:"status"`
	Tone            string     `db:"tone" json:"tone"`
	Language        string     `db:"language" json:"language"`
	WordCount       int        `db:"word_count" json:"word_count"`
	SEOScore        int        `db:"seo_score" json:"seo_score"`
	PlagiarismScore *float64   `db:"plagiarism_score" json:"plagiarism_score"`
	TemplateID      *string    `db:"template_id" json:"template_id"`
	ScheduledAt     *time.Time `db:"scheduled_at" json:"scheduled_at"`
	PublishedAt     *time.Time `db:"published_at" json:"published_at"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// CountWords is the canonical word count for stored content: the
// number of whitespace-separated tokens, 0 for empty content.
func CountWords(content string) int {
	return len(strings.Fields(content))
}
