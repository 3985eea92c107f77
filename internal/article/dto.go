// AngelaMos | 2026
// dto.go

package article

import (
	"time"

	"github.com/google/uuid"
)

type CreateArticleRequest struct {
	Title           string   `json:"title" validate:"required,min=1,max=300"`
	Keywords        []string `json:"keywords" validate:"max=20"`
	Tone            string   `json:"tone" validate:"omitempty,oneof=professional casual friendly authoritative fun viral"`
	Language        string   `json:"language" validate:"omitempty,max=10"`
	WordCountTarget int      `json:"word_count_target" validate:"omitempty,min=100,max=10000"`
	TemplateID      string   `json:"template_id" validate:"omitempty,max=100"`
	IncludeImages   bool     `json:"include_images"`
	FunMode         bool     `json:"fun_mode"`
}

type UpdateArticleRequest struct {
	Title           *string    `json:"title" validate:"omitempty,min=1,max=300"`
	Content         *string    `json:"content"`
	MetaTitle       *string    `json:"meta_title" validate:"omitempty,max=300"`
	MetaDescription *string    `json:"meta_description" validate:"omitempty,max=500"`
	Keywords        *[]string  `json:"keywords" validate:"omitempty,max=20"`
	Status          *string    `json:"status" validate:"omitempty,oneof=draft generating published scheduled archived"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
}

type ListArticlesParams struct {
	UserID *uuid.UUID
	Status string
	Search string
	Skip   int
	Limit  int
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

func (p *ListArticlesParams) Normalize() {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit < 1 {
		p.Limit = defaultListLimit
	}
	if p.Limit > maxListLimit {
		p.Limit = maxListLimit
	}
}

const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatJSON     = "json"
	FormatPDF      = "pdf"
)

type ExportRequest struct {
	Format string `json:"format" validate:"required,oneof=markdown html json pdf"`
}

type ExportResponse struct {
	ArticleID string `json:"article_id"`
	Format    string `json:"format"`
	Content   string `json:"content"`
	Filename  string `json:"filename"`
}

// StatusCount is one bucket of the per-status aggregation.
type StatusCount struct {
	Status string `db:"status" json:"status"`
	Count  int    `db:"count" json:"count"`
}

// DailyCount is one day of article creation volume.
type DailyCount struct {
	Day   time.Time `db:"day" json:"day"`
	Count int       `db:"count" json:"count"`
}

// Totals aggregates a user's article numbers for analytics.
type Totals struct {
	TotalArticles int     `db:"total_articles"`
	TotalWords    int     `db:"total_words"`
	AvgSEOScore   float64 `db:"avg_seo_score"`
}
