// AngelaMos | 2026
// dto.go

package ai

import "time"

type KeywordRequest struct {
	SeedKeyword string `json:"seed_keyword" validate:"required,min=1,max=200"`
	Language    string `json:"language"`
	Count       int    `json:"count" validate:"omitempty,min=1,max=50"`
}

type KeywordResult struct {
	Keyword        string  `json:"keyword"`
	SearchVolume   int     `json:"search_volume"`
	Difficulty     int     `json:"difficulty"`
	RelevanceScore float64 `json:"relevance_score"`
	IsLongTail     bool    `json:"is_long_tail"`
}

type KeywordResponse struct {
	SeedKeyword string          `json:"seed_keyword"`
	Keywords    []KeywordResult `json:"keywords"`
	GeneratedAt time.Time       `json:"generated_at"`
}

type CompetitorRequest struct {
	Keyword string `json:"keyword" validate:"required,min=1,max=200"`
	Count   int    `json:"count" validate:"omitempty,min=1,max=20"`
}

type CompetitorResult struct {
	Rank        int      `json:"rank"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	WordCount   int      `json:"word_count"`
	Headings    []string `json:"headings"`
	ContentGaps []string `json:"content_gaps"`
}

type CompetitorAnalysis struct {
	Results          []CompetitorResult `json:"results"`
	SuggestedOutline []string           `json:"suggested_outline"`
	ContentGaps      []string           `json:"content_gaps"`
}

type CompetitorResponse struct {
	Keyword string `json:"keyword"`
	CompetitorAnalysis
}

type SEOAnalysisRequest struct {
	Content       string `json:"content" validate:"required"`
	TargetKeyword string `json:"target_keyword" validate:"required"`
}

type SEOIssue struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type SEOReport struct {
	Score            int        `json:"score"`
	KeywordDensity   float64    `json:"keyword_density"`
	ReadabilityScore float64    `json:"readability_score"`
	Suggestions      []string   `json:"suggestions"`
	Issues           []SEOIssue `json:"issues"`
}

type RewriteRequest struct {
	Content          string   `json:"content" validate:"required"`
	Tone             string   `json:"tone" validate:"omitempty,oneof=professional casual friendly authoritative fun viral"`
	Humanize         bool     `json:"humanize"`
	PreserveKeywords []string `json:"preserve_keywords"`
}

type RewriteResponse struct {
	OriginalContent  string   `json:"original_content"`
	RewrittenContent string   `json:"rewritten_content"`
	ChangesMade      []string `json:"changes_made"`
}

type PlagiarismRequest struct {
	Content string `json:"content" validate:"required"`
}

type PlagiarismReport struct {
	AIDetectionRisk  int      `json:"ai_detection_risk"`
	OriginalityScore int      `json:"originality_score"`
	FlaggedPatterns  []string `json:"flagged_patterns"`
	Suggestions      []string `json:"suggestions"`
}

// ArticleDraft is the combined result of the two generation calls:
// the article body and its meta tags.
type ArticleDraft struct {
	Content         string `json:"content"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	WordCount       int    `json:"word_count"`
}
