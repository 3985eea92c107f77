// AngelaMos | 2026
// generator.go

package ai

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	defaultWordCountTarget  = 1500
	defaultKeywordCount     = 20
	defaultCompetitorCount  = 5
	seoContentSnippetLen    = 1000
	plagiarismContentLimit  = 2000
	metaTitleFallbackLen    = 60
	fallbackSEOScore        = 70
	fallbackReadability     = 75
	fallbackOriginality     = 80
	fallbackAIDetectionRisk = 30
)

// Generator turns model calls into typed results. Operations with a
// documented fallback never return an error; the two raw-text
// operations (article body, rewrite) do, since there is nothing
// sensible to degrade to.
type Generator struct {
	client ModelClient
}

func NewGenerator(client ModelClient) *Generator {
	return &Generator{client: client}
}

func (g *Generator) GenerateArticle(
	ctx context.Context,
	title string,
	keywords []string,
	tone string,
	wordCountTarget int,
	funMode bool,
) (*ArticleDraft, error) {
	if wordCountTarget <= 0 {
		wordCountTarget = defaultWordCountTarget
	}

	keywordLine := "Use relevant keywords based on the title"
	if len(keywords) > 0 {
		keywordLine = strings.Join(keywords, ", ")
	}

	funModeText := ""
	if funMode {
		funModeText = funModeAddendum
	}

	prompt := fmt.Sprintf(
		articlePromptTemplate,
		toneInstruction(tone),
		funModeText,
		title,
		keywordLine,
		wordCountTarget,
	)

	content, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate article: %w", err)
	}

	draft := &ArticleDraft{
		Content:   content,
		MetaTitle: truncate(title, metaTitleFallbackLen),
		MetaDescription: fmt.Sprintf(
			"Learn about %s. Expert insights and actionable tips.",
			title,
		),
		WordCount: len(strings.Fields(content)),
	}

	metaPrompt := fmt.Sprintf(
		metaPromptTemplate,
		title,
		strings.Join(keywords, ", "),
	)

	metaText, err := g.client.GenerateContent(ctx, metaPrompt)
	if err == nil {
		var meta struct {
			MetaTitle       string `json:"meta_title"`
			MetaDescription string `json:"meta_description"`
		}
		if decodeFirstObject(metaText, &meta) {
			if meta.MetaTitle != "" {
				draft.MetaTitle = meta.MetaTitle
			}
			if meta.MetaDescription != "" {
				draft.MetaDescription = meta.MetaDescription
			}
		}
	}

	return draft, nil
}

func (g *Generator) GenerateKeywords(
	ctx context.Context,
	seed string,
	count int,
) *KeywordResponse {
	if count <= 0 {
		count = defaultKeywordCount
	}

	resp := &KeywordResponse{
		SeedKeyword: seed,
		GeneratedAt: time.Now().UTC(),
	}

	prompt := fmt.Sprintf(keywordsPromptTemplate, count, seed)

	text, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		resp.Keywords = fallbackKeywords(seed)
		return resp
	}

	var items []struct {
		Keyword        string   `json:"keyword"`
		SearchVolume   int      `json:"search_volume"`
		Difficulty     int      `json:"difficulty"`
		RelevanceScore *float64 `json:"relevance_score"`
		IsLongTail     *bool    `json:"is_long_tail"`
	}
	if !decodeArray(text, &items) {
		resp.Keywords = fallbackKeywords(seed)
		return resp
	}

	if len(items) > count {
		items = items[:count]
	}

	results := make([]KeywordResult, 0, len(items))
	for _, item := range items {
		result := KeywordResult{
			Keyword:        item.Keyword,
			SearchVolume:   item.SearchVolume,
			Difficulty:     item.Difficulty,
			RelevanceScore: 0.5,
			IsLongTail:     len(strings.Fields(item.Keyword)) > 3,
		}
		if item.RelevanceScore != nil {
			result.RelevanceScore = *item.RelevanceScore
		}
		if item.IsLongTail != nil {
			result.IsLongTail = *item.IsLongTail
		}
		results = append(results, result)
	}

	resp.Keywords = results
	return resp
}

func fallbackKeywords(seed string) []KeywordResult {
	return []KeywordResult{
		{
			Keyword:        seed,
			SearchVolume:   1000,
			Difficulty:     50,
			RelevanceScore: 1.0,
		},
		{
			Keyword:        "best " + seed,
			SearchVolume:   800,
			Difficulty:     45,
			RelevanceScore: 0.9,
		},
		{
			Keyword:        "how to " + seed,
			SearchVolume:   600,
			Difficulty:     40,
			RelevanceScore: 0.85,
			IsLongTail:     true,
		},
	}
}

func (g *Generator) AnalyzeCompetitors(
	ctx context.Context,
	keyword string,
	count int,
) *CompetitorAnalysis {
	if count <= 0 {
		count = defaultCompetitorCount
	}

	analysis := &CompetitorAnalysis{
		Results:          []CompetitorResult{},
		SuggestedOutline: []string{},
		ContentGaps:      []string{},
	}

	prompt := fmt.Sprintf(competitorsPromptTemplate, keyword, count)

	text, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		return analysis
	}

	var parsed struct {
		Results          []CompetitorResult `json:"results"`
		SuggestedOutline []string           `json:"suggested_outline"`
		ContentGaps      []string           `json:"content_gaps"`
	}
	if !decodeObject(text, &parsed) {
		return analysis
	}

	if len(parsed.Results) > count {
		parsed.Results = parsed.Results[:count]
	}
	for i := range parsed.Results {
		if parsed.Results[i].Rank == 0 {
			parsed.Results[i].Rank = 1
		}
		if parsed.Results[i].Headings == nil {
			parsed.Results[i].Headings = []string{}
		}
		if parsed.Results[i].ContentGaps == nil {
			parsed.Results[i].ContentGaps = []string{}
		}
	}

	analysis.Results = parsed.Results
	if parsed.SuggestedOutline != nil {
		analysis.SuggestedOutline = parsed.SuggestedOutline
	}
	if parsed.ContentGaps != nil {
		analysis.ContentGaps = parsed.ContentGaps
	}

	return analysis
}

// AnalyzeSEO computes word count and keyword density locally before
// prompting; the model never overrides either.
func (g *Generator) AnalyzeSEO(
	ctx context.Context,
	content, targetKeyword string,
) *SEOReport {
	wordCount := len(strings.Fields(content))
	density := keywordDensity(content, targetKeyword)

	report := &SEOReport{
		Score:            fallbackSEOScore,
		KeywordDensity:   density,
		ReadabilityScore: fallbackReadability,
		Suggestions: []string{
			"Add target keyword to the first paragraph",
			"Include more H2 and H3 headings",
			"Add internal and external links",
			"Optimize meta description",
		},
		Issues: []SEOIssue{},
	}

	prompt := fmt.Sprintf(
		seoPromptTemplate,
		targetKeyword,
		wordCount,
		density,
		truncate(content, seoContentSnippetLen),
	)

	text, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		return report
	}

	parsed := struct {
		Score            int        `json:"score"`
		ReadabilityScore float64    `json:"readability_score"`
		Suggestions      []string   `json:"suggestions"`
		Issues           []SEOIssue `json:"issues"`
	}{
		Score:            fallbackSEOScore,
		ReadabilityScore: fallbackReadability,
	}
	if !decodeObject(text, &parsed) {
		return report
	}

	report.Score = parsed.Score
	report.ReadabilityScore = parsed.ReadabilityScore
	report.Suggestions = parsed.Suggestions
	report.Issues = parsed.Issues
	if report.Suggestions == nil {
		report.Suggestions = []string{}
	}
	if report.Issues == nil {
		report.Issues = []SEOIssue{}
	}

	return report
}

// keywordDensity is a case-insensitive literal substring count per 100
// words, not a word-boundary count. "cat" inside "catalog" counts.
func keywordDensity(content, keyword string) float64 {
	wordCount := len(strings.Fields(content))
	if wordCount == 0 || keyword == "" {
		return 0
	}

	occurrences := strings.Count(
		strings.ToLower(content),
		strings.ToLower(keyword),
	)

	return float64(occurrences) / float64(wordCount) * 100
}

func (g *Generator) RewriteContent(
	ctx context.Context,
	content, tone string,
	humanize bool,
	preserveKeywords []string,
) (*RewriteResponse, error) {
	tone = NormalizeTone(tone)

	humanizeText := ""
	if humanize {
		humanizeText = humanizeAddendum
	}

	preserveLine := "None specified"
	if len(preserveKeywords) > 0 {
		preserveLine = strings.Join(preserveKeywords, ", ")
	}

	prompt := fmt.Sprintf(
		rewritePromptTemplate,
		tone,
		humanizeText,
		preserveLine,
		content,
	)

	rewritten, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("rewrite content: %w", err)
	}

	changes := []string{fmt.Sprintf("Applied %s tone", tone)}
	if humanize {
		changes = append(changes, "Humanized")
	} else {
		changes = append(changes, "Standard rewrite")
	}
	if len(preserveKeywords) > 0 {
		changes = append(changes, fmt.Sprintf(
			"Preserved %d keywords", len(preserveKeywords),
		))
	} else {
		changes = append(changes, "No keywords specified")
	}

	return &RewriteResponse{
		OriginalContent:  content,
		RewrittenContent: rewritten,
		ChangesMade:      changes,
	}, nil
}

func (g *Generator) CheckPlagiarism(
	ctx context.Context,
	content string,
) *PlagiarismReport {
	fallback := &PlagiarismReport{
		AIDetectionRisk:  fallbackAIDetectionRisk,
		OriginalityScore: fallbackOriginality,
		FlaggedPatterns:  []string{},
		Suggestions:      []string{"Content appears natural"},
	}

	prompt := fmt.Sprintf(
		plagiarismPromptTemplate,
		truncate(content, plagiarismContentLimit),
	)

	text, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		return fallback
	}

	var report PlagiarismReport
	if !decodeObject(text, &report) {
		return fallback
	}

	if report.FlaggedPatterns == nil {
		report.FlaggedPatterns = []string{}
	}
	if report.Suggestions == nil {
		report.Suggestions = []string{}
	}

	return &report
}
