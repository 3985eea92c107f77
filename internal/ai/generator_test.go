// AngelaMos | 2026
// generator_test.go

package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient replays a scripted sequence of replies, one per call. A
// nil entry in errs means the matching response is returned.
type fakeClient struct {
	responses []string
	errs      []error
	prompts   []string
}

func (f *fakeClient) GenerateContent(
	_ context.Context,
	prompt string,
) (string, error) {
	i := len(f.prompts)
	f.prompts = append(f.prompts, prompt)

	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", errors.New("unexpected model call")
}

func TestGenerateArticleWithMeta(t *testing.T) {
	client := &fakeClient{
		responses: []string{
			"An article about Go. It has eight words total here.",
			`{"meta_title": "Go Guide", "meta_description": "All about Go"}`,
		},
	}
	g := NewGenerator(client)

	draft, err := g.GenerateArticle(
		context.Background(), "Go Guide", []string{"golang"},
		ToneProfessional, 500, false,
	)
	require.NoError(t, err)

	assert.Equal(t, "Go Guide", draft.MetaTitle)
	assert.Equal(t, "All about Go", draft.MetaDescription)
	assert.Equal(t, 10, draft.WordCount)
	require.Len(t, client.prompts, 2)
	assert.Contains(t, client.prompts[0], "golang")
}

func TestGenerateArticleMetaFallback(t *testing.T) {
	title := "Very Long Title That Definitely Exceeds The Sixty Character Meta Limit"
	client := &fakeClient{
		responses: []string{"body content"},
		errs:      []error{nil, errors.New("quota exceeded")},
	}
	g := NewGenerator(client)

	draft, err := g.GenerateArticle(
		context.Background(), title, nil, "", 0, false,
	)
	require.NoError(t, err)

	assert.Equal(t, title[:60], draft.MetaTitle)
	assert.Equal(t,
		"Learn about "+title+". Expert insights and actionable tips.",
		draft.MetaDescription,
	)
}

func TestGenerateArticleBodyFailure(t *testing.T) {
	client := &fakeClient{errs: []error{errors.New("model unavailable")}}
	g := NewGenerator(client)

	draft, err := g.GenerateArticle(
		context.Background(), "Title", nil, "", 0, false,
	)
	require.Error(t, err)
	assert.Nil(t, draft)
}

func TestGenerateKeywordsDefaults(t *testing.T) {
	client := &fakeClient{
		responses: []string{`[
			{"keyword": "seo tips", "search_volume": 900, "difficulty": 30},
			{"keyword": "how to rank a new site fast",
			 "search_volume": 400, "difficulty": 20,
			 "relevance_score": 0.7, "is_long_tail": false}
		]`},
	}
	g := NewGenerator(client)

	resp := g.GenerateKeywords(context.Background(), "seo", 20)
	require.Len(t, resp.Keywords, 2)

	// Missing optional fields take computed defaults.
	assert.InDelta(t, 0.5, resp.Keywords[0].RelevanceScore, 1e-9)
	assert.False(t, resp.Keywords[0].IsLongTail)

	// Present fields win over the defaults.
	assert.InDelta(t, 0.7, resp.Keywords[1].RelevanceScore, 1e-9)
	assert.False(t, resp.Keywords[1].IsLongTail)
}

func TestGenerateKeywordsFallback(t *testing.T) {
	client := &fakeClient{errs: []error{errors.New("timeout")}}
	g := NewGenerator(client)

	resp := g.GenerateKeywords(context.Background(), "content marketing", 0)
	require.Len(t, resp.Keywords, 3)

	assert.Equal(t, "content marketing", resp.Keywords[0].Keyword)
	assert.Equal(t, 1000, resp.Keywords[0].SearchVolume)
	assert.Equal(t, "best content marketing", resp.Keywords[1].Keyword)
	assert.Equal(t, "how to content marketing", resp.Keywords[2].Keyword)
	assert.True(t, resp.Keywords[2].IsLongTail)
}

func TestGenerateKeywordsTruncatesToCount(t *testing.T) {
	client := &fakeClient{
		responses: []string{`[
			{"keyword": "a"}, {"keyword": "b"}, {"keyword": "c"}
		]`},
	}
	g := NewGenerator(client)

	resp := g.GenerateKeywords(context.Background(), "seed", 2)
	assert.Len(t, resp.Keywords, 2)
}

func TestAnalyzeCompetitorsFallback(t *testing.T) {
	client := &fakeClient{errs: []error{errors.New("down")}}
	g := NewGenerator(client)

	analysis := g.AnalyzeCompetitors(context.Background(), "seo tools", 10)
	assert.Empty(t, analysis.Results)
	assert.NotNil(t, analysis.Results)
	assert.NotNil(t, analysis.SuggestedOutline)
	assert.NotNil(t, analysis.ContentGaps)
}

func TestAnalyzeCompetitorsNormalizesResults(t *testing.T) {
	client := &fakeClient{
		responses: []string{`{
			"results": [{"url": "https://example.com", "title": "Example"}],
			"suggested_outline": ["Intro"],
			"content_gaps": ["Pricing"]
		}`},
	}
	g := NewGenerator(client)

	analysis := g.AnalyzeCompetitors(context.Background(), "seo", 5)
	require.Len(t, analysis.Results, 1)
	assert.Equal(t, 1, analysis.Results[0].Rank)
	assert.NotNil(t, analysis.Results[0].Headings)
	assert.NotNil(t, analysis.Results[0].ContentGaps)
	assert.Equal(t, []string{"Intro"}, analysis.SuggestedOutline)
}

func TestAnalyzeSEOFallback(t *testing.T) {
	client := &fakeClient{errs: []error{errors.New("down")}}
	g := NewGenerator(client)

	report := g.AnalyzeSEO(
		context.Background(),
		"golang is great and golang is fast",
		"golang",
	)
	assert.Equal(t, 70, report.Score)
	assert.InDelta(t, 75.0, report.ReadabilityScore, 1e-9)
	assert.Len(t, report.Suggestions, 4)

	// 2 occurrences over 7 words.
	assert.InDelta(t, 2.0/7.0*100, report.KeywordDensity, 1e-9)
}

func TestAnalyzeSEOPartialResponseKeepsDefaults(t *testing.T) {
	client := &fakeClient{responses: []string{`{"score": 88}`}}
	g := NewGenerator(client)

	report := g.AnalyzeSEO(context.Background(), "some content here", "content")
	assert.Equal(t, 88, report.Score)
	assert.InDelta(t, 75.0, report.ReadabilityScore, 1e-9)
	assert.NotNil(t, report.Suggestions)
	assert.NotNil(t, report.Issues)
}

func TestAnalyzeSEOModelCannotOverrideDensity(t *testing.T) {
	client := &fakeClient{
		responses: []string{`{"score": 90, "keyword_density": 99.9}`},
	}
	g := NewGenerator(client)

	report := g.AnalyzeSEO(context.Background(), "one two three", "one")
	assert.InDelta(t, 1.0/3.0*100, report.KeywordDensity, 1e-9)
}

func TestKeywordDensity(t *testing.T) {
	// Substring count: "cat" matches inside "catalog".
	assert.InDelta(t, 2.0/2.0*100, keywordDensity("catalog cat", "cat"), 1e-9)
	assert.Zero(t, keywordDensity("", "cat"))
	assert.Zero(t, keywordDensity("some words", ""))
	assert.InDelta(t, 50.0, keywordDensity("Go go gadget mixer", "go"), 1e-9)
}

func TestRewriteContentChanges(t *testing.T) {
	client := &fakeClient{responses: []string{"rewritten text"}}
	g := NewGenerator(client)

	resp, err := g.RewriteContent(
		context.Background(), "original text", ToneCasual, true,
		[]string{"seo", "golang"},
	)
	require.NoError(t, err)

	assert.Equal(t, "original text", resp.OriginalContent)
	assert.Equal(t, "rewritten text", resp.RewrittenContent)
	assert.Equal(t, []string{
		"Applied casual tone",
		"Humanized",
		"Preserved 2 keywords",
	}, resp.ChangesMade)
}

func TestRewriteContentNoKeywords(t *testing.T) {
	client := &fakeClient{responses: []string{"rewritten"}}
	g := NewGenerator(client)

	resp, err := g.RewriteContent(
		context.Background(), "text", "not-a-tone", false, nil,
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Applied professional tone",
		"Standard rewrite",
		"No keywords specified",
	}, resp.ChangesMade)
}

func TestRewriteContentError(t *testing.T) {
	client := &fakeClient{errs: []error{errors.New("down")}}
	g := NewGenerator(client)

	_, err := g.RewriteContent(context.Background(), "text", "", false, nil)
	assert.Error(t, err)
}

func TestCheckPlagiarismFallback(t *testing.T) {
	client := &fakeClient{responses: []string{"not json at all"}}
	g := NewGenerator(client)

	report := g.CheckPlagiarism(context.Background(), "article content")
	assert.Equal(t, 30, report.AIDetectionRisk)
	assert.Equal(t, 80, report.OriginalityScore)
	assert.Equal(t, []string{"Content appears natural"}, report.Suggestions)
	assert.Empty(t, report.FlaggedPatterns)
}

func TestNormalizeTone(t *testing.T) {
	assert.Equal(t, ToneProfessional, NormalizeTone(""))
	assert.Equal(t, ToneProfessional, NormalizeTone("sarcastic"))
	assert.Equal(t, ToneViral, NormalizeTone("viral"))
}
