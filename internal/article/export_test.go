// AngelaMos | 2026
// export_test.go

package article

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-jay69/hydraseo/internal/core"
)

func sampleArticle() *Article {
	return &Article{
		ID:              uuid.New(),
		Title:           "My Great Article",
		Content:         "First paragraph.\n\nSecond paragraph.\nSame paragraph.",
		MetaTitle:       "My Great Article | Blog",
		MetaDescription: "A great article.",
		Keywords:        Keywords{"great", "article"},
		WordCount:       6,
	}
}

func TestExportMarkdown(t *testing.T) {
	a := sampleArticle()

	resp, err := Export(a, FormatMarkdown)
	require.NoError(t, err)

	assert.Equal(t, "# My Great Article\n\n"+a.Content, resp.Content)
	assert.Equal(t, "my-great-article.md", resp.Filename)
	assert.Equal(t, FormatMarkdown, resp.Format)
	assert.Equal(t, a.ID.String(), resp.ArticleID)
}

func TestExportPDFFallsBackToMarkdown(t *testing.T) {
	resp, err := Export(sampleArticle(), FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, FormatPDF, resp.Format)
	assert.Equal(t, "my-great-article.md", resp.Filename)
	assert.Contains(t, resp.Content, "# My Great Article")
}

func TestExportHTML(t *testing.T) {
	resp, err := Export(sampleArticle(), FormatHTML)
	require.NoError(t, err)

	assert.Equal(t, "my-great-article.html", resp.Filename)
	assert.Contains(t, resp.Content, "<h1>My Great Article</h1>")
	assert.Contains(t, resp.Content, "First paragraph.</p><p>Second paragraph.<br>Same paragraph.")
	assert.Contains(t, resp.Content, "<!DOCTYPE html>")
}

func TestExportJSON(t *testing.T) {
	a := sampleArticle()

	resp, err := Export(a, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "my-great-article.json", resp.Filename)

	var decoded struct {
		Title           string   `json:"title"`
		Content         string   `json:"content"`
		MetaTitle       string   `json:"meta_title"`
		MetaDescription string   `json:"meta_description"`
		Keywords        []string `json:"keywords"`
		WordCount       int      `json:"word_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp.Content), &decoded))

	assert.Equal(t, a.Title, decoded.Title)
	assert.Equal(t, a.Content, decoded.Content)
	assert.Equal(t, []string{"great", "article"}, decoded.Keywords)
	assert.Equal(t, 6, decoded.WordCount)
}

func TestExportJSONNilKeywords(t *testing.T) {
	a := sampleArticle()
	a.Keywords = nil

	resp, err := Export(a, FormatJSON)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Content), &decoded))
	assert.Equal(t, []any{}, decoded["keywords"])
}

func TestExportUnsupportedFormat(t *testing.T) {
	_, err := Export(sampleArticle(), "docx")
	require.Error(t, err)
	assert.True(t, core.IsAppError(err))
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("   \n\t "))
	assert.Equal(t, 3, CountWords("one  two\nthree"))
}

func TestKeywordsScan(t *testing.T) {
	var k Keywords
	require.NoError(t, k.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, Keywords{"a", "b"}, k)

	require.NoError(t, k.Scan(nil))
	assert.Equal(t, Keywords{}, k)

	require.NoError(t, k.Scan(`["c"]`))
	assert.Equal(t, Keywords{"c"}, k)

	assert.Error(t, k.Scan(42))
}
