// AngelaMos | 2026
// extract_test.go

package ai

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFirstObject(t *testing.T) {
	var meta struct {
		MetaTitle       string `json:"meta_title"`
		MetaDescription string `json:"meta_description"`
	}

	text := "Here is your JSON:\n```json\n" +
		`{"meta_title": "Go Basics", "meta_description": "Learn Go"}` +
		"\n```\nEnjoy!"
	require.True(t, decodeFirstObject(text, &meta))
	assert.Equal(t, "Go Basics", meta.MetaTitle)
	assert.Equal(t, "Learn Go", meta.MetaDescription)
}

func TestDecodeFirstObjectNested(t *testing.T) {
	// The flat pattern stops at the first closing brace, so a nested
	// object produces an undecodable span.
	var v map[string]any
	text := `{"outer": {"inner": 1}}`
	assert.False(t, decodeFirstObject(text, &v))
}

func TestDecodeFirstObjectNoJSON(t *testing.T) {
	var v map[string]any
	assert.False(t, decodeFirstObject("no json here", &v))
}

func TestDecodeObjectGreedySpan(t *testing.T) {
	var parsed struct {
		Score  int `json:"score"`
		Nested struct {
			Depth int `json:"depth"`
		} `json:"nested"`
	}

	text := "prefix {\"score\": 85, \"nested\": {\"depth\": 2}} suffix"
	require.True(t, decodeObject(text, &parsed))
	assert.Equal(t, 85, parsed.Score)
	assert.Equal(t, 2, parsed.Nested.Depth)
}

func TestDecodeObjectMalformed(t *testing.T) {
	var v map[string]any
	assert.False(t, decodeObject("{ not json }", &v))
	assert.False(t, decodeObject("}{", &v))
	assert.False(t, decodeObject("", &v))
}

func TestDecodeArray(t *testing.T) {
	var items []struct {
		Keyword string `json:"keyword"`
	}

	text := "Sure, here you go:\n[{\"keyword\": \"seo\"}, {\"keyword\": \"go\"}]"
	require.True(t, decodeArray(text, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "seo", items[0].Keyword)

	var empty []int
	assert.False(t, decodeArray("no array", &empty))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 60))
	assert.Equal(t, "abc", truncate("abcdef", 3))
}

func TestTruncateMultibyte(t *testing.T) {
	title := strings.Repeat("日本語のSEO記事", 12)

	got := truncate(title, 60)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 60, utf8.RuneCountInString(got))
	assert.True(t, strings.HasPrefix(title, got))
}
