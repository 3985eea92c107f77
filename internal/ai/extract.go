// AngelaMos | 2026
// extract.go

package ai

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Model replies wrap JSON in prose, markdown fences, or both. These
// helpers pull a JSON span out of raw text and decode it, reporting
// success instead of returning an error: every caller has a typed
// fallback ready and must never propagate a parse failure.

var flatObjectPattern = regexp.MustCompile(`\{[^}]+\}`)

// decodeFirstObject decodes the first flat {...} span in text. A
// nested object cuts the span short at the inner closing brace, which
// then fails to decode. Only suitable for small flat shapes.
func decodeFirstObject(text string, v any) bool {
	match := flatObjectPattern.FindString(text)
	if match == "" {
		return false
	}
	return json.Unmarshal([]byte(match), v) == nil
}

// decodeObject decodes the widest {...} span, from the first opening
// brace to the last closing brace.
func decodeObject(text string, v any) bool {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return false
	}
	return json.Unmarshal([]byte(text[start:end+1]), v) == nil
}

// decodeArray decodes the widest [...] span.
func decodeArray(text string, v any) bool {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return false
	}
	return json.Unmarshal([]byte(text[start:end+1]), v) == nil
}
