// AngelaMos | 2026
// export.go

package article

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/c-jay69/hydraseo/internal/core"
)

// Export reformats an article for download. It never mutates the
// stored article; JSON export round-trips the stored fields exactly.
func Export(article *Article, format string) (*ExportResponse, error) {
	var content, extension string

	switch format {
	case FormatMarkdown, FormatPDF:
		// PDF rendering is not implemented; callers get markdown.
		content = fmt.Sprintf("# %s\n\n%s", article.Title, article.Content)
		extension = ".md"

	case FormatHTML:
		body := strings.ReplaceAll(article.Content, "\n\n", "</p><p>")
		body = strings.ReplaceAll(body, "\n", "<br>")
		content = fmt.Sprintf(
			"<!DOCTYPE html><html><head><title>%s</title></head>"+
				"<body><h1>%s</h1><p>%s</p></body></html>",
			article.Title,
			article.Title,
			body,
		)
		extension = ".html"

	case FormatJSON:
		payload := struct {
			Title           string   `json:"title"`
			Content         string   `json:"content"`
			MetaTitle       string   `json:"meta_title"`
			MetaDescription string   `json:"meta_description"`
			Keywords        Keywords `json:"keywords"`
			WordCount       int      `json:"word_count"`
		}{
			Title:           article.Title,
			Content:         article.Content,
			MetaTitle:       article.MetaTitle,
			MetaDescription: article.MetaDescription,
			Keywords:        article.Keywords,
			WordCount:       article.WordCount,
		}
		if payload.Keywords == nil {
			payload.Keywords = Keywords{}
		}

		encoded, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("export json: %w", err)
		}
		content = string(encoded)
		extension = ".json"

	default:
		return nil, core.ValidationError("unsupported export format: " + format)
	}

	return &ExportResponse{
		ArticleID: article.ID.String(),
		Format:    format,
		Content:   content,
		Filename:  exportFilename(article.Title, extension),
	}, nil
}

// Filenames are the lowercased title with spaces replaced by hyphens.
func exportFilename(title, extension string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-") + extension
}
