// AngelaMos | 2026
// catalog_test.go

package template

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogByID(t *testing.T) {
	c := NewCatalog()

	tpl, ok := c.ByID("template-blog-how-to")
	require.True(t, ok)
	assert.Equal(t, "How-To Guide", tpl.Name)
	assert.Equal(t, "Blog Posts", tpl.Category)
	assert.False(t, tpl.IsPremium)
	assert.NotEmpty(t, tpl.Structure.Sections)

	_, ok = c.ByID("template-does-not-exist")
	assert.False(t, ok)
}

func TestCatalogCategoriesSortedAndUnique(t *testing.T) {
	c := NewCatalog()
	categories := c.Categories()

	require.NotEmpty(t, categories)
	assert.True(t, sort.StringsAreSorted(categories))

	seen := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		_, dup := seen[cat]
		assert.False(t, dup, "duplicate category %q", cat)
		seen[cat] = struct{}{}
	}

	assert.Contains(t, categories, "Blog Posts")
	assert.Contains(t, categories, "SEO")
}

func TestCatalogByCategory(t *testing.T) {
	c := NewCatalog()

	blog := c.ByCategory("Blog Posts")
	require.NotEmpty(t, blog)
	for _, tpl := range blog {
		assert.Equal(t, "Blog Posts", tpl.Category)
	}

	assert.Empty(t, c.ByCategory("Nonexistent"))
	assert.NotNil(t, c.ByCategory("Nonexistent"))
}

func TestCatalogAll(t *testing.T) {
	c := NewCatalog()
	all := c.All()

	assert.Len(t, all, 20)

	premium := 0
	for _, tpl := range all {
		assert.NotEmpty(t, tpl.ID)
		assert.NotEmpty(t, tpl.PromptTemplate)
		if tpl.IsPremium {
			premium++
		}
	}
	assert.Equal(t, 8, premium)
}
