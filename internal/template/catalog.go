// AngelaMos | 2026
// catalog.go

package template

import "sort"

type Template struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	PromptTemplate string    `json:"prompt_template"`
	Structure      Structure `json:"structure"`
	IsPremium      bool      `json:"is_premium"`
}

type Structure struct {
	Sections []string `json:"sections"`
}

// Catalog is the static set of content templates. It is built once at
// startup and never mutated, so it is safe to share across requests.
type Catalog struct {
	templates  []Template
	byID       map[string]int
	categories []string
}

func NewCatalog() *Catalog {
	c := &Catalog{
		templates: builtinTemplates,
		byID:      make(map[string]int, len(builtinTemplates)),
	}

	seen := make(map[string]struct{})
	for i, t := range c.templates {
		c.byID[t.ID] = i
		if _, ok := seen[t.Category]; !ok {
			seen[t.Category] = struct{}{}
			c.categories = append(c.categories, t.Category)
		}
	}
	sort.Strings(c.categories)

	return c
}

func (c *Catalog) All() []Template {
	return c.templates
}

func (c *Catalog) ByID(id string) (*Template, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.templates[i], true
}

func (c *Catalog) ByCategory(category string) []Template {
	matches := []Template{}
	for _, t := range c.templates {
		if t.Category == category {
			matches = append(matches, t)
		}
	}
	return matches
}

func (c *Catalog) Categories() []string {
	return c.categories
}
