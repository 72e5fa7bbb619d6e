// Package catalog provides read-only reference lookups over seed data.
package catalog

import (
	"strings"

	"github.com/wellness-hub/wellness/internal/entities"
	"github.com/wellness-hub/wellness/internal/seed"
)

// MaxRelatedLessons caps RelatedLessons.
const MaxRelatedLessons = 3

// Catalog is immutable after New and safe for concurrent use.
type Catalog struct {
	categories     []entities.Category
	categoryByID   map[string]int
	articles       []entities.Article
	recommendation entities.Recommendation
	moods          []entities.Mood
	icons          []entities.IconOption
	iconBg         map[string]string
	defaultIconBg  string
	taskCategories []string
	tagStyles      []entities.Style
	statusStyles   []entities.Style
}

// New builds a catalog from seed reference data.
func New(s *seed.Seed) *Catalog {
	c := &Catalog{
		categories:     append([]entities.Category(nil), s.Categories...),
		categoryByID:   make(map[string]int, len(s.Categories)),
		articles:       append([]entities.Article(nil), s.Articles...),
		recommendation: s.Recommendation,
		moods:          append([]entities.Mood(nil), s.Moods...),
		icons:          append([]entities.IconOption(nil), s.Icons...),
		iconBg:         make(map[string]string, len(s.Icons)),
		defaultIconBg:  s.DefaultIconBg,
		taskCategories: append([]string(nil), s.TaskCategories...),
		tagStyles:      append([]entities.Style(nil), s.TagStyles...),
		statusStyles:   append([]entities.Style(nil), s.StatusStyles...),
	}

	for i, v := range c.categories {
		c.categoryByID[v.ID] = i
	}
	for _, v := range c.icons {
		if _, ok := c.iconBg[v.Icon]; !ok {
			c.iconBg[v.Icon] = v.Bg
		}
	}

	return c
}

// GetCategory ...
func (c *Catalog) GetCategory(id string) (entities.Category, bool) {
	i, ok := c.categoryByID[id]
	if !ok {
		return entities.Category{}, false
	}

	return c.categories[i], true
}

// ListCategories returns categories whose title contains query, case-insensitively.
// Empty query returns all of them.
func (c *Catalog) ListCategories(query string) []entities.Category {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]entities.Category, 0, len(c.categories))
	for _, v := range c.categories {
		if q == "" || strings.Contains(strings.ToLower(v.Title), q) {
			out = append(out, v)
		}
	}

	return out
}

// ListArticles returns articles tagged with categoryID. Empty categoryID returns all of them.
func (c *Catalog) ListArticles(categoryID string) []entities.Article {
	out := make([]entities.Article, 0, len(c.articles))
	for _, v := range c.articles {
		if categoryID == "" || v.Tag == categoryID {
			out = append(out, v)
		}
	}

	return out
}

// RelatedLessons selects up to MaxRelatedLessons lessons belonging to categoryID, in order.
// A lesson without a category id is matched by its normalized category label.
func (c *Catalog) RelatedLessons(categoryID string, lessons []entities.Lesson) []entities.Lesson {
	out := make([]entities.Lesson, 0, MaxRelatedLessons)
	for _, v := range lessons {
		if len(out) == MaxRelatedLessons {
			break
		}

		id := v.CategoryID
		if id == "" {
			id = NormalizeLabel(v.Category)
		}
		if id == categoryID {
			out = append(out, v)
		}
	}

	return out
}

// NormalizeLabel turns a category label into an id: "Sleep & Fertility" -> "sleep-fertility".
func NormalizeLabel(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.ReplaceAll(s, " & ", "-")
	return strings.ReplaceAll(s, " ", "-")
}

// Recommendation returns the daily recommendation.
func (c *Catalog) Recommendation() entities.Recommendation {
	return c.recommendation
}

// Moods ...
func (c *Catalog) Moods() []entities.Mood {
	return append([]entities.Mood(nil), c.moods...)
}

// Icons lists task icon options in display order.
func (c *Catalog) Icons() []entities.IconOption {
	return append([]entities.IconOption(nil), c.icons...)
}

// IconBackground returns the background color of icon, or the default one for unknown icons.
func (c *Catalog) IconBackground(icon string) string {
	if v, ok := c.iconBg[icon]; ok {
		return v
	}

	return c.defaultIconBg
}

// DefaultIcon returns the first configured icon.
func (c *Catalog) DefaultIcon() string {
	if len(c.icons) == 0 {
		return ""
	}

	return c.icons[0].Icon
}

// TaskCategories ...
func (c *Catalog) TaskCategories() []string {
	return append([]string(nil), c.taskCategories...)
}

// DefaultTaskCategory returns the first configured task category.
func (c *Catalog) DefaultTaskCategory() string {
	if len(c.taskCategories) == 0 {
		return ""
	}

	return c.taskCategories[0]
}

// TagColors returns filter chip styles keyed by tag.
func (c *Catalog) TagColors() []entities.Style {
	return append([]entities.Style(nil), c.tagStyles...)
}

// StatusStyles returns lesson status styles.
func (c *Catalog) StatusStyles() []entities.Style {
	return append([]entities.Style(nil), c.statusStyles...)
}

// StatusStyle ...
func (c *Catalog) StatusStyle(status entities.LessonStatus) (entities.Style, bool) {
	for _, v := range c.statusStyles {
		if v.Key == string(status) {
			return v, true
		}
	}

	return entities.Style{}, false
}
