// Package catalog holds the static passage database and filtered lookups.
package catalog

import (
	"fmt"
	"strings"

	"github.com/quotype/quotype/internal/model"
)

// Catalog is an immutable collection of typing passages. Filter methods
// return views; the underlying list is never mutated.
type Catalog struct {
	quotes []model.Quote
}

// New returns the built-in catalog.
func New() *Catalog {
	return &Catalog{quotes: builtinQuotes}
}

// NewFromQuotes builds a catalog from the given passages. Every difficulty
// level must be represented; selection logic has no fallback below the full
// catalog otherwise.
func NewFromQuotes(quotes []model.Quote) (*Catalog, error) {
	if len(quotes) == 0 {
		return nil, fmt.Errorf("catalog must not be empty")
	}
	seen := map[model.Difficulty]bool{}
	for i, q := range quotes {
		if strings.TrimSpace(q.Text) == "" {
			return nil, fmt.Errorf("quote %d has empty text", i)
		}
		if _, ok := model.ParseDifficulty(string(q.Difficulty)); !ok {
			return nil, fmt.Errorf("quote %d has unknown difficulty %q", i, q.Difficulty)
		}
		seen[q.Difficulty] = true
	}
	for _, d := range model.Difficulties() {
		if !seen[d] {
			return nil, fmt.Errorf("catalog has no %s quotes", d)
		}
	}
	owned := make([]model.Quote, len(quotes))
	copy(owned, quotes)
	return &Catalog{quotes: owned}, nil
}

// Len returns the number of passages.
func (c *Catalog) Len() int {
	return len(c.quotes)
}

// All returns a copy of every passage.
func (c *Catalog) All() []model.Quote {
	out := make([]model.Quote, len(c.quotes))
	copy(out, c.quotes)
	return out
}

// ByDifficulty returns passages matching the level, case-insensitively.
func (c *Catalog) ByDifficulty(level model.Difficulty) []model.Quote {
	want := strings.ToLower(string(level))
	var out []model.Quote
	for _, q := range c.quotes {
		if strings.ToLower(string(q.Difficulty)) == want {
			out = append(out, q)
		}
	}
	return out
}

// ByCategory returns passages with the given category, case-insensitively.
func (c *Catalog) ByCategory(category string) []model.Quote {
	want := strings.ToLower(category)
	var out []model.Quote
	for _, q := range c.quotes {
		if strings.ToLower(q.Category) == want {
			out = append(out, q)
		}
	}
	return out
}

// ByAuthor returns passages whose author contains the given substring,
// case-insensitively.
func (c *Catalog) ByAuthor(author string) []model.Quote {
	want := strings.ToLower(author)
	var out []model.Quote
	for _, q := range c.quotes {
		if strings.Contains(strings.ToLower(q.Author), want) {
			out = append(out, q)
		}
	}
	return out
}

// Authors returns the distinct authors in catalog order.
func (c *Catalog) Authors() []string {
	return c.distinct(func(q model.Quote) string { return q.Author })
}

// Categories returns the distinct categories in catalog order.
func (c *Catalog) Categories() []string {
	return c.distinct(func(q model.Quote) string { return q.Category })
}

// CountByDifficulty returns passage counts per difficulty level.
func (c *Catalog) CountByDifficulty() map[model.Difficulty]int {
	counts := map[model.Difficulty]int{}
	for _, q := range c.quotes {
		counts[q.Difficulty]++
	}
	return counts
}

// CountByCategory returns passage counts per category.
func (c *Catalog) CountByCategory() map[string]int {
	counts := map[string]int{}
	for _, q := range c.quotes {
		counts[q.Category]++
	}
	return counts
}

func (c *Catalog) distinct(key func(model.Quote) string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, q := range c.quotes {
		k := key(q)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
