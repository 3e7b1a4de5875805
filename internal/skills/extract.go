// Package skills recognizes domain skills in free text using a fixed,
// categorized vocabulary.
package skills

import (
	"fmt"
	"regexp"
	"strings"
)

// Extractor matches text against compiled category patterns. It holds no
// mutable state and is safe for concurrent use.
type Extractor struct {
	patterns []*regexp.Regexp
}

var defaultExtractor = MustNewExtractor(vocabulary)

// NewExtractor compiles one pattern per category, keeping category order.
func NewExtractor(categories []Category) (*Extractor, error) {
	patterns := make([]*regexp.Regexp, 0, len(categories))
	for _, c := range categories {
		if len(c.Terms) == 0 {
			continue
		}
		re, err := c.compile()
		if err != nil {
			return nil, fmt.Errorf("failed to compile skill pattern for category %q: %w", c.Name, err)
		}
		patterns = append(patterns, re)
	}
	return &Extractor{patterns: patterns}, nil
}

// MustNewExtractor is like NewExtractor but panics on an invalid table.
func MustNewExtractor(categories []Category) *Extractor {
	e, err := NewExtractor(categories)
	if err != nil {
		panic(err)
	}
	return e
}

// Default returns the extractor built from the built-in vocabulary.
func Default() *Extractor {
	return defaultExtractor
}

// Extract returns every skill mentioned in text, lower-cased and
// deduplicated, in the order categories are evaluated and then in text order.
func (e *Extractor) Extract(text string) *Set {
	found := NewSet()
	if text == "" {
		return found
	}
	for _, re := range e.patterns {
		for _, match := range re.FindAllString(text, -1) {
			found.Add(strings.ToLower(match))
		}
	}
	return found
}

// ExtractSkills runs the default extractor and returns the skills as a slice.
func ExtractSkills(text string) []string {
	return defaultExtractor.Extract(text).Values()
}
