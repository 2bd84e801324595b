package taxonomy

import (
	"regexp"
	"strings"
)

// ExtractedSkills maps every taxonomy category to the terms found in one
// text. Categories with no matches are present with an empty slice.
type ExtractedSkills map[string][]string

// All returns the found terms across all categories, deduplicated.
func (e ExtractedSkills) All() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, terms := range e {
		for _, term := range terms {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			out = append(out, term)
		}
	}
	return out
}

// Extractor matches taxonomy terms against free text using whole-word,
// case-insensitive matching. Patterns are compiled once at construction; an
// Extractor is read-only afterwards and safe for concurrent use.
type Extractor struct {
	taxonomy *Taxonomy
	patterns map[string][]termPattern
}

type termPattern struct {
	term string
	re   *regexp.Regexp
}

// NewExtractor compiles whole-word patterns for every term in the taxonomy.
func NewExtractor(t *Taxonomy) *Extractor {
	e := &Extractor{
		taxonomy: t,
		patterns: make(map[string][]termPattern, len(t.categories)),
	}
	for category, terms := range t.categories {
		compiled := make([]termPattern, 0, len(terms))
		for _, term := range terms {
			compiled = append(compiled, termPattern{term: term, re: wholeWordPattern(term)})
		}
		e.patterns[category] = compiled
	}
	return e
}

// Taxonomy returns the taxonomy this extractor was built from.
func (e *Extractor) Taxonomy() *Taxonomy {
	return e.taxonomy
}

// Extract scans text and returns the found terms per category. Every
// taxonomy category is present in the result, empty when nothing matched.
// Matching is token-bounded: "java" does not match "javascript", and
// multi-word terms match as contiguous phrases.
func (e *Extractor) Extract(text string) ExtractedSkills {
	lower := strings.ToLower(text)
	found := make(ExtractedSkills, len(e.patterns))
	for category, patterns := range e.patterns {
		matches := []string{}
		for _, p := range patterns {
			if p.re.MatchString(lower) {
				matches = append(matches, p.term)
			}
		}
		found[category] = matches
	}
	return found
}

// wholeWordPattern builds a token-boundary pattern for a term. Plain \b does
// not work for terms ending in symbols ("c++", "c#"), so boundaries are
// expressed as non-alphanumeric neighbors explicitly.
func wholeWordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^a-z0-9])` + regexp.QuoteMeta(term) + `(?:$|[^a-z0-9])`)
}
