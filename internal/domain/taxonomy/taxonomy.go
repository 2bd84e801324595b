// Package taxonomy holds the curated skill vocabulary and the lookup-based
// skill extractor that runs against it.
//
// The taxonomy is immutable once constructed: category names map to ordered
// lists of canonical, lower-cased terms. Construction copies all input so a
// Taxonomy can be shared across concurrent analyses without locking.
package taxonomy

import (
	"sort"
	"strings"

	"github.com/resumatch/resumatch/internal/domain/model"
)

// Taxonomy maps skill categories to canonical terms and importance levels.
type Taxonomy struct {
	categories map[string][]string
	importance map[string]model.Importance
}

// New builds a Taxonomy from configuration data. Terms are lower-cased and
// deduplicated per category; both maps are copied.
func New(categories map[string][]string, importance map[string]model.Importance) *Taxonomy {
	t := &Taxonomy{
		categories: make(map[string][]string, len(categories)),
		importance: make(map[string]model.Importance, len(importance)),
	}
	for category, terms := range categories {
		seen := make(map[string]struct{}, len(terms))
		clean := make([]string, 0, len(terms))
		for _, term := range terms {
			term = strings.ToLower(strings.TrimSpace(term))
			if term == "" {
				continue
			}
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			clean = append(clean, term)
		}
		t.categories[category] = clean
	}
	for category, level := range importance {
		t.importance[category] = level
	}
	return t
}

// Categories returns the category names in stable (sorted) order.
func (t *Taxonomy) Categories() []string {
	names := make([]string, 0, len(t.categories))
	for name := range t.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Terms returns the canonical terms for a category. The returned slice is a
// copy and may be retained by the caller.
func (t *Taxonomy) Terms(category string) []string {
	terms := t.categories[category]
	out := make([]string, len(terms))
	copy(out, terms)
	return out
}

// Importance returns the scoring importance of a category, defaulting to
// medium for unknown categories.
func (t *Taxonomy) Importance(category string) model.Importance {
	if level, ok := t.importance[category]; ok {
		return level
	}
	return model.ImportanceMedium
}

// Snapshot returns a copy of the full category->terms mapping, suitable for
// serving over the API.
func (t *Taxonomy) Snapshot() map[string][]string {
	out := make(map[string][]string, len(t.categories))
	for category := range t.categories {
		out[category] = t.Terms(category)
	}
	return out
}

// Default returns the built-in skill taxonomy. Configuration may replace it
// wholesale; it is never mutated in place.
func Default() *Taxonomy {
	return New(map[string][]string{
		"programming_languages": {
			"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "php",
			"swift", "kotlin", "go", "rust", "scala", "r", "matlab", "sql",
			"html", "css", "react", "angular", "vue", "node.js", "django", "flask",
		},
		"cloud_platforms": {
			"aws", "azure", "gcp", "google cloud", "amazon web services",
			"microsoft azure", "docker", "kubernetes", "terraform", "ansible",
		},
		"databases": {
			"mysql", "postgresql", "mongodb", "redis", "elasticsearch",
			"oracle", "sql server", "sqlite", "cassandra", "dynamodb",
		},
		"frameworks": {
			"spring", "spring boot", "hibernate", "struts", "laravel",
			"codeigniter", "express.js", "fastapi", "tornado", "pandas", "numpy",
		},
		"tools": {
			"git", "jenkins", "jira", "confluence", "tableau", "power bi",
			"excel", "photoshop", "illustrator", "figma", "sketch", "postman",
		},
		"soft_skills": {
			"leadership", "communication", "teamwork", "project management",
			"problem solving", "analytical", "creative", "adaptable", "organized",
		},
		"methodologies": {
			"agile", "scrum", "waterfall", "devops", "ci/cd", "tdd", "bdd",
			"lean", "kanban", "safe", "itil", "six sigma",
		},
	}, map[string]model.Importance{
		"programming_languages": model.ImportanceHigh,
		"cloud_platforms":       model.ImportanceHigh,
		"databases":             model.ImportanceMedium,
		"frameworks":            model.ImportanceMedium,
		"tools":                 model.ImportanceMedium,
		"soft_skills":           model.ImportanceLow,
		"methodologies":         model.ImportanceMedium,
	})
}
