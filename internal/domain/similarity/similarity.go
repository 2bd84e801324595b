// Package similarity defines the text-similarity contract and its three
// interchangeable implementations: lexical overlap, frequency-vector
// (TF-IDF cosine), and semantic (dense embedding cosine).
//
// All strategies return a value in [0,1], are symmetric for the two lexical
// variants, and return 0.0 when either input is empty. The active strategy
// is chosen at construction time by configuration.
package similarity

import (
	"context"
	"math"
	"regexp"
	"strings"
)

// Strategy names accepted by configuration.
const (
	NameLexical         = "lexical"
	NameFrequencyVector = "frequency-vector"
	NameSemantic        = "semantic"
)

// Strategy computes a similarity score for two texts.
type Strategy interface {
	// Name identifies the strategy in logs, metrics, and stats.
	Name() string

	// Similarity returns a score in [0,1]. Implementations must not panic on
	// well-formed input and must return 0.0 when either text is empty.
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// defaultStopWords is the fixed stop-word set stripped before vectorizing.
var defaultStopWords = newStopWordSet(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with",
	"by", "from", "up", "about", "into", "through", "during", "before", "after", "above",
	"below", "between", "among", "is", "are", "was", "were", "be", "been", "being", "have",
	"has", "had", "do", "does", "did", "will", "would", "could", "should", "may", "might",
	"must", "can", "this", "that", "these", "those", "i", "you", "he", "she", "it", "we",
	"they", "me", "him", "her", "us", "them", "my", "your", "his", "its", "our", "their",
)

// StopWordSet is an immutable membership set of lower-cased stop words.
type StopWordSet struct {
	words map[string]struct{}
}

func newStopWordSet(words ...string) *StopWordSet {
	return NewStopWordSet(words)
}

// NewStopWordSet copies words into an immutable set.
func NewStopWordSet(words []string) *StopWordSet {
	s := &StopWordSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.words[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return s
}

// Contains reports whether w is a stop word.
func (s *StopWordSet) Contains(w string) bool {
	_, ok := s.words[w]
	return ok
}

// DefaultStopWords returns the built-in stop-word set.
func DefaultStopWords() *StopWordSet {
	return defaultStopWords
}

var tokenPattern = regexp.MustCompile(`[a-z0-9][a-z0-9\-\.]*`)

// tokenize lower-cases text, splits it into alphanumeric+hyphen tokens, and
// strips stop words and one- or two-character fragments.
func tokenize(text string, stop *StopWordSet) []string {
	words := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) <= 2 || stop.Contains(w) {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// termCounts builds a term frequency map.
func termCounts(tokens []string) map[string]float64 {
	counts := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

// cosine computes cosine similarity for two aligned vectors, returning 0.0
// when either has zero magnitude.
func cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// clamp01 bounds a score to [0,1], mapping NaN to 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
