package scoring

import "github.com/resumatch/resumatch/internal/domain/similarity"

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithWeights overrides the overall-score mix. Ignored unless all weights
// are non-negative and at least one is positive.
func WithWeights(w Weights) Option {
	return func(a *Aggregator) {
		if w.Skills >= 0 && w.Experience >= 0 && w.Certifications >= 0 &&
			w.Skills+w.Experience+w.Certifications > 0 {
			a.weights = w
		}
	}
}

// WithActionVerbs replaces the fixed ATS action-verb list.
func WithActionVerbs(verbs []string) Option {
	return func(a *Aggregator) {
		if len(verbs) > 0 {
			copied := make([]string, len(verbs))
			copy(copied, verbs)
			a.actionVerbs = copied
		}
	}
}

// WithStopWords sets the stop-word set used for JD keyword extraction.
func WithStopWords(stop *similarity.StopWordSet) Option {
	return func(a *Aggregator) {
		if stop != nil {
			a.stopWords = stop
		}
	}
}

// WithTopKeywordCount sets how many JD content words the ATS report includes.
func WithTopKeywordCount(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.topKeywordCount = n
		}
	}
}
