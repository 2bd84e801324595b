package similarity

import (
	"context"
	"math"
	"sort"
	"strings"
)

// defaultVocabularyCap bounds the feature space of the frequency vectorizer.
const defaultVocabularyCap = 5000

// FrequencyVector scores texts with TF-IDF cosine similarity over unigrams
// and bigrams. The vocabulary is rebuilt per call from exactly the two input
// texts, capped at a fixed feature count, so results are deterministic and
// the strategy holds no cross-call state.
type FrequencyVector struct {
	stop     *StopWordSet
	vocabCap int
}

// NewFrequencyVector builds the frequency-vector strategy with the given
// stop words (defaults apply when nil).
func NewFrequencyVector(stop *StopWordSet) *FrequencyVector {
	if stop == nil {
		stop = DefaultStopWords()
	}
	return &FrequencyVector{stop: stop, vocabCap: defaultVocabularyCap}
}

// Name implements Strategy.
func (f *FrequencyVector) Name() string { return NameFrequencyVector }

// Similarity implements Strategy. It never returns an error.
func (f *FrequencyVector) Similarity(_ context.Context, a, b string) (float64, error) {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0, nil
	}

	featuresA := ngramCounts(tokenize(a, f.stop))
	featuresB := ngramCounts(tokenize(b, f.stop))
	if len(featuresA) == 0 || len(featuresB) == 0 {
		return 0, nil
	}

	vocab := f.buildVocabulary(featuresA, featuresB)

	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for i, term := range vocab {
		df := 0.0
		if featuresA[term] > 0 {
			df++
		}
		if featuresB[term] > 0 {
			df++
		}
		// Smoothed IDF over the two-document corpus.
		idf := 1 + math.Log(3/(1+df))
		vecA[i] = featuresA[term] * idf
		vecB[i] = featuresB[term] * idf
	}

	return clamp01(cosine(vecA, vecB)), nil
}

// buildVocabulary merges both feature maps and keeps the top features by
// combined frequency (ties broken lexicographically) up to the cap.
func (f *FrequencyVector) buildVocabulary(a, b map[string]float64) []string {
	combined := make(map[string]float64, len(a)+len(b))
	for term, n := range a {
		combined[term] += n
	}
	for term, n := range b {
		combined[term] += n
	}

	vocab := make([]string, 0, len(combined))
	for term := range combined {
		vocab = append(vocab, term)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if combined[vocab[i]] != combined[vocab[j]] {
			return combined[vocab[i]] > combined[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})
	if len(vocab) > f.vocabCap {
		vocab = vocab[:f.vocabCap]
	}
	return vocab
}

// ngramCounts counts unigrams and adjacent bigrams.
func ngramCounts(tokens []string) map[string]float64 {
	counts := make(map[string]float64, len(tokens)*2)
	for i, t := range tokens {
		counts[t]++
		if i+1 < len(tokens) {
			counts[t+" "+tokens[i+1]]++
		}
	}
	return counts
}
