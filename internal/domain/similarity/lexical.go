package similarity

import (
	"context"
	"math"
	"strings"
)

// Lexical scores texts by weighted keyword overlap. Term weights use a
// smoothed two-document inverse document frequency, 1+log(2/df), so terms
// shared by both texts still carry weight and identical texts score 1.0.
// Closed-form and dependency-free; also the baseline the engine can always
// fall back to.
type Lexical struct {
	stop *StopWordSet
}

// NewLexical builds the lexical strategy with the given stop words
// (defaults apply when nil).
func NewLexical(stop *StopWordSet) *Lexical {
	if stop == nil {
		stop = DefaultStopWords()
	}
	return &Lexical{stop: stop}
}

// Name implements Strategy.
func (l *Lexical) Name() string { return NameLexical }

// Similarity implements Strategy. It never returns an error.
func (l *Lexical) Similarity(_ context.Context, a, b string) (float64, error) {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0, nil
	}

	tokensA := tokenize(a, l.stop)
	tokensB := tokenize(b, l.stop)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0, nil
	}

	countsA := termCounts(tokensA)
	countsB := termCounts(tokensB)

	vocab := make([]string, 0, len(countsA)+len(countsB))
	seen := make(map[string]struct{}, len(countsA)+len(countsB))
	for _, counts := range []map[string]float64{countsA, countsB} {
		for term := range counts {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			vocab = append(vocab, term)
		}
	}

	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for i, term := range vocab {
		df := 0.0
		if countsA[term] > 0 {
			df++
		}
		if countsB[term] > 0 {
			df++
		}
		idf := 1 + math.Log(2/df)
		vecA[i] = countsA[term] / float64(len(tokensA)) * idf
		vecB[i] = countsB[term] / float64(len(tokensB)) * idf
	}

	return clamp01(cosine(vecA, vecB)), nil
}
