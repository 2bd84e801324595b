package repository

import (
	"context"
	"math"
	"sync"
)

// memStore implements StatsStore with a mutex-guarded running aggregate.
type memStore struct {
	mu         sync.RWMutex
	count      int
	scoreSum   float64
	byStrategy map[string]int
}

// NewMemStore creates an empty in-memory stats store.
func NewMemStore() StatsStore {
	return &memStore{byStrategy: make(map[string]int)}
}

func (s *memStore) Record(_ context.Context, strategy string, overallScore float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.count++
	s.scoreSum += overallScore
	s.byStrategy[strategy]++
}

func (s *memStore) Stats(_ context.Context) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byStrategy := make(map[string]int, len(s.byStrategy))
	for strategy, n := range s.byStrategy {
		byStrategy[strategy] = n
	}

	avg := 0.0
	if s.count > 0 {
		avg = math.Round(s.scoreSum/float64(s.count)*10) / 10
	}

	return Stats{
		TotalAnalyses: s.count,
		AverageScore:  avg,
		ByStrategy:    byStrategy,
	}
}
