// Package service provides the core analysis service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/resumatch/resumatch/internal/adapters/repository"
	"github.com/resumatch/resumatch/internal/domain/analyzer"
	"github.com/resumatch/resumatch/internal/domain/cache"
	"github.com/resumatch/resumatch/internal/domain/model"
	"github.com/resumatch/resumatch/internal/domain/scoring"
	"github.com/resumatch/resumatch/internal/domain/similarity"
	"github.com/resumatch/resumatch/internal/domain/suggest"
	"github.com/resumatch/resumatch/internal/domain/taxonomy"
	"github.com/resumatch/resumatch/pkg/logger"
	"github.com/resumatch/resumatch/pkg/metrics"
)

// Service implements the analysis pipeline behind the API: skill
// extraction, similarity scoring, gap analysis, aggregation, and
// suggestion generation.
type Service struct {
	mu sync.RWMutex

	// Core components
	extractor   *taxonomy.Extractor
	strategy    similarity.Strategy
	fallback    similarity.Strategy
	experience  *analyzer.Experience
	certs       *analyzer.Certification
	aggregator  *scoring.Aggregator
	suggester   *suggest.Generator
	resultCache cache.Cache
	stats       repository.StatsStore

	// Configuration
	taxonomyData  *taxonomy.Taxonomy
	stopWords     *similarity.StopWordSet
	strategyName  string
	weights       scoring.Weights
	certVocab     []string
	titleVocab    []string
	cacheSize     int
	topKeywords   int
	semanticModel string
	semanticKey   string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithTaxonomy replaces the built-in skill taxonomy.
func WithTaxonomy(t *taxonomy.Taxonomy) Option {
	return func(s *Service) {
		if t != nil {
			s.taxonomyData = t
		}
	}
}

// WithStopWords replaces the built-in stop word set.
func WithStopWords(words []string) Option {
	return func(s *Service) {
		if len(words) > 0 {
			s.stopWords = similarity.NewStopWordSet(words)
		}
	}
}

// WithStrategy selects the similarity strategy by name.
func WithStrategy(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.strategyName = name
		}
	}
}

// WithWeights sets the overall score blend.
func WithWeights(w scoring.Weights) Option {
	return func(s *Service) {
		if w.Skills >= 0 && w.Experience >= 0 && w.Certifications >= 0 &&
			w.Skills+w.Experience+w.Certifications > 0 {
			s.weights = w
		}
	}
}

// WithCertifications replaces the built-in certification vocabulary.
func WithCertifications(vocab []string) Option {
	return func(s *Service) {
		s.certVocab = vocab
	}
}

// WithJobTitles replaces the built-in job title vocabulary.
func WithJobTitles(titles []string) Option {
	return func(s *Service) {
		s.titleVocab = titles
	}
}

// WithCacheSize bounds the result memoization cache.
func WithCacheSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.cacheSize = size
		}
	}
}

// WithTopKeywordCount sets how many job-description keywords feed the
// ATS keyword report.
func WithTopKeywordCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topKeywords = n
		}
	}
}

// WithEmbedding configures the semantic strategy's model and API key.
func WithEmbedding(model, apiKey string) Option {
	return func(s *Service) {
		s.semanticModel = model
		s.semanticKey = apiKey
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStatsStore sets a custom stats store.
func WithStatsStore(store repository.StatsStore) Option {
	return func(s *Service) {
		if store != nil {
			s.stats = store
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		taxonomyData: taxonomy.Default(),
		stopWords:    similarity.DefaultStopWords(),
		strategyName: similarity.NameFrequencyVector,
		weights:      scoring.DefaultWeights(),
		cacheSize:    1024,
		topKeywords:  10,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting analysis service...")

	s.extractor = taxonomy.NewExtractor(s.taxonomyData)
	s.experience = analyzer.NewExperience(s.titleVocab)
	s.certs = analyzer.NewCertification(s.certVocab)
	s.aggregator = scoring.NewAggregator(
		scoring.WithWeights(s.weights),
		scoring.WithStopWords(s.stopWords),
		scoring.WithTopKeywordCount(s.topKeywords),
	)
	s.suggester = suggest.NewGenerator()
	s.resultCache = cache.NewInMemory(cache.WithMaxSize(s.cacheSize))
	if s.stats == nil {
		s.stats = repository.NewMemStore()
	}

	strategy, err := similarity.New(s.strategyName, s.stopWords,
		similarity.WithAPIKey(s.semanticKey),
		similarity.WithEmbeddingModel(s.semanticModel),
	)
	if err != nil {
		return err
	}
	s.strategy = strategy

	// The semantic strategy degrades to the frequency-vector strategy when
	// the embedding backend is unreachable.
	if s.strategyName == similarity.NameSemantic {
		s.fallback = similarity.NewFrequencyVector(s.stopWords)
	}

	s.started = true
	s.logger.Info(ctx, "analysis service started",
		logger.String("strategy", s.strategyName),
		logger.Int("cacheSize", s.cacheSize),
	)

	return nil
}

// Stop shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "analysis service stopped")
}

// Analyze runs the full pipeline on one resume / job description pair.
// Results are memoized: identical inputs under the same strategy return
// the cached snapshot.
func (s *Service) Analyze(ctx context.Context, resumeText, jobText string) (*model.AnalysisResult, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return nil, ErrNotStarted
	}

	if strings.TrimSpace(resumeText) == "" {
		metrics.RecordValidationFailure("empty_resume")
		return nil, ErrEmptyResume
	}
	if strings.TrimSpace(jobText) == "" {
		metrics.RecordValidationFailure("empty_job_description")
		return nil, ErrEmptyJobDescription
	}

	key := cache.Key(resumeText, jobText, s.strategy.Name())
	if cached, ok := s.resultCache.Get(ctx, key); ok {
		metrics.RecordCacheHit()
		return cached, nil
	}
	metrics.RecordCacheMiss()

	begin := time.Now()

	resumeSkills := s.extractor.Extract(resumeText)
	jobSkills := s.extractor.Extract(jobText)

	strategyName, err := s.similarityCheck(ctx, resumeText, jobText)
	if err != nil {
		return nil, err
	}

	skillMatches, missingSkills := s.aggregator.SkillMatches(resumeSkills, jobSkills, s.taxonomyData)
	expMatch := s.experience.Match(s.experience.Profile(resumeText), s.experience.Profile(jobText))
	certMatches := s.certs.Match(resumeText, jobText)

	breakdown := model.MatchBreakdown{
		SkillsScore:        s.aggregator.SkillsScore(skillMatches),
		ExperienceScore:    s.aggregator.ExperienceScore(expMatch),
		CertificationScore: s.aggregator.CertificationScore(certMatches),
	}
	overall := s.aggregator.Overall(breakdown)

	result := &model.AnalysisResult{
		AnalysisID:         uuid.NewString(),
		OverallScore:       overall,
		MatchBreakdown:     breakdown,
		MatchedSkills:      skillMatches,
		MissingSkills:      missingSkills,
		ExperienceAnalysis: expMatch,
		CertificationMatch: certMatches,
		DetailedSuggestions: s.suggester.Generate(suggest.Input{
			MissingSkills:  missingSkills,
			Experience:     expMatch,
			Certifications: certMatches,
			OverallScore:   overall,
		}),
		ATSKeywords: s.aggregator.ATSKeywords(resumeText, jobText),
	}

	s.resultCache.Put(ctx, key, result)
	s.stats.Record(ctx, strategyName, overall)

	snapshot := s.stats.Stats(ctx)
	metrics.RecordAnalysis(strategyName, float64(time.Since(begin).Milliseconds()))
	metrics.UpdateTotalAnalyses(snapshot.TotalAnalyses)
	metrics.UpdateAverageScore(snapshot.AverageScore)

	s.logger.Debug(ctx, "analysis complete",
		logger.String("analysisID", result.AnalysisID),
		logger.String("strategy", strategyName),
		logger.Float64("overallScore", overall),
	)

	return result, nil
}

// similarityCheck exercises the active strategy on the input pair and
// returns the name of the strategy that actually ran. A semantic failure
// falls back to the frequency-vector strategy instead of failing the
// analysis.
func (s *Service) similarityCheck(ctx context.Context, resumeText, jobText string) (string, error) {
	_, err := s.strategy.Similarity(ctx, resumeText, jobText)
	if err == nil {
		return s.strategy.Name(), nil
	}

	if s.fallback != nil && errors.Is(err, similarity.ErrUnavailable) {
		s.logger.Warn(ctx, "semantic strategy unavailable, falling back",
			logger.Error(err),
			logger.String("fallback", s.fallback.Name()),
		)
		metrics.RecordSemanticFallback()
		if _, ferr := s.fallback.Similarity(ctx, resumeText, jobText); ferr != nil {
			return "", ferr
		}
		return s.fallback.Name(), nil
	}

	return "", err
}

// Similarity exposes the raw similarity score of the active strategy,
// with the same semantic fallback Analyze applies.
func (s *Service) Similarity(ctx context.Context, a, b string) (float64, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return 0, ErrNotStarted
	}

	score, err := s.strategy.Similarity(ctx, a, b)
	if err != nil && s.fallback != nil && errors.Is(err, similarity.ErrUnavailable) {
		metrics.RecordSemanticFallback()
		return s.fallback.Similarity(ctx, a, b)
	}
	return score, err
}

// SkillCategories returns the active taxonomy as category->terms.
func (s *Service) SkillCategories() map[string][]string {
	return s.taxonomyData.Snapshot()
}

// StrategyName returns the configured strategy name.
func (s *Service) StrategyName() string {
	return s.strategyName
}

// GetStats returns the run counters.
func (s *Service) GetStats(ctx context.Context) repository.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stats == nil {
		return repository.Stats{ByStrategy: map[string]int{}}
	}
	return s.stats.Stats(ctx)
}
