package similarity

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// defaultEmbeddingModel is the Gemini embedding model used when none is configured.
const defaultEmbeddingModel = "gemini-embedding-001"

// Embedder encodes text into a fixed-length dense vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Semantic scores texts by cosine similarity of dense embeddings. The
// embedder is constructed lazily on first use behind a once-guard so
// concurrent first calls share a single initialization; a failed load is
// latched and reported as ErrUnavailable rather than retried per call.
type Semantic struct {
	apiKey string
	model  string

	initOnce sync.Once
	initErr  error
	embedder Embedder
}

// SemanticOption applies a configuration option to the Semantic strategy.
type SemanticOption func(*Semantic)

// WithAPIKey sets the Gemini API key used for lazy client construction.
func WithAPIKey(key string) SemanticOption {
	return func(s *Semantic) {
		s.apiKey = strings.TrimSpace(key)
	}
}

// WithEmbeddingModel overrides the embedding model name.
func WithEmbeddingModel(model string) SemanticOption {
	return func(s *Semantic) {
		if strings.TrimSpace(model) != "" {
			s.model = model
		}
	}
}

// WithEmbedder injects a pre-built embedder, bypassing lazy client
// construction. Used by tests and by callers that manage the client lifecycle.
func WithEmbedder(e Embedder) SemanticOption {
	return func(s *Semantic) {
		if e != nil {
			s.embedder = e
		}
	}
}

// NewSemantic builds the semantic strategy. No network activity happens
// until the first Similarity call.
func NewSemantic(opts ...SemanticOption) *Semantic {
	s := &Semantic{model: defaultEmbeddingModel}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements Strategy.
func (s *Semantic) Name() string { return NameSemantic }

// Similarity implements Strategy. It returns ErrUnavailable when the
// embedding model cannot be initialized or fails at call time; it never
// panics.
func (s *Semantic) Similarity(ctx context.Context, a, b string) (float64, error) {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0, nil
	}

	if err := s.ensureEmbedder(ctx); err != nil {
		return 0, err
	}

	vecA, err := s.embedder.Embed(ctx, a)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	vecB, err := s.embedder.Embed(ctx, b)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return clamp01(cosine(vecA, vecB)), nil
}

// ensureEmbedder initializes the backing embedder exactly once across the
// process lifetime. After a successful init the embedder is read-only and
// safe for unsynchronized concurrent use.
func (s *Semantic) ensureEmbedder(ctx context.Context) error {
	s.initOnce.Do(func() {
		if s.embedder != nil {
			return
		}
		if s.apiKey == "" {
			s.initErr = fmt.Errorf("%w: no API key configured", ErrUnavailable)
			return
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  s.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			s.initErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
			return
		}
		s.embedder = &geminiEmbedder{client: client, model: s.model}
	})
	return s.initErr
}

// geminiEmbedder implements Embedder over the Google GenAI client.
type geminiEmbedder struct {
	client *genai.Client
	model  string
}

func (g *geminiEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := g.client.Models.EmbedContent(ctx, g.model, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("embed content: empty embedding for model %s", g.model)
	}
	values := resp.Embeddings[0].Values
	vec := make([]float64, len(values))
	for i, v := range values {
		vec[i] = float64(v)
	}
	return vec, nil
}
