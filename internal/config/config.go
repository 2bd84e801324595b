// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading layers defaults, an optional YAML file, and environment variables.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Strategy selects the similarity strategy: lexical, frequency-vector,
	// or semantic.
	Strategy string `koanf:"strategy"`

	// SkillsWeight, ExperienceWeight and CertificationWeight set the overall
	// score blend. They must sum to a positive value.
	SkillsWeight        float64 `koanf:"skills_weight"`
	ExperienceWeight    float64 `koanf:"experience_weight"`
	CertificationWeight float64 `koanf:"certification_weight"`

	// SkillCategories maps category names to skill term lists. When empty the
	// built-in taxonomy is used.
	SkillCategories map[string][]string `koanf:"skill_categories"`

	// StopWords overrides the built-in stop word list when non-empty.
	StopWords []string `koanf:"stop_words"`

	// Certifications overrides the built-in certification vocabulary.
	Certifications []string `koanf:"certifications"`

	// JobTitles overrides the built-in job title vocabulary.
	JobTitles []string `koanf:"job_titles"`

	// EmbeddingModel names the embedding model used by the semantic strategy.
	EmbeddingModel string `koanf:"embedding_model"`

	// EmbeddingAPIKey authenticates against the embedding backend. Usually
	// supplied via RESUMATCH_EMBEDDING_API_KEY.
	EmbeddingAPIKey string `koanf:"embedding_api_key"`

	// CacheSize bounds the result memoization cache.
	CacheSize int `koanf:"cache_size"`

	// MaxUploadBytes caps accepted document uploads.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// TopKeywordCount sets how many job-description keywords feed the ATS
	// keyword list.
	TopKeywordCount int `koanf:"top_keyword_count"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":8000",
		Strategy:            "frequency-vector",
		SkillsWeight:        0.5,
		ExperienceWeight:    0.3,
		CertificationWeight: 0.2,
		EmbeddingModel:      "gemini-embedding-001",
		CacheSize:           1024,
		MaxUploadBytes:      10 << 20,
		TopKeywordCount:     10,
	}
}
