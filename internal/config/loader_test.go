package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/resumatch/resumatch/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8000")
				convey.So(cfg.Strategy, convey.ShouldEqual, "frequency-vector")
				convey.So(cfg.SkillsWeight, convey.ShouldEqual, 0.5)
				convey.So(cfg.ExperienceWeight, convey.ShouldEqual, 0.3)
				convey.So(cfg.CertificationWeight, convey.ShouldEqual, 0.2)
				convey.So(cfg.EmbeddingModel, convey.ShouldEqual, "gemini-embedding-001")
				convey.So(cfg.CacheSize, convey.ShouldEqual, 1024)
				convey.So(cfg.MaxUploadBytes, convey.ShouldEqual, int64(10<<20))
				convey.So(cfg.TopKeywordCount, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("RESUMATCH_ADDR", ":9000")
			_ = os.Setenv("RESUMATCH_STRATEGY", "lexical")
			_ = os.Setenv("RESUMATCH_SKILLS_WEIGHT", "0.6")
			_ = os.Setenv("RESUMATCH_EXPERIENCE_WEIGHT", "0.3")
			_ = os.Setenv("RESUMATCH_CERTIFICATION_WEIGHT", "0.1")
			_ = os.Setenv("RESUMATCH_CACHE_SIZE", "256")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9000")
				convey.So(cfg.Strategy, convey.ShouldEqual, "lexical")
				convey.So(cfg.SkillsWeight, convey.ShouldEqual, 0.6)
				convey.So(cfg.CertificationWeight, convey.ShouldEqual, 0.1)
				convey.So(cfg.CacheSize, convey.ShouldEqual, 256)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
strategy: semantic
embedding_model: custom-embedding
top_keyword_count: 15
stop_words:
  - alpha
  - beta
skill_categories:
  languages:
    - go
    - python
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("RESUMATCH_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.Strategy, convey.ShouldEqual, "semantic")
				convey.So(cfg.EmbeddingModel, convey.ShouldEqual, "custom-embedding")
				convey.So(cfg.TopKeywordCount, convey.ShouldEqual, 15)
				convey.So(cfg.StopWords, convey.ShouldResemble, []string{"alpha", "beta"})
				convey.So(cfg.SkillCategories["languages"], convey.ShouldResemble, []string{"go", "python"})
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
strategy: lexical
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("RESUMATCH_CONFIG", tmpFile)
			_ = os.Setenv("RESUMATCH_ADDR", ":7070")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then env vars should take precedence over the file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.Strategy, convey.ShouldEqual, "lexical")
			})
		})

		convey.Convey("When the config file does not exist", func() {
			clearConfigEnvVars()
			_ = os.Setenv("RESUMATCH_CONFIG", "/nonexistent/config.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading should fail with a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the strategy is unknown", func() {
			clearConfigEnvVars()
			_ = os.Setenv("RESUMATCH_STRATEGY", "quantum")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then validation should reject it", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the weights sum to zero", func() {
			clearConfigEnvVars()
			_ = os.Setenv("RESUMATCH_SKILLS_WEIGHT", "0")
			_ = os.Setenv("RESUMATCH_EXPERIENCE_WEIGHT", "0")
			_ = os.Setenv("RESUMATCH_CERTIFICATION_WEIGHT", "0")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then validation should reject the mix", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"RESUMATCH_CONFIG",
		"RESUMATCH_ADDR",
		"RESUMATCH_STRATEGY",
		"RESUMATCH_SKILLS_WEIGHT",
		"RESUMATCH_EXPERIENCE_WEIGHT",
		"RESUMATCH_CERTIFICATION_WEIGHT",
		"RESUMATCH_CACHE_SIZE",
		"RESUMATCH_EMBEDDING_MODEL",
		"RESUMATCH_EMBEDDING_API_KEY",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(content string) string {
	f, err := os.CreateTemp("", "resumatch-config-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := f.WriteString(content); err != nil {
		panic(err)
	}
	_ = f.Close()
	return f.Name()
}
