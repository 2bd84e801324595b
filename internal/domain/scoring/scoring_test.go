package scoring_test

import (
	"testing"

	"github.com/resumatch/resumatch/internal/domain/model"
	"github.com/resumatch/resumatch/internal/domain/scoring"
	"github.com/resumatch/resumatch/internal/domain/taxonomy"
	. "github.com/smartystreets/goconvey/convey"
)

func years(n int) *int { return &n }

func TestAggregator_SkillMatches(t *testing.T) {
	Convey("Given an aggregator and the default taxonomy", t, func() {
		a := scoring.NewAggregator()
		tax := taxonomy.Default()
		ex := taxonomy.NewExtractor(tax)

		Convey("When the resume covers part of the job's skills", func() {
			resume := ex.Extract("Python developer using PostgreSQL")
			job := ex.Extract("Need Python and Java with PostgreSQL")

			matches, missing := a.SkillMatches(resume, job, tax)

			Convey("Then every job skill should appear exactly once", func() {
				So(len(matches), ShouldEqual, 3)
			})

			Convey("And unmatched job skills should land in missing", func() {
				So(missing, ShouldResemble, []string{"java"})
			})

			Convey("And matches should carry category importance", func() {
				for _, m := range matches {
					switch m.Skill {
					case "python", "java":
						So(m.Importance, ShouldEqual, model.ImportanceHigh)
					case "postgresql":
						So(m.Importance, ShouldEqual, model.ImportanceMedium)
					}
				}
			})
		})

		Convey("When the job lists no recognizable skills", func() {
			resume := ex.Extract("Python developer")
			job := ex.Extract("A very vague posting")

			matches, missing := a.SkillMatches(resume, job, tax)
			So(matches, ShouldBeEmpty)
			So(missing, ShouldBeEmpty)
		})
	})
}

func TestAggregator_SkillsScore(t *testing.T) {
	Convey("Given an aggregator", t, func() {
		a := scoring.NewAggregator()

		Convey("When all skills match", func() {
			score := a.SkillsScore([]model.SkillMatch{
				{Skill: "python", Matched: true, Importance: model.ImportanceHigh},
				{Skill: "git", Matched: true, Importance: model.ImportanceMedium},
			})
			So(score, ShouldEqual, 100.0)
		})

		Convey("When no skills match", func() {
			score := a.SkillsScore([]model.SkillMatch{
				{Skill: "python", Matched: false, Importance: model.ImportanceHigh},
			})
			So(score, ShouldEqual, 0.0)
		})

		Convey("When matching is importance-weighted", func() {
			// high (3) matched, low (1) missed: 3/4 of the weight
			score := a.SkillsScore([]model.SkillMatch{
				{Skill: "python", Matched: true, Importance: model.ImportanceHigh},
				{Skill: "teamwork", Matched: false, Importance: model.ImportanceLow},
			})
			So(score, ShouldEqual, 75.0)
		})

		Convey("When there are no matches at all", func() {
			So(a.SkillsScore(nil), ShouldEqual, 0.0)
		})
	})
}

func TestAggregator_ExperienceScore(t *testing.T) {
	Convey("Given an aggregator", t, func() {
		a := scoring.NewAggregator()

		Convey("When the year requirement is met and all titles match", func() {
			score := a.ExperienceScore(model.ExperienceMatch{
				Matched:       true,
				TitlesMatched: []string{"software engineer"},
				TitlesMissing: []string{},
			})
			So(score, ShouldEqual, 100.0)
		})

		Convey("When years match but no titles are required", func() {
			score := a.ExperienceScore(model.ExperienceMatch{Matched: true})
			So(score, ShouldEqual, 60.0)
		})

		Convey("When years fall short", func() {
			score := a.ExperienceScore(model.ExperienceMatch{
				RequiredYears: years(10),
				FoundYears:    years(5),
				Matched:       false,
			})

			Convey("Then partial credit should be proportional", func() {
				So(score, ShouldEqual, 30.0)
			})
		})

		Convey("When the resume states no years against a requirement", func() {
			score := a.ExperienceScore(model.ExperienceMatch{
				RequiredYears: years(5),
				Matched:       false,
				TitlesMatched: []string{"software engineer"},
				TitlesMissing: []string{"architect"},
			})

			Convey("Then only title credit should apply", func() {
				So(score, ShouldEqual, 20.0)
			})
		})
	})
}

func TestAggregator_CertificationScore(t *testing.T) {
	Convey("Given an aggregator", t, func() {
		a := scoring.NewAggregator()

		Convey("When the job requires no certifications", func() {
			So(a.CertificationScore(nil), ShouldEqual, 80.0)
		})

		Convey("When all required certifications are held", func() {
			score := a.CertificationScore([]model.CertificationMatch{
				{Name: "aws certified", Matched: true, Importance: model.ImportanceHigh},
			})
			So(score, ShouldEqual, 100.0)
		})

		Convey("When a high-importance certification is missing", func() {
			// high (3) missed, medium (2) held: 2/5 of the weight
			score := a.CertificationScore([]model.CertificationMatch{
				{Name: "aws certified", Matched: false, Importance: model.ImportanceHigh},
				{Name: "itil", Matched: true, Importance: model.ImportanceMedium},
			})
			So(score, ShouldEqual, 40.0)
		})
	})
}

func TestAggregator_Overall(t *testing.T) {
	Convey("Given an aggregator with default weights", t, func() {
		a := scoring.NewAggregator()

		Convey("When mixing sub-scores", func() {
			overall := a.Overall(model.MatchBreakdown{
				SkillsScore:        80.0,
				ExperienceScore:    60.0,
				CertificationScore: 80.0,
			})

			Convey("Then the 0.5/0.3/0.2 blend should apply", func() {
				So(overall, ShouldEqual, 74.0)
			})
		})

		Convey("When all sub-scores are perfect", func() {
			overall := a.Overall(model.MatchBreakdown{
				SkillsScore:        100.0,
				ExperienceScore:    100.0,
				CertificationScore: 100.0,
			})
			So(overall, ShouldEqual, 100.0)
		})

		Convey("When the blend needs rounding", func() {
			overall := a.Overall(model.MatchBreakdown{
				SkillsScore:        33.3,
				ExperienceScore:    33.3,
				CertificationScore: 33.3,
			})
			So(overall, ShouldEqual, 33.3)
		})
	})

	Convey("Given an aggregator with custom weights", t, func() {
		a := scoring.NewAggregator(scoring.WithWeights(scoring.Weights{
			Skills: 1.0, Experience: 0.0, Certifications: 0.0,
		}))

		Convey("Then only the skills score should count", func() {
			overall := a.Overall(model.MatchBreakdown{
				SkillsScore:        90.0,
				ExperienceScore:    10.0,
				CertificationScore: 10.0,
			})
			So(overall, ShouldEqual, 90.0)
		})
	})
}

func TestAggregator_ATSKeywords(t *testing.T) {
	Convey("Given an aggregator", t, func() {
		a := scoring.NewAggregator()

		Convey("When the resume uses action verbs", func() {
			report := a.ATSKeywords(
				"Developed and managed a platform team.",
				"Seeking someone who has developed platforms.",
			)

			Convey("Then present verbs should be true", func() {
				So(report["developed"], ShouldBeTrue)
				So(report["managed"], ShouldBeTrue)
			})

			Convey("And absent verbs should be false", func() {
				So(report["negotiated"], ShouldBeFalse)
			})
		})

		Convey("When the job repeats content words", func() {
			job := "kubernetes kubernetes kubernetes deployment deployment service"
			report := a.ATSKeywords("I run kubernetes clusters", job)

			Convey("Then frequent long words should be reported", func() {
				present, ok := report["kubernetes"]
				So(ok, ShouldBeTrue)
				So(present, ShouldBeTrue)

				_, ok = report["deployment"]
				So(ok, ShouldBeTrue)
			})

			Convey("And short words should be excluded", func() {
				_, ok := report["run"]
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestWeights(t *testing.T) {
	Convey("Given weight configuration", t, func() {
		Convey("Then the default mix should be 0.5/0.3/0.2", func() {
			w := scoring.DefaultWeights()
			So(w.Skills, ShouldEqual, 0.5)
			So(w.Experience, ShouldEqual, 0.3)
			So(w.Certifications, ShouldEqual, 0.2)
		})

		Convey("When a non-positive mix is supplied", func() {
			a := scoring.NewAggregator(scoring.WithWeights(scoring.Weights{}))

			Convey("Then the default mix should be kept", func() {
				overall := a.Overall(model.MatchBreakdown{
					SkillsScore:        100.0,
					ExperienceScore:    0.0,
					CertificationScore: 0.0,
				})
				So(overall, ShouldEqual, 50.0)
			})
		})
	})
}
