package suggest_test

import (
	"testing"

	"github.com/resumatch/resumatch/internal/domain/model"
	"github.com/resumatch/resumatch/internal/domain/suggest"
	. "github.com/smartystreets/goconvey/convey"
)

func years(n int) *int { return &n }

func TestGenerator_Generate(t *testing.T) {
	Convey("Given a suggestion generator", t, func() {
		g := suggest.NewGenerator()

		Convey("When skills are missing", func() {
			out := g.Generate(suggest.Input{
				MissingSkills: []string{"go", "kubernetes"},
				OverallScore:  90.0,
			})

			So(len(out), ShouldEqual, 1)
			s := out[0]
			So(s.Category, ShouldEqual, model.CategorySkills)
			So(s.Priority, ShouldEqual, model.PriorityHigh)
			So(s.Message, ShouldEqual, "Add these critical missing skills: go, kubernetes")
		})

		Convey("When more than five skills are missing", func() {
			out := g.Generate(suggest.Input{
				MissingSkills: []string{"a", "b", "c", "d", "e", "f", "g"},
				OverallScore:  90.0,
			})

			Convey("Then only the first five should be named", func() {
				So(out[0].Message, ShouldEqual, "Add these critical missing skills: a, b, c, d, e")
			})
		})

		Convey("When the resume falls short on years", func() {
			out := g.Generate(suggest.Input{
				Experience: model.ExperienceMatch{
					RequiredYears: years(8),
					FoundYears:    years(5),
					Matched:       false,
				},
				OverallScore: 90.0,
			})

			So(len(out), ShouldEqual, 1)
			So(out[0].Category, ShouldEqual, model.CategoryExperience)
			So(out[0].Message, ShouldEqual, "You need 3 more years of experience for this role")
		})

		Convey("When the resume states no years against a requirement", func() {
			out := g.Generate(suggest.Input{
				Experience: model.ExperienceMatch{
					RequiredYears: years(5),
					Matched:       false,
				},
				OverallScore: 90.0,
			})

			So(len(out), ShouldEqual, 1)
			So(out[0].Message, ShouldEqual, "Clearly state your years of experience (requirement: 5+ years)")
		})

		Convey("When required titles are missing", func() {
			out := g.Generate(suggest.Input{
				Experience: model.ExperienceMatch{
					Matched:       true,
					TitlesMissing: []string{"data scientist"},
				},
				OverallScore: 90.0,
			})

			So(len(out), ShouldEqual, 1)
			So(out[0].Priority, ShouldEqual, model.PriorityMedium)
			So(out[0].Message, ShouldEqual, "Consider highlighting experience related to: data scientist")
		})

		Convey("When a high-importance certification is missing", func() {
			out := g.Generate(suggest.Input{
				Certifications: []model.CertificationMatch{
					{Name: "aws certified", Matched: false, Importance: model.ImportanceHigh},
					{Name: "itil", Matched: false, Importance: model.ImportanceMedium},
				},
				Experience:   model.ExperienceMatch{Matched: true},
				OverallScore: 90.0,
			})

			So(len(out), ShouldEqual, 1)
			So(out[0].Category, ShouldEqual, model.CategoryCertifications)

			Convey("Then only the high-importance one should be named", func() {
				So(out[0].Message, ShouldEqual, "Consider obtaining these certifications: aws certified")
			})
		})

		Convey("When the overall score is low", func() {
			out := g.Generate(suggest.Input{
				Experience:   model.ExperienceMatch{Matched: true},
				OverallScore: 50.0,
			})

			So(len(out), ShouldEqual, 1)
			So(out[0].Category, ShouldEqual, model.CategoryGeneral)
			So(out[0].Priority, ShouldEqual, model.PriorityHigh)
			So(out[0].Message, ShouldEqual, "Your resume needs significant optimization for this job")
		})

		Convey("When the overall score is middling", func() {
			out := g.Generate(suggest.Input{
				Experience:   model.ExperienceMatch{Matched: true},
				OverallScore: 80.0,
			})

			So(len(out), ShouldEqual, 1)
			So(out[0].Priority, ShouldEqual, model.PriorityLow)
			So(out[0].Message, ShouldEqual, "Good match! Consider minor optimizations for better alignment")
		})

		Convey("When the overall score is 85 or above", func() {
			out := g.Generate(suggest.Input{
				Experience:   model.ExperienceMatch{Matched: true},
				OverallScore: 85.0,
			})

			So(out, ShouldBeEmpty)
		})

		Convey("When everything fires at once", func() {
			out := g.Generate(suggest.Input{
				MissingSkills: []string{"go"},
				Experience: model.ExperienceMatch{
					RequiredYears: years(8),
					FoundYears:    years(3),
					Matched:       false,
					TitlesMissing: []string{"architect"},
				},
				Certifications: []model.CertificationMatch{
					{Name: "aws certified", Matched: false, Importance: model.ImportanceHigh},
				},
				OverallScore: 40.0,
			})

			Convey("Then suggestions should come out in rule order", func() {
				So(len(out), ShouldEqual, 5)
				So(out[0].Category, ShouldEqual, model.CategorySkills)
				So(out[1].Category, ShouldEqual, model.CategoryExperience)
				So(out[2].Category, ShouldEqual, model.CategoryExperience)
				So(out[3].Category, ShouldEqual, model.CategoryCertifications)
				So(out[4].Category, ShouldEqual, model.CategoryGeneral)
			})
		})
	})
}
