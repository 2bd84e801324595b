package taxonomy_test

import (
	"testing"

	"github.com/resumatch/resumatch/internal/domain/model"
	"github.com/resumatch/resumatch/internal/domain/taxonomy"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTaxonomy_New(t *testing.T) {
	Convey("Given raw category data", t, func() {
		tax := taxonomy.New(map[string][]string{
			"languages": {"Python", "  GO ", "python", ""},
		}, map[string]model.Importance{
			"languages": model.ImportanceHigh,
		})

		Convey("Then terms should be lower-cased and deduplicated", func() {
			So(tax.Terms("languages"), ShouldResemble, []string{"python", "go"})
		})

		Convey("And importance should be preserved", func() {
			So(tax.Importance("languages"), ShouldEqual, model.ImportanceHigh)
		})

		Convey("And unknown categories should default to medium importance", func() {
			So(tax.Importance("unknown"), ShouldEqual, model.ImportanceMedium)
		})
	})
}

func TestTaxonomy_Default(t *testing.T) {
	Convey("Given the built-in taxonomy", t, func() {
		tax := taxonomy.Default()

		Convey("Then it should carry the expected categories in sorted order", func() {
			So(tax.Categories(), ShouldResemble, []string{
				"cloud_platforms", "databases", "frameworks", "methodologies",
				"programming_languages", "soft_skills", "tools",
			})
		})

		Convey("And programming languages should be high importance", func() {
			So(tax.Importance("programming_languages"), ShouldEqual, model.ImportanceHigh)
		})

		Convey("And soft skills should be low importance", func() {
			So(tax.Importance("soft_skills"), ShouldEqual, model.ImportanceLow)
		})

		Convey("And a snapshot should be a copy", func() {
			snap := tax.Snapshot()
			snap["programming_languages"][0] = "mutated"
			So(tax.Terms("programming_languages")[0], ShouldEqual, "python")
		})
	})
}

func TestExtractor_Extract(t *testing.T) {
	Convey("Given an extractor over the default taxonomy", t, func() {
		ex := taxonomy.NewExtractor(taxonomy.Default())

		Convey("When extracting from a resume-like text", func() {
			skills := ex.Extract("Senior engineer with Python, AWS and Docker. Agile teams.")

			Convey("Then matched terms should appear under their categories", func() {
				So(skills["programming_languages"], ShouldContain, "python")
				So(skills["cloud_platforms"], ShouldContain, "aws")
				So(skills["cloud_platforms"], ShouldContain, "docker")
				So(skills["methodologies"], ShouldContain, "agile")
			})

			Convey("And empty categories should still be present", func() {
				So(skills["databases"], ShouldResemble, []string{})
			})
		})

		Convey("When the text contains substrings of taxonomy terms", func() {
			skills := ex.Extract("I wrote javascript all day")

			Convey("Then java should not match inside javascript", func() {
				So(skills["programming_languages"], ShouldContain, "javascript")
				So(skills["programming_languages"], ShouldNotContain, "java")
			})
		})

		Convey("When the text contains symbol-suffixed terms", func() {
			skills := ex.Extract("Built services in C++ and C#.")

			Convey("Then both should match whole-token", func() {
				So(skills["programming_languages"], ShouldContain, "c++")
				So(skills["programming_languages"], ShouldContain, "c#")
			})
		})

		Convey("When matching is case-insensitive", func() {
			skills := ex.Extract("KUBERNETES and PostgreSQL")

			So(skills["cloud_platforms"], ShouldContain, "kubernetes")
			So(skills["databases"], ShouldContain, "postgresql")
		})

		Convey("When extracting multi-word terms", func() {
			skills := ex.Extract("Experience with google cloud and project management.")

			So(skills["cloud_platforms"], ShouldContain, "google cloud")
			So(skills["soft_skills"], ShouldContain, "project management")
		})

		Convey("And All should deduplicate across categories", func() {
			skills := ex.Extract("python, python and aws")
			all := skills.All()
			So(all, ShouldContain, "python")
			So(all, ShouldContain, "aws")
			So(len(all), ShouldEqual, 2)
		})
	})
}
