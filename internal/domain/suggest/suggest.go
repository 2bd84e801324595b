// Package suggest turns the aggregated analysis into prioritized,
// human-readable improvement suggestions.
//
// The rule set is a fixed, ordered list; each rule fires at most once per
// analysis and rules are independent of one another, so the output order is
// exactly the rule order.
package suggest

import (
	"fmt"
	"strings"

	"github.com/resumatch/resumatch/internal/domain/model"
)

// Rule thresholds.
const (
	maxNamedSkills          = 5
	significantOptimization = 70.0
	minorOptimization       = 85.0
)

// Input bundles the intermediate analysis data the rules consume.
type Input struct {
	MissingSkills  []string
	Experience     model.ExperienceMatch
	Certifications []model.CertificationMatch
	OverallScore   float64
}

// Generator evaluates the rule list.
type Generator struct{}

// NewGenerator creates a suggestion generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate runs every rule in order and collects the emitted suggestions.
func (g *Generator) Generate(in Input) []model.Suggestion {
	rules := []func(Input) *model.Suggestion{
		missingSkillsRule,
		yearGapRule,
		unstatedYearsRule,
		missingTitlesRule,
		missingCertificationsRule,
		overallScoreRule,
	}

	suggestions := []model.Suggestion{}
	for _, rule := range rules {
		if s := rule(in); s != nil {
			suggestions = append(suggestions, *s)
		}
	}
	return suggestions
}

// missingSkillsRule names up to five skills the job expects but the resume lacks.
func missingSkillsRule(in Input) *model.Suggestion {
	if len(in.MissingSkills) == 0 {
		return nil
	}
	named := in.MissingSkills
	if len(named) > maxNamedSkills {
		named = named[:maxNamedSkills]
	}
	list := strings.Join(named, ", ")
	return &model.Suggestion{
		Category: model.CategorySkills,
		Priority: model.PriorityHigh,
		Message:  fmt.Sprintf("Add these critical missing skills: %s", list),
		Action:   fmt.Sprintf("Include %s in your skills section and provide examples of usage in your experience descriptions.", list),
	}
}

// yearGapRule states the concrete year gap when both figures are known.
func yearGapRule(in Input) *model.Suggestion {
	e := in.Experience
	if e.Matched || e.RequiredYears == nil || e.FoundYears == nil {
		return nil
	}
	gap := *e.RequiredYears - *e.FoundYears
	return &model.Suggestion{
		Category: model.CategoryExperience,
		Priority: model.PriorityHigh,
		Message:  fmt.Sprintf("You need %d more years of experience for this role", gap),
		Action:   "Highlight relevant projects, internships, or freelance work that demonstrate equivalent experience.",
	}
}

// unstatedYearsRule asks for an explicit experience statement when the job
// requires years and the resume states none.
func unstatedYearsRule(in Input) *model.Suggestion {
	e := in.Experience
	if e.Matched || e.RequiredYears == nil || e.FoundYears != nil {
		return nil
	}
	return &model.Suggestion{
		Category: model.CategoryExperience,
		Priority: model.PriorityHigh,
		Message:  fmt.Sprintf("Clearly state your years of experience (requirement: %d+ years)", *e.RequiredYears),
		Action:   "Add a clear statement of your total years of experience in your summary or experience section.",
	}
}

// missingTitlesRule points at required roles the resume never mentions.
func missingTitlesRule(in Input) *model.Suggestion {
	if len(in.Experience.TitlesMissing) == 0 {
		return nil
	}
	return &model.Suggestion{
		Category: model.CategoryExperience,
		Priority: model.PriorityMedium,
		Message:  fmt.Sprintf("Consider highlighting experience related to: %s", strings.Join(in.Experience.TitlesMissing, ", ")),
		Action:   "Reframe your job titles or descriptions to align with the required roles if your experience is relevant.",
	}
}

// missingCertificationsRule fires when a high-importance certification is missing.
func missingCertificationsRule(in Input) *model.Suggestion {
	var missing []string
	for _, c := range in.Certifications {
		if !c.Matched && c.Importance == model.ImportanceHigh {
			missing = append(missing, c.Name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &model.Suggestion{
		Category: model.CategoryCertifications,
		Priority: model.PriorityMedium,
		Message:  fmt.Sprintf("Consider obtaining these certifications: %s", strings.Join(missing, ", ")),
		Action:   "Research and plan to obtain these industry-recognized certifications to strengthen your profile.",
	}
}

// overallScoreRule emits exactly one of the two general suggestions for
// scores below the optimization thresholds, or none at 85 and above.
func overallScoreRule(in Input) *model.Suggestion {
	switch {
	case in.OverallScore < significantOptimization:
		return &model.Suggestion{
			Category: model.CategoryGeneral,
			Priority: model.PriorityHigh,
			Message:  "Your resume needs significant optimization for this job",
			Action:   "Focus on incorporating more relevant keywords, quantifying achievements, and better aligning your experience with job requirements.",
		}
	case in.OverallScore < minorOptimization:
		return &model.Suggestion{
			Category: model.CategoryGeneral,
			Priority: model.PriorityLow,
			Message:  "Good match! Consider minor optimizations for better alignment",
			Action:   "Fine-tune keyword usage and ensure all relevant skills and experiences are clearly highlighted.",
		}
	default:
		return nil
	}
}
