// Package model contains domain models passed between layers.
package model

// Importance ranks how much a matched item contributes to a score.
type Importance string

// Importance levels, ordered high to low.
const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// Weight returns the scoring weight for the importance level.
func (i Importance) Weight() float64 {
	switch i {
	case ImportanceHigh:
		return 3
	case ImportanceLow:
		return 1
	default:
		return 2
	}
}

// Priority ranks suggestions for presentation.
type Priority string

// Suggestion priorities.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// SuggestionCategory names the area a suggestion applies to.
type SuggestionCategory string

// Suggestion categories.
const (
	CategorySkills         SuggestionCategory = "skills"
	CategoryExperience     SuggestionCategory = "experience"
	CategoryCertifications SuggestionCategory = "certifications"
	CategoryGeneral        SuggestionCategory = "general"
)

// SkillMatch reports whether a single job-required skill appears in the resume.
type SkillMatch struct {
	Skill      string     `json:"skill"`
	Matched    bool       `json:"matched"`
	Importance Importance `json:"importance"`
}

// MatchBreakdown carries the sub-scores feeding the overall score.
// All values are in [0,100].
type MatchBreakdown struct {
	SkillsScore        float64 `json:"skills_score"`
	ExperienceScore    float64 `json:"experience_score"`
	CertificationScore float64 `json:"certification_score"`
}

// ExperienceProfile is what the experience analyzer sees in one text.
// Years is nil when the text states no experience figure; that is distinct
// from an explicit zero.
type ExperienceProfile struct {
	Years     *int
	JobTitles []string
}

// ExperienceMatch compares the resume's experience profile against the job's.
type ExperienceMatch struct {
	RequiredYears *int     `json:"required_years"`
	FoundYears    *int     `json:"found_years"`
	Matched       bool     `json:"matched"`
	TitlesMatched []string `json:"job_titles_matched"`
	TitlesMissing []string `json:"missing_job_titles"`
}

// CertificationMatch reports one job-required certification.
type CertificationMatch struct {
	Name       string     `json:"certification"`
	Matched    bool       `json:"matched"`
	Importance Importance `json:"importance"`
}

// Suggestion is a single actionable recommendation.
type Suggestion struct {
	Category SuggestionCategory `json:"category"`
	Priority Priority           `json:"priority"`
	Message  string             `json:"suggestion"`
	Action   string             `json:"specific_action"`
}

// AnalysisResult is the immutable snapshot returned for one analysis run.
// Field names mirror the public JSON contract.
type AnalysisResult struct {
	AnalysisID          string               `json:"analysis_id"`
	OverallScore        float64              `json:"overall_score"`
	MatchBreakdown      MatchBreakdown       `json:"match_breakdown"`
	MatchedSkills       []SkillMatch         `json:"matched_skills"`
	MissingSkills       []string             `json:"missing_skills"`
	ExperienceAnalysis  ExperienceMatch      `json:"experience_analysis"`
	CertificationMatch  []CertificationMatch `json:"certification_analysis"`
	DetailedSuggestions []Suggestion         `json:"detailed_suggestions"`
	ATSKeywords         map[string]bool      `json:"ats_keywords"`
}
