// Package scoring combines skill, experience, and certification sub-scores
// into a single weighted overall score, and produces the informational ATS
// keyword report.
package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/resumatch/resumatch/internal/domain/model"
	"github.com/resumatch/resumatch/internal/domain/similarity"
	"github.com/resumatch/resumatch/internal/domain/taxonomy"
)

// Scoring policy constants.
const (
	maxScore = 100.0

	// Experience point split: years satisfy up to 60 points, titles up to 40.
	yearsPoints  = 60.0
	titlesPoints = 40.0

	// noCertRequiredScore applies when the job names no certifications;
	// absence of a requirement is a mild positive, not a penalty.
	noCertRequiredScore = 80.0

	// minKeywordLength filters short JD content words out of the ATS report.
	minKeywordLength = 4
)

// defaultActionVerbs is the fixed ATS action-verb list.
var defaultActionVerbs = []string{
	"managed", "developed", "implemented", "designed", "created", "led", "improved",
	"optimized", "analyzed", "collaborated", "achieved", "delivered", "maintained",
	"coordinated", "supervised", "trained", "mentored", "presented", "negotiated",
}

// Weights holds the overall-score mix. A policy constant, not derived from data.
type Weights struct {
	Skills         float64
	Experience     float64
	Certifications float64
}

// DefaultWeights returns the canonical 0.5/0.3/0.2 mix.
func DefaultWeights() Weights {
	return Weights{Skills: 0.5, Experience: 0.3, Certifications: 0.2}
}

// Aggregator computes category scores and the weighted overall score.
// Immutable after construction; safe for concurrent use.
type Aggregator struct {
	weights         Weights
	actionVerbs     []string
	stopWords       *similarity.StopWordSet
	topKeywordCount int
}

// NewAggregator creates an aggregator with default policy, overridable via options.
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{
		weights:         DefaultWeights(),
		actionVerbs:     defaultActionVerbs,
		stopWords:       similarity.DefaultStopWords(),
		topKeywordCount: 10,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SkillMatches derives the per-skill match list and the missing-skill list
// from both extractions. The job description defines the expected set: every
// JD skill appears exactly once, marked matched when the resume carries it.
// Categories are walked in sorted order so output is deterministic.
func (a *Aggregator) SkillMatches(resume, job taxonomy.ExtractedSkills, tax *taxonomy.Taxonomy) ([]model.SkillMatch, []string) {
	categories := make([]string, 0, len(job))
	for category := range job {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	matches := []model.SkillMatch{}
	missing := []string{}
	for _, category := range categories {
		inResume := make(map[string]struct{}, len(resume[category]))
		for _, skill := range resume[category] {
			inResume[skill] = struct{}{}
		}
		importance := tax.Importance(category)
		for _, skill := range job[category] {
			_, matched := inResume[skill]
			matches = append(matches, model.SkillMatch{
				Skill:      skill,
				Matched:    matched,
				Importance: importance,
			})
			if !matched {
				missing = append(missing, skill)
			}
		}
	}
	return matches, missing
}

// SkillsScore is the importance-weighted fraction of matched skills over all
// skills the job expects, scaled to [0,100]. A job with no recognizable
// skills scores 0.0: no claims can be verified.
func (a *Aggregator) SkillsScore(matches []model.SkillMatch) float64 {
	var totalWeight, matchedWeight float64
	for _, m := range matches {
		w := m.Importance.Weight()
		totalWeight += w
		if m.Matched {
			matchedWeight += w
		}
	}
	if totalWeight == 0 {
		return 0.0
	}
	return clamp(matchedWeight / totalWeight * maxScore)
}

// ExperienceScore awards up to 60 points for the years requirement and up to
// 40 for required-title coverage, capped at 100. Partial year credit is
// proportional to found/required when both are known.
func (a *Aggregator) ExperienceScore(m model.ExperienceMatch) float64 {
	score := 0.0

	switch {
	case m.Matched:
		score += yearsPoints
	case m.FoundYears != nil && m.RequiredYears != nil && *m.RequiredYears > 0:
		ratio := float64(*m.FoundYears) / float64(*m.RequiredYears)
		score += math.Min(yearsPoints, ratio*yearsPoints)
	}

	totalTitles := len(m.TitlesMatched) + len(m.TitlesMissing)
	if totalTitles > 0 {
		score += float64(len(m.TitlesMatched)) / float64(totalTitles) * titlesPoints
	}

	return clamp(score)
}

// CertificationScore mirrors the skills formula over required
// certifications; a job requiring none scores the defined fallback.
func (a *Aggregator) CertificationScore(matches []model.CertificationMatch) float64 {
	if len(matches) == 0 {
		return noCertRequiredScore
	}
	var totalWeight, matchedWeight float64
	for _, m := range matches {
		w := m.Importance.Weight()
		totalWeight += w
		if m.Matched {
			matchedWeight += w
		}
	}
	if totalWeight == 0 {
		return noCertRequiredScore
	}
	return clamp(matchedWeight / totalWeight * maxScore)
}

// Overall mixes the sub-scores with the configured weights, rounded to one
// decimal place.
func (a *Aggregator) Overall(b model.MatchBreakdown) float64 {
	overall := b.SkillsScore*a.weights.Skills +
		b.ExperienceScore*a.weights.Experience +
		b.CertificationScore*a.weights.Certifications
	return round1(clamp(overall))
}

// ATSKeywords reports boolean presence in the resume for the fixed action
// verbs plus the top JD content words by frequency. Informational only;
// never scored.
func (a *Aggregator) ATSKeywords(resumeText, jobText string) map[string]bool {
	resumeLower := strings.ToLower(resumeText)

	report := make(map[string]bool, len(a.actionVerbs)+a.topKeywordCount)
	for _, verb := range a.actionVerbs {
		report[verb] = strings.Contains(resumeLower, verb)
	}
	for _, word := range a.topJobKeywords(jobText) {
		report[word] = strings.Contains(resumeLower, word)
	}
	return report
}

// topJobKeywords extracts the most frequent JD content words, excluding stop
// words and words of minKeywordLength or fewer characters. Ties break
// lexicographically so the selection is deterministic.
func (a *Aggregator) topJobKeywords(jobText string) []string {
	counts := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(jobText)) {
		word = strings.Trim(word, ".,;:()[]{}\"'!?")
		if len(word) <= minKeywordLength || a.stopWords.Contains(word) || !isAlpha(word) {
			continue
		}
		counts[word]++
	}

	words := make([]string, 0, len(counts))
	for word := range counts {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})
	if len(words) > a.topKeywordCount {
		words = words[:a.topKeywordCount]
	}
	return words
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return s != ""
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(maxScore, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
