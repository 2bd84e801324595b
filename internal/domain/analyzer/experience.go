// Package analyzer extracts experience and certification signals from free
// text using ordered pattern rules over fixed vocabularies.
package analyzer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/resumatch/resumatch/internal/domain/model"
)

// yearPatterns is the ordered rule list for years-of-experience extraction.
// Every pattern captures the year count in group 1; across all matches the
// maximum value wins, since resumes often restate experience in multiple
// phrasings and the most generous statement is preferred.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)[\+\s]*years?\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`(\d+)[\+\s]*yrs?\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`over\s*(\d+)\s*years?`),
	regexp.MustCompile(`more\s+than\s*(\d+)\s*years?`),
	regexp.MustCompile(`(\d+)\+\s*years?`),
}

// defaultJobTitles is the built-in title vocabulary.
var defaultJobTitles = []string{
	"software engineer", "software developer", "full stack developer",
	"frontend developer", "backend developer", "devops engineer",
	"data scientist", "data analyst", "machine learning engineer",
	"product manager", "project manager", "scrum master",
	"architect", "senior", "junior", "lead", "principal", "director",
	"manager", "consultant", "analyst", "specialist", "coordinator",
}

// Experience extracts years-of-experience and job-title mentions.
// Immutable after construction; safe for concurrent use.
type Experience struct {
	titles []string
}

// NewExperience builds the analyzer with a title vocabulary; nil or empty
// falls back to the built-in list.
func NewExperience(titles []string) *Experience {
	if len(titles) == 0 {
		titles = defaultJobTitles
	}
	clean := make([]string, 0, len(titles))
	seen := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		clean = append(clean, t)
	}
	return &Experience{titles: clean}
}

// Profile extracts the experience profile of one text. A text with no
// recognizable year statement yields Years == nil, which downstream scoring
// treats as "no years stated", not zero.
func (e *Experience) Profile(text string) model.ExperienceProfile {
	lower := strings.ToLower(text)

	var years *int
	for _, pattern := range yearPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			n, err := strconv.Atoi(match[1])
			if err != nil || n <= 0 {
				continue
			}
			if years == nil || n > *years {
				v := n
				years = &v
			}
		}
	}

	var found []string
	for _, title := range e.titles {
		if strings.Contains(lower, title) {
			found = append(found, title)
		}
	}

	return model.ExperienceProfile{Years: years, JobTitles: found}
}

// Match compares a resume profile against a job profile.
//
// Matching rule: when both years are known, matched = found >= required;
// when the job requires years but the resume states none, matched = false;
// when the job states no requirement, matched = true regardless.
func (e *Experience) Match(resume, job model.ExperienceProfile) model.ExperienceMatch {
	matched := true
	switch {
	case job.Years != nil && resume.Years != nil:
		matched = *resume.Years >= *job.Years
	case job.Years != nil:
		matched = false
	}

	resumeTitles := make(map[string]struct{}, len(resume.JobTitles))
	for _, t := range resume.JobTitles {
		resumeTitles[t] = struct{}{}
	}

	titlesMatched := []string{}
	titlesMissing := []string{}
	for _, t := range job.JobTitles {
		if _, ok := resumeTitles[t]; ok {
			titlesMatched = append(titlesMatched, t)
		} else {
			titlesMissing = append(titlesMissing, t)
		}
	}

	return model.ExperienceMatch{
		RequiredYears: job.Years,
		FoundYears:    resume.Years,
		Matched:       matched,
		TitlesMatched: titlesMatched,
		TitlesMissing: titlesMissing,
	}
}
