package analyzer

import (
	"strings"

	"github.com/resumatch/resumatch/internal/domain/model"
)

// defaultCertifications is the built-in certification phrase vocabulary.
var defaultCertifications = []string{
	"aws certified", "azure certified", "google cloud certified",
	"pmp", "cissp", "cisa", "cism", "comptia", "cisco certified",
	"microsoft certified", "oracle certified", "salesforce certified",
	"scrum master", "safe", "itil", "six sigma",
}

// highImportanceKeywords marks cloud and project-management certifications
// as high importance.
var highImportanceKeywords = []string{"aws", "azure", "google", "pmp"}

// credential is one canonical certification with its detection probes.
// Job postings phrase vendor credentials as either "X certified" or
// "X certification"; both probe forms resolve to the same canonical name.
type credential struct {
	name   string
	probes []string
}

// Certification detects known certification phrases. Immutable after
// construction; safe for concurrent use.
type Certification struct {
	vocab []credential
}

// NewCertification builds the analyzer with a phrase vocabulary; nil or
// empty falls back to the built-in list.
func NewCertification(vocab []string) *Certification {
	if len(vocab) == 0 {
		vocab = defaultCertifications
	}
	clean := make([]credential, 0, len(vocab))
	seen := make(map[string]struct{}, len(vocab))
	for _, c := range vocab {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		clean = append(clean, credential{name: c, probes: probesFor(c)})
	}
	return &Certification{vocab: clean}
}

// probesFor expands a vocabulary term into its detection probes.
func probesFor(term string) []string {
	probes := []string{term}
	if strings.HasSuffix(term, "certified") {
		probes = append(probes, strings.TrimSuffix(term, "certified")+"certification")
	}
	return probes
}

// Extract returns the certification names present in text, in vocabulary order.
func (c *Certification) Extract(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, cert := range c.vocab {
		for _, probe := range cert.probes {
			if strings.Contains(lower, probe) {
				found = append(found, cert.name)
				break
			}
		}
	}
	return found
}

// Match reports, for every certification the job requires, whether the
// resume carries it and how important it is.
func (c *Certification) Match(resumeText, jobText string) []model.CertificationMatch {
	resumeCerts := make(map[string]struct{})
	for _, cert := range c.Extract(resumeText) {
		resumeCerts[cert] = struct{}{}
	}

	jobCerts := c.Extract(jobText)
	matches := make([]model.CertificationMatch, 0, len(jobCerts))
	for _, cert := range jobCerts {
		_, matched := resumeCerts[cert]
		matches = append(matches, model.CertificationMatch{
			Name:       cert,
			Matched:    matched,
			Importance: certImportance(cert),
		})
	}
	return matches
}

func certImportance(cert string) model.Importance {
	for _, kw := range highImportanceKeywords {
		if strings.Contains(cert, kw) {
			return model.ImportanceHigh
		}
	}
	return model.ImportanceMedium
}
