package services

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// The skill vocabulary is versioned data, not code. Extending it means
// editing the JSON, nothing else.
//
//go:embed data/skills.json
var skillVocabularyData []byte

type skillVocabulary struct {
	Version int      `json:"version"`
	Skills  []string `json:"skills"`
}

type skillPattern struct {
	name string
	re   *regexp.Regexp
}

var skillPatterns = loadSkillVocabulary()

func loadSkillVocabulary() []skillPattern {
	var vocab skillVocabulary
	if err := json.Unmarshal(skillVocabularyData, &vocab); err != nil {
		panic(fmt.Sprintf("invalid embedded skill vocabulary: %v", err))
	}

	patterns := make([]skillPattern, 0, len(vocab.Skills))
	for _, skill := range vocab.Skills {
		patterns = append(patterns, skillPattern{
			name: skill,
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`),
		})
	}
	return patterns
}

// ExtractSkills returns the vocabulary entries found as whole words in the
// text, in vocabulary order, joined with commas. Sentinel if none matched.
func ExtractSkills(text string) string {
	var found []string
	for _, p := range skillPatterns {
		if p.re.MatchString(text) {
			found = append(found, p.name)
		}
	}

	if len(found) == 0 {
		return NotFound
	}
	return strings.Join(found, ", ")
}

// SplitCommaList turns a stored comma-separated field into a trimmed,
// blank-filtered list. The sentinel yields an empty list.
func SplitCommaList(s string) []string {
	if s == "" || s == NotFound {
		return nil
	}

	var items []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

type SkillMatcherService interface {
	Match(cvSkills, jobSkills []string) (float64, []string)
}

type skillMatcherService struct {
	threshold int
}

func NewSkillMatcherService(threshold int) SkillMatcherService {
	return &skillMatcherService{threshold: threshold}
}

// Match scores the fuzzy overlap between a candidate's skills and a job's
// required skills. Every required skill contributes its best candidate-skill
// ratio when that ratio clears the threshold, and 0 otherwise; the final
// score is the mean over all required skills, so unmatched requirements pull
// the average down. Ties on the best ratio keep the first candidate skill in
// list order.
func (m *skillMatcherService) Match(cvSkills, jobSkills []string) (float64, []string) {
	if len(cvSkills) == 0 || len(jobSkills) == 0 {
		return 0.0, nil
	}

	var total float64
	var matched []string

	for _, jobSkill := range jobSkills {
		bestScore := 0
		bestSkill := ""

		for _, cvSkill := range cvSkills {
			score := TokenSetRatio(strings.ToLower(jobSkill), strings.ToLower(cvSkill))
			if score > bestScore {
				bestScore = score
				bestSkill = cvSkill
			}
		}

		if bestScore >= m.threshold && bestSkill != "" {
			matched = append(matched, bestSkill)
			total += float64(bestScore)
		}
	}

	return round2(total / float64(len(jobSkills))), matched
}
