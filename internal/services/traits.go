package services

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

// The trait taxonomy is versioned data: 15 behavioral dimensions, each tied
// to one survey question and a keyword list used for inference.
//
//go:embed data/traits.json
var traitTaxonomyData []byte

type traitDefinition struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

type traitTaxonomy struct {
	Version int               `json:"version"`
	Traits  []traitDefinition `json:"traits"`
}

var traitDefinitions = loadTraitTaxonomy()

func loadTraitTaxonomy() []traitDefinition {
	var taxonomy traitTaxonomy
	if err := json.Unmarshal(traitTaxonomyData, &taxonomy); err != nil {
		panic(fmt.Sprintf("invalid embedded trait taxonomy: %v", err))
	}
	return taxonomy.Traits
}

// InferTraits tags free text with every trait key whose keyword list has at
// least one phrase present as a substring of the lowercased text. Categorical
// only: how often a keyword appears does not matter.
func InferTraits(text string) []string {
	text = strings.ToLower(text)

	var matched []string
	for _, def := range traitDefinitions {
		for _, keyword := range def.Keywords {
			if strings.Contains(text, keyword) {
				matched = append(matched, def.Key)
				break
			}
		}
	}
	return matched
}

// TraitScore measures how strongly the candidate's survey answers align with
// the matched trait keys: sum of answers over the maximum attainable
// (5 per matched key), as a 0-100 percentage. Unanswered keys count as 0.
func TraitScore(answers map[string]int, matchedKeys []string) float64 {
	if len(matchedKeys) == 0 {
		return 0.0
	}

	total := 0
	for _, key := range matchedKeys {
		total += answers[key]
	}

	maxScore := len(matchedKeys) * 5
	return round2(float64(total) / float64(maxScore) * 100)
}

// HumanizeTraits replaces raw trait keys in display text with their labels
// (q1_teamwork -> "Teamwork"). Stored explanations keep the raw keys.
func HumanizeTraits(text string) string {
	for _, def := range traitDefinitions {
		text = strings.ReplaceAll(text, def.Key, def.Label)
	}
	return text
}
