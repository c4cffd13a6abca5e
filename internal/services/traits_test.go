package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferTraitsFromJobText(t *testing.T) {
	traits := InferTraits("We need someone who enjoys teamwork and is detail-oriented.")

	assert.Equal(t, []string{"q1_teamwork", "q10_detail_orientation"}, traits)
}

func TestInferTraitsCaseInsensitive(t *testing.T) {
	traits := InferTraits("LEADERSHIP and CREATIVITY are valued.")

	assert.Contains(t, traits, "q3_leadership")
	assert.Contains(t, traits, "q8_creativity")
}

func TestInferTraitsNoKeywords(t *testing.T) {
	assert.Empty(t, InferTraits("We sell furniture."))
}

func TestTraitScoreAlignment(t *testing.T) {
	answers := map[string]int{
		"q1_teamwork":            5,
		"q10_detail_orientation": 3,
	}

	score := TraitScore(answers, []string{"q1_teamwork", "q10_detail_orientation"})
	assert.InDelta(t, 80.0, score, 1e-9)
}

func TestTraitScoreEmptyMatchedSet(t *testing.T) {
	answers := map[string]int{"q1_teamwork": 5}
	assert.Equal(t, 0.0, TraitScore(answers, nil))
}

func TestTraitScoreUnansweredCountsAsZero(t *testing.T) {
	score := TraitScore(map[string]int{}, []string{"q1_teamwork", "q15_impact"})
	assert.Equal(t, 0.0, score)
}

func TestTraitScoreBounds(t *testing.T) {
	answers := map[string]int{
		"q1_teamwork": 5,
		"q15_impact":  5,
	}

	score := TraitScore(answers, []string{"q1_teamwork", "q15_impact"})
	assert.InDelta(t, 100.0, score, 1e-9)
}

func TestTraitTaxonomyComplete(t *testing.T) {
	assert.Len(t, traitDefinitions, 15)
	for _, def := range traitDefinitions {
		assert.NotEmpty(t, def.Key)
		assert.NotEmpty(t, def.Label)
		assert.NotEmpty(t, def.Keywords)
	}
}

func TestHumanizeTraits(t *testing.T) {
	humanized := HumanizeTraits("Traits matched: q1_teamwork, q10_detail_orientation.")
	assert.Equal(t, "Traits matched: Teamwork, Attention to Detail.", humanized)
}
