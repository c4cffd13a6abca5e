package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenSetRatioIdenticalStrings(t *testing.T) {
	assert.Equal(t, 100, TokenSetRatio("python", "python"))
	assert.Equal(t, 100, TokenSetRatio("Python", "python"))
}

func TestTokenSetRatioIgnoresWordOrder(t *testing.T) {
	assert.Equal(t, 100, TokenSetRatio("react native", "Native React"))
}

func TestTokenSetRatioDissimilarStaysLow(t *testing.T) {
	score := TokenSetRatio("django", "python")
	assert.Less(t, score, 45, "dissimilar skills must stay below the match threshold")
}

func TestTokenSetRatioPartialOverlap(t *testing.T) {
	score := TokenSetRatio("unit testing", "integration testing")
	assert.Greater(t, score, 0)
	assert.LessOrEqual(t, score, 100)
}

func TestTokenSetRatioEmptyInputs(t *testing.T) {
	assert.Equal(t, 0, TokenSetRatio("", ""))
	assert.Equal(t, 0, TokenSetRatio("python", ""))
}

func TestTokenSetRatioBounds(t *testing.T) {
	pairs := [][2]string{
		{"Go", "Golang"},
		{"PostgreSQL", "SQL"},
		{"machine learning", "deep learning"},
		{"C++", "C#"},
	}

	for _, pair := range pairs {
		score := TokenSetRatio(pair[0], pair[1])
		assert.GreaterOrEqual(t, score, 0, "pair %v", pair)
		assert.LessOrEqual(t, score, 100, "pair %v", pair)
	}
}
