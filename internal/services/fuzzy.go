package services

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
)

// TokenSetRatio computes a token-set fuzzy similarity between two strings in
// the range 0-100. Both inputs are lowercased and split into alphanumeric
// token sets; the score is the best sequence ratio among the sorted
// intersection string and the two intersection+difference combinations,
// which makes the measure insensitive to word order and duplicate tokens.
func TokenSetRatio(s1, s2 string) int {
	tokens1 := tokenSet(s1)
	tokens2 := tokenSet(s2)

	intersection, diff1, diff2 := partitionTokens(tokens1, tokens2)

	sortedIntersection := strings.Join(intersection, " ")
	combined1 := strings.TrimSpace(sortedIntersection + " " + strings.Join(diff1, " "))
	combined2 := strings.TrimSpace(sortedIntersection + " " + strings.Join(diff2, " "))

	best := sequenceRatio(sortedIntersection, combined1)
	if r := sequenceRatio(sortedIntersection, combined2); r > best {
		best = r
	}
	if r := sequenceRatio(combined1, combined2); r > best {
		best = r
	}

	return int(math.Round(best * 100))
}

// round2 rounds to two decimal places, the precision all scores are stored
// and reported with.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// tokenSet lowercases the input, splits it on non-alphanumeric runes and
// returns the sorted set of unique tokens.
func tokenSet(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(fields))
	var tokens []string
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}

	sort.Strings(tokens)
	return tokens
}

func partitionTokens(a, b []string) (intersection, onlyA, onlyB []string) {
	inB := make(map[string]struct{}, len(b))
	for _, t := range b {
		inB[t] = struct{}{}
	}
	inA := make(map[string]struct{}, len(a))
	for _, t := range a {
		inA[t] = struct{}{}
	}

	for _, t := range a {
		if _, ok := inB[t]; ok {
			intersection = append(intersection, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for _, t := range b {
		if _, ok := inA[t]; !ok {
			onlyB = append(onlyB, t)
		}
	}
	return intersection, onlyA, onlyB
}

// sequenceRatio is the difflib character-level similarity of two strings.
func sequenceRatio(a, b string) float64 {
	if a == "" && b == "" {
		return 0
	}
	return difflib.NewMatcher(splitChars(a), splitChars(b)).Ratio()
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}
