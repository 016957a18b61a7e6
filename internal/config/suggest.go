package config

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

// SimilarValues finds known values that are similar to the given value.
// Returns up to maxResults values sorted by similarity (most similar
// first). Values with an edit distance greater than 3 are not considered
// similar enough to suggest.
func SimilarValues(value string, known []string, maxResults int) []string {
	type scored struct {
		value string
		score int // Lower is better
	}

	var candidates []scored
	for _, k := range known {
		distance := levenshtein.ComputeDistance(value, k)
		if distance <= 3 {
			candidates = append(candidates, scored{k, distance})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score < candidates[j].score
		}
		return candidates[i].value < candidates[j].value
	})

	result := make([]string, 0, maxResults)
	for i := 0; i < len(candidates) && i < maxResults; i++ {
		result = append(result, candidates[i].value)
	}
	return result
}

// SuggestionText renders a "did you mean" clause for an unknown value, or
// an empty string when nothing in the known set is close enough.
func SuggestionText(value string, known []string) string {
	suggestions := SimilarValues(value, known, 3)
	if len(suggestions) == 0 {
		return ""
	}
	if len(suggestions) == 1 {
		return fmt.Sprintf(" Did you mean '%s'?", suggestions[0])
	}
	msg := " Did you mean one of these?"
	for _, s := range suggestions {
		msg += fmt.Sprintf(" '%s'", s)
	}
	return msg
}
