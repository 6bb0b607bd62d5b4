package match

import (
	"cmp"
	"slices"
)

// Candidate is a known name scored against what was asked for.
type Candidate struct {
	Name  string
	Score float64 // IdentSimilarity, 0-1
}

// CandidateList is sorted by score descending, then by name.
type CandidateList []Candidate

// Rank scores every name against target.
func Rank(target string, names []string) CandidateList {
	candidates := make(CandidateList, 0, len(names))
	for _, name := range names {
		candidates = append(candidates, Candidate{Name: name, Score: IdentSimilarity(target, name)})
	}

	slices.SortFunc(candidates, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return candidates
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns candidates with score at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// IsAmbiguous returns true if the top two candidates are within threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].Score-c[1].Score < threshold
}

// DefaultThreshold is the similarity Closest requires by default.
const DefaultThreshold = 0.7

// Closest returns the name most similar to target if it scores at least
// minScore and no other name ties with it.
func Closest(target string, names []string, minScore float64) (string, bool) {
	ranked := Rank(target, names)

	best := ranked.Best()
	if best == nil || best.Score < minScore || ranked.IsAmbiguous(1e-9) {
		return "", false
	}

	return best.Name, true
}
