package complete

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// FuzzyMatcher matches candidates whose value contains the characters of the
// fragment in order, ignoring case. Results keep the source order.
type FuzzyMatcher struct {
	Source Source
	Engine Engine
}

// NewFuzzyMatcher returns a fuzzy matcher over source. Only the Token and
// Policy of engine are used.
func NewFuzzyMatcher(source Source, engine Engine) *FuzzyMatcher {
	return &FuzzyMatcher{Source: source, Engine: engine}
}

func (m *FuzzyMatcher) Complete(text string, cursor int) []MatchResult {
	return m.Match(m.Source.Candidates(), m.Engine.Fragment(text, cursor))
}

// Match filters candidates by subsequence.
func (m *FuzzyMatcher) Match(candidates []Candidate, fragment string) []MatchResult {
	if fragment == "" {
		return m.Engine.Match(candidates, "")
	}

	values := make([]string, len(candidates))
	for i, c := range candidates {
		values[i] = c.Value
	}

	found := fuzzy.Find(fragment, values)
	sort.SliceStable(found, func(i, j int) bool { return found[i].Index < found[j].Index })

	results := make([]MatchResult, 0, len(found))
	for _, f := range found {
		c := candidates[f.Index]
		results = append(results, MatchResult{
			Candidate: c,
			Fragment:  fragment,
			Start:     f.MatchedIndexes[0],
			Positions: f.MatchedIndexes,
			Emphasis:  m.Engine.classify(c.Value),
		})
	}
	return results
}
