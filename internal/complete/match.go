package complete

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token selects how much of the text before the cursor is matched.
type Token string

const (
	// TokenSentence matches the whole text before the cursor.
	TokenSentence Token = "sentence"
	// TokenWord matches the trailing run of word characters, or of punctuation.
	TokenWord Token = "word"
	// TokenBigWord matches the trailing run of non-whitespace characters.
	TokenBigWord Token = "WORD"
)

var (
	wordRe    = regexp.MustCompile(`(?:[a-zA-Z0-9_]+|[^a-zA-Z0-9_\s]+)$`)
	bigWordRe = regexp.MustCompile(`\S+$`)
)

// ParseToken converts a config value to a Token.
func ParseToken(s string) (Token, error) {
	switch Token(s) {
	case "", TokenSentence:
		return TokenSentence, nil
	case TokenWord, TokenBigWord:
		return Token(s), nil
	}
	return "", fmt.Errorf("unknown match token %q (expected sentence, word or WORD)", s)
}

// MatchResult is a candidate that matched a fragment.
type MatchResult struct {
	Candidate Candidate
	Fragment  string
	// Start is the byte offset of the first matched character.
	Start int
	// Positions holds the byte offsets of every matched character.
	Positions []int
	Emphasis  EmphasisClass
}

// Matched reports whether the character starting at byte offset i was matched.
func (r MatchResult) Matched(i int) bool {
	for _, p := range r.Positions {
		if p == i {
			return true
		}
		if p > i {
			return false
		}
	}
	return false
}

// CandidateMatcher produces the matches for a buffer and a cursor position,
// counted in runes.
type CandidateMatcher interface {
	Complete(text string, cursor int) []MatchResult
}

// Engine filters candidates by substring or prefix. The zero value matches
// prefixes case-sensitively against the whole text; use NewEngine for the
// default substring behaviour.
type Engine struct {
	IgnoreCase  bool
	MatchMiddle bool
	Token       Token
	Policy      Classifier
}

// NewEngine returns a case-sensitive substring engine over the whole text.
func NewEngine() Engine {
	return Engine{MatchMiddle: true, Token: TokenSentence, Policy: DefaultPolicy}
}

// Fragment extracts the part of text before cursor that is matched.
func (e Engine) Fragment(text string, cursor int) string {
	before := beforeCursor(text, cursor)

	switch e.Token {
	case TokenWord, TokenBigWord:
		last, _ := utf8.DecodeLastRuneInString(before)
		if before == "" || unicode.IsSpace(last) {
			return ""
		}
		if e.Token == TokenWord {
			return wordRe.FindString(before)
		}
		return bigWordRe.FindString(before)
	default:
		return before
	}
}

// Match returns the candidates containing fragment, in their original order.
// An empty fragment matches every candidate.
func (e Engine) Match(candidates []Candidate, fragment string) []MatchResult {
	results := make([]MatchResult, 0, len(candidates))
	for _, c := range candidates {
		start, end, ok := e.find(c.Value, fragment)
		if !ok {
			continue
		}
		results = append(results, MatchResult{
			Candidate: c,
			Fragment:  fragment,
			Start:     start,
			Positions: runeOffsets(c.Value, start, end),
			Emphasis:  e.classify(c.Value),
		})
	}
	return results
}

func (e Engine) find(value, fragment string) (start, end int, ok bool) {
	if fragment == "" {
		return 0, 0, true
	}

	if !e.IgnoreCase {
		if !e.MatchMiddle {
			return 0, len(fragment), strings.HasPrefix(value, fragment)
		}
		i := strings.Index(value, fragment)
		return i, i + len(fragment), i >= 0
	}

	for i := range value {
		if n, ok := prefixFold(value[i:], fragment); ok {
			return i, i + n, true
		}
		if !e.MatchMiddle {
			break
		}
	}
	return 0, 0, false
}

func (e Engine) classify(value string) EmphasisClass {
	if e.Policy == nil {
		return DefaultPolicy.Classify(value)
	}
	return e.Policy.Classify(value)
}

// prefixFold reports whether s starts with prefix under Unicode case folding
// and returns the byte length of the matching part of s.
func prefixFold(s, prefix string) (int, bool) {
	n := utf8.RuneCountInString(prefix)
	end := 0
	for i := 0; i < n; i++ {
		if end >= len(s) {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return end, strings.EqualFold(s[:end], prefix)
}

func runeOffsets(s string, start, end int) []int {
	if start >= end {
		return nil
	}
	var offsets []int
	for i := range s[start:end] {
		offsets = append(offsets, start+i)
	}
	return offsets
}

func beforeCursor(text string, cursor int) string {
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	return string(runes[:cursor])
}

// Apply replaces the fragment before cursor with the candidate of r and
// returns the new text and cursor.
func Apply(text string, cursor int, r MatchResult) (string, int) {
	runes := []rune(text)
	if cursor < 0 || cursor > len(runes) {
		cursor = len(runes)
	}
	start := cursor - utf8.RuneCountInString(r.Fragment)
	if start < 0 || string(runes[start:cursor]) != r.Fragment {
		start = cursor
	}

	value := []rune(r.Candidate.Value)
	out := make([]rune, 0, len(runes)-(cursor-start)+len(value))
	out = append(out, runes[:start]...)
	out = append(out, value...)
	out = append(out, runes[cursor:]...)
	return string(out), start + len(value)
}

// WordMatcher matches a Source with an Engine.
type WordMatcher struct {
	Source Source
	Engine Engine
}

// NewWordMatcher returns a matcher over source.
func NewWordMatcher(source Source, engine Engine) *WordMatcher {
	return &WordMatcher{Source: source, Engine: engine}
}

func (m *WordMatcher) Complete(text string, cursor int) []MatchResult {
	return m.Engine.Match(m.Source.Candidates(), m.Engine.Fragment(text, cursor))
}
