package complete

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(results []MatchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Candidate.Value
	}
	return out
}

func TestEngineMatch_Substring(t *testing.T) {
	candidates := Words("administrator", "dev-readonly", "breakglass-prod").Candidates()

	results := NewEngine().Match(candidates, "e")

	assert.Equal(t, []string{"dev-readonly", "breakglass-prod"}, values(results))
	assert.Equal(t, Normal, results[0].Emphasis)
	assert.Equal(t, 1, results[0].Start)
	assert.Equal(t, []int{1}, results[0].Positions)
	assert.Equal(t, Warning, results[1].Emphasis)
	assert.Equal(t, 2, results[1].Start)

	results = NewEngine().Match(candidates, "d")
	assert.Equal(t, []string{"administrator", "dev-readonly", "breakglass-prod"}, values(results))
	assert.Equal(t, []EmphasisClass{Warning, Normal, Warning},
		[]EmphasisClass{results[0].Emphasis, results[1].Emphasis, results[2].Emphasis})
}

func TestEngineMatch_EmptyFragment(t *testing.T) {
	candidates := Words("c", "a", "b").Candidates()

	results := NewEngine().Match(candidates, "")

	assert.Equal(t, []string{"c", "a", "b"}, values(results))
	for _, r := range results {
		assert.Equal(t, 0, r.Start)
		assert.Empty(t, r.Positions)
	}
}

func TestEngineMatch_Options(t *testing.T) {
	candidates := Words("Prod-admin", "staging", "prod-readonly", "my-prod").Candidates()

	tests := []struct {
		name     string
		engine   Engine
		fragment string
		expected []string
	}{
		{"case sensitive middle", Engine{MatchMiddle: true}, "prod", []string{"prod-readonly", "my-prod"}},
		{"case sensitive prefix", Engine{}, "prod", []string{"prod-readonly"}},
		{"ignore case middle", Engine{MatchMiddle: true, IgnoreCase: true}, "PROD", []string{"Prod-admin", "prod-readonly", "my-prod"}},
		{"ignore case prefix", Engine{IgnoreCase: true}, "prod", []string{"Prod-admin", "prod-readonly"}},
		{"no match", NewEngine(), "xyz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, values(tt.engine.Match(candidates, tt.fragment)))
		})
	}
}

func TestEngineMatch_IgnoreCasePositions(t *testing.T) {
	results := Engine{MatchMiddle: true, IgnoreCase: true}.Match(Words("my-PROD").Candidates(), "prod")

	require.Len(t, results, 1)
	assert.Equal(t, 3, results[0].Start)
	assert.Equal(t, []int{3, 4, 5, 6}, results[0].Positions)
	assert.True(t, results[0].Matched(4))
	assert.False(t, results[0].Matched(2))
}

func TestEngineMatch_Stable(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("abcde-")
	randomWord := func(n int) string {
		r := make([]rune, n)
		for i := range r {
			r[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(r)
	}

	engines := []Engine{NewEngine(), {}, {IgnoreCase: true, MatchMiddle: true}}
	for round := 0; round < 200; round++ {
		var words []string
		for i := 0; i < 1+rng.Intn(20); i++ {
			words = append(words, randomWord(1+rng.Intn(8)))
		}
		candidates := Words(words...).Candidates()
		fragment := randomWord(rng.Intn(3))

		for _, e := range engines {
			first := e.Match(candidates, fragment)
			assert.Equal(t, first, e.Match(candidates, fragment), "matching must be idempotent")

			// results are a subsequence of the candidates
			next := 0
			for _, r := range first {
				for next < len(candidates) && candidates[next] != r.Candidate {
					next++
				}
				require.Less(t, next, len(candidates), "result %q out of order", r.Candidate.Value)
				next++
			}
		}
	}
}

func TestEngineFragment(t *testing.T) {
	tests := []struct {
		name     string
		token    Token
		text     string
		cursor   int
		expected string
	}{
		{"sentence whole text", TokenSentence, "dev readonly", 12, "dev readonly"},
		{"sentence before cursor", TokenSentence, "dev readonly", 3, "dev"},
		{"word alnum", TokenWord, "prod-read", 9, "read"},
		{"word punctuation", TokenWord, "prod--", 6, "--"},
		{"word trailing space", TokenWord, "prod ", 5, ""},
		{"big word", TokenBigWord, "use prod-read", 13, "prod-read"},
		{"big word trailing space", TokenBigWord, "prod-read ", 10, ""},
		{"cursor past end", TokenSentence, "dev", 10, "dev"},
		{"negative cursor", TokenSentence, "dev", -1, ""},
		{"unicode cursor", TokenSentence, "café-x", 4, "café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Engine{Token: tt.token}
			assert.Equal(t, tt.expected, e.Fragment(tt.text, tt.cursor))
		})
	}
}

func TestParseToken(t *testing.T) {
	for _, s := range []string{"", "sentence", "word", "WORD"} {
		_, err := ParseToken(s)
		assert.NoError(t, err, s)
	}

	tok, _ := ParseToken("")
	assert.Equal(t, TokenSentence, tok)

	_, err := ParseToken("Word")
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		cursor     int
		fragment   string
		value      string
		wantText   string
		wantCursor int
	}{
		{"sentence", "dev", 3, "dev", "dev-readonly", "dev-readonly", 12},
		{"word in the middle", "use pro now", 7, "pro", "prod", "use prod now", 8},
		{"empty fragment inserts", "ab", 1, "", "X", "aXb", 2},
		{"stale fragment inserts at cursor", "ab", 2, "zz", "X", "abX", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := MatchResult{Candidate: Candidate{Value: tt.value}, Fragment: tt.fragment}
			text, cursor := Apply(tt.text, tt.cursor, r)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantCursor, cursor)
		})
	}
}

func TestWordMatcher(t *testing.T) {
	m := NewWordMatcher(Words("eu-west-1", "us-east-1", "us-west-2"), NewEngine())

	assert.Equal(t, []string{"eu-west-1", "us-west-2"}, values(m.Complete("west", 4)))
	assert.Equal(t, []string{"us-east-1", "us-west-2"}, values(m.Complete("us-west", 2)))
	assert.Len(t, m.Complete("", 0), 3)
}
