package complete

import "strings"

// EmphasisClass is the display category of a candidate.
type EmphasisClass int

const (
	Normal EmphasisClass = iota
	Warning
)

func (c EmphasisClass) String() string {
	switch c {
	case Warning:
		return "warning"
	default:
		return "normal"
	}
}

// Classifier assigns an EmphasisClass to a candidate value.
type Classifier interface {
	Classify(candidate string) EmphasisClass
}

// Policy flags candidates that contain any of Patterns, case-sensitively.
type Policy struct {
	Patterns []string
}

// DefaultPatterns mark elevated-access profiles.
var DefaultPatterns = []string{"administrator", "breakglass"}

// DefaultPolicy uses DefaultPatterns.
var DefaultPolicy = Policy{Patterns: DefaultPatterns}

func (p Policy) Classify(candidate string) EmphasisClass {
	for _, pattern := range p.Patterns {
		if pattern != "" && strings.Contains(candidate, pattern) {
			return Warning
		}
	}
	return Normal
}

// Classify applies DefaultPolicy.
func Classify(candidate string) EmphasisClass {
	return DefaultPolicy.Classify(candidate)
}
