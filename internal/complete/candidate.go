// Package complete filters fixed candidate lists against typed input and
// classifies candidates for display.
package complete

import (
	"slices"

	"ars/internal/aws"
)

// Candidate is a selectable value with an optional display annotation.
type Candidate struct {
	Value string
	Meta  string
}

// Source supplies the ordered candidates for a prompt.
type Source interface {
	Candidates() []Candidate
}

// StaticSource is a fixed candidate list.
type StaticSource []Candidate

func (s StaticSource) Candidates() []Candidate { return slices.Clone(s) }

// Words builds a StaticSource without annotations.
func Words(words ...string) StaticSource {
	s := make(StaticSource, len(words))
	for i, w := range words {
		s[i] = Candidate{Value: w}
	}
	return s
}

// ProfileSource lists the profiles of cfg, annotated with the kind of
// credentials they hold.
func ProfileSource(cfg *aws.ProfileConfig) Source {
	profiles := cfg.Profiles()
	s := make(StaticSource, len(profiles))
	for i, p := range profiles {
		meta := "static"
		if p.HasSessionToken() {
			meta = "session"
		}
		s[i] = Candidate{Value: p.Name, Meta: meta}
	}
	return s
}

// RegionSource lists the suggested regions with their display names.
func RegionSource() Source {
	s := make(StaticSource, len(aws.Regions))
	for i, r := range aws.Regions {
		s[i] = Candidate{Value: r.Code, Meta: r.Name}
	}
	return s
}
