package quiz

import (
	"math"
	"strings"
	"unicode/utf8"
)

// MatchOptions holds the tunable constants of the matcher. The defaults were
// chosen empirically.
type MatchOptions struct {
	// ToleranceRatio scales the allowed edit distance with candidate length.
	ToleranceRatio float64
	// MinTolerance and MaxTolerance bound the allowed edit distance.
	MinTolerance int
	MaxTolerance int
	// PrefixMinLength gates the prefix and token-prefix rules.
	PrefixMinLength int
	// ContainsMinLength gates the substring rule.
	ContainsMinLength int
}

// DefaultMatchOptions returns the standard tolerances.
func DefaultMatchOptions() MatchOptions {
	return MatchOptions{
		ToleranceRatio:    0.15,
		MinTolerance:      1,
		MaxTolerance:      3,
		PrefixMinLength:   4,
		ContainsMinLength: 6,
	}
}

// Tolerance returns the edit distance accepted for a candidate of the given
// rune length: floor(ratio*length) clamped to [MinTolerance, MaxTolerance].
func (o MatchOptions) Tolerance(candidateLen int) int {
	t := int(math.Floor(o.ToleranceRatio * float64(candidateLen)))
	return max(o.MinTolerance, min(o.MaxTolerance, t))
}

// Rule is one accept heuristic. Input and candidate are both normalized and
// non-empty.
type Rule struct {
	Name  string
	Match func(input, candidate string, opts MatchOptions) bool
}

// Rules is the decision table of the matcher, strictest first.
var Rules = []Rule{
	{Name: "exact", Match: matchExact},
	{Name: "edit-distance", Match: matchEditDistance},
	{Name: "prefix", Match: matchPrefix},
	{Name: "token", Match: matchToken},
	{Name: "token-prefix", Match: matchTokenPrefix},
	{Name: "contains", Match: matchContains},
}

func matchExact(input, candidate string, _ MatchOptions) bool {
	return input == candidate
}

func matchEditDistance(input, candidate string, opts MatchOptions) bool {
	return Distance(input, candidate) <= opts.Tolerance(utf8.RuneCountInString(candidate))
}

func matchPrefix(input, candidate string, opts MatchOptions) bool {
	return utf8.RuneCountInString(input) >= opts.PrefixMinLength && strings.HasPrefix(candidate, input)
}

func matchToken(input, candidate string, _ MatchOptions) bool {
	for _, tok := range strings.Split(candidate, " ") {
		if tok == input {
			return true
		}
	}
	return false
}

func matchTokenPrefix(input, candidate string, opts MatchOptions) bool {
	if utf8.RuneCountInString(input) < opts.PrefixMinLength {
		return false
	}
	for _, tok := range strings.Split(candidate, " ") {
		if strings.HasPrefix(tok, input) {
			return true
		}
	}
	return false
}

func matchContains(input, candidate string, opts MatchOptions) bool {
	return utf8.RuneCountInString(input) >= opts.ContainsMinLength && strings.Contains(candidate, input)
}

// Match describes why an input was accepted.
type Match struct {
	Rule      string
	Candidate string
}

// Matcher decides whether free text is an acceptable answer.
type Matcher struct {
	opts MatchOptions
}

// NewMatcher creates a matcher with the given options.
func NewMatcher(opts MatchOptions) *Matcher {
	return &Matcher{opts: opts}
}

// Options returns the matcher's options.
func (m *Matcher) Options() MatchOptions {
	return m.opts
}

// Accepts reports whether input matches the correct display string or one of
// the aliases.
func (m *Matcher) Accepts(input, correct string, aliases []string) bool {
	_, ok := m.Match(input, correct, aliases)
	return ok
}

// Match returns the first rule, in table order, that accepts input against any
// candidate. Candidates are the correct string, the aliases and the
// qualifier-stripped variant of each.
func (m *Matcher) Match(input, correct string, aliases []string) (Match, bool) {
	in := Normalize(input)
	if in == "" {
		return Match{}, false
	}

	candidates := candidateSet(correct, aliases)
	for _, rule := range Rules {
		for _, cand := range candidates {
			if rule.Match(in, cand, m.opts) {
				return Match{Rule: rule.Name, Candidate: cand}, true
			}
		}
	}
	return Match{}, false
}

// candidateSet returns the distinct, non-empty normalized candidates.
func candidateSet(correct string, aliases []string) []string {
	set := NewOrderedSet()
	add := func(raw string) {
		if n := Normalize(raw); n != "" {
			set.Add(n)
		}
	}

	for _, raw := range append([]string{correct}, aliases...) {
		add(raw)
		if stripped := StripQualifiers(raw); stripped != raw {
			add(stripped)
		}
	}
	return set.Values()
}
