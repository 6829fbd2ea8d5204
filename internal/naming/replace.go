package naming

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Strategy selects how a MappingSet is applied to text.
type Strategy string

const (
	// Sequential applies each pair in set order with a full literal
	// replacement, so output of an earlier pair can be matched by a later one.
	Sequential Strategy = "sequential"
	// Confluent scans the text once, replacing the longest original that
	// matches at each position. Output never depends on pair order.
	Confluent Strategy = "confluent"
)

// ParseStrategy converts a user-supplied name to a Strategy.
// The empty string selects Sequential.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", Sequential:
		return Sequential, nil
	case Confluent:
		return Confluent, nil
	default:
		return "", fmt.Errorf("unknown replacement strategy %q (want %q or %q)", s, Sequential, Confluent)
	}
}

// Replacer rewrites text according to a MappingSet.
type Replacer interface {
	// Replace returns s with every mapped original replaced.
	Replace(s string) string
}

// NewReplacer builds a Replacer for the given strategy.
func NewReplacer(m MappingSet, strategy Strategy) Replacer {
	if strategy == Confluent {
		return newConfluentReplacer(m)
	}
	return sequentialReplacer(m)
}

type sequentialReplacer MappingSet

func (r sequentialReplacer) Replace(s string) string {
	return MappingSet(r).Apply(s)
}

// Apply replaces every pair in order, each as a literal, non-overlapping,
// left-to-right replacement of all occurrences.
func (m MappingSet) Apply(s string) string {
	for _, p := range m {
		if strings.Contains(s, p.Original) {
			s = strings.ReplaceAll(s, p.Original, p.Replacement)
		}
	}
	return s
}

type confluentReplacer struct {
	r *strings.Replacer
}

// newConfluentReplacer orders pairs longest original first. strings.Replacer
// prefers earlier arguments when several match at one position, which turns
// argument order into longest-match-wins; equal lengths keep set order.
func newConfluentReplacer(m MappingSet) *confluentReplacer {
	ordered := slices.Clone(m)
	slices.SortStableFunc(ordered, func(a, b Pair) int {
		return cmp.Compare(len(b.Original), len(a.Original))
	})

	args := make([]string, 0, len(ordered)*2)
	for _, p := range ordered {
		args = append(args, p.Original, p.Replacement)
	}
	return &confluentReplacer{r: strings.NewReplacer(args...)}
}

func (r *confluentReplacer) Replace(s string) string {
	return r.r.Replace(s)
}
