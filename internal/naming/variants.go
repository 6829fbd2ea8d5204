package naming

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style identifies one naming convention.
type Style string

const (
	// Kebab joins tokens with "-": acme-app.
	Kebab Style = "kebab"
	// Snake joins tokens with "_": acme_app.
	Snake Style = "snake"
	// UpperSnake uppercases tokens joined with "_": ACME_APP.
	UpperSnake Style = "upper-snake"
	// ConcatLower concatenates tokens: acmeapp.
	ConcatLower Style = "concat-lower"
	// ConcatUpper uppercases and concatenates tokens: ACMEAPP.
	ConcatUpper Style = "concat-upper"
	// Camel is lower camel case: acmeApp.
	Camel Style = "camel"
	// Pascal is upper camel case: AcmeApp.
	Pascal Style = "pascal"
	// PascalUnderscore joins Pascal-cased tokens with "_": Acme_App.
	PascalUnderscore Style = "pascal-underscore"
)

// Styles lists every supported naming convention in generation order.
var Styles = []Style{
	Kebab,
	Snake,
	UpperSnake,
	ConcatLower,
	ConcatUpper,
	Camel,
	Pascal,
	PascalUnderscore,
}

// Pair maps one rendering of the original name to the same rendering of the
// replacement name.
type Pair struct {
	Original    string `yaml:"original" json:"original"`
	Replacement string `yaml:"replacement" json:"replacement"`
}

// MappingSet is a deduplicated, lexically sorted list of pairs.
type MappingSet []Pair

// Variant is a single rendering of a token sequence.
type Variant struct {
	Style Style
	Value string
}

// Join renders tokens in the given style. An empty token sequence renders as
// the empty string in every style.
func Join(t Tokens, style Style) string {
	switch style {
	case Kebab:
		return strings.Join(t, "-")
	case Snake:
		return strings.Join(t, "_")
	case UpperSnake:
		return strings.Join(mapTokens(t, strings.ToUpper), "_")
	case ConcatLower:
		return strings.Join(t, "")
	case ConcatUpper:
		return strings.Join(mapTokens(t, strings.ToUpper), "")
	case Camel:
		if len(t) == 0 {
			return ""
		}
		return t[0] + strings.Join(mapTokens(t[1:], pascalWord), "")
	case Pascal:
		return strings.Join(mapTokens(t, pascalWord), "")
	case PascalUnderscore:
		return strings.Join(mapTokens(t, pascalWord), "_")
	default:
		return ""
	}
}

// Variants renders tokens in every style, in Styles order.
func Variants(t Tokens) []Variant {
	out := make([]Variant, 0, len(Styles))
	for _, s := range Styles {
		out = append(out, Variant{Style: s, Value: Join(t, s)})
	}
	return out
}

// Generate pairs every rendering of original with the same rendering of
// replacement. Pairs with an empty side are dropped; the result is sorted
// and free of duplicates, so an empty name yields an empty set.
func Generate(original, replacement Tokens) MappingSet {
	pairs := make(MappingSet, 0, len(Styles))
	for _, s := range Styles {
		o, n := Join(original, s), Join(replacement, s)
		if o == "" || n == "" {
			continue
		}
		pairs = append(pairs, Pair{Original: o, Replacement: n})
	}

	slices.SortFunc(pairs, comparePairs)
	return slices.Compact(pairs)
}

func comparePairs(a, b Pair) int {
	if c := cmp.Compare(a.Original, b.Original); c != 0 {
		return c
	}
	return cmp.Compare(a.Replacement, b.Replacement)
}

func mapTokens(t Tokens, fn func(string) string) []string {
	out := make([]string, len(t))
	for i, s := range t {
		out[i] = fn(s)
	}
	return out
}

// pascalWord uppercases the first letter and lowercases the rest.
func pascalWord(s string) string {
	// cases.Caser carries state and is not safe for reuse across goroutines.
	return cases.Title(language.Und).String(s)
}
