// Package naming derives naming-convention variants of a project name and
// applies old-to-new variant mappings to text.
package naming

import (
	"strings"
	"unicode"
)

// Tokens is an ordered sequence of lowercase words extracted from a name.
type Tokens []string

// Tokenize splits a name such as "my-cool_app" or "MyCoolApp" into lowercase
// tokens: ["my", "cool", "app"].
//
// Names containing at least one delimiter (any rune that is not a letter or
// digit) are split on delimiters. Names without delimiters are split before
// each uppercase letter instead.
func Tokenize(name string) Tokens {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !isAlphanumeric(r)
	})

	if len(parts) >= 2 {
		tokens := make(Tokens, 0, len(parts))
		for _, p := range parts {
			tokens = append(tokens, strings.ToLower(p))
		}
		return tokens
	}

	tokens := Tokens{}
	var current strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) && current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		tokens = append(tokens, strings.ToLower(current.String()))
	}
	return tokens
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// String renders the tokens in kebab form.
func (t Tokens) String() string {
	return strings.Join(t, "-")
}
