package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{input: "", want: Sequential},
		{input: "sequential", want: Sequential},
		{input: " Confluent ", want: Confluent},
		{input: "regex", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseStrategy(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestApply_AllVariantsRoundTrip(t *testing.T) {
	t.Parallel()

	original, replacement := Tokenize("acme-app"), Tokenize("shiny-app")
	mappings := Generate(original, replacement)

	var in, want []string
	for _, v := range Variants(original) {
		in = append(in, v.Value)
	}
	for _, v := range Variants(replacement) {
		want = append(want, v.Value)
	}

	for _, strategy := range []Strategy{Sequential, Confluent} {
		r := NewReplacer(mappings, strategy)
		out := r.Replace(strings.Join(in, "\n"))
		assert.Equal(t, strings.Join(want, "\n"), out, "strategy %s", strategy)

		// Already converted output contains no original variant.
		assert.Equal(t, out, r.Replace(out), "idempotence with strategy %s", strategy)
	}
}

func TestApply_UnlistedFormsUntouched(t *testing.T) {
	t.Parallel()

	mappings := Generate(Tokenize("acme-app"), Tokenize("shiny-app"))
	in := "type AcmeApp struct{}\nconst name = \"acme_app\"\n// ACME-APP stays\n"

	out := mappings.Apply(in)
	assert.Contains(t, out, "ShinyApp")
	assert.Contains(t, out, "shiny_app")
	assert.Contains(t, out, "ACME-APP stays")
	assert.NotContains(t, out, "AcmeApp")
}

func TestApply_SequentialChainsReplacements(t *testing.T) {
	t.Parallel()

	mappings := Generate(Tokens{"app"}, Tokens{"my", "app"})
	require.Equal(t, Pair{Original: "app", Replacement: "my-app"}, mappings[len(mappings)-4])

	// "app" -> "my-app" first, then the "app" inside "my-app" is matched
	// again by the camel pair.
	assert.Equal(t, "my-myApp", NewReplacer(mappings, Sequential).Replace("app"))
	assert.Equal(t, "my-app", NewReplacer(mappings, Confluent).Replace("app"))
}

func TestConfluent_LongestMatchWins(t *testing.T) {
	t.Parallel()

	mappings := MappingSet{
		{Original: "acme", Replacement: "X"},
		{Original: "acme-app", Replacement: "shiny-app"},
	}
	r := NewReplacer(mappings, Confluent)
	assert.Equal(t, "shiny-app and X", r.Replace("acme-app and acme"))
}

func TestReplacer_EmptySet(t *testing.T) {
	t.Parallel()

	for _, strategy := range []Strategy{Sequential, Confluent} {
		assert.Equal(t, "acme-app", NewReplacer(nil, strategy).Replace("acme-app"))
	}
}
