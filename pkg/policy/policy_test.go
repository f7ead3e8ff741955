package policy_test

import (
	"testing"

	"github.com/passgauge/passgauge/pkg/entropy"
	"github.com/passgauge/passgauge/pkg/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_EmptyPassword(t *testing.T) {
	// The estimate must not matter for empty input.
	estimates := []entropy.Estimate{
		{},
		{Score: 4, Guesses: 1e12},
		{Score: 0, Warning: "bad", Suggestions: []string{"do better"}},
	}

	for _, est := range estimates {
		verdict := policy.Evaluate("", est)

		assert.Equal(t, "", verdict.Label)
		assert.Equal(t, policy.ColorSafe, verdict.Color)
		assert.Equal(t, 0, verdict.WidthPercent)
		assert.Empty(t, verdict.Suggestions)
	}
}

func TestEvaluate_DecisionTable(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		score     int
		wantLabel string
		wantColor string
		wantWidth int
	}{
		{
			name:      "single class at min length",
			password:  "aaaaaaaaaaaa",
			score:     0,
			wantLabel: "Too weak",
			wantColor: policy.ColorDanger,
			wantWidth: 20,
		},
		{
			name:      "below min length despite high score",
			password:  "Ab1!",
			score:     4,
			wantLabel: "Too weak",
			wantColor: policy.ColorDanger,
			wantWidth: 20,
		},
		{
			name:      "score one with full variety",
			password:  "Abcdefgh1234!xyz",
			score:     1,
			wantLabel: "Too weak",
			wantColor: policy.ColorDanger,
			wantWidth: 20,
		},
		{
			name:      "two classes score two",
			password:  "abcdefghij12",
			score:     2,
			wantLabel: "Weak",
			wantColor: policy.ColorWarn,
			wantWidth: 40,
		},
		{
			name:      "three classes score three",
			password:  "abcdefgHI123",
			score:     3,
			wantLabel: "Strong",
			wantColor: policy.ColorSafe,
			wantWidth: 70,
		},
		{
			name:      "four classes score four at strong length",
			password:  "Aa1!Aa1!Aa1!Aa1!",
			score:     4,
			wantLabel: "Very strong",
			wantColor: policy.ColorSafe,
			wantWidth: 100,
		},
		{
			// Documented gap in the rule table: score 3 with only two
			// character types falls through to the Medium band.
			name:      "two classes score three falls through",
			password:  "abcdefghij12",
			score:     3,
			wantLabel: "Medium",
			wantColor: policy.ColorCaution,
			wantWidth: 60,
		},
		{
			name:      "score four below strong length",
			password:  "abcdefgHI123",
			score:     4,
			wantLabel: "Medium",
			wantColor: policy.ColorCaution,
			wantWidth: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := policy.Evaluate(tt.password, entropy.Estimate{Score: tt.score})

			assert.Equal(t, tt.wantLabel, verdict.Label)
			assert.Equal(t, tt.wantColor, verdict.Color)
			assert.Equal(t, tt.wantWidth, verdict.WidthPercent)
		})
	}
}

func TestEvaluate_SuggestionOrderAndDedup(t *testing.T) {
	est := entropy.Estimate{
		Score:       1,
		Warning:     "looks guessable",
		Suggestions: []string{"add symbols", "looks guessable", "", "add symbols", "go longer"},
	}

	verdict := policy.Evaluate("abcd", est)

	require.Equal(t, []string{
		"Use at least 12 characters.",
		"Use a mix of lowercase, uppercase, numbers, and symbols (at least 3 types).",
		"Avoid common words, names, or patterns.",
		"looks guessable",
		"add symbols",
		"go longer",
	}, verdict.Suggestions)
}

func TestEvaluate_NoSuggestionsWhenCompliant(t *testing.T) {
	verdict := policy.Evaluate("Aa1!Aa1!Aa1!Aa1!", entropy.Estimate{Score: 4})

	assert.Empty(t, verdict.Suggestions)
	assert.Equal(t, "Very strong", verdict.Label)
}

func TestScan_Profiles(t *testing.T) {
	tests := []struct {
		password  string
		wantTypes int
		wantLen   int
	}{
		{"aaaaaaaaaaaa", 1, 12},
		{"abcdefghij12", 2, 12},
		{"abcdefgHI123", 3, 12},
		{"Aa1!Aa1!Aa1!Aa1!", 4, 16},
		{"pässwörd", 1, 8},            // accented letters are still lowercase
		{"pass word", 2, 9},           // a space counts as a symbol
		{"Über⛄1", 4, 6},    // Über + snowman + digit, rune-counted
	}

	for _, tt := range tests {
		profile := policy.Scan(tt.password)

		assert.Equal(t, tt.wantTypes, profile.TypesCount, "types for %q", tt.password)
		assert.Equal(t, tt.wantLen, profile.Length, "length for %q", tt.password)
	}
}
