package policy

import (
	"fmt"

	"github.com/passgauge/passgauge/pkg/entropy"
)

// Process-wide password policy. Length thresholds are in runes, the score
// threshold is on the oracle's 0-4 scale.
const (
	MinLength    = 12
	StrongLength = 16
	MinScore     = 3
)

// Display colors used by the strength meter and the breach-result line.
const (
	ColorDanger  = "#ef4444"
	ColorWarn    = "#f97316"
	ColorCaution = "#eab308"
	ColorSafe    = "#22c55e"
	ColorNeutral = "#e2e8f0"
)

// Verdict is the result of evaluating a password against the policy.
type Verdict struct {
	Label        string   `json:"label"`
	Color        string   `json:"color"`
	WidthPercent int      `json:"widthPercent"`
	Suggestions  []string `json:"suggestions"`
}

// Evaluate maps a password and its entropy estimate to a display verdict.
// It is a pure function; an empty password short-circuits to the empty
// verdict regardless of the estimate.
func Evaluate(password string, est entropy.Estimate) Verdict {
	if password == "" {
		return Verdict{Color: ColorSafe, Suggestions: []string{}}
	}

	profile := Scan(password)
	length := profile.Length

	var raw []string
	if length < MinLength {
		raw = append(raw, fmt.Sprintf("Use at least %d characters.", MinLength))
	}
	if profile.TypesCount < 3 {
		raw = append(raw, "Use a mix of lowercase, uppercase, numbers, and symbols (at least 3 types).")
	}
	if est.Score < MinScore {
		raw = append(raw, "Avoid common words, names, or patterns.")
	}
	raw = append(raw, est.Warning)
	raw = append(raw, est.Suggestions...)

	verdict := Verdict{Suggestions: dedupe(raw)}

	// Ordered, first-match-wins rule table. The ordering is load-bearing:
	// later bands would also match earlier inputs.
	switch {
	case length < MinLength || profile.TypesCount < 2 || est.Score <= 1:
		verdict.Label = "Too weak"
		verdict.Color = ColorDanger
		verdict.WidthPercent = 20
	case length >= MinLength && profile.TypesCount >= 2 && est.Score == 2:
		verdict.Label = "Weak"
		verdict.Color = ColorWarn
		verdict.WidthPercent = 40
	case length >= MinLength && profile.TypesCount >= 3 && est.Score == 3:
		verdict.Label = "Strong"
		verdict.Color = ColorSafe
		verdict.WidthPercent = 70
	case length >= StrongLength && profile.TypesCount >= 3 && est.Score == 4:
		verdict.Label = "Very strong"
		verdict.Color = ColorSafe
		verdict.WidthPercent = 100
	default:
		// Covers the gaps in the table on purpose, e.g. score 3 with only
		// two character types lands here rather than in "Strong".
		verdict.Label = "Medium"
		verdict.Color = ColorCaution
		verdict.WidthPercent = 60
	}

	return verdict
}

// dedupe drops empty entries and duplicates, keeping first-occurrence order.
func dedupe(entries []string) []string {
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry == "" {
			continue
		}
		if _, found := seen[entry]; found {
			continue
		}
		seen[entry] = struct{}{}
		out = append(out, entry)
	}

	return out
}
