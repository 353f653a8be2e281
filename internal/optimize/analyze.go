package optimize

import "strings"

// Efficiency classifies a prompt's estimated token cost.
type Efficiency string

const (
	EfficiencyExcellent Efficiency = "excellent"
	EfficiencyGood      Efficiency = "good"
	EfficiencyFair      Efficiency = "fair"
	EfficiencyVerbose   Efficiency = "verbose"
)

// Bucket thresholds, evaluated in increasing order with strict less-than.
const (
	excellentBelow = 120
	goodBelow      = 220
	fairBelow      = 320
)

// Analysis is the result of analyzing a prompt string.
type Analysis struct {
	EstimatedTokens int
	Efficiency      Efficiency
	Recommendations []string
}

// Analyze estimates a prompt's token cost, classifies it, and collects
// advisory recommendations. Derived purely from the prompt string.
func Analyze(prompt string) Analysis {
	tokens := EstimateTokens(prompt)

	a := Analysis{
		EstimatedTokens: tokens,
		Efficiency:      classify(tokens),
	}

	if tokens > 200 {
		a.Recommendations = append(a.Recommendations,
			"Consider using fewer, more specific constraints")
	}
	if strings.Contains(prompt, "comprehensive") || strings.Contains(prompt, "detailed") {
		a.Recommendations = append(a.Recommendations,
			`Remove verbose qualifiers like "comprehensive" or "detailed"`)
	}
	if len(strings.Split(prompt, ",")) > 5 {
		a.Recommendations = append(a.Recommendations,
			"Simplify the constraint list by combining related constraints")
	}

	return a
}

func classify(tokens int) Efficiency {
	switch {
	case tokens < excellentBelow:
		return EfficiencyExcellent
	case tokens < goodBelow:
		return EfficiencyGood
	case tokens < fairBelow:
		return EfficiencyFair
	default:
		return EfficiencyVerbose
	}
}
