// Package optimize provides the token-cost estimator, the efficiency
// analyzer, and the context-aware prompt optimizer.
package optimize

import "unicode/utf8"

// EstimateTokens estimates the token count for a prompt using a runes/4
// approximation, rounded up. This is a reasonable estimate for LLM
// tokenizers without requiring external dependencies. Uses rune count (not
// byte count) to handle unicode correctly.
func EstimateTokens(prompt string) int {
	if len(prompt) == 0 {
		return 0
	}
	runeCount := utf8.RuneCountInString(prompt)
	return (runeCount + 3) / 4
}

// TokenStats holds before/after token counts for an optimization pass.
type TokenStats struct {
	Before int
	After  int
}

// Delta returns the token count change (positive means the prompt grew).
func (s TokenStats) Delta() int {
	return s.After - s.Before
}

// PercentChange returns the relative size change (-100..+inf).
func (s TokenStats) PercentChange() float64 {
	if s.Before == 0 {
		return 0
	}
	return float64(s.Delta()) / float64(s.Before) * 100
}
