package optimize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   int
	}{
		{
			name:   "simple text",
			prompt: "hello world",
			want:   3, // 11 runes, rounded up
		},
		{
			name:   "exact multiple",
			prompt: strings.Repeat("x", 480),
			want:   120,
		},
		{
			name:   "one over rounds up",
			prompt: strings.Repeat("x", 481),
			want:   121,
		},
		{
			name:   "single rune",
			prompt: "a",
			want:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateTokens(tt.prompt))
		})
	}
}

func TestEstimateTokens_EmptyString(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
}

func TestEstimateTokens_Unicode(t *testing.T) {
	// Runes, not bytes.
	tests := []struct {
		name   string
		prompt string
		want   int
	}{
		{
			name:   "chinese characters",
			prompt: "你好世界", // 4 runes
			want:   1,
		},
		{
			name:   "mixed content",
			prompt: "Hello 世界!", // 9 runes
			want:   3,
		},
		{
			name:   "cyrillic",
			prompt: "Привет мир", // 10 runes
			want:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateTokens(tt.prompt))
		})
	}
}

func TestTokenStats_Delta(t *testing.T) {
	assert.Equal(t, 25, TokenStats{Before: 100, After: 125}.Delta())
	assert.Equal(t, -50, TokenStats{Before: 200, After: 150}.Delta())
	assert.Equal(t, 0, TokenStats{Before: 80, After: 80}.Delta())
}

func TestTokenStats_PercentChange(t *testing.T) {
	tests := []struct {
		name  string
		stats TokenStats
		want  float64
	}{
		{
			name:  "25% growth",
			stats: TokenStats{Before: 100, After: 125},
			want:  25.0,
		},
		{
			name:  "25% reduction",
			stats: TokenStats{Before: 200, After: 150},
			want:  -25.0,
		},
		{
			name:  "no change",
			stats: TokenStats{Before: 100, After: 100},
			want:  0.0,
		},
		{
			name:  "zero before",
			stats: TokenStats{Before: 0, After: 40},
			want:  0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stats.PercentChange())
		})
	}
}
