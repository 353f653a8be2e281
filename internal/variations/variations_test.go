package variations

import (
	"strings"
	"testing"

	"github.com/Omodaka9375/code-prompt/internal/builder"
	"github.com/Omodaka9375/code-prompt/internal/optimize"
	"github.com/Omodaka9375/code-prompt/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basePrompt = "Create node project with express. Constraints: use npm as the package manager." +
	builder.ClarificationClause

func TestGenerate_FixedSetAndOrder(t *testing.T) {
	vars := Generate(schema.TaskInit, basePrompt, schema.Options{"framework": "express"})
	require.Len(t, vars, 4)

	assert.Equal(t, "Ultra Minimal", vars[0].Name)
	assert.Equal(t, "Production Ready", vars[1].Name)
	assert.Equal(t, "Learning Focused", vars[2].Name)
	assert.Equal(t, "Constraint Heavy", vars[3].Name)

	assert.Equal(t, "minimal", vars[0].Category)
	assert.Equal(t, "production", vars[1].Category)
	assert.Equal(t, "educational", vars[2].Category)
	assert.Equal(t, "constrained", vars[3].Category)
}

func TestGenerate_UltraMinimal(t *testing.T) {
	vars := Generate(schema.TaskInit, basePrompt, schema.Options{})

	// Core action with constraint tail and clarification stripped.
	assert.Equal(t, "Create node project with express. Code only, no explanations.", vars[0].Prompt)
	assert.NotContains(t, vars[0].Prompt, "Ask user to clarify")
}

func TestGenerate_ProductionUsesFrameworkHint(t *testing.T) {
	opts := schema.Options{"framework": "react"}
	vars := Generate(schema.TaskInit, basePrompt, opts)

	assert.Contains(t, vars[1].Prompt, "Use React hooks and functional components.")
	assert.True(t, strings.HasSuffix(vars[1].Prompt, builder.ClarificationClause))
}

func TestGenerate_ProductionDefaultHint(t *testing.T) {
	vars := Generate(schema.TaskInit, basePrompt, schema.Options{"framework": "other"})
	assert.Contains(t, vars[1].Prompt, "Use idiomatic patterns for the chosen stack.")
}

func TestGenerate_LearningUsesTaskHint(t *testing.T) {
	vars := Generate(schema.TaskFix, "Fix runtime error in the project."+builder.ClarificationClause, schema.Options{})
	assert.Contains(t, vars[2].Prompt, "Focus on systematic debugging.")

	unknown := Generate("deploy", "Do something."+builder.ClarificationClause, schema.Options{})
	assert.Contains(t, unknown[2].Prompt, "Focus on the task at hand.")
}

func TestGenerate_ConstraintHeavyKeepsFullPrompt(t *testing.T) {
	vars := Generate(schema.TaskInit, basePrompt, schema.Options{})

	// The original constraints survive, the extra list follows.
	assert.Contains(t, vars[3].Prompt, "Constraints: use npm as the package manager.")
	assert.Contains(t, vars[3].Prompt, "no global state")
	assert.True(t, strings.HasSuffix(vars[3].Prompt, builder.ClarificationClause))
	assert.Equal(t, 1, strings.Count(vars[3].Prompt, builder.ClarificationClause))
}

func TestGenerate_PromptWithoutPeriod(t *testing.T) {
	vars := Generate(schema.TaskFeature, "Add auth feature", schema.Options{})
	assert.Equal(t, "Add auth feature. Code only, no explanations.", vars[0].Prompt)
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := schema.Options{"framework": "vue"}
	first := Generate(schema.TaskInit, basePrompt, opts)
	second := Generate(schema.TaskInit, basePrompt, opts)
	assert.Equal(t, first, second)
}

func TestGenerate_TokenEstimates(t *testing.T) {
	vars := Generate(schema.TaskInit, basePrompt, schema.Options{})
	for _, v := range vars {
		assert.Greater(t, v.EstimatedTokens, 0, v.Name)
		assert.Equal(t, optimize.EstimateTokens(v.Prompt), v.EstimatedTokens, v.Name)
	}
	// The minimal variation is the cheapest of the four.
	for _, v := range vars[1:] {
		assert.LessOrEqual(t, vars[0].EstimatedTokens, v.EstimatedTokens, v.Name)
	}
}
