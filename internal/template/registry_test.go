package template

import (
	"regexp"
	"testing"

	"github.com/Omodaka9375/code-prompt/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placeholderRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

func TestLookup(t *testing.T) {
	for _, task := range schema.AllTaskTypes {
		tmpl, ok := Lookup(task)
		require.True(t, ok, string(task))
		assert.NotEmpty(t, tmpl.Base)
	}

	_, ok := Lookup("deploy")
	assert.False(t, ok)
}

func TestEveryBasePlaceholderHasFallback(t *testing.T) {
	// Base templates must be fully resolvable with an empty option set.
	for _, task := range schema.AllTaskTypes {
		tmpl, _ := Lookup(task)
		for _, match := range placeholderRe.FindAllStringSubmatch(tmpl.Base, -1) {
			key := match[1]
			_, ok := Fallback(key)
			assert.True(t, ok, "placeholder %s in %s base has no fallback", key, task)
		}
	}
}

func TestAlternatePlaceholdersCoveredOrNamed(t *testing.T) {
	// Alternate templates may only add the AltKey placeholder on top of
	// fallback-covered keys; the AltKey itself must have no fallback, or
	// it would wrongly trigger the alternate phrasing.
	for _, task := range schema.AllTaskTypes {
		tmpl, _ := Lookup(task)
		if tmpl.Alternate == "" {
			continue
		}
		require.NotEmpty(t, tmpl.AltKey, string(task))

		_, ok := Fallback(tmpl.AltKey)
		assert.False(t, ok, "alt key %s for %s must not have a fallback", tmpl.AltKey, task)

		for _, match := range placeholderRe.FindAllStringSubmatch(tmpl.Alternate, -1) {
			key := match[1]
			if key == tmpl.AltKey {
				continue
			}
			_, ok := Fallback(key)
			assert.True(t, ok, "placeholder %s in %s alternate has no fallback", key, task)
		}
	}
}

func TestDictionariesCoverSchemaEnums(t *testing.T) {
	tests := []struct {
		name string
		task schema.TaskType
		key  string
		dict map[string]string
	}{
		{"patterns", schema.TaskArchitecture, "pattern", Patterns},
		{"approaches", schema.TaskFeature, "approach", Approaches},
		{"scopes", schema.TaskFeature, "scope", Scopes},
		{"priorities", schema.TaskFix, "priority", Priorities},
		{"coverage", schema.TaskTesting, "coverage", Coverage},
		{"docFormats", schema.TaskDocs, "docFormat", DocFormats},
		{"detailLevels", schema.TaskDocs, "detailLevel", DetailLevels},
		{"categories", schema.TaskFix, "category", Categories},
		{"packageManagers", schema.TaskInit, "packageManager", PackageManagers},
		{"structures", schema.TaskInit, "structure", Structures},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q *schema.Question
			for _, question := range schema.Questions(tt.task) {
				if question.Key == tt.key {
					q = &question
					break
				}
			}
			require.NotNil(t, q, "schema for %s lacks key %s", tt.task, tt.key)

			for _, val := range q.Options {
				if val == "other" {
					continue
				}
				_, ok := tt.dict[val]
				assert.True(t, ok, "dictionary %s missing entry for %s", tt.name, val)
			}
		})
	}
}

func TestCustomPairsHaveNoDictionaryForOther(t *testing.T) {
	// The "other" sentinel must always be replaced by the custom value,
	// never phrased directly.
	_, ok := Frameworks["other"]
	assert.False(t, ok)
	_, ok = Libraries["other"]
	assert.False(t, ok)
}
