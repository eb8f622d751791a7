package wordforms

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testInflections = StaticInflector{
	"be": {
		"verb-3sg-present":     {"is"},
		"verb-past":            {"was", "were"},
		"verb-gerund":          {"being"},
		"verb-past-participle": {"been"},
	},
	"go": {
		"verb-3sg-present":     {"goes"},
		"verb-past":            {"went"},
		"verb-gerund":          {"going"},
		"verb-past-participle": {"gone"},
	},
	"sheep": {
		"plural-noun": {"sheep"}, // identical to the base; must not be recorded
	},
	"leaf": {
		"plural-noun": {"leaves"},
	},
	"leaves": {
		"verb-3sg-present": {"leaves"},
	},
	"thing": {
		"NNS": {"things"}, // Penn code from an older helper
		"XYZ": {"whatever"},
	},
}

var testActionNouns = map[string]string{
	"go":   "going",
	"run":  "",
	"leaf": "",
}

func TestExtractor_FindForms(t *testing.T) {
	e := NewExtractor(testInflections, testActionNouns)

	require.NoError(t, e.Add("go"))
	entry, ok := e.Table().Entry("go")
	require.True(t, ok)

	form, ok := entry.Form(TagVerbPast)
	assert.True(t, ok)
	assert.Equal(t, "went", form)
	form, ok = entry.Form(TagActionNoun)
	assert.True(t, ok)
	assert.Equal(t, "going", form)
	_, ok = entry.Form(TagPluralNoun)
	assert.False(t, ok)
}

func TestExtractor_FirstCandidateOnly(t *testing.T) {
	e := NewExtractor(testInflections, nil)
	require.NoError(t, e.Add("be"))
	entry, _ := e.Table().Entry("be")
	form, ok := entry.Form(TagVerbPast)
	assert.True(t, ok)
	assert.Equal(t, "was", form)
}

func TestExtractor_SkipsFormsEqualToBase(t *testing.T) {
	e := NewExtractor(testInflections, nil)
	require.NoError(t, e.Add("sheep"))
	entry, ok := e.Table().Entry("sheep")
	require.True(t, ok)
	assert.Empty(t, entry.Inflections)
	assert.Equal(t, []string{"sheep"}, entry.Surfaces())
}

func TestExtractor_EmptyActionNounIgnored(t *testing.T) {
	e := NewExtractor(testInflections, testActionNouns)
	require.NoError(t, e.Add("leaf"))
	entry, _ := e.Table().Entry("leaf")
	_, ok := entry.Form(TagActionNoun)
	assert.False(t, ok)
}

func TestExtractor_PennAndUnknownInflectorCodes(t *testing.T) {
	e := NewExtractor(testInflections, nil)
	require.NoError(t, e.Add("thing"))
	entry, _ := e.Table().Entry("thing")
	form, ok := entry.Form(TagPluralNoun)
	assert.True(t, ok)
	assert.Equal(t, "things", form)
	assert.Len(t, entry.Inflections, 1, "unknown inflector codes are ignored")
}

func TestExtractor_SkipsBlankAndDuplicateWords(t *testing.T) {
	e := NewExtractor(testInflections, nil)
	require.NoError(t, e.Add(""))
	require.NoError(t, e.Add("  "))
	require.NoError(t, e.Add("go"))
	require.NoError(t, e.Add("go"))
	assert.Equal(t, 1, e.Table().Len())
}

// A base word equal to a previously emitted inflection is skipped entirely:
// "leaf" emits "leaves" as its plural, so the verb "leaves" never gets an
// entry of its own. Later lookups resolve "leaves" to "leaf".
func TestExtractor_EmittedFormSwallowsLaterBase(t *testing.T) {
	table, err := BuildTable(testInflections, nil, []string{"leaf", "leaves"})
	require.NoError(t, err)

	_, ok := table.Entry("leaf")
	assert.True(t, ok)
	_, ok = table.Entry("leaves")
	assert.False(t, ok)
}

func TestBuildTable_BeComesFirst(t *testing.T) {
	table, err := BuildTable(testInflections, testActionNouns, []string{"go", "be"})
	require.NoError(t, err)

	entries := table.Entries()
	require.True(t, table.Len() >= 2)
	assert.Equal(t, "be", entries[0].Base)
	assert.Equal(t, "go", entries[1].Base)
}

func TestBuildTable_RoundTrip(t *testing.T) {
	table, err := BuildTable(testInflections, testActionNouns, []string{"go", "leaf", "thing"})
	require.NoError(t, err)

	out, err := json.Marshal(table)
	require.NoError(t, err)

	reloaded := NewTable()
	require.NoError(t, json.Unmarshal(out, reloaded))
	require.Equal(t, table.Len(), reloaded.Len())

	for i, entry := range table.Entries() {
		other := reloaded.Entries()[i]
		assert.Equal(t, entry.Base, other.Base)
		assert.Equal(t, entry.Inflections, other.Inflections)
	}
}
