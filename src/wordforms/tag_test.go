package wordforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		code     string
		expected Tag
		ok       bool
	}{
		{"base", TagBase, true},
		{"plural-noun", TagPluralNoun, true},
		{"verb-3sg-present", TagVerb3SGPresent, true},
		{"verb-past", TagVerbPast, true},
		{"verb-gerund", TagVerbGerund, true},
		{"verb-past-participle", TagVerbPastParticiple, true},
		{"adj-comparative", TagAdjComparative, true},
		{"adj-superlative", TagAdjSuperlative, true},
		{"adv-comparative", TagAdvComparative, true},
		{"adv-superlative", TagAdvSuperlative, true},
		{"action-noun", TagActionNoun, true},
		// Penn aliases from the historical data files
		{"NNS", TagPluralNoun, true},
		{"VBZ", TagVerb3SGPresent, true},
		{"VBD", TagVerbPast, true},
		{"VBG", TagVerbGerund, true},
		{"VBN", TagVerbPastParticiple, true},
		{"JJR", TagAdjComparative, true},
		{"JJS", TagAdjSuperlative, true},
		{"RBR", TagAdvComparative, true},
		{"RBS", TagAdvSuperlative, true},
		{"ANN", TagActionNoun, true},
		{"mystery-tag", 0, false},
		{"", 0, false},
		{"BASE", 0, false},
	}

	for _, tt := range tests {
		tag, err := ParseTag(tt.code)
		if tt.ok {
			assert.NoError(t, err, tt.code)
			assert.Equal(t, tt.expected, tag, tt.code)
		} else {
			assert.Error(t, err, tt.code)
		}
	}
}

func TestTagString_RoundTrip(t *testing.T) {
	for _, tag := range inflectionTags {
		parsed, err := ParseTag(tag.String())
		assert.NoError(t, err)
		assert.Equal(t, tag, parsed)
	}
	parsed, err := ParseTag(TagActionNoun.String())
	assert.NoError(t, err)
	assert.Equal(t, TagActionNoun, parsed)
}
