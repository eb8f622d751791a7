package tinyfacts_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyfacts/tinyfacts/src/tinyfacts"
)

func TestBuildPrompt(t *testing.T) {
	dict := testDict()

	prompt, err := tinyfacts.BuildPrompt(dict, "How rain happens", nil)
	require.NoError(t, err)

	assert.Contains(t, prompt, `The topic to write about is: "How rain happens".`)
	assert.Contains(t, prompt, "go, goes, going, gone")
	assert.NotContains(t, prompt, "Example Topic")

	// word list is sorted
	idxHe := strings.Index(prompt, " he,")
	idxThere := strings.Index(prompt, " there")
	assert.True(t, idxHe < idxThere)
}

func TestBuildPrompt_WithExample(t *testing.T) {
	prompt, err := tinyfacts.BuildPrompt(testDict(), "topic", &tinyfacts.Example{
		Topic: "a novel",
		Text:  "a long time ago",
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, `Example Topic: "a novel"`)
	assert.Contains(t, prompt, "Example Text: a long time ago")
}
