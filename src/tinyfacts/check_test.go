package tinyfacts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinyfacts/tinyfacts/src/tinyfacts"
	"github.com/tinyfacts/tinyfacts/src/wordforms"
)

// testDict covers the scenario vocabulary: "go" with its verb forms plus the
// filler words needed for clean sentences.
func testDict() *wordforms.Dictionary {
	table := wordforms.NewTable()
	goForms := &wordforms.Forms{Base: "go"}
	goForms.Set(wordforms.TagVerb3SGPresent, "goes")
	goForms.Set(wordforms.TagVerbGerund, "going")
	goForms.Set(wordforms.TagVerbPast, "went")
	goForms.Set(wordforms.TagVerbPastParticiple, "gone")
	table.Add(goForms)
	for _, base := range []string{"he", "there", "home", "don't"} {
		table.Add(&wordforms.Forms{Base: base})
	}
	return wordforms.New(table)
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"He goes there. He went home.", []string{"he", "goes", "there", "he", "went", "home"}},
		{"", nil},
		{"...!?? 123", nil},
		{"well-known", []string{"well", "known"}},
		{"abc123def", []string{"abc", "def"}},
		{"Don't stop", []string{"don't", "stop"}},
		{"zog zog zog", []string{"zog", "zog", "zog"}},
		{"A\nB\tC", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tinyfacts.SplitWords(tt.input), tt.input)
	}
}

func TestSplitWords_Pure(t *testing.T) {
	text := "He goes there. He went home."
	assert.Equal(t, tinyfacts.SplitWords(text), tinyfacts.SplitWords(text))
}

func TestFindWordMatches(t *testing.T) {
	matches := tinyfacts.FindWordMatches("He went!")
	assert.Equal(t, []tinyfacts.WordMatch{
		{Word: "he", Start: 0, End: 2},
		{Word: "went", Start: 3, End: 7},
	}, matches)
}

func TestCheckWords(t *testing.T) {
	dict := testDict()

	tests := []struct {
		text     string
		expected map[string]int
	}{
		{"He goes there. He went home.", map[string]int{}},
		{"He runs there.", map[string]int{"runs": 1}},
		{"zog zog zog", map[string]int{"zog": 3}},
		{"", map[string]int{}},
		{"going gone goes went go", map[string]int{}},
	}
	for _, tt := range tests {
		got := tinyfacts.CheckWords(dict, tinyfacts.SplitWords(tt.text))
		assert.Equal(t, tt.expected, got, tt.text)
	}
}

func TestCheckWordsContext(t *testing.T) {
	dict := testDict()

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, tinyfacts.CheckWordsContext(dict, nil, 2))
		assert.Empty(t, tinyfacts.CheckWordsContext(dict, []string{}, 2))
	})

	t.Run("radius zero is the token itself", func(t *testing.T) {
		invalid := tinyfacts.CheckWordsContext(dict, []string{"he", "zog", "home"}, 0)
		assert.Equal(t, []tinyfacts.InvalidWord{
			{Word: "zog", Index: 1, Context: "zog"},
		}, invalid)
	})

	t.Run("window clamps at both ends", func(t *testing.T) {
		words := tinyfacts.SplitWords("zog goes there he zog")
		invalid := tinyfacts.CheckWordsContext(dict, words, 2)
		assert.Equal(t, []tinyfacts.InvalidWord{
			{Word: "zog", Index: 0, Context: "zog goes there"},
			{Word: "zog", Index: 4, Context: "there he zog"},
		}, invalid)
	})

	t.Run("all valid yields nothing", func(t *testing.T) {
		words := tinyfacts.SplitWords("He goes there. He went home.")
		assert.Empty(t, tinyfacts.CheckWordsContext(dict, words, 2))
	})
}
