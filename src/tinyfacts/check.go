package tinyfacts

import (
	"regexp"
	"strings"

	"github.com/tinyfacts/tinyfacts/src/wordforms"
)

// wordsRegex matches a maximal run of letters and apostrophes. Digits,
// hyphens and all other punctuation separate tokens; hyphenated compounds
// split at the hyphen.
var wordsRegex = regexp.MustCompile(`[a-z']+`)

// SplitWords tokenizes text into lowercase word tokens in order of
// occurrence. Duplicates are preserved and no empty tokens are emitted.
func SplitWords(text string) []string {
	return wordsRegex.FindAllString(strings.ToLower(text), -1)
}

// WordMatch is a token with its byte offsets in the lowercased text.
type WordMatch struct {
	Word  string
	Start int
	End   int
}

// FindWordMatches tokenizes text and reports where each token occurs.
func FindWordMatches(text string) []WordMatch {
	lowered := strings.ToLower(text)
	var matches []WordMatch
	for _, loc := range wordsRegex.FindAllStringIndex(lowered, -1) {
		matches = append(matches, WordMatch{
			Word:  lowered[loc[0]:loc[1]],
			Start: loc[0],
			End:   loc[1],
		})
	}
	return matches
}

// CheckWords tallies tokens that are not in the dictionary's allowed word
// set. The whole input is always processed; a clean input yields an empty
// map.
func CheckWords(dict *wordforms.Dictionary, words []string) map[string]int {
	invalid := make(map[string]int)
	for _, word := range words {
		if !dict.Contains(word) {
			invalid[word]++
		}
	}
	return invalid
}

// InvalidWord locates one disallowed token: the token, its 0-based index in
// the token sequence, and the space-joined tokens around it.
type InvalidWord struct {
	Word    string `json:"word"`
	Index   int    `json:"index"`
	Context string `json:"context"`
}

// CheckWordsContext reports every disallowed token with enough surrounding
// text for a caller to locate and fix it without re-scanning the input. The
// context window spans radius tokens on each side, clamped to the sequence.
func CheckWordsContext(dict *wordforms.Dictionary, words []string, radius int) []InvalidWord {
	var invalid []InvalidWord
	for i, word := range words {
		if dict.Contains(word) {
			continue
		}
		start := i - radius
		if start < 0 {
			start = 0
		}
		end := i + radius + 1
		if end > len(words) {
			end = len(words)
		}
		invalid = append(invalid, InvalidWord{
			Word:    word,
			Index:   i,
			Context: strings.Join(words[start:end], " "),
		})
	}
	return invalid
}
