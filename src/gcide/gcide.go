// Package gcide looks up parts of speech by shelling out to the dict client
// with the GCIDE database.
package gcide

import (
	"bytes"
	"os/exec"
	"regexp"
	"strings"
)

// POS is a part of speech as abbreviated by GCIDE entries.
type POS string

const (
	Noun             POS = "noun"
	Pronoun          POS = "pronoun"
	VerbTransitive   POS = "verb (transitive)"
	VerbIntransitive POS = "verb (intransitive)"
	Adjective        POS = "adjective"
	Adverb           POS = "adverb"
)

const entryHeader = "From The Collaborative International Dictionary of English v.0.48 [gcide]:"

var (
	literalRegex = regexp.MustCompile(`(?i)^(\w+)\s+\\`)
	posRegex     = regexp.MustCompile(`,\s+(n\.|v\. t\.|v\. i\.|a\.|adv\.|pron\.)\s+`)
)

// Lookup runs `dict -d gcide <word>` and parses the parts of speech from the
// output. A word the dictionary does not know yields an empty set, not an
// error.
func Lookup(word string) map[POS]struct{} {
	cmd := exec.Command("dict", "-d", "gcide", word)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return map[POS]struct{}{}
	}
	return ParseEntries(out.String(), word)
}

// ParseEntries extracts the POS set for word from raw dict output. Entries
// are split on the fixed GCIDE header; only entries whose headword literally
// matches the queried word are considered.
func ParseEntries(text, word string) map[POS]struct{} {
	posSet := make(map[POS]struct{})
	for _, entry := range strings.Split(text, entryHeader) {
		lines := strings.Split(strings.TrimSpace(entry), "\n")
		if len(lines) == 0 {
			continue
		}
		mainLine := strings.TrimSpace(lines[0])
		literal := literalRegex.FindStringSubmatch(mainLine)
		if literal == nil {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(literal[1]), word) {
			continue
		}
		code := posRegex.FindStringSubmatch(mainLine)
		if code == nil {
			continue
		}
		switch code[1] {
		case "n.":
			posSet[Noun] = struct{}{}
		case "v. t.":
			posSet[VerbTransitive] = struct{}{}
		case "v. i.":
			posSet[VerbIntransitive] = struct{}{}
		case "a.":
			posSet[Adjective] = struct{}{}
		case "adv.":
			posSet[Adverb] = struct{}{}
		case "pron.":
			posSet[Pronoun] = struct{}{}
		}
	}
	return posSet
}
