package wordforms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
)

// ExecInflector asks an external morphology helper for inflections by running
// a command with the word appended as the final argument. The helper must
// print a JSON object mapping tag codes to candidate lists on stdout, e.g.
//
//	{"plural-noun": ["things"], "verb-past": ["thinged"]}
//
// Penn-treebank codes are accepted too.
type ExecInflector struct {
	Command string
	Args    []string
}

func (x ExecInflector) Inflect(word string) (map[string][]string, error) {
	args := append(append([]string{}, x.Args...), word)
	cmd := exec.Command(x.Command, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("inflection helper %s failed: %w", x.Command, err)
	}
	candidates := make(map[string][]string)
	if err := json.Unmarshal(out.Bytes(), &candidates); err != nil {
		return nil, fmt.Errorf("could not parse inflection helper output for %q: %w", word, err)
	}
	return candidates, nil
}

// StaticInflector serves inflections from a fixed in-memory map. Words absent
// from the map inflect to nothing, which is not an error.
type StaticInflector map[string]map[string][]string

func (s StaticInflector) Inflect(word string) (map[string][]string, error) {
	return s[word], nil
}
