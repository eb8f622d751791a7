// Command word-forms expands a base vocabulary into its accepted inflected
// forms and writes the persisted word-forms file consumed by the dictionary.
//
// The word list is one lowercase base word per line. Inflections come from an
// external morphology helper command that prints a JSON object mapping tag
// codes to candidate lists; action nouns come from a curated JSON table.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tinyfacts/tinyfacts/src/wordforms"
)

func main() {
	wordsPath := flag.String("words", "thing-explainer-1000.txt", "path to the base word list")
	actionNounsPath := flag.String("action-nouns", "action-nouns.json", "path to the curated action-noun table")
	outPath := flag.String("out", "word-forms.json", "where to write the word forms file")
	inflectCmd := flag.String("inflect-cmd", "inflect-helper", "morphology helper command")
	flag.Parse()

	raw, err := os.ReadFile(*wordsPath)
	if err != nil {
		fmt.Printf("could not read word list: %v\n", err)
		os.Exit(1)
	}
	words := strings.Split(string(raw), "\n")

	actionNouns, err := wordforms.LoadActionNouns(*actionNounsPath)
	if err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(1)
	}

	inflector := wordforms.ExecInflector{Command: *inflectCmd}
	table, err := wordforms.BuildTable(inflector, actionNouns, words)
	if err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(table, "", "    ")
	if err != nil {
		fmt.Printf("could not serialize word forms: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, out, 0644); err != nil {
		fmt.Printf("could not write %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d entries to %s\n", table.Len(), *outPath)
}
