// Command check reports whether a text file only uses words from the allowed
// word list. Exits 1 when it finds any word outside the list.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/tinyfacts/tinyfacts/src/tinyfacts"
	"github.com/tinyfacts/tinyfacts/src/wordforms"
)

func main() {
	wordFormsPath := flag.String("word-forms", "word-forms.json", "path to the word forms file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("usage: check [-word-forms path] <file>")
		os.Exit(2)
	}
	file := flag.Arg(0)

	dict, err := wordforms.Load(*wordFormsPath)
	if err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(2)
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		fmt.Printf("could not read %s: %v\n", file, err)
		os.Exit(2)
	}

	words := tinyfacts.SplitWords(string(raw))
	invalid := tinyfacts.CheckWords(dict, words)

	fmt.Printf("Checked %d words in %s.\n", len(words), file)
	if len(invalid) == 0 {
		fmt.Printf("✓ All words in %s are in the allowed word list!\n", file)
		os.Exit(0)
	}

	fmt.Printf("✗ Found %d invalid word(s) in %s:\n\n", len(invalid), file)
	type wc struct {
		word  string
		count int
	}
	sorted := make([]wc, 0, len(invalid))
	for word, count := range invalid {
		sorted = append(sorted, wc{word, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].count > sorted[j].count
	})
	for _, e := range sorted {
		plural := ""
		if e.count > 1 {
			plural = "s"
		}
		fmt.Printf("  %s (used %d time%s)\n", e.word, e.count, plural)
	}
	os.Exit(1)
}
