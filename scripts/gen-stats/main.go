// Command gen-stats summarizes a folder of generated explanations: how many
// files stay inside the allowed word list and how much vocabulary they use.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tinyfacts/tinyfacts/src/tinyfacts"
	"github.com/tinyfacts/tinyfacts/src/wordforms"
)

func main() {
	wordFormsPath := flag.String("word-forms", "word-forms.json", "path to the word forms file")
	flag.Parse()

	folder := "."
	if flag.NArg() > 0 {
		folder = flag.Arg(0)
	}

	dict, err := wordforms.Load(*wordFormsPath)
	if err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(1)
	}

	stats, err := tinyfacts.CollectGenStats(dict, folder)
	if err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("clean files:   %d\n", stats.FileCount)
	fmt.Printf("invalid files: %d\n", stats.InvalidFileCount)
	fmt.Printf("total words:   %d\n", stats.WordCount)
	fmt.Printf("unique words:  %d\n", stats.UniqueWordCount)
}
