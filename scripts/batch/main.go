// Command batch writes an OpenAI batch-API JSONL file asking the model to
// explain every base word in the vocabulary.
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
	model := flag.String("model", "gpt-4.1-nano", "model to submit the batch against")
	out := flag.String("out", "batch.jsonl", "where to write the batch file")
	flag.Parse()

	dict, err := wordforms.Load(*wordFormsPath)
	if err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(1)
	}

	prompt, err := tinyfacts.BuildPrompt(dict, "the requested word", nil)
	if err != nil {
		fmt.Printf("could not build prompt: %v\n", err)
		os.Exit(1)
	}

	q := tinyfacts.NewQuery(*model, "tinyfacts_cache", prompt)
	var requests []tinyfacts.CompletionRequest
	for _, entry := range dict.Entries() {
		requests = append(requests, q.AskExplain(entry.Base))
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Printf("could not create %s: %v\n", *out, err)
		os.Exit(1)
	}
	defer f.Close()
	if err := tinyfacts.WriteBatch(f, requests); err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d requests to %s\n", len(requests), *out)
}
