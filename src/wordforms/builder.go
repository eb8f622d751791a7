package wordforms

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Inflector computes candidate inflections for a base word, keyed by tag
// code. How inflection happens is the collaborator's business; the builder
// only keeps the first candidate of each supported tag.
type Inflector interface {
	Inflect(word string) (map[string][]string, error)
}

// LoadActionNouns reads the curated action-noun table: a flat JSON object
// mapping base word to its nominal form, possibly empty. The builder cannot
// run without it.
func LoadActionNouns(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read action nouns: %w", err)
	}
	nouns := make(map[string]string)
	if err := json.Unmarshal(raw, &nouns); err != nil {
		return nil, fmt.Errorf("could not parse action nouns %s: %w", path, err)
	}
	return nouns, nil
}

// Extractor accumulates word-forms entries for a vocabulary, one base word at
// a time.
//
// A word is skipped when it exactly matches any surface form already emitted
// during this run, not just an already-seen base word. A duplicate base in
// the source list is dropped, but so is a base word that happens to equal an
// earlier word's inflection (a base "leaves" after "leaf" already emitted its
// plural). This matches the historical builder; callers relying on the output
// should not reorder the source vocabulary.
type Extractor struct {
	inflector   Inflector
	actionNouns map[string]string
	table       *Table
	emitted     []string
}

func NewExtractor(inflector Inflector, actionNouns map[string]string) *Extractor {
	return &Extractor{
		inflector:   inflector,
		actionNouns: actionNouns,
		table:       NewTable(),
	}
}

// Add computes and records the entry for one base word. Blank and
// already-emitted words are skipped silently.
func (e *Extractor) Add(word string) error {
	if strings.TrimSpace(word) == "" {
		return nil
	}
	for _, form := range e.emitted {
		if form == word {
			return nil
		}
	}
	entry, err := e.findForms(word)
	if err != nil {
		return err
	}
	e.emitted = append(e.emitted, entry.Surfaces()...)
	e.table.Add(entry)
	return nil
}

// findForms expands one word: first candidate per supported inflection tag,
// dropping candidates identical to the base, plus the curated action noun
// when one is present and non-empty.
func (e *Extractor) findForms(word string) (*Forms, error) {
	candidates, err := e.inflector.Inflect(word)
	if err != nil {
		return nil, fmt.Errorf("could not inflect %q: %w", word, err)
	}
	byTag := make(map[Tag]string, len(candidates))
	for code, forms := range candidates {
		tag, err := ParseTag(code)
		if err != nil || tag == TagBase || tag == TagActionNoun {
			continue // unsupported tags from the inflector are ignored
		}
		if _, ok := byTag[tag]; !ok && len(forms) > 0 {
			byTag[tag] = forms[0]
		}
	}
	entry := &Forms{Base: word}
	for _, tag := range inflectionTags {
		form, ok := byTag[tag]
		if !ok || form == word {
			continue
		}
		entry.Set(tag, form)
	}
	if noun, ok := e.actionNouns[word]; ok && noun != "" {
		entry.Set(TagActionNoun, noun)
	}
	return entry, nil
}

// Table returns the entries accumulated so far, in processing order.
func (e *Extractor) Table() *Table {
	return e.table
}

// BuildTable expands a whole vocabulary. "be" is always processed first; its
// inflection set is irregular enough that it anchors the run regardless of
// where (or whether) it appears in the source list.
func BuildTable(inflector Inflector, actionNouns map[string]string, words []string) (*Table, error) {
	e := NewExtractor(inflector, actionNouns)
	if err := e.Add("be"); err != nil {
		return nil, err
	}
	for _, word := range words {
		if err := e.Add(word); err != nil {
			return nil, err
		}
	}
	return e.Table(), nil
}
