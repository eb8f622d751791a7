package wordforms

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// UnknownToken is the sentinel returned by TokensFor when a surface form is
// not in the dictionary at all.
const UnknownToken = "<UNK>"

// Dictionary answers membership and reverse-lookup queries over the expanded
// word-forms table. It is immutable after construction and safe for
// concurrent readers; to pick up a new table, build a new Dictionary and swap
// the reference (see Handle).
type Dictionary struct {
	table   *Table
	allowed map[string]struct{}
	index   map[string]TaggedWord
	prefix  *trieNode
}

// Load reads a persisted word-forms file and builds the derived structures.
// A missing, unparseable, or structurally invalid file is an error; nothing
// is validated lazily.
func Load(path string) (*Dictionary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read word forms file: %w", err)
	}
	table := NewTable()
	if err := json.Unmarshal(raw, table); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	return New(table), nil
}

// New builds a Dictionary over an already-parsed table. Surface-form
// collisions across entries are resolved last-write-wins in table order and
// logged, since they make the reverse lookup ambiguous.
func New(table *Table) *Dictionary {
	d := &Dictionary{
		table:   table,
		allowed: make(map[string]struct{}),
		index:   make(map[string]TaggedWord),
		prefix:  &trieNode{},
	}
	for _, entry := range table.Entries() {
		d.addForm(entry.Base, TaggedWord{Base: entry.Base})
		for _, inf := range entry.Inflections {
			d.addForm(inf.Form, TaggedWord{Base: entry.Base, Tag: inf.Tag})
		}
	}
	return d
}

func (d *Dictionary) addForm(form string, tw TaggedWord) {
	if prev, ok := d.index[form]; ok && prev != tw {
		log.Printf("surface form %q collides: %s/%s overwrites %s/%s",
			form, tw.Base, tw.Tag, prev.Base, prev.Tag)
	}
	d.allowed[form] = struct{}{}
	d.index[form] = tw
	d.prefix.insert(form)
}

// AllowedWords returns the membership oracle for the classifier: every
// surface form across all entries. The map is shared and must be treated as
// read-only.
func (d *Dictionary) AllowedWords() map[string]struct{} {
	return d.allowed
}

// Contains reports whether word is an allowed surface form.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.allowed[word]
	return ok
}

// Lookup returns the base word and tag for a surface form. Unknown surface
// forms report ok == false; they are never an error.
func (d *Dictionary) Lookup(surface string) (TaggedWord, bool) {
	tw, ok := d.index[surface]
	return tw, ok
}

// TokensFor canonicalizes a surface form for sequence-model consumers: a tag
// marker followed by the base for inflected forms, just the base for base
// forms, and the UnknownToken sentinel when the form is not recognized.
func (d *Dictionary) TokensFor(surface string) []string {
	tw, ok := d.index[surface]
	if !ok {
		return []string{UnknownToken}
	}
	if tw.Tag == TagBase {
		return []string{tw.Base}
	}
	return []string{"<" + tw.Tag.String() + ">", tw.Base}
}

// HasPrefix reports whether any allowed word starts with the given prefix.
func (d *Dictionary) HasPrefix(prefix string) bool {
	return d.prefix.hasPrefix(prefix)
}

// Entry exposes the underlying table entry for a base word.
func (d *Dictionary) Entry(base string) (*Forms, bool) {
	return d.table.Entry(base)
}

// Entries returns the table entries in serialized order. Read-only.
func (d *Dictionary) Entries() []*Forms {
	return d.table.Entries()
}

// Len returns the number of base words.
func (d *Dictionary) Len() int {
	return d.table.Len()
}
