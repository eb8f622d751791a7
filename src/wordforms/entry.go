package wordforms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Inflection is one tagged surface form of a base word.
type Inflection struct {
	Tag  Tag
	Form string
}

// Forms holds every accepted surface form of one base word: the base itself
// plus zero or more tagged inflections. Inflection order is preserved so the
// serialized file diffs cleanly; order carries no meaning for lookup.
type Forms struct {
	Base        string
	Inflections []Inflection
}

// Set records a surface form under the given tag. Forms equal to the base are
// never recorded. Setting a tag twice keeps the latest form.
func (f *Forms) Set(tag Tag, form string) {
	if tag == TagBase || form == f.Base {
		return
	}
	for i := range f.Inflections {
		if f.Inflections[i].Tag == tag {
			f.Inflections[i].Form = form
			return
		}
	}
	f.Inflections = append(f.Inflections, Inflection{Tag: tag, Form: form})
}

// Form returns the surface form recorded under tag. TagBase returns the base
// word itself.
func (f *Forms) Form(tag Tag) (string, bool) {
	if tag == TagBase {
		return f.Base, true
	}
	for _, inf := range f.Inflections {
		if inf.Tag == tag {
			return inf.Form, true
		}
	}
	return "", false
}

// Surfaces returns every surface form of the entry, base first.
func (f *Forms) Surfaces() []string {
	out := make([]string, 0, len(f.Inflections)+1)
	out = append(out, f.Base)
	for _, inf := range f.Inflections {
		out = append(out, inf.Form)
	}
	return out
}

// Table is the persisted word-forms collection: one Forms per base word, in
// insertion order. The serialized format is a two-level JSON object mapping
// base word -> (tag code or "base" -> surface string).
type Table struct {
	entries []*Forms
	byBase  map[string]*Forms
}

func NewTable() *Table {
	return &Table{byBase: make(map[string]*Forms)}
}

// Add appends an entry, replacing any earlier entry for the same base word.
func (t *Table) Add(f *Forms) {
	if old, ok := t.byBase[f.Base]; ok {
		for i, e := range t.entries {
			if e == old {
				t.entries[i] = f
				break
			}
		}
		t.byBase[f.Base] = f
		return
	}
	t.entries = append(t.entries, f)
	t.byBase[f.Base] = f
}

// Entry returns the entry for a base word.
func (t *Table) Entry(base string) (*Forms, bool) {
	f, ok := t.byBase[base]
	return f, ok
}

// Entries returns the entries in serialized order. Callers must not mutate.
func (t *Table) Entries() []*Forms {
	return t.entries
}

func (t *Table) Len() int {
	return len(t.entries)
}

// MarshalJSON writes the table as an ordered two-level object: entries in
// insertion order, the "base" key first within each entry.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range t.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, entry.Base); err != nil {
			return nil, err
		}
		buf.WriteString(`:{"base":`)
		if err := writeJSONString(&buf, entry.Base); err != nil {
			return nil, err
		}
		for _, inf := range entry.Inflections {
			buf.WriteByte(',')
			if err := writeJSONString(&buf, inf.Tag.String()); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			if err := writeJSONString(&buf, inf.Form); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// UnmarshalJSON parses the persisted format, preserving file order and
// validating every tag code eagerly.
func (t *Table) UnmarshalJSON(data []byte) error {
	t.entries = nil
	t.byBase = make(map[string]*Forms)

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("word forms: %w", err)
	}
	for dec.More() {
		base, err := nextString(dec)
		if err != nil {
			return fmt.Errorf("word forms: %w", err)
		}
		entry, err := parseEntry(dec, base)
		if err != nil {
			return fmt.Errorf("word forms %q: %w", base, err)
		}
		t.Add(entry)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return fmt.Errorf("word forms: %w", err)
	}
	return nil
}

func parseEntry(dec *json.Decoder, base string) (*Forms, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	entry := &Forms{Base: base}
	sawBase := false
	for dec.More() {
		code, err := nextString(dec)
		if err != nil {
			return nil, err
		}
		form, err := nextString(dec)
		if err != nil {
			return nil, err
		}
		if form == "" {
			return nil, fmt.Errorf("empty surface form for tag %q", code)
		}
		tag, err := ParseTag(code)
		if err != nil {
			return nil, err
		}
		if tag == TagBase {
			if form != base {
				return nil, fmt.Errorf("base form %q does not match entry key", form)
			}
			sawBase = true
			continue
		}
		entry.Set(tag, form)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if !sawBase {
		return nil, fmt.Errorf("missing base form")
	}
	return entry, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != want {
		return fmt.Errorf("expected %q, found %v", want, tok)
	}
	return nil
}

func nextString(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return "", fmt.Errorf("unexpected end of document")
		}
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string, found %v", tok)
	}
	return s, nil
}
