package wordforms

import "fmt"

// Tag identifies how a surface form relates to its base word. The zero value
// means the surface form is the base word itself.
type Tag int

const (
	TagBase Tag = iota // untagged; the base form
	TagPluralNoun
	TagVerb3SGPresent
	TagVerbPast
	TagVerbGerund
	TagVerbPastParticiple
	TagAdjComparative
	TagAdjSuperlative
	TagAdvComparative
	TagAdvSuperlative
	TagActionNoun
)

// inflectionTags is every tag produced by mechanical inflection, in the order
// entries are serialized. TagActionNoun is curated separately and always
// serializes last.
var inflectionTags = []Tag{
	TagPluralNoun,
	TagVerb3SGPresent,
	TagVerbPast,
	TagVerbGerund,
	TagVerbPastParticiple,
	TagAdjComparative,
	TagAdjSuperlative,
	TagAdvComparative,
	TagAdvSuperlative,
}

var tagCodes = map[Tag]string{
	TagBase:               "base",
	TagPluralNoun:         "plural-noun",
	TagVerb3SGPresent:     "verb-3sg-present",
	TagVerbPast:           "verb-past",
	TagVerbGerund:         "verb-gerund",
	TagVerbPastParticiple: "verb-past-participle",
	TagAdjComparative:     "adj-comparative",
	TagAdjSuperlative:     "adj-superlative",
	TagAdvComparative:     "adv-comparative",
	TagAdvSuperlative:     "adv-superlative",
	TagActionNoun:         "action-noun",
}

// pennAliases maps the Penn-treebank codes used by older data files onto the
// canonical tags. Accepted on read only; writes always use canonical codes.
var pennAliases = map[string]Tag{
	"NNS": TagPluralNoun,
	"VBZ": TagVerb3SGPresent,
	"VBD": TagVerbPast,
	"VBG": TagVerbGerund,
	"VBN": TagVerbPastParticiple,
	"JJR": TagAdjComparative,
	"JJS": TagAdjSuperlative,
	"RBR": TagAdvComparative,
	"RBS": TagAdvSuperlative,
	"ANN": TagActionNoun,
}

var codeTags map[string]Tag

func init() {
	codeTags = make(map[string]Tag, len(tagCodes)+len(pennAliases))
	for tag, code := range tagCodes {
		codeTags[code] = tag
	}
	for code, tag := range pennAliases {
		codeTags[code] = tag
	}
}

// String returns the serialized code for the tag.
func (t Tag) String() string {
	code, ok := tagCodes[t]
	if !ok {
		return fmt.Sprintf("Tag(%d)", int(t))
	}
	return code
}

// ParseTag resolves a serialized tag code. It accepts the canonical codes and
// the Penn-treebank aliases; anything else is an error so corrupt data is
// rejected at load time rather than at first query.
func ParseTag(code string) (Tag, error) {
	tag, ok := codeTags[code]
	if !ok {
		return TagBase, fmt.Errorf("unsupported tag %q", code)
	}
	return tag, nil
}

// TaggedWord is the reverse-lookup result for a surface form: the base word
// it belongs to and the tag relating the two. Tag is TagBase when the surface
// form is the base word itself.
type TaggedWord struct {
	Base string
	Tag  Tag
}
