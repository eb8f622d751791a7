package wordforms

// trieWidth covers lowercase ASCII letters plus the apostrophe, the only
// bytes the tokenizer ever emits.
const trieWidth = 27

type trieNode struct {
	isWord   bool
	children [trieWidth]*trieNode
}

func trieIndex(ch byte) int {
	if 'a' <= ch && ch <= 'z' {
		return int(ch - 'a')
	}
	if ch == '\'' {
		return 26
	}
	return -1
}

func (n *trieNode) insert(word string) {
	if len(word) == 0 {
		n.isWord = true
		return
	}
	idx := trieIndex(word[0])
	if idx < 0 {
		return
	}
	if n.children[idx] == nil {
		n.children[idx] = &trieNode{}
	}
	n.children[idx].insert(word[1:])
}

func (n *trieNode) child(ch byte) *trieNode {
	idx := trieIndex(ch)
	if idx < 0 {
		return nil
	}
	return n.children[idx]
}

// hasPrefix reports whether any inserted word starts with str.
func (n *trieNode) hasPrefix(str string) bool {
	if n == nil {
		return false
	}
	if len(str) == 0 {
		return true
	}
	return n.child(str[0]).hasPrefix(str[1:])
}

// hasWord reports whether str itself was inserted.
func (n *trieNode) hasWord(str string) bool {
	if n == nil {
		return false
	}
	if len(str) == 0 {
		return n.isWord
	}
	return n.child(str[0]).hasWord(str[1:])
}
