package trie

import (
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// MinWordLength is the minimum number of runes of a word to be stored in a trie.
// Single characters are looked up on their own and never enter a trie.
const MinWordLength = 2

// node is a position within one or more words. Children are ordered by rune.
type node struct {
	children *treemap.Map // rune → *node, nil for leafs
	terminal bool         // a word ends here
}

func (n *node) child(r rune) *node {
	if n.children == nil {
		return nil
	}
	if ch, found := n.children.Get(r); found {
		return ch.(*node)
	}
	return nil
}

func (n *node) addChild(r rune) *node {
	if ch := n.child(r); ch != nil {
		return ch
	}
	if n.children == nil {
		n.children = treemap.NewWith(utils.RuneComparator)
	}
	ch := &node{}
	n.children.Put(r, ch)
	return ch
}

// Trie is a prefix tree of words. A Trie is immutable once created.
type Trie struct {
	root  *node
	size  int // number of words
	nodes int // number of nodes, excluding root
}

// New creates a trie from a list of words. Words shorter than MinWordLength
// runes are skipped. Duplicate words are stored once.
func New(words ...string) *Trie {
	trie := &Trie{root: &node{}}
	for _, w := range words {
		if utf8.RuneCountInString(w) < MinWordLength {
			tracer().Infof("trie: skipping word %q, shorter than %d runes", w, MinWordLength)
			continue
		}
		trie.insert(w)
	}
	tracer().Debugf("trie: created with %d words and %d nodes", trie.size, trie.nodes)
	return trie
}

func (trie *Trie) insert(word string) {
	n := trie.root
	for _, r := range word {
		if ch := n.child(r); ch != nil {
			n = ch
			continue
		}
		n = n.addChild(r)
		trie.nodes++
	}
	if !n.terminal {
		n.terminal = true
		trie.size++
	}
}

// Size returns the number of words in the trie.
func (trie *Trie) Size() int {
	return trie.size
}

// Contains is a predicate: is word one of the words of the trie?
func (trie *Trie) Contains(word string) bool {
	it := trie.Iterator()
	for _, r := range word {
		if !it.Next(r) {
			return false
		}
	}
	return it.Terminal()
}

// Words returns all words of the trie, ordered by code-point.
func (trie *Trie) Words() []string {
	words := make([]string, 0, trie.size)
	prefix := make([]rune, 0, 8)
	var collect func(*node)
	collect = func(n *node) {
		if n.terminal {
			words = append(words, string(prefix))
		}
		if n.children == nil {
			return
		}
		it := n.children.Iterator()
		for it.Next() {
			prefix = append(prefix, it.Key().(rune))
			collect(it.Value().(*node))
			prefix = prefix[:len(prefix)-1]
		}
	}
	collect(trie.root)
	return words
}

// Stats prints some useful information about the trie on the Info trace.
func (trie *Trie) Stats() {
	tracer().Infof("Trie Statistics:")
	tracer().Infof("  Words: %d", trie.size)
	tracer().Infof("  Nodes: %d", trie.nodes)
	if trie.size > 0 {
		tracer().Infof("  Nodes per word: %.2f", float32(trie.nodes)/float32(trie.size))
	}
}

// --- Iterator --------------------------------------------------------------

// Iterator is a one-off iterator to walk down the trie, one rune at a time.
type Iterator struct {
	n     *node
	depth int
}

// Iterator returns an iterator positioned at the root of the trie.
func (trie *Trie) Iterator() *Iterator {
	return &Iterator{n: trie.root}
}

// Next advances the iterator to the child for r. If it returns false, the
// runes seen so far plus r are not a prefix of any word and the iterator
// is exhausted.
func (it *Iterator) Next(r rune) bool {
	if it.n == nil {
		return false
	}
	it.n = it.n.child(r)
	if it.n == nil {
		return false
	}
	it.depth++
	return true
}

// Terminal is true if the runes seen so far form a word of the trie.
func (it *Iterator) Terminal() bool {
	return it.n != nil && it.n.terminal
}

// Depth returns the number of runes matched so far.
func (it *Iterator) Depth() int {
	return it.depth
}
