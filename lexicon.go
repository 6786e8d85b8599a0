// lexicon.go
//
// The vocabulary acceptor consumed by the constraint grid and the
// word-search automaton (spec.md §6's "Lexicon acceptor": a byte-string
// set supporting a streaming search with an externally provided state
// machine). spec.md scopes lexicon *compilation* from a word-list file out
// of the core (§1); this is the one concrete in-process implementation the
// core needs to actually run end to end, grounded on the Navigator
// traversal idiom of the teacher's dawg.go/navigators.go but backed by a
// plain in-memory trie built from a []string rather than a compressed
// on-disk DAWG — building that trie at construction time IS the
// "compilation" spec.md excludes from the core's responsibility, so it is
// kept to this one file with a narrow, swappable contract.

package crossword

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	lru "github.com/hashicorp/golang-lru/simplelru"
)

// LoadLexiconFile builds a Lexicon from a newline-delimited word list
// file, one word per line, blank lines and lines starting with '#'
// ignored. This is the one piece of file-based lexicon loading spec.md's
// core scope excludes (§1) but a runnable CLI still needs.
func LoadLexiconFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("crossword: opening word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("crossword: reading word list: %w", err)
	}
	return NewLexicon(words), nil
}

// AutomatonState is an opaque per-step state value threaded through a
// Search; a nil state means the automaton has died on this path.
type AutomatonState any

// Automaton is the externally provided state machine the lexicon's Search
// drives byte-by-byte, mirroring the fst crate's Automaton trait that
// original_source/src/scrabble/{constraint/searcher.rs,word_search.rs}
// implement.
type Automaton interface {
	// Start returns the initial state.
	Start() AutomatonState
	// Accept returns the state after consuming b, or nil if the
	// automaton cannot continue on this path.
	Accept(s AutomatonState, b byte) AutomatonState
	// IsMatch reports whether s is an accepting (terminal) state.
	IsMatch(s AutomatonState) bool
	// CanMatch reports whether any extension of s could still match;
	// used to prune dead branches early.
	CanMatch(s AutomatonState) bool
}

// Match is one accepted word from a Search, paired with the automaton's
// final state (used by callers to read out anything the automaton state
// carries — blank assignments, matched wildcard letters, and so on).
type Match struct {
	Word  []byte
	State AutomatonState
}

type trieNode struct {
	children map[byte]*trieNode
	terminal bool
}

// Lexicon is an in-memory finite-state acceptor over a fixed vocabulary.
type Lexicon struct {
	root       *trieNode
	crossCache *crossCheckCache
}

// NewLexicon builds a Lexicon from a word list. Words are upper-cased on
// insert; this is the "lexicon compilation" step spec.md treats as an
// external collaborator — production callers would instead load a word
// list via LoadLexiconFile.
func NewLexicon(words []string) *Lexicon {
	root := &trieNode{children: make(map[byte]*trieNode)}
	for _, w := range words {
		insertWord(root, []byte(upper(w)))
	}
	return &Lexicon{root: root, crossCache: newCrossCheckCache(4096)}
}

func insertWord(root *trieNode, word []byte) {
	n := root
	for _, b := range word {
		child, ok := n.children[b]
		if !ok {
			child = &trieNode{children: make(map[byte]*trieNode)}
			n.children[b] = child
		}
		n = child
	}
	n.terminal = true
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// Find reports whether word is in the vocabulary.
func (lex *Lexicon) Find(word []byte) bool {
	n := lex.root
	for _, b := range word {
		child, ok := n.children[b]
		if !ok {
			return false
		}
		n = child
	}
	return n.terminal
}

// Search walks the trie depth-first, driving a against each edge byte,
// and returns every word for which the automaton reaches an accepting
// state exactly at a dictionary terminal node. Children are visited in Go
// map iteration order, so the order of the results is not defined. This mirrors
// fst's Set::search_with_state used throughout original_source/src/scrabble.
func (lex *Lexicon) Search(a Automaton) []Match {
	var results []Match
	var word []byte
	var walk func(n *trieNode, s AutomatonState)
	walk = func(n *trieNode, s AutomatonState) {
		if n.terminal && a.IsMatch(s) {
			w := make([]byte, len(word))
			copy(w, word)
			results = append(results, Match{Word: w, State: s})
		}
		for b, child := range n.children {
			next := a.Accept(s, b)
			if next == nil || !a.CanMatch(next) {
				continue
			}
			word = append(word, b)
			walk(child, next)
			word = word[:len(word)-1]
		}
	}
	walk(lex.root, a.Start())
	return results
}

// crossCheckCache caches prefix|suffix → LetterSet lookups, grounded on
// dawg.go's crossCache (github.com/hashicorp/golang-lru's simplelru.LRU).
type crossCheckCache struct {
	lru *lru.LRU
}

func newCrossCheckCache(size int) *crossCheckCache {
	l, err := lru.NewLRU(size, nil)
	if err != nil {
		// Only returns an error for a non-positive size, which never
		// happens with our fixed constant.
		panic(err)
	}
	return &crossCheckCache{lru: l}
}

// CrossCheckSet returns the set of letters that, inserted between prefix
// and suffix, complete a vocabulary word (spec.md §4.3). An empty prefix
// and suffix is handled by the caller as LetterSet any() without
// consulting the lexicon at all (original_source/src/scrabble/constraint/grid.rs's
// fast path).
func (lex *Lexicon) CrossCheckSet(prefix, suffix []byte) LetterSet {
	key := string(prefix) + "|" + string(suffix)
	if v, ok := lex.crossCache.lru.Get(key); ok {
		return v.(LetterSet)
	}
	s := lex.computeCrossCheckSet(prefix, suffix)
	lex.crossCache.lru.Add(key, s)
	return s
}

func (lex *Lexicon) computeCrossCheckSet(prefix, suffix []byte) LetterSet {
	automaton := &constraintSearcher{prefix: prefix, suffix: suffix}
	matches := lex.Search(automaton)
	var set LetterSet
	for _, m := range matches {
		st := m.State.(*constraintSearcherState)
		set.Insert(st.wildcard)
	}
	return set
}

// constraintSearcher is the automaton that drives CrossCheckSet: it
// matches prefix exactly, accepts exactly one unconstrained byte (the
// candidate cross-check letter), then matches suffix exactly. Ported from
// original_source/src/scrabble/constraint/searcher.rs's ConstraintSearcher.
type constraintSearcher struct {
	prefix, suffix []byte
}

type constraintSearcherState struct {
	pos      int
	wildcard byte
	matched  bool
}

func (c *constraintSearcher) Start() AutomatonState {
	return &constraintSearcherState{}
}

func (c *constraintSearcher) Accept(s AutomatonState, b byte) AutomatonState {
	st := s.(*constraintSearcherState)
	next := *st
	switch {
	case next.pos < len(c.prefix):
		if c.prefix[next.pos] != b {
			return nil
		}
		next.pos++
		return &next
	case next.pos == len(c.prefix):
		next.wildcard = b
		next.pos++
		return &next
	default:
		si := next.pos - len(c.prefix) - 1
		if si >= len(c.suffix) || c.suffix[si] != b {
			return nil
		}
		next.pos++
		if si == len(c.suffix)-1 {
			next.matched = true
		}
		return &next
	}
}

func (c *constraintSearcher) IsMatch(s AutomatonState) bool {
	st, ok := s.(*constraintSearcherState)
	if !ok {
		return false
	}
	return st.pos == len(c.prefix)+1+len(c.suffix) && (len(c.suffix) == 0 || st.matched)
}

func (c *constraintSearcher) CanMatch(s AutomatonState) bool {
	return s != nil
}
