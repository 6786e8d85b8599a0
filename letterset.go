// letterset.go
//
// A dense 256-bit membership set over byte-valued letters, used for
// cross-check hot paths (constant-time union membership). Ported from
// original_source/src/scrabble/letter_set.rs's two-word ([u128; 2]) bitset;
// here widened to [4]uint64 since Go has no native 128-bit integer — same
// 256-bit semantics, idiomatic word width for the host language.

package crossword

// LetterSet is a fixed 256-element boolean membership bitset over byte
// values (spec.md §4.2).
type LetterSet struct {
	bits [4]uint64
}

// EmptyLetterSet is the set containing no letters.
func EmptyLetterSet() LetterSet { return LetterSet{} }

// AnyLetterSet is the set containing every byte value (spec.md's "Empty(any)"
// sentinel: "cross-check imposes no restriction").
func AnyLetterSet() LetterSet {
	return LetterSet{bits: [4]uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}}
}

// LetterSetFrom builds a LetterSet from the given bytes.
func LetterSetFrom(bs ...byte) LetterSet {
	var s LetterSet
	for _, b := range bs {
		s.Insert(b)
	}
	return s
}

// Insert adds b to the set.
func (s *LetterSet) Insert(b byte) {
	s.bits[b/64] |= 1 << (uint(b) % 64)
}

// Contains reports whether b is a member of the set.
func (s LetterSet) Contains(b byte) bool {
	return s.bits[b/64]&(1<<(uint(b)%64)) != 0
}

// IsEmpty reports whether the set contains no letters.
func (s LetterSet) IsEmpty() bool {
	return s.bits == [4]uint64{}
}

// IsAny reports whether the set contains every byte value.
func (s LetterSet) IsAny() bool {
	return s.bits == [4]uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}
}
