// tile.go
//
// Tile, Letter and SquareEffect enumerations — the board's content and
// premium-square semantics. Ported from board.go's Tile/Square types and
// original_source/src/scrabble/board.rs's Tile enum.

package crossword

import "fmt"

// Letter is either a blank wildcard or an uppercase ASCII letter byte.
// The zero value is a non-blank Letter with byte 0 (use BlankLetter for the
// wildcard); ordering is blank < letter, matching spec.md §3.
type Letter struct {
	isBlank bool
	b       byte
}

// BlankLetter is the wildcard letter.
var BlankLetter = Letter{isBlank: true}

// NewLetter returns the Letter for an uppercase ASCII byte.
func NewLetter(b byte) Letter {
	return Letter{b: b}
}

// IsBlank reports whether l is the wildcard.
func (l Letter) IsBlank() bool { return l.isBlank }

// Byte returns the underlying uppercase ASCII byte; undefined for blanks.
func (l Letter) Byte() byte { return l.b }

// Less implements the ordering blank < letter required by spec.md §3.
func (l Letter) Less(other Letter) bool {
	if l.isBlank != other.isBlank {
		return l.isBlank
	}
	return l.b < other.b
}

func (l Letter) String() string {
	if l.isBlank {
		return "?"
	}
	return string(l.b)
}

// SquareEffect names a premium-square modifier.
type SquareEffect int

const (
	NoEffect SquareEffect = iota
	DoubleLetter
	TripleLetter
	DoubleWord
	TripleWord
	Center
)

// TileKind distinguishes the three states a board cell can be in.
type TileKind int

const (
	TileEmpty TileKind = iota
	TilePremium
	TilePlaced
)

// Tile is the content of one board cell: Empty, Premium(effect), or Placed(letter).
type Tile struct {
	Kind   TileKind
	Effect SquareEffect // valid when Kind == TilePremium
	Letter Letter       // valid when Kind == TilePlaced
	// WasBlank records that the placed letter was supplied by a blank
	// wildcard (and therefore scores zero), independent of which letter
	// it was assigned to stand in for.
	WasBlank bool
}

func emptyTile() Tile                  { return Tile{Kind: TileEmpty} }
func premiumTile(e SquareEffect) Tile  { return Tile{Kind: TilePremium, Effect: e} }
func placedTile(l Letter, blank bool) Tile {
	return Tile{Kind: TilePlaced, Letter: l, WasBlank: blank}
}

func (t Tile) String() string {
	switch t.Kind {
	case TilePlaced:
		return t.Letter.String()
	case TilePremium:
		switch t.Effect {
		case Center:
			return "C"
		case DoubleLetter:
			return "dl"
		case TripleLetter:
			return "tl"
		case DoubleWord:
			return "dw"
		case TripleWord:
			return "tw"
		}
	}
	return "."
}

// letterValue is the standard English point value of a letter, used by
// both the Bag (§3) and by scoring (§4.5).
func letterValue(l Letter) int {
	if l.IsBlank() {
		return 0
	}
	v, ok := englishLetterValues[l.Byte()]
	if !ok {
		panic(fmt.Sprintf("crossword: no point value for letter %q", l))
	}
	return v
}

var englishLetterValues = map[byte]int{
	'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2, 'H': 4, 'I': 1,
	'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1, 'P': 3, 'Q': 10, 'R': 1,
	'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4, 'Z': 10,
}

// englishLetterCounts is the standard English 100-tile distribution
// (spec.md §3), letters only; the blanks are counted by blankCount.
var englishLetterCounts = map[byte]int{
	'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12, 'F': 2, 'G': 3, 'H': 2, 'I': 9,
	'J': 1, 'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8, 'P': 2, 'Q': 1, 'R': 6,
	'S': 4, 'T': 6, 'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2, 'Z': 1,
}

// blankCount is the number of blank wildcards in the standard distribution.
const blankCount = 2
