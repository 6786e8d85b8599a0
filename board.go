// board.go
//
// The 15x15 playing surface: premium-square layout, placed tiles, and the
// cross-fragment/anchor queries the constraint grid builds on. Rewritten
// from the teacher's board.go — same digit-string premium layout encoding
// (WORD_MULTIPLIERS_STANDARD/LETTER_MULTIPLIERS_STANDARD) and Fragment-style
// directional scan, collapsed from the teacher's per-language Board/Square
// pointer-adjacency design onto spec.md §3's single standard board and
// value-semantics Tile squares.

package crossword

import "strings"

// wordMultipliers and letterMultipliers are the standard 15x15 Scrabble
// premium-square layout (spec.md §6), digit-encoded exactly as the
// teacher's board.go: '1' is a plain square, '2'/'3' a double/triple
// multiplier. The center square (7,7) carries a word multiplier of 2 and
// is additionally marked Center for the opening-move anchor rule.
var wordMultipliers = [BoardSize]string{
	"311111131111113",
	"121111111111121",
	"112111111111211",
	"111211111112111",
	"111121111121111",
	"111111111111111",
	"111111111111111",
	"311111121111113",
	"111111111111111",
	"111111111111111",
	"111121111121111",
	"111211111112111",
	"112111111111211",
	"121111111111121",
	"311111131111113",
}

var letterMultipliers = [BoardSize]string{
	"111211111112111",
	"111113111311111",
	"111111212111111",
	"211111121111112",
	"111111111111111",
	"131113111311131",
	"112111212111211",
	"111211111112111",
	"112111212111211",
	"131113111311131",
	"111111111111111",
	"211111121111112",
	"111111212111111",
	"111113111311111",
	"111211111112111",
}

func effectFor(row, col int) SquareEffect {
	if row == BoardSize/2 && col == BoardSize/2 {
		return Center
	}
	w := wordMultipliers[row][col]
	l := letterMultipliers[row][col]
	switch {
	case w == '3':
		return TripleWord
	case w == '2':
		return DoubleWord
	case l == '3':
		return TripleLetter
	case l == '2':
		return DoubleLetter
	default:
		return NoEffect
	}
}

// wordMultiplierAt and letterMultiplierAt give the raw scoring factors for
// a square, independent of which SquareEffect label it carries (the
// center square is both "Center" and a double-word square).
func wordMultiplierAt(row, col int) int { return int(wordMultipliers[row][col] - '0') }
func letterMultiplierAt(row, col int) int {
	return int(letterMultipliers[row][col] - '0')
}

// Board is the 15x15 crossword grid.
type Board struct {
	cells [BoardSize][BoardSize]Tile
}

// NewBoard returns an empty board with the standard premium layout.
func NewBoard() *Board {
	b := &Board{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			e := effectFor(row, col)
			if e == NoEffect {
				b.cells[row][col] = emptyTile()
			} else {
				b.cells[row][col] = premiumTile(e)
			}
		}
	}
	return b
}

// Clone returns a value-semantics copy of the board (spec.md §5).
func (b *Board) Clone() *Board {
	nb := &Board{}
	nb.cells = b.cells
	return nb
}

// At returns the tile at p.
func (b *Board) At(p Position) Tile { return b.cells[p.Row][p.Col] }

// IsOccupied reports whether p already holds a placed letter.
func (b *Board) IsOccupied(p Position) bool {
	return b.cells[p.Row][p.Col].Kind == TilePlaced
}

// IsEmptyBoard reports whether no tile has been placed anywhere.
func (b *Board) IsEmptyBoard() bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.cells[row][col].Kind == TilePlaced {
				return false
			}
		}
	}
	return true
}

// IsAnchor reports whether an empty square p is eligible to start or
// extend a play: adjacent (along either axis) to an existing tile, or —
// on a wholly empty board — the center square (spec.md §4.3).
func (b *Board) IsAnchor(p Position) bool {
	if b.IsOccupied(p) {
		return false
	}
	if b.IsEmptyBoard() {
		return p.Row == BoardSize/2 && p.Col == BoardSize/2
	}
	for _, dir := range [2]Direction{Across, Down} {
		if n, ok := p.Step(dir); ok && b.IsOccupied(n) {
			return true
		}
		if n, ok := p.Back(dir); ok && b.IsOccupied(n) {
			return true
		}
	}
	return false
}

// CrossFragments returns the run of placed letters immediately before and
// after p along dir — the fixed prefix/suffix a cross-check at p must fit
// between (spec.md §4.3). Both are empty if p has no neighbor along dir.
func (b *Board) CrossFragments(p Position, dir Direction) (prefix, suffix []byte) {
	for cur, ok := p.Back(dir); ok && b.IsOccupied(cur); cur, ok = cur.Back(dir) {
		prefix = append([]byte{b.At(cur).Letter.Byte()}, prefix...)
	}
	for cur, ok := p.Step(dir); ok && b.IsOccupied(cur); cur, ok = cur.Step(dir) {
		suffix = append(suffix, b.At(cur).Letter.Byte())
	}
	return prefix, suffix
}

// PlaceLetter places a letter tile at p, recording whether it came from a
// blank wildcard. It panics if p already holds a different letter.
func (b *Board) PlaceLetter(p Position, l Letter, wasBlank bool) {
	if t := b.cells[p.Row][p.Col]; t.Kind == TilePlaced && t.Letter != l {
		panic("crossword: Board.PlaceLetter: square already holds a different letter")
	}
	b.cells[p.Row][p.Col] = placedTile(l, wasBlank)
}

// WordLetters reads the full contiguous word running through p along dir
// (the maximal run of placed tiles containing p).
func (b *Board) WordLetters(p Position, dir Direction) []byte {
	start := p
	for cur, ok := start.Back(dir); ok && b.IsOccupied(cur); cur, ok = cur.Back(dir) {
		start = cur
	}
	var word []byte
	for cur, ok := start, true; ok && b.IsOccupied(cur); cur, ok = cur.Step(dir) {
		word = append(word, b.At(cur).Letter.Byte())
	}
	return word
}

// WordPositions returns the positions of the maximal run of occupied
// cells along dir that contains p (p itself must already be occupied —
// callers score a move against the board state *after* applying it).
func (b *Board) WordPositions(p Position, dir Direction) []Position {
	start := p
	for cur, ok := start.Back(dir); ok && b.IsOccupied(cur); cur, ok = cur.Back(dir) {
		start = cur
	}
	var positions []Position
	for cur, ok := start, true; ok && b.IsOccupied(cur); cur, ok = cur.Step(dir) {
		positions = append(positions, cur)
	}
	return positions
}

// ScoreWord computes the score of the word occupying the cells in
// positions (a full word, both newly placed and pre-existing tiles),
// applying letter multipliers only on squares not yet covered before this
// play and the highest word multiplier among them, per spec.md §4.5. freshlyPlaced
// marks which positions were placed by the move under evaluation.
func (b *Board) ScoreWord(positions []Position, freshlyPlaced map[Position]bool) int {
	total := 0
	wordMult := 1
	for _, p := range positions {
		t := b.At(p)
		v := letterValue(t.Letter)
		if t.WasBlank {
			v = 0
		}
		if freshlyPlaced[p] {
			v *= letterMultiplierAt(p.Row, p.Col)
			if m := wordMultiplierAt(p.Row, p.Col); m > wordMult {
				wordMult = m
			}
		}
		total += v
	}
	return total * wordMult
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sb.WriteString(b.cells[row][col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
