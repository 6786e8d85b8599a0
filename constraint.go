// constraint.go
//
// Per-square cross-check constraints and per-line anchor queries, computed
// once per board state and consulted by the word-search automaton while it
// walks a line. Ported from original_source/src/scrabble/constraint/grid.rs's
// ConstraintGrid::build/fill_constraints/compute_queries.

package crossword

// Constraint is the cross-check state of one empty board square: the set
// of letters that may legally be placed there (given whatever is already
// on the perpendicular line through it), and whether the square is an
// anchor — adjacent to an existing tile, or the board's opening center
// square on an empty board (spec.md §4.2/§4.3).
type Constraint struct {
	Letters LetterSet
	Anchor  bool
}

// LineQuery describes one contiguous playable run along a line: an anchor
// position and the maximum number of additional tiles that may extend the
// play to the left (MaxLeft) and right (MaxRight) before hitting the
// board edge or an existing tile, per spec.md §4.3's "minimum_length"
// anchor-rooted queries.
type LineQuery struct {
	Anchor   int
	MaxLeft  int
	MaxRight int
}

// ConstraintGrid is the full set of per-square constraints and per-line
// anchor queries for a board state, computed fresh before each move
// generation pass (spec.md §4.3, §5: "constraint grids... are recomputed
// per anchor search, not shared across tree nodes").
type ConstraintGrid struct {
	board       *Board
	lexicon     *Lexicon
	across      [BoardSize][BoardSize]Constraint
	down        [BoardSize][BoardSize]Constraint
	acrossLines [BoardSize][]LineQuery
	downLines   [BoardSize][]LineQuery
}

// BuildConstraintGrid computes the full constraint grid for the given
// board against lex.
func BuildConstraintGrid(board *Board, lex *Lexicon) *ConstraintGrid {
	g := &ConstraintGrid{board: board, lexicon: lex}
	g.fillConstraints(Across)
	g.fillConstraints(Down)
	g.computeQueries(Across)
	g.computeQueries(Down)
	return g
}

// Constraint returns the cross-check constraint for (row,col) along dir —
// the perpendicular direction is what actually bounds the letter set,
// e.g. the Across constraint at a square is computed from the Down word
// fragment crossing it.
func (g *ConstraintGrid) Constraint(p Position, dir Direction) Constraint {
	if dir == Across {
		return g.across[p.Row][p.Col]
	}
	return g.down[p.Row][p.Col]
}

// Lines returns the anchor-rooted line queries for every row (dir ==
// Across) or every column (dir == Down).
func (g *ConstraintGrid) Lines(dir Direction) [BoardSize][]LineQuery {
	if dir == Across {
		return g.acrossLines
	}
	return g.downLines
}

func (g *ConstraintGrid) fillConstraints(dir Direction) {
	cross := dir.Flip()
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := Position{Row: row, Col: col}
			if g.board.IsOccupied(p) {
				continue
			}
			prefix, suffix := g.board.CrossFragments(p, cross)
			anchor := g.board.IsAnchor(p)
			var letters LetterSet
			switch {
			case len(prefix) == 0 && len(suffix) == 0:
				letters = AnyLetterSet()
			default:
				letters = g.lexicon.CrossCheckSet(prefix, suffix)
			}
			c := Constraint{Letters: letters, Anchor: anchor}
			if dir == Across {
				g.across[row][col] = c
			} else {
				g.down[row][col] = c
			}
		}
	}
}

func (g *ConstraintGrid) computeQueries(dir Direction) {
	for line := 0; line < BoardSize; line++ {
		var queries []LineQuery
		for along := 0; along < BoardSize; along++ {
			p := positionOnLine(dir, line, along)
			if !g.board.IsAnchor(p) || g.board.IsOccupied(p) {
				continue
			}
			maxLeft := 0
			for a := along - 1; a >= 0; a-- {
				if g.board.IsOccupied(positionOnLine(dir, line, a)) {
					break
				}
				maxLeft++
			}
			maxRight := 0
			for a := along + 1; a < BoardSize; a++ {
				if g.board.IsOccupied(positionOnLine(dir, line, a)) {
					break
				}
				maxRight++
			}
			queries = append(queries, LineQuery{Anchor: along, MaxLeft: maxLeft, MaxRight: maxRight})
		}
		if dir == Across {
			g.acrossLines[line] = queries
		} else {
			g.downLines[line] = queries
		}
	}
}

func positionOnLine(dir Direction, line, along int) Position {
	if dir == Across {
		return Position{Row: line, Col: along}
	}
	return Position{Row: along, Col: line}
}
