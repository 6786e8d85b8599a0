// wordsearch.go
//
// The per-line word-search automaton: given a span of board squares (some
// fixed by existing tiles, some open and cross-check constrained) and a
// player's rack, enumerate every dictionary word that fits the span and
// is payable from the rack (using blanks as a last resort). Ported from
// original_source/src/scrabble/word_search.rs's WordSearcher/WordSearcherState,
// with its persistent singly-linked BlankAssignmentList kept as-is — the
// search explores many candidate branches sharing long common prefixes of
// blank assignments, so a linked list avoids copying on every branch the
// way cloning a slice or map would.

package crossword

// LineCell is one square along the span being searched: either Fixed (an
// existing tile the candidate word must match exactly) or Open (empty,
// constrained by the perpendicular cross-check at that square).
type LineCell struct {
	Fixed      bool
	Letter     Letter
	Constraint Constraint
}

// TrayRemaining tracks how many of each rack letter, and how many blanks,
// are still available partway through a search branch.
type TrayRemaining struct {
	counts [26]int8
	blanks int8
}

func trayFromRack(r *Rack) TrayRemaining {
	var t TrayRemaining
	for b, n := range r.Letters {
		t.counts[b-'A'] = int8(n)
	}
	t.blanks = int8(r.Blanks)
	return t
}

// blankAssignment is one node of the persistent linked list recording
// which span index was filled by a blank tile, and which letter it was
// assigned to stand in for.
type blankAssignment struct {
	index  int
	letter Letter
	next   *blankAssignment
}

type wordSearcherState struct {
	idx           int
	tray          TrayRemaining
	blanks        *blankAssignment
	anchorCrossed bool
}

// wordSearcher is the Automaton that drives a Lexicon.Search over one
// candidate span.
type wordSearcher struct {
	cells        []LineCell
	anchorOffset int
	rack         *Rack
}

func (w *wordSearcher) Start() AutomatonState {
	return &wordSearcherState{tray: trayFromRack(w.rack)}
}

func (w *wordSearcher) Accept(s AutomatonState, b byte) AutomatonState {
	st := s.(*wordSearcherState)
	if st.idx >= len(w.cells) {
		return nil
	}
	cell := w.cells[st.idx]
	next := wordSearcherState{
		idx:           st.idx + 1,
		tray:          st.tray,
		blanks:        st.blanks,
		anchorCrossed: st.anchorCrossed || st.idx == w.anchorOffset,
	}
	if cell.Fixed {
		if cell.Letter.Byte() != b {
			return nil
		}
		return &next
	}
	if !cell.Constraint.Letters.Contains(b) {
		return nil
	}
	li := int(b - 'A')
	switch {
	case next.tray.counts[li] > 0:
		next.tray.counts[li]--
	case next.tray.blanks > 0:
		next.tray.blanks--
		next.blanks = &blankAssignment{index: st.idx, letter: NewLetter(b), next: st.blanks}
	default:
		return nil
	}
	return &next
}

func (w *wordSearcher) IsMatch(s AutomatonState) bool {
	st, ok := s.(*wordSearcherState)
	if !ok {
		return false
	}
	return st.idx == len(w.cells) && st.anchorCrossed
}

func (w *wordSearcher) CanMatch(s AutomatonState) bool {
	return s != nil
}

// isBlankAt reports whether the tile at span index i was supplied by a
// blank in this match's assignment chain, and if so, which letter it
// stands in for.
func isBlankAt(chain *blankAssignment, i int) (Letter, bool) {
	for n := chain; n != nil; n = n.next {
		if n.index == i {
			return n.letter, true
		}
	}
	return Letter{}, false
}

// LineMatch is one accepted span word, with enough information for the
// caller to translate it into placed tiles at real board positions.
type LineMatch struct {
	Word   []byte
	Placed []int // span indices that are newly covered (Open cells)
	blanks *blankAssignment
}

// BlankAt reports whether match placed a blank at span index i, and if
// so, the letter it was assigned to stand in for.
func (m LineMatch) BlankAt(i int) (Letter, bool) {
	return isBlankAt(m.blanks, i)
}

// SearchLine enumerates every dictionary word that fits cells and is
// payable from rack, crossing the anchor at anchorOffset.
func SearchLine(lex *Lexicon, cells []LineCell, anchorOffset int, rack *Rack) []LineMatch {
	automaton := &wordSearcher{cells: cells, anchorOffset: anchorOffset, rack: rack}
	matches := lex.Search(automaton)
	results := make([]LineMatch, 0, len(matches))
	for _, m := range matches {
		st := m.State.(*wordSearcherState)
		var placed []int
		for i, c := range cells {
			if !c.Fixed {
				placed = append(placed, i)
			}
		}
		results = append(results, LineMatch{Word: m.Word, Placed: placed, blanks: st.blanks})
	}
	return results
}

// BuildLineCells assembles the span [start, start+length) along dir on
// line, returning ok=false if the span is not a maximal word boundary —
// i.e. the square immediately before start or after the span end is
// already occupied, which would make this span part of a longer word
// rather than a complete one (original_source/src/scrabble/state.rs's
// MoveGrid enumerates only maximal spans).
func BuildLineCells(board *Board, grid *ConstraintGrid, dir Direction, line, start, length int) ([]LineCell, bool) {
	cells := make([]LineCell, length)
	for i := 0; i < length; i++ {
		p := positionOnLine(dir, line, start+i)
		if board.IsOccupied(p) {
			cells[i] = LineCell{Fixed: true, Letter: board.At(p).Letter}
		} else {
			cells[i] = LineCell{Constraint: grid.Constraint(p, dir)}
		}
	}
	if before := positionOnLine(dir, line, start-1); start > 0 && board.IsOccupied(before) {
		return nil, false
	}
	if after := positionOnLine(dir, line, start+length); start+length < BoardSize && board.IsOccupied(after) {
		return nil, false
	}
	return cells, true
}
