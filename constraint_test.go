package crossword

import "testing"

func TestConstraintGridOpenBoardHasAnyLetters(t *testing.T) {
	lex := NewLexicon([]string{"cabbage", "cage", "beat"})
	b := NewBoard()
	grid := BuildConstraintGrid(b, lex)
	center := Position{Row: BoardSize / 2, Col: BoardSize / 2}
	c := grid.Constraint(center, Across)
	if !c.Letters.IsAny() {
		t.Fatalf("expected an isolated empty square to accept any letter")
	}
	if !c.Anchor {
		t.Fatalf("expected the center square to be an anchor on an empty board")
	}
}

func TestConstraintGridCrossCheckRestriction(t *testing.T) {
	lex := NewLexicon([]string{"cabbage", "cage", "beat"})
	b := NewBoard()
	b.PlaceLetter(Position{Row: 5, Col: 7}, NewLetter('C'), false)
	b.PlaceLetter(Position{Row: 6, Col: 7}, NewLetter('A'), false)
	// (7,7) has "CA" directly above it along Down. That Down fragment
	// bounds the Across constraint at (7,7): a letter placed there must
	// complete "CA?" into a word, and none of cabbage/cage/beat has three
	// letters, so the set is restricted (here: empty), not any.
	grid := BuildConstraintGrid(b, lex)
	below := Position{Row: 7, Col: 7}
	c := grid.Constraint(below, Across)
	if c.Letters.IsAny() {
		t.Fatalf("expected the cross-check below CA to be restricted by the lexicon, not unrestricted")
	}
}

func TestConstraintGridLineQueriesCoverAnchors(t *testing.T) {
	lex := NewLexicon([]string{"cabbage"})
	b := NewBoard()
	grid := BuildConstraintGrid(b, lex)
	row := BoardSize / 2
	queries := grid.Lines(Across)[row]
	found := false
	for _, q := range queries {
		if q.Anchor == BoardSize/2 {
			found = true
			if q.MaxLeft != BoardSize/2 || q.MaxRight != BoardSize/2 {
				t.Fatalf("expected full-width bounds around the center anchor on an empty board, got %+v", q)
			}
		}
	}
	if !found {
		t.Fatalf("expected the center square to appear as a line query anchor")
	}
}
