package crossword

import "testing"

func TestSearchLineFindsPayableWord(t *testing.T) {
	lex := NewLexicon([]string{"beat"})
	rack := NewRack()
	for _, b := range []byte("BEAT") {
		rack.Add(NewLetter(b))
	}
	cells := make([]LineCell, 4)
	for i := range cells {
		cells[i] = LineCell{Constraint: Constraint{Letters: AnyLetterSet()}}
	}
	matches := SearchLine(lex, cells, 0, rack)
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if string(matches[0].Word) != "BEAT" {
		t.Fatalf("matched word = %q, want BEAT", matches[0].Word)
	}
}

func TestSearchLineRespectsRackLimits(t *testing.T) {
	lex := NewLexicon([]string{"beat"})
	rack := NewRack()
	// Missing the T.
	for _, b := range []byte("BEA") {
		rack.Add(NewLetter(b))
	}
	cells := make([]LineCell, 4)
	for i := range cells {
		cells[i] = LineCell{Constraint: Constraint{Letters: AnyLetterSet()}}
	}
	matches := SearchLine(lex, cells, 0, rack)
	if len(matches) != 0 {
		t.Fatalf("expected no matches without a T in the rack, got %d", len(matches))
	}
}

func TestSearchLineUsesBlankForMissingLetter(t *testing.T) {
	lex := NewLexicon([]string{"beat"})
	rack := NewRack()
	for _, b := range []byte("BEA") {
		rack.Add(NewLetter(b))
	}
	rack.Add(BlankLetter)
	cells := make([]LineCell, 4)
	for i := range cells {
		cells[i] = LineCell{Constraint: Constraint{Letters: AnyLetterSet()}}
	}
	matches := SearchLine(lex, cells, 0, rack)
	if len(matches) != 1 {
		t.Fatalf("expected the blank to fill in for T, got %d matches", len(matches))
	}
	if letter, ok := matches[0].BlankAt(3); !ok || letter.Byte() != 'T' {
		t.Fatalf("expected span index 3 to be a blank standing in for T")
	}
}

func TestBuildLineCellsRejectsNonMaximalSpan(t *testing.T) {
	b := NewBoard()
	lex := NewLexicon([]string{"cage"})
	// An occupied square at col 9, with nothing at col 6, 7 or 8.
	b.PlaceLetter(Position{Row: 7, Col: 9}, NewLetter('Y'), false)
	grid := BuildConstraintGrid(b, lex)
	if _, ok := BuildLineCells(b, grid, Across, 7, 7, 2); ok {
		t.Fatalf("expected span [7,9) to be rejected: square after it (col 9) is occupied")
	}
	if _, ok := BuildLineCells(b, grid, Across, 7, 7, 1); !ok {
		t.Fatalf("expected span [7,8) to be accepted: square after it (col 8) is empty")
	}
}
