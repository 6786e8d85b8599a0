package crossword

import "testing"

func TestNewBoardCenterIsAnchorWhenEmpty(t *testing.T) {
	b := NewBoard()
	center := Position{Row: BoardSize / 2, Col: BoardSize / 2}
	if !b.IsAnchor(center) {
		t.Fatalf("expected the center square to be an anchor on an empty board")
	}
	other := Position{Row: 0, Col: 0}
	if b.IsAnchor(other) {
		t.Fatalf("did not expect a corner to be an anchor on an empty board")
	}
}

func TestBoardPlaceLetterAndAnchors(t *testing.T) {
	b := NewBoard()
	center := Position{Row: BoardSize / 2, Col: BoardSize / 2}
	b.PlaceLetter(center, NewLetter('C'), false)
	if !b.IsOccupied(center) {
		t.Fatalf("expected center to be occupied after placing a letter")
	}
	right := Position{Row: center.Row, Col: center.Col + 1}
	if !b.IsAnchor(right) {
		t.Fatalf("expected the square beside a placed tile to be an anchor")
	}
}

func TestBoardCrossFragments(t *testing.T) {
	b := NewBoard()
	b.PlaceLetter(Position{Row: 5, Col: 7}, NewLetter('C'), false)
	b.PlaceLetter(Position{Row: 6, Col: 7}, NewLetter('A'), false)
	prefix, suffix := b.CrossFragments(Position{Row: 7, Col: 7}, Down)
	if string(prefix) != "CA" {
		t.Fatalf("prefix = %q, want %q", prefix, "CA")
	}
	if len(suffix) != 0 {
		t.Fatalf("suffix = %q, want empty", suffix)
	}
}

func TestBoardScoreWordAppliesMultipliers(t *testing.T) {
	b := NewBoard()
	// (0,0) is a triple-word square.
	positions := []Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	b.PlaceLetter(positions[0], NewLetter('A'), false)
	b.PlaceLetter(positions[1], NewLetter('B'), false)
	fresh := map[Position]bool{positions[0]: true, positions[1]: true}
	// A=1, B=3, tripled as a word: (1+3)*3 = 12.
	if got, want := b.ScoreWord(positions, fresh), 12; got != want {
		t.Fatalf("ScoreWord = %d, want %d", got, want)
	}
}
