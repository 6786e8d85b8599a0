package crossword

import "testing"

func TestLexiconFind(t *testing.T) {
	lex := NewLexicon([]string{"cabbage", "cage", "beat"})
	if !lex.Find([]byte("CABBAGE")) {
		t.Fatalf("expected CABBAGE to be found")
	}
	if lex.Find([]byte("CAB")) {
		t.Fatalf("did not expect CAB to be found")
	}
}

func TestLexiconCrossCheckSet(t *testing.T) {
	lex := NewLexicon([]string{"cabbage", "cage", "beat"})
	// "CA" + ? + "E" should accept only 'G' (CAGE).
	set := lex.CrossCheckSet([]byte("CA"), []byte("E"))
	if !set.Contains('G') {
		t.Fatalf("expected CrossCheckSet(CA, E) to contain G (CAGE)")
	}
	if set.Contains('B') {
		t.Fatalf("did not expect CrossCheckSet(CA, E) to contain B")
	}
}

func TestLexiconCrossCheckSetIsCached(t *testing.T) {
	lex := NewLexicon([]string{"beat"})
	first := lex.CrossCheckSet([]byte("BE"), []byte("T"))
	second := lex.CrossCheckSet([]byte("BE"), []byte("T"))
	if first != second {
		t.Fatalf("expected cached CrossCheckSet call to return the same result")
	}
}
