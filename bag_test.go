package crossword

import (
	"math/rand"
	"testing"
)

func TestNewEnglishBagHasStandardDistribution(t *testing.T) {
	bag := NewEnglishBag(rand.New(rand.NewSource(1)))
	if got, want := bag.Count(), 100; got != want {
		t.Fatalf("Count() = %d, want %d", got, want)
	}
	counts := make(map[byte]int)
	blanks := 0
	for _, l := range bag.tiles {
		if l.IsBlank() {
			blanks++
		} else {
			counts[l.Byte()]++
		}
	}
	if blanks != blankCount {
		t.Fatalf("blanks = %d, want %d", blanks, blankCount)
	}
	for letter, want := range englishLetterCounts {
		if got := counts[letter]; got != want {
			t.Fatalf("count[%q] = %d, want %d", letter, got, want)
		}
	}
}

func TestBagDrawWithoutReplacement(t *testing.T) {
	bag := NewEnglishBag(rand.New(rand.NewSource(2)))
	drawn := bag.Draw(rand.New(rand.NewSource(3)), 7)
	if len(drawn) != 7 {
		t.Fatalf("len(drawn) = %d, want 7", len(drawn))
	}
	if bag.Count() != 93 {
		t.Fatalf("Count() after draw = %d, want 93", bag.Count())
	}
}

func TestBagDrawShortBag(t *testing.T) {
	bag := NewSeededBag([]Letter{NewLetter('A'), NewLetter('B')})
	drawn := bag.Draw(rand.New(rand.NewSource(1)), 5)
	if len(drawn) != 2 {
		t.Fatalf("len(drawn) = %d, want 2 (bag only had 2 tiles)", len(drawn))
	}
	if !bag.IsEmpty() {
		t.Fatalf("expected bag to be empty after draining it")
	}
}

func TestBagCloneIsIndependent(t *testing.T) {
	bag := NewEnglishBag(rand.New(rand.NewSource(4)))
	clone := bag.Clone()
	clone.Draw(rand.New(rand.NewSource(5)), 10)
	if bag.Count() != 100 {
		t.Fatalf("draining a clone mutated the original bag: Count() = %d", bag.Count())
	}
	if clone.Count() != 90 {
		t.Fatalf("clone.Count() = %d, want 90", clone.Count())
	}
}

func TestExchangeAllowed(t *testing.T) {
	bag := NewSeededBag(make([]Letter, RackSize))
	if !bag.ExchangeAllowed() {
		t.Fatalf("expected exchange to be allowed with exactly RackSize tiles left")
	}
	bag.Draw(rand.New(rand.NewSource(1)), 1)
	if bag.ExchangeAllowed() {
		t.Fatalf("expected exchange to be disallowed below RackSize tiles")
	}
}
