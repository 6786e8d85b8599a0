package crossword

import (
	"math/rand"
	"testing"
)

func smallLexicon() *Lexicon {
	return NewLexicon([]string{
		"cat", "cats", "at", "ate", "tea", "eat", "ear", "art", "rat", "tar",
	})
}

func TestGameNewInitialStateDealsFullRacks(t *testing.T) {
	g := Game{Lexicon: smallLexicon(), NumPlayers: 2}
	s := g.NewInitialState(rand.New(rand.NewSource(1))).(*State)
	for i, p := range s.Players {
		if p.Rack.Count() != RackSize {
			t.Fatalf("player %d rack count = %d, want %d", i, p.Rack.Count(), RackSize)
		}
		if !p.Active {
			t.Fatalf("player %d should start active", i)
		}
	}
	if s.ToMove != 0 {
		t.Fatalf("expected player 0 to move first, got %d", s.ToMove)
	}
}

func TestStateLegalActionsAlwaysIncludesPass(t *testing.T) {
	g := Game{Lexicon: smallLexicon(), NumPlayers: 2}
	s := g.NewInitialState(rand.New(rand.NewSource(2))).(*State)
	actions := s.LegalActions()
	if len(actions) == 0 {
		t.Fatalf("expected at least the pass move to be legal")
	}
	moves := s.Moves()
	foundPass := false
	for _, m := range moves {
		if m.Kind == MovePass {
			foundPass = true
		}
	}
	if !foundPass {
		t.Fatalf("expected Pass to always be a legal action")
	}
}

func TestStateNextIsDeterministicForSameAction(t *testing.T) {
	g := Game{Lexicon: smallLexicon(), NumPlayers: 2}
	s := g.NewInitialState(rand.New(rand.NewSource(3))).(*State)
	actions := s.LegalActions()
	a := actions[len(actions)-1] // the last exchange offer (Pass if exchanges are not allowed)
	next1 := s.Next(a).(*State)
	next2 := s.Next(a).(*State)
	if next1.InfoSetKey() != next2.InfoSetKey() {
		t.Fatalf("expected Next(action) to be deterministic for a fixed original state")
	}
}

func TestStateNextDoesNotMutateOriginal(t *testing.T) {
	g := Game{Lexicon: smallLexicon(), NumPlayers: 2}
	s := g.NewInitialState(rand.New(rand.NewSource(4))).(*State)
	before := s.Board.String()
	actions := s.LegalActions()
	s.Next(actions[0])
	if s.Board.String() != before {
		t.Fatalf("Next must not mutate the receiver's board")
	}
}

func TestStateTerminalAfterConsecutivePasses(t *testing.T) {
	g := Game{Lexicon: smallLexicon(), NumPlayers: 2}
	s := g.NewInitialState(rand.New(rand.NewSource(5))).(*State)
	cur := s
	for i := 0; i < 2*len(cur.Players); i++ {
		if cur.IsTerminal() {
			t.Fatalf("did not expect terminal before %d consecutive passes", 2*len(cur.Players))
		}
		cur = cur.Next(passActionIndex(cur)).(*State)
	}
	if !cur.IsTerminal() {
		t.Fatalf("expected terminal after 2*NumPlayers consecutive passes")
	}
}

func passActionIndex(s *State) int {
	for i, m := range s.Moves() {
		if m.Kind == MovePass {
			return i
		}
	}
	panic("no pass move found")
}
