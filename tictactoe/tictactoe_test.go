package tictactoe

import (
	"math/rand"
	"testing"
)

func TestNewInitialStateIsEmptyWithXToMove(t *testing.T) {
	g := Game{}
	s := g.NewInitialState(rand.New(rand.NewSource(1))).(*State)
	if s.CurrentPlayer() != 0 {
		t.Fatalf("expected X (player 0) to move first")
	}
	if len(s.LegalActions()) != 9 {
		t.Fatalf("expected all 9 cells open on an empty board")
	}
}

func TestWinnerDetectsRow(t *testing.T) {
	s := &State{cells: [9]Mark{X, X, X, O, O, Empty, Empty, Empty, Empty}}
	if s.winner() != X {
		t.Fatalf("expected X to win the top row")
	}
}

func TestWinnerDetectsColumn(t *testing.T) {
	s := &State{cells: [9]Mark{O, X, X, O, X, Empty, O, Empty, Empty}}
	if s.winner() != O {
		t.Fatalf("expected O to win the left column")
	}
}

func TestWinnerDetectsDiagonal(t *testing.T) {
	s := &State{cells: [9]Mark{X, O, O, Empty, X, Empty, Empty, Empty, X}}
	if s.winner() != X {
		t.Fatalf("expected X to win the main diagonal")
	}
}

func TestWinnerDetectsAntiDiagonal(t *testing.T) {
	s := &State{cells: [9]Mark{Empty, Empty, X, Empty, X, Empty, X, Empty, Empty}}
	if s.winner() != X {
		t.Fatalf("expected X to win the anti-diagonal")
	}
}

func TestIsTerminalOnFullDrawnBoard(t *testing.T) {
	s := &State{cells: [9]Mark{X, O, X, X, O, O, O, X, X}}
	if s.winner() != Empty {
		t.Fatalf("expected no winner on this drawn board")
	}
	if !s.IsTerminal() {
		t.Fatalf("expected a full board to be terminal")
	}
}

func TestRewardIsZeroSumFromEachPlayersView(t *testing.T) {
	s := &State{cells: [9]Mark{X, X, X, O, O, Empty, Empty, Empty, Empty}}
	if s.Reward(0) != 1 {
		t.Fatalf("expected X (player 0) to get reward 1")
	}
	if s.Reward(1) != -1 {
		t.Fatalf("expected O (player 1) to get reward -1")
	}
}

func TestNextAlternatesTurnAndDoesNotMutateOriginal(t *testing.T) {
	g := Game{}
	s := g.NewInitialState(rand.New(rand.NewSource(1))).(*State)
	next := s.Next(4).(*State)
	if next.cells[4] != X {
		t.Fatalf("expected cell 4 to hold X after X's move")
	}
	if s.cells[4] != Empty {
		t.Fatalf("Next must not mutate the receiver")
	}
	if next.CurrentPlayer() != 1 {
		t.Fatalf("expected O to move next")
	}
}

func TestInfoSetKeyDiffersAcrossDistinctStates(t *testing.T) {
	g := Game{}
	s := g.NewInitialState(rand.New(rand.NewSource(1))).(*State)
	a := s.Next(0).(*State)
	b := s.Next(1).(*State)
	if a.InfoSetKey() == b.InfoSetKey() {
		t.Fatalf("expected distinct moves to produce distinct info-set keys")
	}
}
