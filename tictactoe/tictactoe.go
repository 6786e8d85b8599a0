// tictactoe.go
//
// A minimal two-player perfect-information game implementing cfr.Game/
// cfr.GameState, used to validate the trainer against a game small
// enough to solve exactly (the CLI itself only plays crossword). Direct
// port of original_source/src/tictactoe/mod.rs's
// TicTacToeState/TicTacToe (winner detection via rows/columns/both
// diagonals, state_key, next_state, is_terminal, get_reward).

package tictactoe

import (
	"math/rand"
	"strings"

	"github.com/crossplay/crossplay/cfr"
)

// Mark is the content of a single board cell.
type Mark int

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Game is a 3x3 tic-tac-toe game, implementing cfr.Game.
type Game struct{}

// NewInitialState returns an empty board with X to move first.
func (Game) NewInitialState(_ *rand.Rand) cfr.GameState {
	return &State{}
}

// State is a tic-tac-toe board position, implementing cfr.GameState.
type State struct {
	cells [9]Mark
	turn  Mark // whose turn it is; Empty means unset, defaults to X
}

func (s *State) markToMove() Mark {
	if s.turn == Empty {
		return X
	}
	return s.turn
}

// CurrentPlayer returns 0 for X to move, 1 for O to move.
func (s *State) CurrentPlayer() int {
	if s.markToMove() == X {
		return 0
	}
	return 1
}

// NumPlayers is always 2.
func (s *State) NumPlayers() int { return 2 }

func (s *State) winner() Mark {
	lines := [8][3]int{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
		{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
		{0, 4, 8}, {2, 4, 6}, // both diagonals
	}
	for _, line := range lines {
		a, b, c := s.cells[line[0]], s.cells[line[1]], s.cells[line[2]]
		if a != Empty && a == b && b == c {
			return a
		}
	}
	return Empty
}

func (s *State) isFull() bool {
	for _, c := range s.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// IsTerminal reports whether someone has won or the board is full.
func (s *State) IsTerminal() bool {
	return s.winner() != Empty || s.isFull()
}

// Reward returns +1 for a win, -1 for a loss, 0 for a draw, from
// player's perspective.
func (s *State) Reward(player int) float64 {
	w := s.winner()
	if w == Empty {
		return 0
	}
	winningPlayer := 0
	if w == O {
		winningPlayer = 1
	}
	if winningPlayer == player {
		return 1
	}
	return -1
}

// LegalActions returns the indices (0-8) of empty cells.
func (s *State) LegalActions() []int {
	var actions []int
	for i, c := range s.cells {
		if c == Empty {
			actions = append(actions, i)
		}
	}
	return actions
}

// Next returns the state after the mark-to-move is placed in cell
// action.
func (s *State) Next(action int) cfr.GameState {
	next := *s
	next.cells[action] = s.markToMove()
	if s.markToMove() == X {
		next.turn = O
	} else {
		next.turn = X
	}
	return &next
}

// InfoSetKey is the board contents plus whose turn it is — tic-tac-toe
// is perfect information, so this is also the full game state.
func (s *State) InfoSetKey() string {
	var sb strings.Builder
	for _, c := range s.cells {
		sb.WriteString(c.String())
	}
	sb.WriteString(s.markToMove().String())
	return sb.String()
}

func (s *State) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sb.WriteString(s.cells[row*3+col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
