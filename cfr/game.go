// game.go
//
// The abstract two-(or more-)player perfect/imperfect-information game
// contract the trainer operates against. Ported from original_source's
// cfr::Game/GameState traits, which both the tic-tac-toe toy game and the
// crossword game implement identically — the trainer itself never knows
// it is training Scrabble.

package cfr

import "math/rand"

// GameState is one node of a game tree. Actions are represented as plain
// ints — each concrete game defines its own meaning for an action index,
// scoped to what LegalActions returns at that particular state.
type GameState interface {
	// CurrentPlayer returns the index of the player to act, in
	// [0, NumPlayers()).
	CurrentPlayer() int
	// NumPlayers returns the number of players in the game.
	NumPlayers() int
	// IsTerminal reports whether the game has ended at this state.
	IsTerminal() bool
	// Reward returns player's terminal payoff. Only valid when
	// IsTerminal() is true.
	Reward(player int) float64
	// LegalActions returns the actions available to CurrentPlayer() at
	// this state, in a stable order.
	LegalActions() []int
	// Next returns the state reached by taking action.
	Next(action int) GameState
	// InfoSetKey returns the string that identifies this state's
	// information set to the acting player — states that are
	// indistinguishable to that player must share a key.
	InfoSetKey() string
}

// Game constructs fresh initial states for training.
type Game interface {
	// NewInitialState returns a freshly dealt initial state, using rng
	// for any chance element (shuffling, drawing).
	NewInitialState(rng *rand.Rand) GameState
}
