// state.go
//
// The crossword game state: board, bag, per-player racks and scores, and
// the move generation pipeline that ties together the constraint grid,
// word-search automaton, and move grid into the legal action list a
// cfr.GameState exposes. The per-line fan-out (15 rows + 15 columns
// generated concurrently) is ported from the teacher's movegen.go
// GenerateMoves goroutine pool, here expressed with
// golang.org/x/sync/errgroup rather than a raw WaitGroup+channel, and the
// next_state player-skip/termination logic is ported from
// original_source/src/scrabble/state.rs's ScrabbleState::next_state/is_terminal.

package crossword

import (
	"hash/fnv"
	"math/rand"
	"strconv"
	"strings"

	"github.com/crossplay/crossplay/cfr"
	"golang.org/x/sync/errgroup"
)

// Player is one seat's held tiles and accumulated score.
type Player struct {
	Rack   *Rack
	Score  int
	Active bool
}

// State is a complete crossword position: implements cfr.GameState.
type State struct {
	Board   *Board
	Bag     *Bag
	Players []Player
	ToMove  int
	Passes  int // consecutive zero-scoring plies (Pass or Exchange)
	Lexicon *Lexicon

	moves     []Move
	movesDone bool
}

// Game constructs fresh initial crossword states against a fixed
// Lexicon, implementing cfr.Game.
type Game struct {
	Lexicon    *Lexicon
	NumPlayers int
}

// NewInitialState deals a fresh board, shuffled bag, and full racks.
func (g Game) NewInitialState(rng *rand.Rand) cfr.GameState {
	bag := NewEnglishBag(rng)
	players := make([]Player, g.NumPlayers)
	for i := range players {
		r := NewRack()
		for _, l := range bag.Draw(rng, RackSize) {
			r.Add(l)
		}
		players[i] = Player{Rack: r, Active: true}
	}
	return &State{
		Board:   NewBoard(),
		Bag:     bag,
		Players: players,
		Lexicon: g.Lexicon,
	}
}

// CurrentPlayer implements cfr.GameState.
func (s *State) CurrentPlayer() int { return s.ToMove }

// NumPlayers implements cfr.GameState.
func (s *State) NumPlayers() int { return len(s.Players) }

// IsTerminal reports whether every player is done (emptied their rack
// with an empty bag) or the game has stalled in consecutive scoreless
// plies, per original_source/src/scrabble/state.rs's is_terminal.
func (s *State) IsTerminal() bool {
	if s.Passes >= 2*len(s.Players) {
		return true
	}
	for _, p := range s.Players {
		if p.Active {
			return false
		}
	}
	return true
}

// Reward returns player's final score relative to the mean of opponents'
// final scores — a zero-sum generalization of the teacher's two-player
// FinalMove adjustment (emptying your rack first adds opponents'
// leftover rack values to your score; everyone else is docked their own
// leftover rack value).
func (s *State) Reward(player int) float64 {
	finals := s.finalScores()
	var othersTotal float64
	for i, f := range finals {
		if i != player {
			othersTotal += float64(f)
		}
	}
	n := len(finals) - 1
	if n == 0 {
		return 0
	}
	return float64(finals[player]) - othersTotal/float64(n)
}

func (s *State) finalScores() []int {
	finals := make([]int, len(s.Players))
	emptiedBy := -1
	for i, p := range s.Players {
		finals[i] = p.Score
		if p.Rack.Count() == 0 {
			emptiedBy = i
		}
	}
	leftoverTotal := 0
	for i, p := range s.Players {
		leftover := 0
		for b, n := range p.Rack.Letters {
			leftover += letterValue(NewLetter(b)) * n
		}
		leftoverTotal += leftover
		if i != emptiedBy {
			finals[i] -= leftover
		}
	}
	if emptiedBy >= 0 {
		finals[emptiedBy] += leftoverTotal
	}
	return finals
}

// LegalActions returns indices into this state's (lazily generated)
// candidate move list.
func (s *State) LegalActions() []int {
	s.ensureMoves()
	actions := make([]int, len(s.moves))
	for i := range s.moves {
		actions[i] = i
	}
	return actions
}

// Next applies the move at the given action index and returns the
// resulting state, with the board/bag/racks cloned (spec.md §5: value
// semantics per transition) and the next active player selected.
func (s *State) Next(action int) cfr.GameState {
	s.ensureMoves()
	move := s.moves[action]

	next := &State{
		Board:   s.Board.Clone(),
		Bag:     s.Bag.Clone(),
		Players: make([]Player, len(s.Players)),
		ToMove:  s.ToMove,
		Passes:  s.Passes,
		Lexicon: s.Lexicon,
	}
	for i, p := range s.Players {
		next.Players[i] = Player{Rack: p.Rack.Clone(), Score: p.Score, Active: p.Active}
	}

	actor := &next.Players[s.ToMove]
	switch move.Kind {
	case MovePass:
		next.Passes++
	case MoveExchange:
		for _, l := range move.Exchange {
			actor.Rack.Remove(l)
		}
		refill := next.Bag.DrawNext(len(move.Exchange))
		for _, l := range refill {
			actor.Rack.Add(l)
		}
		next.Bag.Return(move.Exchange)
		next.Passes++
	case MovePlace:
		move.Apply(next.Board)
		for _, l := range move.RackCost() {
			actor.Rack.Remove(l)
		}
		actor.Score += move.Score(next.Board)
		next.Passes = 0
	}

	if move.Kind != MoveExchange {
		if refillCount := RackSize - actor.Rack.Count(); refillCount > 0 {
			for _, l := range next.Bag.DrawNext(refillCount) {
				actor.Rack.Add(l)
			}
		}
	}

	for i := range next.Players {
		if next.Players[i].Rack.Count() == 0 && next.Bag.IsEmpty() {
			next.Players[i].Active = false
		}
	}

	next.ToMove = nextActivePlayer(next.Players, s.ToMove)
	return next
}

func nextActivePlayer(players []Player, from int) int {
	n := len(players)
	for i := 1; i <= n; i++ {
		cand := (from + i) % n
		if players[cand].Active {
			return cand
		}
	}
	return from
}

// InfoSetKey encodes the board, the acting player's own rack, and whose
// turn it is — the information actually visible to the player to move
// (opponents' racks and the bag's exact contents are hidden, matching
// spec.md §4.1's imperfect-information framing).
func (s *State) InfoSetKey() string {
	var sb strings.Builder
	sb.WriteString(s.Board.String())
	sb.WriteString("|turn=")
	sb.WriteString(strconv.Itoa(s.ToMove))
	sb.WriteString("|rack=")
	sb.WriteString(s.Players[s.ToMove].Rack.String())
	sb.WriteString("|passes=")
	sb.WriteString(strconv.Itoa(s.Passes))
	return sb.String()
}

// Moves returns this state's generated candidate move list, for callers
// (the CLI's highest-scoring fallback, tests) that need the concrete
// Move behind an action index rather than just the index itself.
func (s *State) Moves() []Move {
	s.ensureMoves()
	return s.moves
}

func (s *State) ensureMoves() {
	if s.movesDone {
		return
	}
	s.moves = s.generateMoves()
	s.movesDone = true
}

// generateMoves builds the legal action list for the player to move:
// every bucket of the per-direction move grids built from a concurrent
// per-line scan, plus pass and exchange moves.
func (s *State) generateMoves() []Move {
	grid := BuildConstraintGrid(s.Board, s.Lexicon)
	rack := s.Players[s.ToMove].Rack

	var candidates [2 * BoardSize][]Move
	var g errgroup.Group
	for line := 0; line < BoardSize; line++ {
		line := line
		g.Go(func() error {
			candidates[line] = generateLineMoves(s.Board, grid, s.Lexicon, rack, Across, line)
			return nil
		})
		g.Go(func() error {
			candidates[BoardSize+line] = generateLineMoves(s.Board, grid, s.Lexicon, rack, Down, line)
			return nil
		})
	}
	g.Wait()

	var all []Move
	for _, ms := range candidates {
		all = append(all, ms...)
	}

	moveGrid := NewMoveGrid(all)
	tieBreak := rand.New(rand.NewSource(stateSeed(s)))
	var moves []Move
	for _, dir := range [2]Direction{Across, Down} {
		for _, idx := range moveGrid.ValidActionIndices(dir) {
			coord := indexToCoord(idx, moveGridDims)
			start := Position{Row: coord[0], Col: coord[1]}
			placedCount := coord[2] + 1
			if m, ok := moveGrid.GetMove(tieBreak, start, dir, placedCount); ok {
				moves = append(moves, m)
			}
		}
	}
	moves = append(moves, NewPassMove())
	if s.Bag.ExchangeAllowed() {
		moves = append(moves, generateExchangeMoves(rack)...)
	}
	return moves
}

func stateSeed(s *State) int64 {
	h := fnv.New64a()
	h.Write([]byte(s.Board.String()))
	h.Write([]byte(s.Players[s.ToMove].Rack.String()))
	return int64(h.Sum64())
}

// generateLineMoves scans every anchor query on one line for every
// window length that fits between its bounds, searching the lexicon for
// payable words at each window.
func generateLineMoves(board *Board, grid *ConstraintGrid, lex *Lexicon, rack *Rack, dir Direction, line int) []Move {
	var moves []Move
	for _, q := range grid.Lines(dir)[line] {
		for start := q.Anchor - q.MaxLeft; start <= q.Anchor; start++ {
			maxLen := q.Anchor + q.MaxRight - start + 1
			for length := 1; length <= maxLen; length++ {
				if start+length-1 < q.Anchor {
					continue
				}
				cells, ok := BuildLineCells(board, grid, dir, line, start, length)
				if !ok {
					continue
				}
				anchorOffset := q.Anchor - start
				for _, m := range SearchLine(lex, cells, anchorOffset, rack) {
					moves = append(moves, lineMatchToMove(m, cells, dir, line, start))
				}
			}
		}
	}
	return moves
}

func lineMatchToMove(m LineMatch, cells []LineCell, dir Direction, line, start int) Move {
	move := Move{Kind: MovePlace, Direction: dir, Start: positionOnLine(dir, line, start)}
	for _, i := range m.Placed {
		p := positionOnLine(dir, line, start+i)
		letter, wasBlank := m.BlankAt(i)
		if !wasBlank {
			letter = NewLetter(m.Word[i])
		}
		move.Placed = append(move.Placed, PlacedLetter{Pos: p, Letter: letter, WasBlank: wasBlank})
	}
	return move
}

// generateExchangeMoves offers exchanging the whole rack, each distinct
// held letter singly, and (when non-empty) the whole rack minus one
// instance of each distinct letter held.
func generateExchangeMoves(rack *Rack) []Move {
	var wholeBytes []byte
	for b, n := range rack.Letters {
		for i := 0; i < n; i++ {
			wholeBytes = append(wholeBytes, b)
		}
	}
	for i := 0; i < rack.Blanks; i++ {
		wholeBytes = append(wholeBytes, '?')
	}
	if len(wholeBytes) == 0 {
		return nil
	}

	var moves []Move
	moves = append(moves, NewExchangeMove(bytesToLetters(wholeBytes)))

	var distinct []byte
	for _, b := range wholeBytes {
		if !ContainsByte(distinct, b) {
			distinct = append(distinct, b)
		}
	}
	for _, b := range distinct {
		moves = append(moves, NewExchangeMove(bytesToLetters([]byte{b})))
		remainder := RemoveByte(wholeBytes, b)
		if len(remainder) > 0 {
			moves = append(moves, NewExchangeMove(bytesToLetters(remainder)))
		}
	}
	return moves
}

func bytesToLetters(bs []byte) []Letter {
	letters := make([]Letter, len(bs))
	for i, b := range bs {
		if b == '?' {
			letters[i] = BlankLetter
		} else {
			letters[i] = NewLetter(b)
		}
	}
	return letters
}
