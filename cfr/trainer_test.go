package cfr

import (
	"context"
	"math/rand"
	"strconv"
	"testing"
)

// stubGame is a minimal two-action, two-ply perfect-information game used
// to exercise the Trainer without depending on tictactoe (which imports
// this package) or crossword (which is far too large for a unit test).
type stubGame struct{}

func (stubGame) NewInitialState(_ *rand.Rand) GameState {
	return &stubState{}
}

type stubState struct {
	depth  int
	action int
}

func (s *stubState) CurrentPlayer() int { return s.depth % 2 }
func (s *stubState) NumPlayers() int    { return 2 }
func (s *stubState) IsTerminal() bool   { return s.depth >= 2 }
func (s *stubState) Reward(player int) float64 {
	if s.action == player%2 {
		return 1
	}
	return -1
}
func (s *stubState) LegalActions() []int { return []int{0, 1} }
func (s *stubState) Next(action int) GameState {
	return &stubState{depth: s.depth + 1, action: action}
}
func (s *stubState) InfoSetKey() string {
	return "depth=" + strconv.Itoa(s.depth)
}

func TestTrainAccumulatesInfoSetsWithoutCheckpointing(t *testing.T) {
	config := DefaultTrainingConfig()
	config.Iterations = 50
	config.CheckpointEvery = 0
	config.LogEvery = 0
	trainer := NewTrainer(stubGame{}, config)

	if err := trainer.Train(context.Background()); err != nil {
		t.Fatalf("Train failed: %v", err)
	}
	if len(trainer.Nodes()) == 0 {
		t.Fatalf("expected at least one information set to be visited")
	}
	for key, node := range trainer.Nodes() {
		avg := node.GetAverageStrategy()
		var total float32
		for _, p := range avg {
			total += p
		}
		if total < 0.99 || total > 1.01 {
			t.Fatalf("node %q average strategy does not sum to 1: %v", key, avg)
		}
	}
}

func TestTrainRespectsCheckpointEvery(t *testing.T) {
	dir := t.TempDir()
	config := DefaultTrainingConfig()
	config.Iterations = 10
	config.CheckpointEvery = 5
	config.CheckpointStore = &FileCheckpointStore{Path: dir + "/checkpoint.json"}
	config.LogEvery = 0
	trainer := NewTrainer(stubGame{}, config)

	if err := trainer.Train(context.Background()); err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	loaded, err := config.CheckpointStore.Load(context.Background())
	if err != nil {
		t.Fatalf("expected a checkpoint to have been written, got error: %v", err)
	}
	if loaded.Iteration == 0 {
		t.Fatalf("expected a checkpoint with a nonzero iteration count")
	}
}

func TestTrainStopsOnContextCancellation(t *testing.T) {
	config := DefaultTrainingConfig()
	config.Iterations = 1_000_000
	config.CheckpointEvery = 0
	config.LogEvery = 0
	trainer := NewTrainer(stubGame{}, config)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := trainer.Train(ctx); err == nil {
		t.Fatalf("expected Train to return an error for an already-cancelled context")
	}
}
