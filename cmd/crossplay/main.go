// main.go
//
// The crossplay CLI: train a crossword-playing policy with outcome-
// sampling MCCFR, or play a single move against a trained checkpoint.
// Ported from lox-pokerforbots' kong-based command structure (Train/Play
// sub-commands, charmbracelet/log for all CLI output), plus the teacher's
// godotenv.Load() for local config.

package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/crossplay/crossplay"
	"github.com/crossplay/crossplay/cfr"
)

var cli struct {
	Train TrainCmd `cmd:"" help:"Train a crossword policy with outcome-sampling MCCFR."`
	Play  PlayCmd  `cmd:"" help:"Choose a move against a trained checkpoint."`
}

// TrainCmd runs an MCCFR training loop and periodically checkpoints it.
type TrainCmd struct {
	Iterations int    `help:"Number of training iterations." default:"100000"`
	Players    int    `help:"Number of players." default:"2"`
	Checkpoint string `help:"Checkpoint file path." default:"crossplay.checkpoint.json"`
	Every      int    `help:"Checkpoint every N iterations." default:"1000"`
	Seed       int64  `help:"Random seed." default:"1"`
	Words      string `help:"Path to a newline-delimited word list." required:""`
}

func (c *TrainCmd) Run(logger *log.Logger) error {
	words, err := crossword.LoadLexiconFile(c.Words)
	if err != nil {
		return fmt.Errorf("loading lexicon: %w", err)
	}
	game := crossword.Game{Lexicon: words, NumPlayers: c.Players}
	config := cfr.DefaultTrainingConfig()
	config.Iterations = c.Iterations
	config.Seed = c.Seed
	config.CheckpointEvery = c.Every
	config.CheckpointStore = &cfr.FileCheckpointStore{Path: c.Checkpoint}

	trainer := cfr.NewTrainer(game, config)
	logger.Info("starting training run", "iterations", c.Iterations, "players", c.Players)
	if err := trainer.Train(context.Background()); err != nil {
		return fmt.Errorf("training: %w", err)
	}
	logger.Info("training complete", "infosets", len(trainer.Nodes()))
	return nil
}

// PlayCmd loads a checkpoint and chooses a move for a fresh deal.
type PlayCmd struct {
	Checkpoint string `help:"Checkpoint file path." required:""`
	Players    int    `help:"Number of players." default:"2"`
	Words      string `help:"Path to a newline-delimited word list." required:""`
	Seed       int64  `help:"Random seed for the demo deal." default:"1"`
}

func (c *PlayCmd) Run(logger *log.Logger) error {
	lex, err := crossword.LoadLexiconFile(c.Words)
	if err != nil {
		return fmt.Errorf("loading lexicon: %w", err)
	}
	game := crossword.Game{Lexicon: lex, NumPlayers: c.Players}
	config := cfr.DefaultTrainingConfig()
	config.CheckpointStore = &cfr.FileCheckpointStore{Path: c.Checkpoint}

	trainer, err := cfr.LoadTrainerFromCheckpoint(context.Background(), game, config)
	if err != nil {
		return fmt.Errorf("loading checkpoint: %w", err)
	}

	rng := rand.New(rand.NewSource(c.Seed))
	state := game.NewInitialState(rng)
	action := trainer.ChooseAction(state, rng, highestScoringFallback)
	logger.Info("chosen action", "state", state.InfoSetKey(), "action", action)
	return nil
}

// highestScoringFallback picks the legal action that scores the most
// immediate points, falling back to passing if nothing scores — the
// teacher's robot.go HighScoreRobot behavior, used whenever training
// never visited the exact information set at hand.
func highestScoringFallback(state cfr.GameState) int {
	cs, ok := state.(*crossword.State)
	if !ok {
		actions := state.LegalActions()
		if len(actions) == 0 {
			return 0
		}
		return actions[0]
	}
	best, bestScore := 0, -1
	for i, m := range cs.Moves() {
		sc := 0
		if m.Kind == crossword.MovePlace {
			scratch := cs.Board.Clone()
			m.Apply(scratch)
			sc = m.Score(scratch)
		}
		if sc > bestScore {
			best, bestScore = i, sc
		}
	}
	return best
}

func main() {
	_ = godotenv.Load()
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "crossplay"})

	ctx := kong.Parse(&cli,
		kong.Name("crossplay"),
		kong.Description("Train and play a crossword-tile game with Monte-Carlo CFR."),
	)
	if err := ctx.Run(logger); err != nil {
		logger.Fatal("command failed", "error", err)
	}
}
