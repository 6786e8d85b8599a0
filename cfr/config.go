// config.go
//
// Trainer configuration and validation, in the validate-on-construction
// style of lox-pokerforbots' poker SDK config types (its
// sdk/solver config pattern: plain struct, a Validate method returning an
// error, sane zero-value defaults filled in by a constructor).

package cfr

import (
	"fmt"
	"time"
)

// TrainingConfig controls one outcome-sampling MCCFR training run.
type TrainingConfig struct {
	// Iterations is the total number of training epochs to run.
	Iterations int
	// Epsilon is the exploration-mixing probability used by the
	// behavior policy during sampling (original_source's EPSILON=0.6).
	Epsilon float64
	// Seed seeds the run's random number generator for reproducibility.
	Seed int64
	// CheckpointEvery saves a checkpoint every N iterations; 0 disables
	// checkpointing.
	CheckpointEvery int
	// CheckpointStore persists checkpoints, when CheckpointEvery > 0.
	CheckpointStore CheckpointStore
	// LogEvery logs training progress every N iterations.
	LogEvery int
	// ProgressTimeout logs a warning when a single iteration takes longer
	// than this; the run continues (0 disables the check).
	ProgressTimeout time.Duration
}

// DefaultTrainingConfig returns a TrainingConfig with the original
// algorithm's constants and reasonable operational defaults.
func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		Iterations:      100_000,
		Epsilon:         0.6,
		Seed:            1,
		CheckpointEvery: 1000,
		LogEvery:        100,
	}
}

// Validate reports a configuration error, if any.
func (c TrainingConfig) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("cfr: Iterations must be positive, got %d", c.Iterations)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("cfr: Epsilon must be in [0,1], got %f", c.Epsilon)
	}
	if c.CheckpointEvery > 0 && c.CheckpointStore == nil {
		return fmt.Errorf("cfr: CheckpointEvery > 0 requires a CheckpointStore")
	}
	return nil
}
