// trainer.go
//
// Baseline-corrected outcome-sampling Monte-Carlo CFR. One information
// set is visited (and its regret/strategy accumulators updated) on the
// traverser's side of a single sampled trajectory per iteration, rather
// than a full game-tree sweep — this is what lets the trainer scale to
// crossword's enormous branching factor. Ported directly from
// original_source/src/cfr/policy/outcome_sampling.rs's
// outcome_sampling_cfr/sample_policy/baseline_corrected_value, with the
// same degenerate-sampling fallback (a uniform draw with q[a*] set to
// 1/numActions, where numActions is the number of legal actions the
// state's StateNode is sized to) and EPSILON=0.6 exploration mix. Logging
// uses charmbracelet/log, as lox-pokerforbots does.

package cfr

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Trainer runs outcome-sampling MCCFR over a Game and accumulates
// per-information-set StateNodes.
type Trainer struct {
	game   Game
	config TrainingConfig
	rng    *rand.Rand
	nodes  map[string]*StateNode
	logger *log.Logger
	iter   int
}

// NewTrainer constructs a Trainer for game under config. config is
// validated; an invalid config panics, since a misconfigured trainer is a
// programming error, not a runtime condition callers are expected to
// recover from.
func NewTrainer(game Game, config TrainingConfig) *Trainer {
	if err := config.Validate(); err != nil {
		panic(err)
	}
	return &Trainer{
		game:   game,
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
		nodes:  make(map[string]*StateNode),
		logger: log.NewWithOptions(nil, log.Options{Prefix: "cfr"}),
	}
}

// Nodes exposes the trained information-set table, for checkpointing and
// for play-time strategy queries.
func (t *Trainer) Nodes() map[string]*StateNode { return t.nodes }

// Train runs config.Iterations training epochs, alternating which player
// is the traverser round-robin, logging and checkpointing on the
// configured cadence.
func (t *Trainer) Train(ctx context.Context) error {
	for ; t.iter < t.config.Iterations; t.iter++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		start := time.Now()
		state := t.game.NewInitialState(t.rng)
		traverser := t.iter % state.NumPlayers()
		reach := make([]float64, state.NumPlayers())
		for i := range reach {
			reach[i] = 1.0
		}
		t.outcomeSamplingCFR(state, traverser, reach, 1.0)

		if t.config.ProgressTimeout > 0 && time.Since(start) > t.config.ProgressTimeout {
			t.logger.Warn("iteration exceeded progress timeout", "iteration", t.iter, "elapsed", time.Since(start))
		}
		if t.config.LogEvery > 0 && t.iter%t.config.LogEvery == 0 {
			t.logger.Info("training progress", "iteration", t.iter, "infosets", len(t.nodes))
		}
		if t.config.CheckpointEvery > 0 && t.iter > 0 && t.iter%t.config.CheckpointEvery == 0 {
			if err := t.config.CheckpointStore.Save(ctx, t.snapshot()); err != nil {
				t.logger.Warn("checkpoint save failed", "iteration", t.iter, "error", err)
			} else {
				t.logger.Info("checkpoint saved", "iteration", t.iter)
			}
		}
	}
	return nil
}

func (t *Trainer) nodeFor(key string, numActions int) *StateNode {
	n, ok := t.nodes[key]
	if !ok {
		n = NewStateNode(numActions)
		t.nodes[key] = n
	}
	return n
}

// outcomeSamplingCFR recursively samples one trajectory from state and
// returns the node value estimate v_node = Σ_a σ[a]·v[a] for the player to
// move at state, where v[a] is the baseline-corrected (baseline 0) value
// of action a: v_child/q[a] for the single sampled action, 0 for every
// other action. sampleReach is the probability of reaching state under the
// behavior policy actually used to sample, accumulated from the root.
func (t *Trainer) outcomeSamplingCFR(state GameState, traverser int, reach []float64, sampleReach float64) float64 {
	if state.IsTerminal() {
		return state.Reward(traverser)
	}

	player := state.CurrentPlayer()
	actions := state.LegalActions()
	numActions := len(actions)
	node := t.nodeFor(state.InfoSetKey(), numActions)
	strategy := node.ComputeStrategy()

	sampleProbs := make([]float64, numActions)
	if player == traverser {
		uniform := 1.0 / float64(numActions)
		for i := range sampleProbs {
			sampleProbs[i] = t.config.Epsilon*uniform + (1-t.config.Epsilon)*float64(strategy[i])
		}
	} else {
		for i := range sampleProbs {
			sampleProbs[i] = float64(strategy[i])
		}
	}
	a := sampleFromDistribution(t.rng, sampleProbs)
	qa := sampleProbs[a]
	if qa <= 0 {
		qa = 1.0 / float64(numActions)
	}

	nextReach := make([]float64, len(reach))
	copy(nextReach, reach)
	nextReach[player] *= float64(strategy[a])

	childUtil := t.outcomeSamplingCFR(state.Next(actions[a]), traverser, nextReach, sampleReach*qa)

	// v[a] = v_child/q[a]; the baseline (0) stands in for v[i], i != a.
	var actionValue float64
	if qa > 0 {
		actionValue = childUtil / qa
	}
	nodeValue := float64(strategy[a]) * actionValue

	if player == traverser {
		reachOthers := reachExcluding(reach, traverser)
		// cf_action_value = v[a]·π_{-p}/π_c, with π_c = sampleReach the
		// sampling reach of this node under the behavior policy.
		var cfActionValue float64
		if sampleReach > 0 {
			cfActionValue = actionValue * reachOthers / sampleReach
		}
		nodeCfValue := float64(strategy[a]) * cfActionValue

		regrets := make([]float32, numActions)
		for i := range regrets {
			var playerValue float64
			if i == a {
				playerValue = cfActionValue
			}
			regrets[i] = float32(playerValue - nodeCfValue)
		}
		node.UpdateRegretSum(regrets)

		// Recompute the strategy from the just-updated regrets before
		// accumulating it into the average-strategy sum.
		node.ComputeStrategy()
		if sampleReach > 0 {
			node.UpdateStrategySum(float32(reach[traverser] / sampleReach))
		}
	}

	return nodeValue
}

func reachExcluding(reach []float64, player int) float64 {
	r := 1.0
	for i, p := range reach {
		if i != player {
			r *= p
		}
	}
	return r
}

// sampleFromDistribution draws an action index from probs by cumulative
// sum; if probs sums to (near) zero — a degenerate sampling distribution
// — it falls back to a uniform 1/len(probs) draw, matching
// original_source's explicit degenerate-case handling.
func sampleFromDistribution(rng *rand.Rand, probs []float64) int {
	var total float64
	for _, p := range probs {
		total += p
	}
	if total <= 0 {
		return rng.Intn(len(probs))
	}
	r := rng.Float64() * total
	var cum float64
	for i, p := range probs {
		cum += p
		if r <= cum {
			return i
		}
	}
	return len(probs) - 1
}
