// strategy.go
//
// Play-time policy resolution: look up the trained average strategy for
// the current information set and sample an action from it. Ported from
// the teacher's robot.go HighScoreRobot fallback shape — when training
// never visited this exact information set, fall back to a caller-
// supplied heuristic (for crossword, play the highest-scoring legal
// move) rather than sampling nonsense from an empty node.

package cfr

import "math/rand"

// ChooseAction returns an action for state using the trainer's learned
// average strategy, sampled via rng. If no information set was trained
// for state's key (or the legal action count has since changed — the
// set of legal moves is state-dependent), it calls fallback instead.
func (t *Trainer) ChooseAction(state GameState, rng *rand.Rand, fallback func(GameState) int) int {
	actions := state.LegalActions()
	node, ok := t.nodes[state.InfoSetKey()]
	if !ok || len(node.StrategySum) != len(actions) {
		return fallback(state)
	}
	avg := node.GetAverageStrategy()
	probs := make([]float64, len(avg))
	for i, p := range avg {
		probs[i] = float64(p)
	}
	i := sampleFromDistribution(rng, probs)
	t.logger.Debug("selected action", "action", actions[i], "probability", probs[i])
	return actions[i]
}
