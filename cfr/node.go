// node.go
//
// Per-information-set accumulators: cumulative regret, the current
// regret-matched strategy, and cumulative strategy (for averaging).
// Ported field-for-field from original_source/src/cfr/node.rs's
// StateNode<A> — float32 throughout, matching the original's memory
// trade-off for the very large number of information sets a full
// crossword game accumulates.

package cfr

// StateNode holds the regret-matching accumulators for one information
// set, sized to the number of legal actions observed there.
type StateNode struct {
	RegretSum   []float32
	Strategy    []float32
	StrategySum []float32
}

// NewStateNode allocates a StateNode for a state with numActions legal
// actions.
func NewStateNode(numActions int) *StateNode {
	return &StateNode{
		RegretSum:   make([]float32, numActions),
		Strategy:    make([]float32, numActions),
		StrategySum: make([]float32, numActions),
	}
}

// ComputeStrategy derives the current strategy from accumulated regret by
// regret matching: positive regrets are normalized into a distribution;
// if no action has positive regret, play uniformly at random.
func (n *StateNode) ComputeStrategy() []float32 {
	numActions := len(n.RegretSum)
	var normalizer float32
	for i, r := range n.RegretSum {
		if r > 0 {
			n.Strategy[i] = r
			normalizer += r
		} else {
			n.Strategy[i] = 0
		}
	}
	for i := range n.Strategy {
		if normalizer > 0 {
			n.Strategy[i] /= normalizer
		} else {
			n.Strategy[i] = 1.0 / float32(numActions)
		}
	}
	return n.Strategy
}

// UpdateRegretSum adds the given per-action regret increments.
func (n *StateNode) UpdateRegretSum(regrets []float32) {
	for i, r := range regrets {
		n.RegretSum[i] += r
	}
}

// UpdateStrategySum accumulates the current strategy weighted by
// reachProb, the probability the acting player reached this information
// set on this iteration.
func (n *StateNode) UpdateStrategySum(reachProb float32) {
	for i, s := range n.Strategy {
		n.StrategySum[i] += reachProb * s
	}
}

// GetAverageStrategy returns the time-averaged strategy, which converges
// to a Nash equilibrium strategy as training iterations grow.
func (n *StateNode) GetAverageStrategy() []float32 {
	avg := make([]float32, len(n.StrategySum))
	var total float32
	for _, s := range n.StrategySum {
		total += s
	}
	for i, s := range n.StrategySum {
		if total > 0 {
			avg[i] = s / total
		} else {
			avg[i] = 1.0 / float32(len(avg))
		}
	}
	return avg
}

// SampleActionGreedy returns the index of the action with the highest
// average-strategy weight, breaking ties by the first maximal index.
func (n *StateNode) SampleActionGreedy() int {
	avg := n.GetAverageStrategy()
	best := 0
	for i, v := range avg {
		if v > avg[best] {
			best = i
		}
	}
	return best
}
