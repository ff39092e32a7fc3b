package sim

// QLearningParams are the live learning hyperparameters. The manager
// re-reads them from the configuration each tick so they can change between
// ticks without rebuilding anything.
type QLearningParams struct {
	Alpha   float64
	Gamma   float64
	Epsilon float64
}

// ComputeDelta is the Bellman correction: Alpha * (Reward + Gamma*MaxNext - Current).
func (p QLearningParams) ComputeDelta(currentQ, reward, maxNextQ float64) float64 {
	return p.Alpha * (reward + p.Gamma*maxNextQ - currentQ)
}
