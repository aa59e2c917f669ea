package network

const (
	// Resting is a neuron's quiescent state.
	Resting float32 = 0.0
	// Triggered is the deterministic firing state; lasts exactly one tick.
	Triggered float32 = 1.0
	// Dead neurons never change state again and consume no RNG draws.
	Dead float32 = -1.0
	// Recovering's concrete value is the network's configured
	// recovery-state-energy ratio, not a fixed constant (see
	// Config.RecoveryStateEnergyRatio).
)
