// Package network implements the stochastic spiking network: regions of
// neurons wired by a dense connection-probability matrix, stochastic
// propagation, free-energy-driven Hebbian plasticity, and the discrete
// reward/punish replay routines that drive learning.
package network

import (
	"math"

	"github.com/vlachapelle/spikepaddle/agenterr"
	"github.com/vlachapelle/spikepaddle/agentrand"
)

// Connectome maps a source region name to a map of target region name to
// the generator that produces the transmission-probability block between
// them. A pair absent from the connectome has no edges (pure sentinel).
type Connectome map[string]map[string]GraphGenerator

// Config collects every tunable constant of a Network, with the defaults
// documented in spec.md §6.
type Config struct {
	RecoveryStateEnergyRatio float32
	StateHistorySize         int
	DecayCoefficient         float64
	ExplorationRate          float64
	StrengtheningExponent    float64
	RewardPeriod             int
	RewardSignalPeriod       int
	PunishPeriod             int
	PunishMinSignalPeriod    int
	PunishMaxSignalPeriod    int
	KValue                   float64
}

// DefaultConfig returns the spec-documented default network hyperparameters.
func DefaultConfig() Config {
	return Config{
		RecoveryStateEnergyRatio: 0.5,
		StateHistorySize:         12,
		DecayCoefficient:         0.01875,
		ExplorationRate:          3e-4,
		StrengtheningExponent:    1.009,
		RewardPeriod:             12,
		RewardSignalPeriod:       4,
		PunishPeriod:             48,
		PunishMinSignalPeriod:    4,
		PunishMaxSignalPeriod:    8,
		KValue:                   1.0,
	}
}

// Network owns a fixed set of regions, the dense conformation matrix
// wiring them, a bounded state history, and the plasticity rules that
// evolve the matrix in place.
type Network struct {
	cfg Config

	regions    []*Region
	regionByID map[string]*Region

	size                int
	sensoryRegionNames  []string
	internalNeuronIndex []int

	conf *conformation

	history      *stateHistory
	freeEnergies []float64
}

// New assembles a network from an ordered list of regions and a
// connectome describing which generator wires which ordered region pair.
// Region names must be unique; every name referenced by the connectome
// must name a region in the list.
func New(regions []*Region, connectome Connectome, cfg Config) (*Network, error) {
	if len(regions) == 0 {
		return nil, agenterr.New(agenterr.NetworkInitializationError, "regions must not be empty")
	}
	regionByID := make(map[string]*Region, len(regions))
	for _, r := range regions {
		if _, dup := regionByID[r.Name]; dup {
			return nil, agenterr.Newf(agenterr.NetworkInitializationError, "region name %q is not unique", r.Name)
		}
		regionByID[r.Name] = r
	}
	for src, targets := range connectome {
		if _, ok := regionByID[src]; !ok {
			return nil, agenterr.Newf(agenterr.NetworkInitializationError, "unknown region %q referenced in connectome", src)
		}
		for dst := range targets {
			if _, ok := regionByID[dst]; !ok {
				return nil, agenterr.Newf(agenterr.NetworkInitializationError, "unknown region %q referenced in connectome", dst)
			}
		}
	}

	var sensoryNames []string
	var internalIdx []int
	current := 0
	for _, r := range regions {
		r.setNeuronIndex(current)
		if r.IsInternal() {
			for i := 0; i < r.Size; i++ {
				internalIdx = append(internalIdx, current+i)
			}
		} else {
			sensoryNames = append(sensoryNames, r.Name)
		}
		current += r.Size
	}
	size := current

	conf := newConformation(size)
	for _, src := range regions {
		srcFirst, _ := src.NeuronIndex()
		for _, dst := range regions {
			dstFirst, _ := dst.NeuronIndex()
			targets, ok := connectome[src.Name]
			if !ok {
				continue
			}
			gen, ok := targets[dst.Name]
			if !ok {
				continue
			}
			block, err := gen(dst.Size, src.Size)
			if err != nil {
				return nil, err
			}
			selfLoop := src == dst
			for t := 0; t < dst.Size; t++ {
				for s := 0; s < src.Size; s++ {
					if selfLoop && t == s {
						continue
					}
					p := block[t*src.Size+s]
					conf.set(dstFirst+t, srcFirst+s, 1.0-p)
				}
			}
		}
	}

	n := &Network{
		cfg:                 cfg,
		regions:             regions,
		regionByID:          regionByID,
		size:                size,
		sensoryRegionNames:  sensoryNames,
		internalNeuronIndex: internalIdx,
		conf:                conf,
	}
	n.history = newStateHistory(cfg.StateHistorySize, n.State())
	return n, nil
}

// Size returns the total neuron count across all regions.
func (n *Network) Size() int { return n.size }

// State returns the concatenated state of every region, in region
// assembly order.
func (n *Network) State() []float32 {
	out := make([]float32, 0, n.size)
	for _, r := range n.regions {
		out = append(out, r.State()...)
	}
	return out
}

// InternalState returns the concatenated state of internal regions only.
func (n *Network) InternalState() []float32 {
	out := make([]float32, 0, len(n.internalNeuronIndex))
	for _, r := range n.regions {
		if r.IsInternal() {
			out = append(out, r.State()...)
		}
	}
	return out
}

// Conformation returns a copy of the dense non-transmission-probability
// matrix, row-major, size*size.
func (n *Network) Conformation() (values []float32, hasEdge []bool, size int) {
	c := n.conf.copy()
	return c.values, c.edge, c.n
}

// SetState replaces the full network state; state's length must equal
// Size(). Used to restore a saved simulation state.
func (n *Network) SetState(state []float32) error {
	if len(state) != n.size {
		return agenterr.Newf(agenterr.NetworkCommunicationError, "given state's length (%d) does not match network size (%d)", len(state), n.size)
	}
	for _, r := range n.regions {
		first, _ := r.NeuronIndex()
		if err := r.SetState(state[first : first+r.Size]); err != nil {
			return err
		}
	}
	n.history.push(n.State())
	return nil
}

// PropagateSignal runs one tick of stochastic propagation. sensorySignal
// optionally clamps named external regions to a new state for this tick;
// every named region not present keeps evolving stochastically.
func (n *Network) PropagateSignal(rng agentrand.Source, sensorySignal map[string][]float32) error {
	if len(sensorySignal) > 0 {
		var faulty []string
		for name, state := range sensorySignal {
			region, ok := n.regionByID[name]
			if !ok {
				faulty = append(faulty, name)
				continue
			}
			if err := region.SetState(state); err != nil {
				return err
			}
		}
		if len(faulty) > 0 {
			return agenterr.Newf(agenterr.NetworkCommunicationError, "unknown region(s) %v", faulty).WithFaultyNames(faulty...)
		}
	}

	firingProb := n.firingProbabilityVector()

	for _, region := range n.regions {
		if _, clamped := sensorySignal[region.Name]; clamped {
			continue
		}
		updated := make([]float32, region.Size)
		for _, neuron := range region.IndexedState() {
			local := neuron.Index - mustFirst(region)
			switch neuron.State {
			case Triggered:
				updated[local] = n.cfg.RecoveryStateEnergyRatio
			case n.cfg.RecoveryStateEnergyRatio:
				if rng.Uniform() <= firingProb[neuron.Index] {
					updated[local] = n.cfg.RecoveryStateEnergyRatio
				} else {
					updated[local] = Resting
				}
			case Resting:
				if rng.Uniform() <= firingProb[neuron.Index] {
					updated[local] = Triggered
				} else {
					updated[local] = Resting
				}
			case Dead:
				updated[local] = Dead
			}
		}
		if err := region.SetState(updated); err != nil {
			return err
		}
	}

	n.history.push(n.State())
	return nil
}

func mustFirst(r *Region) int {
	first, _ := r.NeuronIndex()
	return first
}

// firingProbabilityVector computes p_fire[i] = 1 - prod_j C[i,j]^T[j] for
// every target neuron i, reading the PRE-update state (spec.md §4.2 step 3).
func (n *Network) firingProbabilityVector() []float32 {
	state := n.State()
	triggered := make([]bool, n.size)
	for i, v := range state {
		triggered[i] = v == Triggered
	}
	out := make([]float32, n.size)
	for target := 0; target < n.size; target++ {
		logNonFiring := 0.0
		for source := 0; source < n.size; source++ {
			if !triggered[source] {
				continue
			}
			v := n.conf.at(target, source)
			logNonFiring += math.Log(float64(v))
		}
		nonFiring := math.Exp(logNonFiring)
		out[target] = float32(1.0 - nonFiring)
	}
	return out
}

// OptimizeConnections applies one tick of plasticity to the internal
// submatrix: global decay toward 1.0, exploratory weakening of outgoing
// edges from freshly triggered neurons, and Hebbian strengthening of
// incoming edges from neighbors triggered the previous tick.
func (n *Network) OptimizeConnections() {
	idx := n.internalNeuronIndex
	state := n.State()
	prev := n.history.previous()

	alpha := n.cfg.DecayCoefficient
	for _, t := range idx {
		for _, s := range idx {
			if !n.conf.hasEdge(t, s) {
				continue
			}
			v := float64(n.conf.at(t, s))
			n.conf.update(t, s, float32(alpha+(1-alpha)*v))
		}
	}

	for _, i := range idx {
		if state[i] != Triggered {
			continue
		}
		for _, j := range idx {
			if n.conf.hasEdge(j, i) {
				v := float64(n.conf.at(j, i))
				n.conf.update(j, i, float32(v*(1-n.cfg.ExplorationRate)))
			}
			if prev[j] == Triggered && n.conf.hasEdge(i, j) {
				v := float64(n.conf.at(i, j))
				n.conf.update(i, j, float32(math.Pow(v, n.cfg.StrengtheningExponent)))
			}
		}
	}
}

// Reward replays a coherent periodic signal through every sensory region
// for RewardPeriod ticks, running propagation and plasticity each
// sub-tick so Hebbian strengthening locks the pattern in.
func (n *Network) Reward(rng agentrand.Source) error {
	for i := 0; i < n.cfg.RewardPeriod; i++ {
		signal := make(map[string][]float32, len(n.sensoryRegionNames))
		for _, name := range n.sensoryRegionNames {
			region := n.regionByID[name]
			value := Resting
			if i%n.cfg.RewardSignalPeriod == 0 {
				value = Triggered
			}
			signal[name] = fillConst(region.Size, value)
		}
		if err := n.PropagateSignal(rng, signal); err != nil {
			return err
		}
		n.OptimizeConnections()
	}
	return nil
}

// Punish replays an asynchronous, per-region-randomized signal through
// every sensory region for PunishPeriod ticks, dissipating recently
// formed associations via the decay-dominant regime.
func (n *Network) Punish(rng agentrand.Source) error {
	periods := make([]int, len(n.sensoryRegionNames))
	delays := make([]int, len(n.sensoryRegionNames))
	for i := range n.sensoryRegionNames {
		periods[i] = rng.IntRange(n.cfg.PunishMinSignalPeriod, n.cfg.PunishMaxSignalPeriod)
		delays[i] = rng.IntRange(0, n.cfg.PunishPeriod/2)
	}

	for i := 0; i < n.cfg.PunishPeriod; i++ {
		signal := make(map[string][]float32, len(n.sensoryRegionNames))
		for k, name := range n.sensoryRegionNames {
			region := n.regionByID[name]
			value := Resting
			if i >= delays[k] && (i-delays[k])%periods[k] == 0 {
				value = Triggered
			}
			signal[name] = fillConst(region.Size, value)
		}
		if err := n.PropagateSignal(rng, signal); err != nil {
			return err
		}
		n.OptimizeConnections()
	}
	return nil
}

func fillConst(size int, value float32) []float32 {
	out := make([]float32, size)
	for i := range out {
		out[i] = value
	}
	return out
}

// RemoveNeurons marks k uniformly-sampled, distinct neurons of the named
// region DEAD. This is the only operation that permanently reduces a
// region's available neuron count.
func (n *Network) RemoveNeurons(k int, regionName string, rng agentrand.Source) error {
	region, ok := n.regionByID[regionName]
	if !ok {
		return agenterr.Newf(agenterr.NetworkCommunicationError, "unknown region %q", regionName).WithFaultyNames(regionName)
	}
	if k >= region.Size {
		return agenterr.Newf(agenterr.NetworkCommunicationError, "number of neurons to remove (%d) must be less than region %q size (%d)", k, regionName, region.Size).WithFaultyNames(regionName)
	}
	state := region.State()
	for _, idx := range rng.Choice(region.Size, k) {
		state[idx] = Dead
	}
	return region.SetState(state)
}

// ComputeFreeEnergy returns the network's current free energy and appends
// it to the free-energy history. F = E - k*S, where E is the negative
// count of triggered internal neurons and S is the binary entropy summed
// over non-triggered neurons, computed against the global conformation
// matrix (spec.md §4.5, resolved open question).
func (n *Network) ComputeFreeEnergy() float64 {
	state := n.State()
	triggered := make([]bool, n.size)
	nonTriggered := make([]bool, n.size)
	for i, v := range state {
		triggered[i] = v == Triggered
		nonTriggered[i] = v == Resting || v == n.cfg.RecoveryStateEnergyRatio
	}

	var globalEntropy float64
	for target := 0; target < n.size; target++ {
		if !nonTriggered[target] {
			continue
		}
		logRest := 0.0
		for source := 0; source < n.size; source++ {
			if !triggered[source] {
				continue
			}
			logRest += math.Log(float64(n.conf.at(target, source)))
		}
		pRest := math.Exp(logRest)
		safeRest := pRest
		if safeRest <= 0 {
			safeRest = 1
		}
		pFire := 1.0 - pRest
		safeFire := pFire
		if safeFire <= 0 {
			safeFire = 1
		}
		entropy := -safeRest*math.Log2(safeRest) - safeFire*math.Log2(safeFire)
		globalEntropy += entropy
	}

	var potentialEnergy float64
	for _, r := range n.regions {
		if !r.IsInternal() {
			continue
		}
		for _, v := range r.State() {
			if v == Triggered {
				potentialEnergy -= 1.0
			}
		}
	}

	freeEnergy := potentialEnergy - n.cfg.KValue*globalEntropy
	n.freeEnergies = append(n.freeEnergies, freeEnergy)
	return freeEnergy
}

// FreeEnergyHistory returns a copy of every free energy value computed so far.
func (n *Network) FreeEnergyHistory() []float64 {
	out := make([]float64, len(n.freeEnergies))
	copy(out, n.freeEnergies)
	return out
}

// MotorSignal returns, for each named region in order, the mean state
// value of that region averaged twice over: once across its neurons,
// once across the state-history window.
func (n *Network) MotorSignal(regionNames []string) ([]float64, error) {
	out := make([]float64, len(regionNames))
	firsts := make([]int, len(regionNames))
	sizes := make([]int, len(regionNames))
	for i, name := range regionNames {
		region, ok := n.regionByID[name]
		if !ok {
			return nil, agenterr.Newf(agenterr.NetworkCommunicationError, "unknown region %q", name).WithFaultyNames(name)
		}
		firsts[i], _ = region.NeuronIndex()
		sizes[i] = region.Size
	}
	n.history.forEach(func(state []float32) {
		for i := range regionNames {
			var sum float64
			for j := 0; j < sizes[i]; j++ {
				sum += float64(state[firsts[i]+j])
			}
			out[i] += sum / float64(sizes[i])
		}
	})
	h := float64(n.history.capacity())
	for i := range out {
		out[i] /= h
	}
	return out, nil
}
