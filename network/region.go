package network

import "github.com/vlachapelle/spikepaddle/agenterr"

// Kind distinguishes the two flavors of Region: External regions may be
// clamped by the outside world (sensory input), Internal regions are
// driven solely by propagation and are the only regions plasticity
// touches.
type Kind int

const (
	// Internal regions are driven by propagation and participate in
	// plasticity.
	Internal Kind = iota
	// External regions may be clamped to an externally supplied state
	// (sensory input) and never participate in plasticity.
	External
)

func (k Kind) String() string {
	if k == External {
		return "external"
	}
	return "internal"
}

// Region is a named, contiguously-indexed group of neurons sharing a
// state vector. A network assigns each region's first neuron index at
// assembly time; before that, firstIndex is unset.
type Region struct {
	Name string
	Size int
	Kind Kind

	state       []float32
	firstIndex  int
	hasFirstIdx bool
}

// NewRegion creates a region with the given name, neuron count and kind.
// Every neuron starts RESTING (0.0).
func NewRegion(name string, size int, kind Kind) (*Region, error) {
	if size <= 0 {
		return nil, agenterr.Newf(agenterr.NetworkInitializationError, "region %q size (%d) must be greater than 0", name, size)
	}
	return &Region{
		Name:  name,
		Size:  size,
		Kind:  kind,
		state: make([]float32, size),
	}, nil
}

// IsInternal reports whether this region participates in plasticity.
func (r *Region) IsInternal() bool { return r.Kind == Internal }

// State returns a copy of the region's current state vector.
func (r *Region) State() []float32 {
	out := make([]float32, len(r.state))
	copy(out, r.state)
	return out
}

// SetState replaces the region's state. The given slice's length must
// equal the region's size.
func (r *Region) SetState(state []float32) error {
	if len(state) != r.Size {
		return agenterr.Newf(agenterr.NetworkCommunicationError, "given state's length (%d) does not match region %q size (%d)", len(state), r.Name, r.Size).WithFaultyNames(r.Name)
	}
	copy(r.state, state)
	return nil
}

// setNeuronIndex assigns the first global neuron index occupied by this
// region's neurons; called once by Network during assembly.
func (r *Region) setNeuronIndex(first int) {
	r.firstIndex = first
	r.hasFirstIdx = true
}

// NeuronIndex returns the global index of the region's first neuron and
// whether one has been assigned yet.
func (r *Region) NeuronIndex() (int, bool) {
	return r.firstIndex, r.hasFirstIdx
}

// IndexedState returns the region's neuron indices paired with their
// current state, in ascending index order.
func (r *Region) IndexedState() []IndexedNeuron {
	out := make([]IndexedNeuron, r.Size)
	for i, v := range r.state {
		idx := i
		if r.hasFirstIdx {
			idx = r.firstIndex + i
		}
		out[i] = IndexedNeuron{Index: idx, State: v}
	}
	return out
}

// IndexedNeuron pairs a global neuron index with its state value.
type IndexedNeuron struct {
	Index int
	State float32
}
