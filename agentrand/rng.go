// Package agentrand provides the single deterministic random stream shared
// by a simulation instance, its network, and every controller/element that
// draws from it (spec.md §5 "Concurrency & Resource Model" — one RNG
// stream per simulation, consumed in a fixed traversal order).
package agentrand

import "math/rand"

// Source is the minimal random-number interface consumed by the network,
// controllers and simulations. It mirrors numpy's Generator surface
// closely enough that the original algorithms translate directly.
type Source interface {
	// Uniform returns a float64 drawn uniformly from [0, 1).
	Uniform() float64
	// IntRange returns an int drawn uniformly from [low, high).
	IntRange(low, high int) int
	// Shuffle permutes a slice of n elements in place, calling swap(i, j)
	// for each transposition, following the Fisher-Yates scheme.
	Shuffle(n int, swap func(i, j int))
	// Choice draws k distinct indices from [0, n) without replacement.
	Choice(n, k int) []int
}

// Rand is the default Source, wrapping a seeded math/rand.Rand.
type Rand struct {
	r *rand.Rand
}

// New returns a Rand seeded deterministically from seed. Two Rands built
// from the same seed draw identical sequences.
func New(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Uniform returns a float64 drawn uniformly from [0, 1).
func (g *Rand) Uniform() float64 {
	return g.r.Float64()
}

// IntRange returns an int drawn uniformly from [low, high).
func (g *Rand) IntRange(low, high int) int {
	if high <= low {
		return low
	}
	return low + g.r.Intn(high-low)
}

// Shuffle permutes n elements in place.
func (g *Rand) Shuffle(n int, swap func(i, j int)) {
	g.r.Shuffle(n, swap)
}

// Choice draws k distinct indices from [0, n) without replacement, by
// shuffling all n indices and keeping the first k.
func (g *Rand) Choice(n, k int) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	g.r.Shuffle(n, func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	result := make([]int, k)
	copy(result, pool[:k])
	return result
}
