package network

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vlachapelle/spikepaddle/agenterr"
	"github.com/vlachapelle/spikepaddle/agentrand"
)

// GraphGenerator produces a transmission-probability matrix of shape
// target×source, flattened row-major, given the target and source region
// sizes. Network converts its output to 1-p when laying the block into
// the conformation matrix.
type GraphGenerator func(targetSize, sourceSize int) ([]float32, error)

// FixedAverageTransmission returns a generator whose every row's mean
// transmission probability is approximately average. Values are drawn
// uniformly, each row is rescaled so its mean matches average, then
// clipped to [0,1].
func FixedAverageTransmission(average float64, rng agentrand.Source) (GraphGenerator, error) {
	if !(0.0 < average && average < 1.0) {
		return nil, agenterr.Newf(agenterr.InvalidAverage, "transmission average must be in (0,1), got %v", average)
	}
	return func(targetSize, sourceSize int) ([]float32, error) {
		row := make([]float64, sourceSize)
		out := make([]float32, targetSize*sourceSize)
		for t := 0; t < targetSize; t++ {
			for s := 0; s < sourceSize; s++ {
				row[s] = rng.Uniform()
			}
			mean := stat.Mean(row, nil)
			floats.Scale(average/mean, row)
			for s, v := range row {
				out[t*sourceSize+s] = float32(clip01(v))
			}
		}
		return out, nil
	}, nil
}

// SelfReferringFixedAverageTransmission is like FixedAverageTransmission
// but excludes the diagonal from both generation and the row-mean
// correction, since a neuron never connects to itself. Requires target
// and source sizes to be equal.
func SelfReferringFixedAverageTransmission(average float64, rng agentrand.Source) (GraphGenerator, error) {
	if !(0.0 < average && average < 1.0) {
		return nil, agenterr.Newf(agenterr.InvalidAverage, "transmission average must be in (0,1), got %v", average)
	}
	return func(targetSize, sourceSize int) ([]float32, error) {
		if targetSize != sourceSize {
			return nil, agenterr.Newf(agenterr.SizeMismatch, "self-referring transmission requires equal sizes, got target=%d source=%d", targetSize, sourceSize)
		}
		n := targetSize
		out := make([]float32, n*n)
		row := make([]float64, 0, n-1)
		for t := 0; t < n; t++ {
			row = row[:0]
			values := make([]float64, n)
			for s := 0; s < n; s++ {
				if s == t {
					continue
				}
				v := rng.Uniform()
				values[s] = v
				row = append(row, v)
			}
			mean := stat.Mean(row, nil)
			for s := 0; s < n; s++ {
				if s == t {
					continue
				}
				out[t*n+s] = float32(clip01((average / mean) * values[s]))
			}
		}
		return out, nil
	}, nil
}

func clip01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
