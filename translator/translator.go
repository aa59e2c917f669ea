// Package translator converts a ball's field position into a topographic,
// frequency-modulated sensory clamp for the network's external regions.
package translator

import "math"

// BallPositionFunc reports a ball's current center, queried fresh every
// tick. A translator never holds a reference back to its owning
// simulation (spec.md §9 design note); the simulation instead supplies
// this callback.
type BallPositionFunc func() (x, y float64)

// SignalTranslator maps ball position to a one-hot clamp across an
// ordered list of sensory regions, one region per topographic vertical
// band, fired at a rate that increases as the ball nears the agent.
type SignalTranslator struct {
	RegionNames  []string
	RegionSize   int
	MinFrequency float64
	MaxFrequency float64
	Width        float64
	Height       float64
	Frequency    float64
	Position     BallPositionFunc

	timer int
}

// New creates a translator over regionNames, each holding regionSize
// neurons, modulated between minFrequency (far from the agent) and
// maxFrequency (near the agent).
func New(regionNames []string, regionSize int, minFrequency, maxFrequency, width, height, frequency float64, position BallPositionFunc) *SignalTranslator {
	return &SignalTranslator{
		RegionNames:  regionNames,
		RegionSize:   regionSize,
		MinFrequency: minFrequency,
		MaxFrequency: maxFrequency,
		Width:        width,
		Height:       height,
		Frequency:    frequency,
		Position:     position,
		timer:        -1,
	}
}

// ResetTimer restarts the fire timer, forcing an immediate signal on the
// next GenerateSensorySignal call. Used whenever the ball regenerates.
func (t *SignalTranslator) ResetTimer() {
	t.timer = -1
}

// GenerateSensorySignal returns the clamp for this tick, or nil if the
// translator's internal timer has not yet reached the current signal
// period (meaning the network should keep running unclamped).
func (t *SignalTranslator) GenerateSensorySignal() map[string][]float32 {
	x, y := t.Position()

	frequency := t.MaxFrequency + (x/t.Width)*(t.MinFrequency-t.MaxFrequency)
	period := t.Frequency / frequency

	if t.timer != -1 && float64(t.timer) < period {
		t.timer++
		return nil
	}

	regionCount := len(t.RegionNames)
	bandHeight := t.Height / float64(regionCount)
	slot := int(math.Min(math.Floor(y/bandHeight), float64(regionCount-1)))

	signal := make(map[string][]float32, regionCount)
	for i, name := range t.RegionNames {
		value := float32(0.0)
		if i == slot {
			value = 1.0
		}
		row := make([]float32, t.RegionSize)
		for j := range row {
			row[j] = value
		}
		signal[name] = row
	}
	t.timer = 0
	return signal
}
