// Package results records a simulation run's history and serializes it
// to the result directory layout spec.md §6 describes.
package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/vlachapelle/spikepaddle/config"
	"github.com/vlachapelle/spikepaddle/geometry"
)

// TelemetryRow is one per-tick line of the supplementary telemetry.csv,
// in the spirit of the teacher's windowed telemetry export.
type TelemetryRow struct {
	Tick               int     `csv:"tick"`
	FreeEnergy         float64 `csv:"free_energy"`
	RunningSuccessRate float64 `csv:"running_success_rate"`
}

// OutputManager owns the result directory for one simulation run:
// zero or more of env_history.json, free_energy_history.json,
// success_history.json, config.json, plus the supplementary
// telemetry.csv.
type OutputManager struct {
	dir string

	telemetryFile          *os.File
	telemetryHeaderWritten bool
}

// NewOutputManager creates results/<simulationName>/ and opens its
// telemetry.csv. Returns nil if simulationName is empty (output
// disabled).
func NewOutputManager(resultsRoot, simulationName string) (*OutputManager, error) {
	if simulationName == "" {
		return nil, nil
	}
	dir := filepath.Join(resultsRoot, simulationName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating result directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	om.telemetryFile = f
	return om, nil
}

// Close releases the telemetry.csv file handle.
func (om *OutputManager) Close() error {
	if om == nil || om.telemetryFile == nil {
		return nil
	}
	return om.telemetryFile.Close()
}

// WriteTelemetryRow appends one tick's telemetry record, writing the CSV
// header on the first call.
func (om *OutputManager) WriteTelemetryRow(row TelemetryRow) error {
	if om == nil {
		return nil
	}
	records := []TelemetryRow{row}
	if !om.telemetryHeaderWritten {
		if err := gocsv.Marshal(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		om.telemetryHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.telemetryFile); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// WriteEnvHistory serializes the per-tick element centers to
// env_history.json, as a list of lists of {"X": x, "Y": y} objects.
func (om *OutputManager) WriteEnvHistory(history [][]geometry.Vector2D) error {
	if om == nil {
		return nil
	}
	return om.writeJSON("env_history.json", history)
}

// WriteFreeEnergyHistory serializes the per-tick free-energy series to
// free_energy_history.json.
func (om *OutputManager) WriteFreeEnergyHistory(history []float64) error {
	if om == nil {
		return nil
	}
	return om.writeJSON("free_energy_history.json", history)
}

// outcomeRow is the JSON shape of one success_history.json row: an
// (outcome, tick) pair.
type outcomeRow struct {
	Outcome bool `json:"outcome"`
	Tick    int  `json:"tick"`
}

// WriteSuccessHistory serializes the recorded reward/punish outcomes to
// success_history.json.
func (om *OutputManager) WriteSuccessHistory(outcomes []bool, ticks []int) error {
	if om == nil {
		return nil
	}
	rows := make([]outcomeRow, len(outcomes))
	for i := range outcomes {
		rows[i] = outcomeRow{Outcome: outcomes[i], Tick: ticks[i]}
	}
	return om.writeJSON("success_history.json", rows)
}

// WriteConfig serializes the simulation's construction arguments to
// config.json so a loader can recover an equivalent object graph
// (spec.md §6 round-trip contract).
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return om.writeJSON("config.json", cfg)
}

func (om *OutputManager) writeJSON(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}
	return os.WriteFile(filepath.Join(om.dir, name), data, 0o644)
}
