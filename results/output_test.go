package results

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/vlachapelle/spikepaddle/geometry"
)

func TestWriteEnvHistoryRoundTrips(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir, "run1")
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	defer om.Close()

	history := [][]geometry.Vector2D{
		{{X: 0, Y: 0}},
		{{X: 1, Y: 2}},
	}
	if err := om.WriteEnvHistory(history); err != nil {
		t.Fatalf("WriteEnvHistory: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "run1", "env_history.json"))
	if err != nil {
		t.Fatalf("reading env_history.json: %v", err)
	}
	var loaded [][]geometry.Vector2D
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(loaded) != 2 || loaded[1][0].X != 1 || loaded[1][0].Y != 2 {
		t.Errorf("loaded = %+v, want round-tripped history", loaded)
	}
}

func TestNewOutputManagerDisabledWithEmptyName(t *testing.T) {
	om, err := NewOutputManager(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	if om != nil {
		t.Fatal("expected a nil OutputManager for an empty simulation name")
	}
	if err := om.WriteTelemetryRow(TelemetryRow{}); err != nil {
		t.Errorf("WriteTelemetryRow on nil manager should be a no-op, got %v", err)
	}
}
