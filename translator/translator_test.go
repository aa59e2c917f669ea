package translator

import "testing"

func constPosition(x, y float64) BallPositionFunc {
	return func() (float64, float64) { return x, y }
}

func TestGenerateSensorySignalFiresImmediatelyAfterReset(t *testing.T) {
	tr := New([]string{"top", "mid", "bottom"}, 2, 1.0, 4.0, 100.0, 90.0, 12.0, constPosition(50, 45))

	signal := tr.GenerateSensorySignal()
	if signal == nil {
		t.Fatal("expected a signal on the first call after construction")
	}
	if len(signal) != 3 {
		t.Fatalf("len(signal) = %d, want 3", len(signal))
	}
	for name, row := range signal {
		if len(row) != 2 {
			t.Fatalf("region %q has %d entries, want 2", name, len(row))
		}
	}
	if signal["mid"][0] != 1.0 || signal["mid"][1] != 1.0 {
		t.Errorf("signal[mid] = %v, want all-ones (ball at y=45 falls in the middle band)", signal["mid"])
	}
	if signal["top"][0] != 0.0 || signal["bottom"][0] != 0.0 {
		t.Errorf("non-target regions must be all-zero, got top=%v bottom=%v", signal["top"], signal["bottom"])
	}
}

func TestGenerateSensorySignalWithholdsUntilPeriodElapses(t *testing.T) {
	tr := New([]string{"top", "bottom"}, 1, 1.0, 1.0, 100.0, 100.0, 100.0, constPosition(0, 0))

	if signal := tr.GenerateSensorySignal(); signal == nil {
		t.Fatal("expected a signal on the first call")
	}
	if signal := tr.GenerateSensorySignal(); signal != nil {
		t.Fatalf("expected no signal immediately after firing, got %v", signal)
	}
}

func TestGenerateSensorySignalPicksBottomBandForBottomPosition(t *testing.T) {
	tr := New([]string{"top", "mid", "bottom"}, 1, 1.0, 1.0, 100.0, 90.0, 12.0, constPosition(0, 89))

	signal := tr.GenerateSensorySignal()
	if signal["bottom"][0] != 1.0 {
		t.Errorf("signal[bottom] = %v, want [1]", signal["bottom"])
	}
	if signal["top"][0] != 0.0 || signal["mid"][0] != 0.0 {
		t.Errorf("expected only bottom to fire, got top=%v mid=%v", signal["top"], signal["mid"])
	}
}

func TestResetTimerForcesImmediateSignal(t *testing.T) {
	tr := New([]string{"top", "bottom"}, 1, 1.0, 1.0, 100.0, 100.0, 100.0, constPosition(0, 0))
	tr.GenerateSensorySignal()
	tr.ResetTimer()
	if signal := tr.GenerateSensorySignal(); signal == nil {
		t.Fatal("expected ResetTimer to force an immediate signal")
	}
}
