package vis

import (
	"math"
	"testing"
)

func sineBuffer(bin int, amp float64) []float32 {
	buf := make([]float32, FFTSize)
	for i := range buf {
		buf[i] = float32(amp * math.Sin(2*math.Pi*float64(bin)*float64(i)/FFTSize))
	}
	return buf
}

// TestSnapshotBeforeFill checks the cadence contract: no full captured
// frame, no snapshot, so the extractor skips the cycle.
func TestSnapshotBeforeFill(t *testing.T) {
	an := &Analyser{}
	dst := make([]byte, SnapshotBins)
	if an.Snapshot(dst) {
		t.Fatal("snapshot reported available before any samples")
	}

	an.Push(make([]float32, FFTSize/2))
	if an.Snapshot(dst) {
		t.Fatal("snapshot reported available on a partial frame")
	}

	an.Push(make([]float32, FFTSize/2))
	if !an.Snapshot(dst) {
		t.Fatal("snapshot unavailable after a full frame")
	}
}

// TestSnapshotSinePeak checks a pure tone lands its energy on its own bin.
func TestSnapshotSinePeak(t *testing.T) {
	an := &Analyser{}
	an.Push(sineBuffer(64, 0.5))

	dst := make([]byte, SnapshotBins)
	if !an.Snapshot(dst) {
		t.Fatal("no snapshot after a full frame")
	}
	if dst[64] == 0 {
		t.Fatal("tone bin reads zero")
	}
	if dst[64] <= dst[32] || dst[64] <= dst[200] {
		t.Errorf("tone bin %d not dominant: bins 32/64/200 = %d/%d/%d", 64, dst[32], dst[64], dst[200])
	}
}

// TestSnapshotSilence checks silence maps to the bottom of the byte range.
func TestSnapshotSilence(t *testing.T) {
	an := &Analyser{}
	an.Push(make([]float32, FFTSize))

	dst := make([]byte, SnapshotBins)
	if !an.Snapshot(dst) {
		t.Fatal("no snapshot after a full frame")
	}
	for i, v := range dst {
		if v != 0 {
			t.Fatalf("bin %d = %d for silence, want 0", i, v)
		}
	}
}

// TestAnalyserReset checks a reset discards buffered audio so a new
// session never analyses the old one.
func TestAnalyserReset(t *testing.T) {
	an := &Analyser{}
	an.Push(sineBuffer(10, 0.8))
	an.Reset()

	dst := make([]byte, SnapshotBins)
	if an.Snapshot(dst) {
		t.Fatal("snapshot available after reset")
	}
}
