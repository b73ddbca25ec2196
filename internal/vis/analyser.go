package vis

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/window"
)

// Analyser turns the raw capture stream into byte frequency snapshots: the
// latest FFTSize mono samples, Hann-windowed, transformed, and the bin
// magnitudes mapped from [MinDecibels, MaxDecibels] dB onto 0..255.
//
// The ring is written from portaudio's callback thread, hence the mutex.
// Snapshot reuses internal scratch buffers and has a single caller (the
// capture callback); the FFT itself runs outside the lock.
type Analyser struct {
	mu      sync.Mutex
	ring    [FFTSize]float64
	pos     int
	total   int
	frame   [FFTSize]float64
	scratch [FFTSize]float64
}

// Push appends captured mono samples to the ring.
func (a *Analyser) Push(samples []float32) {
	a.mu.Lock()
	for _, s := range samples {
		a.ring[a.pos] = float64(s)
		a.pos = (a.pos + 1) % FFTSize
	}
	a.total += len(samples)
	a.mu.Unlock()
}

// Snapshot fills dst (length SnapshotBins) with the current byte frequency
// snapshot and reports whether one was available. Before a full frame has
// been captured it returns false and leaves dst untouched, so callers skip
// the extraction cycle instead of reading silence as signal.
func (a *Analyser) Snapshot(dst []byte) bool {
	if len(dst) < SnapshotBins {
		return false
	}

	a.mu.Lock()
	if a.total < FFTSize {
		a.mu.Unlock()
		return false
	}
	// Unroll the ring into time order.
	n := copy(a.scratch[:], a.ring[a.pos:])
	copy(a.scratch[n:], a.ring[:a.pos])
	a.mu.Unlock()

	copy(a.frame[:], a.scratch[:])
	window.Hann(a.frame[:])

	spectrum := fft.FFTReal(a.frame[:])
	for i := 0; i < SnapshotBins; i++ {
		mag := cmplx.Abs(spectrum[i]) / (FFTSize / 2)
		db := -math.MaxFloat64
		if mag > 0 {
			db = 20 * math.Log10(mag)
		}
		v := (db - MinDecibels) / (MaxDecibels - MinDecibels) * MaxByteMag
		dst[i] = byte(clampF(v, 0, MaxByteMag))
	}
	return true
}

// Reset discards buffered samples so a restarted capture session does not
// analyse audio from the previous one.
func (a *Analyser) Reset() {
	a.mu.Lock()
	a.ring = [FFTSize]float64{}
	a.pos = 0
	a.total = 0
	a.mu.Unlock()
}
