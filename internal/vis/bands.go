package vis

import (
	"math"
	"sync/atomic"
)

// AudioBands holds the three smoothed control signals derived from the live
// audio stream. Each field is an exponentially-weighted moving average of
// per-frame band energy in [0,1], never the instantaneous value.
//
// Single writer (the capture callback), any number of readers (the render
// tick). Fields are independent atomic cells, so readers may interleave with
// an update cycle but never see a torn scalar.
type AudioBands struct {
	bass   atomic.Uint64
	mid    atomic.Uint64
	treble atomic.Uint64
}

func (b *AudioBands) Bass() float64   { return math.Float64frombits(b.bass.Load()) }
func (b *AudioBands) Mid() float64    { return math.Float64frombits(b.mid.Load()) }
func (b *AudioBands) Treble() float64 { return math.Float64frombits(b.treble.Load()) }

// Reset returns all bands to the zero baseline. Called on capture stop so
// consumers cool down instead of freezing on a stale value.
func (b *AudioBands) Reset() {
	zero := math.Float64bits(0)
	b.bass.Store(zero)
	b.mid.Store(zero)
	b.treble.Store(zero)
}

// Update runs one extraction cycle: band-average the snapshot and smooth
// each signal toward its new target. Must only be called from the single
// capture-side writer.
func (b *AudioBands) Update(snapshot []byte) {
	b.bass.Store(math.Float64bits(smooth(b.Bass(), averageBand(snapshot, BassLoBin, BassHiBin), SmoothFactor)))
	b.mid.Store(math.Float64bits(smooth(b.Mid(), averageBand(snapshot, MidLoBin, MidHiBin), SmoothFactor)))
	b.treble.Store(math.Float64bits(smooth(b.Treble(), averageBand(snapshot, TrebleLoBin, TrebleHiBin), SmoothFactor)))
}

// averageBand returns the mean snapshot magnitude over the inclusive bin
// range [start, min(end, last)], normalized to [0,1]. Averaging (not peak
// picking) is the noise-reduction step. An empty effective range yields 0.
func averageBand(snapshot []byte, start, end int) float64 {
	if end > len(snapshot)-1 {
		end = len(snapshot) - 1
	}
	if start > end {
		return 0
	}
	sum := 0.0
	for i := start; i <= end; i++ {
		sum += float64(snapshot[i])
	}
	return sum / float64(end-start+1) / MaxByteMag
}

// smooth lerps prev toward target; applied every cycle this is first-order
// exponential smoothing.
func smooth(prev, target, factor float64) float64 {
	return prev + (target-prev)*factor
}
