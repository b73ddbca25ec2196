package vis

import "math"

// LayerOffset is the per-tick vertical translation applied to one layer's
// two silhouettes. A translation only: geometry is never regenerated.
type LayerOffset struct {
	Left, Right float64
}

// LayerOffsets computes the offset for every layer at elapsed time t with
// the current smoothed mid-band level. Deeper layers drift with larger
// amplitude and rate; the audio lift rides on top of the drift. The right
// side is scaled by RightAsymmetry for a deliberate left/right imbalance.
//
// dst is reused across frames when it has the right length.
func LayerOffsets(layers []RidgeLayer, t, mid float64, dst []LayerOffset) []LayerOffset {
	if len(dst) != len(layers) {
		dst = make([]LayerOffset, len(layers))
	}
	for i := range layers {
		l := &layers[i]
		drift := math.Sin(t*(BaseDriftRate+l.Motion)+float64(l.Index)*PhaseOffset) * l.Motion
		lift := mid * l.Motion * LiftGain
		left := drift + lift
		dst[i] = LayerOffset{Left: left, Right: left * RightAsymmetry}
	}
	return dst
}
