package vis

import (
	"math"
	"testing"
)

// TestOffsetAsymmetry checks the fixed left/right relation for every layer
// at every tick: right = left * RightAsymmetry.
func TestOffsetAsymmetry(t *testing.T) {
	layers := BuildTerrain(NumLayers, 42)
	var offsets []LayerOffset
	for _, tick := range []float64{0, 0.016, 0.7, 3.1, 60.5} {
		for _, mid := range []float64{0, 0.25, 0.9} {
			offsets = LayerOffsets(layers, tick, mid, offsets)
			for i, o := range offsets {
				if o.Right != o.Left*RightAsymmetry {
					t.Fatalf("t=%v mid=%v layer %d: right=%v, want left*%v=%v",
						tick, mid, i, o.Right, RightAsymmetry, o.Left*RightAsymmetry)
				}
			}
		}
	}
}

// TestOffsetLift checks the audio lift term: raising the mid band shifts a
// layer by mid * motion * LiftGain on top of its drift.
func TestOffsetLift(t *testing.T) {
	layers := BuildTerrain(NumLayers, 42)
	quiet := LayerOffsets(layers, 2.5, 0, nil)
	loud := LayerOffsets(layers, 2.5, 0.5, nil)
	for i := range layers {
		want := 0.5 * layers[i].Motion * LiftGain
		got := loud[i].Left - quiet[i].Left
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("layer %d: lift %v, want %v", i, got, want)
		}
	}
}

// TestOffsetDriftBounds checks that with no audio the drift amplitude never
// exceeds the layer's motion coefficient.
func TestOffsetDriftBounds(t *testing.T) {
	layers := BuildTerrain(NumLayers, 42)
	var offsets []LayerOffset
	for tick := 0.0; tick < 20; tick += 0.13 {
		offsets = LayerOffsets(layers, tick, 0, offsets)
		for i, o := range offsets {
			if math.Abs(o.Left) > layers[i].Motion+1e-12 {
				t.Fatalf("t=%v layer %d: |drift| %v exceeds motion %v", tick, i, o.Left, layers[i].Motion)
			}
		}
	}
}

// TestOffsetsReuseBuffer checks the destination slice is reused when sized
// correctly (the render loop calls this every tick).
func TestOffsetsReuseBuffer(t *testing.T) {
	layers := BuildTerrain(NumLayers, 42)
	a := LayerOffsets(layers, 0, 0, nil)
	b := LayerOffsets(layers, 1, 0, a)
	if &a[0] != &b[0] {
		t.Error("correctly sized buffer was reallocated")
	}
}
