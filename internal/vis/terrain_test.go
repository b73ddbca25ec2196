package vis

import (
	"reflect"
	"testing"
)

// TestOutlineDeterministic checks that identical parameters reproduce the
// outline bit for bit, with no hidden randomness.
func TestOutlineDeterministic(t *testing.T) {
	a := buildOutline(SideLeft, 431.7, 1.5, 9, 20)
	b := buildOutline(SideLeft, 431.7, 1.5, 9, 20)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical parameters produced different outlines")
	}

	c := buildOutline(SideLeft, 431.8, 1.5, 9, 20)
	if reflect.DeepEqual(a, c) {
		t.Fatal("different seeds produced identical outlines")
	}
}

// TestTerrainDeterministic checks full-terrain reproducibility per seed.
func TestTerrainDeterministic(t *testing.T) {
	a := BuildTerrain(NumLayers, 12345)
	b := BuildTerrain(NumLayers, 12345)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different terrain")
	}
}

// TestDepthMonotonicity checks the depth ordering contract for N=5:
// valley and ridge height strictly shrink, motion strictly grows.
func TestDepthMonotonicity(t *testing.T) {
	layers := BuildTerrain(5, 777)
	for i := 1; i < len(layers); i++ {
		prev, cur := &layers[i-1], &layers[i]
		if cur.ValleyHalf >= prev.ValleyHalf {
			t.Errorf("layer %d: valleyHalf %v did not shrink from %v", i, cur.ValleyHalf, prev.ValleyHalf)
		}
		if cur.RidgeHeight >= prev.RidgeHeight {
			t.Errorf("layer %d: ridgeHeight %v did not shrink from %v", i, cur.RidgeHeight, prev.RidgeHeight)
		}
		if cur.Motion <= prev.Motion {
			t.Errorf("layer %d: motion %v did not grow from %v", i, cur.Motion, prev.Motion)
		}
	}
}

// TestSingleLayerTerrain checks the degenerate N=1 case: no division by
// zero, and the layer carries the nearest (d=0) parameter set.
func TestSingleLayerTerrain(t *testing.T) {
	layers := BuildTerrain(1, 1)
	if len(layers) != 1 {
		t.Fatalf("got %d layers, want 1", len(layers))
	}
	l := layers[0]
	if l.ValleyHalf != MaxValleyHalf || l.RidgeHeight != MaxRidgeH || l.BaseY != MinBaseY {
		t.Errorf("single layer params = (%v,%v,%v), want nearest set (%v,%v,%v)",
			l.ValleyHalf, l.RidgeHeight, l.BaseY, MaxValleyHalf, MaxRidgeH, MinBaseY)
	}
	if l.Motion != MotionBase {
		t.Errorf("single layer motion = %v, want %v", l.Motion, MotionBase)
	}
}

// TestOutlineShape checks the construction contract: floor corners at both
// ends, ridge samples inside the noise envelope, x walking monotonically
// from the outer edge to the valley.
func TestOutlineShape(t *testing.T) {
	const (
		seed       = 55.5
		baseY      = 0.5
		valleyHalf = 8.0
		height     = 18.0
	)
	for _, side := range []Side{SideLeft, SideRight} {
		pts := buildOutline(side, seed, baseY, valleyHalf, height)
		if len(pts) != RidgeSegments+4 {
			t.Fatalf("side %d: %d points, want %d", side, len(pts), RidgeSegments+4)
		}
		sgn := float64(side)

		first, last := pts[0], pts[len(pts)-1]
		if first.X != sgn*OuterX || first.Y != FloorY {
			t.Errorf("side %d: first point %+v, want outer floor corner", side, first)
		}
		if last.X != sgn*valleyHalf || last.Y != FloorY {
			t.Errorf("side %d: last point %+v, want valley floor corner", side, last)
		}

		top := pts[2 : len(pts)-1]
		for i, p := range top {
			lo, hi := baseY, baseY+height*(NoiseFloor+NoiseRange)
			if p.Y < lo || p.Y > hi {
				t.Errorf("side %d sample %d: y=%v outside [%v,%v]", side, i, p.Y, lo, hi)
			}
			if i > 0 {
				stepIn := (top[i].X - top[i-1].X) * sgn
				if stepIn >= 0 {
					t.Errorf("side %d sample %d: x did not move toward the valley", side, i)
				}
			}
		}
		// Taper: the valley-edge sample has zero falloff, so it sits on the baseline.
		if tip := top[len(top)-1]; tip.Y != baseY {
			t.Errorf("side %d: valley-edge sample y=%v, want baseline %v", side, tip.Y, baseY)
		}
	}
}

// TestOutlineSidesDecorrelated checks the two sides of one layer get
// independent noise.
func TestOutlineSidesDecorrelated(t *testing.T) {
	layers := BuildTerrain(2, 31337)
	l := layers[0]
	same := true
	for i := range l.LeftShape {
		if l.LeftShape[i].Y != l.RightShape[i].Y {
			same = false
			break
		}
	}
	if same {
		t.Error("left and right silhouettes share identical heights")
	}
}
