package vis

import "math"

// Point is a 2D outline vertex in world units.
type Point struct {
	X, Y float64
}

// Side selects which ridge silhouette of the valley an outline belongs to.
type Side int

const (
	SideLeft  Side = -1
	SideRight Side = 1
)

// RidgeLayer is one depth layer of the terrain. Shapes are built once per
// configuration and immutable afterwards; per-frame animation only
// translates them vertically (see offsets.go).
type RidgeLayer struct {
	Index       int
	Z           float64
	BaseY       float64
	ValleyHalf  float64
	RidgeHeight float64
	Motion      float64
	LeftShape   []Point
	RightShape  []Point
}

// BuildTerrain constructs n ridge layers from the given seed. Near layers
// (low index) have the widest valley and tallest ridges; depth narrows the
// valley, raises the baseline and shrinks the ridges, while the motion
// coefficient grows with the index. Fully deterministic: same (n, seed),
// same geometry.
func BuildTerrain(n int, seed uint64) []RidgeLayer {
	layers := make([]RidgeLayer, 0, n)
	for i := 0; i < n; i++ {
		d := 0.0
		if n > 1 {
			d = float64(i) / float64(n-1)
		}
		l := RidgeLayer{
			Index:       i,
			Z:           NearZ + float64(i)*LayerZStep,
			BaseY:       lerpF(MinBaseY, MaxBaseY, d),
			ValleyHalf:  lerpF(MaxValleyHalf, MinValleyHalf, d),
			RidgeHeight: lerpF(MaxRidgeH, MinRidgeH, d),
			Motion:      MotionBase + float64(i)*MotionStep,
		}
		l.LeftShape = buildOutline(SideLeft, layerSeed(seed, i, SideLeft), l.BaseY, l.ValleyHalf, l.RidgeHeight)
		l.RightShape = buildOutline(SideRight, layerSeed(seed, i, SideRight), l.BaseY, l.ValleyHalf, l.RidgeHeight)
		layers = append(layers, l)
	}
	return layers
}

// layerSeed derives the real-valued noise seed for one outline. Mixing the
// 64-bit seed keeps sibling layers (and the two sides of one layer)
// decorrelated while staying reproducible.
func layerSeed(seed uint64, index int, side Side) float64 {
	h := splitmix64(seed ^ uint64(index)*0x9E3779B185EBCA87 ^ uint64(int64(side)+7))
	return float64(h%100000) / 10.0
}

// buildOutline samples one ridge silhouette. The outline starts at the far
// outer edge on the scene floor, rises to just above the baseline, runs
// RidgeSegments+1 noise-displaced samples toward the valley edge, then
// drops to the floor at the valley. Callers close the path back to the
// start when triangulating.
//
// Height falloff (1-t)^FalloffExp tapers ridges to near-zero at the valley;
// the noise term stays inside [NoiseFloor, NoiseFloor+NoiseRange) so ridges
// are bumpy but never flat nor overshooting.
func buildOutline(side Side, seed, baseY, valleyHalf, height float64) []Point {
	sgn := float64(side)
	pts := make([]Point, 0, RidgeSegments+4)
	pts = append(pts, Point{X: sgn * OuterX, Y: FloorY})
	pts = append(pts, Point{X: sgn * OuterX, Y: baseY + BaselineRise})

	for i := 0; i <= RidgeSegments; i++ {
		t := float64(i) / RidgeSegments
		x := sgn * lerpF(OuterX, valleyHalf, t)
		falloff := math.Pow(1-t, FalloffExp)
		n := ridgeNoise(seed + float64(i)*NoiseStep)
		y := baseY + height*(NoiseFloor+n*NoiseRange)*falloff
		pts = append(pts, Point{X: x, Y: y})
	}

	pts = append(pts, Point{X: sgn * valleyHalf, Y: FloorY})
	return pts
}

// ridgeNoise is a stateless hash from a real number to [0,1). A stateful
// generator would break reproducibility across runs, so this must stay a
// pure function of x.
func ridgeNoise(x float64) float64 {
	return fract(math.Sin(x) * 43758.5453)
}
