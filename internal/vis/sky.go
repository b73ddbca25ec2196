package vis

import "github.com/ojrac/opensimplex-go"

// BuildSkyTexture generates the RGBA background texture once per seed:
// a dusk gradient with fBm-noise cloud banding. Deterministic per seed so
// a restarted session reproduces the same sky.
func BuildSkyTexture(seed uint64) []uint8 {
	noise := opensimplex.NewNormalized(int64(seed))
	pix := make([]uint8, SkySize*SkySize*4)

	for y := 0; y < SkySize; y++ {
		v := float64(y) / (SkySize - 1) // 0 = zenith, 1 = horizon
		for x := 0; x < SkySize; x++ {
			u := float64(x) / (SkySize - 1)

			// fBm cloud banding, stretched horizontally.
			sum, amp, freq, norm := 0.0, 1.0, 1.0, 0.0
			for o := 0; o < SkyOctaves; o++ {
				sum += amp * noise.Eval2(u*6*freq, v*2.5*freq)
				norm += amp
				amp *= SkyPersistence
				freq *= 2
			}
			cloud := sum / norm

			// Dark violet zenith to warm horizon.
			r := lerpF(0.05, 0.36, v*v) + cloud*0.10
			g := lerpF(0.04, 0.16, v*v) + cloud*0.06
			b := lerpF(0.10, 0.30, v) + cloud*0.08

			i := (y*SkySize + x) * 4
			pix[i+0] = uint8(clampF(r, 0, 1) * 255)
			pix[i+1] = uint8(clampF(g, 0, 1) * 255)
			pix[i+2] = uint8(clampF(b, 0, 1) * 255)
			pix[i+3] = 255
		}
	}
	return pix
}
