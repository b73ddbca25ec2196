package vis

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return gl.PtrOffset(n) }

// layerSide is one uploaded silhouette: a static triangle strip built once
// from the outline, repositioned per frame through uYOffset only.
type layerSide struct {
	vao   uint32
	vbo   uint32
	count int32
}

// Renderer draws the sky backdrop and the ridge layers. All geometry is
// uploaded once at init; per-frame work is uniform updates and draw calls.
type Renderer struct {
	ridgeProg uint32
	uProj     int32
	uView     int32
	uZ        int32
	uYOffset  int32
	uColor    int32
	uFogColor int32
	uFog      int32
	uGlow     int32

	skyProg  uint32
	skyVAO   uint32
	skyVBO   uint32
	skyTex   uint32
	skyUTex  int32
	skyUGlow int32

	layers []RidgeLayer
	sides  [][2]layerSide // [layer][left,right]
	view   mgl32.Mat4
}

// Fog/silhouette palette. Near layers are near-black silhouettes; distance
// fades them toward the dusk fog color.
var (
	ridgeNearColor = [3]float32{0.10, 0.07, 0.14}
	ridgeFogColor  = [3]float32{0.38, 0.22, 0.30}
)

func NewRenderer(layers []RidgeLayer, skyPix []uint8) (*Renderer, error) {
	r := &Renderer{layers: layers}

	prog, err := linkProgram(ridgeVertSrc, ridgeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("ridge program: %w", err)
	}
	r.ridgeProg = prog
	r.uProj = gl.GetUniformLocation(prog, gl.Str("uProj\x00"))
	r.uView = gl.GetUniformLocation(prog, gl.Str("uView\x00"))
	r.uZ = gl.GetUniformLocation(prog, gl.Str("uZ\x00"))
	r.uYOffset = gl.GetUniformLocation(prog, gl.Str("uYOffset\x00"))
	r.uColor = gl.GetUniformLocation(prog, gl.Str("uColor\x00"))
	r.uFogColor = gl.GetUniformLocation(prog, gl.Str("uFogColor\x00"))
	r.uFog = gl.GetUniformLocation(prog, gl.Str("uFog\x00"))
	r.uGlow = gl.GetUniformLocation(prog, gl.Str("uGlow\x00"))

	r.sides = make([][2]layerSide, len(layers))
	for i := range layers {
		r.sides[i][0] = uploadOutline(layers[i].LeftShape)
		r.sides[i][1] = uploadOutline(layers[i].RightShape)
	}

	if err := r.initSky(skyPix); err != nil {
		r.Destroy()
		return nil, err
	}

	r.view = mgl32.LookAtV(
		mgl32.Vec3{0, CamEyeY, CamEyeZ},
		mgl32.Vec3{0, CamTargetY, CamTargetZ},
		mgl32.Vec3{0, 1, 0},
	)
	return r, nil
}

// uploadOutline converts an outline into a down-up triangle strip: each top
// sample is paired with its projection on the scene floor. The outline's
// first and last points are the floor closure corners and are skipped.
func uploadOutline(shape []Point) layerSide {
	top := shape[1 : len(shape)-1]
	verts := make([]float32, 0, len(top)*4)
	for _, p := range top {
		verts = append(verts, float32(p.X), float32(FloorY))
		verts = append(verts, float32(p.X), float32(p.Y))
	}

	var s layerSide
	s.count = int32(len(verts) / 2)
	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	gl.BindVertexArray(0)
	return s
}

func (r *Renderer) initSky(pix []uint8) error {
	prog, err := linkProgram(skyVertSrc, skyFragSrc)
	if err != nil {
		return fmt.Errorf("sky program: %w", err)
	}
	r.skyProg = prog
	r.skyUTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))
	r.skyUGlow = gl.GetUniformLocation(prog, gl.Str("uGlow\x00"))

	quad := []float32{-1, -1, 1, -1, -1, 1, 1, 1}
	gl.GenVertexArrays(1, &r.skyVAO)
	gl.GenBuffers(1, &r.skyVBO)
	gl.BindVertexArray(r.skyVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.skyVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	gl.BindVertexArray(0)

	gl.GenTextures(1, &r.skyTex)
	gl.BindTexture(gl.TEXTURE_2D, r.skyTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, SkySize, SkySize, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return nil
}

// DrawFrame renders one tick: sky first, then layers far to near with their
// per-tick offsets (painter's order, no depth buffer needed).
func (r *Renderer) DrawFrame(offsets []LayerOffset, bass, treble float64, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.skyProg)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.skyTex)
	gl.Uniform1i(r.skyUTex, 0)
	gl.Uniform1f(r.skyUGlow, float32(bass*SkyGlowGain))
	gl.BindVertexArray(r.skyVAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	proj := mgl32.Perspective(mgl32.DegToRad(CamFovDeg), float32(fbW)/float32(fbH), CamNear, CamFar)

	gl.UseProgram(r.ridgeProg)
	gl.UniformMatrix4fv(r.uProj, 1, false, &proj[0])
	gl.UniformMatrix4fv(r.uView, 1, false, &r.view[0])
	gl.Uniform3f(r.uFogColor, ridgeFogColor[0], ridgeFogColor[1], ridgeFogColor[2])
	gl.Uniform1f(r.uGlow, float32(treble*0.5))

	for i := len(r.layers) - 1; i >= 0; i-- {
		l := &r.layers[i]
		fog := float32(0)
		if len(r.layers) > 1 {
			fog = float32(l.Index) / float32(len(r.layers)-1)
		}
		gl.Uniform1f(r.uZ, float32(l.Z))
		gl.Uniform3f(r.uColor, ridgeNearColor[0], ridgeNearColor[1], ridgeNearColor[2])
		gl.Uniform1f(r.uFog, fog)

		gl.Uniform1f(r.uYOffset, float32(offsets[i].Left))
		gl.BindVertexArray(r.sides[i][0].vao)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, r.sides[i][0].count)

		gl.Uniform1f(r.uYOffset, float32(offsets[i].Right))
		gl.BindVertexArray(r.sides[i][1].vao)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, r.sides[i][1].count)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) Destroy() {
	for i := range r.sides {
		for j := range r.sides[i] {
			if r.sides[i][j].vbo != 0 {
				gl.DeleteBuffers(1, &r.sides[i][j].vbo)
				gl.DeleteVertexArrays(1, &r.sides[i][j].vao)
			}
		}
	}
	if r.skyTex != 0 {
		gl.DeleteTextures(1, &r.skyTex)
	}
	if r.skyVBO != 0 {
		gl.DeleteBuffers(1, &r.skyVBO)
		gl.DeleteVertexArrays(1, &r.skyVAO)
	}
	if r.skyProg != 0 {
		gl.DeleteProgram(r.skyProg)
	}
	if r.ridgeProg != 0 {
		gl.DeleteProgram(r.ridgeProg)
	}
}
