package vis

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Run opens the window and drives the sense->derive->consume loop until the
// window closes. The capture callback is the only writer of the shared band
// state; this loop only reads it.
//
// Keys: Space toggles capture, M switches microphone/loopback, Esc quits.
func Run() {
	runtime.LockOSThread()

	log := newLogger()
	defer log.Sync()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	// Seed from environment or a fixed default: the terrain is meant to be
	// reproducible, so no wall clock here.
	seed := uint64(1847)
	if s := os.Getenv("RIDGELINE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}
	log.Info("scene seed", zap.Uint64("seed", seed))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0.05, 0.04, 0.10, 1.0)

	layers := BuildTerrain(NumLayers, seed)
	rend, err := NewRenderer(layers, BuildSkyTexture(seed))
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	bands := &AudioBands{}
	analyser := &Analyser{}
	mode := CaptureMicrophone

	// Capture failure is non-fatal: the scene runs unreactive and capture
	// can be retried with Space.
	var capture *Capture
	capture, err = StartCapture(mode, analyser, bands, log)
	if err != nil {
		log.Warn("capture unavailable, starting silent", zap.Error(err))
	}
	defer func() { capture.Stop() }()

	input := NewInput()
	var offsets []LayerOffset

	// Elapsed time accumulates from clamped frame deltas so a stalled frame
	// cannot jerk the drift animation.
	elapsed := 0.0
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}
		elapsed += dt

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		if input.JustPressed(window, glfw.KeySpace) {
			if capture != nil {
				capture.Stop()
				capture = nil
			} else if capture, err = StartCapture(mode, analyser, bands, log); err != nil {
				log.Warn("capture start failed", zap.Error(err))
			}
		}
		if input.JustPressed(window, glfw.KeyM) {
			if mode == CaptureMicrophone {
				mode = CaptureLoopback
			} else {
				mode = CaptureMicrophone
			}
			log.Info("capture mode switched", zap.Stringer("mode", mode))
			if capture != nil {
				capture.Stop()
				if capture, err = StartCapture(mode, analyser, bands, log); err != nil {
					log.Warn("capture restart failed", zap.Error(err))
					capture = nil
				}
			}
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		offsets = LayerOffsets(layers, elapsed, bands.Mid(), offsets)
		rend.DrawFrame(offsets, bands.Bass(), bands.Treble(), fbW, fbH)

		window.SwapBuffers()
	}
}
