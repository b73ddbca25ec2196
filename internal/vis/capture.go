package vis

import (
	"fmt"
	"strings"

	"github.com/gordonklaus/portaudio"
	"go.uber.org/zap"
)

// CaptureMode selects the class of audio source to open.
type CaptureMode int

const (
	// CaptureMicrophone opens the default input device.
	CaptureMicrophone CaptureMode = iota
	// CaptureLoopback opens a system monitor/loopback input, so the scene
	// reacts to whatever the machine is playing instead of the room.
	CaptureLoopback
)

func (m CaptureMode) String() string {
	if m == CaptureLoopback {
		return "loopback"
	}
	return "microphone"
}

// Capture owns the portaudio stream for one session. The stream callback is
// the sole writer of the shared AudioBands: every captured buffer is pushed
// into the analyser and, when a full frame is available, reduced to one
// extraction cycle. The render tick only ever reads.
type Capture struct {
	stream   *portaudio.Stream
	analyser *Analyser
	bands    *AudioBands
	snap     []byte
	log      *zap.Logger
	stopped  bool
}

// StartCapture acquires the audio source for the given mode and starts the
// stream. On any failure everything acquired so far is released and the
// error describes which step failed; AudioBands is left untouched (still at
// its zero baseline). On success the caller must eventually call Stop.
func StartCapture(mode CaptureMode, an *Analyser, bands *AudioBands, log *zap.Logger) (*Capture, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}

	dev, err := inputDevice(mode)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}

	c := &Capture{
		analyser: an,
		bands:    bands,
		snap:     make([]byte, SnapshotBins),
		log:      log,
	}

	params := portaudio.LowLatencyParameters(dev, nil)
	params.Input.Channels = 1
	params.SampleRate = SampleRate
	params.FramesPerBuffer = FramesPerBuffer

	stream, err := portaudio.OpenStream(params, c.process)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("open %s stream: %w", mode, err)
	}
	c.stream = stream

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("start %s stream: %w", mode, err)
	}

	log.Info("capture started",
		zap.Stringer("mode", mode),
		zap.String("device", dev.Name),
		zap.Int("sampleRate", SampleRate),
	)
	return c, nil
}

// process runs on portaudio's callback thread, once per captured buffer.
// One buffer in, at most one extraction cycle out; when the analyser has no
// full frame yet the previous smoothed values simply persist.
func (c *Capture) process(in []float32) {
	c.analyser.Push(in)
	if c.analyser.Snapshot(c.snap) {
		c.bands.Update(c.snap)
	}
}

// Stop tears down the stream and resets the shared state to its zero
// baseline. After Stop returns no further writes to AudioBands happen:
// stopping the stream waits for any in-flight callback. Idempotent.
func (c *Capture) Stop() {
	if c == nil || c.stopped {
		return
	}
	c.stopped = true
	if err := c.stream.Stop(); err != nil {
		c.log.Warn("stream stop", zap.Error(err))
	}
	c.stream.Close()
	portaudio.Terminate()
	c.analyser.Reset()
	c.bands.Reset()
	c.log.Info("capture stopped")
}

// inputDevice resolves the capture device for a mode. Loopback looks for a
// monitor-style input (PulseAudio/PipeWire expose sink monitors this way);
// if none exists the failure is surfaced to the caller of StartCapture
// rather than silently falling back to the microphone.
func inputDevice(mode CaptureMode) (*portaudio.DeviceInfo, error) {
	if mode == CaptureMicrophone {
		dev, err := portaudio.DefaultInputDevice()
		if err != nil {
			return nil, fmt.Errorf("default input device: %w", err)
		}
		return dev, nil
	}

	devs, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("enumerate devices: %w", err)
	}
	for _, d := range devs {
		if d.MaxInputChannels > 0 && strings.Contains(strings.ToLower(d.Name), "monitor") {
			return d, nil
		}
	}
	return nil, fmt.Errorf("no loopback (monitor) input device found")
}
