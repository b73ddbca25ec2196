package vis

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Ridgeline"
)

// Audio capture format.
const (
	SampleRate      = 44100
	FramesPerBuffer = 1024
	FFTSize         = 1024
	SnapshotBins    = FFTSize / 2
)

// Byte frequency snapshot: bin magnitudes in dB mapped linearly onto 0..255.
// Same fixed window the Web Audio analyser uses.
const (
	MinDecibels = -100.0
	MaxDecibels = -30.0
	MaxByteMag  = 255
)

// Band windows (FFT bin indices, inclusive). Non-overlapping and increasing
// so bass/mid/treble stay separable; the exact boundaries are tuning.
const (
	BassLoBin   = 0
	BassHiBin   = 14
	MidLoBin    = 18
	MidHiBin    = 70
	TrebleLoBin = 90
	TrebleHiBin = 180
)

// SmoothFactor is the per-cycle lerp factor toward the new band energy.
// Lower = more inertia, less jitter, more latency.
const SmoothFactor = 0.2

// Terrain layout (world units).
const (
	NumLayers     = 5
	OuterX        = 60.0
	MaxValleyHalf = 14.0
	MinValleyHalf = 6.0
	MinBaseY      = -2.0
	MaxBaseY      = 4.0
	MaxRidgeH     = 26.0
	MinRidgeH     = 9.0
	FloorY        = -6.0
	NearZ         = -10.0
	LayerZStep    = -7.0
)

// Ridge outline sampling.
const (
	RidgeSegments = 10
	FalloffExp    = 0.8  // biases height toward the outer edge
	NoiseFloor    = 0.58 // ridges never fully flat
	NoiseRange    = 0.9  // ...nor overshooting
	NoiseStep     = 12.9898
	BaselineRise  = 0.2
)

// Per-frame motion.
const (
	MotionBase     = 0.30
	MotionStep     = 0.35
	BaseDriftRate  = 0.35
	PhaseOffset    = 1.7
	LiftGain       = 0.65
	RightAsymmetry = 0.9
)

// Camera.
const (
	CamFovDeg  = 55.0
	CamNear    = 0.1
	CamFar     = 220.0
	CamEyeY    = 6.0
	CamEyeZ    = 18.0
	CamTargetY = 4.0
	CamTargetZ = -24.0
)

// Sky texture.
const (
	SkySize        = 256
	SkyOctaves     = 4
	SkyPersistence = 0.55
	SkyGlowGain    = 0.35 // bass-driven horizon glow
)
