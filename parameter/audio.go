package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioExportSampleRate matches the rate the standalone sound files are written at
	AudioExportSampleRate = 22050

	AudioDefaultVolume = 80
	AudioVolumeStep    = 10
)

// Wall Hit Sound
const (
	WallHitFrequency = 800.0
	WallHitDuration  = 100 * time.Millisecond
	WallHitVolume    = 0.4
)

// Paddle Hit Sound
const (
	PaddleHitFrequency = 400.0
	PaddleHitDuration  = 150 * time.Millisecond
	PaddleHitVolume    = 0.5
)

// Goal Sound
// Three linear sweeps: 300->500 Hz, 500->800 Hz, 800->1000 Hz
const (
	GoalDuration     = 500 * time.Millisecond
	GoalSweep1End    = 200 * time.Millisecond
	GoalSweep2End    = 350 * time.Millisecond
	GoalVolume       = 0.5
	GoalFadeFraction = 0.5
)
