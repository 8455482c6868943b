package audio

import "github.com/lixenwraith/pong/parameter"

// AudioConfig holds audio output settings
type AudioConfig struct {
	Enabled    bool
	Volume     int // 0-100
	SampleRate int
}

// DefaultAudioConfig returns enabled audio at the default volume and rate
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:    true,
		Volume:     parameter.AudioDefaultVolume,
		SampleRate: parameter.AudioSampleRate,
	}
}
