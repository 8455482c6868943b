package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/parameter"
)

// SoundManager plays the game's sound effects through a single mixer
// Every method is safe to call when the speaker could not be initialized
type SoundManager struct {
	mu          sync.Mutex
	config      AudioConfig
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
	muted       atomic.Bool
}

// NewSoundManager creates a new sound manager; nil config means defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		config:     *cfg,
		sampleRate: beep.SampleRate(cfg.SampleRate),
		mixer:      &beep.Mixer{},
	}
	sm.volume = &effects.Volume{
		Streamer: sm.mixer,
		Base:     2,
	}
	sm.applyVolume(cfg.Volume)
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize sets up the speaker; a failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if sm.sampleRate <= 0 {
		return fmt.Errorf("audio: invalid sample rate %d", sm.sampleRate)
	}

	if err := speaker.Init(sm.sampleRate, sm.sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is running
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play queues one sound effect; never blocks on playback
func (sm *SoundManager) Play(sound core.SoundType) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := NewSoundStreamer(sm.sampleRate, sound)
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// SetVolume changes master volume (0-100)
func (sm *SoundManager) SetVolume(percent int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.applyVolume(percent)
}

// applyVolume maps a linear percentage onto the log2 scale effects.Volume uses
func (sm *SoundManager) applyVolume(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	sm.config.Volume = percent
	if percent == 0 {
		sm.volume.Silent = true
		sm.volume.Volume = 0
		return
	}
	sm.volume.Silent = false
	sm.volume.Volume = math.Log2(float64(percent) / 100)
}

// Volume returns the master volume percentage
func (sm *SoundManager) Volume() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.config.Volume
}
