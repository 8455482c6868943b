package audio

import (
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/parameter"
)

// newTone is a finite sine at constant amplitude
func newTone(sr beep.SampleRate, freq float64, duration time.Duration, volume float64) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		log.Printf("audio: tone %.0f Hz at %d Hz sample rate: %v", freq, sr, err)
		return beep.Silence(0)
	}
	return &effects.Gain{
		Streamer: beep.Take(sr.N(duration), sine),
		Gain:     volume - 1,
	}
}

// GoalGenerator streams the rising three-segment sweep played on a goal
// 300->500 Hz, then 500->800 Hz, then 800->1000 Hz, fading linearly to half volume
type GoalGenerator struct {
	sr      beep.SampleRate
	samples int
	pos     int
	phase   float64
}

// NewGoalGenerator creates the goal sweep for the given rate
func NewGoalGenerator(sr beep.SampleRate) *GoalGenerator {
	return &GoalGenerator{
		sr:      sr,
		samples: sr.N(parameter.GoalDuration),
	}
}

// goalFrequency returns the instantaneous frequency t seconds into the sweep
func goalFrequency(t float64) float64 {
	s1 := parameter.GoalSweep1End.Seconds()
	s2 := parameter.GoalSweep2End.Seconds()
	end := parameter.GoalDuration.Seconds()

	switch {
	case t < s1:
		return 300 + (t/s1)*200
	case t < s2:
		return 500 + ((t-s1)/(s2-s1))*300
	default:
		return 800 + ((t-s2)/(end-s2))*200
	}
}

func (g *GoalGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	duration := parameter.GoalDuration.Seconds()
	for i := range samples {
		if g.pos >= g.samples {
			break
		}
		t := float64(g.pos) / float64(g.sr)
		fade := 1.0 - (t/duration)*parameter.GoalFadeFraction
		sample := parameter.GoalVolume * fade * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += goalFrequency(t) / float64(g.sr)
		if g.phase >= 1.0 {
			g.phase -= 1.0
		}
		g.pos++
		n++
	}
	return n, true
}

func (g *GoalGenerator) Err() error {
	return nil
}

// NewSoundStreamer builds a fresh finite streamer for the given sound
func NewSoundStreamer(sr beep.SampleRate, sound core.SoundType) beep.Streamer {
	switch sound {
	case core.SoundWallHit:
		return newTone(sr, parameter.WallHitFrequency, parameter.WallHitDuration, parameter.WallHitVolume)
	case core.SoundPaddleHit:
		return newTone(sr, parameter.PaddleHitFrequency, parameter.PaddleHitDuration, parameter.PaddleHitVolume)
	case core.SoundGoal:
		return NewGoalGenerator(sr)
	default:
		return beep.Silence(0)
	}
}
