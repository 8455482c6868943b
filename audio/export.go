package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/pong/core"
)

// ExportWAV writes every sound effect as a 16-bit mono WAV file into dir
// Returns the written paths in SoundType order
func ExportWAV(dir string, sampleRate int) ([]string, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("export: invalid sample rate %d", sampleRate)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("export: create %s: %w", dir, err)
	}

	sr := beep.SampleRate(sampleRate)
	format := beep.Format{
		SampleRate:  sr,
		NumChannels: 1,
		Precision:   2,
	}

	paths := make([]string, 0, core.SoundTypeCount)
	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		path := filepath.Join(dir, s.String()+".wav")
		if err := writeWAV(path, NewSoundStreamer(sr, s), format); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeWAV(path string, streamer beep.Streamer, format beep.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	if err := wav.Encode(f, streamer, format); err != nil {
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return nil
}
