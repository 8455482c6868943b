package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/parameter"
)

func main() {
	outDir := flag.String("out", "sounds", "directory to write the WAV files into")
	sampleRate := flag.Int("rate", parameter.AudioExportSampleRate, "sample rate of the exported files")
	flag.Parse()

	paths, err := audio.ExportWAV(*outDir, *sampleRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong-sounds: %v\n", err)
		os.Exit(1)
	}
	for _, p := range paths {
		fmt.Println(p)
	}
}
