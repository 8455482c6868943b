package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/render"
	"github.com/lixenwraith/pong/vmath"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(2)
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.RegisterCrashTerminal(screen)
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("pong: seed=%d speed=%.1fx difficulty=%s", seed, cfg.Speed, cfg.Difficulty)

	events := event.NewEventQueue()
	field := core.DefaultField()
	session := engine.NewSession(engine.SessionConfig{
		Field:       field,
		SpeedTenths: cfg.SpeedTenths(),
		Difficulty:  cfg.Difficulty,
		MaxScore:    cfg.MaxScore,
		Rand:        vmath.NewFastRand(seed),
		Events:      events,
	})

	// Audio is optional: a missing device leaves the manager silent
	sound := audio.NewSoundManager(cfg.Audio())
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	router := event.NewRouter(events)
	router.Register(audio.NewEventHandler(sound))
	router.Register(newLogHandler())

	_, rows := screen.Size()
	decoder := input.NewDecoder(input.DefaultKeyTable(), field, rows)
	renderer := render.NewTerminalRenderer(screen)

	eventChan := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	renderer.RenderFrame(session.Snapshot())

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				renderer.Resize()
			}
			decoder.Feed(ev, session.State())

		case <-ticker.C:
			in := decoder.Drain()
			if in.Close {
				log.Printf("pong: closed by terminal")
				return nil
			}

			applyAudioActions(&in, sound)
			session.Update(in)
			router.DispatchAll()

			if session.Exited() {
				return nil
			}
			renderer.RenderFrame(session.Snapshot())
		}
	}
}

// audioControl is the part of the sound manager driven directly by keys
type audioControl interface {
	ToggleMute() bool
	Volume() int
	SetVolume(percent int)
}

// applyAudioActions consumes audio keys outside the session, leaving the rest in order
func applyAudioActions(in *input.Input, sound audioControl) {
	kept := in.Actions[:0]
	for _, a := range in.Actions {
		if !a.IsAudio() {
			kept = append(kept, a)
			continue
		}
		switch a.Type {
		case input.ActionToggleMute:
			log.Printf("audio: muted=%v", sound.ToggleMute())
		case input.ActionVolumeUp:
			sound.SetVolume(sound.Volume() + parameter.AudioVolumeStep)
			log.Printf("audio: volume=%d", sound.Volume())
		case input.ActionVolumeDown:
			sound.SetVolume(sound.Volume() - parameter.AudioVolumeStep)
			log.Printf("audio: volume=%d", sound.Volume())
		}
	}
	in.Actions = kept
}

// newLogHandler records lifecycle notifications in the debug log
func newLogHandler() event.Handler {
	return event.HandlerFunc{
		Types: []event.EventType{event.EventGoalScored, event.EventStateChanged, event.EventExit},
		Fn: func(ev event.GameEvent) {
			switch p := ev.Payload.(type) {
			case *event.GoalPayload:
				log.Printf("frame %d: goal by %s, score %d-%d", ev.Frame, p.Scorer, p.PlayerScore, p.AIScore)
			case *event.StateChangePayload:
				log.Printf("frame %d: state %s -> %s", ev.Frame, p.From, p.To)
			default:
				log.Printf("frame %d: %s", ev.Frame, ev.Type)
			}
		},
	}
}
