package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/lightborne/assets/levels"
	"github.com/automoto/lightborne/components"
	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/scenes"
	"github.com/automoto/lightborne/systems"
)

func main() {
	configPath := flag.String("config", "", "Config file (default: lightborne.yaml, then lightborne_example.yaml)")
	ticks := flag.Uint64("ticks", 600, "Number of ticks to simulate")
	killAt := flag.Uint64("kill-at", 60, "Tick at which the reset key is pressed (0 = never)")
	realtime := flag.Bool("realtime", false, "Run at the configured tick rate instead of as fast as possible")
	flag.Parse()

	var candidates []string
	if *configPath != "" {
		candidates = []string{*configPath}
	}
	if err := cfg.Load(candidates...); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	script := map[uint64][]cfg.ActionID{}
	if *killAt > 0 {
		script[*killAt] = []cfg.ActionID{cfg.ActionReset}
	}

	scene := scenes.NewWorldScene(scenes.WorldOptions{
		LevelFS:   levels.FS(cfg.Level.Dir),
		LevelPath: cfg.Level.File,
		Audio:     systems.LogSink{},
		Progress:  &systems.MemoryStore{},
		Input:     &scenes.ScriptedInput{Script: script},
	})

	log.Printf("Simulating %d ticks of %s (kill at %d)", *ticks, cfg.Level.File, *killAt)

	if *realtime {
		loop := scenes.NewGameLoop(scene, cfg.Simulation.TicksPerSecond)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Println("Shutting down simulation...")
			loop.Stop()
		}()
		if err := loop.Run(*ticks); err != nil {
			log.Fatalf("Simulation error: %v", err)
		}
		report(scene)
		return
	}

	phase := components.PhasePlaying
	stage := components.StageIdle
	for scene.Ticks() < *ticks {
		if err := scene.Update(); err != nil {
			log.Fatalf("Simulation error: %v", err)
		}
		w := scene.World()
		state := systems.GetOrCreateGameState(w)
		seq := systems.GetOrCreateRespawnSequence(w)
		if state.Phase != phase || seq.Stage != stage {
			log.Printf("tick %d: phase %s, stage %s", scene.Ticks(), state.Phase, seq.Stage)
			phase, stage = state.Phase, seq.Stage
		}
	}
	report(scene)
}

func report(scene *scenes.WorldScene) {
	w := scene.World()
	level, ok := systems.GetLevel(w)
	if !ok {
		return
	}
	cam := systems.GetOrCreateCamera(w)
	log.Printf("Finished after %d ticks in level %s (allowed %s), camera at (%.1f, %.1f)",
		scene.Ticks(), level.Current.LevelIID, level.Current.AllowedColors, cam.Position.X, cam.Position.Y)
}
