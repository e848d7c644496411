package main

import (
	"log"

	"github.com/automoto/lightborne/assets"
	"github.com/automoto/lightborne/assets/levels"
	"github.com/automoto/lightborne/client"
	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/fonts"
	"github.com/automoto/lightborne/scenes"
	"github.com/automoto/lightborne/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const windowScale = 3

func main() {
	if err := cfg.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	audioLoader := assets.NewAudioLoader(audio.NewContext(cfg.Audio.SampleRate))
	if err := audioLoader.PreloadAll(); err != nil {
		log.Printf("Warning: Could not preload sound effects: %v", err)
	}

	var progress systems.ProgressStore = &systems.MemoryStore{}
	if store, err := systems.NewGDataStore("lightborne"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		progress = store
	}

	scene := scenes.NewWorldScene(scenes.WorldOptions{
		LevelFS:   levels.FS(cfg.Level.Dir),
		LevelPath: cfg.Level.File,
		Audio:     audioLoader,
		Progress:  progress,
		Input:     &client.DeviceInput{},
		Renderers: []any{client.DrawWorld},
	})
	scene.World()
	if err := scene.Err(); err != nil {
		log.Fatalf("Failed to build world: %v", err)
	}

	var watcher *cfg.Watcher
	if cfg.Level.HotReload {
		w, err := cfg.NewWatcher(cfg.Level.Dir, ".")
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", cfg.Level.Dir, err)
		} else {
			watcher = w
			defer watcher.Close()
			log.Printf("Watching %s for level edits", cfg.Level.Dir)
		}
	}

	ebiten.SetWindowSize(int(cfg.Camera.ViewWidth)*windowScale, int(cfg.Camera.ViewHeight)*windowScale)
	ebiten.SetWindowTitle("Lightborne")
	ebiten.SetTPS(cfg.Simulation.TicksPerSecond)

	if err := ebiten.RunGame(client.NewGame(scene, watcher)); err != nil {
		log.Fatal(err)
	}
}
