package client

import (
	"log"
	"path/filepath"

	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a WorldScene to ebiten. When a watcher is attached, edited
// level or config files are reloaded between ticks.
type Game struct {
	scene   *scenes.WorldScene
	watcher *cfg.Watcher
}

func NewGame(scene *scenes.WorldScene, watcher *cfg.Watcher) *Game {
	return &Game{scene: scene, watcher: watcher}
}

func (g *Game) Update() error {
	g.applyEdits()
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return int(cfg.Camera.ViewWidth), int(cfg.Camera.ViewHeight)
}

// applyEdits drains pending file events without blocking the frame.
func (g *Game) applyEdits() {
	if g.watcher == nil {
		return
	}

	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if ext := filepath.Ext(name); ext == ".yaml" || ext == ".yml" {
				if err := cfg.Load(name); err != nil {
					log.Printf("Warning: Could not reload %s: %v", name, err)
					continue
				}
			}
			reload = true
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("Warning: file watcher: %v", err)
			}
		default:
			if reload {
				if err := g.scene.Reload(); err != nil {
					log.Printf("Warning: Could not reload level: %v", err)
				}
			}
			return
		}
	}
}
