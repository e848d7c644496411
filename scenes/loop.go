package scenes

import (
	"log"
	"time"
)

// GameLoop runs a scene at a fixed real-time rate, for tools that have no
// window to drive the update.
type GameLoop struct {
	scene    *WorldScene
	tickRate int
	stopChan chan struct{}
}

func NewGameLoop(scene *WorldScene, tickRate int) *GameLoop {
	return &GameLoop{
		scene:    scene,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run ticks until Stop is called, maxTicks ticks have run (0 means no
// limit) or the scene fails.
func (g *GameLoop) Run(maxTicks uint64) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return nil
		case <-ticker.C:
			if err := g.scene.Update(); err != nil {
				return err
			}
			if maxTicks > 0 && g.scene.Ticks() >= maxTicks {
				return nil
			}
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}
