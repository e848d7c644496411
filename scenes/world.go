package scenes

import (
	"fmt"
	"io/fs"
	"log"
	"sync"

	cfg "github.com/automoto/lightborne/config"
	"github.com/automoto/lightborne/leveldata"
	"github.com/automoto/lightborne/systems"
	"github.com/automoto/lightborne/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldOptions are the services a WorldScene runs with. Audio, Progress
// and Input may be nil. Renderers are added to the default layer with
// ecs.AddRenderer, so each one takes (*ecs.ECS, T) for the Draw argument T.
type WorldOptions struct {
	LevelFS   fs.FS
	LevelPath string
	Audio     systems.AudioSink
	Progress  systems.ProgressStore
	Input     systems.InputSource
	Renderers []any
}

// WorldScene owns the ECS and runs the systems in a fixed order.
type WorldScene struct {
	opts  WorldOptions
	ecs   *ecs.ECS
	data  *leveldata.World
	ticks uint64
	err   error
	once  sync.Once
}

func NewWorldScene(opts WorldOptions) *WorldScene {
	return &WorldScene{opts: opts}
}

// Update advances the simulation by one tick.
func (ws *WorldScene) Update() error {
	ws.once.Do(func() { ws.err = ws.configure("") })
	if ws.err != nil {
		return ws.err
	}

	ws.ecs.Update()
	ws.ticks++
	return nil
}

// Draw runs the renderers. arg is whatever the renderers draw onto.
func (ws *WorldScene) Draw(arg any) {
	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(arg)
}

// World returns the simulation world, building it if needed.
func (ws *WorldScene) World() donburi.World {
	ws.once.Do(func() { ws.err = ws.configure("") })
	if ws.ecs == nil {
		return nil
	}
	return ws.ecs.World
}

// ECS returns the system pipeline, building it if needed.
func (ws *WorldScene) ECS() *ecs.ECS {
	ws.once.Do(func() { ws.err = ws.configure("") })
	return ws.ecs
}

// Data returns the parsed world file the simulation was built from.
func (ws *WorldScene) Data() *leveldata.World {
	ws.once.Do(func() { ws.err = ws.configure("") })
	return ws.data
}

// Err returns the error from building the world, if any.
func (ws *WorldScene) Err() error {
	return ws.err
}

// Ticks returns how many ticks have run.
func (ws *WorldScene) Ticks() uint64 {
	return ws.ticks
}

// Reload re-reads the level file and rebuilds the world, staying in the
// current level when it still exists. On error the old world keeps running.
func (ws *WorldScene) Reload() error {
	ws.once.Do(func() { ws.err = ws.configure("") })

	current := ""
	if ws.ecs != nil {
		if level, ok := systems.GetLevel(ws.ecs.World); ok {
			current = level.Current.LevelIID
		}
	}
	if err := ws.configure(current); err != nil {
		return err
	}
	ws.err = nil
	log.Printf("Reloaded %s", ws.opts.LevelPath)
	return nil
}

func (ws *WorldScene) configure(levelIID string) error {
	data, err := leveldata.Load(ws.opts.LevelFS, ws.opts.LevelPath)
	if err != nil {
		return err
	}

	if levelIID == "" {
		levelIID = ws.savedLevel()
	}
	start := factory.StartLevelIID(data, levelIID)

	w := donburi.NewWorld()
	if err := factory.CreateWorld(w, data, start); err != nil {
		return fmt.Errorf("build world from %s: %w", ws.opts.LevelPath, err)
	}

	systems.SubscribeHandlers(w)
	systems.ResetLevel.Subscribe(w, systems.NewProgressHandler(ws.opts.Progress))

	if level, ok := systems.GetLevel(w); ok {
		systems.GetOrCreateCamera(w).Position = systems.CameraPositionFromLevel(
			level.Current.Bounds, systems.GetOrCreateCamera(w).Position)
	}

	e := systems.AddSystems(ecs.NewECS(w), ws.opts.Input, ws.opts.Audio)
	for _, r := range ws.opts.Renderers {
		e.AddRenderer(cfg.Default, r)
	}

	ws.ecs = e
	ws.data = data

	if cfg.Debug.Log {
		log.Printf("World built: %d levels, starting in %s", len(data.Levels), start)
	}
	return nil
}

func (ws *WorldScene) savedLevel() string {
	if ws.opts.Progress == nil {
		return ""
	}
	saved, err := ws.opts.Progress.Load()
	if err != nil {
		log.Printf("Warning: Could not load game progress: %v", err)
		return ""
	}
	if saved == nil {
		return ""
	}
	return saved.LevelIID
}
