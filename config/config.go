package config

import (
	"time"

	"github.com/tanema/gween/ease"
)

// RespawnConfig contains kill/respawn sequence values
type RespawnConfig struct {
	TransitionDuration time.Duration // per slide, to black and back
	Ease               ease.TweenFunc
	Epsilon            float64 // Lift above the start flag so the player never spawns inside the ground
}

// CameraConfig contains camera-related configuration values
type CameraConfig struct {
	ViewWidth       float64
	ViewHeight      float64
	SwitchDuration  time.Duration // Animated move when entering another level
	SwitchEase      ease.TweenFunc
	ClampToBounds   bool
	ViewportPadding float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed           float64 // world units per tick
	CollisionWidth  float64
	CollisionHeight float64
}

// SimulationConfig holds fixed-step timing
type SimulationConfig struct {
	TicksPerSecond int
}

// Step returns the duration of one simulation tick.
func (s SimulationConfig) Step() time.Duration {
	return time.Second / time.Duration(s.TicksPerSecond)
}

// LevelConfig selects the world file and the level the game starts in.
// An empty Dir means the copy embedded in the binary.
type LevelConfig struct {
	Dir        string
	File       string
	StartIndex int
	HotReload  bool // only with Dir set
}

// DebugConfig toggles development helpers
type DebugConfig struct {
	UI  bool
	Log bool
}

// SpaceConfig sizes the resolv collision space grid
type SpaceConfig struct {
	CellSize int
}

var (
	Respawn    RespawnConfig
	Camera     CameraConfig
	Player     PlayerConfig
	Simulation SimulationConfig
	Level      LevelConfig
	Debug      DebugConfig
	Space      SpaceConfig
)

func init() {
	Respawn = RespawnConfig{
		TransitionDuration: 400 * time.Millisecond,
		Ease:               ease.InOutSine,
		Epsilon:            2,
	}

	Camera = CameraConfig{
		ViewWidth:       320,
		ViewHeight:      180,
		SwitchDuration:  500 * time.Millisecond,
		SwitchEase:      ease.InOutSine,
		ClampToBounds:   true,
		ViewportPadding: 0,
	}

	Player = PlayerConfig{
		Speed:           1.5,
		CollisionWidth:  8,
		CollisionHeight: 14,
	}

	Simulation = SimulationConfig{
		TicksPerSecond: 60,
	}

	Level = LevelConfig{
		Dir:        "",
		File:       "world.tmx",
		StartIndex: 0,
		HotReload:  false,
	}

	Debug = DebugConfig{
		UI:  false,
		Log: false,
	}

	Space = SpaceConfig{
		CellSize: 16,
	}
}
