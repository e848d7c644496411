package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default config file names, tried in order.
const (
	FileName        = "lightborne.yaml"
	ExampleFileName = "lightborne_example.yaml"
)

// ErrNoConfig is returned by LoadFile when none of the candidate files exist.
var ErrNoConfig = errors.New("no config file found")

// File is the on-disk shape of the config. Only values a player or level
// author would tune are exposed; everything else stays in code.
type File struct {
	Respawn struct {
		TransitionMS int     `yaml:"transition_ms"`
		Epsilon      float64 `yaml:"epsilon"`
	} `yaml:"respawn"`
	Camera struct {
		ViewWidth  float64 `yaml:"view_width"`
		ViewHeight float64 `yaml:"view_height"`
		SwitchMS   int     `yaml:"switch_ms"`
	} `yaml:"camera"`
	Player struct {
		Speed float64 `yaml:"speed"`
	} `yaml:"player"`
	Simulation struct {
		TicksPerSecond int `yaml:"ticks_per_second"`
	} `yaml:"simulation"`
	Level struct {
		Dir        string `yaml:"dir"`
		File       string `yaml:"file"`
		StartIndex int    `yaml:"start_index"`
		HotReload  bool   `yaml:"hot_reload"`
	} `yaml:"level"`
	Debug struct {
		UI  bool `yaml:"ui"`
		Log bool `yaml:"log"`
	} `yaml:"debug"`
	Audio struct {
		SFXVolume float64 `yaml:"sfx_volume"`
		Muted     bool    `yaml:"muted"`
	} `yaml:"audio"`
}

// Current snapshots the package-level values into a File.
func Current() File {
	var f File
	f.Respawn.TransitionMS = int(Respawn.TransitionDuration / time.Millisecond)
	f.Respawn.Epsilon = Respawn.Epsilon
	f.Camera.ViewWidth = Camera.ViewWidth
	f.Camera.ViewHeight = Camera.ViewHeight
	f.Camera.SwitchMS = int(Camera.SwitchDuration / time.Millisecond)
	f.Player.Speed = Player.Speed
	f.Simulation.TicksPerSecond = Simulation.TicksPerSecond
	f.Level.Dir = Level.Dir
	f.Level.File = Level.File
	f.Level.StartIndex = Level.StartIndex
	f.Level.HotReload = Level.HotReload
	f.Debug.UI = Debug.UI
	f.Debug.Log = Debug.Log
	f.Audio.SFXVolume = Audio.DefaultSFXVol
	f.Audio.Muted = Audio.Muted
	return f
}

// LoadFile reads the first candidate that exists on top of the current
// values. With no candidates it tries FileName then ExampleFileName.
// It returns the path that was read.
func LoadFile(candidates ...string) (File, string, error) {
	if len(candidates) == 0 {
		candidates = []string{FileName, ExampleFileName}
	}

	cfg := Current()
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return cfg, path, fmt.Errorf("reading config %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, path, fmt.Errorf("parsing config %s: %w", path, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, path, fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, path, nil
	}

	return cfg, "", ErrNoConfig
}

// Validate rejects values the simulation cannot run with.
func (f File) Validate() error {
	if f.Simulation.TicksPerSecond <= 0 {
		return fmt.Errorf("simulation.ticks_per_second must be positive, got %d", f.Simulation.TicksPerSecond)
	}
	if f.Respawn.TransitionMS <= 0 {
		return fmt.Errorf("respawn.transition_ms must be positive, got %d", f.Respawn.TransitionMS)
	}
	if f.Level.File == "" {
		return errors.New("level.file is empty")
	}
	if f.Level.HotReload && f.Level.Dir == "" {
		return errors.New("level.hot_reload needs level.dir")
	}
	if f.Level.StartIndex < 0 {
		return fmt.Errorf("level.start_index must not be negative, got %d", f.Level.StartIndex)
	}
	return nil
}

// LoadEnv loads .env files (a missing file is fine) and applies
// LIGHTBORNE_* overrides on top of f.
func LoadEnv(f *File, envFiles ...string) error {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading env: %w", err)
	}
	return f.applyEnv(os.Getenv)
}

func (f *File) applyEnv(getenv func(string) string) error {
	if v := getenv("LIGHTBORNE_LEVEL_DIR"); v != "" {
		f.Level.Dir = v
	}
	if v := getenv("LIGHTBORNE_LEVEL_FILE"); v != "" {
		f.Level.File = v
	}
	if v := getenv("LIGHTBORNE_LEVEL_INDEX"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LIGHTBORNE_LEVEL_INDEX: %w", err)
		}
		f.Level.StartIndex = n
	}
	for name, dst := range map[string]*bool{
		"LIGHTBORNE_DEBUG_UI":   &f.Debug.UI,
		"LIGHTBORNE_DEBUG_LOG":  &f.Debug.Log,
		"LIGHTBORNE_HOT_RELOAD": &f.Level.HotReload,
		"LIGHTBORNE_MUTE":       &f.Audio.Muted,
	} {
		v := getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
	}
	return nil
}

// Apply copies f into the package-level config values.
func Apply(f File) {
	Respawn.TransitionDuration = time.Duration(f.Respawn.TransitionMS) * time.Millisecond
	Respawn.Epsilon = f.Respawn.Epsilon
	Camera.ViewWidth = f.Camera.ViewWidth
	Camera.ViewHeight = f.Camera.ViewHeight
	Camera.SwitchDuration = time.Duration(f.Camera.SwitchMS) * time.Millisecond
	Player.Speed = f.Player.Speed
	Simulation.TicksPerSecond = f.Simulation.TicksPerSecond
	Level.Dir = f.Level.Dir
	Level.File = f.Level.File
	Level.StartIndex = f.Level.StartIndex
	Level.HotReload = f.Level.HotReload
	Debug.UI = f.Debug.UI
	Debug.Log = f.Debug.Log
	Audio.DefaultSFXVol = f.Audio.SFXVolume
	Audio.Muted = f.Audio.Muted
}

// Load is the startup sequence shared by the binaries: config file, then
// environment, then Apply. A missing config file keeps the built-in values.
func Load(candidates ...string) error {
	f, path, err := LoadFile(candidates...)
	switch {
	case errors.Is(err, ErrNoConfig):
		log.Printf("No config file found, using defaults")
	case err != nil:
		return err
	default:
		log.Printf("Loaded config from %s", path)
	}

	if err := LoadEnv(&f); err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return err
	}
	Apply(f)
	return nil
}
