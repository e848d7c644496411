package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	cfg "github.com/automoto/lightborne/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// AudioLoader handles loading and caching of sound effects
type AudioLoader struct {
	sfxCache map[string][]byte // decoded PCM per path
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
// Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}

	data, err := audioFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	decoded, err := l.decode(path, data)
	if err != nil {
		return err
	}
	l.sfxCache[path] = decoded
	return nil
}

// PreloadAll decodes every configured sound effect.
func (l *AudioLoader) PreloadAll() error {
	for _, path := range cfg.Sound.SFXPaths {
		if err := l.PreloadSFX(path); err != nil {
			return err
		}
	}
	return nil
}

// LoadSFX returns a new player for a sound effect, decoding it on first use.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	if err := l.PreloadSFX(path); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[path]))
}

func (l *AudioLoader) decode(path string, data []byte) ([]byte, error) {
	var stream io.Reader
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}

// PlaySFX plays a configured sound effect at the given volume. It satisfies
// the simulation's audio sink.
func (l *AudioLoader) PlaySFX(sound cfg.SoundID, volume float64) {
	path, ok := cfg.Sound.SFXPaths[sound]
	if !ok {
		return
	}

	player, err := l.LoadSFX(path)
	if err != nil {
		log.Printf("Warning: Could not play %s: %v", sound, err)
		return
	}
	player.SetVolume(volume)
	player.Play()
}
