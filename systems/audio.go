package systems

import (
	"log"

	"github.com/automoto/lightborne/components"
	cfg "github.com/automoto/lightborne/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AudioSink plays sound effects. The client backs it with ebiten audio,
// the headless runner with a logger.
type AudioSink interface {
	PlaySFX(sound cfg.SoundID, volume float64)
}

// GetOrCreateAudio returns the singleton Audio component, creating if needed.
func GetOrCreateAudio(w donburi.World) *components.AudioData {
	if _, ok := components.Audio.First(w); !ok {
		ent := w.Entry(w.Create(components.Audio))
		components.Audio.SetValue(ent, components.AudioData{
			SFXVolume: cfg.Audio.DefaultSFXVol,
			Muted:     cfg.Audio.Muted,
		})
	}

	ent, _ := components.Audio.First(w)
	return components.Audio.Get(ent)
}

// PlaySFX queues a sound effect to be played at the end of the tick.
func PlaySFX(w donburi.World, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(w)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// NewAudioSystem returns a system that drains queued sounds into sink.
// A nil sink discards them.
func NewAudioSystem(sink AudioSink) ecs.System {
	return func(e *ecs.ECS) {
		audioData := GetOrCreateAudio(e.World)
		for _, sound := range audioData.PendingSFX {
			if sink == nil || audioData.Muted || audioData.SFXVolume <= 0 {
				continue
			}
			volume := audioData.SFXVolume
			if mult, ok := cfg.Sound.VolumeMultipliers[sound]; ok {
				volume *= mult
			}
			sink.PlaySFX(sound, volume)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

// LogSink prints sounds instead of playing them.
type LogSink struct{}

func (LogSink) PlaySFX(sound cfg.SoundID, volume float64) {
	log.Printf("sfx %s (volume %.2f)", sound, volume)
}
