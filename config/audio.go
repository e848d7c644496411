package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundDeath
	SoundShard
	SoundLevelSwitch
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Muted         bool
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundDeath:       "audio/sfx/death.wav",
			SoundShard:       "audio/sfx/shard.wav",
			SoundLevelSwitch: "audio/sfx/level_switch.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundShard: 0.6,
		},
	}
}

func (s SoundID) String() string {
	switch s {
	case SoundDeath:
		return "death"
	case SoundShard:
		return "shard"
	case SoundLevelSwitch:
		return "level_switch"
	default:
		return "none"
	}
}
