package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundPlayerShoot
	SoundEnemyShoot
	SoundExplosion
	SoundShield
	SoundPickup
	SoundVictory
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to cue names and file paths
type SoundConfig struct {
	Cues              map[SoundID]string
	Extensions        []string
	Dir               string
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
		Cues: map[SoundID]string{
			SoundPlayerShoot: "player_shoot",
			SoundEnemyShoot:  "enemy_shoot",
			SoundExplosion:   "explosion",
			SoundShield:      "shield",
			SoundPickup:      "pickup",
			SoundVictory:     "victory",
		},
		Extensions: []string{".wav", ".ogg"},
		Dir:        "sounds",
		VolumeMultipliers: map[SoundID]float64{
			SoundPlayerShoot: 0.5,
			SoundExplosion:   1.2,
		},
	}
}

// Cue returns the cue name for a sound, or "" for unknown IDs.
func (s SoundID) Cue() string {
	return Sound.Cues[s]
}
